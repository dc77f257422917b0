package client_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/shinyflakes/client"
)

func TestWishlistAddNewestFirst(t *testing.T) {
	wl := client.NewWishlistStore(nil)

	assert.True(t, wl.AddItem(cartProduct(1, "blue-sky", 99.99, 5)))
	assert.True(t, wl.AddItem(cartProduct(2, "combo", 29.99, 10)))

	items := wl.Items()
	require.Len(t, items, 2)
	assert.EqualValues(t, 2, items[0].ID, "latest bookmark comes first")

	// Duplicates are rejected.
	assert.False(t, wl.AddItem(cartProduct(1, "blue-sky", 99.99, 5)))
	assert.Equal(t, 2, wl.ItemCount())
}

func TestWishlistToggle(t *testing.T) {
	wl := client.NewWishlistStore(nil)
	p := cartProduct(1, "blue-sky", 99.99, 5)

	wl.Toggle(p)
	assert.True(t, wl.IsInWishlist(1))

	wl.Toggle(p)
	assert.False(t, wl.IsInWishlist(1))
	assert.True(t, wl.IsEmpty())
}

func TestWishlistRemove(t *testing.T) {
	wl := client.NewWishlistStore(nil)
	wl.AddItem(cartProduct(1, "blue-sky", 99.99, 5))

	assert.True(t, wl.RemoveItem(1))
	assert.False(t, wl.RemoveItem(1), "removing twice reports absence")
}

func TestWishlistMoveToCart(t *testing.T) {
	storage := client.NewMemoryStorage()
	wl := client.NewWishlistStore(storage)
	cart := client.NewCartStore(storage)

	wl.AddItem(cartProduct(1, "blue-sky", 99.99, 5))

	assert.True(t, wl.MoveToCart(cart, 1))
	assert.False(t, wl.IsInWishlist(1))
	assert.Equal(t, 1, cart.ItemQuantity(1))

	assert.False(t, wl.MoveToCart(cart, 99))
}

func TestWishlistMoveAllToCartSkipsOutOfStock(t *testing.T) {
	wl := client.NewWishlistStore(nil)
	cart := client.NewCartStore(nil)

	wl.AddItem(cartProduct(1, "blue-sky", 99.99, 5))
	wl.AddItem(cartProduct(2, "saul-powder", 59.99, 0))
	wl.AddItem(cartProduct(3, "combo", 29.99, 10))

	moved := wl.MoveAllToCart(cart)
	assert.Equal(t, 2, moved)
	assert.Equal(t, 1, wl.ItemCount(), "out-of-stock bookmark stays")
	assert.True(t, wl.IsInWishlist(2))
	assert.True(t, cart.IsInCart(1))
	assert.True(t, cart.IsInCart(3))
}

func TestWishlistSortItems(t *testing.T) {
	wl := client.NewWishlistStore(nil)
	wl.AddItem(cartProduct(1, "banana", 50, 5))
	wl.AddItem(cartProduct(2, "apple", 10, 5))
	wl.AddItem(cartProduct(3, "cherry", 30, 5))

	wl.SortItems(client.WishlistSortPrice, client.SortDesc)
	items := wl.Items()
	assert.EqualValues(t, 1, items[0].ID)
	assert.EqualValues(t, 2, items[2].ID)

	wl.SortItems(client.WishlistSortName, client.SortAsc)
	items = wl.Items()
	assert.Equal(t, "apple", items[0].Product.Name)
	assert.Equal(t, "cherry", items[2].Product.Name)
}

func TestWishlistStockPartitions(t *testing.T) {
	wl := client.NewWishlistStore(nil)
	wl.AddItem(cartProduct(1, "blue-sky", 99.99, 5))
	wl.AddItem(cartProduct(2, "saul-powder", 59.99, 0))

	assert.Len(t, wl.InStockItems(), 1)
	assert.Len(t, wl.OutOfStockItems(), 1)
}

func TestWishlistPersistsThroughStorage(t *testing.T) {
	storage := client.NewMemoryStorage()

	wl := client.NewWishlistStore(storage)
	wl.AddItem(cartProduct(1, "blue-sky", 99.99, 5))

	restored := client.NewWishlistStore(storage)
	require.Equal(t, 1, restored.ItemCount())
	assert.True(t, restored.IsInWishlist(1))
}
