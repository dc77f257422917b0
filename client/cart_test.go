package client_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/shinyflakes/client"
)

func cartProduct(id uint, name string, price float64, stock int) client.Product {
	return client.Product{
		ID:       id,
		Name:     name,
		Price:    price,
		Quantity: stock,
		InStock:  stock > 0,
		Slug:     name,
	}
}

func TestCartAddAndMerge(t *testing.T) {
	cart := client.NewCartStore(nil)

	p := cartProduct(1, "blue-sky", 99.99, 5)
	cart.AddItem(p, 2)
	assert.Equal(t, 2, cart.ItemQuantity(1))

	// Merging increments the existing line.
	cart.AddItem(p, 1)
	assert.Equal(t, 3, cart.ItemQuantity(1))
	assert.Len(t, cart.Items(), 1)

	// Quantities never exceed the stock captured at add time.
	cart.AddItem(p, 10)
	assert.Equal(t, 5, cart.ItemQuantity(1))
}

func TestCartAddClampsToStock(t *testing.T) {
	cart := client.NewCartStore(nil)

	cart.AddItem(cartProduct(1, "jesse-mix", 79.99, 3), 99)
	assert.Equal(t, 3, cart.ItemQuantity(1))

	// Zero and negative quantities add a single unit.
	cart.AddItem(cartProduct(2, "combo", 29.99, 10), 0)
	assert.Equal(t, 1, cart.ItemQuantity(2))
	cart.AddItem(cartProduct(3, "badger", 34.99, 10), -5)
	assert.Equal(t, 1, cart.ItemQuantity(3))
}

func TestCartUpdateQuantity(t *testing.T) {
	cart := client.NewCartStore(nil)
	cart.AddItem(cartProduct(1, "blue-sky", 99.99, 5), 1)

	cart.UpdateQuantity(1, 4)
	assert.Equal(t, 4, cart.ItemQuantity(1))

	cart.UpdateQuantity(1, 42)
	assert.Equal(t, 5, cart.ItemQuantity(1), "update clamps to max stock")

	// Unknown ids are ignored.
	cart.UpdateQuantity(9, 3)
	assert.Len(t, cart.Items(), 1)

	// Zero or less removes the line.
	cart.UpdateQuantity(1, 0)
	assert.False(t, cart.IsInCart(1))
	assert.True(t, cart.IsEmpty())
}

func TestCartTotals(t *testing.T) {
	cart := client.NewCartStore(nil)
	cart.AddItem(cartProduct(1, "blue-sky", 99.99, 10), 2)
	cart.AddItem(cartProduct(2, "combo", 29.99, 10), 1)

	assert.Equal(t, 3, cart.ItemCount())
	assert.InDelta(t, 229.97, cart.TotalPrice(), 0.001)

	cart.RemoveItem(1)
	assert.Equal(t, 1, cart.ItemCount())
	assert.InDelta(t, 29.99, cart.TotalPrice(), 0.001)

	cart.Clear()
	assert.True(t, cart.IsEmpty())
	assert.Zero(t, cart.TotalPrice())
}

func TestCartPersistsThroughStorage(t *testing.T) {
	storage := client.NewMemoryStorage()

	cart := client.NewCartStore(storage)
	cart.AddItem(cartProduct(1, "blue-sky", 99.99, 10), 2)
	cart.AddItem(cartProduct(2, "combo", 29.99, 10), 1)

	// A fresh store over the same storage sees the same lines.
	restored := client.NewCartStore(storage)
	require.Len(t, restored.Items(), 2)
	assert.Equal(t, 2, restored.ItemQuantity(1))
	assert.InDelta(t, 229.97, restored.TotalPrice(), 0.001)

	restored.Clear()
	assert.True(t, client.NewCartStore(storage).IsEmpty())
}
