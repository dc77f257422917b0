package client

import (
	"encoding/json"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/shashiranjanraj/shinyflakes/pkg/collection"
)

const wishlistStorageKey = "shinyflakes_wishlist"

// WishlistItem is one saved product with its bookmark time.
type WishlistItem struct {
	ID      uint      `json:"id"`
	Product Product   `json:"product"`
	AddedAt time.Time `json:"addedAt"`
}

// Wishlist sort keys; DateAdded is the default.
const (
	WishlistSortName      = "name"
	WishlistSortPrice     = "price"
	WishlistSortRating    = "rating"
	WishlistSortDateAdded = "dateAdded"
)

// WishlistStore is the local wishlist, newest first, persisted through
// Storage.
type WishlistStore struct {
	mu      sync.Mutex
	items   []WishlistItem
	storage Storage
}

// NewWishlistStore creates a wishlist and restores any persisted entries.
func NewWishlistStore(storage Storage) *WishlistStore {
	if storage == nil {
		storage = NewMemoryStorage()
	}
	s := &WishlistStore{storage: storage}
	s.load()
	return s
}

// AddItem bookmarks a product at the front of the list. Returns false if
// it was already saved.
func (s *WishlistStore) AddItem(p Product) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.containsLocked(p.ID) {
		return false
	}

	item := WishlistItem{ID: p.ID, Product: p, AddedAt: time.Now()}
	s.items = append([]WishlistItem{item}, s.items...)
	s.save()
	return true
}

// RemoveItem drops a bookmark. Returns false if it was not saved.
func (s *WishlistStore) RemoveItem(productID uint) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.removeLocked(productID)
}

func (s *WishlistStore) removeLocked(productID uint) bool {
	before := len(s.items)
	s.items = collection.Filter(s.items, func(item WishlistItem) bool {
		return item.ID != productID
	})
	if len(s.items) == before {
		return false
	}
	s.save()
	return true
}

// Toggle adds the product if absent, removes it if present.
func (s *WishlistStore) Toggle(p Product) bool {
	if s.IsInWishlist(p.ID) {
		return s.RemoveItem(p.ID)
	}
	return s.AddItem(p)
}

// Clear empties the wishlist.
func (s *WishlistStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
	s.save()
}

// IsInWishlist reports whether a product is bookmarked.
func (s *WishlistStore) IsInWishlist(productID uint) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.containsLocked(productID)
}

func (s *WishlistStore) containsLocked(productID uint) bool {
	return collection.Contains(s.items, func(item WishlistItem) bool {
		return item.ID == productID
	})
}

// Item returns one bookmark by product id.
func (s *WishlistStore) Item(productID uint) (WishlistItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return collection.First(s.items, func(item WishlistItem) bool {
		return item.ID == productID
	})
}

// MoveToCart moves one bookmark into the cart.
func (s *WishlistStore) MoveToCart(cart *CartStore, productID uint) bool {
	item, ok := s.Item(productID)
	if !ok {
		return false
	}
	cart.AddItem(item.Product, 1)
	s.RemoveItem(productID)
	return true
}

// MoveAllToCart moves every in-stock bookmark into the cart and returns
// how many moved. Out-of-stock bookmarks stay.
func (s *WishlistStore) MoveAllToCart(cart *CartStore) int {
	s.mu.Lock()
	movable := collection.Filter(s.items, func(item WishlistItem) bool {
		return item.Product.InStock
	})
	s.items = collection.Filter(s.items, func(item WishlistItem) bool {
		return !item.Product.InStock
	})
	s.save()
	s.mu.Unlock()

	for _, item := range movable {
		cart.AddItem(item.Product, 1)
	}
	return len(movable)
}

// SortItems orders the wishlist in place by the given key.
func (s *WishlistStore) SortItems(sortBy string, order SortOrder) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var less func(a, b WishlistItem) bool
	switch sortBy {
	case WishlistSortName:
		less = func(a, b WishlistItem) bool {
			return strings.ToLower(a.Product.Name) < strings.ToLower(b.Product.Name)
		}
	case WishlistSortPrice:
		less = func(a, b WishlistItem) bool { return a.Product.Price < b.Product.Price }
	case WishlistSortRating:
		less = func(a, b WishlistItem) bool { return a.Product.Rating < b.Product.Rating }
	default:
		less = func(a, b WishlistItem) bool { return a.AddedAt.Before(b.AddedAt) }
	}

	sort.SliceStable(s.items, func(i, j int) bool {
		if order == SortDesc {
			return less(s.items[j], s.items[i])
		}
		return less(s.items[i], s.items[j])
	})
	s.save()
}

// Items returns a copy of the bookmarks.
func (s *WishlistStore) Items() []WishlistItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]WishlistItem(nil), s.items...)
}

// ItemCount is the number of bookmarks.
func (s *WishlistStore) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// IsEmpty reports whether the wishlist has no bookmarks.
func (s *WishlistStore) IsEmpty() bool {
	return s.ItemCount() == 0
}

// ItemsByCategory returns bookmarks whose product is in a category.
func (s *WishlistStore) ItemsByCategory(category string) []WishlistItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return collection.Filter(s.items, func(item WishlistItem) bool {
		return item.Product.Category == category
	})
}

// InStockItems returns bookmarks whose product is in stock.
func (s *WishlistStore) InStockItems() []WishlistItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return collection.Filter(s.items, func(item WishlistItem) bool {
		return item.Product.InStock
	})
}

// OutOfStockItems returns bookmarks whose product is out of stock.
func (s *WishlistStore) OutOfStockItems() []WishlistItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return collection.Filter(s.items, func(item WishlistItem) bool {
		return !item.Product.InStock
	})
}

func (s *WishlistStore) save() {
	raw, err := json.Marshal(s.items)
	if err != nil {
		return
	}
	_ = s.storage.Set(wishlistStorageKey, string(raw))
}

func (s *WishlistStore) load() {
	raw, ok := s.storage.Get(wishlistStorageKey)
	if !ok {
		return
	}
	var items []WishlistItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return
	}
	s.items = items
}
