package client

import (
	"encoding/json"
	"sync"

	"github.com/shashiranjanraj/shinyflakes/pkg/collection"
)

const cartStorageKey = "shinyflakes_cart"

// CartItem is one line of the local cart.
type CartItem struct {
	ID       uint    `json:"id"`
	Name     string  `json:"name"`
	Slug     string  `json:"slug"`
	Price    float64 `json:"price"`
	Image    string  `json:"image"`
	Quantity int     `json:"quantity"`
	MaxStock int     `json:"maxStock"`
	Category string  `json:"category"`
}

// CartStore is the local shopping cart, persisted through Storage.
// Quantities are clamped to the product's stock at add/update time.
type CartStore struct {
	mu      sync.Mutex
	items   []CartItem
	storage Storage
}

// NewCartStore creates a cart and restores any persisted lines.
func NewCartStore(storage Storage) *CartStore {
	if storage == nil {
		storage = NewMemoryStorage()
	}
	s := &CartStore{storage: storage}
	s.load()
	return s
}

// AddItem puts quantity units of a product in the cart, merging with an
// existing line and clamping to the available stock.
func (s *CartStore) AddItem(p Product, quantity int) {
	if quantity < 1 {
		quantity = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == p.ID {
			s.items[i].Quantity += quantity
			if s.items[i].Quantity > s.items[i].MaxStock {
				s.items[i].Quantity = s.items[i].MaxStock
			}
			s.save()
			return
		}
	}

	if quantity > p.Quantity {
		quantity = p.Quantity
	}
	s.items = append(s.items, CartItem{
		ID:       p.ID,
		Name:     p.Name,
		Slug:     p.Slug,
		Price:    p.Price,
		Image:    p.Image,
		Quantity: quantity,
		MaxStock: p.Quantity,
		Category: p.Category,
	})
	s.save()
}

// RemoveItem deletes a product's line.
func (s *CartStore) RemoveItem(productID uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLocked(productID)
}

func (s *CartStore) removeLocked(productID uint) {
	s.items = collection.Filter(s.items, func(item CartItem) bool {
		return item.ID != productID
	})
	s.save()
}

// UpdateQuantity sets a line's quantity; zero or less removes the line,
// and the result never exceeds the line's max stock.
func (s *CartStore) UpdateQuantity(productID uint, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		s.removeLocked(productID)
		return
	}

	for i := range s.items {
		if s.items[i].ID == productID {
			if quantity > s.items[i].MaxStock {
				quantity = s.items[i].MaxStock
			}
			s.items[i].Quantity = quantity
			s.save()
			return
		}
	}
}

// Clear empties the cart.
func (s *CartStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
	s.save()
}

// Items returns a copy of the cart lines.
func (s *CartStore) Items() []CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]CartItem(nil), s.items...)
}

// ItemCount is the total unit count across all lines.
func (s *CartStore) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return collection.Reduce(s.items, 0, func(total int, item CartItem) int {
		return total + item.Quantity
	})
}

// TotalPrice is the cart total.
func (s *CartStore) TotalPrice() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return collection.Reduce(s.items, 0.0, func(total float64, item CartItem) float64 {
		return total + item.Price*float64(item.Quantity)
	})
}

// IsEmpty reports whether the cart has no lines.
func (s *CartStore) IsEmpty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items) == 0
}

// IsInCart reports whether a product has a line.
func (s *CartStore) IsInCart(productID uint) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return collection.Contains(s.items, func(item CartItem) bool {
		return item.ID == productID
	})
}

// ItemQuantity returns a product's line quantity (0 when absent).
func (s *CartStore) ItemQuantity(productID uint) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, ok := collection.First(s.items, func(item CartItem) bool {
		return item.ID == productID
	})
	if !ok {
		return 0
	}
	return item.Quantity
}

func (s *CartStore) save() {
	raw, err := json.Marshal(s.items)
	if err != nil {
		return
	}
	_ = s.storage.Set(cartStorageKey, string(raw))
}

func (s *CartStore) load() {
	raw, ok := s.storage.Get(cartStorageKey)
	if !ok {
		return
	}
	var items []CartItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return
	}
	s.items = items
}
