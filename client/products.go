package client

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"sync"

	"github.com/shashiranjanraj/shinyflakes/pkg/collection"
)

// DefaultPageLimit is the page size the store requests when none is given.
const DefaultPageLimit = 12

// Sort keys understood by the local filter engine. Newest sorts on id,
// treating a higher id as newer.
type SortKey string

const (
	SortByName   SortKey = "name"
	SortByPrice  SortKey = "price"
	SortByRating SortKey = "rating"
	SortByNewest SortKey = "newest"
)

type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// Filters is the local filter state applied over the cached product list.
// Pointer fields are tri-state: nil means "not filtering on this".
type Filters struct {
	Search    string
	Category  string
	MinPrice  *float64
	MaxPrice  *float64
	MinRating *float64
	Featured  *bool
	InStock   *bool
	SortBy    SortKey
	SortOrder SortOrder
}

func defaultFilters() Filters {
	return Filters{SortBy: SortByName, SortOrder: SortAsc}
}

// PriceRange is the min/max price across the cached products.
type PriceRange struct {
	Min float64
	Max float64
}

// ProductStore caches catalogue pages and derives a filtered, sorted view
// locally, without extra round trips. Safe for concurrent use.
type ProductStore struct {
	api *API

	mu         sync.Mutex
	products   []Product
	filtered   []Product
	categories []Category
	filters    Filters
	pagination Pagination
	fetchSeq   uint64
}

// NewProductStore creates a store bound to an API client.
func NewProductStore(api *API) *ProductStore {
	return &ProductStore{
		api:        api,
		filters:    defaultFilters(),
		pagination: Pagination{Page: 1, Limit: DefaultPageLimit},
	}
}

// Init warms the store: first catalogue page plus the category list.
func (s *ProductStore) Init() error {
	if err := s.Fetch(ListParams{Limit: 50}); err != nil {
		return err
	}
	return s.FetchCategories()
}

// Fetch loads one catalogue page from the server. Page one (or an unset
// page) replaces the cache; later pages append to it. When overlapping
// fetches race, only the most recently issued one lands: stale responses
// are discarded.
func (s *ProductStore) Fetch(p ListParams) error {
	s.mu.Lock()
	s.fetchSeq++
	seq := s.fetchSeq
	s.mu.Unlock()

	resp, err := s.api.ListProducts(p)

	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.fetchSeq {
		return nil
	}
	if err != nil {
		return err
	}

	if p.Page > 1 {
		s.products = append(s.products, resp.Data...)
	} else {
		s.products = resp.Data
	}

	limit := resp.Meta.Limit
	if limit <= 0 {
		limit = DefaultPageLimit
	}
	total := resp.Meta.Total
	if total <= 0 {
		total = int64(len(resp.Data))
	}
	page := resp.Meta.Page
	if page <= 0 {
		page = 1
	}
	s.pagination = Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: int(math.Ceil(float64(total) / float64(limit))),
	}

	s.applyFiltersLocked()
	return nil
}

// FetchCategories loads the category aggregate.
func (s *ProductStore) FetchCategories() error {
	categories, err := s.api.Categories()
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.categories = categories
	s.mu.Unlock()
	return nil
}

// Search sets the search filter and refetches with a wide page, so the
// local view has enough rows to re-filter against.
func (s *ProductStore) Search(query string) error {
	s.mu.Lock()
	s.filters.Search = query
	s.mu.Unlock()

	return s.Fetch(ListParams{Search: strings.TrimSpace(query), Limit: 50})
}

// LoadMore appends the next page, carrying the current search/category
// filters. A no-op on the last page.
func (s *ProductStore) LoadMore() error {
	s.mu.Lock()
	if s.pagination.Page >= s.pagination.TotalPages {
		s.mu.Unlock()
		return nil
	}
	params := ListParams{
		Page:     s.pagination.Page + 1,
		Limit:    s.pagination.Limit,
		Search:   s.filters.Search,
		Category: s.filters.Category,
	}
	s.mu.Unlock()

	return s.Fetch(params)
}

// UpdateFilters mutates the filter state and re-derives the filtered view.
func (s *ProductStore) UpdateFilters(update func(*Filters)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	update(&s.filters)
	s.applyFiltersLocked()
}

// ClearFilters resets to the default filter state.
func (s *ProductStore) ClearFilters() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters = defaultFilters()
	s.applyFiltersLocked()
}

// applyFiltersLocked rebuilds filtered from products. Predicates are all
// ANDed; ties keep their relative order (stable sort).
func (s *ProductStore) applyFiltersLocked() {
	f := s.filters

	filtered := collection.Filter(s.products, func(p Product) bool {
		if f.Search != "" {
			needle := strings.ToLower(f.Search)
			if !strings.Contains(strings.ToLower(p.Name), needle) &&
				!strings.Contains(strings.ToLower(p.Description), needle) &&
				!strings.Contains(strings.ToLower(p.Category), needle) {
				return false
			}
		}
		if f.Category != "" && p.Category != f.Category {
			return false
		}
		if f.MinPrice != nil && p.Price < *f.MinPrice {
			return false
		}
		if f.MaxPrice != nil && p.Price > *f.MaxPrice {
			return false
		}
		if f.MinRating != nil && p.Rating < *f.MinRating {
			return false
		}
		if f.Featured != nil && p.Featured != *f.Featured {
			return false
		}
		if f.InStock != nil && p.InStock != *f.InStock {
			return false
		}
		return true
	})

	less := lessFunc(f.SortBy)
	sort.SliceStable(filtered, func(i, j int) bool {
		if f.SortOrder == SortDesc {
			return less(filtered[j], filtered[i])
		}
		return less(filtered[i], filtered[j])
	})

	s.filtered = filtered
}

func lessFunc(key SortKey) func(a, b Product) bool {
	switch key {
	case SortByPrice:
		return func(a, b Product) bool { return a.Price < b.Price }
	case SortByRating:
		return func(a, b Product) bool { return a.Rating < b.Rating }
	case SortByNewest:
		return func(a, b Product) bool { return a.ID < b.ID }
	default:
		return func(a, b Product) bool {
			return strings.ToLower(a.Name) < strings.ToLower(b.Name)
		}
	}
}

// ------------------- Lookups over the cache -------------------

// ProductByID finds a cached product by id.
func (s *ProductStore) ProductByID(id uint) (Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return collection.First(s.products, func(p Product) bool { return p.ID == id })
}

// ProductBySlug finds a cached product by slug, also accepting the
// synthetic "product-{id}" form used before slugs existed.
func (s *ProductStore) ProductBySlug(slug string) (Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return collection.First(s.products, func(p Product) bool {
		return p.Slug == slug || fmt.Sprintf("product-%d", p.ID) == slug
	})
}

// FeaturedProducts returns up to limit cached featured products
// (6 when limit <= 0).
func (s *ProductStore) FeaturedProducts(limit int) []Product {
	if limit <= 0 {
		limit = 6
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	featured := collection.Filter(s.products, func(p Product) bool { return p.Featured })
	return collection.Take(featured, limit)
}

// byCategoryLocked groups the cached products by category.
func (s *ProductStore) byCategoryLocked() map[string][]Product {
	return collection.GroupBy(s.products, func(p Product) string { return p.Category })
}

// ProductsByCategory returns cached products of one category, capped at
// limit when limit > 0.
func (s *ProductStore) ProductsByCategory(category string, limit int) []Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	matched := s.byCategoryLocked()[category]
	if limit > 0 {
		return collection.Take(matched, limit)
	}
	return matched
}

// RelatedProducts returns up to limit cached products sharing the given
// product's category (4 when limit <= 0).
func (s *ProductStore) RelatedProducts(id uint, limit int) []Product {
	if limit <= 0 {
		limit = 4
	}

	product, ok := s.ProductByID(id)
	if !ok {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	related := collection.Filter(s.byCategoryLocked()[product.Category], func(p Product) bool {
		return p.ID != id
	})
	return collection.Take(related, limit)
}

// ------------------- Accessors -------------------

// Products returns a copy of the cached product list.
func (s *ProductStore) Products() []Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Product(nil), s.products...)
}

// Filtered returns a copy of the filtered, sorted view.
func (s *ProductStore) Filtered() []Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Product(nil), s.filtered...)
}

// Categories returns a copy of the cached category list.
func (s *ProductStore) Categories() []Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Category(nil), s.categories...)
}

// Filters returns the current filter state.
func (s *ProductStore) Filters() Filters {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filters
}

// Pagination returns the last listing's pagination meta.
func (s *ProductStore) Pagination() Pagination {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pagination
}

// IsFiltered reports whether any non-default filter is active.
func (s *ProductStore) IsFiltered() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	f := s.filters
	return f.Search != "" || f.Category != "" ||
		f.MinPrice != nil || f.MaxPrice != nil || f.MinRating != nil ||
		f.Featured != nil || f.InStock != nil
}

// PriceRange returns the floor/ceil price bounds over the cached products
// ({0, 1000} when the cache is empty).
func (s *ProductStore) PriceRange() PriceRange {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.products) == 0 {
		return PriceRange{Min: 0, Max: 1000}
	}

	r := PriceRange{Min: math.Inf(1), Max: math.Inf(-1)}
	for _, p := range s.products {
		r.Min = math.Min(r.Min, p.Price)
		r.Max = math.Max(r.Max, p.Price)
	}
	r.Min = math.Floor(r.Min)
	r.Max = math.Ceil(r.Max)
	return r
}
