package services

import (
	"regexp"
	"strings"
	"time"

	"github.com/shashiranjanraj/shinyflakes/app/models"
	"github.com/shashiranjanraj/shinyflakes/app/repositories"
	"github.com/shashiranjanraj/shinyflakes/pkg/cache"
	"github.com/shashiranjanraj/shinyflakes/pkg/collection"
	"github.com/shashiranjanraj/shinyflakes/pkg/orm"
)

// categoriesCacheKey caches the category aggregate, which only changes when
// products are reseeded.
const (
	categoriesCacheKey = "products:categories"
	categoriesCacheTTL = 5 * time.Minute
)

var whitespaceRE = regexp.MustCompile(`\s+`)

// CategorySummary is one entry of the public category listing.
type CategorySummary struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
	Slug  string `json:"slug"`
}

// CatalogService owns product listing, lookup and the category aggregate.
type CatalogService struct {
	products *repositories.ProductRepository
}

func NewCatalogService() *CatalogService {
	return &CatalogService{products: repositories.NewProductRepository()}
}

// List returns one catalogue page for the given filters.
func (s *CatalogService) List(f repositories.ProductFilter, page, limit int) ([]models.Product, orm.Pagination, error) {
	return s.products.List(f, page, limit)
}

// Find resolves a product by id or slug.
func (s *CatalogService) Find(identifier string) (models.Product, error) {
	return s.products.FindByIdentifier(identifier)
}

// ByCategory returns one page of in-stock products in a category.
func (s *CatalogService) ByCategory(category string, page, limit int) ([]models.Product, orm.Pagination, error) {
	return s.products.ByCategory(category, page, limit)
}

// Featured returns all featured, in-stock products.
func (s *CatalogService) Featured() ([]models.Product, error) {
	return s.products.Featured()
}

// Categories returns the distinct in-stock categories with product counts,
// sorted ascending by name. The aggregate is served from cache when warm.
func (s *CatalogService) Categories() ([]CategorySummary, error) {
	var summaries []CategorySummary
	if cache.Get(categoriesCacheKey, &summaries) {
		return summaries, nil
	}

	rows, err := s.products.Categories()
	if err != nil {
		return nil, err
	}

	summaries = collection.Map(rows, func(row repositories.CategoryCount) CategorySummary {
		return CategorySummary{
			Name:  row.Category,
			Count: row.Count,
			Slug:  Slugify(row.Category),
		}
	})

	_ = cache.Set(categoriesCacheKey, summaries, categoriesCacheTTL)
	return summaries, nil
}

// Slugify lowercases s and collapses each whitespace run into a single hyphen.
// Other characters pass through untouched.
func Slugify(s string) string {
	return whitespaceRE.ReplaceAllString(strings.ToLower(s), "-")
}
