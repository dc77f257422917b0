package repositories

import (
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/shinyflakes/app/models"
	"github.com/shashiranjanraj/shinyflakes/pkg/orm"
)

// FeaturedCacheKey holds the cached featured listing. Seeding drops it so a
// reseed is visible immediately.
const (
	FeaturedCacheKey = "products:featured"

	featuredCacheTTL = 5 * time.Minute
)

// ProductFilter carries the raw listing filters from the request.
// Values are the query-string strings as received; empty means "not set".
type ProductFilter struct {
	Category string
	Search   string
	Featured string // only the literal "true" activates the featured filter
}

// CategoryCount is one row of the category aggregate.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// ProductRepository handles database operations for Product.
type ProductRepository struct{}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{}
}

// List runs the catalogue query: filters ANDed on top of the implicit
// in-stock predicate, then paginated. Out-of-stock products never appear
// in listings.
func (r *ProductRepository) List(f ProductFilter, page, limit int) ([]models.Product, orm.Pagination, error) {
	q := orm.DB().Model(&models.Product{})

	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}

	if f.Featured == "true" {
		q = q.Where("featured = ?", true)
	}

	if f.Search != "" {
		needle := "%" + strings.ToLower(f.Search) + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", needle, needle)
	}

	q = q.Where("in_stock = ?", true)

	var products []models.Product
	pagination, err := q.GetWithPagination(&products, page, limit)
	return products, pagination, err
}

// FindByIdentifier resolves a product by id or slug.
// A numeric identifier is treated as an id, never a slug; non-numeric
// identifiers resolve by slug.
func (r *ProductRepository) FindByIdentifier(identifier string) (models.Product, error) {
	var product models.Product

	// Anything that parses as a number counts as numeric, so "5.5" or "-3"
	// never reach the slug lookup. Only a non-negative integer can match an
	// id; other numeric forms miss outright.
	if _, ferr := strconv.ParseFloat(identifier, 64); ferr == nil {
		id, perr := strconv.ParseUint(identifier, 10, 64)
		if perr != nil {
			return product, gorm.ErrRecordNotFound
		}
		err := orm.DB().Model(&models.Product{}).Where("id = ?", uint(id)).First(&product)
		return product, err
	}

	err := orm.DB().Model(&models.Product{}).Where("slug = ?", identifier).First(&product)
	return product, err
}

// ByCategory lists in-stock products of one category, paginated.
func (r *ProductRepository) ByCategory(category string, page, limit int) ([]models.Product, orm.Pagination, error) {
	var products []models.Product
	pagination, err := orm.DB().Model(&models.Product{}).
		Where("category = ?", category).
		Where("in_stock = ?", true).
		GetWithPagination(&products, page, limit)
	return products, pagination, err
}

// Categories aggregates distinct categories over in-stock products only,
// sorted ascending by name. A category whose every product is out of stock
// does not appear.
func (r *ProductRepository) Categories() ([]CategoryCount, error) {
	var rows []CategoryCount
	err := orm.DB().Model(&models.Product{}).
		Select("category, COUNT(*) as count").
		Where("in_stock = ?", true).
		Group("category").
		Order("category asc").
		Scan(&rows)
	return rows, err
}

// Featured returns every featured, in-stock product (no pagination).
// The listing is read through the cache; a warm key skips the database.
func (r *ProductRepository) Featured() ([]models.Product, error) {
	var products []models.Product
	err := orm.DB().Model(&models.Product{}).
		Where("featured = ?", true).
		Where("in_stock = ?", true).
		Cache(FeaturedCacheKey, featuredCacheTTL, &products)
	return products, err
}

// Create persists a new product record.
func (r *ProductRepository) Create(product *models.Product) error {
	return orm.DB().Create(product)
}
