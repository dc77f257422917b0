package repositories_test

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/shashiranjanraj/shinyflakes/app/models"
	"github.com/shashiranjanraj/shinyflakes/app/repositories"
	"github.com/shashiranjanraj/shinyflakes/database/seeders"
	"github.com/shashiranjanraj/shinyflakes/pkg/database"
	"github.com/shashiranjanraj/shinyflakes/pkg/orm"
)

// setupDB opens an in-memory database seeded with the canonical ten
// products and points the global connection at it.
func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.Product{}, &models.User{}))
	require.NoError(t, seeders.SeedProducts(db))

	prev := database.DB
	database.DB = db
	t.Cleanup(func() { database.DB = prev })

	return db
}

func TestListAppliesImplicitInStockFilter(t *testing.T) {
	setupDB(t)
	repo := repositories.NewProductRepository()

	products, pagination, err := repo.List(repositories.ProductFilter{}, 1, 20)
	require.NoError(t, err)

	// One of the ten seeded products is out of stock.
	assert.Len(t, products, 9)
	assert.EqualValues(t, 9, pagination.Total)
	for _, p := range products {
		assert.True(t, p.InStock, "product %q should be in stock", p.Name)
	}
}

func TestListCategoryWithOnlyOutOfStockProductIsEmpty(t *testing.T) {
	setupDB(t)
	repo := repositories.NewProductRepository()

	products, pagination, err := repo.List(repositories.ProductFilter{Category: "legal"}, 1, 20)
	require.NoError(t, err)

	assert.Empty(t, products)
	assert.EqualValues(t, 0, pagination.Total)
	assert.Equal(t, 0, pagination.TotalPages)
}

func TestListFeaturedOnlyActivatesOnLiteralTrue(t *testing.T) {
	setupDB(t)
	repo := repositories.NewProductRepository()

	featured, _, err := repo.List(repositories.ProductFilter{Featured: "true"}, 1, 20)
	require.NoError(t, err)
	assert.Len(t, featured, 4)
	for _, p := range featured {
		assert.True(t, p.Featured)
	}

	// Any other value, truthy-looking or not, is ignored.
	for _, raw := range []string{"1", "TRUE", "false", "yes"} {
		products, _, err := repo.List(repositories.ProductFilter{Featured: raw}, 1, 20)
		require.NoError(t, err)
		assert.Len(t, products, 9, "featured=%q should not filter", raw)
	}
}

func TestListSearchMatchesNameOrDescription(t *testing.T) {
	setupDB(t)
	repo := repositories.NewProductRepository()

	// "crystal" appears in the Blue Sky name and in Gus's description.
	products, _, err := repo.List(repositories.ProductFilter{Search: "CRYSTAL"}, 1, 20)
	require.NoError(t, err)

	names := make([]string, 0, len(products))
	for _, p := range products {
		names = append(names, p.Name)
	}
	assert.Contains(t, names, "Blue Sky Crystal")
	assert.Contains(t, names, "Gus's Professional Grade")
}

func TestListSearchIsGroupedWithOtherFilters(t *testing.T) {
	setupDB(t)
	repo := repositories.NewProductRepository()

	// Search alone matches multiple categories; combined with a category
	// filter the OR group must not leak past the AND.
	products, _, err := repo.List(repositories.ProductFilter{
		Search:   "crystal",
		Category: "premium",
	}, 1, 20)
	require.NoError(t, err)

	require.Len(t, products, 1)
	assert.Equal(t, "Blue Sky Crystal", products[0].Name)
}

func TestListPagination(t *testing.T) {
	setupDB(t)
	repo := repositories.NewProductRepository()

	page1, pagination, err := repo.List(repositories.ProductFilter{}, 1, 4)
	require.NoError(t, err)
	assert.Len(t, page1, 4)
	assert.EqualValues(t, 9, pagination.Total)
	assert.Equal(t, 3, pagination.TotalPages)

	page3, pagination, err := repo.List(repositories.ProductFilter{}, 3, 4)
	require.NoError(t, err)
	assert.Len(t, page3, 1)
	assert.Equal(t, 3, pagination.Page)

	// Past the end: valid, empty.
	page9, _, err := repo.List(repositories.ProductFilter{}, 9, 4)
	require.NoError(t, err)
	assert.Empty(t, page9)
}

func TestFindByIdentifierNumericUsesID(t *testing.T) {
	db := setupDB(t)
	repo := repositories.NewProductRepository()

	var first models.Product
	require.NoError(t, db.Order("id asc").First(&first).Error)

	found, err := repo.FindByIdentifier("1")
	require.NoError(t, err)
	assert.Equal(t, first.ID, found.ID)
}

func TestFindByIdentifierNumericNeverFallsBackToSlug(t *testing.T) {
	db := setupDB(t)
	repo := repositories.NewProductRepository()

	// A product whose slug is a numeric string must not be reachable via
	// a numeric identifier.
	decoy := models.Product{
		Name: "Decoy", Description: "d", Price: 1, Category: "decoy",
		InStock: true, Quantity: 1, Slug: "424242",
	}
	require.NoError(t, db.Create(&decoy).Error)

	_, err := repo.FindByIdentifier("424242")
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestFindByIdentifierFractionalAndNegativeAreNumeric(t *testing.T) {
	db := setupDB(t)
	repo := repositories.NewProductRepository()

	// Fractional and negative identifiers are numeric, so they resolve by
	// id (and miss), never by slug, even when a matching slug exists.
	for _, slug := range []string{"5.5", "-3"} {
		decoy := models.Product{
			Name: "Decoy " + slug, Description: "d", Price: 1, Category: "decoy",
			InStock: true, Quantity: 1, Slug: slug,
		}
		require.NoError(t, db.Create(&decoy).Error)

		_, err := repo.FindByIdentifier(slug)
		assert.True(t, errors.Is(err, gorm.ErrRecordNotFound),
			"identifier %q must not resolve as a slug", slug)
	}
}

func TestFindByIdentifierSlug(t *testing.T) {
	setupDB(t)
	repo := repositories.NewProductRepository()

	found, err := repo.FindByIdentifier("blue-sky-crystal")
	require.NoError(t, err)
	assert.Equal(t, "Blue Sky Crystal", found.Name)

	// Out-of-stock products still resolve by identifier.
	saul, err := repo.FindByIdentifier("saul-legal-powder")
	require.NoError(t, err)
	assert.False(t, saul.InStock)

	_, err = repo.FindByIdentifier("no-such-slug")
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestCategoriesOmitOutOfStockAndSortAscending(t *testing.T) {
	setupDB(t)
	repo := repositories.NewProductRepository()

	rows, err := repo.Categories()
	require.NoError(t, err)

	// Nine in-stock products, each in its own category; "legal" holds
	// only the out-of-stock product and must not appear.
	require.Len(t, rows, 9)
	for i, row := range rows {
		assert.Equal(t, 1, row.Count)
		assert.NotEqual(t, "legal", row.Category)
		if i > 0 {
			assert.Less(t, rows[i-1].Category, row.Category)
		}
	}
}

// stubCache is a map-backed orm.Cacher.
type stubCache struct {
	data map[string][]byte
	sets int
}

func (c *stubCache) Get(key string, dest interface{}) bool {
	raw, ok := c.data[key]
	if !ok {
		return false
	}
	return json.Unmarshal(raw, dest) == nil
}

func (c *stubCache) Set(key string, value interface{}, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.data[key] = raw
	c.sets++
	return nil
}

func TestFeaturedReadsThroughCache(t *testing.T) {
	db := setupDB(t)
	repo := repositories.NewProductRepository()

	stub := &stubCache{data: map[string][]byte{}}
	prev := orm.CacheStore
	orm.CacheStore = stub
	t.Cleanup(func() { orm.CacheStore = prev })

	first, err := repo.Featured()
	require.NoError(t, err)
	require.Len(t, first, 4)
	assert.Equal(t, 1, stub.sets)
	assert.Contains(t, stub.data, repositories.FeaturedCacheKey)

	// Wipe the table: a warm key keeps serving the listing without a query.
	require.NoError(t, db.Where("1 = 1").Delete(&models.Product{}).Error)

	second, err := repo.Featured()
	require.NoError(t, err)
	assert.Len(t, second, 4)
	assert.Equal(t, 1, stub.sets, "a hit must not refill the cache")
}

func TestFeatured(t *testing.T) {
	db := setupDB(t)
	repo := repositories.NewProductRepository()

	// Flag the out-of-stock product featured: it must still be excluded.
	require.NoError(t, db.Model(&models.Product{}).
		Where("slug = ?", "saul-legal-powder").
		Update("featured", true).Error)

	products, err := repo.Featured()
	require.NoError(t, err)

	assert.Len(t, products, 4)
	for _, p := range products {
		assert.True(t, p.Featured)
		assert.True(t, p.InStock)
	}
}
