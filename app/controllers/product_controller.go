package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/shinyflakes/app/repositories"
	"github.com/shashiranjanraj/shinyflakes/app/resources"
	"github.com/shashiranjanraj/shinyflakes/app/services"
	"github.com/shashiranjanraj/shinyflakes/pkg/logger"
	"github.com/shashiranjanraj/shinyflakes/pkg/orm"
	"github.com/shashiranjanraj/shinyflakes/pkg/resource"
	"github.com/shashiranjanraj/shinyflakes/pkg/response"
	"github.com/shashiranjanraj/shinyflakes/pkg/router"
)

// ProductController serves the public catalogue endpoints.
type ProductController struct {
	catalog *services.CatalogService
}

func NewProductController() *ProductController {
	return &ProductController{catalog: services.NewCatalogService()}
}

// pageLimit reads page/limit from the query string. Missing or malformed
// values fall back to the listing defaults.
func pageLimit(r *http.Request) (int, int) {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = orm.DefaultPage
	}
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit < 1 {
		limit = orm.DefaultLimit
	}
	return page, limit
}

func paginationMeta(p orm.Pagination) response.Map {
	return response.Map{
		"page":       p.Page,
		"limit":      p.Limit,
		"total":      p.Total,
		"totalPages": p.TotalPages,
	}
}

// Index lists the catalogue, filtered by the query string.
// GET /api/products?page=&limit=&category=&search=&featured=
func (c *ProductController) Index(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, limit := pageLimit(r)

	filter := repositories.ProductFilter{
		Category: q.Get("category"),
		Search:   q.Get("search"),
		Featured: q.Get("featured"),
	}

	products, pagination, err := c.catalog.List(filter, page, limit)
	if err != nil {
		logger.WithCtx(r.Context()).Error("products: list failed", "error", err)
		response.Internal(w, "Failed to fetch products")
		return
	}

	// The meta block echoes the filters so clients can correlate responses
	// with the request that produced them.
	meta := paginationMeta(pagination)
	if filter.Category != "" {
		meta["category"] = filter.Category
	}
	if filter.Search != "" {
		meta["search"] = filter.Search
	}
	if filter.Featured != "" {
		meta["featured"] = filter.Featured
	}

	response.DataMeta(w, resource.CollectionOf(resources.ProductResource{}, products), meta)
}

// Show resolves one product by id or slug.
// GET /api/products/{id}
func (c *ProductController) Show(w http.ResponseWriter, r *http.Request) {
	identifier := router.Param(r, "id")

	product, err := c.catalog.Find(identifier)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(w, "Product not found",
				fmt.Sprintf("Product with identifier %s does not exist", identifier))
			return
		}
		logger.WithCtx(r.Context()).Error("products: show failed", "identifier", identifier, "error", err)
		response.Internal(w, "Failed to fetch product")
		return
	}

	response.Data(w, resource.One(resources.ProductResource{}, product))
}

// ByCategory lists one category's in-stock products.
// GET /api/products/category/{category}
func (c *ProductController) ByCategory(w http.ResponseWriter, r *http.Request) {
	category := router.Param(r, "category")
	page, limit := pageLimit(r)

	products, pagination, err := c.catalog.ByCategory(category, page, limit)
	if err != nil {
		logger.WithCtx(r.Context()).Error("products: by category failed", "category", category, "error", err)
		response.Internal(w, "Failed to fetch products by category")
		return
	}

	meta := paginationMeta(pagination)
	meta["category"] = category

	response.DataMeta(w, resource.CollectionOf(resources.ProductResource{}, products), meta)
}

// Categories returns the distinct in-stock categories with counts.
// GET /api/products/categories
func (c *ProductController) Categories(w http.ResponseWriter, r *http.Request) {
	summaries, err := c.catalog.Categories()
	if err != nil {
		logger.WithCtx(r.Context()).Error("products: categories failed", "error", err)
		response.Internal(w, "Failed to fetch categories")
		return
	}

	if summaries == nil {
		summaries = []services.CategorySummary{}
	}
	response.Data(w, summaries)
}

// Featured returns all featured, in-stock products.
// GET /api/products/featured
func (c *ProductController) Featured(w http.ResponseWriter, r *http.Request) {
	products, err := c.catalog.Featured()
	if err != nil {
		logger.WithCtx(r.Context()).Error("products: featured failed", "error", err)
		response.Internal(w, "Failed to fetch featured products")
		return
	}

	response.Data(w, resource.CollectionOf(resources.ProductResource{}, products))
}
