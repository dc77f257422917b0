// Package resources holds the API Resource transformers that shape models
// into their public JSON form.
package resources

import (
	"github.com/shashiranjanraj/shinyflakes/app/models"
	"github.com/shashiranjanraj/shinyflakes/pkg/resource"
	"github.com/shashiranjanraj/shinyflakes/pkg/storage"
)

// ProductResource serialises a product for the catalogue endpoints.
type ProductResource struct{}

func (ProductResource) ToArray(p models.Product) resource.Map {
	images := p.Images
	if images == nil {
		images = models.ImageList{}
	}

	return resource.Map{
		"id":             p.ID,
		"name":           p.Name,
		"description":    p.Description,
		"price":          p.Price,
		"category":       p.Category,
		"image":          p.Image,
		"imageUrl":       storage.URL(p.Image),
		"images":         images,
		"inStock":        p.InStock,
		"quantity":       p.Quantity,
		"rating":         p.Rating,
		"reviewCount":    p.ReviewCount,
		"slug":           p.Slug,
		"featured":       p.Featured,
		"isAvailable":    p.IsAvailable(),
		"formattedPrice": p.FormattedPrice(),
		"createdAt":      p.CreatedAt,
		"updatedAt":      p.UpdatedAt,
	}
}
