package controllers

import (
	"fmt"
	"net/http"

	"github.com/shashiranjanraj/shinyflakes/pkg/auth"
	"github.com/shashiranjanraj/shinyflakes/pkg/bind"
	"github.com/shashiranjanraj/shinyflakes/pkg/collection"
	"github.com/shashiranjanraj/shinyflakes/pkg/response"
	"github.com/shashiranjanraj/shinyflakes/pkg/router"
)

// cartItem is one line of the (mocked) server-side cart.
type cartItem struct {
	ID          int     `json:"id"`
	ProductID   int     `json:"product_id"`
	ProductName string  `json:"product_name"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	Subtotal    float64 `json:"subtotal"`
	Image       string  `json:"image"`
}

type cartAddRequest struct {
	ProductID int `json:"product_id" validate:"required,integer,min=1"`
	Quantity  int `json:"quantity"   validate:"nullable,integer,min=1"`
}

type cartUpdateRequest struct {
	Quantity int `json:"quantity" validate:"required,integer,min=1"`
}

// CartController serves the cart endpoints. Cart state is not persisted
// yet; the endpoints return canned payloads so clients can integrate
// against the final shapes.
//
// TODO: back with a cart_items table once checkout lands.
type CartController struct{}

func NewCartController() *CartController {
	return &CartController{}
}

// Index returns the caller's cart.
// GET /api/cart
func (c *CartController) Index(w http.ResponseWriter, r *http.Request) {
	claims := auth.ClaimsFromCtx(r.Context())

	items := []cartItem{
		{
			ID:          1,
			ProductID:   1,
			ProductName: "Blue Sky Crystals",
			Price:       99.99,
			Quantity:    2,
			Subtotal:    199.98,
			Image:       "/products/blue-sky.jpg",
		},
	}

	total := collection.Reduce(items, 0.0, func(sum float64, item cartItem) float64 {
		return sum + item.Subtotal
	})

	response.JSON(w, http.StatusOK, response.Map{
		"data":    items,
		"user_id": claims.UserID,
		"total":   total,
	})
}

// Add puts a product in the cart.
// POST /api/cart/add
func (c *CartController) Add(w http.ResponseWriter, r *http.Request) {
	claims := auth.ClaimsFromCtx(r.Context())

	var body cartAddRequest
	errs, err := bind.JSON(r, &body)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	if body.Quantity == 0 {
		body.Quantity = 1
	}

	response.JSON(w, http.StatusOK, response.Map{
		"message":    "Item added to cart",
		"product_id": body.ProductID,
		"quantity":   body.Quantity,
		"user_id":    claims.UserID,
	})
}

// Update changes a cart line's quantity.
// PUT /api/cart/{id}
func (c *CartController) Update(w http.ResponseWriter, r *http.Request) {
	id := router.Param(r, "id")

	var body cartUpdateRequest
	errs, err := bind.JSON(r, &body)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	response.JSON(w, http.StatusOK, response.Map{
		"message":  fmt.Sprintf("Cart item %s updated", id),
		"quantity": body.Quantity,
	})
}

// Remove deletes a cart line.
// DELETE /api/cart/{id}
func (c *CartController) Remove(w http.ResponseWriter, r *http.Request) {
	id := router.Param(r, "id")

	response.JSON(w, http.StatusOK, response.Map{
		"message": fmt.Sprintf("Cart item %s removed", id),
	})
}
