package controllers

import (
	"math/rand"
	"net/http"
	"strconv"

	"github.com/shashiranjanraj/shinyflakes/pkg/auth"
	"github.com/shashiranjanraj/shinyflakes/pkg/response"
	"github.com/shashiranjanraj/shinyflakes/pkg/router"
)

// OrderController serves the order endpoints. Like the cart, orders are
// canned payloads until checkout is persisted.
type OrderController struct{}

func NewOrderController() *OrderController {
	return &OrderController{}
}

// Index lists the caller's orders.
// GET /api/orders
func (c *OrderController) Index(w http.ResponseWriter, r *http.Request) {
	claims := auth.ClaimsFromCtx(r.Context())

	orders := []response.Map{
		{
			"id":         1,
			"user_id":    claims.UserID,
			"total":      199.98,
			"status":     "shipped",
			"created_at": "2025-01-15T10:30:00Z",
			"items": []response.Map{
				{
					"product_name": "Blue Sky Crystals",
					"quantity":     2,
					"price":        99.99,
				},
			},
		},
	}

	response.JSON(w, http.StatusOK, response.Map{
		"data":    orders,
		"user_id": claims.UserID,
	})
}

// Store places a new order.
// POST /api/orders
func (c *OrderController) Store(w http.ResponseWriter, r *http.Request) {
	claims := auth.ClaimsFromCtx(r.Context())

	response.JSON(w, http.StatusCreated, response.Map{
		"message":  "Order created successfully",
		"user_id":  claims.UserID,
		"order_id": rand.Intn(1000),
	})
}

// Show returns one order.
// GET /api/orders/{id}
func (c *OrderController) Show(w http.ResponseWriter, r *http.Request) {
	claims := auth.ClaimsFromCtx(r.Context())
	id, _ := strconv.Atoi(router.Param(r, "id"))

	response.JSON(w, http.StatusOK, response.Map{
		"data": response.Map{
			"id":      id,
			"user_id": claims.UserID,
			"status":  "shipped",
			"total":   199.98,
		},
	})
}
