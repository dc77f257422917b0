// Package routes wires controllers onto the router.
package routes

import (
	"github.com/shashiranjanraj/shinyflakes/app/controllers"
	"github.com/shashiranjanraj/shinyflakes/pkg/middleware"
	"github.com/shashiranjanraj/shinyflakes/pkg/router"
)

// RegisterAPI mounts every /api endpoint.
func RegisterAPI(r *router.Router) {
	health := controllers.NewHealthController()
	authCtrl := controllers.NewAuthController()
	products := controllers.NewProductController()
	cart := controllers.NewCartController()
	orders := controllers.NewOrderController()

	api := r.Group("/api")

	api.Get("/health", "health", health.Check)

	authGroup := api.Group("/auth")
	authGroup.Post("/register", "auth.register", authCtrl.Register)
	authGroup.Post("/login", "auth.login", authCtrl.Login)
	authGroup.Delete("/logout", "auth.logout", authCtrl.Logout, middleware.Auth)
	authGroup.Get("/me", "auth.me", authCtrl.Me, middleware.Auth)
	authGroup.Put("/profile", "auth.profile", authCtrl.UpdateProfile, middleware.Auth)

	productGroup := api.Group("/products")
	productGroup.Get("/", "products.index", products.Index)
	productGroup.Get("/featured", "products.featured", products.Featured)
	productGroup.Get("/categories", "products.categories", products.Categories)
	productGroup.Get("/category/{category}", "products.byCategory", products.ByCategory)
	productGroup.Get("/{id}", "products.show", products.Show)

	cartGroup := api.Group("/cart", middleware.Auth)
	cartGroup.Get("/", "cart.index", cart.Index)
	cartGroup.Post("/add", "cart.add", cart.Add)
	cartGroup.Put("/{id}", "cart.update", cart.Update)
	cartGroup.Delete("/{id}", "cart.remove", cart.Remove)

	orderGroup := api.Group("/orders", middleware.Auth)
	orderGroup.Get("/", "orders.index", orders.Index)
	orderGroup.Post("/", "orders.store", orders.Store)
	orderGroup.Get("/{id}", "orders.show", orders.Show)
}
