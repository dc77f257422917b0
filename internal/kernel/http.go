// Package kernel assembles the HTTP handler: global middleware stack,
// operational endpoints, and the API routes.
package kernel

import (
	"net/http"
	"time"

	"github.com/shashiranjanraj/shinyflakes/app/routes"
	"github.com/shashiranjanraj/shinyflakes/pkg/cache"
	"github.com/shashiranjanraj/shinyflakes/pkg/metrics"
	"github.com/shashiranjanraj/shinyflakes/pkg/middleware"
	"github.com/shashiranjanraj/shinyflakes/pkg/orm"
	"github.com/shashiranjanraj/shinyflakes/pkg/reqid"
	"github.com/shashiranjanraj/shinyflakes/pkg/response"
	"github.com/shashiranjanraj/shinyflakes/pkg/router"
	"github.com/shashiranjanraj/shinyflakes/pkg/storage"
)

// HTTPKernel owns the router and the global middleware stack.
type HTTPKernel struct {
	router *router.Router
}

// NewHTTPKernel builds the full handler.
func NewHTTPKernel() *HTTPKernel {
	// Wire cache into the ORM read-through helper (keeps the two packages
	// from importing each other).
	orm.CacheStore = &ormCache{}

	r := router.New()

	// Global middleware stack, outermost first:
	//  1. Prometheus metrics (outermost, so it sees total latency)
	//  2. Recovery: catches panics before they kill the goroutine
	//  3. Request ID: injected before anything logs
	//  4. Logger: logs request_id from context
	//  5. CORS
	//  6. Rate limiter
	r.Use(metrics.Middleware())
	r.Use(middleware.Recovery)
	r.Use(reqid.Middleware())
	r.Use(middleware.Logger)
	r.Use(middleware.CORS(middleware.DefaultCORSOptions()))
	r.Use(middleware.RateLimit(200, time.Minute))

	// Prometheus scrape endpoint, outside the named route registry.
	r.HandleFunc("/metrics", metrics.Handler())

	// Local-disk product images.
	r.Handle("/storage/*", storage.FileServer())

	routes.RegisterAPI(r)

	// Unknown paths get a JSON 404 instead of the default text body.
	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		response.NotFound(w, "Route not found", "The requested API endpoint does not exist")
	})

	return &HTTPKernel{router: r}
}

// Handler returns the assembled http.Handler.
func (k *HTTPKernel) Handler() http.Handler {
	return k.router.Handler()
}

// Router exposes the named-route registry (used by the route:list command).
func (k *HTTPKernel) Router() *router.Router {
	return k.router
}

// ormCache bridges pkg/cache.Get/Set to the orm.Cacher interface.
type ormCache struct{}

func (c *ormCache) Get(key string, dest interface{}) bool {
	return cache.Get(key, dest)
}

func (c *ormCache) Set(key string, value interface{}, ttl time.Duration) error {
	return cache.Set(key, value, ttl)
}
