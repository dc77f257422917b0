// Package client is the Go SDK for the ShinyFlakes API.
//
// It pairs an HTTP client with local stores (products, cart, wishlist,
// auth) that cache server data, re-filter and re-sort it without extra
// round trips, and persist their state through a pluggable Storage.
package client

import (
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/shashiranjanraj/shinyflakes/pkg/http"
)

const (
	tokenStorageKey = "auth_token"
	userStorageKey  = "auth_user"
)

// APIError is a non-2xx response from the server.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: HTTP %d: %s", e.StatusCode, e.Message)
}

// API talks to the ShinyFlakes REST API. Safe for concurrent use.
type API struct {
	baseURL string
	storage Storage
	timeout time.Duration

	mu    sync.RWMutex
	token string
}

// NewAPI creates an API client. baseURL is the server origin, e.g.
// "http://localhost:8080". The bearer token, if one was persisted, is
// restored from storage.
func NewAPI(baseURL string, storage Storage) *API {
	if storage == nil {
		storage = NewMemoryStorage()
	}
	a := &API{
		baseURL: baseURL + "/api",
		storage: storage,
		timeout: 30 * time.Second,
	}
	if token, ok := storage.Get(tokenStorageKey); ok {
		a.token = token
	}
	return a
}

// Token returns the current bearer token ("" when logged out).
func (a *API) Token() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.token
}

// SetToken stores the bearer token in memory and in storage.
func (a *API) SetToken(token string) {
	a.mu.Lock()
	a.token = token
	a.mu.Unlock()
	_ = a.storage.Set(tokenStorageKey, token)
}

// ClearAuth drops the token and any persisted user snapshot.
func (a *API) ClearAuth() {
	a.mu.Lock()
	a.token = ""
	a.mu.Unlock()
	_ = a.storage.Remove(tokenStorageKey)
	_ = a.storage.Remove(userStorageKey)
}

func (a *API) call(req *http.Request, params map[string]string, dest interface{}) error {
	for k, v := range params {
		if v != "" {
			req = req.Query(k, v)
		}
	}
	if token := a.Token(); token != "" {
		req = req.Bearer(token)
	}

	resp, err := req.Timeout(a.timeout).Send()
	if err != nil {
		return err
	}

	if !resp.OK() {
		// A 401 means the persisted credentials are no longer valid.
		if resp.StatusCode == 401 {
			a.ClearAuth()
		}

		apiErr := &APIError{StatusCode: resp.StatusCode, Message: resp.Text()}
		var body struct {
			Message string `json:"message"`
		}
		if err := resp.JSON(&body); err == nil && body.Message != "" {
			apiErr.Message = body.Message
		}
		return apiErr
	}

	if dest == nil {
		return nil
	}
	return resp.JSON(dest)
}

func (a *API) get(path string, params map[string]string, dest interface{}) error {
	// GETs are idempotent, so one transient transport failure is retried.
	return a.call(http.Get(a.baseURL+path).Retry(2, 200*time.Millisecond), params, dest)
}

func (a *API) post(path string, body, dest interface{}) error {
	return a.call(http.Post(a.baseURL+path).Body(body), nil, dest)
}

func (a *API) put(path string, body, dest interface{}) error {
	return a.call(http.Put(a.baseURL+path).Body(body), nil, dest)
}

func (a *API) delete(path string, dest interface{}) error {
	return a.call(http.Delete(a.baseURL+path), nil, dest)
}

// ------------------- Products -------------------

// ListParams are the server-side listing filters.
type ListParams struct {
	Page     int
	Limit    int
	Category string
	Search   string
	Featured *bool
}

func (p ListParams) queryParams() map[string]string {
	params := map[string]string{
		"category": p.Category,
		"search":   p.Search,
	}
	if p.Page > 0 {
		params["page"] = strconv.Itoa(p.Page)
	}
	if p.Limit > 0 {
		params["limit"] = strconv.Itoa(p.Limit)
	}
	if p.Featured != nil {
		params["featured"] = strconv.FormatBool(*p.Featured)
	}
	return params
}

// ListProducts fetches one catalogue page.
func (a *API) ListProducts(p ListParams) (ProductListResponse, error) {
	var out ProductListResponse
	err := a.get("/products", p.queryParams(), &out)
	return out, err
}

// GetProduct fetches one product by id or slug.
func (a *API) GetProduct(identifier string) (Product, error) {
	var out ProductResponse
	err := a.get("/products/"+identifier, nil, &out)
	return out.Data, err
}

// ProductsByCategory fetches one page of a category.
func (a *API) ProductsByCategory(category string, page, limit int) (ProductListResponse, error) {
	var out ProductListResponse
	params := map[string]string{}
	if page > 0 {
		params["page"] = strconv.Itoa(page)
	}
	if limit > 0 {
		params["limit"] = strconv.Itoa(limit)
	}
	err := a.get("/products/category/"+category, params, &out)
	return out, err
}

// Categories fetches the category aggregate.
func (a *API) Categories() ([]Category, error) {
	var out CategoriesResponse
	err := a.get("/products/categories", nil, &out)
	return out.Data, err
}

// FeaturedProducts fetches every featured, in-stock product.
func (a *API) FeaturedProducts() ([]Product, error) {
	var out struct {
		Data []Product `json:"data"`
	}
	err := a.get("/products/featured", nil, &out)
	return out.Data, err
}

// ------------------- Auth -------------------

// Login authenticates and persists the issued token.
func (a *API) Login(email, password string) (AuthResponse, error) {
	var out AuthResponse
	err := a.post("/auth/login", map[string]string{
		"email":    email,
		"password": password,
	}, &out)
	if err != nil {
		return out, err
	}
	a.SetToken(out.Token.Value)
	return out, nil
}

// Register creates an account and persists the issued token.
func (a *API) Register(fullName, email, password string) (AuthResponse, error) {
	var out AuthResponse
	err := a.post("/auth/register", map[string]string{
		"fullName": fullName,
		"email":    email,
		"password": password,
	}, &out)
	if err != nil {
		return out, err
	}
	a.SetToken(out.Token.Value)
	return out, nil
}

// Logout revokes the token server-side and clears local credentials.
func (a *API) Logout() error {
	err := a.delete("/auth/logout", nil)
	a.ClearAuth()
	return err
}

// Me fetches the authenticated user.
func (a *API) Me() (User, error) {
	var out MeResponse
	err := a.get("/auth/me", nil, &out)
	return out.User, err
}

// UpdateProfile changes the caller's profile fields.
func (a *API) UpdateProfile(fullName string) (User, error) {
	var out struct {
		User User `json:"user"`
	}
	err := a.put("/auth/profile", map[string]string{"fullName": fullName}, &out)
	return out.User, err
}

// ------------------- Health -------------------

// Health probes the API.
func (a *API) Health() (HealthResponse, error) {
	var out HealthResponse
	err := a.get("/health", nil, &out)
	return out, err
}
