package client

// Product is the catalogue entry as the API serialises it.
type Product struct {
	ID             uint     `json:"id"`
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	Price          float64  `json:"price"`
	Category       string   `json:"category"`
	Image          string   `json:"image"`
	ImageURL       string   `json:"imageUrl"`
	Images         []string `json:"images"`
	InStock        bool     `json:"inStock"`
	Quantity       int      `json:"quantity"`
	Rating         float64  `json:"rating"`
	ReviewCount    int      `json:"reviewCount"`
	Slug           string   `json:"slug"`
	Featured       bool     `json:"featured"`
	IsAvailable    bool     `json:"isAvailable"`
	FormattedPrice string   `json:"formattedPrice"`
	CreatedAt      string   `json:"createdAt"`
	UpdatedAt      string   `json:"updatedAt"`
}

// Category is one entry of the category listing.
type Category struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
	Slug  string `json:"slug"`
}

// Pagination mirrors the listing meta block.
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

// ListMeta is the full meta block of a product listing.
type ListMeta struct {
	Pagination
	Category string `json:"category,omitempty"`
	Search   string `json:"search,omitempty"`
	Featured string `json:"featured,omitempty"`
}

// ProductListResponse is the body of GET /api/products.
type ProductListResponse struct {
	Data []Product `json:"data"`
	Meta ListMeta  `json:"meta"`
}

// ProductResponse is the body of GET /api/products/{id}.
type ProductResponse struct {
	Data Product `json:"data"`
}

// CategoriesResponse is the body of GET /api/products/categories.
type CategoriesResponse struct {
	Data []Category `json:"data"`
}

// User is the public user shape.
type User struct {
	ID        uint   `json:"id"`
	Email     string `json:"email"`
	FullName  string `json:"fullName"`
	Role      string `json:"role"`
	CreatedAt string `json:"createdAt"`
}

// Token is the bearer token payload issued on login/register.
type Token struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// AuthResponse is the body of login and register.
type AuthResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	User    User   `json:"user"`
	Token   Token  `json:"token"`
}

// MeResponse is the body of GET /api/auth/me.
type MeResponse struct {
	Success bool `json:"success"`
	User    User `json:"user"`
}

// MessageResponse is a generic {message} body.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// HealthResponse is the body of GET /api/health.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Service   string `json:"service"`
}
