package middleware

import (
	"net/http"
	"strings"

	"github.com/shashiranjanraj/shinyflakes/pkg/auth"
	"github.com/shashiranjanraj/shinyflakes/pkg/response"
)

// Auth validates the bearer token, rejects revoked tokens, and stores the
// decoded claims in the request context for handlers to read via
// auth.ClaimsFromCtx.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		if header == "" || token == header {
			response.Unauthorized(w)
			return
		}

		claims, err := auth.ValidateToken(token)
		if err != nil {
			response.Unauthorized(w)
			return
		}

		ctx := auth.WithClaims(r.Context(), claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
