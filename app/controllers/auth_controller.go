package controllers

import (
	"errors"
	"net/http"

	"github.com/shashiranjanraj/shinyflakes/app/resources"
	"github.com/shashiranjanraj/shinyflakes/app/services"
	"github.com/shashiranjanraj/shinyflakes/pkg/auth"
	"github.com/shashiranjanraj/shinyflakes/pkg/bind"
	"github.com/shashiranjanraj/shinyflakes/pkg/logger"
	"github.com/shashiranjanraj/shinyflakes/pkg/resource"
	"github.com/shashiranjanraj/shinyflakes/pkg/response"
)

type registerRequest struct {
	FullName string `json:"fullName" validate:"required,min=2,max=255"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=32"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type profileRequest struct {
	FullName string `json:"fullName" validate:"nullable,min=2,max=255"`
}

// AuthController serves registration, login and profile endpoints.
type AuthController struct {
	service *services.AuthService
}

func NewAuthController() *AuthController {
	return &AuthController{service: services.NewAuthService()}
}

func tokenPayload(token string) response.Map {
	return response.Map{"type": "Bearer", "value": token}
}

// Register creates a new account.
// POST /api/auth/register
func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var body registerRequest
	errs, err := bind.JSON(r, &body)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	user, token, err := c.service.Register(body.FullName, body.Email, body.Password)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			response.JSON(w, http.StatusBadRequest, response.Map{
				"success": false,
				"message": "User with this email already exists",
			})
			return
		}
		logger.WithCtx(r.Context()).Error("auth: register failed", "error", err)
		response.JSON(w, http.StatusInternalServerError, response.Map{
			"success": false,
			"message": "Registration failed",
		})
		return
	}

	response.JSON(w, http.StatusCreated, response.Map{
		"success": true,
		"message": "User registered successfully",
		"user":    resource.One(resources.UserResource{}, user),
		"token":   tokenPayload(token),
	})
}

// Login verifies credentials and issues a bearer token.
// POST /api/auth/login
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var body loginRequest
	errs, err := bind.JSON(r, &body)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	user, token, err := c.service.Login(body.Email, body.Password)
	if err != nil {
		if !errors.Is(err, services.ErrInvalidCredentials) {
			logger.WithCtx(r.Context()).Error("auth: login failed", "error", err)
		}
		response.JSON(w, http.StatusUnauthorized, response.Map{
			"success": false,
			"message": "Invalid email or password",
		})
		return
	}

	response.JSON(w, http.StatusOK, response.Map{
		"success": true,
		"message": "Login successful",
		"user":    resource.One(resources.UserResource{}, user),
		"token":   tokenPayload(token),
	})
}

// Logout revokes the presented token.
// DELETE /api/auth/logout
func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	claims := auth.ClaimsFromCtx(r.Context())
	if claims == nil {
		response.Unauthorized(w)
		return
	}

	if err := c.service.Logout(claims); err != nil {
		logger.WithCtx(r.Context()).Error("auth: logout failed", "error", err)
		response.JSON(w, http.StatusInternalServerError, response.Map{
			"success": false,
			"message": "Logout failed",
		})
		return
	}

	response.JSON(w, http.StatusOK, response.Map{
		"success": true,
		"message": "Logged out successfully",
	})
}

// Me returns the authenticated user.
// GET /api/auth/me
func (c *AuthController) Me(w http.ResponseWriter, r *http.Request) {
	claims := auth.ClaimsFromCtx(r.Context())
	if claims == nil {
		response.Unauthorized(w)
		return
	}

	user, err := c.service.Me(claims.UserID)
	if err != nil {
		response.JSON(w, http.StatusUnauthorized, response.Map{
			"success": false,
			"message": "User not authenticated",
		})
		return
	}

	response.JSON(w, http.StatusOK, response.Map{
		"success": true,
		"user":    resource.One(resources.UserResource{}, user),
	})
}

// UpdateProfile changes the caller's profile fields.
// PUT /api/auth/profile
func (c *AuthController) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	claims := auth.ClaimsFromCtx(r.Context())
	if claims == nil {
		response.Unauthorized(w)
		return
	}

	var body profileRequest
	errs, err := bind.JSON(r, &body)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	user, err := c.service.UpdateProfile(claims.UserID, body.FullName)
	if err != nil {
		logger.WithCtx(r.Context()).Error("auth: profile update failed", "error", err)
		response.JSON(w, http.StatusInternalServerError, response.Map{
			"success": false,
			"message": "Profile update failed",
		})
		return
	}

	response.JSON(w, http.StatusOK, response.Map{
		"success": true,
		"message": "Profile updated successfully",
		"user":    resource.One(resources.UserResource{}, user),
	})
}
