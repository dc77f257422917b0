package services

import (
	"errors"

	"github.com/shashiranjanraj/shinyflakes/app/models"
	"github.com/shashiranjanraj/shinyflakes/app/repositories"
	"github.com/shashiranjanraj/shinyflakes/pkg/auth"

	"gorm.io/gorm"
)

var (
	// ErrEmailTaken is returned when registering with an already-used email.
	ErrEmailTaken = errors.New("user with this email already exists")

	// ErrInvalidCredentials is returned on a failed login.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// AuthService owns registration, login and token lifecycle.
type AuthService struct {
	users *repositories.UserRepository
}

func NewAuthService() *AuthService {
	return &AuthService{users: repositories.NewUserRepository()}
}

// Register creates a new user with the default role and issues a token.
func (s *AuthService) Register(fullName, email, password string) (models.User, string, error) {
	if _, err := s.users.FindByEmail(email); err == nil {
		return models.User{}, "", ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, "", err
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return models.User{}, "", err
	}

	user := models.User{
		FullName: fullName,
		Email:    email,
		Password: hashed,
		Role:     "user",
	}
	if err := s.users.Create(&user); err != nil {
		return models.User{}, "", err
	}

	token, err := auth.GenerateToken(user.ID, user.Role)
	return user, token, err
}

// Login verifies credentials and issues a token.
func (s *AuthService) Login(email, password string) (models.User, string, error) {
	user, err := s.users.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, "", ErrInvalidCredentials
		}
		return models.User{}, "", err
	}

	if !auth.CheckPassword(user.Password, password) {
		return models.User{}, "", ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID, user.Role)
	return user, token, err
}

// Logout revokes the presented token so it stops validating before expiry.
func (s *AuthService) Logout(claims *auth.Claims) error {
	return auth.RevokeToken(claims)
}

// Me fetches the authenticated user's record.
func (s *AuthService) Me(userID uint) (models.User, error) {
	return s.users.FindByID(userID)
}

// UpdateProfile changes the mutable profile fields.
func (s *AuthService) UpdateProfile(userID uint, fullName string) (models.User, error) {
	user, err := s.users.FindByID(userID)
	if err != nil {
		return models.User{}, err
	}

	if fullName != "" {
		user.FullName = fullName
	}

	if err := s.users.Update(&user); err != nil {
		return models.User{}, err
	}
	return user, nil
}
