package resources

import (
	"github.com/shashiranjanraj/shinyflakes/app/models"
	"github.com/shashiranjanraj/shinyflakes/pkg/resource"
)

// UserResource serialises a user for the auth endpoints.
// Password and update timestamps never leave the server.
type UserResource struct{}

func (UserResource) ToArray(u models.User) resource.Map {
	return resource.Map{
		"id":        u.ID,
		"email":     u.Email,
		"fullName":  u.FullName,
		"role":      u.Role,
		"createdAt": u.CreatedAt,
	}
}
