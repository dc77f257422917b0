package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shashiranjanraj/shinyflakes/pkg/validate"
)

type registerInput struct {
	FullName string `json:"fullName" validate:"required,min=2,max=255"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=32"`
}

func TestStructValid(t *testing.T) {
	errs := validate.Struct(registerInput{
		FullName: "Jesse Pinkman",
		Email:    "jesse@shinyflakes.test",
		Password: "yoscience",
	})
	assert.False(t, validate.HasErrors(errs))
}

func TestRequired(t *testing.T) {
	errs := validate.Struct(registerInput{})
	assert.Len(t, errs, 3)
	assert.Equal(t, "The fullName field is required.", errs["fullName"])
	assert.Equal(t, "The email field is required.", errs["email"])
	assert.Equal(t, "The password field is required.", errs["password"])
}

func TestEmailRule(t *testing.T) {
	errs := validate.Struct(registerInput{
		FullName: "Jesse",
		Email:    "not-an-email",
		Password: "yoscience",
	})
	assert.Equal(t, "The email must be a valid email address.", errs["email"])
}

func TestStringLengthBounds(t *testing.T) {
	errs := validate.Struct(registerInput{
		FullName: "J",
		Email:    "jesse@shinyflakes.test",
		Password: "123",
	})
	assert.Contains(t, errs["fullName"], "at least 2")
	assert.Contains(t, errs["password"], "at least 6")
}

func TestNullableSkipsRemainingRules(t *testing.T) {
	type input struct {
		FullName string `json:"fullName" validate:"nullable,min=2"`
	}

	assert.False(t, validate.HasErrors(validate.Struct(input{})))
	assert.True(t, validate.HasErrors(validate.Struct(input{FullName: "J"})))
	assert.False(t, validate.HasErrors(validate.Struct(input{FullName: "Jesse"})))
}

func TestNumericBounds(t *testing.T) {
	type input struct {
		Quantity int `json:"quantity" validate:"required,integer,min=1,max=10"`
	}

	assert.False(t, validate.HasErrors(validate.Struct(input{Quantity: 5})))

	errs := validate.Struct(input{Quantity: 11})
	assert.Contains(t, errs["quantity"], "not be greater than 10")
}

func TestInRule(t *testing.T) {
	type input struct {
		Role string `json:"role" validate:"required,in=user,admin"`
	}

	assert.False(t, validate.HasErrors(validate.Struct(input{Role: "admin"})))

	errs := validate.Struct(input{Role: "superuser"})
	assert.Equal(t, "The selected role is invalid.", errs["role"])
}

func TestBooleanRule(t *testing.T) {
	type input struct {
		Flag string `json:"flag" validate:"required,boolean"`
	}

	for _, ok := range []string{"true", "false", "1", "0"} {
		assert.False(t, validate.HasErrors(validate.Struct(input{Flag: ok})), ok)
	}
	assert.True(t, validate.HasErrors(validate.Struct(input{Flag: "yes"})))
}

func TestConfirmedRule(t *testing.T) {
	type input struct {
		Password        string `json:"password" validate:"required,confirmed"`
		PasswordConfirm string `json:"password_confirmation"`
	}

	assert.False(t, validate.HasErrors(validate.Struct(input{
		Password: "secret", PasswordConfirm: "secret",
	})))

	errs := validate.Struct(input{Password: "secret", PasswordConfirm: "other"})
	assert.Equal(t, "The password confirmation does not match.", errs["password"])
}

func TestFirstFailingRuleWins(t *testing.T) {
	errs := validate.Struct(registerInput{
		FullName: "Jesse",
		Email:    "jesse@shinyflakes.test",
		Password: "x",
	})
	// min fails before max is ever evaluated.
	assert.Equal(t, "The password must be at least 6 characters.", errs["password"])
}
