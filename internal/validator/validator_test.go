package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signupForm struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name" validate:"required,notblank"`
	DOB   string `json:"dob" validate:"required,datetime=2006-01-02"`
	Role  string `json:"role" validate:"required,is-user-role"`
}

type statusForm struct {
	Status string `json:"status" validate:"required,is-application-status"`
}

type skillsForm struct {
	Skills []string `json:"skills" validate:"required,min=1"`
}

func TestValidateOK(t *testing.T) {
	v := New()
	err := v.Validate(&signupForm{
		Email: "alice@test.com",
		Name:  "Alice",
		DOB:   "1990-01-02",
		Role:  "user",
	})
	assert.NoError(t, err)
}

func TestValidateCollectsJSONFieldNames(t *testing.T) {
	v := New()
	err := v.Validate(&signupForm{
		Email: "not-an-email",
		Name:  "   ",
		DOB:   "02-01-1990",
		Role:  "admin",
	})
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, vErr.Errors, "email")
	assert.Contains(t, vErr.Errors, "name")
	assert.Contains(t, vErr.Errors, "dob")
	assert.Contains(t, vErr.Errors, "role")
	assert.Equal(t, "Must be a valid email address", vErr.Errors["email"])
	assert.Equal(t, "Invalid role. Role must be 'user' or 'company'.", vErr.Errors["role"])
}

// Роль admin через signup не проходит, допустимы только user и company
func TestUserRoleRule(t *testing.T) {
	v := New()

	for _, role := range []string{"user", "company"} {
		err := v.Validate(&signupForm{Email: "a@b.com", Name: "A", DOB: "1990-01-02", Role: role})
		assert.NoError(t, err, role)
	}
	for _, role := range []string{"admin", "superuser", ""} {
		err := v.Validate(&signupForm{Email: "a@b.com", Name: "A", DOB: "1990-01-02", Role: role})
		assert.Error(t, err, role)
	}
}

func TestApplicationStatusRule(t *testing.T) {
	v := New()

	for _, status := range []string{"pending", "accepted", "rejected"} {
		assert.NoError(t, v.Validate(&statusForm{Status: status}), status)
	}
	for _, status := range []string{"hired", "PENDING", ""} {
		assert.Error(t, v.Validate(&statusForm{Status: status}), status)
	}
}

func TestMinOnSlices(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&skillsForm{Skills: []string{"Go"}}))
	assert.Error(t, v.Validate(&skillsForm{Skills: []string{}}))
	assert.Error(t, v.Validate(&skillsForm{}))
}
