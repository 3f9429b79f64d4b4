package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskvault/internal/client/models"
)

func validRegistration() models.RegisterData {
	return models.RegisterData{
		Email:           "alice@example.org",
		Username:        "alice",
		Password:        "Str0ng!pass",
		ConfirmPassword: "Str0ng!pass",
	}
}

func TestValidateRegistration_Valid(t *testing.T) {
	require.NoError(t, ValidateRegistration(validRegistration()))
}

func TestValidateRegistration_FieldErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*models.RegisterData)
		field   string
		message string
	}{
		{
			name:    "missing email",
			mutate:  func(d *models.RegisterData) { d.Email = "" },
			field:   "email",
			message: "Email is required",
		},
		{
			name:    "malformed email",
			mutate:  func(d *models.RegisterData) { d.Email = "not-an-email" },
			field:   "email",
			message: "Invalid email format",
		},
		{
			name:    "missing username",
			mutate:  func(d *models.RegisterData) { d.Username = "" },
			field:   "username",
			message: "Username is required",
		},
		{
			name:    "missing password",
			mutate:  func(d *models.RegisterData) { d.Password = "" },
			field:   "password",
			message: "Password is required",
		},
		{
			name:    "short password",
			mutate:  func(d *models.RegisterData) { d.Password = "Ab1!" },
			field:   "password",
			message: "Password must be at least 8 characters long",
		},
		{
			name:    "no uppercase",
			mutate:  func(d *models.RegisterData) { d.Password = "str0ng!pass" },
			field:   "password",
			message: "Password must contain an uppercase letter",
		},
		{
			name:    "no lowercase",
			mutate:  func(d *models.RegisterData) { d.Password = "STR0NG!PASS" },
			field:   "password",
			message: "Password must contain a lowercase letter",
		},
		{
			name:    "no digit",
			mutate:  func(d *models.RegisterData) { d.Password = "Strong!pass" },
			field:   "password",
			message: "Password must contain a digit",
		},
		{
			name:    "no symbol",
			mutate:  func(d *models.RegisterData) { d.Password = "Str0ngpass" },
			field:   "password",
			message: "Password must contain a special character",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			data := validRegistration()
			tc.mutate(&data)

			err := ValidateRegistration(data)
			require.Error(t, err)

			apiErr, ok := AsError(err)
			require.True(t, ok)
			assert.Equal(t, CodeValidation, apiErr.Code)
			assert.Equal(t, tc.message, apiErr.Details[tc.field])
		})
	}
}

func TestValidateRegistration_CollectsAllFields(t *testing.T) {
	err := ValidateRegistration(models.RegisterData{})
	require.Error(t, err)

	apiErr, ok := AsError(err)
	require.True(t, ok)
	assert.Len(t, apiErr.Details, 3)
	assert.Contains(t, apiErr.Details, "email")
	assert.Contains(t, apiErr.Details, "username")
	assert.Contains(t, apiErr.Details, "password")
}
