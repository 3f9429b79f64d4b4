package api

import (
	"regexp"
	"strings"
	"unicode"

	"taskvault/internal/client/models"
)

// passwordSymbols is the fixed set of symbols of which a password must
// contain at least one.
const passwordSymbols = `!@#$%^&*()_+-=[]{}|;:,.<>?`

const minPasswordLength = 8

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateRegistration checks a registration payload locally. On failure it
// returns an *Error with CodeValidation and one message per offending field
// in Details; no network call should be made in that case.
func ValidateRegistration(data models.RegisterData) error {
	details := make(map[string]string)

	switch {
	case data.Email == "":
		details["email"] = "Email is required"
	case !emailPattern.MatchString(data.Email):
		details["email"] = "Invalid email format"
	}

	if data.Username == "" {
		details["username"] = "Username is required"
	}

	if msg := validatePassword(data.Password); msg != "" {
		details["password"] = msg
	}

	if len(details) > 0 {
		return &Error{Code: CodeValidation, Message: "Validation failed", Details: details}
	}
	return nil
}

func validatePassword(password string) string {
	if password == "" {
		return "Password is required"
	}
	if len(password) < minPasswordLength {
		return "Password must be at least 8 characters long"
	}

	var hasUpper, hasLower, hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case strings.ContainsRune(passwordSymbols, r):
			hasSymbol = true
		}
	}

	switch {
	case !hasUpper:
		return "Password must contain an uppercase letter"
	case !hasLower:
		return "Password must contain a lowercase letter"
	case !hasDigit:
		return "Password must contain a digit"
	case !hasSymbol:
		return "Password must contain a special character"
	}
	return ""
}
