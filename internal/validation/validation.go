package validation

import (
	"fmt"
	"regexp"
	"strings"
)

// EmailPattern defines the accepted email shape: local@domain.tld.
var EmailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

const (
	// MinPasswordLen is the minimum password length
	MinPasswordLen = 8
	// MaxFullNameLen is the maximum display name length
	MaxFullNameLen = 100
)

var (
	hasLetter = regexp.MustCompile(`[A-Za-z]`)
	hasDigit  = regexp.MustCompile(`\d`)
)

// ValidateEmail checks that email matches the local@domain.tld shape.
// The caller is expected to trim and lowercase the address first.
func ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email cannot be empty")
	}
	if !EmailPattern.MatchString(email) {
		return fmt.Errorf("email address is not valid")
	}
	return nil
}

// ValidatePassword checks the password strength policy:
// at least 8 characters, at least one letter and one digit.
func ValidatePassword(password string) error {
	if password == "" {
		return fmt.Errorf("password cannot be empty")
	}
	if len(password) < MinPasswordLen {
		return fmt.Errorf("password must be at least %d characters long", MinPasswordLen)
	}
	if !hasLetter.MatchString(password) {
		return fmt.Errorf("password must contain at least one letter")
	}
	if !hasDigit.MatchString(password) {
		return fmt.Errorf("password must contain at least one digit")
	}
	return nil
}

// ValidateFullName checks that the display name is non-empty after trimming
// and fits the column limit.
func ValidateFullName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("full name cannot be empty")
	}
	if len(name) > MaxFullNameLen {
		return fmt.Errorf("full name must not exceed %d characters", MaxFullNameLen)
	}
	return nil
}
