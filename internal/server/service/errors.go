package service

import "errors"

// Domain errors surfaced by AuthService. Handlers map these to HTTP
// responses; anything not listed here is a storage/internal failure and
// must be reported generically.
var (
	// ErrInvalidCredentials deliberately merges "no such user" and "wrong
	// password" so the response never leaks which field was wrong.
	ErrInvalidCredentials = errors.New("incorrect email or password")

	// ErrAccountDisabled indicates that the account is deactivated
	ErrAccountDisabled = errors.New("account has been disabled")

	// ErrEmailTaken indicates the email is already registered
	ErrEmailTaken = errors.New("email is already in use")

	// ErrWrongPassword indicates the supplied current password did not
	// match during a profile update
	ErrWrongPassword = errors.New("current password is incorrect")

	// ErrNotAuthenticated indicates the session token is missing, unknown,
	// expired, or owned by an inactive user
	ErrNotAuthenticated = errors.New("not authenticated")
)

// ValidationError is an input validation failure. Unlike storage errors its
// reason is specific and safe to show to the user.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// AsValidation extracts a ValidationError from an error chain.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
