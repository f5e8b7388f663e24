package service

import "errors"

var (
	// ErrNotLoggedIn is returned when an operation requires an authenticated
	// session and none exists.
	ErrNotLoggedIn = errors.New("not logged in")

	// ErrVaultLocked is returned when a vault operation is attempted without
	// an encryption key in the session. Distinct from generic failures so
	// callers can prompt for the master password instead of showing an error.
	ErrVaultLocked = errors.New("vault is locked")

	// ErrRegisterOnServer wraps a failed registration call.
	ErrRegisterOnServer = errors.New("registration on server failed")

	// ErrLoginOnServer wraps a failed login call.
	ErrLoginOnServer = errors.New("login on server failed")

	// ErrWrongPassword is returned when the derived key fails to decrypt the
	// stored vault, which almost always means a mistyped master password.
	ErrWrongPassword = errors.New("wrong password")

	// ErrItemNotFound is returned when a vault item lookup misses.
	ErrItemNotFound = errors.New("vault item not found")

	// ErrInvalidDataProvided is returned by server services when a request
	// is missing required fields.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrTokenCreationFailed wraps a JWT signing failure.
	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrTokenIsExpiredOrInvalid normalises all JWT validation failures.
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
)
