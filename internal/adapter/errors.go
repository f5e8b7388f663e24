package adapter

import "errors"

// Sentinel errors mapped from transport-level failures. Callers match these
// with [errors.Is].
var (
	// ErrServerUnavailable wraps network-level failures: the server could not
	// be reached at all. The sync engine treats this as the offline signal.
	ErrServerUnavailable = errors.New("server not available")

	// ErrUnauthorized is returned for 401 responses: the session token is
	// missing, invalid, or expired.
	ErrUnauthorized = errors.New("client unauthorized")

	// ErrBadRequest is returned for 400 responses.
	ErrBadRequest = errors.New("bad request")

	// ErrNotFound is returned for 404 responses, e.g. requesting the vault
	// before the first upload.
	ErrNotFound = errors.New("not found")

	// ErrConflict is returned for 409 responses.
	ErrConflict = errors.New("conflict")

	// ErrInternalServerError is returned for 500 responses.
	ErrInternalServerError = errors.New("internal server error")
)
