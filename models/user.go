package models

import "time"

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is not exposed via JSON and is used only at the persistence layer.
	UserID int64 `json:"-"`

	// Login is the unique user login identifier.
	// Typically used during authentication.
	Login string `json:"login"`

	// AuthHash is the authentication hash derived from the user's master
	// password on the client. This value MUST be a KDF output, never the
	// plaintext master password; the server only ever sees the hash.
	AuthHash string `json:"auth_hash"`

	// SrpSalt is the key-derivation salt associated with the account,
	// base64-encoded. Clients cache it locally; a salt that changes on the
	// server signals a password change performed on another device.
	SrpSalt string `json:"srp_salt,omitempty"`

	// CreatedAt is the timestamp when the user account was created.
	// Used for auditing and lifecycle management.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
