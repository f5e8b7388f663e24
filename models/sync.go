package models

// Machine-readable error codes attached to sync results. They are appended to
// human-readable messages so support can classify failures from diagnostics.
const (
	SyncErrNotLoggedIn         = "NOT_LOGGED_IN"
	SyncErrVaultLocked         = "VAULT_LOCKED"
	SyncErrServerNotAvailable  = "SERVER_NOT_AVAILABLE"
	SyncErrVersionIncompatible = "VERSION_INCOMPATIBLE"
	SyncErrSessionExpired      = "SESSION_EXPIRED"
	SyncErrPasswordChanged     = "PASSWORD_CHANGED"
	SyncErrConflict            = "SYNC_CONFLICT"
	SyncErrGeneric             = "SYNC_FAILED"
)

// SyncResult describes the outcome of one full vault sync pass. It is a
// transient value consumed by the host layer to update its own state; it is
// never persisted.
type SyncResult struct {
	// Success is true when the pass completed without surfacing an error.
	// An offline pass that fell back to the local vault is still a success.
	Success bool `json:"success"`

	// HasNewVault is true when the pass adopted a newer vault from the
	// server (with or without a merge).
	HasNewVault bool `json:"has_new_vault"`

	// WasOffline is true when the server could not be reached and the pass
	// entered offline mode.
	WasOffline bool `json:"was_offline"`

	// UpgradeRequired is true when the adopted vault carries a format
	// version with pending migrations.
	UpgradeRequired bool `json:"upgrade_required"`

	// RequiresLogout is true for fatal conditions (version incompatibility,
	// expired session, password changed elsewhere) that cannot be resolved
	// by retrying.
	RequiresLogout bool `json:"requires_logout"`

	// ErrorCode is the stable machine-readable classification of a failure,
	// one of the SyncErr* constants. Empty on success.
	ErrorCode string `json:"error_code,omitempty"`

	// Message is the human-readable error text, if any.
	Message string `json:"message,omitempty"`
}

// SyncStatusReport is the result of the read-only sync status probe. It never
// reflects a state mutation; the probe leaves persisted state untouched.
type SyncStatusReport struct {
	// HasNewerVault is true when the server's vault revision exceeds the
	// locally confirmed one.
	HasNewerVault bool `json:"has_newer_vault"`

	// HasDirtyChanges is true when local mutations have not yet been
	// confirmed uploaded.
	HasDirtyChanges bool `json:"has_dirty_changes"`

	// IsOffline is true when the server could not be reached.
	IsOffline bool `json:"is_offline"`

	// RequiresLogout is true for fatal conditions; ErrorCode carries the
	// classification.
	RequiresLogout bool `json:"requires_logout"`

	// ErrorCode classifies a RequiresLogout or failure condition using the
	// SyncErr* constants.
	ErrorCode string `json:"error_code,omitempty"`
}
