package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-vault-sync/internal/vault"
	"github.com/MKhiriev/go-vault-sync/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientAuthService defines the agent-side contract for account registration
// and session management. Implementations are responsible for key derivation
// and for communicating with the remote server adapter.
type ClientAuthService interface {
	// Register creates a new account on the server. It generates a fresh
	// encryption salt, derives the vault key from the master password,
	// computes the auth hash, registers the account, and provisions an empty
	// local vault marked dirty so the first sync uploads it.
	Register(ctx context.Context, login, masterPassword string) error

	// Login authenticates against the server. It fetches the account's salt,
	// derives the vault key, computes the auth hash, opens the session, and
	// downloads the current vault into local storage.
	Login(ctx context.Context, login, masterPassword string) error

	// Logout wipes the session material, clears local vault state, and
	// invalidates the handle cache.
	Logout(ctx context.Context) error

	// CheckAuthStatus reports whether an authenticated session exists.
	CheckAuthStatus() bool
}

// ClientVaultService manages the decrypted vault: reading it through the
// handle cache and applying local mutations with the mutation-tracking
// bookkeeping.
type ClientVaultService interface {
	// OpenVault returns the decrypted vault handle, via the cache when the
	// stored ciphertext has not changed. Returns [ErrVaultLocked] when no
	// encryption key is in the session.
	OpenVault(ctx context.Context) (*vault.Handle, error)

	// CreateItem adds a credential to the vault and records the mutation.
	CreateItem(ctx context.Context, item vault.Item) error

	// UpdateItem replaces an existing credential and records the mutation.
	UpdateItem(ctx context.Context, item vault.Item) error

	// DeleteItem soft-deletes a credential and records the mutation.
	// Returns [ErrItemNotFound] if the item does not exist or is already
	// trashed.
	DeleteItem(ctx context.Context, id string) error

	// StoreEncryptedVault persists an already encrypted blob. With markDirty
	// it records a mutation; otherwise it commits the blob against
	// expectedSequence at serverRevision, returning the commit outcome.
	StoreEncryptedVault(ctx context.Context, blob string, markDirty bool, serverRevision, expectedSequence int64) (models.CommitOutcome, error)
}

// ClientSyncService is the reconciliation engine between the local vault and
// the server.
type ClientSyncService interface {
	// FullVaultSync runs the complete reconciliation pass: status check,
	// download, merge, upload, or offline fallback. Conflicts restart the
	// pass internally up to a small bounded number of attempts.
	FullVaultSync(ctx context.Context) models.SyncResult

	// CheckSyncStatus is a read-only probe: it never mutates persisted state.
	CheckSyncStatus(ctx context.Context) models.SyncStatusReport

	// UploadVault pushes the local vault to the server without a prior
	// download step. Used by the host layer after a burst of mutations.
	UploadVault(ctx context.Context) models.SyncResult

	// MarkVaultClean clears the dirty flag if no mutation landed after
	// expectedSequence, and advances the stored server revision either way.
	MarkVaultClean(ctx context.Context, expectedSequence, newServerRevision int64) (bool, error)

	// GetSyncState returns the persisted sync bookkeeping snapshot.
	GetSyncState(ctx context.Context) (models.VaultState, error)

	// GetServerRevision returns the locally confirmed server revision.
	GetServerRevision(ctx context.Context) (int64, error)
}

// ClientSyncJob is a background worker that periodically runs FullVaultSync.
type ClientSyncJob interface {
	// Start launches the background sync goroutine. It syncs every interval,
	// defaulting to 5 minutes if interval is zero or negative. Any
	// previously running job is stopped before the new one begins.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}
