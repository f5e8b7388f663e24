package store

import (
	"context"

	"github.com/MKhiriev/go-vault-sync/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// VaultStateRepository is the agent's local persistence contract: the
// encrypted vault blob plus the sync bookkeeping that decides upload,
// download, merge, and offline behavior.
//
// RecordMutation, TryCommitIfUnchanged, and MarkClean are the concurrency
// primitives. Each performs its reads and writes inside one transaction, so
// no reader ever observes a sequence, dirty flag, and blob that do not
// belong together.
type VaultStateRepository interface {
	// State reads the sync bookkeeping fields as one snapshot.
	State(ctx context.Context) (models.VaultState, error)

	// EncryptedVault returns the stored encrypted blob. Empty string means
	// no vault has been provisioned yet.
	EncryptedVault(ctx context.Context) (string, error)

	// StoreVault unconditionally replaces the blob and server revision and
	// clears the dirty flag. Used when provisioning the vault at login.
	StoreVault(ctx context.Context, blob string, serverRevision int64) error

	// RecordMutation atomically increments the mutation sequence, sets the
	// dirty flag, and persists the new blob. Returns the new sequence.
	RecordMutation(ctx context.Context, blob string) (int64, error)

	// CaptureSequence is a non-mutating read of the current sequence.
	CaptureSequence(ctx context.Context) (int64, error)

	// TryCommitIfUnchanged writes blob and serverRevision, and sets the
	// dirty flag to the caller-computed value, only if the live sequence
	// still equals expectedSequence. If a mutation landed in between, the
	// write is refused and the outcome carries the live sequence.
	TryCommitIfUnchanged(ctx context.Context, expectedSequence int64, blob string, serverRevision int64, dirty bool) (models.CommitOutcome, error)

	// MarkClean advances serverRevision and clears the dirty flag only if
	// the live sequence still equals expectedSequence. If newer mutations
	// exist, serverRevision is still advanced but the flag stays set.
	// Returns whether the flag was cleared.
	MarkClean(ctx context.Context, expectedSequence, newServerRevision int64) (bool, error)

	// SetOfflineMode records whether the last sync attempt reached the server.
	SetOfflineMode(ctx context.Context, offline bool) error

	// SrpSalt returns the locally cached authentication salt, empty if unset.
	SrpSalt(ctx context.Context) (string, error)

	// SetSrpSalt caches the authentication salt observed at login.
	SetSrpSalt(ctx context.Context, salt string) error

	// EmailDomainLists returns the cached alias-domain lists.
	EmailDomainLists(ctx context.Context) (models.EmailDomainLists, error)

	// SetEmailDomainLists replaces the cached alias-domain lists.
	SetEmailDomainLists(ctx context.Context, lists models.EmailDomainLists) error

	// Clear removes every persisted key. Called on logout/vault-clear.
	Clear(ctx context.Context) error
}

// SessionRepository holds the agent's ephemeral session material. Everything
// here lives only in memory and is wiped on lock or logout; the encryption
// key in particular must never touch disk.
type SessionRepository interface {
	EncryptionKey() ([]byte, bool)
	SetEncryptionKey(key []byte)

	Token() (string, bool)
	SetToken(token string)

	Clear()
}
