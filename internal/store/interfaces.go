package store

import (
	"context"

	"github.com/MKhiriev/go-vault-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository handles user account creation and lookup.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByLogin(ctx context.Context, login string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
}

// VaultRepository stores one encrypted vault blob per user, versioned by a
// monotonically increasing revision number.
type VaultRepository interface {
	// GetVault returns the stored vault for userID, or [ErrVaultNotFound].
	GetVault(ctx context.Context, userID int64) (models.StoredVault, error)

	// CurrentRevision returns the stored revision for userID, 0 if no vault
	// has been uploaded yet.
	CurrentRevision(ctx context.Context, userID int64) (int64, error)

	// SaveVault persists an upload whose base revision is baseRevision.
	// The write succeeds only if baseRevision matches the stored revision
	// (0 for a first upload); otherwise [ErrVersionConflict] is returned
	// together with the current revision. On success the new revision
	// (baseRevision+1) is returned.
	SaveVault(ctx context.Context, vault models.StoredVault, baseRevision int64) (int64, error)
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
