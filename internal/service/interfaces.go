package service

import (
	"context"

	"github.com/MKhiriev/go-vault-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService handles server-side account management and the JWT token
// lifecycle.
type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)

	// Params returns the public authentication parameters (login and key
	// derivation salt) for an account, so a client can derive its
	// authentication hash before logging in.
	Params(ctx context.Context, login string) (models.User, error)

	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// VaultService handles the server side of vault synchronization: status
// probes, downloads, and revision-checked uploads.
type VaultService interface {
	Status(ctx context.Context, userID int64) (models.VaultStatusResponse, error)
	GetVault(ctx context.Context, userID int64) (models.VaultGetResponse, error)
	SaveVault(ctx context.Context, userID int64, upload models.VaultUploadRequest) (models.VaultUploadResponse, error)
}
