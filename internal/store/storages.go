package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-vault-sync/internal/config"
	"github.com/MKhiriev/go-vault-sync/internal/logger"
)

// Storages groups the server-side repositories.
type Storages struct {
	UserRepository  UserRepository
	VaultRepository VaultRepository
}

// NewStorages connects to PostgreSQL, applies pending migrations, and wires
// the server repositories.
func NewStorages(cfg config.DB, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating storages...")

	db, err := NewConnectPostgres(context.Background(), cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		UserRepository:  NewUserRepository(db, logger),
		VaultRepository: NewVaultRepository(db, logger),
	}, nil
}
