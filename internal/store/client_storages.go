package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-vault-sync/internal/config"
	"github.com/MKhiriev/go-vault-sync/internal/logger"
)

// ClientStorages groups the agent-side storage repositories into a single
// value that can be passed around the service layer.
type ClientStorages struct {
	// VaultState is the SQLite-backed repository holding the encrypted vault
	// blob and the sync bookkeeping keys.
	VaultState VaultStateRepository

	// Session holds the in-memory session material (encryption key, token).
	Session SessionRepository
}

// NewClientStorages initialises the agent storage layer: opens the SQLite
// state database at cfg.Path (creating the file if needed), bootstraps the
// kv schema, and wires the repositories.
func NewClientStorages(cfg config.AgentLocal, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating client storages...")

	db, err := NewConnectSQLite(context.Background(), cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	return &ClientStorages{
		VaultState: NewVaultStateRepository(db, logger),
		Session:    NewSessionRepository(),
	}, nil
}
