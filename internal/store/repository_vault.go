// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-vault-sync/internal/logger"
	"github.com/MKhiriev/go-vault-sync/models"
)

// vaultRepository is the PostgreSQL-backed implementation of
// [VaultRepository]. One row per user in the "vaults" table; the revision
// check in SaveVault is the server-side half of write-write conflict
// detection between devices.
type vaultRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewVaultRepository(db *DB, logger *logger.Logger) VaultRepository {
	logger.Debug().Msg("creating vault repository")
	return &vaultRepository{
		db:     db,
		logger: logger,
	}
}

func (r *vaultRepository) GetVault(ctx context.Context, userID int64) (models.StoredVault, error) {
	log := logger.FromContext(ctx)

	query, args, err := getVaultQuery(userID)
	if err != nil {
		return models.StoredVault{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var vault models.StoredVault
	var emailList string
	row := r.db.QueryRowContext(ctx, query, args...)
	if err = row.Scan(&vault.UserID, &vault.Revision, &vault.Blob, &vault.CredentialsCount, &emailList, &vault.ClientVersion); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.StoredVault{}, ErrVaultNotFound
		}
		log.Err(err).Str("func", "vaultRepository.GetVault").Int64("user_id", userID).Msg("failed to query vault")
		return models.StoredVault{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if emailList != "" {
		if err = json.Unmarshal([]byte(emailList), &vault.EmailAddressList); err != nil {
			return models.StoredVault{}, fmt.Errorf("decode email address list: %w", err)
		}
	}

	return vault, nil
}

func (r *vaultRepository) CurrentRevision(ctx context.Context, userID int64) (int64, error) {
	vault, err := r.GetVault(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrVaultNotFound) {
			return 0, nil
		}
		return 0, err
	}

	return vault.Revision, nil
}

func (r *vaultRepository) SaveVault(ctx context.Context, vault models.StoredVault, baseRevision int64) (int64, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	// Lock the row and compare the stored revision against the upload's
	// base. A mismatch means another device uploaded first.
	query, args, err := getVaultRevisionQuery(vault.UserID)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var storedRevision int64
	if err = tx.QueryRowContext(ctx, query, args...).Scan(&storedRevision); err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			log.Err(err).Str("func", "vaultRepository.SaveVault").Int64("user_id", vault.UserID).Msg("failed to read stored revision")
			return 0, fmt.Errorf("unexpected DB error: %w", err)
		}
		storedRevision = 0
	}

	if storedRevision != baseRevision {
		log.Debug().
			Str("func", "vaultRepository.SaveVault").
			Int64("user_id", vault.UserID).
			Int64("base_revision", baseRevision).
			Int64("stored_revision", storedRevision).
			Msg("upload rejected: revision conflict")
		return storedRevision, ErrVersionConflict
	}

	newRevision := storedRevision + 1

	emailList, err := json.Marshal(vault.EmailAddressList)
	if err != nil {
		return 0, fmt.Errorf("encode email address list: %w", err)
	}

	query, args, err = upsertVaultQuery(vault, newRevision, string(emailList))
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "vaultRepository.SaveVault").Int64("user_id", vault.UserID).Msg("failed to upsert vault")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return newRevision, nil
}
