// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-vault-sync/internal/logger"
	"github.com/MKhiriev/go-vault-sync/models"
)

// Persisted kv keys. The local: namespace survives restarts; session material
// never lands here.
const (
	keyEncryptedVault         = "local:encryptedVault"
	keyServerRevision         = "local:serverRevision"
	keyMutationSequence       = "local:mutationSequence"
	keyIsDirty                = "local:isDirty"
	keyIsOfflineMode          = "local:isOfflineMode"
	keySrpSalt                = "local:srpSalt"
	keyPublicEmailDomains     = "local:publicEmailDomains"
	keyPrivateEmailDomains    = "local:privateEmailDomains"
	keyHiddenPrivEmailDomains = "local:hiddenPrivateEmailDomains"
)

// vaultStateRepository is the SQLite-backed implementation of
// [VaultStateRepository]. Every multi-key operation runs in one transaction
// so the sequence, dirty flag, and blob are always observed together.
type vaultStateRepository struct {
	db     *LocalDB
	logger *logger.Logger
}

func NewVaultStateRepository(db *LocalDB, logger *logger.Logger) VaultStateRepository {
	logger.Debug().Msg("creating vault state repository")
	return &vaultStateRepository{
		db:     db,
		logger: logger,
	}
}

// queryRunner is satisfied by both *sql.DB and *sql.Tx so the kv helpers can
// run inside or outside a transaction.
type queryRunner interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func getKV(ctx context.Context, run queryRunner, name string) (string, bool, error) {
	query, args, err := sq.Select("value").From("kv").Where(sq.Eq{"name": name}).ToSql()
	if err != nil {
		return "", false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	if err = run.QueryRowContext(ctx, query, args...).Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return value, true, nil
}

func setKV(ctx context.Context, run queryRunner, name, value string) error {
	query, args, err := sq.Insert("kv").
		Columns("name", "value").
		Values(name, value).
		Suffix("ON CONFLICT(name) DO UPDATE SET value = excluded.value").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = run.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func getInt64KV(ctx context.Context, run queryRunner, name string) (int64, error) {
	raw, ok, err := getKV(ctx, run, name)
	if err != nil || !ok {
		return 0, err
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", name, err)
	}
	return n, nil
}

func getBoolKV(ctx context.Context, run queryRunner, name string) (bool, error) {
	raw, ok, err := getKV(ctx, run, name)
	if err != nil || !ok {
		return false, err
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("parse %s: %w", name, err)
	}
	return b, nil
}

func (r *vaultStateRepository) State(ctx context.Context) (models.VaultState, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return models.VaultState{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	var state models.VaultState
	if state.ServerRevision, err = getInt64KV(ctx, tx, keyServerRevision); err == nil {
		if state.MutationSequence, err = getInt64KV(ctx, tx, keyMutationSequence); err == nil {
			if state.Dirty, err = getBoolKV(ctx, tx, keyIsDirty); err == nil {
				state.OfflineMode, err = getBoolKV(ctx, tx, keyIsOfflineMode)
			}
		}
	}
	if err != nil {
		log.Err(err).Str("func", "vaultStateRepository.State").Msg("failed to read vault state")
		return models.VaultState{}, err
	}

	if err = tx.Commit(); err != nil {
		return models.VaultState{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return state, nil
}

func (r *vaultStateRepository) EncryptedVault(ctx context.Context) (string, error) {
	blob, _, err := getKV(ctx, r.db, keyEncryptedVault)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "vaultStateRepository.EncryptedVault").
			Msg("failed to read encrypted vault")
	}
	return blob, err
}

func (r *vaultStateRepository) StoreVault(ctx context.Context, blob string, serverRevision int64) error {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if err = setKV(ctx, tx, keyEncryptedVault, blob); err == nil {
		if err = setKV(ctx, tx, keyServerRevision, strconv.FormatInt(serverRevision, 10)); err == nil {
			err = setKV(ctx, tx, keyIsDirty, "false")
		}
	}
	if err != nil {
		log.Err(err).Str("func", "vaultStateRepository.StoreVault").Msg("failed to provision vault")
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (r *vaultStateRepository) RecordMutation(ctx context.Context, blob string) (int64, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	sequence, err := getInt64KV(ctx, tx, keyMutationSequence)
	if err != nil {
		log.Err(err).Str("func", "vaultStateRepository.RecordMutation").Msg("failed to read mutation sequence")
		return 0, err
	}
	sequence++

	if err = setKV(ctx, tx, keyMutationSequence, strconv.FormatInt(sequence, 10)); err == nil {
		if err = setKV(ctx, tx, keyIsDirty, "true"); err == nil {
			err = setKV(ctx, tx, keyEncryptedVault, blob)
		}
	}
	if err != nil {
		log.Err(err).Str("func", "vaultStateRepository.RecordMutation").Msg("failed to record mutation")
		return 0, err
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return sequence, nil
}

func (r *vaultStateRepository) CaptureSequence(ctx context.Context) (int64, error) {
	sequence, err := getInt64KV(ctx, r.db, keyMutationSequence)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "vaultStateRepository.CaptureSequence").
			Msg("failed to read mutation sequence")
	}
	return sequence, err
}

func (r *vaultStateRepository) TryCommitIfUnchanged(ctx context.Context, expectedSequence int64, blob string, serverRevision int64, dirty bool) (models.CommitOutcome, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return models.CommitOutcome{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	liveSequence, err := getInt64KV(ctx, tx, keyMutationSequence)
	if err != nil {
		log.Err(err).Str("func", "vaultStateRepository.TryCommitIfUnchanged").Msg("failed to read mutation sequence")
		return models.CommitOutcome{}, err
	}

	if liveSequence != expectedSequence {
		// A mutation landed while the caller was busy. Refuse the write so
		// the local edit is not clobbered by the stale result.
		log.Debug().
			Str("func", "vaultStateRepository.TryCommitIfUnchanged").
			Int64("expected_sequence", expectedSequence).
			Int64("live_sequence", liveSequence).
			Msg("commit refused: concurrent mutation detected")
		return models.CommitOutcome{Accepted: false, CurrentSequence: liveSequence}, nil
	}

	if err = setKV(ctx, tx, keyEncryptedVault, blob); err == nil {
		if err = setKV(ctx, tx, keyServerRevision, strconv.FormatInt(serverRevision, 10)); err == nil {
			err = setKV(ctx, tx, keyIsDirty, strconv.FormatBool(dirty))
		}
	}
	if err != nil {
		log.Err(err).Str("func", "vaultStateRepository.TryCommitIfUnchanged").Msg("failed to commit vault state")
		return models.CommitOutcome{}, err
	}

	if err = tx.Commit(); err != nil {
		return models.CommitOutcome{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return models.CommitOutcome{Accepted: true, CurrentSequence: liveSequence}, nil
}

func (r *vaultStateRepository) MarkClean(ctx context.Context, expectedSequence, newServerRevision int64) (bool, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	liveSequence, err := getInt64KV(ctx, tx, keyMutationSequence)
	if err != nil {
		log.Err(err).Str("func", "vaultStateRepository.MarkClean").Msg("failed to read mutation sequence")
		return false, err
	}

	// The upload the caller just finished covers expectedSequence. The
	// revision advances either way; the dirty flag clears only when no newer
	// mutation exists.
	if err = setKV(ctx, tx, keyServerRevision, strconv.FormatInt(newServerRevision, 10)); err != nil {
		log.Err(err).Str("func", "vaultStateRepository.MarkClean").Msg("failed to advance server revision")
		return false, err
	}

	cleared := liveSequence == expectedSequence
	if cleared {
		if err = setKV(ctx, tx, keyIsDirty, "false"); err != nil {
			log.Err(err).Str("func", "vaultStateRepository.MarkClean").Msg("failed to clear dirty flag")
			return false, err
		}
	} else {
		log.Debug().
			Str("func", "vaultStateRepository.MarkClean").
			Int64("expected_sequence", expectedSequence).
			Int64("live_sequence", liveSequence).
			Msg("dirty flag kept: newer local mutations exist")
	}

	if err = tx.Commit(); err != nil {
		return false, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return cleared, nil
}

func (r *vaultStateRepository) SetOfflineMode(ctx context.Context, offline bool) error {
	return setKV(ctx, r.db, keyIsOfflineMode, strconv.FormatBool(offline))
}

func (r *vaultStateRepository) SrpSalt(ctx context.Context) (string, error) {
	salt, _, err := getKV(ctx, r.db, keySrpSalt)
	return salt, err
}

func (r *vaultStateRepository) SetSrpSalt(ctx context.Context, salt string) error {
	return setKV(ctx, r.db, keySrpSalt, salt)
}

func (r *vaultStateRepository) EmailDomainLists(ctx context.Context) (models.EmailDomainLists, error) {
	log := logger.FromContext(ctx)

	var lists models.EmailDomainLists
	for _, entry := range []struct {
		key  string
		dest *[]string
	}{
		{keyPublicEmailDomains, &lists.Public},
		{keyPrivateEmailDomains, &lists.Private},
		{keyHiddenPrivEmailDomains, &lists.HiddenPrivate},
	} {
		raw, ok, err := getKV(ctx, r.db, entry.key)
		if err != nil {
			log.Err(err).Str("func", "vaultStateRepository.EmailDomainLists").Str("key", entry.key).Msg("failed to read email domain list")
			return models.EmailDomainLists{}, err
		}
		if !ok {
			continue
		}
		if err = json.Unmarshal([]byte(raw), entry.dest); err != nil {
			return models.EmailDomainLists{}, fmt.Errorf("decode %s: %w", entry.key, err)
		}
	}

	return lists, nil
}

func (r *vaultStateRepository) SetEmailDomainLists(ctx context.Context, lists models.EmailDomainLists) error {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	for _, entry := range []struct {
		key   string
		value []string
	}{
		{keyPublicEmailDomains, lists.Public},
		{keyPrivateEmailDomains, lists.Private},
		{keyHiddenPrivEmailDomains, lists.HiddenPrivate},
	} {
		payload, err := json.Marshal(entry.value)
		if err != nil {
			return fmt.Errorf("encode %s: %w", entry.key, err)
		}
		if err = setKV(ctx, tx, entry.key, string(payload)); err != nil {
			log.Err(err).Str("func", "vaultStateRepository.SetEmailDomainLists").Str("key", entry.key).Msg("failed to store email domain list")
			return err
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (r *vaultStateRepository) Clear(ctx context.Context) error {
	log := logger.FromContext(ctx)

	query, args, err := sq.Delete("kv").ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "vaultStateRepository.Clear").Msg("failed to clear local state")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
