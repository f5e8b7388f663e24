// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/MKhiriev/go-vault-sync/internal/logger"
	"github.com/MKhiriev/go-vault-sync/models"
)

func newTestVaultRepo(t *testing.T) (*vaultRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &vaultRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func TestGetVault_Success(t *testing.T) {
	repo, mock, db := newTestVaultRepo(t)
	defer db.Close()

	rows := sqlmock.
		NewRows([]string{"user_id", "revision", "blob", "credentials_count", "email_address_list", "client_version"}).
		AddRow(1, 5, "encrypted-blob", 12, `["a@x.com"]`, "1.2.3")

	mock.ExpectQuery("SELECT user_id, revision, blob, credentials_count, email_address_list, client_version FROM vaults").
		WithArgs(int64(1)).
		WillReturnRows(rows)

	vault, err := repo.GetVault(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if vault.Revision != 5 {
		t.Errorf("expected revision 5, got %d", vault.Revision)
	}
	if len(vault.EmailAddressList) != 1 || vault.EmailAddressList[0] != "a@x.com" {
		t.Errorf("unexpected email address list: %v", vault.EmailAddressList)
	}
}

func TestGetVault_NotFound(t *testing.T) {
	repo, mock, db := newTestVaultRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT user_id, revision, blob").
		WithArgs(int64(1)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetVault(context.Background(), 1)
	if !errors.Is(err, ErrVaultNotFound) {
		t.Fatalf("expected ErrVaultNotFound, got %v", err)
	}
}

func TestCurrentRevision_NoVaultYet(t *testing.T) {
	repo, mock, db := newTestVaultRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT user_id, revision, blob").
		WithArgs(int64(1)).
		WillReturnError(sql.ErrNoRows)

	revision, err := repo.CurrentRevision(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if revision != 0 {
		t.Errorf("expected revision 0, got %d", revision)
	}
}

func TestSaveVault_Accepted(t *testing.T) {
	repo, mock, db := newTestVaultRepo(t)
	defer db.Close()

	vault := models.StoredVault{
		UserID:           1,
		Blob:             "encrypted-blob",
		CredentialsCount: 3,
		ClientVersion:    "1.2.3",
	}

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT revision FROM vaults").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"revision"}).AddRow(5))
	mock.ExpectExec("INSERT INTO vaults").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	newRevision, err := repo.SaveVault(context.Background(), vault, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if newRevision != 6 {
		t.Errorf("expected new revision 6, got %d", newRevision)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestSaveVault_FirstUpload(t *testing.T) {
	repo, mock, db := newTestVaultRepo(t)
	defer db.Close()

	vault := models.StoredVault{UserID: 1, Blob: "encrypted-blob"}

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT revision FROM vaults").
		WithArgs(int64(1)).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectExec("INSERT INTO vaults").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	newRevision, err := repo.SaveVault(context.Background(), vault, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if newRevision != 1 {
		t.Errorf("expected new revision 1, got %d", newRevision)
	}
}

func TestSaveVault_RevisionConflict(t *testing.T) {
	repo, mock, db := newTestVaultRepo(t)
	defer db.Close()

	vault := models.StoredVault{UserID: 1, Blob: "encrypted-blob"}

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT revision FROM vaults").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"revision"}).AddRow(7))
	mock.ExpectRollback()

	currentRevision, err := repo.SaveVault(context.Background(), vault, 5)
	if !errors.Is(err, ErrVersionConflict) {
		t.Fatalf("expected ErrVersionConflict, got %v", err)
	}
	if currentRevision != 7 {
		t.Errorf("expected current revision 7, got %d", currentRevision)
	}
}
