package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/MKhiriev/go-vault-sync/internal/logger"
	"github.com/MKhiriev/go-vault-sync/models"
)

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &userRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func TestCreateUser_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	user := models.User{
		Login:    "john",
		AuthHash: "auth-hash",
		SrpSalt:  "salt",
	}

	now := time.Now()

	rows := sqlmock.
		NewRows([]string{"user_id", "created_at"}).
		AddRow(1, now)

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(user.Login, user.AuthHash, user.SrpSalt).
		WillReturnRows(rows)

	created, err := repo.CreateUser(ctx, user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.UserID != 1 {
		t.Errorf("expected UserID=1, got %d", created.UserID)
	}
	if created.Login != user.Login {
		t.Errorf("expected login %s, got %s", user.Login, created.Login)
	}
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	user := models.User{Login: "john"}

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateUser(ctx, user)
	if !errors.Is(err, ErrLoginAlreadyExists) {
		t.Fatalf("expected ErrLoginAlreadyExists, got %v", err)
	}
}

func TestFindUserByLogin_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()

	rows := sqlmock.
		NewRows([]string{"user_id", "login", "auth_hash", "srp_salt", "created_at"}).
		AddRow(7, "john", "auth-hash", "salt", now)

	mock.ExpectQuery("SELECT user_id, login, auth_hash, srp_salt, created_at FROM users").
		WithArgs("john").
		WillReturnRows(rows)

	found, err := repo.FindUserByLogin(ctx, "john")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.UserID != 7 {
		t.Errorf("expected UserID=7, got %d", found.UserID)
	}
	if found.SrpSalt != "salt" {
		t.Errorf("expected srp salt, got %q", found.SrpSalt)
	}
}

func TestFindUserByLogin_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT user_id, login, auth_hash, srp_salt, created_at FROM users").
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindUserByLogin(ctx, "ghost")
	if !errors.Is(err, ErrNoUserWasFound) {
		t.Fatalf("expected ErrNoUserWasFound, got %v", err)
	}
}

func TestFindUserByID_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()

	rows := sqlmock.
		NewRows([]string{"user_id", "login", "auth_hash", "srp_salt", "created_at"}).
		AddRow(7, "john", "auth-hash", "salt", now)

	mock.ExpectQuery("SELECT user_id, login, auth_hash, srp_salt, created_at FROM users").
		WithArgs(int64(7)).
		WillReturnRows(rows)

	found, err := repo.FindUserByID(ctx, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.Login != "john" {
		t.Errorf("expected login john, got %q", found.Login)
	}
	if found.SrpSalt != "salt" {
		t.Errorf("expected srp salt, got %q", found.SrpSalt)
	}
}

func TestFindUserByID_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT user_id, login, auth_hash, srp_salt, created_at FROM users").
		WithArgs(int64(404)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindUserByID(ctx, 404)
	if !errors.Is(err, ErrNoUserWasFound) {
		t.Fatalf("expected ErrNoUserWasFound, got %v", err)
	}
}
