// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the agent's transport layer for communicating with
// the vault server.
//
// The primary abstraction is [VaultServerAdapter], which decouples the service
// layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrUnauthorized] for 401, [ErrServerUnavailable] for
// network failures).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-vault-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// VaultServerAdapter defines transport-agnostic communication with the vault
// server. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel
// values defined in this package.
type VaultServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent authenticated requests. It should be called immediately
	// after a successful Register or Login.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates a new account from user.Login, user.AuthHash, and
	// user.SrpSalt. On success it stores the returned bearer token via
	// SetToken and returns it.
	Register(ctx context.Context, user models.User) (string, error)

	// Params fetches the authentication salt stored for login during
	// registration. The salt is needed to derive the encryption key before
	// the auth hash can be computed for Login.
	Params(ctx context.Context, login string) (models.AuthParamsResponse, error)

	// Login authenticates with the pre-computed auth hash. On success it
	// stores the returned bearer token via SetToken and returns it.
	Login(ctx context.Context, user models.User) (string, error)

	// GetStatus fetches the lightweight server status: server version,
	// current vault revision, and the stored authentication salt.
	GetStatus(ctx context.Context) (models.VaultStatusResponse, error)

	// GetVault downloads the full encrypted vault together with the alias
	// email-domain lists.
	GetVault(ctx context.Context) (models.VaultGetResponse, error)

	// PostVault uploads the encrypted vault. The response status decides the
	// caller's next move: accepted, outdated (re-sync), or failure.
	PostVault(ctx context.Context, req models.VaultUploadRequest) (models.VaultUploadResponse, error)
}
