// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/MKhiriev/go-vault-sync/internal/config"
	"github.com/MKhiriev/go-vault-sync/internal/logger"
	"github.com/MKhiriev/go-vault-sync/internal/store"
	"github.com/MKhiriev/go-vault-sync/internal/utils"
	"github.com/MKhiriev/go-vault-sync/models"
)

// authService is the concrete implementation of AuthService.
//
// The client never sends a master password: it sends an authentication hash
// derived from it. The service applies one more keyed HMAC before storage, so
// a database leak alone does not yield replayable credentials.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// hashKey is the HMAC secret applied to client authentication hashes
	// before storage or comparison. Must match the value used at
	// registration time.
	hashKey string

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs an AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		hashKey:        cfg.PasswordHashKey,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// RegisterUser creates a new user account.
//
// It validates that Login, AuthHash, and SrpSalt are non-empty, re-hashes the
// client authentication hash with the configured HMAC key, and delegates
// persistence to the UserRepository.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - ErrInvalidDataProvided if a required field is empty.
//   - A wrapped storage error if the repository call fails (e.g. login
//     already taken, see store.ErrLoginAlreadyExists).
func (a *authService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.Login == "" || user.AuthHash == "" || user.SrpSalt == "" {
		log.Error().Str("login", user.Login).Msg("invalid registration data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	a.hashCredential(&user)

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("login", user.Login).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user.
//
// It looks up the account by login, re-hashes the supplied authentication
// hash, and compares it in constant time against the stored one.
//
// Returns the authenticated user record or:
//   - ErrInvalidDataProvided if Login or AuthHash is empty.
//   - A wrapped storage error if the repository lookup fails (e.g. user not
//     found, see store.ErrNoUserWasFound).
//   - ErrWrongPassword if the credential does not match.
func (a *authService) Login(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.Login == "" || user.AuthHash == "" {
		log.Error().Str("login", user.Login).Msg("invalid login data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByLogin(ctx, user.Login)
	if err != nil {
		log.Err(err).Str("login", user.Login).Msg("user search by login failed")
		return models.User{}, fmt.Errorf("user search by login failed: %w", err)
	}

	a.hashCredential(&user)
	if subtle.ConstantTimeCompare([]byte(foundUser.AuthHash), []byte(user.AuthHash)) != 1 {
		log.Warn().
			Int64("id", foundUser.UserID).
			Str("login", foundUser.Login).
			Msg("wrong credential presented")
		return models.User{}, ErrWrongPassword
	}

	return foundUser, nil
}

// Params returns the public authentication parameters for an account. The
// stored authentication hash is stripped from the result; only the login and
// the key derivation salt leave the service.
func (a *authService) Params(ctx context.Context, login string) (models.User, error) {
	log := logger.FromContext(ctx)

	if login == "" {
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByLogin(ctx, login)
	if err != nil {
		log.Err(err).Str("login", login).Msg("user search by login failed")
		return models.User{}, fmt.Errorf("user search by login failed: %w", err)
	}

	return models.User{Login: foundUser.Login, SrpSalt: foundUser.SrpSalt}, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
//
// Returns the token model on success or a wrapped error if JWT generation fails.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature and
// the issuer claim. Any validation failure (expired, wrong issuer, malformed)
// is normalised to ErrTokenIsExpiredOrInvalid so that callers do not need to
// inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// hashCredential replaces the client-supplied AuthHash in user with its
// HMAC-SHA256 keyed by the service's hashKey. Applied in-place.
func (a *authService) hashCredential(user *models.User) {
	user.AuthHash = utils.HashString(user.AuthHash, a.hashKey)
}
