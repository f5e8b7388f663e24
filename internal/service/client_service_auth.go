package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-vault-sync/internal/adapter"
	"github.com/MKhiriev/go-vault-sync/internal/crypto"
	"github.com/MKhiriev/go-vault-sync/internal/logger"
	"github.com/MKhiriev/go-vault-sync/internal/store"
	"github.com/MKhiriev/go-vault-sync/internal/vault"
	"github.com/MKhiriev/go-vault-sync/models"
)

// authSalt domain-separates the authentication hash from the vault
// encryption key: the server only ever sees the second derivation.
var authSalt = "go-vault-sync-auth"

type clientAuthService struct {
	localStore *store.ClientStorages
	adapter    adapter.VaultServerAdapter
	keychain   crypto.KeyChainService
	cache      *vault.HandleCache
}

func NewClientAuthService(localStore *store.ClientStorages, serverAdapter adapter.VaultServerAdapter, keychain crypto.KeyChainService, cache *vault.HandleCache) ClientAuthService {
	return &clientAuthService{
		localStore: localStore,
		adapter:    serverAdapter,
		keychain:   keychain,
		cache:      cache,
	}
}

func (a *clientAuthService) Register(ctx context.Context, login, masterPassword string) error {
	salt, err := a.keychain.GenerateEncryptionSalt()
	if err != nil {
		return fmt.Errorf("generate salt: %w", err)
	}

	key := a.keychain.DeriveKey(masterPassword, salt)
	authHash := a.keychain.GenerateAuthHash(key, authSalt)
	saltB64 := base64.StdEncoding.EncodeToString(salt)

	user := models.User{
		Login:    login,
		AuthHash: base64.StdEncoding.EncodeToString(authHash),
		SrpSalt:  saltB64,
	}

	token, err := a.adapter.Register(ctx, user)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRegisterOnServer, err)
	}

	a.localStore.Session.SetToken(token)
	a.localStore.Session.SetEncryptionKey(key)

	if err = a.localStore.VaultState.SetSrpSalt(ctx, saltB64); err != nil {
		return fmt.Errorf("cache srp salt: %w", err)
	}

	// Provision an empty vault marked dirty so the first sync uploads it.
	return a.provisionEmptyVault(ctx, key)
}

func (a *clientAuthService) Login(ctx context.Context, login, masterPassword string) error {
	log := logger.FromContext(ctx)

	params, err := a.adapter.Params(ctx, login)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrLoginOnServer, err)
	}

	salt, err := base64.StdEncoding.DecodeString(params.SrpSalt)
	if err != nil {
		return fmt.Errorf("decode srp salt: %w", err)
	}

	key := a.keychain.DeriveKey(masterPassword, salt)
	authHash := a.keychain.GenerateAuthHash(key, authSalt)

	token, err := a.adapter.Login(ctx, models.User{
		Login:    login,
		AuthHash: base64.StdEncoding.EncodeToString(authHash),
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrLoginOnServer, err)
	}

	a.localStore.Session.SetToken(token)
	a.localStore.Session.SetEncryptionKey(key)

	if err = a.localStore.VaultState.SetSrpSalt(ctx, params.SrpSalt); err != nil {
		return fmt.Errorf("cache srp salt: %w", err)
	}

	// Pull the current vault so the agent starts from server state.
	download, err := a.adapter.GetVault(ctx)
	if err != nil {
		if errors.Is(err, adapter.ErrNotFound) {
			log.Info().Str("func", "clientAuthService.Login").Msg("no vault on server yet, provisioning empty vault")
			return a.provisionEmptyVault(ctx, key)
		}
		return fmt.Errorf("download vault at login: %w", err)
	}

	if err = a.localStore.VaultState.StoreVault(ctx, download.Blob, download.CurrentRevisionNumber); err != nil {
		return fmt.Errorf("store downloaded vault: %w", err)
	}
	a.cache.Invalidate()

	if err = a.localStore.VaultState.SetEmailDomainLists(ctx, models.EmailDomainLists{
		Public:        download.PublicEmailDomainList,
		Private:       download.PrivateEmailDomainList,
		HiddenPrivate: download.HiddenPrivateEmailDomainList,
	}); err != nil {
		return fmt.Errorf("store email domain lists: %w", err)
	}

	return nil
}

func (a *clientAuthService) provisionEmptyVault(ctx context.Context, key []byte) error {
	handle := vault.NewHandle()
	plain, err := handle.Export()
	if err != nil {
		return fmt.Errorf("export empty vault: %w", err)
	}
	encrypted, err := a.keychain.EncryptBlob(plain, key)
	if err != nil {
		return fmt.Errorf("encrypt empty vault: %w", err)
	}

	if _, err = a.localStore.VaultState.RecordMutation(ctx, encrypted); err != nil {
		return fmt.Errorf("persist empty vault: %w", err)
	}
	a.cache.Put(encrypted, handle)

	return nil
}

func (a *clientAuthService) Logout(ctx context.Context) error {
	a.localStore.Session.Clear()
	a.adapter.SetToken("")
	a.cache.Invalidate()

	if err := a.localStore.VaultState.Clear(ctx); err != nil {
		return fmt.Errorf("clear local state: %w", err)
	}

	return nil
}

func (a *clientAuthService) CheckAuthStatus() bool {
	_, ok := a.localStore.Session.Token()
	return ok
}
