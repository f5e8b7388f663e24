// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-vault-sync/internal/adapter"
	"github.com/MKhiriev/go-vault-sync/internal/crypto"
	"github.com/MKhiriev/go-vault-sync/internal/logger"
	"github.com/MKhiriev/go-vault-sync/internal/store"
	"github.com/MKhiriev/go-vault-sync/internal/vault"
	"github.com/MKhiriev/go-vault-sync/models"
)

// maxSyncAttempts bounds the restart-on-conflict loop. A restart happens when
// a local mutation lands mid-sync or another device uploads first; both are
// expected and resolve on re-read. Exceeding the bound means a pathological
// write storm, and the conflict is surfaced instead of spinning.
const maxSyncAttempts = 5

// clientSyncService reconciles the local encrypted vault with the server.
type clientSyncService struct {
	localStore *store.ClientStorages
	adapter    adapter.VaultServerAdapter
	keychain   crypto.KeyChainService
	cache      *vault.HandleCache

	appVersion       string
	minServerVersion string
}

func NewClientSyncService(localStore *store.ClientStorages, serverAdapter adapter.VaultServerAdapter, keychain crypto.KeyChainService, cache *vault.HandleCache, appVersion, minServerVersion string) ClientSyncService {
	return &clientSyncService{
		localStore:       localStore,
		adapter:          serverAdapter,
		keychain:         keychain,
		cache:            cache,
		appVersion:       appVersion,
		minServerVersion: minServerVersion,
	}
}

func (s *clientSyncService) FullVaultSync(ctx context.Context) models.SyncResult {
	log := logger.FromContext(ctx)

	for attempt := 1; attempt <= maxSyncAttempts; attempt++ {
		result, retry := s.syncOnce(ctx)
		if !retry {
			return result
		}
		log.Debug().
			Str("func", "clientSyncService.FullVaultSync").
			Int("attempt", attempt).
			Msg("sync conflict detected, restarting pass")
	}

	log.Warn().
		Str("func", "clientSyncService.FullVaultSync").
		Int("max_attempts", maxSyncAttempts).
		Msg("sync did not converge, surfacing conflict")

	return models.SyncResult{
		ErrorCode: models.SyncErrConflict,
		Message:   "sync conflict persisted after repeated attempts",
	}
}

// syncOnce runs a single reconciliation pass. retry=true means the pass was
// abandoned because of a concurrent write (local mutation or another device's
// upload) and the caller should restart from fresh state.
func (s *clientSyncService) syncOnce(ctx context.Context) (result models.SyncResult, retry bool) {
	log := logger.FromContext(ctx)

	if _, loggedIn := s.localStore.Session.Token(); !loggedIn {
		return failureResult(models.SyncErrNotLoggedIn, ErrNotLoggedIn.Error()), false
	}

	key, unlocked := s.localStore.Session.EncryptionKey()
	if !unlocked {
		return failureResult(models.SyncErrVaultLocked, ErrVaultLocked.Error()), false
	}

	status, err := s.adapter.GetStatus(ctx)
	if err != nil {
		return s.classifyStatusFailure(ctx, err), false
	}

	if err = validateServerVersion(status.ServerVersion, s.minServerVersion); err != nil {
		result = failureResult(models.SyncErrVersionIncompatible, err.Error())
		result.RequiresLogout = true
		return result, false
	}

	if s.passwordChangedElsewhere(ctx, status.SrpSalt) {
		result = failureResult(models.SyncErrPasswordChanged, "master password was changed on another device")
		result.RequiresLogout = true
		return result, false
	}

	state, err := s.localStore.VaultState.State(ctx)
	if err != nil {
		return failureResult(models.SyncErrGeneric, fmt.Sprintf("read sync state: %v", err)), false
	}

	if state.OfflineMode {
		if err = s.localStore.VaultState.SetOfflineMode(ctx, false); err != nil {
			return failureResult(models.SyncErrGeneric, fmt.Sprintf("clear offline mode: %v", err)), false
		}
	}

	// The sequence captured here is the race detector for the whole pass:
	// any commit below is conditional on it being unchanged.
	capturedSequence := state.MutationSequence

	switch {
	case status.VaultRevision > state.ServerRevision:
		result, retry = s.adoptServerVault(ctx, key, state, capturedSequence, status.VaultRevision)
	case status.VaultRevision == state.ServerRevision:
		if state.Dirty {
			result, retry = s.uploadAndMarkClean(ctx, key, capturedSequence, state.ServerRevision)
		}
	default:
		// The server reports an older revision than we confirmed earlier.
		// That signals server-side data loss; local state is authoritative,
		// re-upload to restore it.
		log.Warn().
			Str("func", "clientSyncService.syncOnce").
			Int64("local_revision", state.ServerRevision).
			Int64("server_revision", status.VaultRevision).
			Msg("server revision behind local, re-uploading to recover")
		result, retry = s.uploadAndMarkClean(ctx, key, capturedSequence, status.VaultRevision)
	}
	if retry || result.ErrorCode != "" {
		return result, retry
	}

	result.Success = true
	result.UpgradeRequired = s.pendingMigrations(ctx, key)
	return result, false
}

// classifyStatusFailure maps a failed status call to a sync result. An
// unreachable server with a provisioned local vault is the offline fallback,
// not an error.
func (s *clientSyncService) classifyStatusFailure(ctx context.Context, err error) models.SyncResult {
	log := logger.FromContext(ctx)

	switch {
	case errors.Is(err, adapter.ErrServerUnavailable):
		blob, readErr := s.localStore.VaultState.EncryptedVault(ctx)
		if readErr == nil && blob != "" {
			if offErr := s.localStore.VaultState.SetOfflineMode(ctx, true); offErr != nil {
				return failureResult(models.SyncErrGeneric, fmt.Sprintf("enter offline mode: %v", offErr))
			}
			log.Info().Str("func", "clientSyncService.classifyStatusFailure").Msg("server unreachable, working offline")
			return models.SyncResult{Success: true, WasOffline: true}
		}
		return failureResult(models.SyncErrServerNotAvailable, err.Error())

	case errors.Is(err, adapter.ErrUnauthorized):
		result := failureResult(models.SyncErrSessionExpired, "session expired, please log in again")
		result.RequiresLogout = true
		return result

	default:
		return failureResult(models.SyncErrGeneric, err.Error())
	}
}

// passwordChangedElsewhere compares the server's stored authentication salt
// with the locally cached one. A difference means the master password was
// changed on another device and the local key material is stale.
func (s *clientSyncService) passwordChangedElsewhere(ctx context.Context, serverSalt string) bool {
	if serverSalt == "" {
		return false
	}
	localSalt, err := s.localStore.VaultState.SrpSalt(ctx)
	if err != nil || localSalt == "" {
		return false
	}
	return localSalt != serverSalt
}

// adoptServerVault handles the server-newer branch: download, then either a
// straight commit (clean local state) or a merge (dirty local state).
func (s *clientSyncService) adoptServerVault(ctx context.Context, key []byte, state models.VaultState, capturedSequence, serverRevision int64) (models.SyncResult, bool) {
	log := logger.FromContext(ctx)

	download, err := s.adapter.GetVault(ctx)
	if err != nil {
		return s.classifyStatusFailure(ctx, err), false
	}

	if err = s.localStore.VaultState.SetEmailDomainLists(ctx, models.EmailDomainLists{
		Public:        download.PublicEmailDomainList,
		Private:       download.PrivateEmailDomainList,
		HiddenPrivate: download.HiddenPrivateEmailDomainList,
	}); err != nil {
		return failureResult(models.SyncErrGeneric, fmt.Sprintf("store email domain lists: %v", err)), false
	}

	if state.Dirty {
		mergedBlob, mergeErr := s.mergeVaults(ctx, key, download.Blob)
		if mergeErr == nil {
			outcome, commitErr := s.localStore.VaultState.TryCommitIfUnchanged(ctx, capturedSequence, mergedBlob, download.CurrentRevisionNumber, true)
			if commitErr != nil {
				return failureResult(models.SyncErrGeneric, fmt.Sprintf("commit merged vault: %v", commitErr)), false
			}
			if !outcome.Accepted {
				return models.SyncResult{}, true
			}
			s.cache.Invalidate()

			result, retry := s.uploadAndMarkClean(ctx, key, capturedSequence, download.CurrentRevisionNumber)
			if retry || result.ErrorCode != "" {
				return result, retry
			}
			result.HasNewVault = true
			return result, false
		}

		// Merge failed: yield to the server state for this pass. The dirty
		// flag survives, so the local edits get another chance on the next
		// sync.
		log.Warn().Err(mergeErr).
			Str("func", "clientSyncService.adoptServerVault").
			Msg("merge failed, adopting server vault for this pass")
	}

	outcome, err := s.localStore.VaultState.TryCommitIfUnchanged(ctx, capturedSequence, download.Blob, download.CurrentRevisionNumber, state.Dirty)
	if err != nil {
		return failureResult(models.SyncErrGeneric, fmt.Sprintf("commit server vault: %v", err)), false
	}
	if !outcome.Accepted {
		return models.SyncResult{}, true
	}
	s.cache.Invalidate()

	return models.SyncResult{HasNewVault: true}, false
}

// mergeVaults decrypts the local and server blobs, merges them item by item,
// and returns the encrypted merged blob.
func (s *clientSyncService) mergeVaults(ctx context.Context, key []byte, serverBlob string) (string, error) {
	log := logger.FromContext(ctx)

	localBlob, err := s.localStore.VaultState.EncryptedVault(ctx)
	if err != nil {
		return "", fmt.Errorf("read local vault: %w", err)
	}

	localHandle, err := s.decryptHandle(localBlob, key)
	if err != nil {
		return "", fmt.Errorf("open local vault: %w", err)
	}
	serverHandle, err := s.decryptHandle(serverBlob, key)
	if err != nil {
		return "", fmt.Errorf("open server vault: %w", err)
	}

	merged, stats := vault.Merge(localHandle, serverHandle)
	log.Info().
		Str("func", "clientSyncService.mergeVaults").
		Int("local_only", stats.LocalOnly).
		Int("server_only", stats.ServerOnly).
		Int("local_wins", stats.LocalWins).
		Int("server_wins", stats.ServerWins).
		Msg("vaults merged")

	plain, err := merged.Export()
	if err != nil {
		return "", fmt.Errorf("export merged vault: %w", err)
	}

	return s.keychain.EncryptBlob(plain, key)
}

// uploadAndMarkClean runs the upload sub-operation and translates the server
// status code: accepted clears the dirty flag, outdated restarts the pass,
// anything else is a failure that leaves the blob dirty for a later retry.
func (s *clientSyncService) uploadAndMarkClean(ctx context.Context, key []byte, capturedSequence, baseRevision int64) (models.SyncResult, bool) {
	resp, err := s.uploadVault(ctx, key, capturedSequence, baseRevision)
	if err != nil {
		if errors.Is(err, errConcurrentMutation) {
			return models.SyncResult{}, true
		}
		return s.classifyStatusFailure(ctx, err), false
	}

	switch resp.Status {
	case models.UploadStatusAccepted:
		if _, err = s.localStore.VaultState.MarkClean(ctx, capturedSequence, resp.NewRevisionNumber); err != nil {
			return failureResult(models.SyncErrGeneric, fmt.Sprintf("mark clean: %v", err)), false
		}
		return models.SyncResult{}, false
	case models.UploadStatusOutdated:
		return models.SyncResult{}, true
	default:
		return failureResult(models.SyncErrGeneric, fmt.Sprintf("upload rejected with status %d", resp.Status)), false
	}
}

// errConcurrentMutation signals that the pruning commit inside the upload
// sub-operation lost a race with a local mutation.
var errConcurrentMutation = errors.New("concurrent mutation during upload")

// uploadVault is the upload sub-operation: prune expired trash, persist the
// pruned blob, and POST it with the vault metadata the server tracks.
func (s *clientSyncService) uploadVault(ctx context.Context, key []byte, capturedSequence, baseRevision int64) (models.VaultUploadResponse, error) {
	log := logger.FromContext(ctx)

	blob, err := s.localStore.VaultState.EncryptedVault(ctx)
	if err != nil {
		return models.VaultUploadResponse{}, fmt.Errorf("read local vault: %w", err)
	}

	handle, err := s.decryptHandle(blob, key)
	if err != nil {
		return models.VaultUploadResponse{}, fmt.Errorf("open local vault: %w", err)
	}

	if pruned := vault.Prune(handle, time.Now()); pruned > 0 {
		plain, exportErr := handle.Export()
		if exportErr != nil {
			return models.VaultUploadResponse{}, fmt.Errorf("export pruned vault: %w", exportErr)
		}
		prunedBlob, encErr := s.keychain.EncryptBlob(plain, key)
		if encErr != nil {
			return models.VaultUploadResponse{}, fmt.Errorf("encrypt pruned vault: %w", encErr)
		}

		outcome, commitErr := s.localStore.VaultState.TryCommitIfUnchanged(ctx, capturedSequence, prunedBlob, baseRevision, true)
		if commitErr != nil {
			return models.VaultUploadResponse{}, fmt.Errorf("persist pruned vault: %w", commitErr)
		}
		if !outcome.Accepted {
			return models.VaultUploadResponse{}, errConcurrentMutation
		}
		s.cache.Put(prunedBlob, handle)
		blob = prunedBlob

		log.Debug().
			Str("func", "clientSyncService.uploadVault").
			Int("pruned_items", pruned).
			Msg("expired trash pruned before upload")
	}

	return s.adapter.PostVault(ctx, models.VaultUploadRequest{
		Blob:               blob,
		BaseRevisionNumber: baseRevision,
		CredentialsCount:   handle.CredentialsCount(),
		EmailAddressList:   handle.EmailAddresses(),
		Version:            s.appVersion,
	})
}

// pendingMigrations reports whether the stored vault carries an older format
// version. Best effort: a read or decrypt failure here does not fail the
// sync that just succeeded.
func (s *clientSyncService) pendingMigrations(ctx context.Context, key []byte) bool {
	blob, err := s.localStore.VaultState.EncryptedVault(ctx)
	if err != nil || blob == "" {
		return false
	}
	handle, err := s.decryptHandle(blob, key)
	if err != nil {
		return false
	}
	return handle.HasPendingMigrations()
}

func (s *clientSyncService) decryptHandle(blob string, key []byte) (*vault.Handle, error) {
	if handle, hit := s.cache.Get(blob); hit {
		return handle, nil
	}
	plain, err := s.keychain.DecryptBlob(blob, key)
	if err != nil {
		return nil, err
	}
	return vault.Load(plain)
}

func (s *clientSyncService) CheckSyncStatus(ctx context.Context) models.SyncStatusReport {
	if _, loggedIn := s.localStore.Session.Token(); !loggedIn {
		return models.SyncStatusReport{RequiresLogout: true, ErrorCode: models.SyncErrNotLoggedIn}
	}

	state, err := s.localStore.VaultState.State(ctx)
	if err != nil {
		return models.SyncStatusReport{ErrorCode: models.SyncErrGeneric}
	}
	report := models.SyncStatusReport{HasDirtyChanges: state.Dirty}

	status, err := s.adapter.GetStatus(ctx)
	if err != nil {
		switch {
		case errors.Is(err, adapter.ErrServerUnavailable):
			report.IsOffline = true
		case errors.Is(err, adapter.ErrUnauthorized):
			report.RequiresLogout = true
			report.ErrorCode = models.SyncErrSessionExpired
		default:
			report.ErrorCode = models.SyncErrGeneric
		}
		return report
	}

	if err = validateServerVersion(status.ServerVersion, s.minServerVersion); err != nil {
		report.RequiresLogout = true
		report.ErrorCode = models.SyncErrVersionIncompatible
		return report
	}
	if s.passwordChangedElsewhere(ctx, status.SrpSalt) {
		report.RequiresLogout = true
		report.ErrorCode = models.SyncErrPasswordChanged
		return report
	}

	report.HasNewerVault = status.VaultRevision > state.ServerRevision
	return report
}

func (s *clientSyncService) UploadVault(ctx context.Context) models.SyncResult {
	if _, loggedIn := s.localStore.Session.Token(); !loggedIn {
		return failureResult(models.SyncErrNotLoggedIn, ErrNotLoggedIn.Error())
	}
	key, unlocked := s.localStore.Session.EncryptionKey()
	if !unlocked {
		return failureResult(models.SyncErrVaultLocked, ErrVaultLocked.Error())
	}

	state, err := s.localStore.VaultState.State(ctx)
	if err != nil {
		return failureResult(models.SyncErrGeneric, fmt.Sprintf("read sync state: %v", err))
	}

	result, retry := s.uploadAndMarkClean(ctx, key, state.MutationSequence, state.ServerRevision)
	if retry {
		// The server moved ahead; fall back to the full reconciliation.
		return s.FullVaultSync(ctx)
	}
	if result.ErrorCode != "" {
		return result
	}

	result.Success = true
	return result
}

func (s *clientSyncService) MarkVaultClean(ctx context.Context, expectedSequence, newServerRevision int64) (bool, error) {
	return s.localStore.VaultState.MarkClean(ctx, expectedSequence, newServerRevision)
}

func (s *clientSyncService) GetSyncState(ctx context.Context) (models.VaultState, error) {
	return s.localStore.VaultState.State(ctx)
}

func (s *clientSyncService) GetServerRevision(ctx context.Context) (int64, error) {
	state, err := s.localStore.VaultState.State(ctx)
	if err != nil {
		return 0, err
	}
	return state.ServerRevision, nil
}

func failureResult(code, message string) models.SyncResult {
	return models.SyncResult{ErrorCode: code, Message: message}
}

// validateServerVersion compares the server's major version against the
// minimum the agent supports.
func validateServerVersion(serverVersion, minServerVersion string) error {
	if serverVersion == "" || minServerVersion == "" {
		return nil
	}

	serverMajor, err := majorVersion(serverVersion)
	if err != nil {
		return fmt.Errorf("malformed server version %q: %w", serverVersion, err)
	}
	minMajor, err := majorVersion(minServerVersion)
	if err != nil {
		return fmt.Errorf("malformed minimum version %q: %w", minServerVersion, err)
	}

	if serverMajor < minMajor {
		return fmt.Errorf("server version %s is older than minimum supported %s", serverVersion, minServerVersion)
	}
	return nil
}

func majorVersion(version string) (int, error) {
	major, _, _ := strings.Cut(strings.TrimPrefix(version, "v"), ".")
	return strconv.Atoi(major)
}
