package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-vault-sync/internal/config"
	"github.com/MKhiriev/go-vault-sync/internal/logger"
	"github.com/MKhiriev/go-vault-sync/internal/store"
	"github.com/MKhiriev/go-vault-sync/models"
)

// vaultService is the server side of vault synchronization. The vault blob is
// opaque to it: the service only versions blobs and hands out the metadata
// clients need to decide whether to sync.
type vaultService struct {
	userRepository  store.UserRepository
	vaultRepository store.VaultRepository

	// serverVersion is reported in every status response so agents can
	// detect incompatible deployments before syncing.
	serverVersion string

	// mail holds the alias email-domain lists distributed with every vault
	// download.
	mail config.Mail

	logger *logger.Logger
}

// NewVaultService constructs a VaultService over the given repositories.
func NewVaultService(userRepository store.UserRepository, vaultRepository store.VaultRepository, appCfg config.App, mailCfg config.Mail, logger *logger.Logger) VaultService {
	return &vaultService{
		userRepository:  userRepository,
		vaultRepository: vaultRepository,
		serverVersion:   appCfg.Version,
		mail:            mailCfg,
		logger:          logger,
	}
}

// Status returns the sync probe payload: the server version, the user's
// current vault revision (0 when nothing has been uploaded yet), and the
// account's key derivation salt. Agents compare the salt against their cached
// copy to detect a master password change made on another device.
func (v *vaultService) Status(ctx context.Context, userID int64) (models.VaultStatusResponse, error) {
	log := logger.FromContext(ctx)

	user, err := v.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Str("func", "vaultService.Status").Msg("user lookup failed")
		return models.VaultStatusResponse{}, fmt.Errorf("user lookup failed: %w", err)
	}

	revision, err := v.vaultRepository.CurrentRevision(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Str("func", "vaultService.Status").Msg("revision lookup failed")
		return models.VaultStatusResponse{}, fmt.Errorf("revision lookup failed: %w", err)
	}

	return models.VaultStatusResponse{
		ServerVersion: v.serverVersion,
		VaultRevision: revision,
		SrpSalt:       user.SrpSalt,
	}, nil
}

// GetVault returns the stored encrypted vault together with the configured
// email-domain lists. Propagates store.ErrVaultNotFound untouched so the
// transport layer can answer 404 for accounts that never uploaded.
func (v *vaultService) GetVault(ctx context.Context, userID int64) (models.VaultGetResponse, error) {
	vault, err := v.vaultRepository.GetVault(ctx, userID)
	if err != nil {
		return models.VaultGetResponse{}, err
	}

	return models.VaultGetResponse{
		Blob:                         vault.Blob,
		CurrentRevisionNumber:        vault.Revision,
		PublicEmailDomainList:        v.mail.PublicEmailDomains,
		PrivateEmailDomainList:       v.mail.PrivateEmailDomains,
		HiddenPrivateEmailDomainList: v.mail.HiddenPrivateEmailDomains,
	}, nil
}

// SaveVault persists an upload if its base revision still matches the stored
// one. A stale base revision is not an error at this level: the response
// carries the outdated status plus the current revision, and the client is
// expected to download, merge, and upload again.
func (v *vaultService) SaveVault(ctx context.Context, userID int64, upload models.VaultUploadRequest) (models.VaultUploadResponse, error) {
	log := logger.FromContext(ctx)

	if upload.Blob == "" {
		return models.VaultUploadResponse{}, ErrInvalidDataProvided
	}

	newRevision, err := v.vaultRepository.SaveVault(ctx, models.StoredVault{
		UserID:           userID,
		Blob:             upload.Blob,
		CredentialsCount: upload.CredentialsCount,
		EmailAddressList: upload.EmailAddressList,
		ClientVersion:    upload.Version,
	}, upload.BaseRevisionNumber)
	if err != nil {
		if errors.Is(err, store.ErrVersionConflict) {
			log.Info().
				Int64("user_id", userID).
				Int64("base_revision", upload.BaseRevisionNumber).
				Int64("current_revision", newRevision).
				Str("func", "vaultService.SaveVault").
				Msg("upload based on stale revision")
			return models.VaultUploadResponse{
				Status:            models.UploadStatusOutdated,
				NewRevisionNumber: newRevision,
			}, nil
		}
		log.Err(err).Int64("user_id", userID).Str("func", "vaultService.SaveVault").Msg("vault save failed")
		return models.VaultUploadResponse{}, fmt.Errorf("vault save failed: %w", err)
	}

	return models.VaultUploadResponse{
		Status:            models.UploadStatusAccepted,
		NewRevisionNumber: newRevision,
	}, nil
}
