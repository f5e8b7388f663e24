package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-vault-sync/internal/crypto"
	"github.com/MKhiriev/go-vault-sync/internal/logger"
	"github.com/MKhiriev/go-vault-sync/internal/store"
	"github.com/MKhiriev/go-vault-sync/internal/utils"
	"github.com/MKhiriev/go-vault-sync/internal/vault"
	"github.com/MKhiriev/go-vault-sync/models"
)

// clientVaultService applies local mutations to the decrypted vault handle.
// Reads go through the injected handle cache; every mutation is a
// write-through: the live handle stays cached under the new ciphertext, so
// only the serialized blob changes.
type clientVaultService struct {
	localStore *store.ClientStorages
	keychain   crypto.KeyChainService
	cache      *vault.HandleCache
	ids        *utils.UUIDGenerator
}

func NewClientVaultService(localStore *store.ClientStorages, keychain crypto.KeyChainService, cache *vault.HandleCache) ClientVaultService {
	return &clientVaultService{
		localStore: localStore,
		keychain:   keychain,
		cache:      cache,
		ids:        utils.NewUUIDGenerator(),
	}
}

func (v *clientVaultService) OpenVault(ctx context.Context) (*vault.Handle, error) {
	key, ok := v.localStore.Session.EncryptionKey()
	if !ok {
		return nil, ErrVaultLocked
	}

	blob, err := v.localStore.VaultState.EncryptedVault(ctx)
	if err != nil {
		return nil, fmt.Errorf("read encrypted vault: %w", err)
	}
	if blob == "" {
		// No vault provisioned yet; start from an empty one.
		return vault.NewHandle(), nil
	}

	if handle, hit := v.cache.Get(blob); hit {
		return handle, nil
	}

	plain, err := v.keychain.DecryptBlob(blob, key)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWrongPassword, err)
	}

	handle, err := vault.Load(plain)
	if err != nil {
		return nil, fmt.Errorf("load vault: %w", err)
	}

	v.cache.Put(blob, handle)
	return handle, nil
}

func (v *clientVaultService) CreateItem(ctx context.Context, item vault.Item) error {
	if item.ID == "" {
		item.ID = v.ids.Generate()
	}

	return v.mutate(ctx, func(h *vault.Handle) error {
		h.Upsert(item, time.Now())
		return nil
	})
}

func (v *clientVaultService) UpdateItem(ctx context.Context, item vault.Item) error {
	return v.mutate(ctx, func(h *vault.Handle) error {
		if _, ok := h.Items[item.ID]; !ok {
			return ErrItemNotFound
		}
		h.Upsert(item, time.Now())
		return nil
	})
}

func (v *clientVaultService) DeleteItem(ctx context.Context, id string) error {
	return v.mutate(ctx, func(h *vault.Handle) error {
		if !h.SoftDelete(id, time.Now()) {
			return ErrItemNotFound
		}
		return nil
	})
}

// mutate opens the vault, applies fn to the live handle, and persists the
// result through the mutation tracker. The handle is re-cached under the new
// ciphertext rather than invalidated: it already reflects the mutation.
func (v *clientVaultService) mutate(ctx context.Context, fn func(h *vault.Handle) error) error {
	log := logger.FromContext(ctx)

	key, ok := v.localStore.Session.EncryptionKey()
	if !ok {
		return ErrVaultLocked
	}

	handle, err := v.OpenVault(ctx)
	if err != nil {
		return err
	}

	if err = fn(handle); err != nil {
		return err
	}

	plain, err := handle.Export()
	if err != nil {
		return fmt.Errorf("export vault: %w", err)
	}

	encrypted, err := v.keychain.EncryptBlob(plain, key)
	if err != nil {
		return fmt.Errorf("encrypt vault: %w", err)
	}

	sequence, err := v.localStore.VaultState.RecordMutation(ctx, encrypted)
	if err != nil {
		return fmt.Errorf("record mutation: %w", err)
	}
	v.cache.Put(encrypted, handle)

	log.Debug().
		Str("func", "clientVaultService.mutate").
		Int64("mutation_sequence", sequence).
		Msg("local mutation recorded")

	return nil
}

func (v *clientVaultService) StoreEncryptedVault(ctx context.Context, blob string, markDirty bool, serverRevision, expectedSequence int64) (models.CommitOutcome, error) {
	if markDirty {
		sequence, err := v.localStore.VaultState.RecordMutation(ctx, blob)
		if err != nil {
			return models.CommitOutcome{}, fmt.Errorf("record mutation: %w", err)
		}
		// The blob came from outside the live handle; a cached handle no
		// longer matches it.
		v.cache.Invalidate()
		return models.CommitOutcome{Accepted: true, CurrentSequence: sequence}, nil
	}

	outcome, err := v.localStore.VaultState.TryCommitIfUnchanged(ctx, expectedSequence, blob, serverRevision, false)
	if err != nil {
		return models.CommitOutcome{}, fmt.Errorf("commit vault: %w", err)
	}
	if outcome.Accepted {
		v.cache.Invalidate()
	}
	return outcome, nil
}
