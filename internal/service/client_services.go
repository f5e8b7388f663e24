package service

import (
	"github.com/MKhiriev/go-vault-sync/internal/adapter"
	"github.com/MKhiriev/go-vault-sync/internal/config"
	"github.com/MKhiriev/go-vault-sync/internal/crypto"
	"github.com/MKhiriev/go-vault-sync/internal/store"
	"github.com/MKhiriev/go-vault-sync/internal/vault"
)

// ClientServices groups the agent-side services.
type ClientServices struct {
	AuthService  ClientAuthService
	VaultService ClientVaultService
	SyncService  ClientSyncService
	SyncJob      ClientSyncJob
}

// NewClientServices wires the agent service layer. The handle cache is
// shared between the vault and sync services: mutations write through it,
// remote adoptions invalidate it.
func NewClientServices(localStore *store.ClientStorages, serverAdapter adapter.VaultServerAdapter, cfg config.AgentApp) *ClientServices {
	keychain := crypto.NewKeyChainService()
	cache := vault.NewHandleCache()

	syncSvc := NewClientSyncService(localStore, serverAdapter, keychain, cache, cfg.Version, cfg.MinServerVersion)

	return &ClientServices{
		AuthService:  NewClientAuthService(localStore, serverAdapter, keychain, cache),
		VaultService: NewClientVaultService(localStore, keychain, cache),
		SyncService:  syncSvc,
		SyncJob:      NewClientSyncJob(syncSvc),
	}
}
