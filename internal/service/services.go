package service

import (
	"github.com/MKhiriev/go-vault-sync/internal/config"
	"github.com/MKhiriev/go-vault-sync/internal/logger"
	"github.com/MKhiriev/go-vault-sync/internal/store"
)

// Services groups the server-side services.
type Services struct {
	AuthService  AuthService
	VaultService VaultService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:  NewAuthService(storages.UserRepository, cfg.App, logger),
		VaultService: NewVaultService(storages.UserRepository, storages.VaultRepository, cfg.App, cfg.Mail, logger),
	}
}
