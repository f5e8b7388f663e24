package config

import (
	"fmt"
	"time"
)

// AgentApp holds agent-side application settings derived from the shared
// structured config.
type AgentApp struct {
	// Version is the agent application version sent with every vault upload.
	Version string
	// MinServerVersion is the lowest server major version the agent accepts.
	MinServerVersion string
}

// AgentAdapter holds network settings used by the agent transport layer.
type AgentAdapter struct {
	// HTTPAddress is the base URL of the vault server.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound agent requests.
	RequestTimeout time.Duration
}

// AgentLocal contains local state database settings for the agent.
type AgentLocal struct {
	// Path is the SQLite database path holding the encrypted vault and the
	// sync bookkeeping keys.
	Path string
}

// AgentStorage groups agent storage backend settings.
type AgentStorage struct {
	// Local holds local database settings.
	Local AgentLocal
}

// AgentWorkers contains agent background worker settings.
type AgentWorkers struct {
	// SyncInterval defines how often the background sync worker should run.
	SyncInterval time.Duration
}

// AgentConfig is the top-level agent configuration assembled from
// [StructuredConfig].
type AgentConfig struct {
	// App contains application-level agent settings.
	App AgentApp
	// Adapter contains agent transport addresses and timeouts.
	Adapter AgentAdapter
	// Storage contains agent storage settings.
	Storage AgentStorage
	// Workers contains background job settings.
	Workers AgentWorkers
}

// GetAgentConfig builds and validates an agent-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the agent runtime, and validates the resulting [AgentConfig].
func GetAgentConfig() (*AgentConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	agentCfg := &AgentConfig{
		App: AgentApp{
			Version:          cfg.App.Version,
			MinServerVersion: cfg.App.MinServerVersion,
		},
		Adapter: AgentAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: AgentStorage{
			Local: AgentLocal{
				Path: cfg.Storage.Local.Path,
			},
		},
		Workers: AgentWorkers{SyncInterval: cfg.Workers.SyncInterval},
	}

	return agentCfg, agentCfg.validate()
}
