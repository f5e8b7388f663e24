package main

import (
	"fmt"

	"github.com/MKhiriev/go-vault-sync/internal/agent"
	"github.com/MKhiriev/go-vault-sync/internal/config"
	"github.com/MKhiriev/go-vault-sync/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewAgentLogger("vault-agent")
	cfg, err := config.GetAgentConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	app, err := agent.NewApp(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating agent")
	}

	if err := app.Run(); err != nil {
		log.Fatal().Err(err).Msg("agent exited with error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
