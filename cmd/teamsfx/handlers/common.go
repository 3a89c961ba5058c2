// Package handlers implements the business logic for CLI commands.
//
// This package contains handler functions that are called by command
// definitions in the commands package. Handlers are framework-agnostic and
// can be tested independently of the CLI framework.
package handlers

import (
	"fmt"
	"os"

	"github.com/jayzhang/TeamsFx/internal/config"
	"github.com/jayzhang/TeamsFx/internal/platform/azure"
	"github.com/jayzhang/TeamsFx/internal/provisioning"
)

// Factory function variables - can be replaced in tests for dependency injection.
var (
	// loadConfigFile loads config from file.
	loadConfigFile = config.LoadFile

	// loadTimeouts loads the timeout configuration from the environment.
	loadTimeouts = config.LoadTimeouts

	// newClient creates a provider client from environment credentials.
	newClient = func(cfg *config.Config, timeouts *config.Timeouts) (azure.Client, error) {
		tenantID := os.Getenv("AZURE_TENANT_ID")
		clientID := os.Getenv("AZURE_CLIENT_ID")
		clientSecret := os.Getenv("AZURE_CLIENT_SECRET")
		if tenantID == "" || clientID == "" || clientSecret == "" {
			return nil, fmt.Errorf("AZURE_TENANT_ID, AZURE_CLIENT_ID and AZURE_CLIENT_SECRET must be set")
		}

		return azure.NewRealClient(cfg.Subscription,
			azure.WithTokenSource(azure.NewTokenSource(tenantID, clientID, clientSecret)),
			azure.WithTimeouts(timeouts),
		), nil
	}

	// newObserver creates the workflow observer.
	newObserver = func() provisioning.Observer {
		return provisioning.NewConsoleObserver()
	}

	// runPhases runs the workflow phases.
	runPhases = provisioning.RunPhases

	// readPackage reads the deployment package.
	readPackage = os.ReadFile
)

// loadConfig loads and validates the configuration, defaulting the path to
// teamsfx.yaml in the current directory.
func loadConfig(configPath string) (*config.Config, error) {
	if configPath == "" {
		configPath = config.DefaultConfigFile
	}
	cfg, err := loadConfigFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}
