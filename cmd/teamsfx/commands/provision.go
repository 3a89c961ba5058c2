package commands

import (
	"github.com/spf13/cobra"

	"github.com/jayzhang/TeamsFx/cmd/teamsfx/handlers"
)

// Provision returns the command for provisioning the bot's cloud resources.
//
// Optional flags:
//
//	--config, -c: Path to bot configuration YAML file (default: teamsfx.yaml)
//
// Environment variables:
//
//	AZURE_TENANT_ID, AZURE_CLIENT_ID, AZURE_CLIENT_SECRET: AAD credentials (required)
//	AZURE_SUBSCRIPTION_ID: subscription fallback when not in the config
func Provision() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "provision",
		Short: "Provision the bot registration, channel and hosting site",
		Long: `Provision the bot's cloud resources.

This command updates the bot channel registration's messaging endpoint,
links the Teams channel, and creates the App Service site that will host
the bot code.

If no config file is specified, it looks for teamsfx.yaml in the current
directory. Use 'teamsfx init' to create a configuration file.

Examples:
  # Provision using teamsfx.yaml in current directory
  teamsfx provision

  # Provision using a specific config file
  teamsfx provision -c production.yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Provision(cmd.Context(), configPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: teamsfx.yaml)")

	return cmd
}
