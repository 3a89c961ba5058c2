package commands

import (
	"github.com/spf13/cobra"

	"github.com/jayzhang/TeamsFx/cmd/teamsfx/handlers"
)

// Deploy returns the command for deploying the bot package to the hosting
// site.
//
// Optional flags:
//
//	--config, -c: Path to bot configuration YAML file (default: teamsfx.yaml)
//	--package, -p: Path to the zip package (default: from config)
//	--update-site: Reapply the site configuration before deploying
func Deploy() *cobra.Command {
	var (
		configPath  string
		packagePath string
		updateSite  bool
	)

	cmd := &cobra.Command{
		Use:   "deploy",
		Short: "Deploy the bot package to the hosting site",
		Long: `Deploy the packaged bot to the provisioned hosting site.

This command fetches the site's publishing credentials, pushes the zip
package to the site's deployment endpoint, waits for the deployment to
finish, and restarts the site.

Examples:
  # Deploy the package referenced by teamsfx.yaml
  teamsfx deploy

  # Deploy a specific package
  teamsfx deploy -p dist/bot.zip

  # Reapply site settings before deploying
  teamsfx deploy --update-site`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Deploy(cmd.Context(), configPath, packagePath, updateSite)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: teamsfx.yaml)")
	cmd.Flags().StringVarP(&packagePath, "package", "p", "", "Path to the zip package (default: from config)")
	cmd.Flags().BoolVar(&updateSite, "update-site", false, "Reapply the site configuration before deploying")

	return cmd
}
