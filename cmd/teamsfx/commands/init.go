package commands

import (
	"github.com/spf13/cobra"

	"github.com/jayzhang/TeamsFx/cmd/teamsfx/handlers"
)

// Init returns the command for interactively creating a bot configuration.
//
// Flags:
//
//	--output, -o: Path to output file (default "teamsfx.yaml")
func Init() *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Interactively create a bot configuration",
		Long: `Interactively create a bot configuration file.

This command guides you through configuring your hosted bot step by step.
It will ask about:

  - Azure subscription and resource group
  - Bot registration name, app ID and messaging endpoint
  - Hosting site name, region and App Service plan
  - Deployment package location

The resulting YAML is read by 'teamsfx provision' and 'teamsfx deploy'.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return handlers.Init(outputPath)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "teamsfx.yaml", "Output file path")

	return cmd
}
