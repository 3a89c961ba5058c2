package handlers

import (
	"fmt"
	"os"

	"github.com/jayzhang/TeamsFx/internal/config"
)

// Factory function variables for init - can be replaced in tests.
var (
	// fileExists checks if a file exists.
	fileExists = func(path string) bool {
		_, err := os.Stat(path)
		return err == nil
	}

	// runWizard runs the configuration wizard.
	runWizard = config.RunWizard

	// writeConfig writes the config to a file.
	writeConfig = (*config.Config).WriteFile
)

// Init runs the configuration wizard and writes the result to a file.
func Init(outputPath string) error {
	if fileExists(outputPath) {
		return fmt.Errorf("%s already exists; remove it first or choose another output path", outputPath)
	}

	printWelcome()

	cfg, err := runWizard()
	if err != nil {
		return fmt.Errorf("wizard canceled: %w", err)
	}

	if err := writeConfig(cfg, outputPath); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	fmt.Printf("\nConfiguration written to %s\n", outputPath)
	fmt.Println("Next steps:")
	fmt.Println("  teamsfx provision   # create the bot registration, channel and site")
	fmt.Println("  teamsfx deploy      # push the bot package and restart the site")

	return nil
}

// printWelcome prints the welcome message.
func printWelcome() {
	fmt.Println()
	fmt.Println("teamsfx - Teams bot hosting on Azure")
	fmt.Println("====================================")
	fmt.Println()
	fmt.Println("This wizard creates a bot configuration with sensible defaults.")
	fmt.Println()
}
