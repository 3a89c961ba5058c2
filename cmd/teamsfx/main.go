// Package main is the entry point for the teamsfx CLI.
//
// teamsfx provisions and deploys a cloud-hosted bot: it registers the bot's
// messaging endpoint, links the Teams channel, creates the hosting site,
// uploads the deployment package and waits for the deployment to finish.
//
// Commands: init, provision, deploy, version, completion.
//
// For detailed usage information, run:
//
//	teamsfx --help
package main

import (
	"fmt"
	"os"

	"github.com/jayzhang/TeamsFx/cmd/teamsfx/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
