package provisioning

import (
	"github.com/jayzhang/TeamsFx/internal/platform/azure"
)

// State holds the shared results of workflow phases.
// It is progressively populated as each phase completes and is read by
// subsequent phases that need earlier results. Nothing in it outlives the
// workflow run.
type State struct {
	// Site is the provider's view of the hosting site after the site phase.
	Site *azure.Site

	// Credentials are the site's deployment credentials after the
	// credentials phase.
	Credentials *azure.PublishingCredentials

	// DeployLocation is the pending-deployment location returned by the
	// package push, consumed exactly once by the status poll.
	DeployLocation string
}

// NewState creates an empty workflow state.
func NewState() *State {
	return &State{}
}
