package provisioning

import (
	"context"

	"github.com/jayzhang/TeamsFx/internal/config"
)

// Context wraps all dependencies and state needed for a workflow phase.
type Context struct {
	context.Context
	Config   *config.Config
	State    *State
	Executor *Executor
	Poller   *Poller
	Observer Observer
}

// NewContext creates a new workflow context.
func NewContext(
	ctx context.Context,
	cfg *config.Config,
	executor *Executor,
	poller *Poller,
	observer Observer,
) *Context {
	if observer == nil {
		observer = NewConsoleObserver()
	}
	return &Context{
		Context:  ctx,
		Config:   cfg,
		State:    NewState(),
		Executor: executor,
		Poller:   poller,
		Observer: observer,
	}
}
