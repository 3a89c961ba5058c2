package provisioning

import (
	"fmt"
	"time"
)

// Phase defines the interface for one workflow step.
type Phase interface {
	// Name returns the human-readable name of this phase.
	Name() string

	// Provision executes the phase.
	Provision(ctx *Context) error
}

// RunPhases executes all workflow phases strictly in sequence. The first
// failing phase aborts the run; earlier side effects are left as-is, there
// is no rollback.
func RunPhases(ctx *Context, phases []Phase) error {
	start := time.Now()
	ctx.Observer.Printf("Starting workflow with %d phases...", len(phases))

	for i, phase := range phases {
		phaseStart := time.Now()
		name := fmt.Sprintf("%s (%d/%d)", phase.Name(), i+1, len(phases))

		ctx.Observer.Event(Event{Type: EventPhaseStarted, Phase: name, Message: "starting"})

		if err := phase.Provision(ctx); err != nil {
			ctx.Observer.Event(Event{
				Type:    EventPhaseFailed,
				Phase:   name,
				Message: fmt.Sprintf("failed: %v", err),
			})
			return fmt.Errorf("%s phase failed: %w", phase.Name(), err)
		}

		elapsed := time.Since(phaseStart)
		phaseDuration.WithLabelValues(phase.Name()).Observe(elapsed.Seconds())
		ctx.Observer.Event(Event{
			Type:    EventPhaseCompleted,
			Phase:   name,
			Message: fmt.Sprintf("completed in %v", elapsed.Round(time.Millisecond)),
		})
	}

	ctx.Observer.Printf("Workflow completed in %v", time.Since(start).Round(time.Millisecond))
	return nil
}
