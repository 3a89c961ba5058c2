package provisioning

import (
	"context"
	"fmt"
	"time"

	"github.com/go-logr/logr"

	"github.com/jayzhang/TeamsFx/internal/platform/azure"
)

// RetryPolicy bounds the deployment status poll. The backoff is fixed: the
// worst-case wait is MaxAttempts × Backoff, which keeps provisioning latency
// predictable for interactive callers.
type RetryPolicy struct {
	MaxAttempts int
	Backoff     time.Duration
}

// Poller waits for a pending deployment to finish by polling its location.
type Poller struct {
	transport azure.DeploymentTransport
	policy    RetryPolicy
	sleep     func(ctx context.Context, d time.Duration) error
	log       logr.Logger
}

// PollerOption configures a Poller.
type PollerOption func(*Poller)

// WithSleep replaces the sleep primitive (used by tests to count sleeps
// without waiting).
func WithSleep(fn func(ctx context.Context, d time.Duration) error) PollerOption {
	return func(p *Poller) {
		p.sleep = fn
	}
}

// WithPollerLogger sets the logger used for per-attempt debug output.
func WithPollerLogger(log logr.Logger) PollerOption {
	return func(p *Poller) {
		p.log = log
	}
}

// NewPoller creates a Poller with the given policy. The policy must allow at
// least one attempt.
func NewPoller(transport azure.DeploymentTransport, policy RetryPolicy, opts ...PollerOption) (*Poller, error) {
	if policy.MaxAttempts < 1 {
		return nil, fmt.Errorf("retry policy must allow at least one attempt, got %d", policy.MaxAttempts)
	}

	p := &Poller{
		transport: transport,
		policy:    policy,
		sleep:     sleepContext,
		log:       logr.Discard(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Wait polls the deployment location until the deployment succeeds, fails,
// or the retry budget runs out.
//
// Only a pending status (202) consumes a retry slot and sleeps. A transport
// error fails immediately with the cause attached: the poll channel itself
// is broken, which is not the same as the deployment still being in
// progress. Any other non-success status also fails immediately, without
// waiting out the remaining budget.
func (p *Poller) Wait(ctx context.Context, location string, creds *azure.PublishingCredentials) error {
	for attempts := 0; attempts < p.policy.MaxAttempts; {
		resp, err := p.transport.DeploymentStatus(ctx, location, creds)
		if err != nil {
			return newError(KindDeployStatus, location, err)
		}

		switch classifyResponse(resp) {
		case StatusAccepted:
			p.log.V(1).Info("deployment pending", "attempt", attempts+1, "max", p.policy.MaxAttempts)
			pollAttemptsTotal.Inc()
			if err := p.sleep(ctx, p.policy.Backoff); err != nil {
				return err
			}
			attempts++
		case StatusOKOrCreated:
			return nil
		default:
			return newError(KindDeployStatus, location, nil)
		}
	}

	return newError(KindDeployTimeout, location, nil)
}

// sleepContext suspends for d, or returns early when the context ends.
func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
