package handlers

import (
	"context"
	"log"

	"github.com/jayzhang/TeamsFx/internal/provisioning"
)

// Provision runs the provisioning workflow: registration endpoint update,
// Teams channel link, and site creation.
func Provision(ctx context.Context, configPath string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	log.Printf("Provisioning bot: %s", cfg.Bot.Name)

	timeouts := loadTimeouts()
	client, err := newClient(cfg, timeouts)
	if err != nil {
		return err
	}

	executor := provisioning.NewExecutor(client)
	poller, err := provisioning.NewPoller(client, provisioning.RetryPolicy{
		MaxAttempts: timeouts.DeployRetryTimes,
		Backoff:     timeouts.DeployBackoff,
	})
	if err != nil {
		return err
	}

	pctx := provisioning.NewContext(ctx, cfg, executor, poller, newObserver())
	return runPhases(pctx, provisioning.ProvisionPhases())
}
