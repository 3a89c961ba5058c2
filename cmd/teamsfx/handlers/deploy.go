package handlers

import (
	"context"
	"fmt"
	"log"

	"github.com/jayzhang/TeamsFx/internal/provisioning"
)

// Deploy runs the deployment workflow: credential fetch, package push with
// status poll, and site restart. With updateSite the site configuration is
// reapplied first, using the reconfiguration error semantics.
func Deploy(ctx context.Context, configPath, packagePath string, updateSite bool) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	if packagePath == "" {
		packagePath = cfg.Deploy.Package
	}
	pkg, err := readPackage(packagePath)
	if err != nil {
		return fmt.Errorf("failed to read deployment package: %w", err)
	}

	log.Printf("Deploying %s to site: %s", packagePath, cfg.Site.Name)

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

	var phases []provisioning.Phase
	if updateSite {
		phases = append(phases, provisioning.SitePhase{Update: true})
	}
	phases = append(phases, provisioning.DeployPhases(pkg)...)

	pctx := provisioning.NewContext(ctx, cfg, executor, poller, newObserver())
	return runPhases(pctx, phases)
}
