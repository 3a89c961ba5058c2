package provisioning

import (
	"github.com/jayzhang/TeamsFx/internal/platform/azure"
)

// RegistrationPhase points the bot channel registration at the configured
// messaging endpoint.
type RegistrationPhase struct{}

// Name implements Phase.
func (RegistrationPhase) Name() string { return "bot registration" }

// Provision implements Phase.
func (RegistrationPhase) Provision(ctx *Context) error {
	cfg := ctx.Config
	return ctx.Executor.UpdateBotRegistration(ctx, azure.BotRegistrationParams{
		ResourceGroup: cfg.ResourceGroup,
		BotName:       cfg.Bot.Name,
		AppID:         cfg.Bot.AppID,
		Endpoint:      cfg.MessagingEndpoint(),
		DisplayName:   cfg.Bot.DisplayName,
	})
}

// ChannelPhase links the Teams channel to the registration.
type ChannelPhase struct{}

// Name implements Phase.
func (ChannelPhase) Name() string { return "teams channel" }

// Provision implements Phase.
func (ChannelPhase) Provision(ctx *Context) error {
	return ctx.Executor.LinkTeamsChannel(ctx, ctx.Config.ResourceGroup, ctx.Config.Bot.Name)
}

// SitePhase creates or updates the hosting site and records the result in
// the workflow state. Update selects the reconfiguration error semantics.
type SitePhase struct {
	Update bool
}

// Name implements Phase.
func (p SitePhase) Name() string {
	if p.Update {
		return "site update"
	}
	return "site"
}

// Provision implements Phase.
func (p SitePhase) Provision(ctx *Context) error {
	cfg := ctx.Config
	site := &azure.Site{
		Name:         cfg.Site.Name,
		Location:     cfg.Site.Location,
		ServerFarmID: cfg.Site.ServerFarmID,
		AppSettings:  cfg.Site.AppSettings,
	}

	result, err := ctx.Executor.EnsureSite(ctx, cfg.ResourceGroup, site, p.Update)
	if err != nil {
		return err
	}
	ctx.State.Site = result
	return nil
}

// CredentialsPhase fetches the site's publishing credentials and records
// them for the deploy phase.
type CredentialsPhase struct{}

// Name implements Phase.
func (CredentialsPhase) Name() string { return "publishing credentials" }

// Provision implements Phase.
func (CredentialsPhase) Provision(ctx *Context) error {
	creds, err := ctx.Executor.ListPublishingCredentials(ctx, ctx.Config.ResourceGroup, ctx.Config.Site.Name)
	if err != nil {
		return err
	}
	ctx.State.Credentials = creds
	return nil
}

// DeployPhase pushes the deployment package and waits for the deployment to
// finish, polling the pending location the push returned.
type DeployPhase struct {
	Package []byte
}

// Name implements Phase.
func (DeployPhase) Name() string { return "deploy" }

// Provision implements Phase.
func (p DeployPhase) Provision(ctx *Context) error {
	location, err := ctx.Executor.DeployZip(ctx, ctx.Config.ZipDeployEndpoint(), p.Package, ctx.State.Credentials)
	if err != nil {
		return err
	}
	ctx.State.DeployLocation = location

	if err := ctx.Poller.Wait(ctx, location, ctx.State.Credentials); err != nil {
		return err
	}
	ctx.Observer.Event(Event{Type: EventDeploySucceeded, Phase: p.Name(), Message: "deployment finished"})
	return nil
}

// RestartPhase restarts the hosting site so the new package is picked up.
type RestartPhase struct{}

// Name implements Phase.
func (RestartPhase) Name() string { return "restart" }

// Provision implements Phase.
func (RestartPhase) Provision(ctx *Context) error {
	return ctx.Executor.RestartSite(ctx, ctx.Config.ResourceGroup, ctx.Config.Site.Name)
}

// ProvisionPhases are the steps of a first-time provision: registration,
// channel link and site creation.
func ProvisionPhases() []Phase {
	return []Phase{
		RegistrationPhase{},
		ChannelPhase{},
		SitePhase{Update: false},
	}
}

// DeployPhases are the steps of a deployment: credential fetch, package
// push with status poll, and restart.
func DeployPhases(pkg []byte) []Phase {
	return []Phase{
		CredentialsPhase{},
		DeployPhase{Package: pkg},
		RestartPhase{},
	}
}
