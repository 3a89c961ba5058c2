package config

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/charmbracelet/huh"
)

// regionOptions are the Azure regions offered by the wizard. A static list
// is enough here; the region only has to exist, and typos are caught at
// provision time by the management API.
func regionOptions() []huh.Option[string] {
	return []huh.Option[string]{
		huh.NewOption("West Europe (westeurope)", "westeurope"),
		huh.NewOption("North Europe (northeurope)", "northeurope"),
		huh.NewOption("East US (eastus)", "eastus"),
		huh.NewOption("West US 2 (westus2)", "westus2"),
		huh.NewOption("Southeast Asia (southeastasia)", "southeastasia"),
	}
}

// RunWizard runs the interactive configuration wizard and returns the
// resulting configuration. The caller is responsible for writing it out.
func RunWizard() (*Config, error) {
	cfg := &Config{}
	cfg.Site.Location = "westeurope"
	cfg.Deploy.Package = "bot.zip"

	form := huh.NewForm(
		// Subscription and resource group
		huh.NewGroup(
			huh.NewInput().
				Title("Subscription ID").
				Description("The Azure subscription holding the bot resources").
				Placeholder("00000000-0000-0000-0000-000000000000").
				Value(&cfg.Subscription).
				Validate(validateRequired("subscription ID")),

			huh.NewInput().
				Title("Resource group").
				Description("An existing resource group for the registration and site").
				Placeholder("my-bot-rg").
				Value(&cfg.ResourceGroup).
				Validate(validateRequired("resource group")),
		),

		// Bot registration
		huh.NewGroup(
			huh.NewInput().
				Title("Bot name").
				Description("Name of the bot channel registration (DNS-safe, lowercase)").
				Placeholder("my-bot").
				Value(&cfg.Bot.Name).
				Validate(validateResourceName),

			huh.NewInput().
				Title("Bot app ID").
				Description("AAD application ID backing the bot").
				Value(&cfg.Bot.AppID).
				Validate(validateRequired("app ID")),

			huh.NewInput().
				Title("Messaging endpoint (optional)").
				Description("Leave empty to use https://<site>.azurewebsites.net/api/messages").
				Value(&cfg.Bot.Endpoint).
				Validate(validateEndpoint),
		),

		// Hosting site
		huh.NewGroup(
			huh.NewInput().
				Title("Site name").
				Description("App Service site name hosting the bot code").
				Placeholder("my-bot-site").
				Value(&cfg.Site.Name).
				Validate(validateResourceName),

			huh.NewSelect[string]().
				Title("Region").
				Description("Azure region for the hosting site").
				Options(regionOptions()...).
				Value(&cfg.Site.Location),

			huh.NewInput().
				Title("App Service plan ID (optional)").
				Description("Resource ID of an existing plan; empty lets Azure pick").
				Value(&cfg.Site.ServerFarmID),
		),

		// Deployment package
		huh.NewGroup(
			huh.NewInput().
				Title("Deployment package").
				Description("Path to the zip package to deploy").
				Value(&cfg.Deploy.Package),
		),
	)

	if err := form.Run(); err != nil {
		return nil, fmt.Errorf("wizard aborted: %w", err)
	}

	return cfg, nil
}

var resourceNamePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]{1,58}[a-z0-9]$`)

func validateResourceName(s string) error {
	if !resourceNamePattern.MatchString(s) {
		return fmt.Errorf("must be lowercase alphanumeric with hyphens, 3-60 characters")
	}
	return nil
}

func validateRequired(what string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", what)
		}
		return nil
	}
}

func validateEndpoint(s string) error {
	if s == "" {
		return nil
	}
	u, err := url.Parse(s)
	if err != nil || u.Scheme != "https" {
		return fmt.Errorf("must be an https URL")
	}
	return nil
}
