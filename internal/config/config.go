// Package config defines the provisioning configuration and its loading,
// defaulting and validation rules.
package config

import (
	"fmt"
	"net/url"
	"strings"
)

// DefaultConfigFile is the config file looked up when none is given.
const DefaultConfigFile = "teamsfx.yaml"

// Config is the top-level provisioning configuration.
type Config struct {
	// Subscription is the Azure subscription ID. May also come from the
	// AZURE_SUBSCRIPTION_ID environment variable.
	Subscription string `yaml:"subscription" mapstructure:"subscription"`

	// ResourceGroup is the resource group holding the bot registration and
	// the hosting site.
	ResourceGroup string `yaml:"resourceGroup" mapstructure:"resourceGroup"`

	Bot  BotConfig  `yaml:"bot" mapstructure:"bot"`
	Site SiteConfig `yaml:"site" mapstructure:"site"`

	Deploy DeployConfig `yaml:"deploy" mapstructure:"deploy"`
}

// BotConfig describes the bot channel registration.
type BotConfig struct {
	// Name is the bot registration resource name.
	Name string `yaml:"name" mapstructure:"name"`

	// AppID is the AAD application ID backing the bot.
	AppID string `yaml:"appId" mapstructure:"appId"`

	// Endpoint is the messaging endpoint URL the registration points at.
	// Defaults to https://<site>.azurewebsites.net/api/messages.
	Endpoint string `yaml:"endpoint" mapstructure:"endpoint"`

	// DisplayName is optional; empty keeps the registration's current name.
	DisplayName string `yaml:"displayName" mapstructure:"displayName"`
}

// SiteConfig describes the App Service site hosting the bot.
type SiteConfig struct {
	// Name is the site name. Must be globally unique within azurewebsites.net.
	Name string `yaml:"name" mapstructure:"name"`

	// Location is the Azure region, e.g. "westeurope".
	Location string `yaml:"location" mapstructure:"location"`

	// ServerFarmID is the resource ID of the App Service plan.
	ServerFarmID string `yaml:"serverFarmId" mapstructure:"serverFarmId"`

	// AppSettings are extra application settings applied to the site.
	AppSettings map[string]string `yaml:"appSettings" mapstructure:"appSettings"`
}

// DeployConfig describes the deployment package.
type DeployConfig struct {
	// Package is the path to the zip package to deploy.
	Package string `yaml:"package" mapstructure:"package"`

	// Endpoint overrides the zip-deploy endpoint. Defaults to the site's
	// SCM zipdeploy URL.
	Endpoint string `yaml:"endpoint" mapstructure:"endpoint"`
}

// MessagingEndpoint returns the configured bot endpoint, falling back to the
// conventional endpoint on the hosting site.
func (c *Config) MessagingEndpoint() string {
	if c.Bot.Endpoint != "" {
		return c.Bot.Endpoint
	}
	return fmt.Sprintf("https://%s.azurewebsites.net/api/messages", c.Site.Name)
}

// ZipDeployEndpoint returns the configured push endpoint, falling back to
// the site's SCM zipdeploy URL.
func (c *Config) ZipDeployEndpoint() string {
	if c.Deploy.Endpoint != "" {
		return c.Deploy.Endpoint
	}
	return fmt.Sprintf("https://%s.scm.azurewebsites.net/api/zipdeploy", c.Site.Name)
}

// Validate checks that the configuration is complete enough to run against.
func (c *Config) Validate() error {
	var problems []string

	if c.Subscription == "" {
		problems = append(problems, "subscription is required")
	}
	if c.ResourceGroup == "" {
		problems = append(problems, "resourceGroup is required")
	}
	if c.Bot.Name == "" {
		problems = append(problems, "bot.name is required")
	}
	if c.Bot.AppID == "" {
		problems = append(problems, "bot.appId is required")
	}
	if c.Site.Name == "" {
		problems = append(problems, "site.name is required")
	}
	if c.Bot.Endpoint != "" {
		if u, err := url.Parse(c.Bot.Endpoint); err != nil || u.Scheme != "https" {
			problems = append(problems, "bot.endpoint must be a valid https URL")
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}
