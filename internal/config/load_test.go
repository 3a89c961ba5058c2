package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "teamsfx.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadFile_Valid(t *testing.T) {
	path := writeTestConfig(t, `
subscription: sub-id
resourceGroup: my-rg
bot:
  name: my-bot
  appId: app-id
site:
  name: my-site
  location: northeurope
deploy:
  package: dist/bot.zip
`)

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "sub-id", cfg.Subscription)
	assert.Equal(t, "my-rg", cfg.ResourceGroup)
	assert.Equal(t, "my-bot", cfg.Bot.Name)
	assert.Equal(t, "northeurope", cfg.Site.Location)
	assert.Equal(t, "dist/bot.zip", cfg.Deploy.Package)
}

func TestLoadFile_Defaults(t *testing.T) {
	path := writeTestConfig(t, `
subscription: sub-id
resourceGroup: my-rg
bot:
  name: my-bot
  appId: app-id
site:
  name: my-site
`)

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "westeurope", cfg.Site.Location)
	assert.Equal(t, "bot.zip", cfg.Deploy.Package)
}

func TestLoadFile_SubscriptionFromEnv(t *testing.T) {
	t.Setenv("AZURE_SUBSCRIPTION_ID", "env-sub")

	path := writeTestConfig(t, `
resourceGroup: my-rg
bot:
  name: my-bot
  appId: app-id
site:
  name: my-site
`)

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "env-sub", cfg.Subscription)
}

func TestLoadFile_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadFile_InvalidYAML(t *testing.T) {
	t.Parallel()

	path := writeTestConfig(t, "::: not yaml :::")
	_, err := LoadFile(path)
	require.Error(t, err)
}

func TestLoadFile_ValidationFailure(t *testing.T) {
	path := writeTestConfig(t, `
subscription: sub-id
resourceGroup: my-rg
bot:
  name: my-bot
site:
  name: my-site
`)

	_, err := LoadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bot.appId is required")
}

func TestValidate_CollectsAllProblems(t *testing.T) {
	t.Parallel()

	cfg := &Config{}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "subscription is required")
	assert.Contains(t, err.Error(), "resourceGroup is required")
	assert.Contains(t, err.Error(), "bot.name is required")
	assert.Contains(t, err.Error(), "site.name is required")
}

func TestValidate_RejectsNonHTTPSEndpoint(t *testing.T) {
	t.Parallel()

	cfg := &Config{
		Subscription:  "sub",
		ResourceGroup: "rg",
		Bot:           BotConfig{Name: "b", AppID: "a", Endpoint: "http://insecure.example.com"},
		Site:          SiteConfig{Name: "s"},
	}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bot.endpoint must be a valid https URL")
}

func TestMessagingEndpoint(t *testing.T) {
	t.Parallel()

	cfg := &Config{Site: SiteConfig{Name: "my-site"}}
	assert.Equal(t, "https://my-site.azurewebsites.net/api/messages", cfg.MessagingEndpoint())

	cfg.Bot.Endpoint = "https://custom.example.com/api/messages"
	assert.Equal(t, "https://custom.example.com/api/messages", cfg.MessagingEndpoint())
}

func TestZipDeployEndpoint(t *testing.T) {
	t.Parallel()

	cfg := &Config{Site: SiteConfig{Name: "my-site"}}
	assert.Equal(t, "https://my-site.scm.azurewebsites.net/api/zipdeploy", cfg.ZipDeployEndpoint())

	cfg.Deploy.Endpoint = "https://other.scm/api/zipdeploy"
	assert.Equal(t, "https://other.scm/api/zipdeploy", cfg.ZipDeployEndpoint())
}

func TestWriteFile_RoundTrip(t *testing.T) {
	t.Parallel()

	cfg := &Config{
		Subscription:  "sub",
		ResourceGroup: "rg",
		Bot:           BotConfig{Name: "my-bot", AppID: "app-id"},
		Site:          SiteConfig{Name: "my-site", Location: "westeurope"},
		Deploy:        DeployConfig{Package: "bot.zip"},
	}

	path := filepath.Join(t.TempDir(), "out.yaml")
	require.NoError(t, cfg.WriteFile(path))

	loaded, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg.Bot.Name, loaded.Bot.Name)
	assert.Equal(t, cfg.Site.Location, loaded.Site.Location)
}

func TestWriteFile_RefusesOverwrite(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out.yaml")
	require.NoError(t, os.WriteFile(path, []byte("existing"), 0o600))

	cfg := &Config{}
	require.Error(t, cfg.WriteFile(path))
}
