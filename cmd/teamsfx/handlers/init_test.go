package handlers

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jayzhang/TeamsFx/internal/config"
)

// stubWizard replaces the interactive wizard with a fixed result.
func stubWizard(t *testing.T, cfg *config.Config, err error) {
	t.Helper()
	origRunWizard := runWizard
	t.Cleanup(func() { runWizard = origRunWizard })
	runWizard = func() (*config.Config, error) {
		return cfg, err
	}
}

func TestInit_WritesConfig(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "teamsfx.yaml")
	stubWizard(t, testConfig(), nil)

	require.NoError(t, Init(outputPath))

	written, err := config.LoadFile(outputPath)
	require.NoError(t, err)
	assert.Equal(t, "my-bot", written.Bot.Name)
	assert.Equal(t, "my-site", written.Site.Name)
}

func TestInit_RefusesExistingFile(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "teamsfx.yaml")
	require.NoError(t, os.WriteFile(outputPath, []byte("subscription: old\n"), 0o644))
	stubWizard(t, testConfig(), nil)

	err := Init(outputPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestInit_WizardCancel(t *testing.T) {
	stubWizard(t, nil, errors.New("user aborted"))

	err := Init(filepath.Join(t.TempDir(), "teamsfx.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "wizard canceled")
}

func TestInit_WriteFailure(t *testing.T) {
	stubWizard(t, testConfig(), nil)

	origWriteConfig := writeConfig
	t.Cleanup(func() { writeConfig = origWriteConfig })
	writeConfig = func(*config.Config, string) error {
		return errors.New("disk full")
	}

	err := Init(filepath.Join(t.TempDir(), "teamsfx.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write config")
}
