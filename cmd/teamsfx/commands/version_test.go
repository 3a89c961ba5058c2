package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersion(t *testing.T) {
	cmd := Version()

	require.NotNil(t, cmd)
	assert.Equal(t, "version", cmd.Use)
	assert.Equal(t, "Print version information", cmd.Short)
}

func TestVersion_Run(t *testing.T) {
	cmd := Version()
	assert.NotNil(t, cmd.Run, "Version command should have Run function")
}

func TestSetVersionInfo(t *testing.T) {
	origVersion := version
	origCommit := commit
	origDate := date
	defer func() {
		version = origVersion
		commit = origCommit
		date = origDate
	}()

	SetVersionInfo("1.2.3", "abc123", "2024-01-01")

	assert.Equal(t, "1.2.3", version)
	assert.Equal(t, "abc123", commit)
	assert.Equal(t, "2024-01-01", date)
}

func TestVersion_Execute(t *testing.T) {
	cmd := Version()
	err := cmd.Execute()
	require.NoError(t, err)
}
