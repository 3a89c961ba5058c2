package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompletion(t *testing.T) {
	cmd := Completion()

	require.NotNil(t, cmd)
	assert.Equal(t, "completion [bash|zsh|fish|powershell]", cmd.Use)
	assert.Equal(t, "Generate shell completion scripts", cmd.Short)
}

func TestCompletion_ValidArgs(t *testing.T) {
	cmd := Completion()

	expectedArgs := []string{"bash", "zsh", "fish", "powershell"}
	assert.Equal(t, expectedArgs, cmd.ValidArgs)
}

func TestCompletion_BashOutput(t *testing.T) {
	root := Root()
	root.SetArgs([]string{"completion", "bash"})

	err := root.Execute()
	require.NoError(t, err)
}

func TestCompletion_InvalidShell(t *testing.T) {
	root := Root()
	root.SetArgs([]string{"completion", "invalid"})

	err := root.Execute()
	assert.Error(t, err)
}

func TestCompletion_NoArgs(t *testing.T) {
	root := Root()
	root.SetArgs([]string{"completion"})

	err := root.Execute()
	assert.Error(t, err)
}
