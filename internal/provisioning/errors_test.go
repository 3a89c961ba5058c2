package provisioning

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_WithCause(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection refused")
	err := newError(KindZipDeploy, "https://site.scm.azurewebsites.net/api/zipdeploy", cause)

	assert.Contains(t, err.Error(), "failed to deploy the package")
	assert.Contains(t, err.Error(), "connection refused")
	assert.ErrorIs(t, err, cause)
}

func TestError_WithoutCause(t *testing.T) {
	t.Parallel()

	err := newError(KindDeployTimeout, "loc", nil)

	assert.Equal(t, "deployment did not finish within the retry budget", err.Error())
	assert.NoError(t, err.Unwrap())
}

func TestIsKind(t *testing.T) {
	t.Parallel()

	err := newError(KindProvisioning, "MsTeamsChannel", nil)

	assert.True(t, IsKind(err, KindProvisioning))
	assert.False(t, IsKind(err, KindConfigUpdating))
	assert.False(t, IsKind(errors.New("plain"), KindProvisioning))
	assert.False(t, IsKind(nil, KindProvisioning))
}

func TestIsKind_Wrapped(t *testing.T) {
	t.Parallel()

	inner := newError(KindDeployStatus, "loc", errors.New("boom"))
	wrapped := fmt.Errorf("deploy phase failed: %w", inner)

	assert.True(t, IsKind(wrapped, KindDeployStatus))

	var pe *Error
	require.ErrorAs(t, wrapped, &pe)
	assert.Equal(t, KindDeployStatus, pe.Kind)
	assert.Equal(t, "loc", pe.Resource)
}

func TestMessageFor_ResourceTemplates(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "failed to provision my-site", messageFor(KindProvisioning, "my-site"))
	assert.Equal(t, "failed to update authConfig", messageFor(KindConfigUpdating, "authConfig"))
	assert.Equal(t, "failed to restart my-site", messageFor(KindRestartWebApp, "my-site"))
	assert.Equal(t, "failed to provision resource", messageFor(KindProvisioning, ""))
	assert.Equal(t, "provisioning failed", messageFor(ErrorKind("unknown"), ""))
}
