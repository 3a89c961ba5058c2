package provisioning

import (
	"context"

	"github.com/go-logr/logr"

	"github.com/jayzhang/TeamsFx/internal/platform/azure"
)

// Executor wraps the individual remote calls of the workflow with a uniform
// call-then-validate contract. Every failure surfaces as a typed *Error: a
// transport failure carries the original error as cause, a wrong-shaped
// response carries no cause.
type Executor struct {
	client azure.Client
	log    logr.Logger
}

// ExecutorOption configures an Executor.
type ExecutorOption func(*Executor)

// WithLogger sets the logger used for per-operation debug output.
func WithLogger(log logr.Logger) ExecutorOption {
	return func(e *Executor) {
		e.log = log
	}
}

// NewExecutor creates an Executor over the given provider client.
func NewExecutor(client azure.Client, opts ...ExecutorOption) *Executor {
	e := &Executor{
		client: client,
		log:    logr.Discard(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// execute invokes call and reduces its outcome: a returned error becomes the
// given kind with the cause attached, a response outside the success class
// becomes the same kind without a cause.
//
// Usage example:
//
//	return execute(KindRestartWebApp, siteName, func() (*azure.Response, error) {
//	    return e.client.RestartSite(ctx, resourceGroup, siteName)
//	})
func execute(kind ErrorKind, resource string, call func() (*azure.Response, error)) error {
	resp, err := call()
	if err != nil {
		return newError(kind, resource, err)
	}
	if classifyResponse(resp) != StatusOKOrCreated {
		return newError(kind, resource, nil)
	}
	return nil
}

// executeResult is execute for calls that return a payload alongside the
// response. The payload is discarded unless the call validated.
func executeResult[T any](kind ErrorKind, resource string, call func() (T, *azure.Response, error)) (T, error) {
	var zero T
	payload, resp, err := call()
	if err != nil {
		return zero, newError(kind, resource, err)
	}
	if classifyResponse(resp) != StatusOKOrCreated {
		return zero, newError(kind, resource, nil)
	}
	return payload, nil
}

// teamsChannelName is the channel the workflow links to the registration.
const teamsChannelName = "MsTeamsChannel"

// UpdateBotRegistration points the bot registration at the given messaging
// endpoint.
func (e *Executor) UpdateBotRegistration(ctx context.Context, params azure.BotRegistrationParams) error {
	e.log.V(1).Info("updating bot registration", "bot", params.BotName)
	return execute(KindMessageEndpointUpdating, params.BotName, func() (*azure.Response, error) {
		return e.client.UpdateBotRegistration(ctx, params)
	})
}

// LinkTeamsChannel links the Teams channel to the bot registration.
func (e *Executor) LinkTeamsChannel(ctx context.Context, resourceGroup, botName string) error {
	e.log.V(1).Info("linking teams channel", "bot", botName)
	return execute(KindProvisioning, teamsChannelName, func() (*azure.Response, error) {
		return e.client.CreateChannel(ctx, resourceGroup, botName, teamsChannelName)
	})
}

// EnsureSite creates or updates the hosting site. The error kind depends
// only on isUpdate: creating reports Provisioning(site), updating reports
// ConfigUpdating(authConfig). The response content plays no part in that
// choice.
func (e *Executor) EnsureSite(ctx context.Context, resourceGroup string, site *azure.Site, isUpdate bool) (*azure.Site, error) {
	kind, resource := KindProvisioning, site.Name
	if isUpdate {
		kind, resource = KindConfigUpdating, "authConfig"
	}
	e.log.V(1).Info("ensuring site", "site", site.Name, "update", isUpdate)
	return executeResult(kind, resource, func() (*azure.Site, *azure.Response, error) {
		return e.client.CreateOrUpdateSite(ctx, resourceGroup, site)
	})
}

// ListPublishingCredentials fetches the site's deployment credentials.
func (e *Executor) ListPublishingCredentials(ctx context.Context, resourceGroup, siteName string) (*azure.PublishingCredentials, error) {
	e.log.V(1).Info("listing publishing credentials", "site", siteName)
	return executeResult(KindListPublishingCredentials, siteName, func() (*azure.PublishingCredentials, *azure.Response, error) {
		return e.client.ListPublishingCredentials(ctx, resourceGroup, siteName)
	})
}

// DeployZip pushes the deployment package and returns the pending-deployment
// location to poll. Unlike the other operations, a push only succeeds when
// the deployment was accepted for asynchronous processing (202) and a poll
// location was supplied.
func (e *Executor) DeployZip(ctx context.Context, endpoint string, pkg []byte, creds *azure.PublishingCredentials) (string, error) {
	e.log.V(1).Info("pushing deployment package", "endpoint", endpoint)
	resp, err := e.client.PushZip(ctx, endpoint, pkg, creds)
	if err != nil {
		return "", newError(KindZipDeploy, endpoint, err)
	}
	if classifyResponse(resp) != StatusAccepted {
		return "", newError(KindZipDeploy, endpoint, nil)
	}
	location := resp.Location()
	if location == "" {
		return "", newError(KindZipDeploy, endpoint, nil)
	}
	return location, nil
}

// RestartSite restarts the hosting site.
func (e *Executor) RestartSite(ctx context.Context, resourceGroup, siteName string) error {
	e.log.V(1).Info("restarting site", "site", siteName)
	return execute(KindRestartWebApp, siteName, func() (*azure.Response, error) {
		return e.client.RestartSite(ctx, resourceGroup, siteName)
	})
}
