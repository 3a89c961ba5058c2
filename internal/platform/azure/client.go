// Package azure provides a thin wrapper around the Azure management REST API
// for the resources a hosted bot needs: the bot registration, its Teams
// channel, and the App Service site the bot code runs on.
package azure

import (
	"context"
	"net/http"
)

// Response carries the inspectable outcome of one remote call. Callers
// validate StatusCode themselves; a non-2xx code is not surfaced as an error
// by the client.
type Response struct {
	StatusCode int
	Header     http.Header
}

// Location returns the Location header of the response, or "" if absent.
func (r *Response) Location() string {
	if r == nil || r.Header == nil {
		return ""
	}
	return r.Header.Get("Location")
}

// BotRegistrationParams holds the parameters for updating a bot channel
// registration's messaging endpoint.
type BotRegistrationParams struct {
	ResourceGroup string
	BotName       string
	AppID         string
	Endpoint      string
	// DisplayName is optional; empty leaves the current display name as-is.
	DisplayName string
}

// Site describes an App Service site to create or update.
type Site struct {
	Name         string            `json:"name,omitempty"`
	Location     string            `json:"location,omitempty"`
	ServerFarmID string            `json:"serverFarmId,omitempty"`
	AppSettings  map[string]string `json:"appSettings,omitempty"`
}

// PublishingCredentials are the site-level deployment credentials used to
// authenticate against the site's SCM endpoint.
type PublishingCredentials struct {
	Username string
	Password string
	SCMURL   string
}

// ResourceClient defines the resource-management operations the provisioning
// workflow calls. Every method returns the raw Response for status
// inspection; an error is returned only when the call itself failed.
type ResourceClient interface {
	// UpdateBotRegistration points the bot registration at a new messaging
	// endpoint.
	UpdateBotRegistration(ctx context.Context, params BotRegistrationParams) (*Response, error)

	// CreateChannel links the named channel (e.g. MsTeamsChannel) to the bot
	// registration.
	CreateChannel(ctx context.Context, resourceGroup, botName, channelName string) (*Response, error)

	// CreateOrUpdateSite creates the App Service site, or updates it when it
	// already exists. The returned Site reflects the provider's view of the
	// resource after the call.
	CreateOrUpdateSite(ctx context.Context, resourceGroup string, site *Site) (*Site, *Response, error)

	// ListPublishingCredentials fetches the site's deployment credentials.
	ListPublishingCredentials(ctx context.Context, resourceGroup, siteName string) (*PublishingCredentials, *Response, error)

	// RestartSite restarts the site.
	RestartSite(ctx context.Context, resourceGroup, siteName string) (*Response, error)
}

// DeploymentTransport defines the raw HTTP operations used to push a
// deployment package and poll its status. Implemented by RealClient over the
// same shared http.Client used for management calls.
type DeploymentTransport interface {
	// PushZip uploads the packaged bot to the site's zip-deploy endpoint and
	// returns the raw response. A successful push answers 202 with a Location
	// header identifying where to poll for completion.
	PushZip(ctx context.Context, endpoint string, pkg []byte, creds *PublishingCredentials) (*Response, error)

	// DeploymentStatus polls the pending-deployment location returned by
	// PushZip.
	DeploymentStatus(ctx context.Context, location string, creds *PublishingCredentials) (*Response, error)
}

// Client combines the management and deployment capabilities of one provider
// connection.
type Client interface {
	ResourceClient
	DeploymentTransport
}
