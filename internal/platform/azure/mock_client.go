package azure

import (
	"context"
	"net/http"
)

// MockClient is a mock implementation of Client. Each method delegates to
// its Func field when set, and returns a plausible success otherwise.
type MockClient struct {
	UpdateBotRegistrationFunc func(ctx context.Context, params BotRegistrationParams) (*Response, error)
	CreateChannelFunc         func(ctx context.Context, resourceGroup, botName, channelName string) (*Response, error)
	CreateOrUpdateSiteFunc    func(ctx context.Context, resourceGroup string, site *Site) (*Site, *Response, error)
	ListPublishingCredsFunc   func(ctx context.Context, resourceGroup, siteName string) (*PublishingCredentials, *Response, error)
	RestartSiteFunc           func(ctx context.Context, resourceGroup, siteName string) (*Response, error)

	PushZipFunc          func(ctx context.Context, endpoint string, pkg []byte, creds *PublishingCredentials) (*Response, error)
	DeploymentStatusFunc func(ctx context.Context, location string, creds *PublishingCredentials) (*Response, error)
}

// Ensure interface compliance
var _ Client = (*MockClient)(nil)

// OKResponse builds a Response with the given status code and no headers.
func OKResponse(status int) *Response {
	return &Response{StatusCode: status, Header: http.Header{}}
}

// AcceptedResponse builds a 202 Response carrying the given poll location.
func AcceptedResponse(location string) *Response {
	h := http.Header{}
	h.Set("Location", location)
	return &Response{StatusCode: http.StatusAccepted, Header: h}
}

// UpdateBotRegistration mocks the registration endpoint update.
func (m *MockClient) UpdateBotRegistration(ctx context.Context, params BotRegistrationParams) (*Response, error) {
	if m.UpdateBotRegistrationFunc != nil {
		return m.UpdateBotRegistrationFunc(ctx, params)
	}
	return OKResponse(http.StatusOK), nil
}

// CreateChannel mocks channel creation.
func (m *MockClient) CreateChannel(ctx context.Context, resourceGroup, botName, channelName string) (*Response, error) {
	if m.CreateChannelFunc != nil {
		return m.CreateChannelFunc(ctx, resourceGroup, botName, channelName)
	}
	return OKResponse(http.StatusCreated), nil
}

// CreateOrUpdateSite mocks site creation and update.
func (m *MockClient) CreateOrUpdateSite(ctx context.Context, resourceGroup string, site *Site) (*Site, *Response, error) {
	if m.CreateOrUpdateSiteFunc != nil {
		return m.CreateOrUpdateSiteFunc(ctx, resourceGroup, site)
	}
	return site, OKResponse(http.StatusOK), nil
}

// ListPublishingCredentials mocks credential retrieval.
func (m *MockClient) ListPublishingCredentials(ctx context.Context, resourceGroup, siteName string) (*PublishingCredentials, *Response, error) {
	if m.ListPublishingCredsFunc != nil {
		return m.ListPublishingCredsFunc(ctx, resourceGroup, siteName)
	}
	creds := &PublishingCredentials{
		Username: "$" + siteName,
		Password: "mock-password",
		SCMURL:   "https://" + siteName + ".scm.azurewebsites.net",
	}
	return creds, OKResponse(http.StatusOK), nil
}

// RestartSite mocks the site restart.
func (m *MockClient) RestartSite(ctx context.Context, resourceGroup, siteName string) (*Response, error) {
	if m.RestartSiteFunc != nil {
		return m.RestartSiteFunc(ctx, resourceGroup, siteName)
	}
	return OKResponse(http.StatusOK), nil
}

// PushZip mocks the package push.
func (m *MockClient) PushZip(ctx context.Context, endpoint string, pkg []byte, creds *PublishingCredentials) (*Response, error) {
	if m.PushZipFunc != nil {
		return m.PushZipFunc(ctx, endpoint, pkg, creds)
	}
	return AcceptedResponse(endpoint + "/latest"), nil
}

// DeploymentStatus mocks the deployment status poll.
func (m *MockClient) DeploymentStatus(ctx context.Context, location string, creds *PublishingCredentials) (*Response, error) {
	if m.DeploymentStatusFunc != nil {
		return m.DeploymentStatusFunc(ctx, location, creds)
	}
	return OKResponse(http.StatusOK), nil
}
