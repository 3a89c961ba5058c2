package azure

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/go-logr/logr"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/jayzhang/TeamsFx/internal/config"
)

const (
	defaultBaseURL = "https://management.azure.com"

	botServiceAPIVersion = "2022-09-15"
	webAPIVersion        = "2022-03-01"
)

// RealClient implements Client against the Azure management REST API.
// One RealClient owns one http.Client, shared between management calls,
// the zip push and status polling.
type RealClient struct {
	subscription string
	baseURL      string
	httpClient   *http.Client
	tokens       oauth2.TokenSource
	timeouts     *config.Timeouts
	log          logr.Logger
}

// ClientOption configures a RealClient.
type ClientOption func(*RealClient)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *RealClient) {
		c.httpClient = hc
	}
}

// WithBaseURL overrides the management endpoint (useful for testing and
// sovereign clouds).
func WithBaseURL(u string) ClientOption {
	return func(c *RealClient) {
		c.baseURL = u
	}
}

// WithTokenSource sets the token source used to authorize management calls.
func WithTokenSource(ts oauth2.TokenSource) ClientOption {
	return func(c *RealClient) {
		c.tokens = ts
	}
}

// WithTimeouts sets custom timeouts for the client.
func WithTimeouts(t *config.Timeouts) ClientOption {
	return func(c *RealClient) {
		c.timeouts = t
	}
}

// WithLogger sets the logger used for call-level debug output.
func WithLogger(log logr.Logger) ClientOption {
	return func(c *RealClient) {
		c.log = log
	}
}

// NewRealClient creates a client for the given subscription.
func NewRealClient(subscription string, opts ...ClientOption) *RealClient {
	c := &RealClient{
		subscription: subscription,
		baseURL:      defaultBaseURL,
		httpClient:   &http.Client{},
		timeouts:     config.LoadTimeouts(),
		log:          logr.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewTokenSource builds an AAD client-credentials token source scoped to the
// Azure management API.
func NewTokenSource(tenantID, clientID, clientSecret string) oauth2.TokenSource {
	cfg := clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     "https://login.microsoftonline.com/" + tenantID + "/oauth2/v2.0/token",
		Scopes:       []string{"https://management.azure.com/.default"},
	}
	return cfg.TokenSource(context.Background())
}

// UpdateBotRegistration points the bot registration at a new messaging
// endpoint via a PATCH on the botServices resource.
func (c *RealClient) UpdateBotRegistration(ctx context.Context, params BotRegistrationParams) (*Response, error) {
	props := map[string]any{
		"msaAppId": params.AppID,
		"endpoint": params.Endpoint,
	}
	if params.DisplayName != "" {
		props["displayName"] = params.DisplayName
	}
	body := map[string]any{"properties": props}

	path := fmt.Sprintf("/subscriptions/%s/resourceGroups/%s/providers/Microsoft.BotService/botServices/%s",
		c.subscription, params.ResourceGroup, params.BotName)
	c.log.V(1).Info("updating bot registration", "bot", params.BotName, "endpoint", params.Endpoint)
	return c.do(ctx, http.MethodPatch, path, botServiceAPIVersion, body, nil)
}

// CreateChannel links a channel to the bot registration.
func (c *RealClient) CreateChannel(ctx context.Context, resourceGroup, botName, channelName string) (*Response, error) {
	body := map[string]any{
		"location": "global",
		"properties": map[string]any{
			"channelName": channelName,
			"properties": map[string]any{
				"isEnabled": true,
			},
		},
	}

	path := fmt.Sprintf("/subscriptions/%s/resourceGroups/%s/providers/Microsoft.BotService/botServices/%s/channels/%s",
		c.subscription, resourceGroup, botName, channelName)
	c.log.V(1).Info("creating bot channel", "bot", botName, "channel", channelName)
	return c.do(ctx, http.MethodPut, path, botServiceAPIVersion, body, nil)
}

// siteEnvelope is the wire shape of a Microsoft.Web site resource.
type siteEnvelope struct {
	Name       string `json:"name,omitempty"`
	Location   string `json:"location,omitempty"`
	Properties struct {
		ServerFarmID string `json:"serverFarmId,omitempty"`
		SiteConfig   struct {
			AppSettings []nameValuePair `json:"appSettings,omitempty"`
		} `json:"siteConfig"`
	} `json:"properties"`
}

type nameValuePair struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// CreateOrUpdateSite PUTs the site resource. The same call serves both
// creation and reconfiguration; Azure decides based on existence.
func (c *RealClient) CreateOrUpdateSite(ctx context.Context, resourceGroup string, site *Site) (*Site, *Response, error) {
	var body siteEnvelope
	body.Location = site.Location
	body.Properties.ServerFarmID = site.ServerFarmID
	for name, value := range site.AppSettings {
		body.Properties.SiteConfig.AppSettings = append(body.Properties.SiteConfig.AppSettings,
			nameValuePair{Name: name, Value: value})
	}

	path := fmt.Sprintf("/subscriptions/%s/resourceGroups/%s/providers/Microsoft.Web/sites/%s",
		c.subscription, resourceGroup, site.Name)
	c.log.V(1).Info("creating or updating site", "site", site.Name)

	var out siteEnvelope
	resp, err := c.do(ctx, http.MethodPut, path, webAPIVersion, body, &out)
	if err != nil {
		return nil, resp, err
	}

	result := &Site{
		Name:         out.Name,
		Location:     out.Location,
		ServerFarmID: out.Properties.ServerFarmID,
	}
	if result.Name == "" {
		result.Name = site.Name
	}
	if len(out.Properties.SiteConfig.AppSettings) > 0 {
		result.AppSettings = make(map[string]string, len(out.Properties.SiteConfig.AppSettings))
		for _, kv := range out.Properties.SiteConfig.AppSettings {
			result.AppSettings[kv.Name] = kv.Value
		}
	}
	return result, resp, nil
}

// ListPublishingCredentials fetches the site's deployment credentials via the
// publishingcredentials/list action.
func (c *RealClient) ListPublishingCredentials(ctx context.Context, resourceGroup, siteName string) (*PublishingCredentials, *Response, error) {
	path := fmt.Sprintf("/subscriptions/%s/resourceGroups/%s/providers/Microsoft.Web/sites/%s/config/publishingcredentials/list",
		c.subscription, resourceGroup, siteName)
	c.log.V(1).Info("listing publishing credentials", "site", siteName)

	var out struct {
		Properties struct {
			PublishingUserName string `json:"publishingUserName"`
			PublishingPassword string `json:"publishingPassword"`
			SCMURI             string `json:"scmUri"`
		} `json:"properties"`
	}
	resp, err := c.do(ctx, http.MethodPost, path, webAPIVersion, nil, &out)
	if err != nil {
		return nil, resp, err
	}

	creds := &PublishingCredentials{
		Username: out.Properties.PublishingUserName,
		Password: out.Properties.PublishingPassword,
		SCMURL:   out.Properties.SCMURI,
	}
	return creds, resp, nil
}

// RestartSite restarts the site.
func (c *RealClient) RestartSite(ctx context.Context, resourceGroup, siteName string) (*Response, error) {
	path := fmt.Sprintf("/subscriptions/%s/resourceGroups/%s/providers/Microsoft.Web/sites/%s/restart",
		c.subscription, resourceGroup, siteName)
	c.log.V(1).Info("restarting site", "site", siteName)
	return c.do(ctx, http.MethodPost, path, webAPIVersion, nil, nil)
}

// do performs one management call. The response is returned for any HTTP
// status; err is non-nil only for request construction, transport, or body
// decoding failures. out, when non-nil, is decoded from 2xx responses that
// carry a body.
func (c *RealClient) do(ctx context.Context, method, path, apiVersion string, body, out any) (*Response, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeouts.ARMCall)
	defer cancel()

	u := c.baseURL + path + "?api-version=" + url.QueryEscape(apiVersion)

	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		payload = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, payload)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if err := c.authorize(req); err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	result := &Response{StatusCode: resp.StatusCode, Header: resp.Header.Clone()}

	if out != nil && resp.StatusCode >= 200 && resp.StatusCode < 300 {
		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return result, fmt.Errorf("failed to read response body: %w", err)
		}
		if len(data) > 0 {
			if err := json.Unmarshal(data, out); err != nil {
				return result, fmt.Errorf("failed to decode response body: %w", err)
			}
		}
	}

	return result, nil
}

// authorize attaches a bearer token when a token source is configured.
func (c *RealClient) authorize(req *http.Request) error {
	if c.tokens == nil {
		return nil
	}
	token, err := c.tokens.Token()
	if err != nil {
		return fmt.Errorf("failed to acquire management token: %w", err)
	}
	token.SetAuthHeader(req)
	return nil
}
