package azure

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"

	"github.com/jayzhang/TeamsFx/internal/config"
)

// testServer wraps an httptest server mocking the management API.
type testServer struct {
	server *httptest.Server
	mux    *http.ServeMux
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	mux := http.NewServeMux()
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return &testServer{server: server, mux: mux}
}

// realClient returns a RealClient pointed at the test server.
func (ts *testServer) realClient(opts ...ClientOption) *RealClient {
	base := []ClientOption{
		WithBaseURL(ts.server.URL),
		WithTimeouts(config.TestTimeouts()),
	}
	return NewRealClient("sub-id", append(base, opts...)...)
}

func TestUpdateBotRegistration_RequestShape(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)
	ts.mux.HandleFunc("/subscriptions/sub-id/resourceGroups/rg/providers/Microsoft.BotService/botServices/my-bot",
		func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPatch, r.Method)
			assert.Equal(t, botServiceAPIVersion, r.URL.Query().Get("api-version"))
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			props, ok := body["properties"].(map[string]any)
			require.True(t, ok)
			assert.Equal(t, "app-id", props["msaAppId"])
			assert.Equal(t, "https://my-site.azurewebsites.net/api/messages", props["endpoint"])
			_, hasDisplayName := props["displayName"]
			assert.False(t, hasDisplayName, "empty display name must be omitted")

			w.WriteHeader(http.StatusOK)
		})

	resp, err := ts.realClient().UpdateBotRegistration(context.Background(), BotRegistrationParams{
		ResourceGroup: "rg",
		BotName:       "my-bot",
		AppID:         "app-id",
		Endpoint:      "https://my-site.azurewebsites.net/api/messages",
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestUpdateBotRegistration_NonSuccessIsNotAnError(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)
	ts.mux.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})

	resp, err := ts.realClient().UpdateBotRegistration(context.Background(), BotRegistrationParams{
		ResourceGroup: "rg", BotName: "my-bot",
	})
	require.NoError(t, err, "a non-2xx status is for the caller to classify")
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestCreateChannel_RequestShape(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)
	ts.mux.HandleFunc("/subscriptions/sub-id/resourceGroups/rg/providers/Microsoft.BotService/botServices/my-bot/channels/MsTeamsChannel",
		func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPut, r.Method)

			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "global", body["location"])

			w.WriteHeader(http.StatusCreated)
		})

	resp, err := ts.realClient().CreateChannel(context.Background(), "rg", "my-bot", "MsTeamsChannel")
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
}

func TestCreateOrUpdateSite_DecodesResult(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)
	ts.mux.HandleFunc("/subscriptions/sub-id/resourceGroups/rg/providers/Microsoft.Web/sites/my-site",
		func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPut, r.Method)
			assert.Equal(t, webAPIVersion, r.URL.Query().Get("api-version"))

			var body siteEnvelope
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "westeurope", body.Location)
			assert.Equal(t, "plan-id", body.Properties.ServerFarmID)

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{
				"name": "my-site",
				"location": "westeurope",
				"properties": {
					"serverFarmId": "plan-id",
					"siteConfig": {"appSettings": [{"name": "WEBSITE_RUN_FROM_PACKAGE", "value": "1"}]}
				}
			}`))
		})

	site, resp, err := ts.realClient().CreateOrUpdateSite(context.Background(), "rg", &Site{
		Name:         "my-site",
		Location:     "westeurope",
		ServerFarmID: "plan-id",
		AppSettings:  map[string]string{"WEBSITE_RUN_FROM_PACKAGE": "1"},
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "my-site", site.Name)
	assert.Equal(t, "plan-id", site.ServerFarmID)
	assert.Equal(t, "1", site.AppSettings["WEBSITE_RUN_FROM_PACKAGE"])
}

func TestListPublishingCredentials_DecodesCredentials(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)
	ts.mux.HandleFunc("/subscriptions/sub-id/resourceGroups/rg/providers/Microsoft.Web/sites/my-site/config/publishingcredentials/list",
		func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{
				"properties": {
					"publishingUserName": "$my-site",
					"publishingPassword": "secret",
					"scmUri": "https://my-site.scm.azurewebsites.net"
				}
			}`))
		})

	creds, resp, err := ts.realClient().ListPublishingCredentials(context.Background(), "rg", "my-site")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "$my-site", creds.Username)
	assert.Equal(t, "secret", creds.Password)
	assert.Equal(t, "https://my-site.scm.azurewebsites.net", creds.SCMURL)
}

func TestRestartSite(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)
	ts.mux.HandleFunc("/subscriptions/sub-id/resourceGroups/rg/providers/Microsoft.Web/sites/my-site/restart",
		func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			w.WriteHeader(http.StatusOK)
		})

	resp, err := ts.realClient().RestartSite(context.Background(), "rg", "my-site")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestDo_AttachesBearerToken(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)
	ts.mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusOK)
	})

	client := ts.realClient(WithTokenSource(oauth2.StaticTokenSource(&oauth2.Token{AccessToken: "test-token"})))
	_, err := client.RestartSite(context.Background(), "rg", "my-site")
	require.NoError(t, err)
}

func TestDo_TransportErrorSurfaces(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)
	client := ts.realClient()
	ts.server.Close()

	_, err := client.RestartSite(context.Background(), "rg", "my-site")
	require.Error(t, err)
}
