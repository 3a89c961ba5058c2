package azure

import (
	"bytes"
	"context"
	"io"
	"net/http"
)

// PushZip uploads the packaged bot to the site's zip-deploy endpoint. The
// response is returned for any status; a successful push answers 202 with a
// Location header pointing at the pending deployment.
func (c *RealClient) PushZip(ctx context.Context, endpoint string, pkg []byte, creds *PublishingCredentials) (*Response, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeouts.ZipPush)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(pkg))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/zip")
	if creds != nil {
		req.SetBasicAuth(creds.Username, creds.Password)
	}

	c.log.V(1).Info("pushing deployment package", "endpoint", endpoint, "bytes", len(pkg))
	return c.doRaw(req)
}

// DeploymentStatus polls the pending-deployment location returned by PushZip.
func (c *RealClient) DeploymentStatus(ctx context.Context, location string, creds *PublishingCredentials) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, location, nil)
	if err != nil {
		return nil, err
	}
	if creds != nil {
		req.SetBasicAuth(creds.Username, creds.Password)
	}

	return c.doRaw(req)
}

// doRaw executes a request on the shared client, draining the body so the
// connection can be reused across poll attempts.
func (c *RealClient) doRaw(req *http.Request) (*Response, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	_, _ = io.Copy(io.Discard, resp.Body)

	return &Response{StatusCode: resp.StatusCode, Header: resp.Header.Clone()}, nil
}
