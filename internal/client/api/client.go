// Package api implements the HTTP client adapter for the dispatch
// service REST API: fixed base URL, JSON content negotiation and a
// bearer token attached from persisted storage on every request. There
// is no retry and no caching layer.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/mailerctl/pkg/api"
)

// TokenSource yields the bearer token attached to outgoing requests.
// An empty token means the request goes out unauthenticated (only the
// initial authenticate call legitimately does).
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// APIError describes a non-2xx response. Message carries the backend
// supplied text when the body had one.
type APIError struct {
	Message    string
	StatusCode int
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("server error (%d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("request failed with status %d", e.StatusCode)
}

// Client is the HTTP client for the dispatch service API.
type Client struct {
	httpClient *http.Client
	tokens     TokenSource
	baseURL    string
}

// NewClient creates an API client. tokens may be nil, in which case no
// Authorization header is ever attached.
func NewClient(baseURL string, tokens TokenSource) *Client {
	return &Client{
		baseURL: baseURL,
		tokens:  tokens,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Keep the Authorization header across redirects.
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
}

// Authenticate exchanges operator credentials for a bearer token.
func (c *Client) Authenticate(ctx context.Context, req api.AuthRequest) (*api.AuthResponse, error) {
	var resp api.AuthResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/authenticate", req, &resp); err != nil {
		return nil, fmt.Errorf("authenticate request failed: %w", err)
	}
	return &resp, nil
}

// VerifySession validates the currently persisted token.
func (c *Client) VerifySession(ctx context.Context) (*api.VerifyResponse, error) {
	var resp api.VerifyResponse
	if err := c.doRequest(ctx, http.MethodGet, "/api/authenticate", nil, &resp); err != nil {
		return nil, fmt.Errorf("verify request failed: %w", err)
	}
	return &resp, nil
}

// CheckEmailConfig reports whether a saved configuration already exists.
func (c *Client) CheckEmailConfig(ctx context.Context) (*api.CheckConfigResponse, error) {
	var resp api.CheckConfigResponse
	if err := c.doRequest(ctx, http.MethodGet, "/api/check-email-config", nil, &resp); err != nil {
		return nil, fmt.Errorf("check config request failed: %w", err)
	}
	return &resp, nil
}

// TestConnection asks the backend to probe the given database parameters.
func (c *Client) TestConnection(ctx context.Context, cfg api.DBConfig) (*api.StatusResponse, error) {
	var resp api.StatusResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/test-connection", cfg, &resp); err != nil {
		return nil, fmt.Errorf("test connection request failed: %w", err)
	}
	return &resp, nil
}

// SaveDBConfig persists the database configuration.
func (c *Client) SaveDBConfig(ctx context.Context, cfg api.DBConfig) (*api.SaveResponse, error) {
	var resp api.SaveResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/save-config", cfg, &resp); err != nil {
		return nil, fmt.Errorf("save config request failed: %w", err)
	}
	return &resp, nil
}

// SaveEmailConfig persists the send-schedule configuration.
func (c *Client) SaveEmailConfig(ctx context.Context, cfg api.ScheduleConfig) (*api.SaveResponse, error) {
	var resp api.SaveResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/save-email-config", cfg, &resp); err != nil {
		return nil, fmt.Errorf("save email config request failed: %w", err)
	}
	return &resp, nil
}

// GetCurrentConfig fetches the persisted configuration for display.
func (c *Client) GetCurrentConfig(ctx context.Context) (*api.CurrentConfigResponse, error) {
	var resp api.CurrentConfigResponse
	if err := c.doRequest(ctx, http.MethodGet, "/api/get-current-config", nil, &resp); err != nil {
		return nil, fmt.Errorf("get current config request failed: %w", err)
	}
	return &resp, nil
}

// GetDashboard fetches the service/schedule/database snapshot.
func (c *Client) GetDashboard(ctx context.Context) (*api.DashboardResponse, error) {
	var resp api.DashboardResponse
	if err := c.doRequest(ctx, http.MethodGet, "/api/dashboard", nil, &resp); err != nil {
		return nil, fmt.Errorf("dashboard request failed: %w", err)
	}
	return &resp, nil
}

// ServiceControl starts or stops the dispatch service.
func (c *Client) ServiceControl(ctx context.Context, req api.ServiceControlRequest) (*api.StatusResponse, error) {
	var resp api.StatusResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/service-control", req, &resp); err != nil {
		return nil, fmt.Errorf("service control request failed: %w", err)
	}
	return &resp, nil
}

// CertificateStatus fetches the hardware token state.
func (c *Client) CertificateStatus(ctx context.Context) (*api.CertificateStatusResponse, error) {
	var resp api.CertificateStatusResponse
	if err := c.doRequest(ctx, http.MethodGet, "/api/certificate-status", nil, &resp); err != nil {
		return nil, fmt.Errorf("certificate status request failed: %w", err)
	}
	return &resp, nil
}

// Certificates fetches the certificate inventory.
func (c *Client) Certificates(ctx context.Context) (*api.CertificatesResponse, error) {
	var resp api.CertificatesResponse
	if err := c.doRequest(ctx, http.MethodGet, "/api/certificates", nil, &resp); err != nil {
		return nil, fmt.Errorf("certificates request failed: %w", err)
	}
	return &resp, nil
}

// PinStatus fetches per-certificate PIN status. refresh=true forces the
// backend to re-probe the hardware token instead of answering from its
// cache.
func (c *Client) PinStatus(ctx context.Context, refresh bool) (*api.PinStatusResponse, error) {
	var resp api.PinStatusResponse
	path := "/api/certificate-pin-status?refresh=" + strconv.FormatBool(refresh)
	if err := c.doRequest(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("pin status request failed: %w", err)
	}
	return &resp, nil
}

// StorePins submits a PIN batch. The backend answers either with a bare
// result object or with an array of per-entry results; both shapes are
// normalized here, at the boundary.
func (c *Client) StorePins(ctx context.Context, entries []api.PinEntry) ([]api.PinResult, error) {
	var raw json.RawMessage
	if err := c.doRequest(ctx, http.MethodPost, "/api/certificate-pin", entries, &raw); err != nil {
		return nil, fmt.Errorf("store pin request failed: %w", err)
	}
	results, err := api.NormalizePinResults(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to decode pin results: %w", err)
	}
	return results, nil
}

// doRequest performs one HTTP round trip: JSON in, JSON out. Non-2xx
// responses become *APIError carrying the backend message when the body
// had a structured one.
func (c *Client) doRequest(ctx context.Context, method, path string, body, result interface{}) error {
	reqURL := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil {
		token, err := c.tokens.Token(ctx)
		if err != nil {
			return fmt.Errorf("failed to read bearer token: %w", err)
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil {
			apiErr.Message = errResp.Text()
		}
		return apiErr
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
