package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/mailerctl/pkg/api"
)

type staticTokens string

func (s staticTokens) Token(ctx context.Context) (string, error) {
	return string(s), nil
}

func TestNewClient(t *testing.T) {
	client := NewClient("http://localhost:8080", nil)

	assert.NotNil(t, client)
	assert.Equal(t, "http://localhost:8080", client.baseURL)
	assert.NotNil(t, client.httpClient)
	assert.Equal(t, 30*time.Second, client.httpClient.Timeout)
}

// TestClient_Authenticate verifies the login round trip and that the
// request carries no bearer header before a session exists.
func TestClient_Authenticate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/authenticate", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Empty(t, r.Header.Get("Authorization"))
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))

		var req api.AuthRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "operator", req.Username)
		assert.Equal(t, "secret", req.Password)

		_ = json.NewEncoder(w).Encode(api.AuthResponse{
			Success: true,
			Token:   "tok-123",
			User:    api.User{Username: "operator"},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, staticTokens(""))
	resp, err := client.Authenticate(context.Background(), api.AuthRequest{
		Username: "operator",
		Password: "secret",
	})

	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "tok-123", resp.Token)
	assert.Equal(t, "operator", resp.User.Username)
}

// TestClient_BearerToken verifies that authenticated calls attach the
// token yielded by the TokenSource.
func TestClient_BearerToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-abc", r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode(api.VerifyResponse{Success: true})
	}))
	defer server.Close()

	client := NewClient(server.URL, staticTokens("tok-abc"))
	resp, err := client.VerifySession(context.Background())

	require.NoError(t, err)
	assert.True(t, resp.Success)
}

func TestClient_PinStatus_RefreshFlag(t *testing.T) {
	tests := []struct {
		name    string
		refresh bool
		want    string
	}{
		{name: "cached read", refresh: false, want: "false"},
		{name: "forced refresh", refresh: true, want: "true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/certificate-pin-status", r.URL.Path)
				assert.Equal(t, tt.want, r.URL.Query().Get("refresh"))
				_ = json.NewEncoder(w).Encode(api.PinStatusResponse{Success: true})
			}))
			defer server.Close()

			client := NewClient(server.URL, nil)
			resp, err := client.PinStatus(context.Background(), tt.refresh)
			require.NoError(t, err)
			assert.True(t, resp.Success)
		})
	}
}

// TestClient_StorePins_DualShape verifies that both response shapes of
// the PIN endpoint come back as the same normalized slice.
func TestClient_StorePins_DualShape(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantSuccess bool
		wantText    string
	}{
		{name: "bare object", body: `{"success":true}`, wantSuccess: true},
		{name: "array", body: `[{"success":false,"error":"bad pin"}]`, wantSuccess: false, wantText: "bad pin"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/api/certificate-pin", r.URL.Path)

				var entries []api.PinEntry
				require.NoError(t, json.NewDecoder(r.Body).Decode(&entries))
				require.Len(t, entries, 1)
				assert.Equal(t, "ab12", entries[0].CertificateID)

				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := NewClient(server.URL, nil)
			results, err := client.StorePins(context.Background(), []api.PinEntry{
				{TokenLabel: "hsm", CertificateID: "ab12", SlotID: 1, Pin: "1234"},
			})

			require.NoError(t, err)
			require.Len(t, results, 1)
			assert.Equal(t, tt.wantSuccess, results[0].Success)
			assert.Equal(t, tt.wantText, results[0].Text())
		})
	}
}

// TestClient_ErrorBody verifies that a structured error body is
// preferred over the generic status line.
func TestClient_ErrorBody(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		body       string
		wantErrMsg string
	}{
		{
			name:       "message field",
			statusCode: http.StatusUnauthorized,
			body:       `{"message":"invalid credentials"}`,
			wantErrMsg: "server error (401): invalid credentials",
		},
		{
			name:       "error field",
			statusCode: http.StatusBadGateway,
			body:       `{"error":"upstream down"}`,
			wantErrMsg: "server error (502): upstream down",
		},
		{
			name:       "unstructured body",
			statusCode: http.StatusInternalServerError,
			body:       `boom`,
			wantErrMsg: "request failed with status 500",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := NewClient(server.URL, nil)
			_, err := client.GetDashboard(context.Background())

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErrMsg)
		})
	}
}
