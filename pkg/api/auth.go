// Package api defines the request and response types of the dispatch
// service REST API (base path /api). Every struct mirrors the JSON the
// backend actually speaks; the console never depends on fields that are
// not listed here.
package api

// AuthRequest represents the credentials sent to POST /authenticate.
type AuthRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// User identifies the authenticated operator.
type User struct {
	Username string `json:"username"`
}

// AuthResponse is the answer to POST /authenticate.
type AuthResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
	User    User   `json:"user"`
	Message string `json:"message,omitempty"`
}

// VerifyResponse is the answer to GET /authenticate (session verification).
type VerifyResponse struct {
	Success bool `json:"success"`
}

// CheckConfigResponse is the answer to GET /check-email-config.
type CheckConfigResponse struct {
	Exists bool `json:"exists"`
}

// ErrorResponse is the structured error body some endpoints return on
// failure. Message is preferred over Error when both are present.
type ErrorResponse struct {
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Text returns the best human-readable message out of the body, or ""
// when the body carried neither field.
func (e ErrorResponse) Text() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Error
}
