package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenExpiry extracts the expiry claim from a bearer token when the
// token happens to be a JWT. The token is treated as opaque everywhere
// else; this is display-only sugar for the status command, so the
// signature is deliberately not verified. ok is false for non-JWT
// tokens and for JWTs without an exp claim.
func TokenExpiry(token string) (expiry time.Time, ok bool) {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, false
	}

	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}

	return exp.Time, true
}
