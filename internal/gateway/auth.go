package gateway

import (
	"crypto/subtle"
	"fmt"
	"net/http"
	"strings"
)

// Authenticator guards the operation endpoints. The gateway ships with a
// no-op default: authentication is a documented gap in this system, kept
// pluggable so a deployment can swap in a real check without touching the
// request path.
type Authenticator interface {
	Authenticate(r *http.Request) error
}

// NoopAuthenticator allows every request.
type NoopAuthenticator struct{}

func (NoopAuthenticator) Authenticate(*http.Request) error { return nil }

// BearerAuthenticator requires "Authorization: Bearer <key>" with a fixed
// key. It is the drop-in replacement for NoopAuthenticator when a
// deployment wants the configured API key enforced.
type BearerAuthenticator struct {
	Key string
}

func (a BearerAuthenticator) Authenticate(r *http.Request) error {
	header := r.Header.Get("Authorization")
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok {
		return fmt.Errorf("missing bearer token")
	}
	if subtle.ConstantTimeCompare([]byte(token), []byte(a.Key)) != 1 {
		return fmt.Errorf("invalid bearer token")
	}
	return nil
}
