package client

import (
	"os"
	"strings"
)

// TokenSource supplies the bearer token attached to outgoing requests.
// A source reporting false means unauthenticated: the request is sent
// without an Authorization header and the backend is expected to reject it.
type TokenSource interface {
	Token() (string, bool)
}

// StaticTokenSource always yields the same token. An empty token yields none.
type StaticTokenSource string

// Token implements TokenSource
func (s StaticTokenSource) Token() (string, bool) {
	return string(s), s != ""
}

// EnvTokenSource reads the token from an environment variable on every call,
// mirroring a session-scoped credential store
type EnvTokenSource string

// Token implements TokenSource
func (s EnvTokenSource) Token() (string, bool) {
	v := os.Getenv(string(s))
	return v, v != ""
}

// FileTokenSource reads the token from a file on every call, mirroring a
// persistent credential store
type FileTokenSource string

// Token implements TokenSource
func (s FileTokenSource) Token() (string, bool) {
	if s == "" {
		return "", false
	}
	b, err := os.ReadFile(string(s))
	if err != nil {
		return "", false
	}
	v := strings.TrimSpace(string(b))
	return v, v != ""
}

// ChainTokenSource checks each source in order and yields the first token
// found. The session scope is conventionally listed before the persistent one.
type ChainTokenSource []TokenSource

// Token implements TokenSource
func (c ChainTokenSource) Token() (string, bool) {
	for _, s := range c {
		if t, ok := s.Token(); ok {
			return t, true
		}
	}
	return "", false
}
