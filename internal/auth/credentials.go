// Package auth holds the credential state shared by every request.
package auth

import "sync"

// Credentials stores the API key and the OAuth2 access token for a
// client. The token is written once when an email exchange completes,
// so reads vastly outnumber writes.
type Credentials struct {
	mu     sync.RWMutex
	apiKey string
	token  string
}

// New creates a credential store. Either value may be empty; the client
// constructor enforces that at least one is present.
func New(apiKey, token string) *Credentials {
	return &Credentials{apiKey: apiKey, token: token}
}

// APIKey returns the configured API key.
func (c *Credentials) APIKey() string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.apiKey
}

// Token returns the current access token, or "" when none is held.
func (c *Credentials) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.token
}

// HasToken reports whether a bearer token is held.
func (c *Credentials) HasToken() bool {
	return c.Token() != ""
}

// SetToken installs the access token returned by an email exchange.
func (c *Credentials) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.token = token
}
