// Package modioclient provides the main entry point for creating mod.io API clients
package modioclient

import (
	"strings"

	"github.com/fivetwenty-io/modio-client/internal/client"
	"github.com/fivetwenty-io/modio-client/pkg/modio"
)

// New creates a new mod.io API client from config.
func New(config *modio.Config) (modio.Client, error) {
	if config == nil {
		return nil, modio.ErrConfigRequired
	}

	// Normalize an explicit endpoint override
	if config.APIEndpoint != "" {
		endpoint := strings.TrimSuffix(config.APIEndpoint, "/")
		if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
			endpoint = "https://" + endpoint
		}

		config.APIEndpoint = endpoint
	}

	return client.New(config)
}

// NewWithAPIKey creates a client authenticating with an API key.
func NewWithAPIKey(apiKey string) (modio.Client, error) {
	return New(&modio.Config{APIKey: apiKey})
}

// NewWithToken creates a client authenticating with an OAuth2 access
// token.
func NewWithToken(accessToken string) (modio.Client, error) {
	return New(&modio.Config{AccessToken: accessToken})
}

// NewTestEnvironment creates a client against the test environment.
func NewTestEnvironment(apiKey string) (modio.Client, error) {
	return New(&modio.Config{APIKey: apiKey, TestEnvironment: true})
}
