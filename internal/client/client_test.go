package client_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fivetwenty-io/modio-client/internal/client"
	"github.com/fivetwenty-io/modio-client/pkg/modio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestClient builds a client pointed at a test server and registers
// cleanup for both.
func newTestClient(t *testing.T, handler http.HandlerFunc, config *modio.Config) modio.Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	if config == nil {
		config = &modio.Config{APIKey: "test-key", AccessToken: "test-token"}
	}

	config.APIEndpoint = server.URL

	apiClient, err := client.New(config)
	require.NoError(t, err)
	t.Cleanup(func() { _ = apiClient.Close() })

	return apiClient
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("requires config", func(t *testing.T) {
		t.Parallel()

		_, err := client.New(nil)
		require.ErrorIs(t, err, modio.ErrConfigRequired)
	})

	t.Run("requires credentials", func(t *testing.T) {
		t.Parallel()

		_, err := client.New(&modio.Config{})
		require.ErrorIs(t, err, modio.ErrCredentialsRequired)
	})

	t.Run("api key alone is enough", func(t *testing.T) {
		t.Parallel()

		apiClient, err := client.New(&modio.Config{APIKey: "test-key"})
		require.NoError(t, err)
		require.NoError(t, apiClient.Close())
	})

	t.Run("exposes every resource client", func(t *testing.T) {
		t.Parallel()

		apiClient, err := client.New(&modio.Config{APIKey: "test-key"})
		require.NoError(t, err)

		defer func() { _ = apiClient.Close() }()

		assert.NotNil(t, apiClient.Games())
		assert.NotNil(t, apiClient.Mods())
		assert.NotNil(t, apiClient.Files())
		assert.NotNil(t, apiClient.Users())
		assert.NotNil(t, apiClient.Me())
		assert.NotNil(t, apiClient.Comments())
		assert.NotNil(t, apiClient.Auth())
		assert.NotNil(t, apiClient.Reports())
	})

	t.Run("rate limit starts unknown", func(t *testing.T) {
		t.Parallel()

		apiClient, err := client.New(&modio.Config{APIKey: "test-key"})
		require.NoError(t, err)

		defer func() { _ = apiClient.Close() }()

		limit := apiClient.RateLimit()
		assert.Equal(t, -1, limit.Limit)
		assert.Equal(t, -1, limit.Remaining)
	})
}
