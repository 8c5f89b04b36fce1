// Package client implements the modio.Client interface on top of the
// request pipeline in internal/http.
package client

import (
	"github.com/fivetwenty-io/modio-client/internal/auth"
	"github.com/fivetwenty-io/modio-client/internal/constants"
	"github.com/fivetwenty-io/modio-client/internal/http"
	"github.com/fivetwenty-io/modio-client/pkg/modio"
)

// Client implements the modio.Client interface.
type Client struct {
	httpClient *http.Client
	creds      *auth.Credentials

	games    modio.GamesClient
	mods     modio.ModsClient
	files    modio.FilesClient
	users    modio.UsersClient
	me       modio.MeClient
	comments modio.CommentsClient
	auth     modio.AuthClient
	reports  modio.ReportsClient
}

// New creates an API client from config.
func New(config *modio.Config) (*Client, error) {
	if config == nil {
		return nil, modio.ErrConfigRequired
	}

	if config.APIKey == "" && config.AccessToken == "" {
		return nil, modio.ErrCredentialsRequired
	}

	creds := auth.New(config.APIKey, config.AccessToken)
	httpClient := http.NewClient(baseURL(config), creds, buildOptions(config)...)

	client := &Client{
		httpClient: httpClient,
		creds:      creds,
	}
	client.initializeResourceClients()

	return client, nil
}

// baseURL derives the base URL from the environment flag and version,
// unless an explicit endpoint overrides it.
func baseURL(config *modio.Config) string {
	if config.APIEndpoint != "" {
		return config.APIEndpoint
	}

	host := constants.ProductionHost
	if config.TestEnvironment {
		host = constants.TestHost
	}

	version := config.Version
	if version == "" {
		version = constants.DefaultAPIVersion
	}

	return host + "/" + version
}

// buildOptions builds pipeline options from config.
func buildOptions(config *modio.Config) []http.Option {
	var opts []http.Option

	if config.Language != "" {
		opts = append(opts, http.WithLanguage(config.Language))
	}

	if config.Logger != nil {
		opts = append(opts, http.WithLogger(&loggerAdapter{logger: config.Logger}))
	}

	if config.Debug {
		opts = append(opts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		opts = append(opts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		opts = append(opts, http.WithTimeout(config.HTTPTimeout))
	}

	if config.RetryMax > 0 {
		retryWaitMin := constants.DefaultRetryWaitMin
		retryWaitMax := constants.DefaultRetryWaitMax

		if config.RetryWaitMin > 0 {
			retryWaitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			retryWaitMax = config.RetryWaitMax
		}

		opts = append(opts, http.WithRetryConfig(config.RetryMax, retryWaitMin, retryWaitMax))
	}

	return opts
}

// initializeResourceClients initializes all resource-specific clients.
func (c *Client) initializeResourceClients() {
	c.games = NewGamesClient(c.httpClient)
	c.mods = NewModsClient(c.httpClient)
	c.files = NewFilesClient(c.httpClient)
	c.users = NewUsersClient(c.httpClient)
	c.me = NewMeClient(c.httpClient)
	c.comments = NewCommentsClient(c.httpClient)
	c.auth = NewAuthClient(c.httpClient, c.creds)
	c.reports = NewReportsClient(c.httpClient)
}

// Games implements modio.Client.Games.
func (c *Client) Games() modio.GamesClient {
	return c.games
}

// Mods implements modio.Client.Mods.
func (c *Client) Mods() modio.ModsClient {
	return c.mods
}

// Files implements modio.Client.Files.
func (c *Client) Files() modio.FilesClient {
	return c.files
}

// Users implements modio.Client.Users.
func (c *Client) Users() modio.UsersClient {
	return c.users
}

// Me implements modio.Client.Me.
func (c *Client) Me() modio.MeClient {
	return c.me
}

// Comments implements modio.Client.Comments.
func (c *Client) Comments() modio.CommentsClient {
	return c.comments
}

// Auth implements modio.Client.Auth.
func (c *Client) Auth() modio.AuthClient {
	return c.auth
}

// Reports implements modio.Client.Reports.
func (c *Client) Reports() modio.ReportsClient {
	return c.reports
}

// RateLimit implements modio.Client.RateLimit.
func (c *Client) RateLimit() modio.RateLimit {
	return c.httpClient.RateLimit()
}

// Close implements modio.Client.Close.
func (c *Client) Close() error {
	return c.httpClient.Close()
}

// loggerAdapter adapts modio.Logger to http.Logger.
type loggerAdapter struct {
	logger modio.Logger
}

func (l *loggerAdapter) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug(msg, fields)
}

func (l *loggerAdapter) Info(msg string, fields map[string]interface{}) {
	l.logger.Info(msg, fields)
}

func (l *loggerAdapter) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn(msg, fields)
}

func (l *loggerAdapter) Error(msg string, fields map[string]interface{}) {
	l.logger.Error(msg, fields)
}
