package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/modio-client/internal/http"
	"github.com/fivetwenty-io/modio-client/pkg/modio"
)

// MeClient implements modio.MeClient. Every endpoint here requires
// bearer authentication.
type MeClient struct {
	httpClient *http.Client
}

// NewMeClient creates a new me client.
func NewMeClient(httpClient *http.Client) *MeClient {
	return &MeClient{httpClient: httpClient}
}

// User implements modio.MeClient.User.
func (c *MeClient) User(ctx context.Context) (*modio.User, error) {
	resp, err := c.httpClient.Get(ctx, "/me", nil)
	if err != nil {
		return nil, fmt.Errorf("getting authenticated user: %w", err)
	}

	return decode[modio.User](resp, "user")
}

// Games implements modio.MeClient.Games.
func (c *MeClient) Games(ctx context.Context, filter *modio.Filter) (*modio.GameList, error) {
	resp, err := c.httpClient.Get(ctx, "/me/games", filter.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing my games: %w", err)
	}

	return decode[modio.GameList](resp, "games list")
}

// Mods implements modio.MeClient.Mods.
func (c *MeClient) Mods(ctx context.Context, filter *modio.Filter) (*modio.ModList, error) {
	resp, err := c.httpClient.Get(ctx, "/me/mods", filter.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing my mods: %w", err)
	}

	return decode[modio.ModList](resp, "mods list")
}

// Subscribed implements modio.MeClient.Subscribed.
func (c *MeClient) Subscribed(ctx context.Context, filter *modio.Filter) (*modio.ModList, error) {
	resp, err := c.httpClient.Get(ctx, "/me/subscribed", filter.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing subscriptions: %w", err)
	}

	return decode[modio.ModList](resp, "mods list")
}

// Files implements modio.MeClient.Files. The returned files cannot be
// edited or deleted; see modio.FilesClient.
func (c *MeClient) Files(ctx context.Context, filter *modio.Filter) (*modio.ModFileList, error) {
	resp, err := c.httpClient.Get(ctx, "/me/files", filter.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing my files: %w", err)
	}

	return decode[modio.ModFileList](resp, "files list")
}

// Events implements modio.MeClient.Events.
func (c *MeClient) Events(ctx context.Context, filter *modio.Filter) (*modio.EventList, error) {
	resp, err := c.httpClient.Get(ctx, "/me/events", filter.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing my events: %w", err)
	}

	return decode[modio.EventList](resp, "events list")
}

// Ratings implements modio.MeClient.Ratings.
func (c *MeClient) Ratings(ctx context.Context, filter *modio.Filter) (*modio.RatingList, error) {
	resp, err := c.httpClient.Get(ctx, "/me/ratings", filter.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing my ratings: %w", err)
	}

	return decode[modio.RatingList](resp, "ratings list")
}
