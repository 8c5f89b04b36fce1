package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/modio-client/internal/http"
	"github.com/fivetwenty-io/modio-client/pkg/modio"
)

// GamesClient implements modio.GamesClient.
type GamesClient struct {
	httpClient *http.Client
}

// NewGamesClient creates a new games client.
func NewGamesClient(httpClient *http.Client) *GamesClient {
	return &GamesClient{httpClient: httpClient}
}

// Get implements modio.GamesClient.Get.
func (c *GamesClient) Get(ctx context.Context, gameID int64) (*modio.Game, error) {
	resp, err := c.httpClient.Get(ctx, fmt.Sprintf("/games/%d", gameID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting game: %w", err)
	}

	return decode[modio.Game](resp, "game")
}

// List implements modio.GamesClient.List.
func (c *GamesClient) List(ctx context.Context, filter *modio.Filter) (*modio.GameList, error) {
	resp, err := c.httpClient.Get(ctx, "/games", filter.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing games: %w", err)
	}

	return decode[modio.GameList](resp, "games list")
}

// GetStats implements modio.GamesClient.GetStats.
func (c *GamesClient) GetStats(ctx context.Context, gameID int64) (*modio.GameStats, error) {
	resp, err := c.httpClient.Get(ctx, fmt.Sprintf("/games/%d/stats", gameID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting game stats: %w", err)
	}

	return decode[modio.GameStats](resp, "game stats")
}

// Edit implements modio.GamesClient.Edit.
func (c *GamesClient) Edit(ctx context.Context, gameID int64, request *modio.GameEditRequest) (*modio.Game, error) {
	resp, err := c.httpClient.Put(ctx, fmt.Sprintf("/games/%d", gameID), request.ToValues())
	if err != nil {
		return nil, fmt.Errorf("editing game: %w", err)
	}

	return decode[modio.Game](resp, "game")
}

// AddMod implements modio.GamesClient.AddMod.
func (c *GamesClient) AddMod(ctx context.Context, gameID int64, request *modio.ModCreateRequest) (*modio.Mod, error) {
	var files []http.FileField
	if request.Logo != "" {
		files = append(files, http.FileField{Name: "logo", Path: request.Logo})
	}

	resp, err := c.httpClient.Upload(ctx, fmt.Sprintf("/games/%d/mods", gameID), request.ToValues(), files)
	if err != nil {
		return nil, fmt.Errorf("adding mod: %w", err)
	}

	return decode[modio.Mod](resp, "mod")
}

// AddMedia implements modio.GamesClient.AddMedia.
func (c *GamesClient) AddMedia(ctx context.Context, gameID int64, request *modio.GameMediaRequest) error {
	var files []http.FileField

	if request.Logo != "" {
		files = append(files, http.FileField{Name: "logo", Path: request.Logo})
	}

	if request.Icon != "" {
		files = append(files, http.FileField{Name: "icon", Path: request.Icon})
	}

	if request.Header != "" {
		files = append(files, http.FileField{Name: "header", Path: request.Header})
	}

	_, err := c.httpClient.Upload(ctx, fmt.Sprintf("/games/%d/media", gameID), nil, files)
	if err != nil {
		return fmt.Errorf("adding game media: %w", err)
	}

	return nil
}

// GetTagOptions implements modio.GamesClient.GetTagOptions.
func (c *GamesClient) GetTagOptions(ctx context.Context, gameID int64, filter *modio.Filter) (*modio.TagOptionList, error) {
	resp, err := c.httpClient.Get(ctx, fmt.Sprintf("/games/%d/tags", gameID), filter.ToValues())
	if err != nil {
		return nil, fmt.Errorf("getting tag options: %w", err)
	}

	return decode[modio.TagOptionList](resp, "tag options")
}

// AddTagOption implements modio.GamesClient.AddTagOption.
func (c *GamesClient) AddTagOption(ctx context.Context, gameID int64, request *modio.TagOptionAddRequest) error {
	_, err := c.httpClient.Post(ctx, fmt.Sprintf("/games/%d/tags", gameID), request.ToValues())
	if err != nil {
		return fmt.Errorf("adding tag option: %w", err)
	}

	return nil
}

// DeleteTagOption implements modio.GamesClient.DeleteTagOption. Passing
// no tags removes the whole category.
func (c *GamesClient) DeleteTagOption(ctx context.Context, gameID int64, name string, tags []string) error {
	form := indexedValues("tags", tags)
	form.Set("name", name)

	_, err := c.httpClient.Delete(ctx, fmt.Sprintf("/games/%d/tags", gameID), form)
	if err != nil {
		return fmt.Errorf("deleting tag option: %w", err)
	}

	return nil
}

// GetModEvents implements modio.GamesClient.GetModEvents.
func (c *GamesClient) GetModEvents(ctx context.Context, gameID int64, filter *modio.Filter) (*modio.EventList, error) {
	resp, err := c.httpClient.Get(ctx, fmt.Sprintf("/games/%d/mods/events", gameID), filter.ToValues())
	if err != nil {
		return nil, fmt.Errorf("getting mod events: %w", err)
	}

	return decode[modio.EventList](resp, "mod events")
}

// GetOwner implements modio.GamesClient.GetOwner.
func (c *GamesClient) GetOwner(ctx context.Context, gameID int64) (*modio.User, error) {
	return getOwner(ctx, c.httpClient, modio.ReportResourceGame, gameID)
}
