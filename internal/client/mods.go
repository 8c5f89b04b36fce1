package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/fivetwenty-io/modio-client/internal/http"
	"github.com/fivetwenty-io/modio-client/pkg/modio"
)

// ModsClient implements modio.ModsClient.
type ModsClient struct {
	httpClient *http.Client
}

// NewModsClient creates a new mods client.
func NewModsClient(httpClient *http.Client) *ModsClient {
	return &ModsClient{httpClient: httpClient}
}

func modPath(gameID, modID int64) string {
	return fmt.Sprintf("/games/%d/mods/%d", gameID, modID)
}

// Get implements modio.ModsClient.Get.
func (c *ModsClient) Get(ctx context.Context, gameID, modID int64) (*modio.Mod, error) {
	resp, err := c.httpClient.Get(ctx, modPath(gameID, modID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting mod: %w", err)
	}

	return decode[modio.Mod](resp, "mod")
}

// List implements modio.ModsClient.List.
func (c *ModsClient) List(ctx context.Context, gameID int64, filter *modio.Filter) (*modio.ModList, error) {
	resp, err := c.httpClient.Get(ctx, fmt.Sprintf("/games/%d/mods", gameID), filter.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing mods: %w", err)
	}

	return decode[modio.ModList](resp, "mods list")
}

// Edit implements modio.ModsClient.Edit.
func (c *ModsClient) Edit(ctx context.Context, gameID, modID int64, request *modio.ModEditRequest) (*modio.Mod, error) {
	resp, err := c.httpClient.Put(ctx, modPath(gameID, modID), request.ToValues())
	if err != nil {
		return nil, fmt.Errorf("editing mod: %w", err)
	}

	return decode[modio.Mod](resp, "mod")
}

// Delete implements modio.ModsClient.Delete.
func (c *ModsClient) Delete(ctx context.Context, gameID, modID int64) error {
	_, err := c.httpClient.Delete(ctx, modPath(gameID, modID), nil)
	if err != nil {
		return fmt.Errorf("deleting mod: %w", err)
	}

	return nil
}

// Subscribe implements modio.ModsClient.Subscribe. An "already
// subscribed" rejection is absorbed and returns (nil, nil).
func (c *ModsClient) Subscribe(ctx context.Context, gameID, modID int64) (*modio.Mod, error) {
	resp, err := c.httpClient.Post(ctx, modPath(gameID, modID)+"/subscribe", nil)
	if err != nil {
		if modio.IsBadRequest(err) {
			return nil, nil
		}

		return nil, fmt.Errorf("subscribing to mod: %w", err)
	}

	return decode[modio.Mod](resp, "mod")
}

// Unsubscribe implements modio.ModsClient.Unsubscribe. A "not
// subscribed" rejection is absorbed.
func (c *ModsClient) Unsubscribe(ctx context.Context, gameID, modID int64) error {
	_, err := c.httpClient.Delete(ctx, modPath(gameID, modID)+"/subscribe", nil)
	if err != nil {
		if modio.IsBadRequest(err) {
			return nil
		}

		return fmt.Errorf("unsubscribing from mod: %w", err)
	}

	return nil
}

// AddMedia implements modio.ModsClient.AddMedia. Gallery images go up
// either as one zip archive or as per-index image files.
func (c *ModsClient) AddMedia(ctx context.Context, gameID, modID int64, request *modio.ModMediaAddRequest) error {
	var files []http.FileField

	if request.Logo != "" {
		files = append(files, http.FileField{Name: "logo", Path: request.Logo})
	}

	if request.ImagesZip != "" {
		files = append(files, http.FileField{Name: "images", Path: request.ImagesZip})
	} else {
		for i, image := range request.Images {
			files = append(files, http.FileField{Name: fmt.Sprintf("images[%d]", i), Path: image})
		}
	}

	_, err := c.httpClient.Upload(ctx, modPath(gameID, modID)+"/media", request.ToValues(), files)
	if err != nil {
		return fmt.Errorf("adding mod media: %w", err)
	}

	return nil
}

// DeleteMedia implements modio.ModsClient.DeleteMedia.
func (c *ModsClient) DeleteMedia(ctx context.Context, gameID, modID int64, request *modio.ModMediaDeleteRequest) error {
	_, err := c.httpClient.Delete(ctx, modPath(gameID, modID)+"/media", request.ToValues())
	if err != nil {
		return fmt.Errorf("deleting mod media: %w", err)
	}

	return nil
}

// GetEvents implements modio.ModsClient.GetEvents.
func (c *ModsClient) GetEvents(ctx context.Context, gameID, modID int64, filter *modio.Filter) (*modio.EventList, error) {
	resp, err := c.httpClient.Get(ctx, modPath(gameID, modID)+"/events", filter.ToValues())
	if err != nil {
		return nil, fmt.Errorf("getting mod events: %w", err)
	}

	return decode[modio.EventList](resp, "mod events")
}

// GetTags implements modio.ModsClient.GetTags.
func (c *ModsClient) GetTags(ctx context.Context, gameID, modID int64, filter *modio.Filter) (*modio.TagList, error) {
	resp, err := c.httpClient.Get(ctx, modPath(gameID, modID)+"/tags", filter.ToValues())
	if err != nil {
		return nil, fmt.Errorf("getting mod tags: %w", err)
	}

	return decode[modio.TagList](resp, "mod tags")
}

// AddTags implements modio.ModsClient.AddTags.
func (c *ModsClient) AddTags(ctx context.Context, gameID, modID int64, tags []string) error {
	_, err := c.httpClient.Post(ctx, modPath(gameID, modID)+"/tags", indexedValues("tags", tags))
	if err != nil {
		return fmt.Errorf("adding mod tags: %w", err)
	}

	return nil
}

// DeleteTags implements modio.ModsClient.DeleteTags.
func (c *ModsClient) DeleteTags(ctx context.Context, gameID, modID int64, tags []string) error {
	_, err := c.httpClient.Delete(ctx, modPath(gameID, modID)+"/tags", indexedValues("tags", tags))
	if err != nil {
		return fmt.Errorf("deleting mod tags: %w", err)
	}

	return nil
}

// GetMetadata implements modio.ModsClient.GetMetadata.
func (c *ModsClient) GetMetadata(ctx context.Context, gameID, modID int64, filter *modio.Filter) (*modio.MetadataList, error) {
	resp, err := c.httpClient.Get(ctx, modPath(gameID, modID)+"/metadatakvp", filter.ToValues())
	if err != nil {
		return nil, fmt.Errorf("getting mod metadata: %w", err)
	}

	return decode[modio.MetadataList](resp, "mod metadata")
}

// AddMetadata implements modio.ModsClient.AddMetadata.
func (c *ModsClient) AddMetadata(ctx context.Context, gameID, modID int64, metadata map[string][]string) error {
	_, err := c.httpClient.Post(ctx, modPath(gameID, modID)+"/metadatakvp", metadataValues(metadata))
	if err != nil {
		return fmt.Errorf("adding mod metadata: %w", err)
	}

	return nil
}

// DeleteMetadata implements modio.ModsClient.DeleteMetadata.
func (c *ModsClient) DeleteMetadata(ctx context.Context, gameID, modID int64, metadata map[string][]string) error {
	_, err := c.httpClient.Delete(ctx, modPath(gameID, modID)+"/metadatakvp", metadataValues(metadata))
	if err != nil {
		return fmt.Errorf("deleting mod metadata: %w", err)
	}

	return nil
}

// GetDependencies implements modio.ModsClient.GetDependencies.
func (c *ModsClient) GetDependencies(ctx context.Context, gameID, modID int64, filter *modio.Filter) (*modio.DependencyList, error) {
	resp, err := c.httpClient.Get(ctx, modPath(gameID, modID)+"/dependencies", filter.ToValues())
	if err != nil {
		return nil, fmt.Errorf("getting mod dependencies: %w", err)
	}

	return decode[modio.DependencyList](resp, "mod dependencies")
}

// AddDependencies implements modio.ModsClient.AddDependencies.
func (c *ModsClient) AddDependencies(ctx context.Context, gameID, modID int64, dependencies []int64) error {
	_, err := c.httpClient.Post(ctx, modPath(gameID, modID)+"/dependencies", dependencyValues(dependencies))
	if err != nil {
		return fmt.Errorf("adding mod dependencies: %w", err)
	}

	return nil
}

// DeleteDependencies implements modio.ModsClient.DeleteDependencies.
func (c *ModsClient) DeleteDependencies(ctx context.Context, gameID, modID int64, dependencies []int64) error {
	_, err := c.httpClient.Delete(ctx, modPath(gameID, modID)+"/dependencies", dependencyValues(dependencies))
	if err != nil {
		return fmt.Errorf("deleting mod dependencies: %w", err)
	}

	return nil
}

// GetTeam implements modio.ModsClient.GetTeam.
func (c *ModsClient) GetTeam(ctx context.Context, gameID, modID int64, filter *modio.Filter) (*modio.TeamMemberList, error) {
	resp, err := c.httpClient.Get(ctx, modPath(gameID, modID)+"/team", filter.ToValues())
	if err != nil {
		return nil, fmt.Errorf("getting mod team: %w", err)
	}

	return decode[modio.TeamMemberList](resp, "mod team")
}

// AddTeamMember implements modio.ModsClient.AddTeamMember.
func (c *ModsClient) AddTeamMember(ctx context.Context, gameID, modID int64, request *modio.TeamMemberAddRequest) error {
	_, err := c.httpClient.Post(ctx, modPath(gameID, modID)+"/team", request.ToValues())
	if err != nil {
		return fmt.Errorf("adding team member: %w", err)
	}

	return nil
}

// GetComments implements modio.ModsClient.GetComments.
func (c *ModsClient) GetComments(ctx context.Context, gameID, modID int64, filter *modio.Filter) (*modio.CommentList, error) {
	resp, err := c.httpClient.Get(ctx, modPath(gameID, modID)+"/comments", filter.ToValues())
	if err != nil {
		return nil, fmt.Errorf("getting mod comments: %w", err)
	}

	return decode[modio.CommentList](resp, "mod comments")
}

// AddRating implements modio.ModsClient.AddRating.
func (c *ModsClient) AddRating(ctx context.Context, gameID, modID int64, rating modio.RatingValue) error {
	form := url.Values{}
	form.Set("rating", strconv.Itoa(int(rating)))

	_, err := c.httpClient.Post(ctx, modPath(gameID, modID)+"/ratings", form)
	if err != nil {
		return fmt.Errorf("adding mod rating: %w", err)
	}

	return nil
}

// GetStats implements modio.ModsClient.GetStats.
func (c *ModsClient) GetStats(ctx context.Context, gameID, modID int64) (*modio.ModStats, error) {
	resp, err := c.httpClient.Get(ctx, modPath(gameID, modID)+"/stats", nil)
	if err != nil {
		return nil, fmt.Errorf("getting mod stats: %w", err)
	}

	return decode[modio.ModStats](resp, "mod stats")
}

// GetOwner implements modio.ModsClient.GetOwner.
func (c *ModsClient) GetOwner(ctx context.Context, gameID, modID int64) (*modio.User, error) {
	return getOwner(ctx, c.httpClient, modio.ReportResourceMod, modID)
}

// Report implements modio.ModsClient.Report.
func (c *ModsClient) Report(ctx context.Context, modID int64, dmca bool, name, summary string) error {
	return submitReport(ctx, c.httpClient, &modio.ReportRequest{
		Resource: modio.ReportResourceMod,
		ID:       modID,
		DMCA:     dmca,
		Name:     name,
		Summary:  summary,
	})
}
