package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/fivetwenty-io/modio-client/internal/http"
	"github.com/fivetwenty-io/modio-client/pkg/modio"
)

// CommentsClient implements modio.CommentsClient.
type CommentsClient struct {
	httpClient *http.Client
}

// NewCommentsClient creates a new comments client.
func NewCommentsClient(httpClient *http.Client) *CommentsClient {
	return &CommentsClient{httpClient: httpClient}
}

func commentPath(gameID, modID, commentID int64) string {
	return fmt.Sprintf("/games/%d/mods/%d/comments/%d", gameID, modID, commentID)
}

// Edit implements modio.CommentsClient.Edit.
func (c *CommentsClient) Edit(ctx context.Context, gameID, modID, commentID int64, content string) (*modio.Comment, error) {
	form := url.Values{}
	form.Set("content", content)

	resp, err := c.httpClient.Put(ctx, commentPath(gameID, modID, commentID), form)
	if err != nil {
		return nil, fmt.Errorf("editing comment: %w", err)
	}

	return decode[modio.Comment](resp, "comment")
}

// Delete implements modio.CommentsClient.Delete.
func (c *CommentsClient) Delete(ctx context.Context, gameID, modID, commentID int64) error {
	_, err := c.httpClient.Delete(ctx, commentPath(gameID, modID, commentID), nil)
	if err != nil {
		return fmt.Errorf("deleting comment: %w", err)
	}

	return nil
}

// AddKarma implements modio.CommentsClient.AddKarma.
func (c *CommentsClient) AddKarma(ctx context.Context, gameID, modID, commentID int64, karma modio.RatingValue) (*modio.Comment, error) {
	form := url.Values{}
	form.Set("karma", strconv.Itoa(int(karma)))

	resp, err := c.httpClient.Post(ctx, commentPath(gameID, modID, commentID)+"/karma", form)
	if err != nil {
		return nil, fmt.Errorf("adding comment karma: %w", err)
	}

	return decode[modio.Comment](resp, "comment")
}
