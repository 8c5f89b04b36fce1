package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/modio-client/internal/http"
	"github.com/fivetwenty-io/modio-client/pkg/modio"
)

// UsersClient implements modio.UsersClient.
type UsersClient struct {
	httpClient *http.Client
}

// NewUsersClient creates a new users client.
func NewUsersClient(httpClient *http.Client) *UsersClient {
	return &UsersClient{httpClient: httpClient}
}

// Get implements modio.UsersClient.Get.
func (c *UsersClient) Get(ctx context.Context, userID int64) (*modio.User, error) {
	resp, err := c.httpClient.Get(ctx, fmt.Sprintf("/users/%d", userID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting user: %w", err)
	}

	return decode[modio.User](resp, "user")
}

// List implements modio.UsersClient.List.
func (c *UsersClient) List(ctx context.Context, filter *modio.Filter) (*modio.UserList, error) {
	resp, err := c.httpClient.Get(ctx, "/users", filter.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}

	return decode[modio.UserList](resp, "users list")
}

// Mute implements modio.UsersClient.Mute.
func (c *UsersClient) Mute(ctx context.Context, userID int64) error {
	_, err := c.httpClient.Post(ctx, fmt.Sprintf("/users/%d/mute", userID), nil)
	if err != nil {
		return fmt.Errorf("muting user: %w", err)
	}

	return nil
}

// Unmute implements modio.UsersClient.Unmute.
func (c *UsersClient) Unmute(ctx context.Context, userID int64) error {
	_, err := c.httpClient.Delete(ctx, fmt.Sprintf("/users/%d/mute", userID), nil)
	if err != nil {
		return fmt.Errorf("unmuting user: %w", err)
	}

	return nil
}

// Report implements modio.UsersClient.Report.
func (c *UsersClient) Report(ctx context.Context, userID int64, dmca bool, name, summary string) error {
	return submitReport(ctx, c.httpClient, &modio.ReportRequest{
		Resource: modio.ReportResourceUser,
		ID:       userID,
		DMCA:     dmca,
		Name:     name,
		Summary:  summary,
	})
}
