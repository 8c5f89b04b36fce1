package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/modio-client/internal/http"
	"github.com/fivetwenty-io/modio-client/pkg/modio"
)

// FilesClient implements modio.FilesClient.
type FilesClient struct {
	httpClient *http.Client
}

// NewFilesClient creates a new files client.
func NewFilesClient(httpClient *http.Client) *FilesClient {
	return &FilesClient{httpClient: httpClient}
}

func filePath(gameID, modID, fileID int64) string {
	return fmt.Sprintf("/games/%d/mods/%d/files/%d", gameID, modID, fileID)
}

// Get implements modio.FilesClient.Get.
func (c *FilesClient) Get(ctx context.Context, gameID, modID, fileID int64) (*modio.ModFile, error) {
	resp, err := c.httpClient.Get(ctx, filePath(gameID, modID, fileID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting file: %w", err)
	}

	return decode[modio.ModFile](resp, "file")
}

// List implements modio.FilesClient.List.
func (c *FilesClient) List(ctx context.Context, gameID, modID int64, filter *modio.Filter) (*modio.ModFileList, error) {
	resp, err := c.httpClient.Get(ctx, modPath(gameID, modID)+"/files", filter.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing files: %w", err)
	}

	return decode[modio.ModFileList](resp, "files list")
}

// Add implements modio.FilesClient.Add. The archive at request.Path
// goes up as the filedata multipart part.
func (c *FilesClient) Add(ctx context.Context, gameID, modID int64, request *modio.FileCreateRequest) (*modio.ModFile, error) {
	files := []http.FileField{{Name: "filedata", Path: request.Path}}

	resp, err := c.httpClient.Upload(ctx, modPath(gameID, modID)+"/files", request.ToValues(), files)
	if err != nil {
		return nil, fmt.Errorf("adding file: %w", err)
	}

	return decode[modio.ModFile](resp, "file")
}

// Edit implements modio.FilesClient.Edit. Files discovered through
// /me/files carry no game ID, so a missing owner fails before dispatch.
func (c *FilesClient) Edit(ctx context.Context, gameID, modID, fileID int64, request *modio.FileEditRequest) (*modio.ModFile, error) {
	if gameID <= 0 || modID <= 0 {
		return nil, modio.ErrMeFileImmutable
	}

	resp, err := c.httpClient.Put(ctx, filePath(gameID, modID, fileID), request.ToValues())
	if err != nil {
		return nil, fmt.Errorf("editing file: %w", err)
	}

	return decode[modio.ModFile](resp, "file")
}

// Delete implements modio.FilesClient.Delete.
func (c *FilesClient) Delete(ctx context.Context, gameID, modID, fileID int64) error {
	if gameID <= 0 || modID <= 0 {
		return modio.ErrMeFileImmutable
	}

	_, err := c.httpClient.Delete(ctx, filePath(gameID, modID, fileID), nil)
	if err != nil {
		return fmt.Errorf("deleting file: %w", err)
	}

	return nil
}
