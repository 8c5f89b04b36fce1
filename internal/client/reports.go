package client

import (
	"context"

	"github.com/fivetwenty-io/modio-client/internal/http"
	"github.com/fivetwenty-io/modio-client/pkg/modio"
)

// ReportsClient implements modio.ReportsClient.
type ReportsClient struct {
	httpClient *http.Client
}

// NewReportsClient creates a new reports client.
func NewReportsClient(httpClient *http.Client) *ReportsClient {
	return &ReportsClient{httpClient: httpClient}
}

// Submit implements modio.ReportsClient.Submit.
func (c *ReportsClient) Submit(ctx context.Context, request *modio.ReportRequest) error {
	return submitReport(ctx, c.httpClient, request)
}
