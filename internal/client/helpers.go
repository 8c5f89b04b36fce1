package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/fivetwenty-io/modio-client/internal/http"
	"github.com/fivetwenty-io/modio-client/pkg/modio"
)

// decode unmarshals a response body into T.
func decode[T any](resp *http.Response, what string) (*T, error) {
	var value T
	if err := json.Unmarshal(resp.Body, &value); err != nil {
		return nil, fmt.Errorf("parsing %s response: %w", what, err)
	}

	return &value, nil
}

// indexedValues emits one positional parameter per entry:
// key[0], key[1], …
func indexedValues(key string, entries []string) url.Values {
	values := url.Values{}
	for i, entry := range entries {
		values.Set(fmt.Sprintf("%s[%d]", key, i), entry)
	}

	return values
}

// metadataValues lowers grouped metadata to positional parameters. Each
// entry is the key and its values joined with colons.
func metadataValues(metadata map[string][]string) url.Values {
	values := url.Values{}

	i := 0

	for key, entries := range metadata {
		parts := append([]string{key}, entries...)
		values.Set(fmt.Sprintf("metadata[%d]", i), strings.Join(parts, ":"))
		i++
	}

	return values
}

// dependencyValues lowers a dependency list to positional parameters.
func dependencyValues(dependencies []int64) url.Values {
	entries := make([]string, 0, len(dependencies))
	for _, id := range dependencies {
		entries = append(entries, strconv.FormatInt(id, 10))
	}

	return indexedValues("dependencies", entries)
}

// getOwner resolves the original submitter of a resource through the
// ownership endpoint.
func getOwner(ctx context.Context, httpClient *http.Client, resourceType string, resourceID int64) (*modio.User, error) {
	form := url.Values{}
	form.Set("resource_type", resourceType)
	form.Set("resource_id", strconv.FormatInt(resourceID, 10))

	resp, err := httpClient.Post(ctx, "/general/ownership", form)
	if err != nil {
		return nil, fmt.Errorf("getting owner: %w", err)
	}

	return decode[modio.User](resp, "owner")
}

// submitReport validates and files a report.
func submitReport(ctx context.Context, httpClient *http.Client, request *modio.ReportRequest) error {
	if err := request.Validate(); err != nil {
		return err
	}

	_, err := httpClient.Post(ctx, "/report", request.ToValues())
	if err != nil {
		return fmt.Errorf("submitting report: %w", err)
	}

	return nil
}
