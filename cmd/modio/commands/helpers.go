package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/modio-client/pkg/modio"
	"github.com/fivetwenty-io/modio-client/pkg/modioclient"
)

// Output formats.
const (
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"
)

// Common static errors used throughout the commands package.
var (
	ErrAPIKeyRequired = errors.New("no API key configured (set MODIO_API_KEY, --api-key, or api-key in the config file)")
	ErrNotLoggedIn    = errors.New("not authenticated, run 'modio login' first")
	ErrEmailRequired  = errors.New("email address is required")
	ErrGameIDRequired = errors.New("game ID is required")
	ErrModIDRequired  = errors.New("mod ID is required")
)

// createClient builds an API client from the resolved configuration.
func createClient() (modio.Client, error) {
	apiKey := viper.GetString("api-key")
	token := viper.GetString("token")

	if apiKey == "" && token == "" {
		return nil, ErrAPIKeyRequired
	}

	client, err := modioclient.New(&modio.Config{
		APIKey:          apiKey,
		AccessToken:     token,
		TestEnvironment: viper.GetBool("test-env"),
	})
	if err != nil {
		return nil, fmt.Errorf("creating client: %w", err)
	}

	return client, nil
}

// createAuthenticatedClient builds a client and requires a token.
func createAuthenticatedClient() (modio.Client, error) {
	if viper.GetString("token") == "" {
		return nil, ErrNotLoggedIn
	}

	return createClient()
}

// renderOutput writes value as JSON or YAML per the output flag. The
// second return value is false when the format calls for a table.
func renderOutput(value interface{}) (bool, error) {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")

		return true, encoder.Encode(value)
	case OutputFormatYAML:
		encoder := yaml.NewEncoder(os.Stdout)

		return true, encoder.Encode(value)
	default:
		return false, nil
	}
}

// renderTable draws a header and rows to stdout.
func renderTable(header []string, rows [][]string) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header(toAnySlice(header)...)

	for _, row := range rows {
		_ = table.Append(toAnySlice(row)...)
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func toAnySlice(values []string) []interface{} {
	anys := make([]interface{}, len(values))
	for i, value := range values {
		anys[i] = value
	}

	return anys
}

// formatUnix renders a unix timestamp for table output.
func formatUnix(ts int64) string {
	if ts == 0 {
		return "-"
	}

	return time.Unix(ts, 0).UTC().Format("2006-01-02 15:04")
}

func formatInt(value int64) string {
	return strconv.FormatInt(value, 10)
}

// parseID parses a positional numeric argument.
func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing id %q: %w", arg, err)
	}

	return id, nil
}
