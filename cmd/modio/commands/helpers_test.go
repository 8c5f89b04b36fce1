//nolint:testpackage // Need access to internal helpers
package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseID(t *testing.T) {
	t.Parallel()

	id, err := parseID("51")
	require.NoError(t, err)
	assert.Equal(t, int64(51), id)

	_, err = parseID("rogue-knight")
	require.Error(t, err)
}

func TestFormatUnix(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "-", formatUnix(0))
	assert.Equal(t, "2023-11-14 22:13", formatUnix(1700000000))
}

func TestFormatInt(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "0", formatInt(0))
	assert.Equal(t, "1234567", formatInt(1234567))
}
