package http_test

import (
	"context"
	nethttp "net/http"
	"testing"
	"time"

	modiohttp "github.com/fivetwenty-io/modio-client/internal/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimiter_UnknownBudget(t *testing.T) {
	t.Parallel()

	limiter := modiohttp.NewRateLimiter()

	snapshot := limiter.Snapshot()
	assert.Equal(t, -1, snapshot.Limit)
	assert.Equal(t, -1, snapshot.Remaining)
	assert.Equal(t, time.Duration(0), snapshot.RetryAfter)

	// An unknown budget never stalls.
	require.NoError(t, limiter.Wait(context.Background()))
}

func TestRateLimiter_Update(t *testing.T) {
	t.Parallel()

	limiter := modiohttp.NewRateLimiter()

	headers := nethttp.Header{}
	headers.Set("X-RateLimit-Limit", "120")
	headers.Set("X-RateLimit-Remaining", "119")
	limiter.Update(headers)

	snapshot := limiter.Snapshot()
	assert.Equal(t, 120, snapshot.Limit)
	assert.Equal(t, 119, snapshot.Remaining)

	// Absent headers keep the last observed budget.
	limiter.Update(nethttp.Header{})
	snapshot = limiter.Snapshot()
	assert.Equal(t, 120, snapshot.Limit)
	assert.Equal(t, 119, snapshot.Remaining)
}

func TestRateLimiter_Stall(t *testing.T) {
	t.Parallel()

	limiter := modiohttp.NewRateLimiter()

	headers := nethttp.Header{}
	headers.Set("X-RateLimit-Limit", "120")
	headers.Set("X-RateLimit-Remaining", "0")
	headers.Set("X-Ratelimit-RetryAfter", "1")
	limiter.Update(headers)

	start := time.Now()
	require.NoError(t, limiter.Wait(context.Background()))
	assert.GreaterOrEqual(t, time.Since(start), 1*time.Second)

	// The cool-down is consumed by the first wait.
	start = time.Now()
	require.NoError(t, limiter.Wait(context.Background()))
	assert.Less(t, time.Since(start), 100*time.Millisecond)
}

func TestRateLimiter_StallCancellation(t *testing.T) {
	t.Parallel()

	limiter := modiohttp.NewRateLimiter()

	headers := nethttp.Header{}
	headers.Set("X-RateLimit-Remaining", "0")
	headers.Set("X-Ratelimit-RetryAfter", "60")
	limiter.Update(headers)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := limiter.Wait(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestRateLimiter_RecoveryClearsCooldown(t *testing.T) {
	t.Parallel()

	limiter := modiohttp.NewRateLimiter()

	exhausted := nethttp.Header{}
	exhausted.Set("X-RateLimit-Remaining", "0")
	exhausted.Set("X-Ratelimit-RetryAfter", "60")
	limiter.Update(exhausted)

	// A later response without the cool-down header resets it.
	recovered := nethttp.Header{}
	recovered.Set("X-RateLimit-Remaining", "50")
	limiter.Update(recovered)

	start := time.Now()
	require.NoError(t, limiter.Wait(context.Background()))
	assert.Less(t, time.Since(start), 100*time.Millisecond)
}
