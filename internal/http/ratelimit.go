package http

import (
	"context"
	nethttp "net/http"
	"strconv"
	"sync"
	"time"

	"github.com/fivetwenty-io/modio-client/internal/constants"
	"github.com/fivetwenty-io/modio-client/pkg/modio"
)

// RateLimiter tracks the remote request budget and gates outgoing
// requests once it is exhausted. One limiter is shared by every request
// a client issues, so all access is serialized behind the mutex.
type RateLimiter struct {
	mu         sync.Mutex
	limit      int
	remaining  int
	retryAfter time.Duration
}

// NewRateLimiter creates a limiter with an unknown budget.
func NewRateLimiter() *RateLimiter {
	return &RateLimiter{limit: -1, remaining: -1}
}

// Wait stalls until the cool-down from the last exhausted response has
// elapsed. The cool-down is consumed exactly once: after a successful
// wait the next call proceeds immediately. Cancelling the context
// aborts the stall.
func (r *RateLimiter) Wait(ctx context.Context) error {
	r.mu.Lock()

	var wait time.Duration
	if r.remaining == 0 && r.retryAfter > 0 {
		wait = r.retryAfter
		r.retryAfter = 0
	}

	r.mu.Unlock()

	if wait == 0 {
		return nil
	}

	timer := time.NewTimer(wait)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Update records the budget carried on a response. Limit and remaining
// are kept when their headers are absent; the cool-down resets to zero
// unless the response says otherwise.
func (r *RateLimiter) Update(headers nethttp.Header) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if value, err := strconv.Atoi(headers.Get(constants.HeaderRateLimit)); err == nil {
		r.limit = value
	}

	if value, err := strconv.Atoi(headers.Get(constants.HeaderRateRemaining)); err == nil {
		r.remaining = value
	}

	r.retryAfter = 0
	if value, err := strconv.Atoi(headers.Get(constants.HeaderRateRetryAfter)); err == nil && value > 0 {
		r.retryAfter = time.Duration(value) * time.Second
	}
}

// Snapshot returns the budget observed on the most recent response.
func (r *RateLimiter) Snapshot() modio.RateLimit {
	r.mu.Lock()
	defer r.mu.Unlock()

	return modio.RateLimit{
		Limit:      r.limit,
		Remaining:  r.remaining,
		RetryAfter: r.retryAfter,
	}
}
