// Package http implements the request pipeline shared by every
// resource client: credential resolution, header synthesis, rate-limit
// back-pressure, body encoding, dispatch, and error decoding.
package http

import (
	"context"
	"errors"
	"fmt"
	"io"
	nethttp "net/http"
	"net/url"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/fivetwenty-io/modio-client/internal/auth"
	"github.com/fivetwenty-io/modio-client/internal/constants"
	"github.com/fivetwenty-io/modio-client/pkg/modio"
)

// ErrUnexpectedStatus wraps failure responses that carry no error
// envelope, such as proxy-generated bodies.
var ErrUnexpectedStatus = errors.New("unexpected response status")

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Request describes one call through the pipeline.
type Request struct {
	Method string
	Path   string

	// Query parameters. Filter output and ad-hoc entries share this
	// mapping; the pipeline adds api_key when it applies.
	Query url.Values

	// Form fields for writes. Form-encoded unless Files is non-empty,
	// in which case everything is packed into a multipart body.
	Form url.Values

	// Files to submit as multipart parts.
	Files []FileField

	// KeyOnly forces API-key authentication even when a bearer token is
	// held. The email-flow endpoints require this.
	KeyOnly bool
}

// Response is the decoded outcome of a successful call.
type Response struct {
	StatusCode int
	Headers    nethttp.Header
	Body       []byte
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger.
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithLanguage sets the Accept-Language header value.
func WithLanguage(language string) Option {
	return func(c *Client) {
		c.language = language
	}
}

// WithTimeout sets the per-request timeout applied when the caller's
// context carries no deadline. Uploads keep their own longer default.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithRetryConfig opts in to transport retries for transient failures.
// The default is no retries; the rate-limit stall is not a retry.
func WithRetryConfig(retryMax int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.httpClient.RetryMax = retryMax
		c.httpClient.RetryWaitMin = waitMin
		c.httpClient.RetryWaitMax = waitMax
	}
}

// Client is the request pipeline. It is safe for concurrent use; the
// rate limiter serializes budget reads and updates.
type Client struct {
	baseURL    string
	creds      *auth.Credentials
	language   string
	timeout    time.Duration
	httpClient *retryablehttp.Client
	limiter    *RateLimiter
	logger     Logger
	debug      bool
	userAgent  string
	closed     atomic.Bool
}

// NewClient creates a pipeline rooted at baseURL.
func NewClient(baseURL string, creds *auth.Credentials, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 0
	retryClient.RetryWaitMin = constants.DefaultRetryWaitMin
	retryClient.RetryWaitMax = constants.DefaultRetryWaitMax
	retryClient.Logger = nil

	client := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		creds:      creds,
		language:   constants.DefaultLanguage,
		timeout:    constants.DefaultHTTPTimeout,
		httpClient: retryClient,
		limiter:    NewRateLimiter(),
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// RateLimit returns the budget observed on the most recent response.
func (c *Client) RateLimit() modio.RateLimit {
	return c.limiter.Snapshot()
}

// Close releases the transport. Requests after Close fail with
// modio.ErrClientClosed.
func (c *Client) Close() error {
	c.closed.Store(true)
	c.httpClient.HTTPClient.CloseIdleConnections()

	return nil
}

// Get issues a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: nethttp.MethodGet, Path: path, Query: query})
}

// Post issues a form-encoded POST request.
func (c *Client) Post(ctx context.Context, path string, form url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: nethttp.MethodPost, Path: path, Form: form})
}

// Put issues a form-encoded PUT request.
func (c *Client) Put(ctx context.Context, path string, form url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: nethttp.MethodPut, Path: path, Form: form})
}

// Delete issues a form-encoded DELETE request.
func (c *Client) Delete(ctx context.Context, path string, form url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: nethttp.MethodDelete, Path: path, Form: form})
}

// Upload issues a multipart POST request. The whole body, files
// included, is buffered in memory before dispatch, so peak usage is
// bounded by the combined size of the files.
func (c *Client) Upload(ctx context.Context, path string, form url.Values, files []FileField) (*Response, error) {
	return c.Do(ctx, &Request{Method: nethttp.MethodPost, Path: path, Form: form, Files: files})
}

// Do runs one request through the full pipeline.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	if c.closed.Load() {
		return nil, modio.ErrClientClosed
	}

	// Bound the call when the caller did not. Uploads get a longer
	// window to push the archive through.
	if _, ok := ctx.Deadline(); !ok {
		timeout := c.timeout
		if len(req.Files) > 0 {
			timeout = constants.UploadHTTPTimeout
		}

		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)

		defer cancel()
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("waiting for rate limit: %w", err)
	}

	httpReq, err := c.buildRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	c.logRequest(req)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("sending %s %s: %w", req.Method, req.Path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	c.limiter.Update(resp.Header)

	body, err := io.ReadAll(io.LimitReader(resp.Body, constants.MaxResponseBody))
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	response := &Response{StatusCode: resp.StatusCode, Headers: resp.Header, Body: body}
	c.logResponse(req, response)

	return c.decode(response)
}

// buildRequest resolves the body shape, authentication mode, and
// headers for one request.
func (c *Client) buildRequest(ctx context.Context, req *Request) (*retryablehttp.Request, error) {
	query := url.Values{}
	for key, values := range req.Query {
		query[key] = values
	}

	token := c.creds.Token()
	useBearer := token != "" && !req.KeyOnly

	if !useBearer {
		query.Set("api_key", c.creds.APIKey())
	}

	var (
		body        io.Reader
		contentType string
	)

	switch {
	case len(req.Files) > 0:
		buf, boundary, err := encodeMultipart(req.Form, req.Files)
		if err != nil {
			return nil, err
		}

		body = buf
		contentType = boundary
	case req.Method != nethttp.MethodGet && len(req.Form) > 0:
		body = strings.NewReader(req.Form.Encode())
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, c.baseURL+req.Path, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	httpReq.URL.RawQuery = query.Encode()

	for key, value := range synthesizeHeaders(req.Method, c.language, token, useBearer, len(req.Files) > 0) {
		httpReq.Header.Set(key, value)
	}

	// The multipart boundary is known only to the writer, so it is set
	// here rather than in the synthesized header set.
	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}

	if c.userAgent != "" {
		httpReq.Header.Set("User-Agent", c.userAgent)
	}

	return httpReq, nil
}

// synthesizeHeaders produces one of the three header sets: json-body
// OAuth, multipart OAuth (no Content-Type), or anonymous.
func synthesizeHeaders(method, language, token string, useBearer, multipart bool) map[string]string {
	headers := map[string]string{
		"Accept":          "application/json",
		"Accept-Language": language,
	}

	if useBearer {
		headers["Authorization"] = "Bearer " + token
	}

	if !multipart && method != nethttp.MethodGet {
		headers["Content-Type"] = "application/x-www-form-urlencoded"
	}

	return headers
}

// decode maps the response to a payload or an error. 204 is success
// with an empty payload; anything at or above 400 carrying an error
// envelope becomes an APIError.
func (c *Client) decode(response *Response) (*Response, error) {
	if response.StatusCode == nethttp.StatusNoContent {
		return response, nil
	}

	if response.StatusCode < 400 {
		return response, nil
	}

	apiErr, ok := modio.ParseAPIError(response.StatusCode, response.Body)
	if !ok {
		return response, fmt.Errorf("%w: %d", ErrUnexpectedStatus, response.StatusCode)
	}

	if response.StatusCode == nethttp.StatusTooManyRequests {
		if seconds, err := strconv.Atoi(response.Headers.Get(constants.HeaderRateRetryAfter)); err == nil {
			apiErr.RetryAfter = seconds
		}
	}

	return response, apiErr
}

func (c *Client) logRequest(req *Request) {
	if !c.debug || c.logger == nil {
		return
	}

	c.logger.Debug("HTTP Request", map[string]interface{}{
		"method": req.Method,
		"path":   req.Path,
	})
}

func (c *Client) logResponse(req *Request, response *Response) {
	if !c.debug || c.logger == nil {
		return
	}

	c.logger.Debug("HTTP Response", map[string]interface{}{
		"method": req.Method,
		"path":   req.Path,
		"status": response.StatusCode,
		"bytes":  len(response.Body),
	})
}
