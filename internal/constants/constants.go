package constants

import "time"

// Service endpoints.
const (
	// ProductionHost is the host serving the live API.
	ProductionHost = "https://api.mod.io"

	// TestHost is the host serving the sandbox API.
	TestHost = "https://api.test.mod.io"

	// DefaultAPIVersion is the path version segment used when none is configured.
	DefaultAPIVersion = "v1"

	// DefaultLanguage is the Accept-Language value used when none is configured.
	DefaultLanguage = "en"
)

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout bounds requests whose context carries no
	// deadline.
	DefaultHTTPTimeout = 30 * time.Second

	// UploadHTTPTimeout replaces DefaultHTTPTimeout for multipart
	// uploads, which push whole archives through the wire.
	UploadHTTPTimeout = 5 * time.Minute
)

// Retry limits. The transport performs no retries unless a caller opts in.
const (
	// DefaultRetryWaitMin is the minimum wait between opt-in retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait between opt-in retries.
	DefaultRetryWaitMax = 30 * time.Second
)

// Rate-limit response headers.
const (
	// HeaderRateLimit carries the total request budget for the window.
	HeaderRateLimit = "X-RateLimit-Limit"

	// HeaderRateRemaining carries the requests left in the window.
	HeaderRateRemaining = "X-RateLimit-Remaining"

	// HeaderRateRetryAfter carries the cool-down in seconds once the
	// budget is exhausted. The service spells it with a lowercase "l".
	HeaderRateRetryAfter = "X-Ratelimit-RetryAfter"
)

// Miscellaneous limits.
const (
	// SecurityCodeLength is the exact length of an email security code.
	SecurityCodeLength = 5

	// MaxResponseBody caps how much of a response body is read.
	MaxResponseBody = 10 << 20
)
