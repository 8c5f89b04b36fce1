package modio

import (
	"context"
	"time"
)

// GamesClient provides access to game resources.
type GamesClient interface {
	Get(ctx context.Context, gameID int64) (*Game, error)
	List(ctx context.Context, filter *Filter) (*GameList, error)
	GetStats(ctx context.Context, gameID int64) (*GameStats, error)
	Edit(ctx context.Context, gameID int64, request *GameEditRequest) (*Game, error)
	AddMod(ctx context.Context, gameID int64, request *ModCreateRequest) (*Mod, error)
	AddMedia(ctx context.Context, gameID int64, request *GameMediaRequest) error
	GetTagOptions(ctx context.Context, gameID int64, filter *Filter) (*TagOptionList, error)
	AddTagOption(ctx context.Context, gameID int64, request *TagOptionAddRequest) error
	DeleteTagOption(ctx context.Context, gameID int64, name string, tags []string) error
	GetModEvents(ctx context.Context, gameID int64, filter *Filter) (*EventList, error)
	GetOwner(ctx context.Context, gameID int64) (*User, error)
}

// ModsClient provides access to mod resources under a game.
type ModsClient interface {
	Get(ctx context.Context, gameID, modID int64) (*Mod, error)
	List(ctx context.Context, gameID int64, filter *Filter) (*ModList, error)
	Edit(ctx context.Context, gameID, modID int64, request *ModEditRequest) (*Mod, error)
	Delete(ctx context.Context, gameID, modID int64) error

	// Subscribe returns the subscribed mod. A "you are already
	// subscribed" response is absorbed and returns (nil, nil).
	Subscribe(ctx context.Context, gameID, modID int64) (*Mod, error)
	// Unsubscribe absorbs a "you are not subscribed" response.
	Unsubscribe(ctx context.Context, gameID, modID int64) error

	AddMedia(ctx context.Context, gameID, modID int64, request *ModMediaAddRequest) error
	DeleteMedia(ctx context.Context, gameID, modID int64, request *ModMediaDeleteRequest) error

	GetEvents(ctx context.Context, gameID, modID int64, filter *Filter) (*EventList, error)
	GetTags(ctx context.Context, gameID, modID int64, filter *Filter) (*TagList, error)
	AddTags(ctx context.Context, gameID, modID int64, tags []string) error
	DeleteTags(ctx context.Context, gameID, modID int64, tags []string) error
	GetMetadata(ctx context.Context, gameID, modID int64, filter *Filter) (*MetadataList, error)
	AddMetadata(ctx context.Context, gameID, modID int64, metadata map[string][]string) error
	DeleteMetadata(ctx context.Context, gameID, modID int64, metadata map[string][]string) error
	GetDependencies(ctx context.Context, gameID, modID int64, filter *Filter) (*DependencyList, error)
	AddDependencies(ctx context.Context, gameID, modID int64, dependencies []int64) error
	DeleteDependencies(ctx context.Context, gameID, modID int64, dependencies []int64) error
	GetTeam(ctx context.Context, gameID, modID int64, filter *Filter) (*TeamMemberList, error)
	AddTeamMember(ctx context.Context, gameID, modID int64, request *TeamMemberAddRequest) error
	GetComments(ctx context.Context, gameID, modID int64, filter *Filter) (*CommentList, error)
	AddRating(ctx context.Context, gameID, modID int64, rating RatingValue) error
	GetStats(ctx context.Context, gameID, modID int64) (*ModStats, error)
	GetOwner(ctx context.Context, gameID, modID int64) (*User, error)
	Report(ctx context.Context, modID int64, dmca bool, name, summary string) error
}

// FilesClient provides access to mod file resources.
//
// Edit and Delete need the owning game and mod. Files listed through
// /me/files carry only their mod ID, so they cannot be edited or
// deleted; such calls fail with ErrMeFileImmutable before any request
// is made.
type FilesClient interface {
	Get(ctx context.Context, gameID, modID, fileID int64) (*ModFile, error)
	List(ctx context.Context, gameID, modID int64, filter *Filter) (*ModFileList, error)
	Add(ctx context.Context, gameID, modID int64, request *FileCreateRequest) (*ModFile, error)
	Edit(ctx context.Context, gameID, modID, fileID int64, request *FileEditRequest) (*ModFile, error)
	Delete(ctx context.Context, gameID, modID, fileID int64) error
}

// UsersClient provides access to user resources.
type UsersClient interface {
	Get(ctx context.Context, userID int64) (*User, error)
	List(ctx context.Context, filter *Filter) (*UserList, error)
	Mute(ctx context.Context, userID int64) error
	Unmute(ctx context.Context, userID int64) error
	Report(ctx context.Context, userID int64, dmca bool, name, summary string) error
}

// MeClient provides access to resources of the authenticated user.
type MeClient interface {
	User(ctx context.Context) (*User, error)
	Games(ctx context.Context, filter *Filter) (*GameList, error)
	Mods(ctx context.Context, filter *Filter) (*ModList, error)
	Subscribed(ctx context.Context, filter *Filter) (*ModList, error)
	Files(ctx context.Context, filter *Filter) (*ModFileList, error)
	Events(ctx context.Context, filter *Filter) (*EventList, error)
	Ratings(ctx context.Context, filter *Filter) (*RatingList, error)
}

// CommentsClient provides access to mod comment threads.
type CommentsClient interface {
	Edit(ctx context.Context, gameID, modID, commentID int64, content string) (*Comment, error)
	Delete(ctx context.Context, gameID, modID, commentID int64) error
	AddKarma(ctx context.Context, gameID, modID, commentID int64, karma RatingValue) (*Comment, error)
}

// AuthClient performs the OAuth2 email flow. Both endpoints
// authenticate with the API key even when a bearer token is held.
type AuthClient interface {
	// EmailRequest sends a five-digit security code to the address.
	EmailRequest(ctx context.Context, email string) error
	// EmailExchange trades the code for an access token, installs it on
	// the client, and returns it. Codes that are not exactly five
	// characters long fail with ErrSecurityCodeLength without a
	// network call.
	EmailExchange(ctx context.Context, code string) (string, error)
}

// ReportsClient files reports against games, mods, and users.
type ReportsClient interface {
	Submit(ctx context.Context, request *ReportRequest) error
}

// Client is the full operation surface of the API.
type Client interface {
	Games() GamesClient
	Mods() ModsClient
	Files() FilesClient
	Users() UsersClient
	Me() MeClient
	Comments() CommentsClient
	Auth() AuthClient
	Reports() ReportsClient

	// RateLimit returns the budget observed on the most recent response.
	RateLimit() RateLimit

	// Close releases the underlying transport. Operations on a closed
	// client fail with ErrClientClosed.
	Close() error
}

// RateLimit is a snapshot of the remote request budget. Limit and
// Remaining are -1 until a response has carried the rate headers.
type RateLimit struct {
	Limit      int
	Remaining  int
	RetryAfter time.Duration
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a modio.Client.
//
// # Authentication
//
// At least one of APIKey and AccessToken must be set. When both are
// present the access token is preferred for every request that accepts
// it; the email-flow endpoints always authenticate with the API key.
// A successful email exchange installs the returned token on the
// client, switching subsequent requests to bearer authentication.
//
// # Retries
//
// The client never retries on its own: a rate-limit cool-down is a
// stall before dispatch, not a retry. RetryMax and the wait bounds are
// passed to the underlying transport so callers can layer a retry
// policy for transient failures when they want one.
type Config struct {
	// APIKey authorizes read access as a query parameter.
	APIKey string
	// AccessToken is an OAuth2 bearer token authorizing write access.
	AccessToken string

	// Language sets Accept-Language; defaults to "en".
	Language string
	// Version is the API path version segment; defaults to "v1".
	Version string
	// TestEnvironment targets api.test.mod.io instead of api.mod.io.
	TestEnvironment bool
	// APIEndpoint overrides the derived base URL entirely. Intended for
	// tests against a local server.
	APIEndpoint string

	// HTTPTimeout: optional per-request timeout applied when the call's
	// context carries no deadline. Uploads keep a longer default.
	HTTPTimeout time.Duration
	// RetryMax: maximum opt-in retries for transient failures; 0 keeps
	// the default of no retries.
	RetryMax int
	// RetryWaitMin: minimum backoff between opt-in retries.
	RetryWaitMin time.Duration
	// RetryWaitMax: maximum backoff between opt-in retries.
	RetryWaitMax time.Duration

	// Debug enables verbose HTTP logging when a Logger is provided.
	Debug bool
	// Logger: optional structured logger used by the HTTP layer.
	Logger Logger
	// UserAgent overrides the default User-Agent header.
	UserAgent string
}
