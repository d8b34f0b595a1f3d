package pluvo

import (
	"context"
	"time"
)

// Default endpoints and sizes.
const (
	// DefaultAPIURL is the production Pluvo API base URL.
	DefaultAPIURL = "https://api.pluvo.co/api"

	// DefaultPageSize is the page size used for list operations when the
	// config does not set one.
	DefaultPageSize = 20
)

// CoursesClient provides access to course resources.
type CoursesClient interface {
	Get(ctx context.Context, courseID int) (*Course, error)
	List(ctx context.Context, params *ListParams) (*Sequence[Course], error)
	Create(ctx context.Context, course *Course) (*Course, error)
	Update(ctx context.Context, courseID int, course *Course) (*Course, error)
	// Set creates the course when it has no ID and updates it otherwise.
	Set(ctx context.Context, course *Course) (*Course, error)
}

// UsersClient provides access to user resources.
type UsersClient interface {
	Get(ctx context.Context, userID int) (*User, error)
	List(ctx context.Context, params *ListParams) (*Sequence[User], error)
	Create(ctx context.Context, user *User) (*User, error)
	Update(ctx context.Context, userID int, user *User) (*User, error)
	// Set creates the user when it has no ID and updates it otherwise.
	Set(ctx context.Context, user *User) (*User, error)
	// CourseToken issues a token for a user to access a course.
	CourseToken(ctx context.Context, userID, courseID int, tokenType TokenType) (*CourseToken, error)
}

// OrganisationsClient provides access to organisation resources.
type OrganisationsClient interface {
	Create(ctx context.Context, organisation *Organisation) (*Organisation, error)
	Update(ctx context.Context, organisationID int, organisation *Organisation) (*Organisation, error)
	// Set creates the organisation when it has no ID and updates it otherwise.
	Set(ctx context.Context, organisation *Organisation) (*Organisation, error)
}

// MediaClient provides access to media upload grants.
type MediaClient interface {
	S3UploadToken(ctx context.Context, filename, mediaType string) (*S3UploadToken, error)
}

// Client is the full Pluvo API surface.
type Client interface {
	Courses() CoursesClient
	Users() UsersClient
	Organisations() OrganisationsClient
	Media() MediaClient

	// GetVersion returns the Pluvo API version.
	GetVersion(ctx context.Context) (*Version, error)
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a pluvo.Client.
//
// # Authentication
//
// Provide exactly one of the following, or neither:
//  1. ClientID/ClientSecret: uses the OAuth2 client_credentials grant against
//     TokenURL; the resulting bearer token is attached to every request and
//     refreshed transparently when it expires.
//  2. Token: used directly as a static bearer token.
//  3. No credentials: requests are sent without authentication; restricted
//     endpoints fail with an APIError carrying the server's 403 message.
//
// Setting only one of ClientID/ClientSecret, or combining Token with
// ClientID, is a construction-time error (see pluvoclient.New).
type Config struct {
	// APIURL: base URL for the Pluvo API. Defaults to DefaultAPIURL.
	// pluvoclient.New trims a trailing slash and adds "https://" when no
	// scheme is present.
	APIURL string

	// ClientID: OAuth2 client ID for the client_credentials grant.
	ClientID string
	// ClientSecret: OAuth2 client secret used with ClientID.
	ClientSecret string
	// Token: if set, used directly as a bearer token.
	Token string
	// TokenURL: full OAuth2 token endpoint. Defaults to "<APIURL>/oauth/token".
	TokenURL string

	// PageSize: number of items fetched per page by list operations.
	// Defaults to DefaultPageSize.
	PageSize int

	// HTTPTimeout: optional default HTTP timeout. Most calls should rely on
	// context timeouts instead.
	HTTPTimeout time.Duration
	// RetryMax: maximum number of transport-level retries for transient
	// failures (>=500, 429, connection errors). 0 keeps the default of 3;
	// a negative value disables retries.
	RetryMax int
	// RetryWaitMin: minimum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMin time.Duration
	// RetryWaitMax: maximum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMax time.Duration

	// Debug: enables verbose HTTP request/response logging when a Logger is
	// provided.
	Debug bool
	// Logger: optional structured logger used by the HTTP layer.
	Logger Logger
	// UserAgent: overrides the default User-Agent header.
	UserAgent string
}
