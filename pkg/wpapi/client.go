package wpapi

import (
	"context"
	"time"
)

// Client is the interface for interacting with a WordPress REST API.
//
// The path-based operations accept any resource path relative to the
// configured endpoint, for example "posts" or "posts/42". A path that
// accidentally carries the full endpoint URL as a prefix is normalized
// before the request is sent. Each operation is synchronous and returns
// either a Result or a single classified error; retryable failures are
// absorbed by the client up to the configured retry bound.
type Client interface {
	// Fetch performs a GET against a resource path.
	Fetch(ctx context.Context, path string, params *ListParams) (*Result, error)
	// Create performs a POST against a resource path. The data mapping is
	// sent as the JSON body with its "context" key set to requestContext
	// (default "view"), overwriting any caller-supplied value.
	Create(ctx context.Context, path, requestContext string, data map[string]interface{}) (*Result, error)
	// Update performs a PUT against a resource path with the same body
	// semantics as Create.
	Update(ctx context.Context, path, requestContext string, data map[string]interface{}) (*Result, error)
	// Delete performs a DELETE against a resource path with the same body
	// semantics as Create.
	Delete(ctx context.Context, path, requestContext string, data map[string]interface{}) (*Result, error)

	// Resource returns a client bound to an arbitrary collection path.
	Resource(path string) ResourceClient

	// Typed accessors for the built-in wp/v2 collections.
	Posts() ResourceClient
	Pages() ResourceClient
	Users() ResourceClient
	Media() ResourceClient
	Categories() ResourceClient
	Tags() ResourceClient
	Comments() ResourceClient
}

// ResourceClient operates on a single collection.
type ResourceClient interface {
	List(ctx context.Context, params *ListParams) (*Result, error)
	Get(ctx context.Context, id int, requestContext string) (*Result, error)
	Create(ctx context.Context, requestContext string, data map[string]interface{}) (*Result, error)
	Update(ctx context.Context, id int, requestContext string, data map[string]interface{}) (*Result, error)
	Delete(ctx context.Context, id int, requestContext string, data map[string]interface{}) (*Result, error)
}

// Config represents client configuration for building a wpapi.Client.
//
// # Authentication
//
// Exactly one authentication mode must be fully populated:
//
//  1. Token: ClientKey, ClientSecret, AccessToken, and AccessSecret. Requests
//     are signed with OAuth1; every attempt carries a fresh nonce.
//  2. Basic: Username and Password, sent as an Authorization: Basic header.
//     WordPress only honors basic authentication with a helper plugin
//     installed; it is intended for development setups.
//
// Providing both modes, neither, or an incomplete credential set is a
// configuration error raised at construction, before any request is sent.
//
// # Retries
//
// Transient failures (nonce reuse, 429, 502, connection resets) are retried
// up to MaxRetries times with backoff between attempts; a Retry-After header
// on 429 responses is honored. Fatal failures propagate immediately.
type Config struct {
	// Endpoint is the base URL of the wp-json API, for example
	// "https://example.com/wp-json". Required. A trailing slash is
	// trimmed and "https://" is assumed when no scheme is present.
	Endpoint string

	// Token credentials.
	ClientKey    string
	ClientSecret string
	AccessToken  string
	AccessSecret string

	// Basic credentials.
	Username string
	Password string

	// MaxRetries bounds the retry loop for transient failures. Zero means
	// the default of 5; a negative value disables retries entirely.
	MaxRetries int
	// RetryWaitMin is the minimum backoff between retries.
	RetryWaitMin time.Duration
	// RetryWaitMax is the maximum backoff between retries.
	RetryWaitMax time.Duration

	// HTTPTimeout bounds each individual send. Per-operation wall-clock
	// time, covering all retry attempts, should be bounded via the context
	// passed to client methods.
	HTTPTimeout time.Duration
	// UserAgent overrides the default User-Agent header.
	UserAgent string
	// Debug enables request/response logging when a Logger is provided.
	Debug bool
	// Logger is an optional structured logger used by the HTTP layer.
	Logger Logger
}
