package constants

import "time"

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// ShortHTTPTimeout is used for quick operations.
	ShortHTTPTimeout = 10 * time.Second
)

// Retry limits and backoff bounds.
const (
	// DefaultRetryMax is the default maximum number of retries for
	// retryable failures. The first attempt is not counted, so a value of
	// 5 allows up to 6 sends.
	DefaultRetryMax = 5

	// DefaultRetryWaitMin is the minimum wait between retries.
	DefaultRetryWaitMin = 500 * time.Millisecond

	// DefaultRetryWaitMax is the maximum wait between retries.
	DefaultRetryWaitMax = 10 * time.Second
)

// Pagination defaults and limits.
const (
	// DefaultPageLength is the number of records requested per page when
	// the caller does not specify one.
	DefaultPageLength = 10

	// MaxPageLength is the largest per_page value WordPress accepts.
	MaxPageLength = 100
)

// Response headers carrying pagination metadata.
const (
	// HeaderTotal carries the total number of matching records.
	HeaderTotal = "X-WP-Total"

	// HeaderTotalPages carries the total number of pages at the requested
	// page length.
	HeaderTotalPages = "X-WP-TotalPages"

	// HeaderAllow lists the HTTP methods permitted on the resource.
	HeaderAllow = "Allow"
)

// WordPress error codes recognized by the response classifier.
const (
	// ErrorCodeNonceUsed is returned on a 401 when an OAuth nonce is
	// replayed. A fresh request carries a fresh nonce, so this is
	// transient.
	ErrorCodeNonceUsed = "json_oauth1_nonce_already_used"

	// ErrorCodeTermExists is returned on a 500 when creating a taxonomy
	// term that already exists.
	ErrorCodeTermExists = "term_exists"
)

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// DefaultUserAgent identifies this client on outbound requests.
const DefaultUserAgent = "wpapi-go"
