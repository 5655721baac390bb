// Package http implements the request execution pipeline: request building,
// signing, dispatch, response classification, and the bounded retry loop.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	nethttp "net/http"
	"net/url"
	"strings"
	"syscall"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/pressflow-io/wpapi/internal/auth"
	"github.com/pressflow-io/wpapi/internal/constants"
	"github.com/pressflow-io/wpapi/pkg/wpapi"
)

// Logger interface for HTTP client logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Request represents an API request.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Body   []byte
}

// Response represents an API response.
type Response struct {
	StatusCode int
	Headers    nethttp.Header
	Body       []byte
}

// Client handles HTTP communication with the WordPress API.
type Client struct {
	baseURL      string
	httpClient   *nethttp.Client
	logger       Logger
	userAgent    string
	debug        bool
	retryMax     int
	retryWaitMin time.Duration
	retryWaitMax time.Duration
}

// Option configures the client.
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

// WithRetryConfig sets the retry bound and the backoff window.
func WithRetryConfig(retryMax int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.retryMax = retryMax
		c.retryWaitMin = waitMin
		c.retryWaitMax = waitMax
	}
}

// WithTimeout sets the per-send HTTP timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// NewClient creates a new HTTP client. When authenticator is non-nil,
// outbound requests are signed by it.
func NewClient(baseURL string, authenticator auth.Authenticator, opts ...Option) *Client {
	client := &Client{
		baseURL:      strings.TrimSuffix(baseURL, "/"),
		httpClient:   &nethttp.Client{Timeout: constants.DefaultHTTPTimeout},
		userAgent:    constants.DefaultUserAgent,
		retryMax:     constants.DefaultRetryMax,
		retryWaitMin: constants.DefaultRetryWaitMin,
		retryWaitMax: constants.DefaultRetryWaitMax,
	}

	for _, opt := range opts {
		opt(client)
	}

	if authenticator != nil {
		client.httpClient = authenticator.Wrap(client.httpClient)
	}

	return client
}

// Do executes a request with bounded retries. Transient failures (a
// connection reset mid-transfer, a replayed OAuth nonce, 429, 502) are
// retried up to the configured bound with backoff between attempts; a
// Retry-After header on rate-limited responses is honored. Any other
// failure propagates immediately as a classified error.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	requestURL := c.resolveURL(req)

	for attempt := 0; ; attempt++ {
		resp, err := c.send(ctx, req, requestURL)
		if err != nil {
			if !isConnReset(err) {
				return nil, fmt.Errorf("sending %s %s: %w", req.Method, requestURL, err)
			}

			if attempt >= c.retryMax {
				return nil, fmt.Errorf("sending %s %s: %w", req.Method, requestURL, err)
			}

			c.logRetry(req.Method, requestURL, attempt, "connection reset")

			if waitErr := c.wait(ctx, attempt, nil); waitErr != nil {
				return nil, waitErr
			}

			continue
		}

		apiErr := wpapi.Classify(resp.StatusCode, resp.Body, req.Method, requestURL)
		if apiErr == nil {
			c.logResponse(req.Method, requestURL, resp.StatusCode)

			return resp, nil
		}

		if !apiErr.Retryable() || attempt >= c.retryMax {
			return nil, apiErr
		}

		c.logRetry(req.Method, requestURL, attempt, string(apiErr.Kind))

		if waitErr := c.wait(ctx, attempt, resp); waitErr != nil {
			return nil, waitErr
		}
	}
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: nethttp.MethodGet, Path: path, Query: query})
}

// Post performs a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	data, err := marshalBody(body)
	if err != nil {
		return nil, err
	}

	return c.Do(ctx, &Request{Method: nethttp.MethodPost, Path: path, Body: data})
}

// Put performs a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body interface{}) (*Response, error) {
	data, err := marshalBody(body)
	if err != nil {
		return nil, err
	}

	return c.Do(ctx, &Request{Method: nethttp.MethodPut, Path: path, Body: data})
}

// Delete performs a DELETE request with an optional JSON body.
func (c *Client) Delete(ctx context.Context, path string, body interface{}) (*Response, error) {
	data, err := marshalBody(body)
	if err != nil {
		return nil, err
	}

	return c.Do(ctx, &Request{Method: nethttp.MethodDelete, Path: path, Body: data})
}

// BaseURL returns the configured endpoint base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// send performs a single attempt. The outbound request is rebuilt on every
// call so each retry gets a fresh body reader and, under token auth, a
// fresh OAuth nonce.
func (c *Client) send(ctx context.Context, req *Request, requestURL string) (*Response, error) {
	var bodyReader io.Reader
	if len(req.Body) > 0 {
		bodyReader = bytes.NewReader(req.Body)
	}

	httpReq, err := nethttp.NewRequestWithContext(ctx, req.Method, requestURL, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)

	if len(req.Body) > 0 {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	c.logRequest(req.Method, requestURL)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		// A reset here is a mid-transfer failure and retryable like a
		// reset during the send itself.
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Headers:    resp.Header,
		Body:       body,
	}, nil
}

// wait blocks for the backoff interval before the next attempt, or until
// the context is canceled. resp may be nil for transport-level failures.
func (c *Client) wait(ctx context.Context, attempt int, resp *Response) error {
	var httpResp *nethttp.Response
	if resp != nil {
		httpResp = &nethttp.Response{StatusCode: resp.StatusCode, Header: resp.Headers}
	}

	backoff := retryablehttp.DefaultBackoff(c.retryWaitMin, c.retryWaitMax, attempt, httpResp)

	timer := time.NewTimer(backoff)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return fmt.Errorf("waiting to retry: %w", ctx.Err())
	case <-timer.C:
		return nil
	}
}

// resolveURL builds the effective request URL. A path that already carries
// the endpoint base URL is reduced to its relative part first.
func (c *Client) resolveURL(req *Request) string {
	path := strings.TrimPrefix(req.Path, c.baseURL)
	path = strings.TrimPrefix(path, "/")

	requestURL := c.baseURL + "/" + path
	if len(req.Query) > 0 {
		requestURL += "?" + req.Query.Encode()
	}

	return requestURL
}

func isConnReset(err error) bool {
	if errors.Is(err, syscall.ECONNRESET) {
		return true
	}

	return strings.Contains(err.Error(), "connection reset by peer")
}

func marshalBody(body interface{}) ([]byte, error) {
	if body == nil {
		return nil, nil
	}

	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshaling request body: %w", err)
	}

	return data, nil
}

func (c *Client) logRequest(method, requestURL string) {
	if c.debug && c.logger != nil {
		c.logger.Debug("API Request", map[string]interface{}{
			"method": method,
			"url":    requestURL,
		})
	}
}

func (c *Client) logResponse(method, requestURL string, statusCode int) {
	if c.debug && c.logger != nil {
		c.logger.Debug("API Response", map[string]interface{}{
			"method":      method,
			"url":         requestURL,
			"status_code": statusCode,
		})
	}
}

func (c *Client) logRetry(method, requestURL string, attempt int, reason string) {
	if c.logger != nil {
		c.logger.Warn("Retrying request", map[string]interface{}{
			"method":  method,
			"url":     requestURL,
			"attempt": attempt + 1,
			"reason":  reason,
		})
	}
}
