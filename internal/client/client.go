// Package client implements the wpapi.Client interface over the HTTP
// pipeline.
package client

import (
	"context"
	"fmt"

	"github.com/pressflow-io/wpapi/internal/auth"
	"github.com/pressflow-io/wpapi/internal/constants"
	"github.com/pressflow-io/wpapi/internal/http"
	"github.com/pressflow-io/wpapi/pkg/wpapi"
)

// Client implements the wpapi.Client interface.
type Client struct {
	httpClient *http.Client
	logger     wpapi.Logger

	// Resource clients
	posts      wpapi.ResourceClient
	pages      wpapi.ResourceClient
	users      wpapi.ResourceClient
	media      wpapi.ResourceClient
	categories wpapi.ResourceClient
	tags       wpapi.ResourceClient
	comments   wpapi.ResourceClient
}

// New creates a new WordPress API client. The configuration must carry an
// endpoint and exactly one fully populated credential set.
func New(config *wpapi.Config) (*Client, error) {
	if config == nil {
		return nil, wpapi.ErrConfigRequired
	}

	if config.Endpoint == "" {
		return nil, wpapi.ErrEndpointRequired
	}

	authenticator, err := auth.FromConfig(config)
	if err != nil {
		return nil, err
	}

	httpClient := http.NewClient(config.Endpoint, authenticator, httpOptions(config)...)

	client := &Client{
		httpClient: httpClient,
		logger:     config.Logger,
	}

	client.initializeResourceClients()

	return client, nil
}

// httpOptions builds HTTP pipeline options from config.
func httpOptions(config *wpapi.Config) []http.Option {
	var opts []http.Option

	if config.Logger != nil {
		opts = append(opts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		opts = append(opts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		opts = append(opts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		opts = append(opts, http.WithTimeout(config.HTTPTimeout))
	}

	retryMax := constants.DefaultRetryMax
	if config.MaxRetries > 0 {
		retryMax = config.MaxRetries
	} else if config.MaxRetries < 0 {
		retryMax = 0
	}

	retryWaitMin := constants.DefaultRetryWaitMin
	if config.RetryWaitMin > 0 {
		retryWaitMin = config.RetryWaitMin
	}

	retryWaitMax := constants.DefaultRetryWaitMax
	if config.RetryWaitMax > 0 {
		retryWaitMax = config.RetryWaitMax
	}

	opts = append(opts, http.WithRetryConfig(retryMax, retryWaitMin, retryWaitMax))

	return opts
}

// Fetch implements wpapi.Client.Fetch.
func (c *Client) Fetch(ctx context.Context, path string, params *wpapi.ListParams) (*wpapi.Result, error) {
	resp, err := c.httpClient.Get(ctx, path, params.ToValues())
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", path, err)
	}

	return wpapi.NewResult(resp.StatusCode, resp.Headers, resp.Body), nil
}

// Create implements wpapi.Client.Create.
func (c *Client) Create(ctx context.Context, path, requestContext string, data map[string]interface{}) (*wpapi.Result, error) {
	resp, err := c.httpClient.Post(ctx, path, withContext(data, requestContext))
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", path, err)
	}

	return wpapi.NewResult(resp.StatusCode, resp.Headers, resp.Body), nil
}

// Update implements wpapi.Client.Update.
func (c *Client) Update(ctx context.Context, path, requestContext string, data map[string]interface{}) (*wpapi.Result, error) {
	resp, err := c.httpClient.Put(ctx, path, withContext(data, requestContext))
	if err != nil {
		return nil, fmt.Errorf("updating %s: %w", path, err)
	}

	return wpapi.NewResult(resp.StatusCode, resp.Headers, resp.Body), nil
}

// Delete implements wpapi.Client.Delete.
func (c *Client) Delete(ctx context.Context, path, requestContext string, data map[string]interface{}) (*wpapi.Result, error) {
	resp, err := c.httpClient.Delete(ctx, path, withContext(data, requestContext))
	if err != nil {
		return nil, fmt.Errorf("deleting %s: %w", path, err)
	}

	return wpapi.NewResult(resp.StatusCode, resp.Headers, resp.Body), nil
}

// withContext copies the data mapping and sets its "context" key from the
// explicit parameter, overwriting any caller-supplied value. The original
// mapping is never mutated.
func withContext(data map[string]interface{}, requestContext string) map[string]interface{} {
	if requestContext == "" {
		requestContext = wpapi.ContextView
	}

	body := make(map[string]interface{}, len(data)+1)
	for key, value := range data {
		body[key] = value
	}

	body["context"] = requestContext

	return body
}

// Resource client accessors

// Resource implements wpapi.Client.Resource.
func (c *Client) Resource(path string) wpapi.ResourceClient {
	return NewResourceClient(c, path)
}

// Posts implements wpapi.Client.Posts.
func (c *Client) Posts() wpapi.ResourceClient {
	return c.posts
}

// Pages implements wpapi.Client.Pages.
func (c *Client) Pages() wpapi.ResourceClient {
	return c.pages
}

// Users implements wpapi.Client.Users.
func (c *Client) Users() wpapi.ResourceClient {
	return c.users
}

// Media implements wpapi.Client.Media.
func (c *Client) Media() wpapi.ResourceClient {
	return c.media
}

// Categories implements wpapi.Client.Categories.
func (c *Client) Categories() wpapi.ResourceClient {
	return c.categories
}

// Tags implements wpapi.Client.Tags.
func (c *Client) Tags() wpapi.ResourceClient {
	return c.tags
}

// Comments implements wpapi.Client.Comments.
func (c *Client) Comments() wpapi.ResourceClient {
	return c.comments
}

// initializeResourceClients initializes the built-in collection clients.
func (c *Client) initializeResourceClients() {
	c.posts = NewResourceClient(c, "posts")
	c.pages = NewResourceClient(c, "pages")
	c.users = NewResourceClient(c, "users")
	c.media = NewResourceClient(c, "media")
	c.categories = NewResourceClient(c, "categories")
	c.tags = NewResourceClient(c, "tags")
	c.comments = NewResourceClient(c, "comments")
}
