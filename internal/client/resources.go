package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/pressflow-io/wpapi/pkg/wpapi"
)

// ResourceClient implements wpapi.ResourceClient for a single collection.
type ResourceClient struct {
	client *Client
	path   string
}

// NewResourceClient creates a client bound to a collection path, for example
// "posts" or "categories".
func NewResourceClient(client *Client, path string) *ResourceClient {
	return &ResourceClient{
		client: client,
		path:   path,
	}
}

// List implements wpapi.ResourceClient.List.
func (r *ResourceClient) List(ctx context.Context, params *wpapi.ListParams) (*wpapi.Result, error) {
	return r.client.Fetch(ctx, r.path, params)
}

// Get implements wpapi.ResourceClient.Get. Single-item reads carry only the
// context parameter; pagination does not apply.
func (r *ResourceClient) Get(ctx context.Context, id int, requestContext string) (*wpapi.Result, error) {
	if requestContext == "" {
		requestContext = wpapi.ContextView
	}

	path := r.itemPath(id)

	resp, err := r.client.httpClient.Get(ctx, path, url.Values{"context": []string{requestContext}})
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", path, err)
	}

	return wpapi.NewResult(resp.StatusCode, resp.Headers, resp.Body), nil
}

// Create implements wpapi.ResourceClient.Create.
func (r *ResourceClient) Create(ctx context.Context, requestContext string, data map[string]interface{}) (*wpapi.Result, error) {
	return r.client.Create(ctx, r.path, requestContext, data)
}

// Update implements wpapi.ResourceClient.Update.
func (r *ResourceClient) Update(ctx context.Context, id int, requestContext string, data map[string]interface{}) (*wpapi.Result, error) {
	return r.client.Update(ctx, r.itemPath(id), requestContext, data)
}

// Delete implements wpapi.ResourceClient.Delete.
func (r *ResourceClient) Delete(ctx context.Context, id int, requestContext string, data map[string]interface{}) (*wpapi.Result, error) {
	return r.client.Delete(ctx, r.itemPath(id), requestContext, data)
}

func (r *ResourceClient) itemPath(id int) string {
	return fmt.Sprintf("%s/%d", r.path, id)
}
