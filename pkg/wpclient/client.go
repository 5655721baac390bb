// Package wpclient provides the main entry point for creating WordPress API clients
package wpclient

import (
	"fmt"
	"strings"

	"github.com/pressflow-io/wpapi/internal/client"
	"github.com/pressflow-io/wpapi/pkg/wpapi"
)

// New creates a new WordPress API client.
func New(config *wpapi.Config) (wpapi.Client, error) {
	if config == nil {
		return nil, wpapi.ErrConfigRequired
	}

	if config.Endpoint == "" {
		return nil, wpapi.ErrEndpointRequired
	}

	// Normalize endpoint. The caller's config is left untouched.
	endpoint := strings.TrimSuffix(config.Endpoint, "/")
	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "https://" + endpoint
	}

	normalized := *config
	normalized.Endpoint = endpoint

	wpClient, err := client.New(&normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return wpClient, nil
}

// NewWithBasicAuth creates a new client using username/password authentication.
func NewWithBasicAuth(endpoint, username, password string) (wpapi.Client, error) {
	return New(&wpapi.Config{
		Endpoint: endpoint,
		Username: username,
		Password: password,
	})
}

// NewWithToken creates a new client using OAuth1 token credentials.
func NewWithToken(endpoint, clientKey, clientSecret, accessToken, accessSecret string) (wpapi.Client, error) {
	return New(&wpapi.Config{
		Endpoint:     endpoint,
		ClientKey:    clientKey,
		ClientSecret: clientSecret,
		AccessToken:  accessToken,
		AccessSecret: accessSecret,
	})
}
