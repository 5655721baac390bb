// Package auth resolves the configured authentication variant into a
// request-signing HTTP client.
package auth

import (
	"context"
	"net/http"

	"github.com/dghubble/oauth1"

	"github.com/pressflow-io/wpapi/pkg/wpapi"
)

// Authenticator wraps a base HTTP client so that requests sent through the
// returned client carry the configured credential.
type Authenticator interface {
	Wrap(base *http.Client) *http.Client
}

// FromConfig resolves the authentication variant from the populated
// credential fields. Exactly one variant must be fully populated; anything
// else is a configuration error.
func FromConfig(config *wpapi.Config) (Authenticator, error) {
	hasToken := config.ClientKey != "" || config.ClientSecret != "" ||
		config.AccessToken != "" || config.AccessSecret != ""
	hasBasic := config.Username != "" || config.Password != ""

	switch {
	case hasToken && hasBasic:
		return nil, wpapi.ErrAmbiguousCredentials
	case hasToken:
		if config.ClientKey == "" || config.ClientSecret == "" ||
			config.AccessToken == "" || config.AccessSecret == "" {
			return nil, wpapi.ErrIncompleteTokenCredentials
		}

		return NewTokenAuth(config.ClientKey, config.ClientSecret, config.AccessToken, config.AccessSecret), nil
	case hasBasic:
		if config.Username == "" || config.Password == "" {
			return nil, wpapi.ErrIncompleteBasicCredentials
		}

		return &BasicAuth{Username: config.Username, Password: config.Password}, nil
	default:
		return nil, wpapi.ErrNoCredentials
	}
}

// TokenAuth signs requests with OAuth1 using a consumer key/secret pair and
// an access token. The signing handshake itself is delegated to the oauth1
// package; each request is signed with a fresh nonce.
type TokenAuth struct {
	config *oauth1.Config
	token  *oauth1.Token
}

// NewTokenAuth creates a token authenticator from the credential set.
func NewTokenAuth(clientKey, clientSecret, accessToken, accessSecret string) *TokenAuth {
	return &TokenAuth{
		config: oauth1.NewConfig(clientKey, clientSecret),
		token:  oauth1.NewToken(accessToken, accessSecret),
	}
}

// Wrap returns a client whose transport signs requests before handing them
// to the base client.
func (a *TokenAuth) Wrap(base *http.Client) *http.Client {
	ctx := context.Background()
	if base != nil {
		ctx = context.WithValue(ctx, oauth1.HTTPClient, base)
	}

	signed := a.config.Client(ctx, a.token)
	if base != nil {
		signed.Timeout = base.Timeout
	}

	return signed
}

// BasicAuth attaches an Authorization: Basic header to every request.
type BasicAuth struct {
	Username string
	Password string
}

// Wrap returns a client whose transport sets the basic auth header.
func (a *BasicAuth) Wrap(base *http.Client) *http.Client {
	if base == nil {
		base = &http.Client{}
	}

	wrapped := *base
	wrapped.Transport = &basicAuthTransport{
		base:     base.Transport,
		username: a.Username,
		password: a.Password,
	}

	return &wrapped
}

type basicAuthTransport struct {
	base     http.RoundTripper
	username string
	password string
}

func (t *basicAuthTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}

	// Per RoundTripper contract the request is not mutated in place.
	signed := req.Clone(req.Context())
	signed.SetBasicAuth(t.username, t.password)

	return base.RoundTrip(signed)
}
