package auth_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pressflow-io/wpapi/internal/auth"
	"github.com/pressflow-io/wpapi/pkg/wpapi"
)

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestFromConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		config    *wpapi.Config
		wantErr   error
		wantToken bool
	}{
		{
			name: "complete token credentials",
			config: &wpapi.Config{
				ClientKey:    "key",
				ClientSecret: "secret",
				AccessToken:  "token",
				AccessSecret: "token-secret",
			},
			wantToken: true,
		},
		{
			name: "complete basic credentials",
			config: &wpapi.Config{
				Username: "admin",
				Password: "hunter2",
			},
		},
		{
			name:    "no credentials",
			config:  &wpapi.Config{},
			wantErr: wpapi.ErrNoCredentials,
		},
		{
			name: "both variants populated",
			config: &wpapi.Config{
				ClientKey:    "key",
				ClientSecret: "secret",
				AccessToken:  "token",
				AccessSecret: "token-secret",
				Username:     "admin",
				Password:     "hunter2",
			},
			wantErr: wpapi.ErrAmbiguousCredentials,
		},
		{
			name: "partial token overlapping basic",
			config: &wpapi.Config{
				ClientKey: "key",
				Username:  "admin",
				Password:  "hunter2",
			},
			wantErr: wpapi.ErrAmbiguousCredentials,
		},
		{
			name: "incomplete token credentials",
			config: &wpapi.Config{
				ClientKey:    "key",
				ClientSecret: "secret",
			},
			wantErr: wpapi.ErrIncompleteTokenCredentials,
		},
		{
			name: "token missing access secret",
			config: &wpapi.Config{
				ClientKey:    "key",
				ClientSecret: "secret",
				AccessToken:  "token",
			},
			wantErr: wpapi.ErrIncompleteTokenCredentials,
		},
		{
			name: "username without password",
			config: &wpapi.Config{
				Username: "admin",
			},
			wantErr: wpapi.ErrIncompleteBasicCredentials,
		},
		{
			name: "password without username",
			config: &wpapi.Config{
				Password: "hunter2",
			},
			wantErr: wpapi.ErrIncompleteBasicCredentials,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			authenticator, err := auth.FromConfig(testCase.config)

			if testCase.wantErr != nil {
				require.ErrorIs(t, err, testCase.wantErr)
				assert.Nil(t, authenticator)

				return
			}

			require.NoError(t, err)
			require.NotNil(t, authenticator)

			if testCase.wantToken {
				assert.IsType(t, &auth.TokenAuth{}, authenticator)
			} else {
				assert.IsType(t, &auth.BasicAuth{}, authenticator)
			}
		})
	}
}

func TestBasicAuth_Wrap(t *testing.T) {
	t.Parallel()

	t.Run("sets the authorization header", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			username, password, ok := request.BasicAuth()
			assert.True(t, ok)
			assert.Equal(t, "admin", username)
			assert.Equal(t, "hunter2", password)
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		authenticator := &auth.BasicAuth{Username: "admin", Password: "hunter2"}
		client := authenticator.Wrap(&http.Client{Timeout: 5 * time.Second})

		resp, err := client.Get(server.URL)
		require.NoError(t, err)

		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("does not mutate the original request", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		authenticator := &auth.BasicAuth{Username: "admin", Password: "hunter2"}
		client := authenticator.Wrap(&http.Client{})

		req, err := http.NewRequest(http.MethodGet, server.URL, nil)
		require.NoError(t, err)

		resp, err := client.Do(req)
		require.NoError(t, err)

		defer func() { _ = resp.Body.Close() }()
		assert.Empty(t, req.Header.Get("Authorization"))
	})

	t.Run("preserves the base timeout", func(t *testing.T) {
		t.Parallel()

		authenticator := &auth.BasicAuth{Username: "admin", Password: "hunter2"}
		client := authenticator.Wrap(&http.Client{Timeout: 42 * time.Second})
		assert.Equal(t, 42*time.Second, client.Timeout)
	})
}

func TestTokenAuth_Wrap(t *testing.T) {
	t.Parallel()

	t.Run("signs requests with a fresh nonce per send", func(t *testing.T) {
		t.Parallel()

		var nonces []string

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			header := request.Header.Get("Authorization")
			assert.True(t, strings.HasPrefix(header, "OAuth "))
			assert.Contains(t, header, `oauth_consumer_key="key"`)
			assert.Contains(t, header, `oauth_token="token"`)
			assert.Contains(t, header, "oauth_signature=")

			for _, part := range strings.Split(header, ", ") {
				if strings.HasPrefix(part, "oauth_nonce=") {
					nonces = append(nonces, part)
				}
			}

			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		authenticator := auth.NewTokenAuth("key", "secret", "token", "token-secret")
		client := authenticator.Wrap(&http.Client{Timeout: 5 * time.Second})

		for range 2 {
			resp, err := client.Get(server.URL)
			require.NoError(t, err)

			_ = resp.Body.Close()
		}

		require.Len(t, nonces, 2)
		assert.NotEqual(t, nonces[0], nonces[1])
	})

	t.Run("preserves the base timeout", func(t *testing.T) {
		t.Parallel()

		authenticator := auth.NewTokenAuth("key", "secret", "token", "token-secret")
		client := authenticator.Wrap(&http.Client{Timeout: 42 * time.Second})
		assert.Equal(t, 42*time.Second, client.Timeout)
	})
}
