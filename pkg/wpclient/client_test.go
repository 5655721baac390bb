package wpclient_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pressflow-io/wpapi/pkg/wpapi"
	"github.com/pressflow-io/wpapi/pkg/wpclient"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("nil config", func(t *testing.T) {
		t.Parallel()

		wpClient, err := wpclient.New(nil)
		require.ErrorIs(t, err, wpapi.ErrConfigRequired)
		assert.Nil(t, wpClient)
	})

	t.Run("missing endpoint", func(t *testing.T) {
		t.Parallel()

		wpClient, err := wpclient.New(&wpapi.Config{Username: "admin", Password: "hunter2"})
		require.ErrorIs(t, err, wpapi.ErrEndpointRequired)
		assert.Nil(t, wpClient)
	})

	t.Run("invalid credentials wrapped", func(t *testing.T) {
		t.Parallel()

		wpClient, err := wpclient.New(&wpapi.Config{Endpoint: "https://example.com/wp-json"})
		require.ErrorIs(t, err, wpapi.ErrNoCredentials)
		assert.Contains(t, err.Error(), "failed to create new client")
		assert.Nil(t, wpClient)
	})

	t.Run("endpoint normalization", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			name     string
			endpoint string
		}{
			{name: "bare host gets https", endpoint: "example.com/wp-json"},
			{name: "trailing slash stripped", endpoint: "https://example.com/wp-json/"},
			{name: "http preserved", endpoint: "http://localhost:8080/wp-json"},
		}

		for _, testCase := range tests {
			t.Run(testCase.name, func(t *testing.T) {
				t.Parallel()

				config := &wpapi.Config{
					Endpoint: testCase.endpoint,
					Username: "admin",
					Password: "hunter2",
				}

				wpClient, err := wpclient.New(config)
				require.NoError(t, err)
				require.NotNil(t, wpClient)

				// The caller's config is not mutated.
				assert.Equal(t, testCase.endpoint, config.Endpoint)
			})
		}
	})

	t.Run("trailing slash stripped before requests", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/posts", request.URL.Path)
			_, _ = writer.Write([]byte(`[]`))
		}))
		defer server.Close()

		config := &wpapi.Config{
			Endpoint: server.URL + "/",
			Username: "admin",
			Password: "hunter2",
		}

		wpClient, err := wpclient.New(config)
		require.NoError(t, err)

		_, err = wpClient.Posts().List(context.Background(), nil)
		require.NoError(t, err)
		assert.Equal(t, server.URL+"/", config.Endpoint)
	})
}

func TestNewWithBasicAuth(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		username, password, ok := request.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "admin", username)
		assert.Equal(t, "hunter2", password)
		_, _ = writer.Write([]byte(`[]`))
	}))
	defer server.Close()

	wpClient, err := wpclient.NewWithBasicAuth(server.URL, "admin", "hunter2")
	require.NoError(t, err)

	_, err = wpClient.Posts().List(context.Background(), nil)
	require.NoError(t, err)
}

func TestNewWithToken(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		header := request.Header.Get("Authorization")
		assert.Contains(t, header, "OAuth ")
		assert.Contains(t, header, `oauth_consumer_key="key"`)
		_, _ = writer.Write([]byte(`[]`))
	}))
	defer server.Close()

	wpClient, err := wpclient.NewWithToken(server.URL, "key", "secret", "token", "token-secret")
	require.NoError(t, err)

	_, err = wpClient.Posts().List(context.Background(), nil)
	require.NoError(t, err)
}

func TestNewWithToken_Incomplete(t *testing.T) {
	t.Parallel()

	wpClient, err := wpclient.NewWithToken("https://example.com/wp-json", "key", "secret", "", "")
	require.ErrorIs(t, err, wpapi.ErrIncompleteTokenCredentials)
	assert.Nil(t, wpClient)
}
