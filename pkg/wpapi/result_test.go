package wpapi_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pressflow-io/wpapi/pkg/wpapi"
)

func TestResult_Accessors(t *testing.T) {
	t.Parallel()

	header := http.Header{}
	header.Set("X-WP-Total", "42")
	header.Set("X-WP-TotalPages", "5")
	header.Set("Allow", "GET, POST")

	body := []byte(`{"id": 7, "title": {"rendered": "Hello"}, "status": "publish"}`)
	result := wpapi.NewResult(200, header, body)

	assert.Equal(t, 200, result.StatusCode())
	assert.Equal(t, body, result.Bytes())

	m := result.Map()
	require.NotNil(t, m)
	assert.EqualValues(t, 7, m["id"])
	assert.Equal(t, "publish", m["status"])

	assert.Equal(t, "Hello", result.Get("title.rendered").String())
	assert.Equal(t, int64(7), result.Get("id").Int())

	var decoded struct {
		ID     int    `json:"id"`
		Status string `json:"status"`
	}
	require.NoError(t, result.Into(&decoded))
	assert.Equal(t, 7, decoded.ID)
	assert.Equal(t, "publish", decoded.Status)

	page := result.Page()
	assert.Equal(t, 42, page.Total)
	assert.Equal(t, 5, page.TotalPages)
	assert.Equal(t, []string{"GET", "POST"}, page.Allow)
}

func TestResult_ListBody(t *testing.T) {
	t.Parallel()

	result := wpapi.NewResult(200, nil, []byte(`[{"id": 1}, {"id": 2}]`))

	items := result.Slice()
	require.Len(t, items, 2)

	assert.Nil(t, result.Map())
	assert.Equal(t, int64(2), result.Get("1.id").Int())
}

func TestResult_ZeroValueIsSafe(t *testing.T) {
	t.Parallel()

	var empty wpapi.Result

	assert.Equal(t, 0, empty.StatusCode())
	assert.Nil(t, empty.Bytes())
	assert.Nil(t, empty.Map())
	assert.Nil(t, empty.Slice())
	assert.False(t, empty.Get("id").Exists())
	assert.Equal(t, wpapi.PageInfo{}, empty.Page())

	var v interface{}
	assert.NoError(t, empty.Into(&v))
	assert.Nil(t, v)
}

func TestResult_NilPointerIsSafe(t *testing.T) {
	t.Parallel()

	var result *wpapi.Result

	assert.Equal(t, 0, result.StatusCode())
	assert.Nil(t, result.Bytes())
	assert.Nil(t, result.Map())
	assert.Equal(t, wpapi.PageInfo{}, result.Page())
}

func TestPageInfoFromHeader(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		headers  map[string]string
		expected wpapi.PageInfo
	}{
		{
			name: "all headers present",
			headers: map[string]string{
				"X-WP-Total":      "120",
				"X-WP-TotalPages": "12",
				"Allow":           "GET, POST, PUT, DELETE",
			},
			expected: wpapi.PageInfo{
				Total:      120,
				TotalPages: 12,
				Allow:      []string{"GET", "POST", "PUT", "DELETE"},
			},
		},
		{
			name:     "no headers",
			headers:  nil,
			expected: wpapi.PageInfo{},
		},
		{
			name: "malformed totals are ignored",
			headers: map[string]string{
				"X-WP-Total":      "many",
				"X-WP-TotalPages": "",
			},
			expected: wpapi.PageInfo{},
		},
		{
			name: "single allow method",
			headers: map[string]string{
				"Allow": "GET",
			},
			expected: wpapi.PageInfo{Allow: []string{"GET"}},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			header := http.Header{}
			for key, value := range testCase.headers {
				header.Set(key, value)
			}

			assert.Equal(t, testCase.expected, wpapi.PageInfoFromHeader(header))
		})
	}
}
