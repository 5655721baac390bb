package wpapi

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/tidwall/gjson"
)

// Result holds the response of a successful operation. Each call returns its
// own Result value, so results from different calls never share state. The
// zero value behaves as "no data fetched yet": every accessor returns an
// empty value and never panics.
type Result struct {
	statusCode int
	body       []byte
	page       PageInfo
}

// NewResult builds a Result from a response. Pagination metadata is
// extracted from the response headers.
func NewResult(statusCode int, header http.Header, body []byte) *Result {
	return &Result{
		statusCode: statusCode,
		body:       body,
		page:       PageInfoFromHeader(header),
	}
}

// StatusCode returns the HTTP status of the response, or zero when no call
// has completed.
func (r *Result) StatusCode() int {
	if r == nil {
		return 0
	}

	return r.statusCode
}

// Bytes returns the raw response body.
func (r *Result) Bytes() []byte {
	if r == nil {
		return nil
	}

	return r.body
}

// Map returns the response body decoded as a generic mapping. It returns nil
// when the body is empty or is not a JSON object.
func (r *Result) Map() map[string]interface{} {
	if r == nil || len(r.body) == 0 {
		return nil
	}

	var m map[string]interface{}
	if err := json.Unmarshal(r.body, &m); err != nil {
		return nil
	}

	return m
}

// Slice returns the response body decoded as a generic list, the shape of
// collection responses. It returns nil when the body is empty or is not a
// JSON array.
func (r *Result) Slice() []interface{} {
	if r == nil || len(r.body) == 0 {
		return nil
	}

	var s []interface{}
	if err := json.Unmarshal(r.body, &s); err != nil {
		return nil
	}

	return s
}

// Get returns the value at a gjson path within the response body, for
// example "title.rendered" or "0.id".
func (r *Result) Get(path string) gjson.Result {
	if r == nil {
		return gjson.Result{}
	}

	return gjson.GetBytes(r.body, path)
}

// Into unmarshals the response body into v.
func (r *Result) Into(v interface{}) error {
	if r == nil || len(r.body) == 0 {
		return nil
	}

	if err := json.Unmarshal(r.body, v); err != nil {
		return fmt.Errorf("decoding response body: %w", err)
	}

	return nil
}

// Page returns the pagination metadata of the response.
func (r *Result) Page() PageInfo {
	if r == nil {
		return PageInfo{}
	}

	return r.page
}
