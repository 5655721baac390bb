package wpapi

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/pressflow-io/wpapi/internal/constants"
)

// Request context values understood by the WordPress REST API. The context
// controls which fields the remote includes in responses.
const (
	ContextView = "view"
	ContextEdit = "edit"
)

// PageInfo carries pagination metadata extracted from response headers.
type PageInfo struct {
	// Total is the total number of records matching the request.
	Total int `json:"total"       yaml:"total"`
	// TotalPages is the number of pages at the requested page length.
	TotalPages int `json:"total_pages" yaml:"total_pages"`
	// Allow lists the HTTP methods permitted on the resource.
	Allow []string `json:"allow"       yaml:"allow"`
}

// PageInfoFromHeader extracts pagination metadata from the X-WP-Total,
// X-WP-TotalPages, and Allow headers. Missing or malformed headers yield
// zero values.
func PageInfoFromHeader(header http.Header) PageInfo {
	var info PageInfo

	if header == nil {
		return info
	}

	if v := header.Get(constants.HeaderTotal); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			info.Total = n
		}
	}

	if v := header.Get(constants.HeaderTotalPages); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			info.TotalPages = n
		}
	}

	if v := header.Get(constants.HeaderAllow); v != "" {
		parts := strings.Split(v, ",")
		info.Allow = make([]string, 0, len(parts))

		for _, p := range parts {
			if m := strings.TrimSpace(p); m != "" {
				info.Allow = append(info.Allow, m)
			}
		}
	}

	return info
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}
