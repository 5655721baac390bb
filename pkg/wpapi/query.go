package wpapi

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/pressflow-io/wpapi/internal/constants"
)

// ListParams represents query parameters for fetch operations.
type ListParams struct {
	// Context selects the response field visibility ("view" or "edit").
	// Defaults to "view".
	Context string
	// Page selects a result page. When zero, the page parameter is omitted
	// entirely: the remote API distinguishes an absent page parameter from
	// page=1.
	Page int
	// PerPage is the page length. Defaults to 10.
	PerPage int
	// Search is an optional full-text search term.
	Search string
	// Filters holds additional endpoint-specific parameters, for example
	// "status" or "orderby". Multiple values are comma-joined.
	Filters map[string][]string
}

// NewListParams creates an empty ListParams.
func NewListParams() *ListParams {
	return &ListParams{}
}

// WithContext sets the request context.
func (p *ListParams) WithContext(requestContext string) *ListParams {
	p.Context = requestContext

	return p
}

// WithPage sets the page number.
func (p *ListParams) WithPage(page int) *ListParams {
	p.Page = page

	return p
}

// WithPerPage sets the page length.
func (p *ListParams) WithPerPage(perPage int) *ListParams {
	p.PerPage = perPage

	return p
}

// WithFilter adds an endpoint-specific parameter.
func (p *ListParams) WithFilter(key string, values ...string) *ListParams {
	if p.Filters == nil {
		p.Filters = make(map[string][]string)
	}

	p.Filters[key] = values

	return p
}

// ToValues converts the params to url.Values for the outbound request. A nil
// receiver yields the defaults: context=view, per_page=10, no page.
func (p *ListParams) ToValues() url.Values {
	values := url.Values{}

	requestContext := ContextView
	perPage := constants.DefaultPageLength

	if p != nil {
		if p.Context != "" {
			requestContext = p.Context
		}

		if p.PerPage > 0 {
			perPage = p.PerPage
		}

		if p.Page > 0 {
			values.Set("page", strconv.Itoa(p.Page))
		}

		if p.Search != "" {
			values.Set("search", p.Search)
		}

		for key, vals := range p.Filters {
			if len(vals) > 0 {
				values.Set(key, strings.Join(vals, ","))
			}
		}
	}

	values.Set("context", requestContext)
	values.Set("per_page", strconv.Itoa(perPage))

	return values
}
