package pluvo

import (
	"net/url"
	"strconv"
)

// ListParams represents options for list endpoints. Limit and Offset window
// the listing the way the API does: Offset skips items, Limit caps how many
// items the sequence will produce in total. Zero values mean "not set", in
// which case the client's page size drives fetching and the full listing is
// produced. Filters carry endpoint-specific query parameters such as title or
// creation_date_from.
type ListParams struct {
	Limit   int
	Offset  int
	Filters map[string]string
}

// NewListParams creates an empty ListParams.
func NewListParams() *ListParams {
	return &ListParams{
		Filters: make(map[string]string),
	}
}

// WithLimit caps the total number of items produced.
func (p *ListParams) WithLimit(limit int) *ListParams {
	p.Limit = limit

	return p
}

// WithOffset skips the first offset items of the listing.
func (p *ListParams) WithOffset(offset int) *ListParams {
	p.Offset = offset

	return p
}

// WithFilter adds an endpoint-specific filter parameter.
func (p *ListParams) WithFilter(key, value string) *ListParams {
	if p.Filters == nil {
		p.Filters = make(map[string]string)
	}

	p.Filters[key] = value

	return p
}

// ToValues converts the params to url.Values.
func (p *ListParams) ToValues() url.Values {
	values := url.Values{}

	if p == nil {
		return values
	}

	if p.Limit > 0 {
		values.Set("limit", strconv.Itoa(p.Limit))
	}

	if p.Offset > 0 {
		values.Set("offset", strconv.Itoa(p.Offset))
	}

	for key, value := range p.Filters {
		if value != "" {
			values.Set(key, value)
		}
	}

	return values
}
