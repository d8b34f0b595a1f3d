package client

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/wendbv/pluvo-go/internal/http"
	"github.com/wendbv/pluvo-go/pkg/pluvo"
)

// listPageFunc binds a listing endpoint and filter set to a pluvo.PageFunc.
// The sequence owns the limit and offset of each request, overriding the
// caller's values; the caller's filters are carried on every page.
func listPageFunc[T any](httpClient *http.Client, path string, params *pluvo.ListParams) pluvo.PageFunc[T] {
	return func(ctx context.Context, limit, offset int) (*pluvo.Page[T], error) {
		query := params.ToValues()
		query.Set("limit", strconv.Itoa(limit))
		query.Set("offset", strconv.Itoa(offset))

		resp, err := httpClient.Get(ctx, path, query)
		if err != nil {
			return nil, fmt.Errorf("listing %s: %w", path, err)
		}

		var page pluvo.Page[T]

		err = json.Unmarshal(resp.Body, &page)
		if err != nil {
			return nil, fmt.Errorf("parsing list response: %w", err)
		}

		return &page, nil
	}
}
