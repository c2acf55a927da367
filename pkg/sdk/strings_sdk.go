package sdk

import (
	"context"
	"net/http"
	"net/url"
)

// CreateString analyzes and stores a value
func (c *Client) CreateString(ctx context.Context, value string) (*StringResponse, error) {
	var out StringResponse
	if err := c.doJSON(ctx, http.MethodPost, "/api/strings", CreateStringRequest{Value: value}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetString fetches a stored value
func (c *Client) GetString(ctx context.Context, value string) (*StringResponse, error) {
	var out StringResponse
	if err := c.doJSON(ctx, http.MethodGet, "/api/strings/"+url.PathEscape(value), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListStrings lists stored values matching the structured filters
func (c *Client) ListStrings(ctx context.Context, params ListParams) (*ListStringsResponse, error) {
	path := "/api/strings"
	if q := params.Values().Encode(); q != "" {
		path += "?" + q
	}

	var out ListStringsResponse
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// FilterByNaturalLanguage lists stored values matching an English query
func (c *Client) FilterByNaturalLanguage(ctx context.Context, query string) (*QueryResponse, error) {
	path := "/api/strings/filter-by-natural-language?" + url.Values{"query": {query}}.Encode()

	var out QueryResponse
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteString removes a stored value
func (c *Client) DeleteString(ctx context.Context, value string) error {
	return c.doJSON(ctx, http.MethodDelete, "/api/strings/"+url.PathEscape(value), nil, nil)
}
