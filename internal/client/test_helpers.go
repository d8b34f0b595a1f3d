package client

import (
	internalhttp "github.com/wendbv/pluvo-go/internal/http"
)

// newTestHTTPClient creates a bare transport for resource client tests.
func newTestHTTPClient(baseURL string) *internalhttp.Client {
	return internalhttp.NewClient(baseURL, nil)
}

// NewTestClient creates a new test client with the given base URL.
func NewTestClient(baseURL string) *Client {
	// Create HTTP client without token manager for testing
	httpClient := internalhttp.NewClient(baseURL, nil)

	client := &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		pageSize:   20,
	}

	// Initialize resource clients
	client.initializeResourceClients()

	return client
}
