// Package pluvoclient provides the main entry point for creating Pluvo API clients
package pluvoclient

import (
	"context"
	"fmt"
	"strings"

	"github.com/wendbv/pluvo-go/internal/client"
	"github.com/wendbv/pluvo-go/pkg/pluvo"
)

// New creates a new Pluvo API client.
//
// The config must use at most one authentication method: either
// ClientID/ClientSecret together, or Token. With no credentials the client
// sends unauthenticated requests. An empty APIURL falls back to the
// production API.
func New(ctx context.Context, config *pluvo.Config) (pluvo.Client, error) {
	if config == nil {
		return nil, pluvo.ErrConfigRequired
	}

	if (config.ClientID == "") != (config.ClientSecret == "") {
		return nil, pluvo.ErrClientCredentialsIncomplete
	}

	if config.Token != "" && config.ClientID != "" {
		return nil, pluvo.ErrAmbiguousCredentials
	}

	// Normalize API URL
	apiURL := config.APIURL
	if apiURL == "" {
		apiURL = pluvo.DefaultAPIURL
	}

	apiURL = strings.TrimSuffix(apiURL, "/")
	if !strings.HasPrefix(apiURL, "http://") && !strings.HasPrefix(apiURL, "https://") {
		apiURL = "https://" + apiURL
	}

	config.APIURL = apiURL

	if config.TokenURL == "" {
		config.TokenURL = apiURL + "/oauth/token"
	}

	// Use the internal client implementation
	client, err := client.New(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return client, nil
}

// NewUnauthenticated creates a new client without credentials.
func NewUnauthenticated(ctx context.Context, apiURL string) (pluvo.Client, error) {
	return New(ctx, &pluvo.Config{
		APIURL: apiURL,
	})
}

// NewWithToken creates a new client with an existing access token.
func NewWithToken(ctx context.Context, apiURL, token string) (pluvo.Client, error) {
	return New(ctx, &pluvo.Config{
		APIURL: apiURL,
		Token:  token,
	})
}

// NewWithClientCredentials creates a new client using OAuth2 client credentials.
func NewWithClientCredentials(ctx context.Context, apiURL, clientID, clientSecret string) (pluvo.Client, error) {
	return New(ctx, &pluvo.Config{
		APIURL:       apiURL,
		ClientID:     clientID,
		ClientSecret: clientSecret,
	})
}
