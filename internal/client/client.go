// Package client implements the pluvo.Client interface.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/wendbv/pluvo-go/internal/auth"
	"github.com/wendbv/pluvo-go/internal/http"
	"github.com/wendbv/pluvo-go/pkg/pluvo"
)

// Client implements the pluvo.Client interface.
type Client struct {
	httpClient   *http.Client
	tokenManager auth.TokenManager
	baseURL      string
	logger       pluvo.Logger
	pageSize     int

	// Resource clients
	courses       pluvo.CoursesClient
	users         pluvo.UsersClient
	organisations pluvo.OrganisationsClient
	media         pluvo.MediaClient
}

// New creates a new Pluvo API client.
func New(ctx context.Context, config *pluvo.Config) (*Client, error) {
	if config.APIURL == "" {
		return nil, pluvo.ErrAPIURLRequired
	}

	tokenManager := createTokenManager(config)
	httpOpts := createHTTPClientOptions(config)
	httpClient := http.NewClient(config.APIURL, tokenManager, httpOpts...)

	pageSize := config.PageSize
	if pageSize <= 0 {
		pageSize = pluvo.DefaultPageSize
	}

	client := &Client{
		httpClient:   httpClient,
		tokenManager: tokenManager,
		baseURL:      config.APIURL,
		logger:       config.Logger,
		pageSize:     pageSize,
	}

	client.initializeResourceClients()

	return client, nil
}

// createTokenManager creates the appropriate token manager based on config.
func createTokenManager(config *pluvo.Config) auth.TokenManager {
	if config.Token != "" {
		return &staticTokenManager{token: config.Token}
	}

	if config.ClientID != "" && config.ClientSecret != "" {
		return auth.NewOAuth2TokenManager(&auth.OAuth2Config{
			TokenURL:     getTokenURL(config),
			ClientID:     config.ClientID,
			ClientSecret: config.ClientSecret,
		})
	}

	return nil // No authentication
}

// getTokenURL returns the token URL from config or the API default.
func getTokenURL(config *pluvo.Config) string {
	if config.TokenURL != "" {
		return config.TokenURL
	}

	return config.APIURL + "/oauth/token"
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *pluvo.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(&loggerAdapter{logger: config.Logger}))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithHTTPTimeout(config.HTTPTimeout))
	}

	// RetryMax zero keeps the transport default; negative disables retries.
	if config.RetryMax != 0 {
		retryMax := config.RetryMax
		if retryMax < 0 {
			retryMax = 0
		}

		retryWaitMin := 1 * time.Second
		retryWaitMax := 10 * time.Second

		if config.RetryWaitMin > 0 {
			retryWaitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			retryWaitMax = config.RetryWaitMax
		}

		httpOpts = append(httpOpts, http.WithRetryConfig(retryMax, retryWaitMin, retryWaitMax))
	}

	return httpOpts
}

// GetTokenManager returns the token manager for this client.
func (c *Client) GetTokenManager() auth.TokenManager {
	return c.tokenManager
}

// GetToken returns the current access token from the token manager.
func (c *Client) GetToken(ctx context.Context) (string, error) {
	if c.tokenManager == nil {
		return "", pluvo.ErrNoTokenManagerConfigured
	}

	token, err := c.tokenManager.GetToken(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to get token: %w", err)
	}

	return token, nil
}

// GetVersion implements pluvo.Client.GetVersion.
func (c *Client) GetVersion(ctx context.Context) (*pluvo.Version, error) {
	resp, err := c.httpClient.Get(ctx, "/version/", nil)
	if err != nil {
		return nil, fmt.Errorf("getting version: %w", err)
	}

	var version pluvo.Version

	err = json.Unmarshal(resp.Body, &version)
	if err != nil {
		return nil, fmt.Errorf("parsing version response: %w", err)
	}

	return &version, nil
}

// Resource client accessors

// Courses implements pluvo.Client.Courses.
func (c *Client) Courses() pluvo.CoursesClient {
	return c.courses
}

// Users implements pluvo.Client.Users.
func (c *Client) Users() pluvo.UsersClient {
	return c.users
}

// Organisations implements pluvo.Client.Organisations.
func (c *Client) Organisations() pluvo.OrganisationsClient {
	return c.organisations
}

// Media implements pluvo.Client.Media.
func (c *Client) Media() pluvo.MediaClient {
	return c.media
}

// initializeResourceClients initializes all resource-specific clients.
func (c *Client) initializeResourceClients() {
	c.courses = NewCoursesClient(c.httpClient, c.pageSize)
	c.users = NewUsersClient(c.httpClient, c.pageSize)
	c.organisations = NewOrganisationsClient(c.httpClient)
	c.media = NewMediaClient(c.httpClient)
}

// staticTokenManager provides a static token.
type staticTokenManager struct {
	token string
}

func (m *staticTokenManager) GetToken(ctx context.Context) (string, error) {
	return m.token, nil
}

func (m *staticTokenManager) RefreshToken(ctx context.Context) error {
	return pluvo.ErrStaticTokenCannotRefresh
}

func (m *staticTokenManager) SetToken(token string, expiresAt time.Time) {
	m.token = token
}

// loggerAdapter adapts pluvo.Logger to http's logger option.
type loggerAdapter struct {
	logger pluvo.Logger
}

func (l *loggerAdapter) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug(msg, fields)
}

func (l *loggerAdapter) Info(msg string, fields map[string]interface{}) {
	l.logger.Info(msg, fields)
}

func (l *loggerAdapter) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn(msg, fields)
}

func (l *loggerAdapter) Error(msg string, fields map[string]interface{}) {
	l.logger.Error(msg, fields)
}
