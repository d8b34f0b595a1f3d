package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/wendbv/pluvo-go/internal/constants"
)

// Static errors for err113 compliance.
var (
	ErrNoValidCredentials = errors.New("no valid credentials available")
	ErrEmptyTokenResponse = errors.New("token endpoint returned an empty access token")
)

// OAuth2Config configures the OAuth2 token manager.
type OAuth2Config struct {
	// TokenURL is the full token endpoint, e.g. "https://api.pluvo.co/api/oauth/token".
	TokenURL string
	// ClientID and ClientSecret are used for the client_credentials grant.
	ClientID     string
	ClientSecret string
	// RefreshToken, if set, is preferred over the client_credentials grant.
	RefreshToken string
	// AccessToken preloads the store with an existing token.
	AccessToken string
	// HTTPClient overrides the client used for token requests.
	HTTPClient *http.Client
}

// OAuth2TokenManager obtains and caches tokens from an OAuth2 token endpoint.
type OAuth2TokenManager struct {
	config     *OAuth2Config
	store      *TokenStore
	httpClient *http.Client
}

// NewOAuth2TokenManager creates a token manager for the given config.
func NewOAuth2TokenManager(config *OAuth2Config) *OAuth2TokenManager {
	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: constants.ShortHTTPTimeout}
	}

	manager := &OAuth2TokenManager{
		config:     config,
		store:      NewTokenStore(),
		httpClient: httpClient,
	}

	if config.AccessToken != "" {
		manager.store.Set(&Token{
			AccessToken: config.AccessToken,
			TokenType:   "bearer",
		})
	}

	return manager
}

// GetToken returns a valid access token, requesting a new one when the
// cached token is missing or expiring.
func (m *OAuth2TokenManager) GetToken(ctx context.Context) (string, error) {
	token := m.store.Get()
	if token.Valid() {
		return token.AccessToken, nil
	}

	err := m.RefreshToken(ctx)
	if err != nil {
		return "", err
	}

	return m.store.Get().AccessToken, nil
}

// RefreshToken forces a new token request. The refresh_token grant is
// preferred when a refresh token is known; otherwise the client_credentials
// grant is used.
func (m *OAuth2TokenManager) RefreshToken(ctx context.Context) error {
	refreshToken := m.config.RefreshToken
	if stored := m.store.Get(); stored != nil && stored.RefreshToken != "" {
		refreshToken = stored.RefreshToken
	}

	switch {
	case refreshToken != "":
		return m.requestToken(ctx, url.Values{
			"grant_type":    []string{"refresh_token"},
			"refresh_token": []string{refreshToken},
		})
	case m.config.ClientID != "" && m.config.ClientSecret != "":
		return m.requestToken(ctx, url.Values{
			"grant_type": []string{"client_credentials"},
		})
	default:
		return ErrNoValidCredentials
	}
}

// SetToken manually sets the access token.
func (m *OAuth2TokenManager) SetToken(token string, expiresAt time.Time) {
	m.store.Set(&Token{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresAt:   expiresAt,
	})
}

// NewClientCredentialsManager creates a token manager for the token endpoint
// derived from the API base URL.
func NewClientCredentialsManager(apiURL, clientID, clientSecret string) *OAuth2TokenManager {
	return NewOAuth2TokenManager(&OAuth2Config{
		TokenURL:     strings.TrimSuffix(apiURL, "/") + "/oauth/token",
		ClientID:     clientID,
		ClientSecret: clientSecret,
	})
}

// tokenEndpointError is the error payload of an OAuth2 token endpoint.
type tokenEndpointError struct {
	ErrorCode   string `json:"error"`
	Description string `json:"error_description"`
}

func (e *tokenEndpointError) Error() string {
	if e.Description == "" {
		return e.ErrorCode
	}

	return fmt.Sprintf("%s: %s", e.ErrorCode, e.Description)
}

// requestToken performs the token request and stores the response.
func (m *OAuth2TokenManager) requestToken(ctx context.Context, form url.Values) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.config.TokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("creating token request: %w", err)
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	if m.config.ClientID != "" {
		req.SetBasicAuth(m.config.ClientID, m.config.ClientSecret)
	}

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("requesting token: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading token response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		endpointErr := &tokenEndpointError{}
		if jsonErr := json.Unmarshal(body, endpointErr); jsonErr == nil && endpointErr.ErrorCode != "" {
			return fmt.Errorf("token request failed: %w", endpointErr)
		}

		return fmt.Errorf("token request failed: %w", &tokenEndpointError{
			ErrorCode:   http.StatusText(resp.StatusCode),
			Description: strings.TrimSpace(string(body)),
		})
	}

	var token Token

	err = json.Unmarshal(body, &token)
	if err != nil {
		return fmt.Errorf("parsing token response: %w", err)
	}

	if token.AccessToken == "" {
		return ErrEmptyTokenResponse
	}

	if token.ExpiresIn > 0 {
		token.ExpiresAt = time.Now().Add(time.Duration(token.ExpiresIn) * time.Second)
	}

	m.store.Set(&token)

	return nil
}
