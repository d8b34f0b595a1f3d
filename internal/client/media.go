package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/wendbv/pluvo-go/internal/http"
	"github.com/wendbv/pluvo-go/pkg/pluvo"
)

// MediaClient implements pluvo.MediaClient.
type MediaClient struct {
	httpClient *http.Client
}

// NewMediaClient creates a new media client.
func NewMediaClient(httpClient *http.Client) *MediaClient {
	return &MediaClient{httpClient: httpClient}
}

// S3UploadToken implements pluvo.MediaClient.S3UploadToken.
func (c *MediaClient) S3UploadToken(ctx context.Context, filename, mediaType string) (*pluvo.S3UploadToken, error) {
	query := url.Values{
		"filename":   []string{filename},
		"media_type": []string{mediaType},
	}

	resp, err := c.httpClient.Get(ctx, "/media/s3_upload_token/", query)
	if err != nil {
		return nil, fmt.Errorf("getting upload token: %w", err)
	}

	var token pluvo.S3UploadToken

	err = json.Unmarshal(resp.Body, &token)
	if err != nil {
		return nil, fmt.Errorf("parsing upload token response: %w", err)
	}

	return &token, nil
}
