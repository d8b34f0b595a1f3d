package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wendbv/pluvo-go/pkg/pluvo"
)

func TestMediaClient_S3UploadToken(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/media/s3_upload_token/", request.URL.Path)
		assert.Equal(t, "GET", request.Method)
		assert.Equal(t, "intro.mp4", request.URL.Query().Get("filename"))
		assert.Equal(t, "video", request.URL.Query().Get("media_type"))

		_ = json.NewEncoder(writer).Encode(pluvo.S3UploadToken{
			Token: "upload-token",
			URL:   "https://uploads.example.com/intro.mp4",
		})
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	token, err := client.Media().S3UploadToken(context.Background(), "intro.mp4", "video")
	require.NoError(t, err)
	assert.Equal(t, "upload-token", token.Token)
	assert.Equal(t, "https://uploads.example.com/intro.mp4", token.URL)
}
