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

func TestOrganisationsClient_Set(t *testing.T) {
	t.Parallel()
	t.Run("creates organisation without ID", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/organisation/", request.URL.Path)
			assert.Equal(t, "POST", request.Method)

			var organisation pluvo.Organisation

			_ = json.NewDecoder(request.Body).Decode(&organisation)
			assert.Equal(t, "Wend", organisation.Name)

			organisation.ID = 3
			writer.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(writer).Encode(organisation)
		}))
		defer server.Close()

		client := NewTestClient(server.URL)

		created, err := client.Organisations().Set(context.Background(), &pluvo.Organisation{Name: "Wend"})
		require.NoError(t, err)
		assert.Equal(t, 3, created.ID)
	})

	t.Run("updates organisation with ID", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/organisation/3/", request.URL.Path)
			assert.Equal(t, "PUT", request.Method)

			var organisation pluvo.Organisation

			_ = json.NewDecoder(request.Body).Decode(&organisation)
			_ = json.NewEncoder(writer).Encode(organisation)
		}))
		defer server.Close()

		client := NewTestClient(server.URL)

		updated, err := client.Organisations().Set(context.Background(), &pluvo.Organisation{ID: 3, Name: "Wend BV"})
		require.NoError(t, err)
		assert.Equal(t, "Wend BV", updated.Name)
	})
}
