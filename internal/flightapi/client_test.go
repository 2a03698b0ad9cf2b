package flightapi_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planequery/fleetsync/internal/flightapi"
	"github.com/planequery/fleetsync/pkg/errors"
)

func TestFetchFleet(t *testing.T) {
	t.Run("missing API key fails before the network call", func(t *testing.T) {
		client := flightapi.New("")

		_, err := client.FetchFleet(context.Background(), "DL")
		require.Error(t, err)
		assert.ErrorIs(t, err, errors.ErrAPIKeyRequired)
	})

	t.Run("fetches and decodes a fleet snapshot", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/airlines/DL/fleet", r.URL.Path)
			assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"records": [{"registration": "N123DL", "variant": "B738"}]}`))
		}))
		defer server.Close()

		client := flightapi.New("test-key", flightapi.WithBaseURL(server.URL))
		snapshot, err := client.FetchFleet(context.Background(), "DL")
		require.NoError(t, err)

		// The airline code is filled in when the API omits it
		assert.Equal(t, "DL", snapshot.Airline)
		require.Len(t, snapshot.Records, 1)
		assert.Equal(t, "N123DL", snapshot.Records[0].Registration)
	})

	t.Run("non-200 response is an API error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "nope", http.StatusForbidden)
		}))
		defer server.Close()

		client := flightapi.New("bad-key", flightapi.WithBaseURL(server.URL))
		_, err := client.FetchFleet(context.Background(), "DL")
		require.Error(t, err)

		var apiErr *errors.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusForbidden, apiErr.StatusCode)
	})

	t.Run("unparsable body is a parse error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"records": `))
		}))
		defer server.Close()

		client := flightapi.New("test-key", flightapi.WithBaseURL(server.URL))
		_, err := client.FetchFleet(context.Background(), "DL")
		require.Error(t, err)

		var parseErr *errors.ParseError
		assert.ErrorAs(t, err, &parseErr)
	})
}
