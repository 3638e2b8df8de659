package client_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nazarious-ucu/weather-forecast-app/internal/client"
)

func newRelayServer(t *testing.T, handler http.HandlerFunc) *client.RelayClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return client.NewRelayClient(srv.Client(), srv.URL+"/", zerolog.Nop())
}

func TestRelayClient_FetchByName(t *testing.T) {
	var gotPath string
	rc := newRelayServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"current":{"name":"New York"},"forecast":{"list":[]}}`))
	})

	env, err := rc.FetchByName(context.Background(), "New York/Manhattan")
	require.NoError(t, err)
	assert.Equal(t, "/api/weather/New%20York%2FManhattan", gotPath)
	assert.JSONEq(t, `{"name":"New York"}`, string(env.Current))
}

func TestRelayClient_FetchByCoords(t *testing.T) {
	var gotPath string
	rc := newRelayServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{"current":{},"forecast":{}}`))
	})

	_, err := rc.FetchByCoords(context.Background(), 51.5074, -0.1278)
	require.NoError(t, err)
	assert.Equal(t, "/api/weather/coords/51.5074/-0.1278", gotPath)
}

func TestRelayClient_ErrorStatus(t *testing.T) {
	rc := newRelayServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"City not found. Please check the spelling and try again.","details":"city not found"}`))
	})

	_, err := rc.FetchByName(context.Background(), "Atlantis")
	require.Error(t, err)

	var relayErr *client.RelayError
	require.True(t, errors.As(err, &relayErr))
	assert.Equal(t, http.StatusInternalServerError, relayErr.Status)
	assert.Equal(t, "city not found", relayErr.Body.Details)
}

func TestRelayClient_IncompleteEnvelope(t *testing.T) {
	rc := newRelayServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"current":{"name":"London"}}`))
	})

	_, err := rc.FetchByName(context.Background(), "London")
	assert.Error(t, err)
}
