package weather_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Nazarious-ucu/weather-forecast-app/internal/services/weather"
)

func TestClassify(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		want weather.Kind
	}{
		{"nil", nil, weather.KindUnknown},
		{"credential", fmt.Errorf("wrapped: %w", weather.ErrCredentialMissing), weather.KindConfig},
		{"unauthorized", &weather.UpstreamError{StatusCode: http.StatusUnauthorized}, weather.KindUpstreamAuth},
		{"not found", &weather.UpstreamError{StatusCode: http.StatusNotFound}, weather.KindUpstreamNotFound},
		{"too many requests", &weather.UpstreamError{StatusCode: http.StatusTooManyRequests}, weather.KindUpstream},
		{"transport", &weather.UpstreamError{Err: context.DeadlineExceeded}, weather.KindUpstreamTransport},
		{"bare error", errors.New("boom"), weather.KindUpstreamTransport},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, weather.Classify(tc.err))
		})
	}
}

func TestDetails(t *testing.T) {
	assert.Equal(t, "city not found",
		weather.Details(&weather.UpstreamError{StatusCode: http.StatusNotFound, Message: "city not found"}))
	assert.Equal(t, "Request failed with status code 500",
		weather.Details(&weather.UpstreamError{StatusCode: http.StatusInternalServerError}))
	assert.Equal(t, "connection refused",
		weather.Details(&weather.UpstreamError{Op: "current", Err: errors.New("connection refused")}))
	assert.Equal(t, "", weather.Details(nil))
}

func TestKeyUsable(t *testing.T) {
	assert.False(t, weather.KeyUsable(""))
	assert.False(t, weather.KeyUsable(weather.PlaceholderAPIKey))
	assert.True(t, weather.KeyUsable("abcdef123456"))
}
