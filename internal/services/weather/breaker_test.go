package weather_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Nazarious-ucu/weather-forecast-app/internal/models"
	"github.com/Nazarious-ucu/weather-forecast-app/internal/services/weather"
)

var breakerCfg = weather.BreakerConfig{
	TimeInterval: 30 * time.Second,
	TimeTimeOut:  15 * time.Second,
	RepeatNumber: 5,
}

const breakerName = "TestAPI"

func TestBreakerClient_Success(t *testing.T) {
	wrapped := &mockClient{}
	q := models.NameQuery("Lviv")

	wrapped.On("Current", mock.Anything, q).Return(currentDoc, nil).Once()

	bc := weather.NewBreakerClient(breakerName, breakerCfg, wrapped)

	data, err := bc.Current(context.Background(), q)
	assert.NoError(t, err)
	assert.Equal(t, currentDoc, data)

	wrapped.AssertExpectations(t)
}

func TestBreakerClient_TripCircuitAfterFiveFailures(t *testing.T) {
	wrapped := &mockClient{}
	q := models.NameQuery("Lviv")
	upstreamErr := &weather.UpstreamError{Op: "current", StatusCode: http.StatusServiceUnavailable}

	wrapped.On("Current", mock.Anything, q).Return(nil, upstreamErr).Times(5)

	bc := weather.NewBreakerClient(breakerName, breakerCfg, wrapped)

	for i := 1; i <= 5; i++ {
		_, err := bc.Current(context.Background(), q)
		require.Error(t, err, "call #%d should error before trip", i)
		assert.Equal(t, weather.KindUpstream, weather.Classify(err))
	}
	assert.Equal(t, gobreaker.StateOpen, bc.State())

	_, err := bc.Current(context.Background(), q)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "circuit breaker is open")
	assert.Equal(t, weather.KindUpstreamTransport, weather.Classify(err))

	wrapped.AssertExpectations(t)
	wrapped.AssertNumberOfCalls(t, "Current", 5)
}

func TestBreakerClient_NotFoundDoesNotTrip(t *testing.T) {
	wrapped := &mockClient{}
	q := models.NameQuery("Atlantis")
	notFound := &weather.UpstreamError{Op: "current", StatusCode: http.StatusNotFound}

	wrapped.On("Current", mock.Anything, q).Return(nil, notFound).Times(10)

	bc := weather.NewBreakerClient(breakerName, breakerCfg, wrapped)

	for i := 0; i < 10; i++ {
		_, err := bc.Current(context.Background(), q)
		require.Error(t, err)
		assert.Equal(t, weather.KindUpstreamNotFound, weather.Classify(err))
	}
	assert.Equal(t, gobreaker.StateClosed, bc.State())
	wrapped.AssertNumberOfCalls(t, "Current", 10)
}

func TestBreakerClient_Reverse(t *testing.T) {
	wrapped := &mockClient{}
	names := []models.LocationName{{Name: "Lviv"}}
	wrapped.On("Reverse", mock.Anything, 49.84, 24.03, 5).Return(names, nil).Once()

	bc := weather.NewBreakerClient(breakerName, breakerCfg, wrapped)

	got, err := bc.Reverse(context.Background(), 49.84, 24.03, 5)
	require.NoError(t, err)
	assert.Equal(t, names, got)
	wrapped.AssertExpectations(t)
}
