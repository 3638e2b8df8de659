package weather_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Nazarious-ucu/weather-forecast-app/internal/models"
	"github.com/Nazarious-ucu/weather-forecast-app/internal/services/weather"
)

func TestMetricsDecorator_Success(t *testing.T) {
	next := &mockClient{}
	coll := &mockCollector{}
	q := models.NameQuery("Odesa")

	next.On("Forecast", mock.Anything, q).Return(forecastDoc, nil).Once()
	coll.On("ObserveLatency", "forecast", mock.Anything).Once()
	coll.On("IncrementCounter", "forecast", "success").Once()

	d := weather.NewMetricsDecorator(next, coll)

	data, err := d.Forecast(context.Background(), q)
	assert.NoError(t, err)
	assert.Equal(t, forecastDoc, data)

	next.AssertExpectations(t)
	coll.AssertExpectations(t)
}

func TestMetricsDecorator_CountsErrorKind(t *testing.T) {
	next := &mockClient{}
	coll := &mockCollector{}
	q := models.NameQuery("Odesa")

	next.On("Current", mock.Anything, q).
		Return(nil, &weather.UpstreamError{StatusCode: http.StatusUnauthorized}).Once()
	coll.On("ObserveLatency", "current", mock.Anything).Once()
	coll.On("IncrementCounter", "current", "upstream_auth").Once()

	d := weather.NewMetricsDecorator(next, coll)

	_, err := d.Current(context.Background(), q)
	assert.Error(t, err)

	next.AssertExpectations(t)
	coll.AssertExpectations(t)
}
