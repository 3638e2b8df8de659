package weather_test

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/Nazarious-ucu/weather-forecast-app/internal/models"
)

type mockHTTPClient struct {
	mock.Mock
}

func (m *mockHTTPClient) Do(req *http.Request) (*http.Response, error) {
	args := m.Called(req)
	resp, _ := args.Get(0).(*http.Response)
	return resp, args.Error(1)
}

type mockClient struct {
	mock.Mock
}

func (m *mockClient) Current(ctx context.Context, q models.LocationQuery) (json.RawMessage, error) {
	args := m.Called(ctx, q)
	data, _ := args.Get(0).(json.RawMessage)
	return data, args.Error(1)
}

func (m *mockClient) Forecast(ctx context.Context, q models.LocationQuery) (json.RawMessage, error) {
	args := m.Called(ctx, q)
	data, _ := args.Get(0).(json.RawMessage)
	return data, args.Error(1)
}

func (m *mockClient) Reverse(ctx context.Context, lat, lon float64, limit int) ([]models.LocationName, error) {
	args := m.Called(ctx, lat, lon, limit)
	names, _ := args.Get(0).([]models.LocationName)
	return names, args.Error(1)
}

type mockCollector struct {
	mock.Mock
}

func (m *mockCollector) ObserveLatency(operation string, duration time.Duration) {
	m.Called(operation, duration)
}

func (m *mockCollector) IncrementCounter(metric string, labels ...string) {
	args := []interface{}{metric}
	for _, l := range labels {
		args = append(args, l)
	}
	m.Called(args...)
}
