package weather

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Nazarious-ucu/weather-forecast-app/internal/models"
)

type metricsCollector interface {
	ObserveLatency(operation string, duration time.Duration)
	IncrementCounter(metric string, labels ...string)
}

// MetricsDecorator records latency and outcome of every provider call.
type MetricsDecorator struct {
	next      Client
	collector metricsCollector
}

func NewMetricsDecorator(next Client, collector metricsCollector) *MetricsDecorator {
	return &MetricsDecorator{next: next, collector: collector}
}

func (m *MetricsDecorator) Current(ctx context.Context, q models.LocationQuery) (json.RawMessage, error) {
	start := time.Now()
	data, err := m.next.Current(ctx, q)
	m.observe(opCurrent, time.Since(start), err)
	return data, err
}

func (m *MetricsDecorator) Forecast(ctx context.Context, q models.LocationQuery) (json.RawMessage, error) {
	start := time.Now()
	data, err := m.next.Forecast(ctx, q)
	m.observe(opForecast, time.Since(start), err)
	return data, err
}

func (m *MetricsDecorator) Reverse(ctx context.Context, lat, lon float64, limit int) ([]models.LocationName, error) {
	start := time.Now()
	names, err := m.next.Reverse(ctx, lat, lon, limit)
	m.observe(opReverse, time.Since(start), err)
	return names, err
}

func (m *MetricsDecorator) observe(op string, d time.Duration, err error) {
	m.collector.ObserveLatency(op, d)
	if err != nil {
		m.collector.IncrementCounter(op, Classify(err).String())
		return
	}
	m.collector.IncrementCounter(op, "success")
}
