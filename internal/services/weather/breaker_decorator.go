package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/sony/gobreaker"

	"github.com/Nazarious-ucu/weather-forecast-app/internal/models"
)

type BreakerConfig struct {
	TimeInterval time.Duration
	TimeTimeOut  time.Duration
	RepeatNumber uint32
}

// BreakerClient stops calling the provider after RepeatNumber consecutive transport or 5xx failures.
// Rejected credentials and unknown locations never trip it.
type BreakerClient struct {
	name    string
	cb      *gobreaker.CircuitBreaker
	wrapped Client
}

func NewBreakerClient(name string, cfg BreakerConfig, wrapped Client) *BreakerClient {
	settings := gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Interval:    cfg.TimeInterval,
		Timeout:     cfg.TimeTimeOut,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.RepeatNumber
		},
		IsSuccessful: func(err error) bool {
			if err == nil {
				return true
			}
			switch Classify(err) {
			case KindUpstreamAuth, KindUpstreamNotFound:
				return true
			default:
				return errors.Is(err, context.Canceled)
			}
		},
	}
	return &BreakerClient{
		name:    name,
		cb:      gobreaker.NewCircuitBreaker(settings),
		wrapped: wrapped,
	}
}

func (b *BreakerClient) Current(ctx context.Context, q models.LocationQuery) (json.RawMessage, error) {
	return execute(b, func() (json.RawMessage, error) {
		return b.wrapped.Current(ctx, q)
	})
}

func (b *BreakerClient) Forecast(ctx context.Context, q models.LocationQuery) (json.RawMessage, error) {
	return execute(b, func() (json.RawMessage, error) {
		return b.wrapped.Forecast(ctx, q)
	})
}

func (b *BreakerClient) Reverse(ctx context.Context, lat, lon float64, limit int) ([]models.LocationName, error) {
	return execute(b, func() ([]models.LocationName, error) {
		return b.wrapped.Reverse(ctx, lat, lon, limit)
	})
}

func (b *BreakerClient) State() gobreaker.State {
	return b.cb.State()
}

func execute[T any](b *BreakerClient, call func() (T, error)) (T, error) {
	var zero T
	result, err := b.cb.Execute(func() (interface{}, error) {
		return call()
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return zero, &UpstreamError{Op: b.name, Err: fmt.Errorf("%s unavailable: %w", b.name, err)}
		}
		return zero, err
	}
	res, ok := result.(T)
	if !ok {
		return zero, &UpstreamError{Op: b.name, Err: fmt.Errorf("%s returned unexpected result", b.name)}
	}
	return res, nil
}
