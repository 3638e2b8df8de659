package client

import (
	"context"
	"errors"
	"time"
)

// PositionOptions mirrors the knobs a device location request accepts.
type PositionOptions struct {
	EnableHighAccuracy bool
	Timeout            time.Duration
	MaximumAge         time.Duration
}

// DefaultPositionOptions asks for a fresh high-accuracy fix within ten seconds.
func DefaultPositionOptions() PositionOptions {
	return PositionOptions{
		EnableHighAccuracy: true,
		Timeout:            10 * time.Second,
		MaximumAge:         0,
	}
}

type Position struct {
	Lat    float64
	Lon    float64
	Source string
}

// Geolocator resolves the device position. A nil Geolocator means the platform has no location capability.
type Geolocator interface {
	Locate(ctx context.Context, opts PositionOptions) (Position, error)
}

// GeolocationError is the closed set of platform location failures.
type GeolocationError int

const (
	GeolocationUnknown GeolocationError = iota
	GeolocationPermissionDenied
	GeolocationPositionUnavailable
	GeolocationTimeout
)

func (e GeolocationError) Error() string {
	switch e {
	case GeolocationPermissionDenied:
		return "geolocation: permission denied"
	case GeolocationPositionUnavailable:
		return "geolocation: position unavailable"
	case GeolocationTimeout:
		return "geolocation: timeout"
	default:
		return "geolocation: unknown error"
	}
}

// Message is the user-facing sentence for the failure.
func (e GeolocationError) Message() string {
	switch e {
	case GeolocationPermissionDenied:
		return "Location access was denied."
	case GeolocationPositionUnavailable:
		return "Location information is unavailable."
	case GeolocationTimeout:
		return "Location request timed out."
	default:
		return "An unknown error occurred."
	}
}

var ErrGeolocationUnsupported = errors.New("geolocation not supported")

// classifyGeolocation narrows anything a Geolocator returns onto GeolocationError.
func classifyGeolocation(err error) GeolocationError {
	var ge GeolocationError
	if errors.As(err, &ge) {
		return ge
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return GeolocationTimeout
	}
	return GeolocationUnknown
}

const sourceStatic = "Static position"

// StaticLocator always reports the same coordinates.
type StaticLocator struct {
	Lat    float64
	Lon    float64
	Source string
}

func (s StaticLocator) Locate(ctx context.Context, _ PositionOptions) (Position, error) {
	if err := ctx.Err(); err != nil {
		return Position{}, err
	}
	source := s.Source
	if source == "" {
		source = sourceStatic
	}
	return Position{Lat: s.Lat, Lon: s.Lon, Source: source}, nil
}

// FuncLocator adapts a function to Geolocator.
type FuncLocator func(ctx context.Context, opts PositionOptions) (Position, error)

func (f FuncLocator) Locate(ctx context.Context, opts PositionOptions) (Position, error) {
	return f(ctx, opts)
}
