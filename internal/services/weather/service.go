package weather

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/Nazarious-ucu/weather-forecast-app/internal/models"
)

// Client is the provider adapter the service relays to.
type Client interface {
	Current(ctx context.Context, q models.LocationQuery) (json.RawMessage, error)
	Forecast(ctx context.Context, q models.LocationQuery) (json.RawMessage, error)
	Reverse(ctx context.Context, lat, lon float64, limit int) ([]models.LocationName, error)
}

// credentialChecker reports whether a usable provider credential is configured.
type credentialChecker func() bool

// ServiceProvider relays location queries to the provider and merges both answers into one envelope.
type ServiceProvider struct {
	logger     zerolog.Logger
	client     Client
	configured credentialChecker
}

func NewService(logger zerolog.Logger, configured func() bool, cl Client) *ServiceProvider {
	return &ServiceProvider{logger: logger, client: cl, configured: configured}
}

func (s *ServiceProvider) FetchByName(ctx context.Context, name string) (models.WeatherEnvelope, error) {
	return s.fetch(ctx, models.NameQuery(name))
}

func (s *ServiceProvider) FetchByCoords(ctx context.Context, lat, lon float64) (models.WeatherEnvelope, error) {
	return s.fetch(ctx, models.CoordsQuery(lat, lon))
}

// ReverseGeocode is best-effort enrichment and independent of the weather calls.
func (s *ServiceProvider) ReverseGeocode(ctx context.Context, lat, lon float64) ([]models.LocationName, error) {
	if !s.configured() {
		s.logger.Warn().
			Ctx(ctx).
			Msg("reverse geocode rejected: credential not configured")
		return nil, ErrCredentialMissing
	}

	s.logger.Info().
		Ctx(ctx).
		Float64("lat", lat).
		Float64("lon", lon).
		Msg("getting location name for coordinates")

	names, err := s.client.Reverse(ctx, lat, lon, reverseLimit)
	if err != nil {
		s.logger.Error().
			Ctx(ctx).
			Err(err).
			Msg("reverse geocode failed")
		return nil, err
	}
	return names, nil
}

func (s *ServiceProvider) fetch(ctx context.Context, q models.LocationQuery) (models.WeatherEnvelope, error) {
	if !s.configured() {
		s.logger.Warn().
			Ctx(ctx).
			Str("query", q.String()).
			Msg("weather request rejected: credential not configured")
		return models.WeatherEnvelope{}, ErrCredentialMissing
	}

	s.logger.Info().
		Ctx(ctx).
		Str("query", q.String()).
		Bool("coords", q.IsCoords()).
		Msg("fetching weather")

	var current, forecast json.RawMessage
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		current, err = s.client.Current(gctx, q)
		return err
	})
	g.Go(func() error {
		var err error
		forecast, err = s.client.Forecast(gctx, q)
		return err
	})

	if err := g.Wait(); err != nil {
		s.logger.Error().
			Ctx(ctx).
			Str("query", q.String()).
			Str("kind", Classify(err).String()).
			Err(err).
			Msg("weather fetch failed")
		return models.WeatherEnvelope{}, err
	}

	env := models.WeatherEnvelope{Current: current, Forecast: forecast}
	if !env.Complete() {
		err := &UpstreamError{Op: "merge", Err: errIncompleteEnvelope}
		s.logger.Error().
			Ctx(ctx).
			Str("query", q.String()).
			Err(err).
			Msg("provider returned an empty document")
		return models.WeatherEnvelope{}, err
	}

	return env, nil
}
