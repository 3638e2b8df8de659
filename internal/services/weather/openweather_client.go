package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/Nazarious-ucu/weather-forecast-app/internal/models"
)

const (
	opCurrent  = "current"
	opForecast = "forecast"
	opReverse  = "reverse"

	unitsMetric  = "metric"
	reverseLimit = 5
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// providerError is the error body OpenWeatherMap sends with non-200 responses.
type providerError struct {
	Message string `json:"message"`
}

// ClientOpenWeatherMap talks to the OpenWeatherMap data and geocoding APIs.
type ClientOpenWeatherMap struct {
	APIKey string
	apiURL string
	geoURL string
	client HTTPClient
	logger zerolog.Logger
}

// NewClientOpenWeatherMap constructs a new OpenWeatherMap client.
// apiURL is the data API root (…/data/2.5), geoURL the geocoding root (…/geo/1.0).
func NewClientOpenWeatherMap(apiKey, apiURL, geoURL string,
	httpClient HTTPClient, logger zerolog.Logger,
) *ClientOpenWeatherMap {
	return &ClientOpenWeatherMap{APIKey: apiKey, apiURL: apiURL, geoURL: geoURL, client: httpClient, logger: logger}
}

// Current returns the raw current-conditions document for the query.
func (s *ClientOpenWeatherMap) Current(ctx context.Context, q models.LocationQuery) (json.RawMessage, error) {
	return s.fetchData(ctx, opCurrent, s.apiURL+"/weather", q)
}

// Forecast returns the raw 5 day / 3 hour forecast document for the query.
func (s *ClientOpenWeatherMap) Forecast(ctx context.Context, q models.LocationQuery) (json.RawMessage, error) {
	return s.fetchData(ctx, opForecast, s.apiURL+"/forecast", q)
}

// Reverse resolves coordinates to at most limit place names.
func (s *ClientOpenWeatherMap) Reverse(ctx context.Context, lat, lon float64, limit int) ([]models.LocationName, error) {
	params := url.Values{}
	params.Set("lat", models.FormatCoord(lat))
	params.Set("lon", models.FormatCoord(lon))
	params.Set("limit", strconv.Itoa(limit))
	params.Set("appid", s.APIKey)

	body, err := s.get(ctx, opReverse, s.geoURL+"/reverse?"+params.Encode())
	if err != nil {
		return nil, err
	}

	var names []models.LocationName
	if err := json.Unmarshal(body, &names); err != nil {
		s.logger.Error().
			Err(err).
			Str("op", opReverse).
			Msg("failed to decode reverse geocoding response")
		return nil, &UpstreamError{Op: opReverse, Err: fmt.Errorf("decode: %w", err)}
	}
	return names, nil
}

func (s *ClientOpenWeatherMap) fetchData(
	ctx context.Context,
	op, endpoint string,
	q models.LocationQuery,
) (json.RawMessage, error) {
	params := q.Values()
	params.Set("appid", s.APIKey)
	params.Set("units", unitsMetric)

	body, err := s.get(ctx, op, endpoint+"?"+params.Encode())
	if err != nil {
		return nil, err
	}
	if !json.Valid(body) {
		s.logger.Error().
			Str("op", op).
			Str("query", q.String()).
			Msg("OpenWeatherMap returned a non-JSON body")
		return nil, &UpstreamError{Op: op, Err: fmt.Errorf("invalid JSON in %s response", op)}
	}
	return json.RawMessage(body), nil
}

func (s *ClientOpenWeatherMap) get(ctx context.Context, op, rawURL string) ([]byte, error) {
	start := time.Now()

	s.logger.Debug().
		Str("op", op).
		Msg("starting OpenWeatherMap request")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("op", op).
			Msg("failed to create HTTP request")
		return nil, &UpstreamError{Op: op, Err: err}
	}

	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("op", op).
			Msg("error sending HTTP request to OpenWeatherMap")
		return nil, &UpstreamError{Op: op, Err: err}
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			s.logger.Error().
				Err(cerr).
				Str("op", op).
				Msg("failed to close response body")
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("op", op).
			Msg("failed to read OpenWeatherMap response")
		return nil, &UpstreamError{Op: op, Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		var pe providerError
		_ = json.Unmarshal(body, &pe)

		s.logger.Error().
			Str("op", op).
			Int("status", resp.StatusCode).
			Str("message", pe.Message).
			Msg("OpenWeatherMap API returned non-200 status")
		return nil, &UpstreamError{Op: op, StatusCode: resp.StatusCode, Message: pe.Message}
	}

	s.logger.Info().
		Str("op", op).
		Dur("duration_ms", time.Since(start)).
		Msg("OpenWeatherMap request succeeded")

	return body, nil
}
