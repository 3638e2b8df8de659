package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/Nazarious-ucu/weather-forecast-app/internal/models"
)

// RelayError is a non-200 answer from the relay.
type RelayError struct {
	Status int
	Body   models.ErrorBody
}

func (e *RelayError) Error() string {
	if e.Body.Details != "" {
		return fmt.Sprintf("relay status %d: %s (%s)", e.Status, e.Body.Error, e.Body.Details)
	}
	return fmt.Sprintf("relay status %d: %s", e.Status, e.Body.Error)
}

// RelayClient calls the weather relay over HTTP.
type RelayClient struct {
	client  *http.Client
	baseURL string
	logger  zerolog.Logger
}

func NewRelayClient(client *http.Client, baseURL string, logger zerolog.Logger) *RelayClient {
	return &RelayClient{client: client, baseURL: strings.TrimRight(baseURL, "/"), logger: logger}
}

// FetchByName requests the envelope for a free-text location. The name is sent as one path segment.
func (r *RelayClient) FetchByName(ctx context.Context, name string) (models.WeatherEnvelope, error) {
	return r.fetch(ctx, "/api/weather/"+url.PathEscape(name))
}

func (r *RelayClient) FetchByCoords(ctx context.Context, lat, lon float64) (models.WeatherEnvelope, error) {
	return r.fetch(ctx, "/api/weather/coords/"+models.FormatCoord(lat)+"/"+models.FormatCoord(lon))
}

func (r *RelayClient) fetch(ctx context.Context, path string) (models.WeatherEnvelope, error) {
	start := time.Now()

	r.logger.Debug().
		Str("path", path).
		Msg("calling weather relay")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.baseURL+path, nil)
	if err != nil {
		return models.WeatherEnvelope{}, fmt.Errorf("build relay request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("path", path).
			Msg("relay request failed")
		return models.WeatherEnvelope{}, fmt.Errorf("relay request: %w", err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			r.logger.Error().Err(cerr).Msg("failed to close relay response body")
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return models.WeatherEnvelope{}, fmt.Errorf("read relay response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		relayErr := &RelayError{Status: resp.StatusCode}
		_ = json.Unmarshal(body, &relayErr.Body)

		r.logger.Warn().
			Int("status", resp.StatusCode).
			Str("error", relayErr.Body.Error).
			Str("path", path).
			Msg("relay returned an error")
		return models.WeatherEnvelope{}, relayErr
	}

	var env models.WeatherEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return models.WeatherEnvelope{}, fmt.Errorf("decode relay response: %w", err)
	}
	if !env.Complete() {
		return models.WeatherEnvelope{}, fmt.Errorf("relay returned an incomplete envelope")
	}

	r.logger.Info().
		Str("path", path).
		Dur("duration_ms", time.Since(start)).
		Msg("relay request succeeded")

	return env, nil
}
