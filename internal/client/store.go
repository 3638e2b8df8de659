package client

import (
	"context"
	"encoding/json"
	"errors"
	"slices"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/Nazarious-ucu/weather-forecast-app/internal/models"
	"github.com/Nazarious-ucu/weather-forecast-app/internal/render"
)

const (
	msgNameLookupFailed   = "Failed to fetch weather data. Please check the location and try again."
	msgCoordsLookupFailed = "Failed to fetch weather data for your location."
	msgLocatePrefix       = "Unable to retrieve your location. "
	msgLocateSuffix       = " Please enter a city manually."
	msgUnsupported        = "Geolocation is not supported by this browser."
)

type weatherRelay interface {
	FetchByName(ctx context.Context, name string) (models.WeatherEnvelope, error)
	FetchByCoords(ctx context.Context, lat, lon float64) (models.WeatherEnvelope, error)
}

// Store owns the presentation state. It changes only through its actions.
// A relay lookup requested while another one is loading is dropped.
type Store struct {
	relay   weatherRelay
	locator Geolocator
	opts    PositionOptions
	logger  zerolog.Logger

	mu        sync.Mutex
	state     models.UIState
	busy      bool
	listeners []func(models.UIState)
}

// NewStore builds a store in the idle state. A nil locator means geolocation is unsupported.
func NewStore(relay weatherRelay, locator Geolocator, logger zerolog.Logger) *Store {
	return &Store{
		relay:   relay,
		locator: locator,
		opts:    DefaultPositionOptions(),
		logger:  logger,
		state:   models.UIState{BackgroundTheme: render.DefaultTheme},
	}
}

// State returns a snapshot of the current state.
func (s *Store) State() models.UIState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// Subscribe registers fn to be called with a snapshot after every state change.
func (s *Store) Subscribe(fn func(models.UIState)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// Mount runs the automatic location detection a freshly opened client performs.
func (s *Store) Mount(ctx context.Context) {
	s.DetectCurrentLocation(ctx)
}

// SubmitLocationName looks up weather for manually entered text.
// Blank input is ignored without touching state.
func (s *Store) SubmitLocationName(ctx context.Context, input string) {
	name := strings.TrimSpace(input)
	if name == "" {
		return
	}
	if !s.acquire() {
		s.logger.Debug().Str("location", name).Msg("lookup already in flight, submission dropped")
		return
	}
	defer s.release()

	s.update(func(st *models.UIState) {
		st.Loading = true
		st.Error = ""
		st.LocationInfo = nil
	})

	env, err := s.relay.FetchByName(ctx, name)
	s.finish(env, err, msgNameLookupFailed)
}

// DetectCurrentLocation asks the device for its position and looks up weather there.
// The position request itself does not mark the store busy, so a manual submission can still run meanwhile.
func (s *Store) DetectCurrentLocation(ctx context.Context) {
	if s.locator == nil {
		s.setUnsupported()
		return
	}

	pos, err := s.locate(ctx)
	if err != nil {
		if errors.Is(err, ErrGeolocationUnsupported) {
			s.logger.Warn().Err(err).Msg("geolocation unavailable on this device")
			s.setUnsupported()
			return
		}
		gerr := classifyGeolocation(err)
		s.logger.Warn().Err(err).Str("kind", gerr.Error()).Msg("geolocation failed")
		s.update(func(st *models.UIState) {
			st.Error = msgLocatePrefix + gerr.Message() + msgLocateSuffix
		})
		return
	}

	s.logger.Info().
		Float64("lat", pos.Lat).
		Float64("lon", pos.Lon).
		Str("source", pos.Source).
		Msg("location detected")

	if !s.acquire() {
		s.logger.Debug().Msg("lookup already in flight, detected position dropped")
		return
	}
	defer s.release()

	s.update(func(st *models.UIState) {
		st.Loading = true
		st.Error = ""
		st.LocationInfo = &models.LocationInfo{Lat: pos.Lat, Lon: pos.Lon, Source: pos.Source}
	})

	env, err := s.relay.FetchByCoords(ctx, pos.Lat, pos.Lon)
	s.finish(env, err, msgCoordsLookupFailed)
}

func (s *Store) setUnsupported() {
	s.update(func(st *models.UIState) {
		st.Error = msgUnsupported
	})
}

func (s *Store) locate(ctx context.Context) (Position, error) {
	if s.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.opts.Timeout)
		defer cancel()
	}
	return s.locator.Locate(ctx, s.opts)
}

func (s *Store) finish(env models.WeatherEnvelope, err error, failure string) {
	if err != nil {
		s.logger.Error().Err(err).Msg("weather lookup failed")
		s.update(func(st *models.UIState) {
			st.Error = failure
			st.Loading = false
		})
		return
	}

	theme := render.BackgroundTheme(primaryCondition(env))
	s.update(func(st *models.UIState) {
		st.WeatherData = &env
		st.BackgroundTheme = theme
		st.Loading = false
	})
}

func primaryCondition(env models.WeatherEnvelope) string {
	var current models.CurrentConditions
	if err := json.Unmarshal(env.Current, &current); err != nil {
		return ""
	}
	return current.PrimaryCondition()
}

func (s *Store) acquire() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.busy {
		return false
	}
	s.busy = true
	return true
}

func (s *Store) release() {
	s.mu.Lock()
	s.busy = false
	s.mu.Unlock()
}

func (s *Store) update(fn func(*models.UIState)) {
	s.mu.Lock()
	fn(&s.state)
	snap := s.snapshot()
	listeners := append([]func(models.UIState){}, s.listeners...)
	s.mu.Unlock()

	for _, l := range listeners {
		l(snap)
	}
}

// snapshot deep-copies the pointed-to values so callers cannot mutate the store. Caller holds mu.
func (s *Store) snapshot() models.UIState {
	st := s.state
	if st.WeatherData != nil {
		st.WeatherData = &models.WeatherEnvelope{
			Current:  slices.Clone(st.WeatherData.Current),
			Forecast: slices.Clone(st.WeatherData.Forecast),
		}
	}
	if st.LocationInfo != nil {
		info := *st.LocationInfo
		st.LocationInfo = &info
	}
	return st
}
