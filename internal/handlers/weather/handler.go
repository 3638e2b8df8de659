package weather

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/Nazarious-ucu/weather-forecast-app/internal/models"
	serviceWeather "github.com/Nazarious-ucu/weather-forecast-app/internal/services/weather"
)

const (
	msgKeyNotConfigured       = "API key not configured. Please add your OpenWeatherMap API key to the .env file."
	msgKeyNotConfiguredShort  = "API key not configured"
	msgInvalidKey             = "Invalid API key. Please check your OpenWeatherMap API key."
	msgCityNotFound           = "City not found. Please check the spelling and try again."
	msgFetchFailed            = "Failed to fetch weather data"
	msgLocationNameFailed     = "Failed to get location name"
	msgServerRunning          = "Server is running"
	msgKeyNotSet              = "Not set"
	apiKeyPreviewLength       = 8
	apiKeyPreviewEllipsis     = "..."
	msgInvalidLatParameter    = "invalid lat parameter"
	msgInvalidLonParameter    = "invalid lon parameter"
	msgLocationParamMandatory = "location path parameter is required"
)

type weatherGetterService interface {
	FetchByName(ctx context.Context, name string) (models.WeatherEnvelope, error)
	FetchByCoords(ctx context.Context, lat, lon float64) (models.WeatherEnvelope, error)
	ReverseGeocode(ctx context.Context, lat, lon float64) ([]models.LocationName, error)
}

// Handler exposes the relay over HTTP.
type Handler struct {
	service weatherGetterService
	apiKey  func() string
	logger  zerolog.Logger
}

// NewHandler wires the relay service. apiKey returns the configured credential for diagnostics.
func NewHandler(svc weatherGetterService, apiKey func() string, logger zerolog.Logger) *Handler {
	return &Handler{service: svc, apiKey: apiKey, logger: logger}
}

// GetWeather
// @Summary Get current weather and forecast by location name
// @Description Returns the provider's current conditions and 5 day / 3 hour forecast for a free-text location
// @Tags weather
// @Produce json
// @Param location path string true "City name, forwarded verbatim"
// @Success 200 {object} models.WeatherEnvelope
// @Failure 400 {object} models.ErrorBody
// @Failure 500 {object} models.ErrorBody
// @Router /weather/{location} [get]
func (h *Handler) GetWeather(c *gin.Context) {
	location := c.Param("location")
	if location == "" {
		c.JSON(http.StatusBadRequest, models.ErrorBody{Error: msgLocationParamMandatory})
		return
	}

	h.logger.Info().
		Str("location", location).
		Msg("fetching weather for location")

	data, err := h.service.FetchByName(c.Request.Context(), location)
	if err != nil {
		h.writeWeatherError(c, err)
		return
	}

	c.JSON(http.StatusOK, data)
}

// GetWeatherByCoords
// @Summary Get current weather and forecast by coordinates
// @Tags weather
// @Produce json
// @Param lat path number true "Latitude"
// @Param lon path number true "Longitude"
// @Success 200 {object} models.WeatherEnvelope
// @Failure 400 {object} models.ErrorBody
// @Failure 500 {object} models.ErrorBody
// @Router /weather/coords/{lat}/{lon} [get]
func (h *Handler) GetWeatherByCoords(c *gin.Context) {
	lat, lon, ok := parseCoords(c)
	if !ok {
		return
	}

	h.logger.Info().
		Float64("lat", lat).
		Float64("lon", lon).
		Msg("fetching weather for coordinates")

	data, err := h.service.FetchByCoords(c.Request.Context(), lat, lon)
	if err != nil {
		h.writeWeatherError(c, err)
		return
	}

	c.JSON(http.StatusOK, data)
}

// GetLocationName
// @Summary Reverse geocode coordinates
// @Description Best-effort lookup of up to five place names for the coordinates
// @Tags location
// @Produce json
// @Param lat path number true "Latitude"
// @Param lon path number true "Longitude"
// @Success 200 {array} models.LocationName
// @Failure 400 {object} models.ErrorBody
// @Failure 500 {object} models.ErrorBody
// @Router /location/{lat}/{lon} [get]
func (h *Handler) GetLocationName(c *gin.Context) {
	lat, lon, ok := parseCoords(c)
	if !ok {
		return
	}

	names, err := h.service.ReverseGeocode(c.Request.Context(), lat, lon)
	if err != nil {
		if serviceWeather.Classify(err) == serviceWeather.KindConfig {
			c.JSON(http.StatusBadRequest, models.ErrorBody{Error: msgKeyNotConfiguredShort})
			return
		}
		h.logger.Error().Err(err).Msg("geocoding error")
		c.JSON(http.StatusInternalServerError, models.ErrorBody{Error: msgLocationNameFailed})
		return
	}
	if names == nil {
		names = []models.LocationName{}
	}

	c.JSON(http.StatusOK, names)
}

// GetDiagnostics
// @Summary Report whether the provider credential is configured
// @Tags diagnostics
// @Produce json
// @Success 200 {object} models.Diagnostics
// @Router /test [get]
func (h *Handler) GetDiagnostics(c *gin.Context) {
	key := h.apiKey()
	c.JSON(http.StatusOK, models.Diagnostics{
		Message:          msgServerRunning,
		APIKeyConfigured: serviceWeather.KeyUsable(key),
		APIKeyPreview:    keyPreview(key),
	})
}

// writeWeatherError maps a classified relay error onto the wire.
// Provider auth and not-found failures are reported as 500.
func (h *Handler) writeWeatherError(c *gin.Context, err error) {
	kind := serviceWeather.Classify(err)

	if kind == serviceWeather.KindConfig {
		c.JSON(http.StatusBadRequest, models.ErrorBody{Error: msgKeyNotConfigured})
		return
	}

	h.logger.Error().
		Err(err).
		Str("kind", kind.String()).
		Msg("weather API error")

	message := msgFetchFailed
	switch kind {
	case serviceWeather.KindUpstreamAuth:
		message = msgInvalidKey
	case serviceWeather.KindUpstreamNotFound:
		message = msgCityNotFound
	}

	c.JSON(http.StatusInternalServerError, models.ErrorBody{
		Error:   message,
		Details: serviceWeather.Details(err),
	})
}

func parseCoords(c *gin.Context) (float64, float64, bool) {
	lat, err := strconv.ParseFloat(c.Param("lat"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorBody{Error: msgInvalidLatParameter})
		return 0, 0, false
	}
	lon, err := strconv.ParseFloat(c.Param("lon"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorBody{Error: msgInvalidLonParameter})
		return 0, 0, false
	}
	return lat, lon, true
}

func keyPreview(key string) string {
	if key == "" {
		return msgKeyNotSet
	}
	if len(key) > apiKeyPreviewLength {
		key = key[:apiKeyPreviewLength]
	}
	return key + apiKeyPreviewEllipsis
}
