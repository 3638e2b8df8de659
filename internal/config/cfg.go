package config

import (
	"strings"

	"github.com/kelseyhightower/envconfig"
)

type Server struct {
	Port        string `envconfig:"PORT" default:"5000"`
	ReadTimeout int    `envconfig:"SERVER_TIMEOUT" default:"10"`
}

type OpenWeatherMap struct {
	APIKey string `envconfig:"WEATHER_API_KEY"`
	URL    string `envconfig:"OPEN_WEATHER_MAP_URL" default:"https://api.openweathermap.org/data/2.5"`
	GeoURL string `envconfig:"OPEN_WEATHER_GEO_URL" default:"http://api.openweathermap.org/geo/1.0"`
}

type Breaker struct {
	Enabled      bool   `envconfig:"BREAKER_ENABLED" default:"false"`
	TimeInterval int    `envconfig:"BREAKER_INTERVAL" default:"30"`
	TimeTimeOut  int    `envconfig:"BREAKER_TIMEOUT" default:"10"`
	RepeatNumber uint32 `envconfig:"BREAKER_REPEAT_NUM" default:"5"`
}

type Cors struct {
	AllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`
}

type Config struct {
	OpenWeatherMap OpenWeatherMap
	Server         Server
	Breaker        Breaker
	Cors           Cors

	LogsPath     string `envconfig:"LOGS_PATH" default:"./log/weather-forecast-api.log"`
	HTTPLogsPath string `envconfig:"HTTP_LOGS_PATH" default:"./log/upstream-http.log"`
}

func NewConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c Config) ServerAddress() string {
	if strings.Contains(c.Server.Port, ":") {
		return c.Server.Port
	}
	return ":" + c.Server.Port
}

// ClientConfig configures the presentation client binary.
type ClientConfig struct {
	RelayURL string   `envconfig:"RELAY_URL" default:"http://localhost:5000"`
	Lat      *float64 `envconfig:"CLIENT_LAT"`
	Lon      *float64 `envconfig:"CLIENT_LON"`
	Timezone string   `envconfig:"CLIENT_TIMEZONE" default:"Local"`
}

func NewClientConfig() (*ClientConfig, error) {
	var cfg ClientConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// HasPosition reports whether a fixed device position was configured.
func (c ClientConfig) HasPosition() bool {
	return c.Lat != nil && c.Lon != nil
}
