package render_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Nazarious-ucu/weather-forecast-app/internal/render"
)

func TestBackgroundTheme(t *testing.T) {
	testCases := []struct {
		condition string
		want      string
	}{
		{"Clear", "weather-clear"},
		{"broken clouds", "weather-clouds"},
		{"Light rain", "weather-rain"},
		{"Drizzle", "weather-rain"},
		{"Snow", "weather-snow"},
		{"Thunderstorm", "weather-thunderstorm"},
		{"Mist", "weather-mist"},
		{"Fog", "weather-mist"},
		{"Haze", "weather-mist"},
		{"N/A", "bg-clear-sky"},
		{"", "bg-clear-sky"},
		{"Tornado", "bg-clear-sky"},
	}

	for _, tc := range testCases {
		t.Run(tc.condition, func(t *testing.T) {
			assert.Equal(t, tc.want, render.BackgroundTheme(tc.condition))
		})
	}
}

func TestEmoji(t *testing.T) {
	assert.Equal(t, "☀️", render.Emoji("Clear"))
	assert.Equal(t, "☁️", render.Emoji("Clouds"))
	assert.Equal(t, "🌧️", render.Emoji("light rain"))
	assert.Equal(t, "❄️", render.Emoji("Snow"))
	assert.Equal(t, "⛈️", render.Emoji("Thunderstorm"))
	assert.Equal(t, "🌫️", render.Emoji("Haze"))
	assert.Equal(t, "🌤️", render.Emoji("Drizzle"))
	assert.Equal(t, "🌤️", render.Emoji("Squall"))
}
