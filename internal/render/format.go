package render

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/Nazarious-ucu/weather-forecast-app/internal/models"
)

const (
	entriesPerDay = 8
	maxDays       = 5
)

var compassPoints = [...]string{
	"N", "NNE", "NE", "ENE", "E", "ESE", "SE", "SSE",
	"S", "SSW", "SW", "WSW", "W", "WNW", "NW", "NNW",
}

// DailyForecast keeps one 3-hour entry per day: indices 0, 8, 16 and so on, at most five.
func DailyForecast(list []models.ForecastEntry) []models.ForecastEntry {
	days := make([]models.ForecastEntry, 0, maxDays)
	for i := 0; i < len(list) && len(days) < maxDays; i += entriesPerDay {
		days = append(days, list[i])
	}
	return days
}

// Round rounds half up, so -2.5 becomes -2.
func Round(x float64) int {
	return int(math.Floor(x + 0.5))
}

// RoundTemp renders a temperature as whole degrees Celsius.
func RoundTemp(celsius float64) string {
	return strconv.Itoa(Round(celsius)) + "°C"
}

// WindDirection maps degrees onto the 16-point compass rose.
func WindDirection(deg float64) string {
	idx := Round(deg/22.5) % len(compassPoints)
	if idx < 0 {
		idx += len(compassPoints)
	}
	return compassPoints[idx]
}

func FormatDate(unix int64, loc *time.Location) string {
	return time.Unix(unix, 0).In(loc).Format("Mon, Jan 2")
}

func FormatTime(unix int64, loc *time.Location) string {
	return time.Unix(unix, 0).In(loc).Format("03:04 PM")
}

// Visibility converts metres to kilometres with one decimal.
func Visibility(metres int) string {
	return fmt.Sprintf("%.1f km", float64(metres)/1000)
}
