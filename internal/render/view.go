package render

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/Nazarious-ucu/weather-forecast-app/internal/models"
)

const todayLabel = "Today"

// CurrentPanel is the current-conditions block, already formatted for display.
type CurrentPanel struct {
	Location    string
	Temperature string
	Condition   string
	Description string
	Emoji       string
	FeelsLike   string
	Humidity    string
	WindSpeed   string
	WindDir     string
	Pressure    string
	Visibility  string
	Sunrise     string
	Sunset      string
}

// DayPanel is one entry of the five-day strip.
type DayPanel struct {
	Label       string
	Temperature string
	Description string
	Emoji       string
	High        string
	Low         string
}

type View struct {
	Current CurrentPanel
	Days    []DayPanel
}

// NewView decodes the envelope and formats it. Times are shown in loc.
func NewView(env models.WeatherEnvelope, loc *time.Location) (View, error) {
	if loc == nil {
		loc = time.Local
	}

	var current models.CurrentConditions
	if err := json.Unmarshal(env.Current, &current); err != nil {
		return View{}, fmt.Errorf("decode current conditions: %w", err)
	}
	var forecast models.Forecast
	if err := json.Unmarshal(env.Forecast, &forecast); err != nil {
		return View{}, fmt.Errorf("decode forecast: %w", err)
	}

	view := View{Current: currentPanel(current, loc)}
	for i, entry := range DailyForecast(forecast.List) {
		cond := entry.PrimaryCondition()
		label := FormatDate(entry.Dt, loc)
		if i == 0 {
			label = todayLabel
		}
		view.Days = append(view.Days, DayPanel{
			Label:       label,
			Temperature: RoundTemp(entry.Main.Temp),
			Description: cond.Description,
			Emoji:       Emoji(cond.Main),
			High:        strconv.Itoa(Round(entry.Main.TempMax)) + "°",
			Low:         strconv.Itoa(Round(entry.Main.TempMin)) + "°",
		})
	}
	return view, nil
}

func currentPanel(c models.CurrentConditions, loc *time.Location) CurrentPanel {
	var description string
	if len(c.Weather) > 0 {
		description = c.Weather[0].Description
	}
	condition := c.PrimaryCondition()

	return CurrentPanel{
		Location:    locationLine(c),
		Temperature: RoundTemp(c.Main.Temp),
		Condition:   condition,
		Description: description,
		Emoji:       Emoji(condition),
		FeelsLike:   RoundTemp(c.Main.FeelsLike),
		Humidity:    strconv.Itoa(c.Main.Humidity) + "%",
		WindSpeed:   strconv.FormatFloat(c.Wind.Speed, 'f', -1, 64) + " m/s",
		WindDir:     fmt.Sprintf("%s (%s°)", WindDirection(c.Wind.Deg), strconv.FormatFloat(c.Wind.Deg, 'f', -1, 64)),
		Pressure:    strconv.Itoa(c.Main.Pressure) + " hPa",
		Visibility:  Visibility(c.Visibility),
		Sunrise:     FormatTime(c.Sys.Sunrise, loc),
		Sunset:      FormatTime(c.Sys.Sunset, loc),
	}
}

func locationLine(c models.CurrentConditions) string {
	line := c.Name + ", " + c.Sys.Country
	if c.Coord != nil {
		line += fmt.Sprintf(" (%.4f, %.4f)", c.Coord.Lat, c.Coord.Lon)
	}
	return line
}
