package render

import (
	"fmt"
	"io"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Nazarious-ucu/weather-forecast-app/internal/models"
)

// Text writes the client state as plain text.
type Text struct {
	w     io.Writer
	loc   *time.Location
	title cases.Caser
}

func NewText(w io.Writer, loc *time.Location) *Text {
	if loc == nil {
		loc = time.Local
	}
	return &Text{w: w, loc: loc, title: cases.Title(language.English)}
}

func (t *Text) Render(st models.UIState) error {
	var b strings.Builder

	fmt.Fprintf(&b, "Weather Forecast [%s]\n", st.BackgroundTheme)
	if st.Loading {
		b.WriteString("Loading...\n")
	}
	if st.Error != "" {
		fmt.Fprintf(&b, "Error: %s\n", st.Error)
	}
	if info := st.LocationInfo; info != nil {
		fmt.Fprintf(&b, "Detected Coordinates:\n  Latitude: %v\n  Longitude: %v\n  Source: %s\n",
			info.Lat, info.Lon, info.Source)
	}

	if st.WeatherData != nil {
		view, err := NewView(*st.WeatherData, t.loc)
		if err != nil {
			return err
		}
		t.writeView(&b, view)
	}

	_, err := io.WriteString(t.w, b.String())
	return err
}

func (t *Text) writeView(b *strings.Builder, v View) {
	c := v.Current
	fmt.Fprintf(b, "\n%s  %s\n", c.Temperature, c.Location)
	fmt.Fprintf(b, "%s %s\n", c.Emoji, t.title.String(c.Description))
	fmt.Fprintf(b, "Feels like %s\n", c.FeelsLike)
	fmt.Fprintf(b, "Humidity:   %s\n", c.Humidity)
	fmt.Fprintf(b, "Wind:       %s %s\n", c.WindSpeed, c.WindDir)
	fmt.Fprintf(b, "Pressure:   %s\n", c.Pressure)
	fmt.Fprintf(b, "Visibility: %s\n", c.Visibility)
	fmt.Fprintf(b, "Sunrise:    %s\n", c.Sunrise)
	fmt.Fprintf(b, "Sunset:     %s\n", c.Sunset)

	if len(v.Days) == 0 {
		return
	}
	b.WriteString("\n5-Day Forecast\n")
	for _, d := range v.Days {
		fmt.Fprintf(b, "  %-12s %s %5s  %s  (H %s L %s)\n",
			d.Label, d.Emoji, d.Temperature, t.title.String(d.Description), d.High, d.Low)
	}
}
