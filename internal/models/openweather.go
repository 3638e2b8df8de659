package models

// Read-only views over the provider payload carried inside WeatherEnvelope.
// The relay never decodes into these; only the presentation side does.

type Condition struct {
	ID          int    `json:"id"`
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type MainReadings struct {
	Temp      float64 `json:"temp"`
	FeelsLike float64 `json:"feels_like"`
	TempMin   float64 `json:"temp_min"`
	TempMax   float64 `json:"temp_max"`
	Pressure  int     `json:"pressure"`
	Humidity  int     `json:"humidity"`
}

type Wind struct {
	Speed float64 `json:"speed"`
	Deg   float64 `json:"deg"`
}

type Coord struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type CurrentConditions struct {
	Name       string       `json:"name"`
	Coord      *Coord       `json:"coord,omitempty"`
	Weather    []Condition  `json:"weather"`
	Main       MainReadings `json:"main"`
	Visibility int          `json:"visibility"`
	Wind       Wind         `json:"wind"`
	Sys        struct {
		Country string `json:"country"`
		Sunrise int64  `json:"sunrise"`
		Sunset  int64  `json:"sunset"`
	} `json:"sys"`
	Dt int64 `json:"dt"`
}

// PrimaryCondition returns weather[0].main, or "" when the provider sent no conditions.
func (c CurrentConditions) PrimaryCondition() string {
	if len(c.Weather) == 0 {
		return ""
	}
	return c.Weather[0].Main
}

type ForecastEntry struct {
	Dt      int64        `json:"dt"`
	Main    MainReadings `json:"main"`
	Weather []Condition  `json:"weather"`
	DtTxt   string       `json:"dt_txt"`
}

func (f ForecastEntry) PrimaryCondition() Condition {
	if len(f.Weather) == 0 {
		return Condition{}
	}
	return f.Weather[0]
}

type Forecast struct {
	Cnt  int             `json:"cnt"`
	List []ForecastEntry `json:"list"`
}
