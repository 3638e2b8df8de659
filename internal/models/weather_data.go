package models

import (
	"encoding/json"
	"net/url"
	"strconv"
)

// LocationQuery is either a free-text location name or a coordinate pair.
type LocationQuery struct {
	Name string
	Lat  float64
	Lon  float64

	coords bool
}

func NameQuery(name string) LocationQuery {
	return LocationQuery{Name: name}
}

func CoordsQuery(lat, lon float64) LocationQuery {
	return LocationQuery{Lat: lat, Lon: lon, coords: true}
}

func (q LocationQuery) IsCoords() bool {
	return q.coords
}

// Values returns the provider query parameters identifying the location.
func (q LocationQuery) Values() url.Values {
	v := url.Values{}
	if q.coords {
		v.Set("lat", FormatCoord(q.Lat))
		v.Set("lon", FormatCoord(q.Lon))
		return v
	}
	v.Set("q", q.Name)
	return v
}

func (q LocationQuery) String() string {
	if q.coords {
		return FormatCoord(q.Lat) + "," + FormatCoord(q.Lon)
	}
	return q.Name
}

// FormatCoord renders a coordinate with the shortest representation that round-trips.
func FormatCoord(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// WeatherEnvelope is the merged current+forecast payload. Both parts are passed through untouched.
type WeatherEnvelope struct {
	Current  json.RawMessage `json:"current" swaggertype:"object"`
	Forecast json.RawMessage `json:"forecast" swaggertype:"object"`
}

func (e WeatherEnvelope) Complete() bool {
	return len(e.Current) > 0 && len(e.Forecast) > 0
}

// LocationName is one reverse-geocoding result.
type LocationName struct {
	Name       string            `json:"name"`
	LocalNames map[string]string `json:"local_names,omitempty"`
	Lat        float64           `json:"lat"`
	Lon        float64           `json:"lon"`
	Country    string            `json:"country"`
	State      string            `json:"state,omitempty"`
}

type ErrorBody struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

type Diagnostics struct {
	Message          string `json:"message"`
	APIKeyConfigured bool   `json:"apiKeyConfigured"`
	APIKeyPreview    string `json:"apiKeyPreview"`
}
