package models

// LocationInfo is the detected device position shown alongside the weather for debugging.
type LocationInfo struct {
	Lat    float64
	Lon    float64
	Source string
}

// UIState is everything the presentation client displays.
// WeatherData survives failed lookups until a later success replaces it.
type UIState struct {
	WeatherData     *WeatherEnvelope
	Loading         bool
	Error           string
	LocationInfo    *LocationInfo
	BackgroundTheme string
}
