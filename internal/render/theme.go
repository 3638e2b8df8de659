package render

import "strings"

const DefaultTheme = "bg-clear-sky"

const defaultEmoji = "🌤️"

type keywordRule struct {
	keywords []string
	value    string
}

// Order matters: the first matching rule wins.
var themeRules = []keywordRule{
	{keywords: []string{"clear"}, value: "weather-clear"},
	{keywords: []string{"cloud"}, value: "weather-clouds"},
	{keywords: []string{"rain", "drizzle"}, value: "weather-rain"},
	{keywords: []string{"snow"}, value: "weather-snow"},
	{keywords: []string{"thunderstorm"}, value: "weather-thunderstorm"},
	{keywords: []string{"mist", "fog", "haze"}, value: "weather-mist"},
}

var emojiRules = []keywordRule{
	{keywords: []string{"clear"}, value: "☀️"},
	{keywords: []string{"cloud"}, value: "☁️"},
	{keywords: []string{"rain"}, value: "🌧️"},
	{keywords: []string{"snow"}, value: "❄️"},
	{keywords: []string{"thunderstorm"}, value: "⛈️"},
	{keywords: []string{"mist", "fog", "haze"}, value: "🌫️"},
}

// BackgroundTheme picks the page theme for a provider condition such as "Clouds" or "light rain".
func BackgroundTheme(condition string) string {
	return match(themeRules, condition, DefaultTheme)
}

// Emoji picks the icon for a forecast condition. Drizzle has no icon of its own.
func Emoji(condition string) string {
	return match(emojiRules, condition, defaultEmoji)
}

func match(rules []keywordRule, condition, fallback string) string {
	c := strings.ToLower(condition)
	for _, r := range rules {
		for _, k := range r.keywords {
			if strings.Contains(c, k) {
				return r.value
			}
		}
	}
	return fallback
}
