package weather

import "math"

// ConditionUnknown is the fallback label for WMO codes outside the
// documented enumeration.
const ConditionUnknown = "unknown conditions"

// conditionRule maps a set of WMO synoptic codes to one spoken label.
type conditionRule struct {
	codes []int
	label string
}

// conditionRules covers the WMO codes emitted by the conditions
// service. The table is consulted in order and falls back to
// ConditionUnknown, so the mapping is total.
var conditionRules = []conditionRule{
	{codes: []int{0}, label: "clear"},
	{codes: []int{1}, label: "mainly clear"},
	{codes: []int{2}, label: "partly cloudy"},
	{codes: []int{3}, label: "overcast"},
	{codes: []int{45, 48}, label: "fog"},
	{codes: []int{51, 53, 55, 56, 57}, label: "drizzle"},
	{codes: []int{61, 63, 65, 66, 67}, label: "rain"},
	{codes: []int{71, 73, 75, 77}, label: "snow"},
	{codes: []int{80, 81, 82}, label: "rain showers"},
	{codes: []int{85, 86}, label: "snow showers"},
	{codes: []int{95, 96, 99}, label: "thunderstorm"},
}

// ConditionLabel maps a WMO weather code to its spoken label.
func ConditionLabel(code int) string {
	for _, rule := range conditionRules {
		for _, c := range rule.codes {
			if c == code {
				return rule.label
			}
		}
	}
	return ConditionUnknown
}

// KnownCodes returns every WMO code the label table covers, in table
// order.
func KnownCodes() []int {
	var codes []int
	for _, rule := range conditionRules {
		codes = append(codes, rule.codes...)
	}
	return codes
}

// Format shapes a raw reading into the report returned to the calling
// agent: temperatures rounded to the nearest degree, humidity to
// integer percent, the WMO code replaced by its label. Pure; it never
// fails.
func Format(reading WeatherReading, loc ResolvedLocation, units Units) WeatherReport {
	return WeatherReport{
		City:        loc.Name,
		Country:     loc.Country,
		Location:    loc.DisplayName(),
		Temperature: int(math.Round(reading.Temperature)),
		FeelsLike:   int(math.Round(reading.ApparentTemperature)),
		Humidity:    int(math.Round(reading.Humidity)),
		WindSpeed:   reading.WindSpeed,
		Condition:   ConditionLabel(reading.WeatherCode),
		Units:       units.TemperatureUnit(),
		ObservedAt:  reading.ObservedAt,
	}
}
