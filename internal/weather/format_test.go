package weather

import (
	"testing"
	"time"
)

// TestConditionLabelTotal verifies that every documented WMO code maps
// to a real label and that codes outside the enumeration fall back to
// the unknown label instead of failing.
func TestConditionLabelTotal(t *testing.T) {
	for _, code := range KnownCodes() {
		label := ConditionLabel(code)
		if label == "" {
			t.Fatalf("code %d mapped to empty label", code)
		}
		if label == ConditionUnknown {
			t.Fatalf("documented code %d mapped to the unknown label", code)
		}
	}

	for _, code := range []int{-1, 4, 42, 60, 100, 9999} {
		if got := ConditionLabel(code); got != ConditionUnknown {
			t.Fatalf("undocumented code %d mapped to %q, want %q", code, got, ConditionUnknown)
		}
	}
}

func TestConditionLabelGroups(t *testing.T) {
	cases := map[int]string{
		0:  "clear",
		2:  "partly cloudy",
		3:  "overcast",
		45: "fog",
		55: "drizzle",
		61: "rain",
		65: "rain",
		75: "snow",
		81: "rain showers",
		86: "snow showers",
		95: "thunderstorm",
	}
	for code, want := range cases {
		if got := ConditionLabel(code); got != want {
			t.Fatalf("code %d mapped to %q, want %q", code, got, want)
		}
	}
}

// TestFormatLondonScenario checks the full shaping of a reading:
// rounded temperatures, integer humidity, WMO code 61 labeled as rain.
func TestFormatLondonScenario(t *testing.T) {
	loc := ResolvedLocation{
		Latitude:  51.5085,
		Longitude: -0.1257,
		Name:      "London",
		Country:   "United Kingdom",
	}
	observed := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	reading := WeatherReading{
		Temperature:         12.3,
		ApparentTemperature: 10.1,
		Humidity:            85,
		WindSpeed:           14.2,
		WeatherCode:         61,
		ObservedAt:          observed,
	}

	report := Format(reading, loc, UnitsMetric)

	if report.Location != "London, United Kingdom" {
		t.Fatalf("unexpected location: %q", report.Location)
	}
	if report.Temperature != 12 {
		t.Fatalf("temperature = %d, want 12", report.Temperature)
	}
	if report.FeelsLike != 10 {
		t.Fatalf("feels_like = %d, want 10", report.FeelsLike)
	}
	if report.Humidity != 85 {
		t.Fatalf("humidity = %d, want 85", report.Humidity)
	}
	if report.Condition != "rain" {
		t.Fatalf("condition = %q, want rain", report.Condition)
	}
	if report.Units != "Celsius" {
		t.Fatalf("units = %q, want Celsius", report.Units)
	}
	if !report.ObservedAt.Equal(observed) {
		t.Fatalf("observed_at = %v, want %v", report.ObservedAt, observed)
	}
}

func TestFormatRounding(t *testing.T) {
	loc := ResolvedLocation{Name: "Oslo", Country: "Norway"}
	reading := WeatherReading{
		Temperature:         -0.5,
		ApparentTemperature: -3.7,
		Humidity:            70.4,
		WeatherCode:         71,
	}

	report := Format(reading, loc, UnitsImperial)

	// math.Round rounds half away from zero.
	if report.Temperature != -1 {
		t.Fatalf("temperature = %d, want -1", report.Temperature)
	}
	if report.FeelsLike != -4 {
		t.Fatalf("feels_like = %d, want -4", report.FeelsLike)
	}
	if report.Humidity != 70 {
		t.Fatalf("humidity = %d, want 70", report.Humidity)
	}
	if report.Units != "Fahrenheit" {
		t.Fatalf("units = %q, want Fahrenheit", report.Units)
	}
}

func TestDisplayNameWithoutCountry(t *testing.T) {
	loc := ResolvedLocation{Name: "Atlantis"}
	if got := loc.DisplayName(); got != "Atlantis" {
		t.Fatalf("display name = %q, want Atlantis", got)
	}
}
