package weather

import (
	"context"
	"fmt"
	"time"
)

// Units selects the unit system for a lookup.
type Units string

const (
	UnitsMetric   Units = "metric"
	UnitsImperial Units = "imperial"
)

// ParseUnits normalizes a user-supplied unit string. An empty string
// defaults to metric; anything else unrecognized is invalid input.
func ParseUnits(s string) (Units, error) {
	switch Units(s) {
	case "", UnitsMetric:
		return UnitsMetric, nil
	case UnitsImperial:
		return UnitsImperial, nil
	default:
		return "", NewFailure(FailInvalidInput, fmt.Sprintf("unknown unit system %q; use metric or imperial", s))
	}
}

// TemperatureUnit returns the spoken unit name used in reports.
func (u Units) TemperatureUnit() string {
	if u == UnitsImperial {
		return "Fahrenheit"
	}
	return "Celsius"
}

// ResolvedLocation is the geocoder's best match for a place query.
// Latitude is in [-90,90] and Longitude in [-180,180] (WGS84).
type ResolvedLocation struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Name      string  `json:"name"`
	Country   string  `json:"country"`
}

// DisplayName returns "City, Country", or just the resolved name when
// the geocoder did not return a country.
func (l ResolvedLocation) DisplayName() string {
	if l.Country == "" {
		return l.Name
	}
	return l.Name + ", " + l.Country
}

// WeatherReading holds raw current conditions at a location, in the
// unit system that was requested from the remote service. The WMO code
// is carried through uninterpreted; labeling it is the formatter's job.
type WeatherReading struct {
	Temperature         float64
	ApparentTemperature float64
	Humidity            float64 // relative humidity, percent
	WindSpeed           float64
	WeatherCode         int
	ObservedAt          time.Time
}

// WeatherReport is the terminal result handed back to the calling
// agent: resolved location plus rounded readings and a spoken-friendly
// condition label. It is never mutated after construction.
type WeatherReport struct {
	City        string    `json:"city"`
	Country     string    `json:"country"`
	Location    string    `json:"location"`
	Temperature int       `json:"temperature"`
	FeelsLike   int       `json:"feels_like"`
	Humidity    int       `json:"humidity"`
	WindSpeed   float64   `json:"wind_speed"`
	Condition   string    `json:"condition"`
	Units       string    `json:"units"`
	ObservedAt  time.Time `json:"observed_at"`
}

// Geocoder resolves a free-text place name to coordinates. The first
// candidate returned by the remote service wins; there is no
// disambiguation step.
type Geocoder interface {
	Resolve(ctx context.Context, name string) (ResolvedLocation, error)
}

// ConditionsFetcher retrieves current conditions for resolved
// coordinates in the requested unit system.
type ConditionsFetcher interface {
	Fetch(ctx context.Context, loc ResolvedLocation, units Units) (WeatherReading, error)
}
