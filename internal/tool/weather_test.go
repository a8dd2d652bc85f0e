package tool

import (
	"context"
	"testing"
	"time"

	"github.com/voiceweather/weather-tool/internal/weather"
)

type stubGeocoder struct {
	loc weather.ResolvedLocation
	err error
}

func (g *stubGeocoder) Resolve(ctx context.Context, name string) (weather.ResolvedLocation, error) {
	if g.err != nil {
		return weather.ResolvedLocation{}, g.err
	}
	return g.loc, nil
}

type stubFetcher struct {
	reading weather.WeatherReading
	err     error
}

func (f *stubFetcher) Fetch(ctx context.Context, loc weather.ResolvedLocation, units weather.Units) (weather.WeatherReading, error) {
	if f.err != nil {
		return weather.WeatherReading{}, f.err
	}
	return f.reading, nil
}

func newTestTool(geoErr, fetchErr error) *WeatherTool {
	svc := weather.NewService(
		&stubGeocoder{
			loc: weather.ResolvedLocation{
				Latitude: 51.5085, Longitude: -0.1257,
				Name: "London", Country: "United Kingdom",
			},
			err: geoErr,
		},
		&stubFetcher{
			reading: weather.WeatherReading{
				Temperature:         12.3,
				ApparentTemperature: 10.1,
				Humidity:            85,
				WindSpeed:           11.9,
				WeatherCode:         61,
				ObservedAt:          time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
			},
			err: fetchErr,
		},
	)
	return NewWeatherTool(svc, weather.UnitsMetric)
}

func TestWeatherToolDeclaration(t *testing.T) {
	wt := newTestTool(nil, nil)

	if wt.Name() != "lookup_weather" {
		t.Fatalf("name = %q", wt.Name())
	}
	if wt.Description() == "" {
		t.Fatalf("description is empty")
	}

	params := wt.Parameters()
	props, ok := params["properties"].(map[string]any)
	if !ok {
		t.Fatalf("schema has no properties: %v", params)
	}
	if _, ok := props["city"]; !ok {
		t.Fatalf("schema missing city parameter")
	}
	required, ok := params["required"].([]string)
	if !ok || len(required) != 1 || required[0] != "city" {
		t.Fatalf("required = %v, want [city]", params["required"])
	}
}

func TestWeatherToolExecuteSuccess(t *testing.T) {
	wt := newTestTool(nil, nil)

	result, err := wt.Execute(context.Background(), map[string]any{"city": "London"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result["location"] != "London, United Kingdom" {
		t.Fatalf("location = %v", result["location"])
	}
	if result["temperature"] != 12 {
		t.Fatalf("temperature = %v, want 12", result["temperature"])
	}
	if result["condition"] != "rain" {
		t.Fatalf("condition = %v, want rain", result["condition"])
	}
	if result["units"] != "Celsius" {
		t.Fatalf("units = %v, want Celsius", result["units"])
	}
	if _, present := result["error"]; present {
		t.Fatalf("success result carries error field: %v", result)
	}
}

func TestWeatherToolExecuteMissingCity(t *testing.T) {
	wt := newTestTool(nil, nil)

	for _, args := range []map[string]any{
		{},
		{"city": ""},
		{"city": 42},
	} {
		result, err := wt.Execute(context.Background(), args)
		if err != nil {
			t.Fatalf("args %v: classified failures must not surface as errors: %v", args, err)
		}
		if result["error"] != true {
			t.Fatalf("args %v: expected failure result, got %v", args, result)
		}
		if result["kind"] != string(weather.FailInvalidInput) {
			t.Fatalf("args %v: kind = %v, want invalid_input", args, result["kind"])
		}
	}
}

func TestWeatherToolExecuteBadUnits(t *testing.T) {
	wt := newTestTool(nil, nil)

	result, err := wt.Execute(context.Background(), map[string]any{"city": "London", "units": "kelvin"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result["kind"] != string(weather.FailInvalidInput) {
		t.Fatalf("kind = %v, want invalid_input", result["kind"])
	}
}

func TestWeatherToolExecuteNotFound(t *testing.T) {
	wt := newTestTool(weather.NewFailure(weather.FailNotFound, "couldn't find that city"), nil)

	result, err := wt.Execute(context.Background(), map[string]any{"city": "Zzxqnotacity"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result["error"] != true || result["kind"] != string(weather.FailNotFound) {
		t.Fatalf("expected not_found failure result, got %v", result)
	}
	if result["message"] == "" {
		t.Fatalf("failure result has no message")
	}
}

func TestWeatherToolExecuteTimeout(t *testing.T) {
	wt := newTestTool(nil, weather.NewFailure(weather.FailTimeout, "took too long"))

	result, err := wt.Execute(context.Background(), map[string]any{"city": "London"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result["kind"] != string(weather.FailTimeout) {
		t.Fatalf("kind = %v, want timeout", result["kind"])
	}
}

func TestRegistry(t *testing.T) {
	wt := newTestTool(nil, nil)
	reg, err := NewRegistry(wt)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, ok := reg.Get("lookup_weather"); !ok {
		t.Fatalf("lookup_weather not registered")
	}
	if _, ok := reg.Get("nope"); ok {
		t.Fatalf("unexpected tool found")
	}

	defs := reg.Definitions()
	if len(defs) != 1 || defs[0].Name != "lookup_weather" {
		t.Fatalf("unexpected definitions: %+v", defs)
	}

	if _, err := NewRegistry(wt, wt); err == nil {
		t.Fatalf("expected duplicate registration error")
	}
}
