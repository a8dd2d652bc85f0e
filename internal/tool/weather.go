package tool

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/voiceweather/weather-tool/internal/weather"
)

var validate = validator.New()

// WeatherTool exposes the weather lookup pipeline to the calling agent
// as the lookup_weather capability.
type WeatherTool struct {
	service      *weather.Service
	defaultUnits weather.Units
}

var _ Tool = (*WeatherTool)(nil)

// NewWeatherTool wraps the lookup service as an agent tool.
func NewWeatherTool(service *weather.Service, defaultUnits weather.Units) *WeatherTool {
	if defaultUnits == "" {
		defaultUnits = weather.UnitsMetric
	}
	return &WeatherTool{service: service, defaultUnits: defaultUnits}
}

func (t *WeatherTool) Name() string { return "lookup_weather" }

func (t *WeatherTool) Description() string {
	return "Look up current weather conditions for a city. Returns the resolved location, " +
		"temperature, feels-like temperature, humidity, wind speed and a spoken-friendly " +
		"condition description."
}

func (t *WeatherTool) Parameters() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"city": map[string]any{
				"type":        "string",
				"description": "The city to get weather for, e.g. \"London\" or \"Springfield, Illinois\"",
			},
			"units": map[string]any{
				"type":        "string",
				"enum":        []string{"metric", "imperial"},
				"description": "Temperature units; metric for Celsius (default), imperial for Fahrenheit",
			},
		},
		"required": []string{"city"},
	}
}

// lookupArgs is the validated argument set for a lookup_weather call.
type lookupArgs struct {
	City  string `validate:"required"`
	Units string `validate:"omitempty,oneof=metric imperial"`
}

// Execute runs the lookup. Failures of any classified kind are returned
// as a structured failure map with a nil error; the framework decides
// how to narrate them.
func (t *WeatherTool) Execute(ctx context.Context, args map[string]any) (map[string]any, error) {
	parsed, err := parseLookupArgs(args)
	if err != nil {
		return failureResult(weather.NewFailure(weather.FailInvalidInput, err.Error())), nil
	}

	units := parsed.Units
	if units == "" {
		units = string(t.defaultUnits)
	}

	report, err := t.service.Lookup(ctx, parsed.City, units)
	if err != nil {
		if f, ok := weather.AsFailure(err); ok {
			return failureResult(f), nil
		}
		// The service classifies everything; reaching here is a bug.
		return nil, err
	}

	return map[string]any{
		"city":        report.City,
		"country":     report.Country,
		"location":    report.Location,
		"temperature": report.Temperature,
		"feels_like":  report.FeelsLike,
		"humidity":    report.Humidity,
		"wind_speed":  report.WindSpeed,
		"condition":   report.Condition,
		"units":       report.Units,
		"observed_at": report.ObservedAt,
	}, nil
}

func parseLookupArgs(args map[string]any) (lookupArgs, error) {
	var parsed lookupArgs

	if raw, ok := args["city"]; ok {
		s, ok := raw.(string)
		if !ok {
			return parsed, fmt.Errorf("city must be a string")
		}
		parsed.City = s
	}
	if raw, ok := args["units"]; ok {
		s, ok := raw.(string)
		if !ok {
			return parsed, fmt.Errorf("units must be a string")
		}
		parsed.Units = s
	}

	if err := validate.Struct(parsed); err != nil {
		return parsed, err
	}
	return parsed, nil
}

func failureResult(f *weather.Failure) map[string]any {
	return map[string]any{
		"error":   true,
		"kind":    string(f.Kind),
		"message": f.Hint,
	}
}
