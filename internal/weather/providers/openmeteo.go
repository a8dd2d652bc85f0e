package providers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/sony/gobreaker"

	"github.com/voiceweather/weather-tool/internal/weather"
)

// DefaultForecastBaseURL is the Open-Meteo forecast endpoint.
const DefaultForecastBaseURL = "https://api.open-meteo.com/v1/forecast"

// observedAtLayout is the minute-resolution ISO8601 format Open-Meteo
// uses for current-conditions timestamps.
const observedAtLayout = "2006-01-02T15:04"

// OpenMeteoConditions implements weather.ConditionsFetcher against the
// Open-Meteo forecast API. Unit selection is delegated to request
// parameters; no conversion happens here.
type OpenMeteoConditions struct {
	baseURL string
	httpCfg HTTPClientConfig
	circuit *gobreaker.CircuitBreaker
}

// NewOpenMeteoConditions creates a conditions fetcher using the shared
// HTTP client. An empty baseURL selects the public endpoint.
func NewOpenMeteoConditions(client *http.Client, baseURL string) *OpenMeteoConditions {
	if baseURL == "" {
		baseURL = DefaultForecastBaseURL
	}
	return &OpenMeteoConditions{
		baseURL: baseURL,
		httpCfg: HTTPClientConfig{Client: client},
		circuit: newBreaker("openmeteo-forecast"),
	}
}

// Fetch issues one request for current conditions at the given
// coordinates. A response missing any required current field classifies
// as ServiceUnavailable: the remote answered but with an incomplete
// payload.
func (p *OpenMeteoConditions) Fetch(ctx context.Context, loc weather.ResolvedLocation, units weather.Units) (weather.WeatherReading, error) {
	buildRequest := func() (*http.Request, error) {
		values := url.Values{}
		values.Set("latitude", fmt.Sprintf("%f", loc.Latitude))
		values.Set("longitude", fmt.Sprintf("%f", loc.Longitude))
		values.Set("current", "temperature_2m,apparent_temperature,relative_humidity_2m,wind_speed_10m,weather_code")
		values.Set("timezone", "UTC")
		if units == weather.UnitsImperial {
			values.Set("temperature_unit", "fahrenheit")
			values.Set("wind_speed_unit", "mph")
		}

		u := fmt.Sprintf("%s?%s", p.baseURL, values.Encode())
		return http.NewRequest(http.MethodGet, u, nil)
	}

	resp, err := doRequest(ctx, p.httpCfg, p.circuit, buildRequest)
	if err != nil {
		if errors.Is(err, errUnexpected) {
			return weather.WeatherReading{}, unavailable()
		}
		return weather.WeatherReading{}, err
	}
	defer resp.Body.Close()

	// Pointer fields so absent values are distinguishable from zeros.
	var payload struct {
		Current struct {
			Time                string   `json:"time"`
			Temperature         *float64 `json:"temperature_2m"`
			ApparentTemperature *float64 `json:"apparent_temperature"`
			RelativeHumidity    *float64 `json:"relative_humidity_2m"`
			WindSpeed           *float64 `json:"wind_speed_10m"`
			WeatherCode         *int     `json:"weather_code"`
		} `json:"current"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return weather.WeatherReading{}, unavailable()
	}

	cur := payload.Current
	if cur.Temperature == nil || cur.ApparentTemperature == nil || cur.RelativeHumidity == nil ||
		cur.WindSpeed == nil || cur.WeatherCode == nil {
		return weather.WeatherReading{}, unavailable()
	}

	ts, err := time.ParseInLocation(observedAtLayout, cur.Time, time.UTC)
	if err != nil {
		ts = time.Now().UTC()
	}

	return weather.WeatherReading{
		Temperature:         *cur.Temperature,
		ApparentTemperature: *cur.ApparentTemperature,
		Humidity:            *cur.RelativeHumidity,
		WindSpeed:           *cur.WindSpeed,
		WeatherCode:         *cur.WeatherCode,
		ObservedAt:          ts,
	}, nil
}

func unavailable() error {
	return weather.NewFailure(weather.FailServiceUnavailable,
		"the weather service is temporarily unavailable; try again later")
}
