package providers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/sony/gobreaker"

	"github.com/voiceweather/weather-tool/internal/weather"
)

// DefaultGeocodingBaseURL is the Open-Meteo geocoding search endpoint.
const DefaultGeocodingBaseURL = "https://geocoding-api.open-meteo.com/v1/search"

// OpenMeteoGeocoder implements weather.Geocoder against the Open-Meteo
// geocoding API. The API is keyless and returns ranked candidates; only
// the top candidate is requested and used.
type OpenMeteoGeocoder struct {
	baseURL string
	httpCfg HTTPClientConfig
	circuit *gobreaker.CircuitBreaker
}

// NewOpenMeteoGeocoder creates a geocoder using the shared HTTP client.
// An empty baseURL selects the public endpoint.
func NewOpenMeteoGeocoder(client *http.Client, baseURL string) *OpenMeteoGeocoder {
	if baseURL == "" {
		baseURL = DefaultGeocodingBaseURL
	}
	return &OpenMeteoGeocoder{
		baseURL: baseURL,
		httpCfg: HTTPClientConfig{Client: client},
		circuit: newBreaker("openmeteo-geocoding"),
	}
}

// Resolve looks up the top candidate for the given place name. Zero
// candidates, a malformed body, or a non-2xx response all classify as
// NotFound; coordinates outside WGS84 bounds are treated the same way
// since they can only come from a broken response.
func (g *OpenMeteoGeocoder) Resolve(ctx context.Context, name string) (weather.ResolvedLocation, error) {
	buildRequest := func() (*http.Request, error) {
		values := url.Values{}
		values.Set("name", name)
		values.Set("count", "1")
		values.Set("language", "en")
		values.Set("format", "json")

		u := fmt.Sprintf("%s?%s", g.baseURL, values.Encode())
		return http.NewRequest(http.MethodGet, u, nil)
	}

	resp, err := doRequest(ctx, g.httpCfg, g.circuit, buildRequest)
	if err != nil {
		if errors.Is(err, errUnexpected) {
			return weather.ResolvedLocation{}, notFound(name)
		}
		return weather.ResolvedLocation{}, err
	}
	defer resp.Body.Close()

	var payload struct {
		Results []struct {
			Latitude  float64 `json:"latitude"`
			Longitude float64 `json:"longitude"`
			Name      string  `json:"name"`
			Country   string  `json:"country"`
		} `json:"results"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return weather.ResolvedLocation{}, notFound(name)
	}
	if len(payload.Results) == 0 {
		return weather.ResolvedLocation{}, notFound(name)
	}

	top := payload.Results[0]
	if top.Latitude < -90 || top.Latitude > 90 || top.Longitude < -180 || top.Longitude > 180 {
		return weather.ResolvedLocation{}, notFound(name)
	}

	loc := weather.ResolvedLocation{
		Latitude:  top.Latitude,
		Longitude: top.Longitude,
		Name:      top.Name,
		Country:   top.Country,
	}
	if loc.Name == "" {
		loc.Name = name
	}

	return loc, nil
}

func notFound(name string) error {
	return weather.NewFailure(weather.FailNotFound,
		fmt.Sprintf("couldn't find a city called %q; check the spelling or try another city", name))
}
