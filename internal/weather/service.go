package weather

import (
	"context"
	"fmt"
	"log"
	"strings"
)

// Service runs the lookup pipeline: geocode the city, fetch current
// conditions at the resolved coordinates, format the result. Each call
// is independent and stateless; the Service is safe for concurrent use.
type Service struct {
	geocoder Geocoder
	fetcher  ConditionsFetcher
}

// NewService creates a new Service.
func NewService(geocoder Geocoder, fetcher ConditionsFetcher) *Service {
	return &Service{
		geocoder: geocoder,
		fetcher:  fetcher,
	}
}

// Lookup resolves current weather for a free-form city name. Any
// returned error is a *Failure; the first failing stage short-circuits
// the pipeline. Blank input is rejected before any network call.
func (s *Service) Lookup(ctx context.Context, city, units string) (WeatherReport, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return WeatherReport{}, NewFailure(FailInvalidInput, "city must not be empty")
	}

	u, err := ParseUnits(units)
	if err != nil {
		return WeatherReport{}, err
	}

	loc, err := s.geocoder.Resolve(ctx, city)
	if err != nil {
		log.Printf("lookup: geocoding failed for %q: %v", city, err)
		return WeatherReport{}, s.classified(err)
	}

	reading, err := s.fetcher.Fetch(ctx, loc, u)
	if err != nil {
		log.Printf("lookup: conditions fetch failed for %s: %v", loc.DisplayName(), err)
		return WeatherReport{}, s.classified(err)
	}

	return Format(reading, loc, u), nil
}

// classified guarantees the error leaving the pipeline carries a
// failure kind. Stage implementations classify their own errors; an
// unclassified one means a bug in a stage, reported as unavailable
// rather than leaked upward.
func (s *Service) classified(err error) error {
	if f, ok := AsFailure(err); ok {
		return f
	}
	return NewFailure(FailServiceUnavailable, fmt.Sprintf("weather lookup failed: %v", err))
}
