package providers

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/sony/gobreaker"

	"github.com/voiceweather/weather-tool/internal/weather"
)

// HTTPClientConfig bundles the shared outbound HTTP client.
type HTTPClientConfig struct {
	Client *http.Client
}

var (
	errServerError  = errors.New("server error")
	errUnexpected   = errors.New("unexpected status code")
	errNoHTTPClient = errors.New("http client not configured")
)

// newBreaker builds the circuit breaker fronting one remote service.
// An open breaker fails calls immediately; there is no retry anywhere
// in this path, failed lookups surface to the caller at once.
func newBreaker(name string) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})
}

// doRequest executes a single HTTP request through the circuit breaker
// and classifies transport-level failures. Server errors (5xx) map to
// ServiceUnavailable; other non-2xx statuses return errUnexpected for
// the caller to classify, since a 404 means different things to the
// geocoder and the conditions fetcher.
func doRequest(
	ctx context.Context,
	cfg HTTPClientConfig,
	cb *gobreaker.CircuitBreaker,
	buildRequest func() (*http.Request, error),
) (*http.Response, error) {
	if cfg.Client == nil {
		return nil, errNoHTTPClient
	}
	if ctx.Err() != nil {
		return nil, classifyTransport(ctx.Err())
	}

	req, err := buildRequest()
	if err != nil {
		return nil, err
	}
	req = req.WithContext(ctx)

	result, err := cb.Execute(func() (interface{}, error) {
		resp, execErr := cfg.Client.Do(req)
		if execErr != nil {
			return nil, execErr
		}

		if resp.StatusCode >= 500 {
			resp.Body.Close()
			return nil, fmt.Errorf("%w: %d", errServerError, resp.StatusCode)
		}
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			resp.Body.Close()
			return nil, fmt.Errorf("%w: %d", errUnexpected, resp.StatusCode)
		}

		return resp, nil
	})
	if err != nil {
		return nil, classifyTransport(err)
	}

	resp, ok := result.(*http.Response)
	if !ok {
		return nil, fmt.Errorf("unexpected result type from circuit breaker")
	}
	return resp, nil
}

// classifyTransport maps a transport error onto the failure taxonomy.
// Deadline expiry is a Timeout, an open breaker or remote 5xx is
// ServiceUnavailable, and everything else connection-level is a
// NetworkError. errUnexpected passes through unclassified.
func classifyTransport(err error) error {
	if _, ok := weather.AsFailure(err); ok {
		return err
	}
	if errors.Is(err, errUnexpected) {
		return err
	}

	var netErr net.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return weather.NewFailure(weather.FailTimeout, "the weather service took too long to respond")
	case errors.As(err, &netErr) && netErr.Timeout():
		return weather.NewFailure(weather.FailTimeout, "the weather service took too long to respond")
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return weather.NewFailure(weather.FailServiceUnavailable, "the weather service is temporarily unavailable")
	case errors.Is(err, errServerError):
		return weather.NewFailure(weather.FailServiceUnavailable, "the weather service is temporarily unavailable")
	case errors.Is(err, context.Canceled):
		return weather.NewFailure(weather.FailNetwork, "the weather lookup was interrupted")
	default:
		return weather.NewFailure(weather.FailNetwork, "unable to reach the weather service")
	}
}
