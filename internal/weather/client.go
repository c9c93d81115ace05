package weather

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"

	"github.com/vyong1/fast-weather/internal/cache"
	"github.com/vyong1/fast-weather/internal/config"
)

const forecastURL = "https://api.open-meteo.com/v1/forecast"

// Retry policy for transient upstream failures.
const (
	retryAttempts = 5
	retryDelay    = 200 * time.Millisecond
)

// CacheTTL bounds how long a successful response is reused across
// invocations.
const CacheTTL = time.Hour

// Client fetches hourly forecasts from the Open-Meteo API.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a client whose transport caches successful
// responses in store for CacheTTL.
func NewClient(store *cache.Store) *Client {
	return &Client{
		BaseURL: forecastURL,
		HTTPClient: &http.Client{
			Timeout:   10 * time.Second,
			Transport: cache.NewTransport(store, CacheTTL),
		},
	}
}

// FetchError reports a forecast request that failed after retries were
// exhausted, or a response that could not be decoded.
type FetchError struct {
	Err error
}

func (e *FetchError) Error() string { return fmt.Sprintf("forecast fetch: %v", e.Err) }
func (e *FetchError) Unwrap() error { return e.Err }

// Forecast is the decoded hourly block: a time range plus one raw
// series per requested field, in request order. Read-only downstream.
type Forecast struct {
	TimeStart       int64
	TimeEnd         int64
	IntervalSeconds int64
	Series          [][]float64
}

// Steps returns the number of timesteps the time range covers.
func (f *Forecast) Steps() int {
	return int((f.TimeEnd - f.TimeStart) / f.IntervalSeconds)
}

// Fetch requests the next 12 hours of the given hourly fields for the
// configured location. Network errors and 5xx statuses are retried
// with exponential backoff; 4xx statuses fail immediately.
func (c *Client) Fetch(cfg config.Config, fields []string) (*Forecast, error) {
	params := url.Values{}
	params.Set("latitude", strconv.FormatFloat(cfg.Latitude, 'f', -1, 64))
	params.Set("longitude", strconv.FormatFloat(cfg.Longitude, 'f', -1, 64))
	params.Set("forecast_hours", "12")
	params.Set("past_hours", "0")
	params.Set("hourly", strings.Join(fields, ","))
	params.Set("timezone", cfg.Timezone)
	params.Set("wind_speed_unit", "mph")
	params.Set("temperature_unit", "fahrenheit")
	params.Set("precipitation_unit", "inch")
	params.Set("timeformat", "unixtime")
	requestURL := c.BaseURL + "?" + params.Encode()

	body, err := retry.DoWithData(
		func() ([]byte, error) { return c.get(requestURL) },
		retry.Attempts(retryAttempts),
		retry.Delay(retryDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		return nil, &FetchError{Err: err}
	}

	return decodeForecast(body, fields)
}

func (c *Client) get(requestURL string) ([]byte, error) {
	resp, err := c.HTTPClient.Get(requestURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("upstream status %d: %s", resp.StatusCode, upstreamReason(body, resp.Status))
		if resp.StatusCode >= 400 && resp.StatusCode < 500 {
			// Client errors will not heal on retry.
			return nil, retry.Unrecoverable(err)
		}
		return nil, err
	}

	return body, nil
}

// upstreamReason extracts Open-Meteo's error reason, falling back to
// the HTTP status line.
func upstreamReason(body []byte, status string) string {
	var payload struct {
		Reason string `json:"reason"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Reason != "" {
		return payload.Reason
	}
	return status
}

func decodeForecast(body []byte, fields []string) (*Forecast, error) {
	var payload struct {
		Hourly map[string]json.RawMessage `json:"hourly"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, &FetchError{Err: fmt.Errorf("invalid response: %w", err)}
	}
	if payload.Hourly == nil {
		return nil, &FetchError{Err: fmt.Errorf("response has no hourly block")}
	}

	var times []int64
	if err := json.Unmarshal(payload.Hourly["time"], &times); err != nil {
		return nil, &FetchError{Err: fmt.Errorf("invalid hourly time array: %w", err)}
	}
	if len(times) < 2 {
		return nil, &FetchError{Err: fmt.Errorf("hourly block has %d timestamps, need at least 2", len(times))}
	}
	interval := times[1] - times[0]

	series := make([][]float64, len(fields))
	for i, field := range fields {
		raw, ok := payload.Hourly[field]
		if !ok {
			return nil, &FetchError{Err: fmt.Errorf("response missing hourly field %q", field)}
		}
		var values []float64
		if err := json.Unmarshal(raw, &values); err != nil {
			return nil, &FetchError{Err: fmt.Errorf("invalid hourly field %q: %w", field, err)}
		}
		series[i] = values
	}

	return &Forecast{
		TimeStart:       times[0],
		TimeEnd:         times[len(times)-1] + interval,
		IntervalSeconds: interval,
		Series:          series,
	}, nil
}
