package repositories

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"

	"weather-mcp/internal/models"
	"weather-mcp/pkg/logger"
)

const (
	// Fields requested from the Open-Meteo forecast endpoint.
	currentFields = "temperature_2m,relative_humidity_2m,apparent_temperature,precipitation,weather_code"
	dailyFields   = "temperature_2m_max,temperature_2m_min,precipitation_sum,weather_code"
)

type OpenMeteoRepository struct {
	baseURL    string
	userAgent  string
	httpClient HTTPClient
	l          *logger.Logger
}

// NewOpenMeteoRepository builds the Open-Meteo client. TLS verification is
// decided here, once, from the value passed in; nothing reads ambient state
// after startup.
func NewOpenMeteoRepository(baseURL, userAgent string, timeout time.Duration, tlsVerify bool, l *logger.Logger) *OpenMeteoRepository {
	client := &http.Client{Timeout: timeout}
	if !tlsVerify {
		// Clone the default transport so proxy-from-environment and the
		// default pool settings survive; only certificate checking changes.
		transport := http.DefaultTransport.(*http.Transport).Clone()
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
		client.Transport = transport
	}

	return &OpenMeteoRepository{
		baseURL:    baseURL,
		userAgent:  userAgent,
		httpClient: client,
		l:          l,
	}
}

func (o *OpenMeteoRepository) Name() string {
	return "open-meteo"
}

// FetchCurrent retrieves current conditions for a coordinate and returns the
// raw JSON body. The payload is not interpreted here beyond the syntax check
// in fetch.
func (o *OpenMeteoRepository) FetchCurrent(ctx context.Context, lat, lon float64) ([]byte, error) {
	url := fmt.Sprintf("%s/forecast?latitude=%v&longitude=%v&current=%s", o.baseURL, lat, lon, currentFields)
	return o.fetch(ctx, url)
}

// FetchForecast retrieves the daily forecast for a coordinate over the API's
// default horizon and decodes the `daily` parallel arrays.
func (o *OpenMeteoRepository) FetchForecast(ctx context.Context, lat, lon float64) (*models.DailyForecast, error) {
	url := fmt.Sprintf("%s/forecast?latitude=%v&longitude=%v&daily=%s&timezone=auto", o.baseURL, lat, lon, dailyFields)

	body, err := o.fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	var response struct {
		Daily models.DailyForecast `json:"daily"`
	}
	if err := json.Unmarshal(body, &response); err != nil {
		o.l.Warning("failed to decode forecast response", map[string]any{"err": err})
		return nil, errors.Wrap(err, "failed to decode forecast response")
	}

	// Parallel arrays of unequal length mean a payload we cannot trust;
	// treat it like malformed JSON rather than indexing past the end.
	if !response.Daily.Aligned() {
		o.l.Warning("misaligned daily forecast arrays", map[string]any{
			"time": len(response.Daily.Time),
			"max":  len(response.Daily.Temperature2mMax),
			"min":  len(response.Daily.Temperature2mMin),
			"sum":  len(response.Daily.PrecipitationSum),
		})
		return nil, errors.New("misaligned daily forecast arrays")
	}

	if len(response.Daily.Time) == 0 {
		o.l.Warning("no forecast data received", map[string]any{"url": url})
		return nil, errors.New("no forecast data available")
	}

	return &response.Daily, nil
}

// fetch issues a GET with the fixed header set and collapses every failure
// mode (transport error, non-2xx status, malformed JSON) into an error the
// caller treats as "no data". The cause is logged here.
func (o *OpenMeteoRepository) fetch(ctx context.Context, url string) ([]byte, error) {
	o.l.Info("making openmeteo API request", map[string]any{"url": url})

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		o.l.Error(err, map[string]any{"url": url})
		return nil, errors.Wrap(err, "failed to create request")
	}
	req.Header.Set("User-Agent", o.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := o.httpClient.Do(req)
	if err != nil {
		o.l.Error(err, map[string]any{"url": url})
		return nil, errors.Wrap(err, "failed to do request")
	}
	defer resp.Body.Close()

	o.l.Info("received openmeteo API response", map[string]any{
		"status":     resp.StatusCode,
		"statusText": resp.Status,
	})

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		o.l.Error(err, map[string]any{"url": url})
		return nil, errors.Wrap(err, "failed to read response body")
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		err := errors.Errorf("HTTP error (status %d): %s", resp.StatusCode, resp.Status)
		o.l.Error(err, map[string]any{"url": url, "body": string(body)})
		return nil, err
	}

	if !json.Valid(body) {
		err := errors.New("response body is not valid JSON")
		o.l.Error(err, map[string]any{"url": url})
		return nil, err
	}

	return body, nil
}
