package openmeteo

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// API Docs: https://open-meteo.com/en/docs
// Sample request: https://api.open-meteo.com/v1/forecast?latitude=23.47&longitude=120.96&hourly=temperature_2m,relative_humidity_2m,precipitation_probability,snowfall,visibility,dew_point_2m,rain&timezone=Asia%2FTaipei&start_date=2026-01-05&end_date=2026-01-05
const (
	baseForecastURL = "https://api.open-meteo.com/v1/forecast"

	// forecastTimezone pins the hourly series to the sites' local clock.
	forecastTimezone = "Asia/Taipei"
)

type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

func NewClient(timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseForecastURL,
		logger:     logger.With("component", "openmeteo-client"),
	}
}

// GetHourlyForecast fetches the hourly series for a single calendar date
// (format YYYY-MM-DD) at the given coordinate. The request covers exactly
// that date in the Asia/Taipei timezone.
func (c *Client) GetHourlyForecast(latitude, longitude float64, date string) (*ForecastAPIResponse, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	hourlyVars := []string{
		"temperature_2m",
		"relative_humidity_2m",
		"precipitation_probability",
		"snowfall",
		"visibility",
		"dew_point_2m",
		"rain",
	}

	q := u.Query()
	q.Set("latitude", fmt.Sprintf("%f", latitude))
	q.Set("longitude", fmt.Sprintf("%f", longitude))
	q.Set("hourly", strings.Join(hourlyVars, ","))
	q.Set("timezone", forecastTimezone)
	q.Set("start_date", date)
	q.Set("end_date", date)
	u.RawQuery = q.Encode()

	c.logger.Debug("fetching hourly forecast",
		"latitude", latitude,
		"longitude", longitude,
		"date", date,
	)

	resp, err := c.httpClient.Get(u.String())
	if err != nil {
		c.logger.Error("failed to fetch forecast", "error", err)
		return nil, fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("forecast API returned error",
			"status_code", resp.StatusCode,
			"response_body", string(body),
		)
		return nil, fmt.Errorf("fetch returned status %d: %s", resp.StatusCode, string(body))
	}

	var apiResp ForecastAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		c.logger.Error("failed to decode forecast response", "error", err)
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	c.logger.Debug("successfully fetched hourly forecast", "sample_count", len(apiResp.Hourly.Time))

	return &apiResp, nil
}
