package arcgis

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

// API Docs: https://developers.arcgis.com/rest/geocode/ and
// https://developers.arcgis.com/rest/network/
const (
	baseGeocodeURL = "https://geocode-api.arcgis.com/arcgis/rest/services/World/GeocodeServer/findAddressCandidates"
	baseRouteURL   = "https://route.arcgis.com/arcgis/rest/services/World/Route/NAServer/Route_World/solve"
)

type Client struct {
	httpClient *http.Client
	geocodeURL string
	routeURL   string
	apiKey     string
	logger     *slog.Logger
}

func NewClient(apiKey string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		geocodeURL: baseGeocodeURL,
		routeURL:   baseRouteURL,
		apiKey:     apiKey,
		logger:     logger.With("component", "arcgis-client"),
	}
}

// FindAddressCandidates geocodes a single-line address, requesting at most
// one candidate.
func (c *Client) FindAddressCandidates(address string) (*GeocodeAPIResponse, error) {
	u, err := url.Parse(c.geocodeURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	q := u.Query()
	q.Set("f", "json")
	q.Set("singleLine", address)
	q.Set("maxLocations", "1")
	q.Set("token", c.apiKey)
	u.RawQuery = q.Encode()

	c.logger.Debug("geocoding address", "address", address)

	resp, err := c.httpClient.Get(u.String())
	if err != nil {
		c.logger.Error("failed to fetch geocode candidates", "error", err)
		return nil, fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("geocode API returned error",
			"status_code", resp.StatusCode,
			"response_body", string(body),
		)
		return nil, fmt.Errorf("fetch returned status %d: %s", resp.StatusCode, string(body))
	}

	var apiResp GeocodeAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		c.logger.Error("failed to decode geocode response", "error", err)
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	c.logger.Debug("geocode complete", "candidate_count", len(apiResp.Candidates))

	return &apiResp, nil
}

// SolveRoute posts a form-encoded route-solve request and returns the
// provider's raw JSON response without reshaping it. The caller supplies the
// solve parameters; the token and response format are set here.
func (c *Client) SolveRoute(params url.Values) (json.RawMessage, error) {
	params.Set("f", "json")
	params.Set("token", c.apiKey)

	c.logger.Debug("solving route")

	resp, err := c.httpClient.Post(
		c.routeURL,
		"application/x-www-form-urlencoded",
		strings.NewReader(params.Encode()),
	)
	if err != nil {
		c.logger.Error("failed to post route solve", "error", err)
		return nil, fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	// The service answers errors as HTML pages; reject anything that is not
	// JSON rather than passing it through.
	if !json.Valid(body) {
		preview := body
		if len(preview) > 500 {
			preview = preview[:500]
		}
		c.logger.Error("route API returned non-JSON response",
			"status_code", resp.StatusCode,
			"response_preview", string(preview),
		)
		return nil, fmt.Errorf("route solve returned non-JSON response (status %d)", resp.StatusCode)
	}

	return body, nil
}
