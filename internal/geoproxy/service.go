package geoproxy

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/url"

	"ridgecast/internal/config"
	"ridgecast/internal/providers/arcgis"
)

var (
	// ErrNoCandidates means the geocoder answered but matched nothing.
	ErrNoCandidates = errors.New("no geocode candidates found")
	// ErrStopCount means a route request did not carry exactly two stops.
	ErrStopCount = errors.New("route requires exactly two stops")
)

// GeocodeProvider looks up address candidates.
type GeocodeProvider interface {
	FindAddressCandidates(address string) (*arcgis.GeocodeAPIResponse, error)
}

// RouteProvider solves a route from prepared form parameters.
type RouteProvider interface {
	SolveRoute(params url.Values) (json.RawMessage, error)
}

// Service proxies geocoding and routing to the mapping provider, reshaping
// payloads to its expected form. No decision logic lives here.
type Service interface {
	Geocode(address string) (arcgis.Point, error)
	SolveRoute(stops []arcgis.Point, barriers [][][]float64) (json.RawMessage, error)
}

type geoService struct {
	geocodeProvider GeocodeProvider
	routeProvider   RouteProvider
	logger          *slog.Logger
}

// NewGeoService creates a geo proxy service backed by the real ArcGIS client.
func NewGeoService(cfg *config.Config, logger *slog.Logger) Service {
	client := arcgis.NewClient(cfg.App.EsriAPIKey, cfg.UpstreamTimeout(), logger)
	return NewGeoServiceWithProviders(client, client, logger)
}

// NewGeoServiceWithProviders creates a geo proxy service with custom
// providers. This is useful for testing with mock providers.
func NewGeoServiceWithProviders(
	geocodeProvider GeocodeProvider,
	routeProvider RouteProvider,
	logger *slog.Logger,
) Service {
	return &geoService{
		geocodeProvider: geocodeProvider,
		routeProvider:   routeProvider,
		logger:          logger.With("component", "geo-service"),
	}
}

// Geocode resolves a single-line address to a coordinate, taking the first
// (and only requested) candidate.
func (s *geoService) Geocode(address string) (arcgis.Point, error) {
	resp, err := s.geocodeProvider.FindAddressCandidates(address)
	if err != nil {
		s.logger.Error("geocode lookup failed", "error", err)
		return arcgis.Point{}, fmt.Errorf("geocode lookup failed: %w", err)
	}

	if len(resp.Candidates) == 0 {
		return arcgis.Point{}, ErrNoCandidates
	}

	return resp.Candidates[0].Location, nil
}

// SolveRoute reshapes the stops and optional polygon barriers into the
// provider's solve payload and returns its raw JSON response.
func (s *geoService) SolveRoute(stops []arcgis.Point, barriers [][][]float64) (json.RawMessage, error) {
	if len(stops) != 2 {
		return nil, fmt.Errorf("%w: got %d", ErrStopCount, len(stops))
	}

	params, err := buildSolveParams(stops, barriers)
	if err != nil {
		return nil, err
	}

	raw, err := s.routeProvider.SolveRoute(params)
	if err != nil {
		s.logger.Error("route solve failed", "error", err)
		return nil, fmt.Errorf("route solve failed: %w", err)
	}

	return raw, nil
}

// buildSolveParams assembles the form parameters of a route-solve request.
// Stops become named point features (P0, P1) in geographic coordinates;
// barriers, when present, become named polygon features (B0, B1, ...).
func buildSolveParams(stops []arcgis.Point, barriers [][][]float64) (url.Values, error) {
	wgs84 := arcgis.SpatialReference{Wkid: 4326}

	stopFeatures := make([]arcgis.StopFeature, len(stops))
	for i, p := range stops {
		stopFeatures[i] = arcgis.StopFeature{
			Geometry: arcgis.StopGeometry{
				X:                p.X,
				Y:                p.Y,
				SpatialReference: wgs84,
			},
			Attributes: arcgis.Attributes{Name: fmt.Sprintf("P%d", i)},
		}
	}

	params := url.Values{}
	params.Set("returnRoutes", "true")

	stopsJSON, err := json.Marshal(arcgis.Stops{
		Features:         stopFeatures,
		SpatialReference: wgs84,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal stops: %w", err)
	}
	params.Set("stops", string(stopsJSON))

	if len(barriers) > 0 {
		barrierFeatures := make([]arcgis.BarrierFeature, len(barriers))
		for i, ring := range barriers {
			barrierFeatures[i] = arcgis.BarrierFeature{
				Geometry: arcgis.BarrierGeometry{
					Rings:            [][][]float64{ring},
					SpatialReference: wgs84,
				},
				Attributes: arcgis.Attributes{Name: fmt.Sprintf("B%d", i)},
			}
		}
		barriersJSON, err := json.Marshal(arcgis.PolygonBarriers{Features: barrierFeatures})
		if err != nil {
			return nil, fmt.Errorf("failed to marshal barriers: %w", err)
		}
		params.Set("polygonBarriers", string(barriersJSON))
	}

	return params, nil
}
