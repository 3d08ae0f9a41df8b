package advisory

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"ridgecast/internal/config"
	"ridgecast/internal/location"
	"ridgecast/internal/providers/openmeteo"
	"ridgecast/internal/types"

	"github.com/jonboulle/clockwork"
)

// Sentinel errors for the engine's failure taxonomy. Handlers map these to
// HTTP statuses and displayable messages with errors.Is.
var (
	ErrLocationNotFound    = errors.New("location not found")
	ErrInvalidDate         = errors.New("date conversion failed")
	ErrUpstreamUnavailable = errors.New("forecast unavailable")
	ErrMalformedForecast   = errors.New("malformed forecast data")
)

// ForecastProvider fetches the hourly series for one coordinate and date.
type ForecastProvider interface {
	GetHourlyForecast(latitude, longitude float64, date string) (*openmeteo.ForecastAPIResponse, error)
}

// Service produces a risk advisory for a location code and calendar date.
type Service interface {
	GetAdvisory(code, date string) (*Advisory, error)
}

type advisoryService struct {
	forecastProvider ForecastProvider
	clock            clockwork.Clock
	logger           *slog.Logger
}

// NewAdvisoryService creates an advisory service backed by the real
// Open-Meteo client and the system clock.
func NewAdvisoryService(cfg *config.Config, logger *slog.Logger) Service {
	return NewAdvisoryServiceWithProvider(
		openmeteo.NewClient(cfg.UpstreamTimeout(), logger),
		clockwork.NewRealClock(),
		logger,
	)
}

// NewAdvisoryServiceWithProvider creates an advisory service with a custom
// provider and clock. This is useful for testing with a mock provider and a
// fake clock.
func NewAdvisoryServiceWithProvider(
	forecastProvider ForecastProvider,
	clock clockwork.Clock,
	logger *slog.Logger,
) Service {
	return &advisoryService{
		forecastProvider: forecastProvider,
		clock:            clock,
		logger:           logger.With("component", "advisory-service"),
	}
}

// GetAdvisory looks up the location, fetches that date's hourly forecast,
// aligns it to the nearest wall-clock hour, and classifies the sample by the
// location's category.
func (s *advisoryService) GetAdvisory(code, date string) (*Advisory, error) {
	loc, ok := location.Lookup(code)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrLocationNotFound, code)
	}

	// Reject a bad date before spending a network call on it.
	rounded := roundToNearestHour(s.clock.Now().In(tzUTC8))
	target, err := targetInstant(date, rounded)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}

	resp, err := s.forecastProvider.GetHourlyForecast(
		loc.Coordinates.Latitude,
		loc.Coordinates.Longitude,
		date,
	)
	if err != nil {
		s.logger.Error("failed to fetch forecast", "code", code, "date", date, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}

	sample, err := s.alignSample(resp.Hourly, target)
	if err != nil {
		s.logger.Error("forecast series unusable", "code", code, "date", date, "error", err)
		return nil, err
	}

	advisory := s.classify(loc, date, sample)

	s.logger.Debug("advisory produced",
		"code", code,
		"date", date,
		"category", advisory.Category.String(),
		"color", string(advisory.Color),
		"findings", len(advisory.Findings),
	)

	return advisory, nil
}

// alignSample validates the parallel series and extracts the values at the
// index nearest the target instant.
func (s *advisoryService) alignSample(hourly openmeteo.HourlyData, target time.Time) (Sample, error) {
	if len(hourly.Time) == 0 {
		return Sample{}, fmt.Errorf("%w: empty time series", ErrMalformedForecast)
	}

	n := len(hourly.Time)
	series := map[string][]float64{
		"temperature_2m":            hourly.Temperature2M,
		"relative_humidity_2m":      hourly.RelativeHumidity2M,
		"precipitation_probability": hourly.PrecipitationProbability,
		"snowfall":                  hourly.Snowfall,
		"visibility":                hourly.Visibility,
		"dew_point_2m":              hourly.DewPoint2M,
		"rain":                      hourly.Rain,
	}
	for name, values := range series {
		if len(values) != n {
			return Sample{}, fmt.Errorf("%w: series %s has %d entries, want %d",
				ErrMalformedForecast, name, len(values), n)
		}
	}

	times, err := parseSeriesTimes(hourly.Time)
	if err != nil {
		return Sample{}, fmt.Errorf("%w: %v", ErrMalformedForecast, err)
	}

	idx := nearestIndex(times, target)

	return Sample{
		Time:            times[idx],
		Temperature:     hourly.Temperature2M[idx],
		Humidity:        hourly.RelativeHumidity2M[idx],
		RainProbability: hourly.PrecipitationProbability[idx],
		Rain:            hourly.Rain[idx],
		Snowfall:        hourly.Snowfall[idx],
		Visibility:      hourly.Visibility[idx],
		DewPoint:        hourly.DewPoint2M[idx],
	}, nil
}

// classify dispatches on the location category and assembles the result.
func (s *advisoryService) classify(loc location.Location, date string, sample Sample) *Advisory {
	category := loc.Category()

	advisory := &Advisory{
		Location: loc,
		Category: category,
		Date:     date,
		Sample:   sample,
	}

	switch category {
	case types.CategoryRoad:
		level := classifyRoad(sample)
		advisory.OverallRisk = &level
		advisory.Findings = []Finding{{
			Kind:    FindingRoadCondition,
			Message: level.String() + " risk",
		}}
	default:
		advisory.Findings = classifyMountain(sample)
	}

	advisory.Risks = make([]string, len(advisory.Findings))
	for i, f := range advisory.Findings {
		advisory.Risks[i] = f.Message
	}

	var level RiskLevel
	if advisory.OverallRisk != nil {
		level = *advisory.OverallRisk
	}
	advisory.Color = colorFor(category, level)

	return advisory
}
