package advisory

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"ridgecast/internal/providers/openmeteo"
	"ridgecast/internal/types"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockForecastProvider struct {
	response *openmeteo.ForecastAPIResponse
	err      error
	calls    int
}

func (m *mockForecastProvider) GetHourlyForecast(latitude, longitude float64, date string) (*openmeteo.ForecastAPIResponse, error) {
	m.calls++
	return m.response, m.err
}

// dayResponse builds a full-day hourly response for the given date with
// neutral values, then lets the caller override single hours.
func dayResponse(date string) *openmeteo.ForecastAPIResponse {
	resp := &openmeteo.ForecastAPIResponse{}
	for h := 0; h < 24; h++ {
		resp.Hourly.Time = append(resp.Hourly.Time, fmt.Sprintf("%sT%02d:00", date, h))
		resp.Hourly.Temperature2M = append(resp.Hourly.Temperature2M, 10)
		resp.Hourly.RelativeHumidity2M = append(resp.Hourly.RelativeHumidity2M, 50)
		resp.Hourly.PrecipitationProbability = append(resp.Hourly.PrecipitationProbability, 20)
		resp.Hourly.Snowfall = append(resp.Hourly.Snowfall, 0)
		resp.Hourly.Visibility = append(resp.Hourly.Visibility, 10000)
		resp.Hourly.DewPoint2M = append(resp.Hourly.DewPoint2M, 2)
		resp.Hourly.Rain = append(resp.Hourly.Rain, 0)
	}
	return resp
}

// newTestService wires the service with a mock provider and a clock fixed at
// 15:47 local time, so alignment targets hour 16 of the requested date.
func newTestService(provider *mockForecastProvider) Service {
	clock := clockwork.NewFakeClockAt(time.Date(2026, 1, 5, 15, 47, 0, 0, tzUTC8))
	return NewAdvisoryServiceWithProvider(provider, clock, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestGetAdvisory_UnknownLocation(t *testing.T) {
	provider := &mockForecastProvider{response: dayResponse("2026-01-05")}
	svc := newTestService(provider)

	_, err := svc.GetAdvisory("nowhere", "2026-01-05")

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrLocationNotFound))
	assert.Equal(t, 0, provider.calls, "no network call should be made for an unknown code")
}

func TestGetAdvisory_InvalidDate(t *testing.T) {
	provider := &mockForecastProvider{response: dayResponse("2026-01-05")}
	svc := newTestService(provider)

	_, err := svc.GetAdvisory("ys", "05/01/2026x")

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidDate))
	assert.Equal(t, 0, provider.calls, "no network call should be made for a bad date")
}

func TestGetAdvisory_ProviderFailure(t *testing.T) {
	provider := &mockForecastProvider{err: errors.New("connection refused")}
	svc := newTestService(provider)

	_, err := svc.GetAdvisory("ys", "2026-01-05")

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUpstreamUnavailable))
	assert.Contains(t, err.Error(), "connection refused")
}

func TestGetAdvisory_EmptyTimeSeries(t *testing.T) {
	provider := &mockForecastProvider{response: &openmeteo.ForecastAPIResponse{}}
	svc := newTestService(provider)

	_, err := svc.GetAdvisory("ys", "2026-01-05")

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformedForecast))
}

func TestGetAdvisory_RaggedSeries(t *testing.T) {
	resp := dayResponse("2026-01-05")
	resp.Hourly.DewPoint2M = resp.Hourly.DewPoint2M[:5]
	provider := &mockForecastProvider{response: resp}
	svc := newTestService(provider)

	_, err := svc.GetAdvisory("ys", "2026-01-05")

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformedForecast))
}

func TestGetAdvisory_MountainScenario(t *testing.T) {
	resp := dayResponse("2026-01-05")
	// 15:47 rounds to 16:00; place the risky hour at index 16.
	resp.Hourly.Temperature2M[16] = -1
	resp.Hourly.Visibility[16] = 150
	resp.Hourly.PrecipitationProbability[16] = 80
	resp.Hourly.Snowfall[16] = 2
	provider := &mockForecastProvider{response: resp}
	svc := newTestService(provider)

	got, err := svc.GetAdvisory("ys", "2026-01-05")
	require.NoError(t, err)

	assert.Equal(t, types.CategoryMountain, got.Category)
	assert.Equal(t, ColorGray, got.Color)
	assert.Nil(t, got.OverallRisk)
	assert.Equal(t, "玉山", got.Location.Name)

	require.Len(t, got.Findings, 4)
	assert.Equal(t, FindingFrozenPipes, got.Findings[0].Kind)
	assert.Equal(t, FindingDenseFog, got.Findings[1].Kind)
	assert.Equal(t, FindingHighRainProbability, got.Findings[2].Kind)
	assert.Equal(t, FindingSnowfall, got.Findings[3].Kind)
	require.Len(t, got.Risks, 4)

	assert.Equal(t, -1.0, got.Sample.Temperature)
	assert.Equal(t, 150.0, got.Sample.Visibility)
	assert.Equal(t, 16, got.Sample.Time.Hour())
}

func TestGetAdvisory_RoadHighRisk(t *testing.T) {
	resp := dayResponse("2026-01-05")
	resp.Hourly.Temperature2M[16] = -2
	resp.Hourly.DewPoint2M[16] = -3
	resp.Hourly.RelativeHumidity2M[16] = 75
	provider := &mockForecastProvider{response: resp}
	svc := newTestService(provider)

	got, err := svc.GetAdvisory("t7", "2026-01-05")
	require.NoError(t, err)

	assert.Equal(t, types.CategoryRoad, got.Category)
	require.NotNil(t, got.OverallRisk)
	assert.Equal(t, RiskHigh, *got.OverallRisk)
	assert.Equal(t, ColorRed, got.Color)
	assert.Equal(t, []string{"high risk"}, got.Risks)
}

func TestGetAdvisory_RoadRuleOrder(t *testing.T) {
	// Temperature above 5 hits the low-risk rule before the high-risk
	// conjunction is ever considered, despite the humid, cold dew point.
	resp := dayResponse("2026-01-05")
	resp.Hourly.Temperature2M[16] = 6
	resp.Hourly.DewPoint2M[16] = -5
	resp.Hourly.RelativeHumidity2M[16] = 90
	provider := &mockForecastProvider{response: resp}
	svc := newTestService(provider)

	got, err := svc.GetAdvisory("t7", "2026-01-05")
	require.NoError(t, err)

	require.NotNil(t, got.OverallRisk)
	assert.Equal(t, RiskLow, *got.OverallRisk)
	assert.Equal(t, ColorGreen, got.Color)
}

func TestGetAdvisory_FutureDateKeepsCurrentHour(t *testing.T) {
	resp := dayResponse("2026-01-10")
	resp.Hourly.Temperature2M[16] = -4
	provider := &mockForecastProvider{response: resp}
	svc := newTestService(provider)

	got, err := svc.GetAdvisory("hhs", "2026-01-10")
	require.NoError(t, err)

	// The clock says Jan 5 15:47; the sample must come from Jan 10 16:00.
	assert.Equal(t, 16, got.Sample.Time.Hour())
	assert.Equal(t, 10, got.Sample.Time.Day())
	assert.Equal(t, -4.0, got.Sample.Temperature)
}
