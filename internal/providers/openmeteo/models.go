package openmeteo

// HourlyData holds the provider's parallel hourly series. Every slice is
// index-aligned with Time; index i of each series describes the same instant.
type HourlyData struct {
	Time                     []string  `json:"time"`
	Temperature2M            []float64 `json:"temperature_2m"`
	RelativeHumidity2M       []float64 `json:"relative_humidity_2m"`
	PrecipitationProbability []float64 `json:"precipitation_probability"`
	Snowfall                 []float64 `json:"snowfall"`
	Visibility               []float64 `json:"visibility"`
	DewPoint2M               []float64 `json:"dew_point_2m"`
	Rain                     []float64 `json:"rain"`
}

// ForecastAPIResponse is the raw Open-Meteo forecast response
type ForecastAPIResponse struct {
	Latitude       float64           `json:"latitude"`
	Longitude      float64           `json:"longitude"`
	Timezone       string            `json:"timezone"`
	Elevation      float64           `json:"elevation"`
	HourlyUnits    map[string]string `json:"hourly_units"`
	Hourly         HourlyData        `json:"hourly"`
	GenerationTime float64           `json:"generationtime_ms"`
}
