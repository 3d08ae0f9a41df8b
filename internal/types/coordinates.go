package types

// Coordinates represents a geographic point in decimal degrees (WGS 84)
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// NewCoords creates a Coordinates value from latitude and longitude
func NewCoords(latitude, longitude float64) Coordinates {
	return Coordinates{
		Latitude:  latitude,
		Longitude: longitude,
	}
}
