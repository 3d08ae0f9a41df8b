package advisory

import (
	"fmt"
	"time"

	"ridgecast/internal/location"
	"ridgecast/internal/types"
)

// RiskLevel is the three-tier road-condition rating.
type RiskLevel int

const (
	RiskLow RiskLevel = iota
	RiskMedium
	RiskHigh
)

func (r RiskLevel) String() string {
	switch r {
	case RiskLow:
		return "low"
	case RiskMedium:
		return "medium"
	case RiskHigh:
		return "high"
	default:
		return fmt.Sprintf("unknown (%d)", int(r))
	}
}

// MarshalJSON renders the risk level as its lowercase string form
func (r RiskLevel) MarshalJSON() ([]byte, error) {
	return []byte(`"` + r.String() + `"`), nil
}

// AdvisoryColor is the traffic-light style severity indicator.
type AdvisoryColor string

const (
	ColorGray   AdvisoryColor = "gray"
	ColorRed    AdvisoryColor = "red"
	ColorOrange AdvisoryColor = "orange"
	ColorGreen  AdvisoryColor = "green"
)

// FindingKind tags which classification rule produced a finding, so callers
// and tests can check which rules fired without matching message strings.
type FindingKind int

const (
	FindingFrozenPipes FindingKind = iota
	FindingDenseFog
	FindingHighRainProbability
	FindingSnowfall
	FindingRoadCondition
)

func (k FindingKind) String() string {
	switch k {
	case FindingFrozenPipes:
		return "frozen_pipes"
	case FindingDenseFog:
		return "dense_fog"
	case FindingHighRainProbability:
		return "high_rain_probability"
	case FindingSnowfall:
		return "snowfall"
	case FindingRoadCondition:
		return "road_condition"
	default:
		return fmt.Sprintf("unknown (%d)", int(k))
	}
}

// MarshalJSON renders the finding kind as its snake_case string form
func (k FindingKind) MarshalJSON() ([]byte, error) {
	return []byte(`"` + k.String() + `"`), nil
}

// Finding is one fired classification rule with its display message.
type Finding struct {
	Kind    FindingKind `json:"kind"`
	Message string      `json:"message"`
}

// Sample holds the seven hourly values at the chosen series index.
type Sample struct {
	Time            time.Time `json:"time"`
	Temperature     float64   `json:"temperature"`
	Humidity        float64   `json:"humidity"`
	RainProbability float64   `json:"rain_probability"`
	Rain            float64   `json:"rain"`
	Snowfall        float64   `json:"snowfall"`
	Visibility      float64   `json:"visibility"`
	DewPoint        float64   `json:"dew_point"`
}

// Advisory is the engine's result for one (location, date) query. It is
// constructed fresh per query and never mutated afterwards.
type Advisory struct {
	Location    location.Location `json:"location"`
	Category    types.Category    `json:"category"`
	Date        string            `json:"date"`
	Sample      Sample            `json:"sample"`
	Findings    []Finding         `json:"findings"`
	Risks       []string          `json:"risks"`
	OverallRisk *RiskLevel        `json:"overall_risk,omitempty"`
	Color       AdvisoryColor     `json:"color"`
}
