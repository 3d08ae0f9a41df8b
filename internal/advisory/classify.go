package advisory

import (
	"fmt"

	"ridgecast/internal/types"
)

// Mountain thresholds. Conditions are independent; any subset can fire.
const (
	freezingPointC       = 0.0
	denseFogVisibilityM  = 200.0
	highRainProbabilityP = 70.0
)

// classifyMountain evaluates the mountain ruleset against one sample and
// returns the findings in evaluation order.
func classifyMountain(s Sample) []Finding {
	var findings []Finding

	if s.Temperature < freezingPointC {
		findings = append(findings, Finding{
			Kind:    FindingFrozenPipes,
			Message: "risk of frozen water pipes",
		})
	}

	if s.Visibility < denseFogVisibilityM {
		findings = append(findings, Finding{
			Kind:    FindingDenseFog,
			Message: "dense fog risk",
		})
	}

	if s.RainProbability > highRainProbabilityP {
		findings = append(findings, Finding{
			Kind:    FindingHighRainProbability,
			Message: "high chance of rain, bring rain gear or consider postponing the trip",
		})
	}

	if s.Snowfall > 0 {
		findings = append(findings, Finding{
			Kind:    FindingSnowfall,
			Message: fmt.Sprintf("expected snowfall of %v mm/hr, watch for road icing and closures", s.Snowfall),
		})
	}

	return findings
}

// classifyRoad rates road icing risk from temperature, dew point, and
// relative humidity. The comparison operators and their evaluation order are
// load-bearing: boundary inputs (temperature exactly 0, humidity exactly 70)
// classify differently under seemingly equivalent rewrites, so the literal
// conditions are kept as-is. Rule 2 is checked only after rule 1 misses, and
// everything left over is medium, so the result is total over all inputs.
func classifyRoad(s Sample) RiskLevel {
	if s.Temperature < 0 && (s.DewPoint < 0 || s.Humidity >= 70) {
		return RiskHigh
	}
	if s.Temperature > 5 || s.DewPoint > 0 || s.Humidity < 70 {
		return RiskLow
	}
	return RiskMedium
}

// colorFor maps a category and road risk level to the advisory color.
// Mountain sites carry no traffic-light semantics and are always gray; the
// gray fallback for road is defensive and unreachable given classifyRoad is
// total.
func colorFor(category types.Category, level RiskLevel) AdvisoryColor {
	if category != types.CategoryRoad {
		return ColorGray
	}
	switch level {
	case RiskHigh:
		return ColorRed
	case RiskMedium:
		return ColorOrange
	case RiskLow:
		return ColorGreen
	default:
		return ColorGray
	}
}
