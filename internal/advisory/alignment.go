package advisory

import (
	"fmt"
	"time"
)

// tzUTC8 is the fixed UTC+8 offset every series timestamp shares. A fixed
// zone rather than the IANA database entry keeps alignment independent of
// the host's tzdata.
var tzUTC8 = time.FixedZone("UTC+8", 8*60*60)

const (
	// seriesTimeLayout is the hour-granularity ISO form Open-Meteo returns.
	seriesTimeLayout = "2006-01-02T15:04"
	dateLayout       = "2006-01-02"
)

// parseSeriesTimes parses the provider's hourly timestamps into the fixed
// UTC+8 zone, preserving order.
func parseSeriesTimes(raw []string) ([]time.Time, error) {
	times := make([]time.Time, len(raw))
	for i, s := range raw {
		t, err := time.ParseInLocation(seriesTimeLayout, s, tzUTC8)
		if err != nil {
			return nil, fmt.Errorf("failed to parse series timestamp %q: %w", s, err)
		}
		times[i] = t
	}
	return times, nil
}

// roundToNearestHour truncates minutes and seconds, then rounds up when the
// original minute was 30 or later. 15:09 becomes 15:00, 16:58 becomes 17:00;
// 23:30 rolls over to 00:00 of the next day.
func roundToNearestHour(t time.Time) time.Time {
	rounded := time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), 0, 0, 0, t.Location())
	if t.Minute() >= 30 {
		rounded = rounded.Add(time.Hour)
	}
	return rounded
}

// targetInstant puts the rounded hour-of-day onto the requested calendar
// date, producing the synthetic instant the series is sampled against:
// "if today were that date, conditions at this hour".
func targetInstant(date string, rounded time.Time) (time.Time, error) {
	d, err := time.ParseInLocation(dateLayout, date, tzUTC8)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse target date %q: %w", date, err)
	}
	return time.Date(d.Year(), d.Month(), d.Day(), rounded.Hour(), 0, 0, 0, tzUTC8), nil
}

// nearestIndex returns the index of the timestamp with minimum absolute
// difference to the target instant. Ties resolve to the smallest index.
func nearestIndex(times []time.Time, target time.Time) int {
	best := 0
	bestDiff := absDuration(times[0].Sub(target))
	for i := 1; i < len(times); i++ {
		d := absDuration(times[i].Sub(target))
		if d < bestDiff {
			best = i
			bestDiff = d
		}
	}
	return best
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}
