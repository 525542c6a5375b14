package pricing

import "time"

// hourRange maps the half-open hour window [start, end) to a multiplier.
type hourRange struct {
	start      int
	end        int
	multiplier float64
}

// Demand windows. Hours not covered by a range price at 1.0.
var (
	weekdayRanges = []hourRange{
		{start: 7, end: 9, multiplier: 1.4},   // morning rush
		{start: 16, end: 19, multiplier: 1.5}, // evening rush
		{start: 22, end: 24, multiplier: 1.3}, // late night
	}
	weekendRanges = []hourRange{
		{start: 0, end: 3, multiplier: 1.7}, // bar close
		{start: 10, end: 14, multiplier: 1.2},
		{start: 18, end: 24, multiplier: 1.4},
	}
)

// TimeOfDayMultiplier returns the demand multiplier for the local hour of t.
// Deterministic, no I/O, no failure mode.
func TimeOfDayMultiplier(t time.Time) float64 {
	ranges := weekdayRanges
	if isWeekend(t.Weekday()) {
		ranges = weekendRanges
	}
	hour := t.Hour()
	for _, r := range ranges {
		if hour >= r.start && hour < r.end {
			return r.multiplier
		}
	}
	return 1.0
}

func isWeekend(d time.Weekday) bool {
	return d == time.Saturday || d == time.Sunday
}
