package pricing

import (
	"testing"
	"time"
)

func TestTimeOfDayMultiplier(t *testing.T) {
	// 2026-03-10 is a Tuesday, 2026-03-14 a Saturday, 2026-03-15 a Sunday.
	weekday := func(hour int) time.Time {
		return time.Date(2026, 3, 10, hour, 30, 0, 0, time.UTC)
	}
	saturday := func(hour int) time.Time {
		return time.Date(2026, 3, 14, hour, 30, 0, 0, time.UTC)
	}

	tests := []struct {
		name string
		t    time.Time
		want float64
	}{
		{"weekday morning rush start", weekday(7), 1.4},
		{"weekday morning rush last hour", weekday(8), 1.4},
		{"weekday morning rush end is exclusive", weekday(9), 1.0},
		{"weekday midday", weekday(12), 1.0},
		{"weekday evening rush start", weekday(16), 1.5},
		{"weekday evening rush last hour", weekday(18), 1.5},
		{"weekday evening rush end is exclusive", weekday(19), 1.0},
		{"weekday late night", weekday(22), 1.3},
		{"weekday last hour of the day", weekday(23), 1.3},
		{"weekday midnight is uncovered", weekday(0), 1.0},
		{"weekend bar close", saturday(0), 1.7},
		{"weekend bar close last hour", saturday(2), 1.7},
		{"weekend bar close end is exclusive", saturday(3), 1.0},
		{"weekend brunch", saturday(10), 1.2},
		{"weekend brunch last hour", saturday(13), 1.2},
		{"weekend afternoon", saturday(14), 1.0},
		{"weekend evening", saturday(18), 1.4},
		{"weekend evening last hour", saturday(23), 1.4},
		{"weekend morning gap", saturday(8), 1.0},
		{"sunday uses the weekend table", time.Date(2026, 3, 15, 1, 0, 0, 0, time.UTC), 1.7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TimeOfDayMultiplier(tt.t); got != tt.want {
				t.Errorf("TimeOfDayMultiplier(%v) = %v, want %v", tt.t, got, tt.want)
			}
		})
	}
}

func TestIsWeekend(t *testing.T) {
	if !isWeekend(time.Saturday) || !isWeekend(time.Sunday) {
		t.Error("Saturday and Sunday must count as weekend")
	}
	for d := time.Monday; d <= time.Friday; d++ {
		if isWeekend(d) {
			t.Errorf("%v must not count as weekend", d)
		}
	}
}
