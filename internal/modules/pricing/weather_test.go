package pricing

import "testing"

func TestConditionMultiplier(t *testing.T) {
	tests := []struct {
		condition string
		want      float64
	}{
		{"Thunderstorm", 1.25},
		{"heavy intensity rain", 1.25},
		{"Hurricane", 1.25},
		{"tropical storm", 1.25},
		{"Rain", 1.1},
		{"light rain", 1.1},
		{"Drizzle", 1.1},
		{"Snow", 1.1},
		{"sleet", 1.1},
		{"rain shower", 1.1},
		{"Clear", 1.0},
		{"Clouds", 1.0},
		{"overcast clouds", 1.0},
		{"Mist", 1.0},
		{"", 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.condition, func(t *testing.T) {
			if got := conditionMultiplier(tt.condition); got != tt.want {
				t.Errorf("conditionMultiplier(%q) = %v, want %v", tt.condition, got, tt.want)
			}
		})
	}
}
