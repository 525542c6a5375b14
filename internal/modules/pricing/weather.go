package pricing

import (
	"context"
	"strings"

	"fareengine/internal/types"
)

// WeatherProvider reports the current condition label for a coordinate.
// Best-effort collaborator: the engine tolerates any error or delay.
type WeatherProvider interface {
	CurrentCondition(ctx context.Context, p types.Point) (string, error)
}

const (
	heavyWeatherMultiplier = 1.25
	lightWeatherMultiplier = 1.1
)

var (
	heavyConditionTerms = []string{"storm", "hurricane", "thunder", "heavy", "torrential"}
	lightConditionTerms = []string{"rain", "drizzle", "snow", "shower", "sleet"}
)

// conditionMultiplier buckets a provider condition label into heavy
// precipitation, light precipitation or clear. Heavy terms win over light
// ones so "heavy rain" prices as heavy.
func conditionMultiplier(condition string) float64 {
	c := strings.ToLower(condition)
	for _, term := range heavyConditionTerms {
		if strings.Contains(c, term) {
			return heavyWeatherMultiplier
		}
	}
	for _, term := range lightConditionTerms {
		if strings.Contains(c, term) {
			return lightWeatherMultiplier
		}
	}
	return 1.0
}
