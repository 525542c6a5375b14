// README: Estimate result models returned to callers.
package pricing

// Where the location multiplier came from, kept on the breakdown for audit.
const (
	LocationSourceZone    = "zone"
	LocationSourceCache   = "cache"
	LocationSourceGeocode = "geocode"
	LocationSourceNone    = "none"
)

// MultiplierBreakdown records the three demand multipliers that shaped one
// estimate.
type MultiplierBreakdown struct {
	TimeOfDay float64 `json:"time_of_day"`
	Location  float64 `json:"location"`
	Weather   float64 `json:"weather"`

	MatchedZones   []string `json:"matched_zones,omitempty"`
	LocationSource string   `json:"location_source,omitempty"`
}

// NeutralBreakdown is the all-ones breakdown used by the fallback estimate.
func NeutralBreakdown() MultiplierBreakdown {
	return MultiplierBreakdown{
		TimeOfDay:      1.0,
		Location:       1.0,
		Weather:        1.0,
		LocationSource: LocationSourceNone,
	}
}

// RideCostEstimate is the final priced result. It is returned to the caller
// and never persisted.
type RideCostEstimate struct {
	FinalPrice           float64             `json:"final_price"`
	TotalMultiplier      float64             `json:"total_multiplier"`
	EstimatedTimeMinutes float64             `json:"estimated_time_minutes"`
	DistanceMiles        float64             `json:"distance_miles"`
	Multipliers          MultiplierBreakdown `json:"multipliers"`
}
