// README: Static pricing configuration: tariff constants and geofenced surge zones.
package pricing

import (
	"fmt"
	"time"

	"fareengine/internal/types"
)

// Zone is a named geofence carrying a surge multiplier. A trip touching the
// zone with either endpoint picks the multiplier up.
type Zone struct {
	Name       string
	Multiplier float64
	Polygon    []types.Point
}

// Config holds the tariff constants. Loaded once at process start and never
// mutated.
type Config struct {
	BaseFare      float64
	CostPerMile   float64
	CostPerMinute float64
	MinimumFare   float64
	MaximumFare   float64

	WeatherTimeout time.Duration
	GeocodeTimeout time.Duration

	// AverageSpeedMPH approximates travel time from straight-line distance
	// when no route provider is wired.
	AverageSpeedMPH float64

	Zones []Zone
}

func DefaultConfig() Config {
	return Config{
		BaseFare:        2.50,
		CostPerMile:     1.75,
		CostPerMinute:   0.35,
		MinimumFare:     7.00,
		MaximumFare:     150.00,
		WeatherTimeout:  3 * time.Second,
		GeocodeTimeout:  5 * time.Second,
		AverageSpeedMPH: 18,
		Zones:           defaultZones(),
	}
}

func defaultZones() []Zone {
	return []Zone{
		{
			Name:       "downtown core",
			Multiplier: 1.3,
			Polygon: []types.Point{
				{Lat: 47.598, Lng: -122.344},
				{Lat: 47.598, Lng: -122.326},
				{Lat: 47.615, Lng: -122.320},
				{Lat: 47.618, Lng: -122.342},
			},
		},
		{
			Name:       "stadium district",
			Multiplier: 1.4,
			Polygon: []types.Point{
				{Lat: 47.586, Lng: -122.338},
				{Lat: 47.586, Lng: -122.327},
				{Lat: 47.597, Lng: -122.327},
				{Lat: 47.597, Lng: -122.338},
			},
		},
		{
			Name:       "university district",
			Multiplier: 1.2,
			Polygon: []types.Point{
				{Lat: 47.650, Lng: -122.322},
				{Lat: 47.650, Lng: -122.300},
				{Lat: 47.668, Lng: -122.300},
				{Lat: 47.668, Lng: -122.322},
			},
		},
	}
}

func (c Config) Validate() error {
	if c.MinimumFare > c.MaximumFare {
		return fmt.Errorf("minimum fare %.2f exceeds maximum fare %.2f", c.MinimumFare, c.MaximumFare)
	}
	if c.AverageSpeedMPH <= 0 {
		return fmt.Errorf("average speed must be positive")
	}
	for _, z := range c.Zones {
		if z.Multiplier < 1.0 {
			return fmt.Errorf("zone %q: multiplier %.2f below 1.0", z.Name, z.Multiplier)
		}
		if len(z.Polygon) < 3 {
			return fmt.Errorf("zone %q: polygon needs at least 3 vertices, got %d", z.Name, len(z.Polygon))
		}
	}
	return nil
}
