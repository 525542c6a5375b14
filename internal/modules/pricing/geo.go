// README: Pure geographic computation helpers.
package pricing

import (
	"math"

	"fareengine/internal/types"
)

const (
	earthRadiusMiles = 3958.8
	metersPerMile    = 1609.344
)

// haversineMiles returns the great-circle distance in miles between two
// points specified in decimal degrees.
func haversineMiles(a, b types.Point) float64 {
	dLat := degreesToRadians(b.Lat - a.Lat)
	dLng := degreesToRadians(b.Lng - a.Lng)

	rLat1 := degreesToRadians(a.Lat)
	rLat2 := degreesToRadians(b.Lat)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rLat1)*math.Cos(rLat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusMiles * c
}

func degreesToRadians(deg float64) float64 {
	return deg * math.Pi / 180.0
}

func milesFromMeters(meters float64) float64 {
	return meters / metersPerMile
}
