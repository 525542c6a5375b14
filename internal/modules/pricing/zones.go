package pricing

import "fareengine/internal/types"

// pointInPolygon tests polygon containment with the even-odd ray-casting
// rule: a horizontal ray east from p toggles an inside flag on every edge
// whose latitudes straddle p's latitude and whose crossing lies east of p.
// Polygons with fewer than 3 vertices contain nothing.
func pointInPolygon(p types.Point, polygon []types.Point) bool {
	if len(polygon) < 3 {
		return false
	}

	inside := false
	j := len(polygon) - 1
	for i := 0; i < len(polygon); i++ {
		a, b := polygon[i], polygon[j]
		if (a.Lat > p.Lat) != (b.Lat > p.Lat) &&
			p.Lng < (b.Lng-a.Lng)*(p.Lat-a.Lat)/(b.Lat-a.Lat)+a.Lng {
			inside = !inside
		}
		j = i
	}
	return inside
}

// MatchZones returns the highest multiplier among zones containing the
// pickup or the dropoff, or 1.0 when no zone matches, along with the names
// of every matched zone.
func MatchZones(zones []Zone, pickup, dropoff types.Point) (float64, []string) {
	multiplier := 1.0
	var matched []string
	for _, z := range zones {
		if pointInPolygon(pickup, z.Polygon) || pointInPolygon(dropoff, z.Polygon) {
			matched = append(matched, z.Name)
			if z.Multiplier > multiplier {
				multiplier = z.Multiplier
			}
		}
	}
	return multiplier, matched
}
