package geocache

import (
	"fmt"

	"fareengine/internal/types"
)

// QuantizeKey maps a coordinate onto its cache key by rounding both axes to
// three decimal places (a grid cell of roughly 110 m), so nearby coordinates
// collapse onto the same entry.
func QuantizeKey(p types.Point) string {
	return fmt.Sprintf("%.3f_%.3f", p.Lat, p.Lng)
}
