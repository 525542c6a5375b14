// README: Geocoding cache entry model and sentinel errors.
package geocache

import (
	"errors"
	"time"

	"fareengine/internal/types"
)

// Entry is one remembered multiplier for a quantized coordinate.
type Entry struct {
	Latitude    float64
	Longitude   float64
	LocationKey string
	Multiplier  float64
	Placemark   types.Placemark
	CreatedAt   time.Time
}

// ErrMiss is returned by Fetch when no fresh entry exists for the key. All
// store failures on the read path collapse into this error so callers only
// ever distinguish hit from miss.
var ErrMiss = errors.New("geocache miss")
