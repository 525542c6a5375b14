// README: Reverse-geocoding fallback classifier for coordinates outside every zone.
package pricing

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"fareengine/internal/async"
	"fareengine/internal/modules/geocache"
	"fareengine/internal/types"
)

// ReverseGeocoder resolves a coordinate to place attributes.
type ReverseGeocoder interface {
	ReverseGeocode(ctx context.Context, p types.Point) (types.Placemark, error)
}

// MultiplierCache is the slice of the geocoding cache store the classifier
// needs. Upsert is a best-effort side effect and reports nothing.
type MultiplierCache interface {
	Fetch(ctx context.Context, key string) (float64, error)
	Upsert(ctx context.Context, p types.Point, key string, multiplier float64, pm types.Placemark)
}

const (
	airportMultiplier    = 1.5
	noLocalityMultiplier = 0.9

	upsertTimeout = 5 * time.Second
)

// placemarkRule is one entry of the ordered classification chain. Rules are
// evaluated top-down, first match wins.
type placemarkRule struct {
	name       string
	matches    func(pm types.Placemark) bool
	multiplier float64
}

var placemarkRules = []placemarkRule{
	{name: "airport", matches: isAirport, multiplier: airportMultiplier},
	{name: "pioneer square", matches: matchesNeighborhood("pioneer square"), multiplier: 1.25},
	{name: "capitol hill", matches: matchesNeighborhood("capitol hill"), multiplier: 1.2},
	{name: "belltown", matches: matchesNeighborhood("belltown"), multiplier: 1.15},
	{name: "suburban business district", matches: isSuburbanBusinessDistrict, multiplier: 1.15},
	{name: "suburban", matches: isSuburb, multiplier: 1.0},
	// The one place a multiplier below 1.0 is allowed: nothing resolved at
	// all earns a mild discount rather than a surge.
	{name: "no locality", matches: func(pm types.Placemark) bool { return pm.Locality == "" }, multiplier: noLocalityMultiplier},
}

// classifyPlacemark runs the rule chain and returns the multiplier plus the
// name of the rule that decided it.
func classifyPlacemark(pm types.Placemark) (float64, string) {
	for _, r := range placemarkRules {
		if r.matches(pm) {
			return r.multiplier, r.name
		}
	}
	return 1.0, "default"
}

var (
	satelliteCities        = []string{"bellevue", "redmond", "kirkland", "renton", "kent", "shoreline"}
	businessDistrictCities = []string{"bellevue", "redmond"}
	businessDistrictTerms  = []string{"main st", "plaza", "center", "tower", "office", "corporate"}
)

func isAirport(pm types.Placemark) bool {
	if strings.Contains(strings.ToLower(pm.Name), "airport") {
		return true
	}
	for _, poi := range pm.PointsOfInterest {
		if strings.Contains(strings.ToLower(poi), "airport") {
			return true
		}
	}
	return false
}

func matchesNeighborhood(substr string) func(types.Placemark) bool {
	return func(pm types.Placemark) bool {
		return strings.Contains(normalizedFields(pm), substr)
	}
}

func isSuburb(pm types.Placemark) bool {
	locality := strings.ToLower(pm.Locality)
	for _, city := range satelliteCities {
		if locality == city {
			return true
		}
	}
	return false
}

func isSuburbanBusinessDistrict(pm types.Placemark) bool {
	locality := strings.ToLower(pm.Locality)
	eligible := false
	for _, city := range businessDistrictCities {
		if locality == city {
			eligible = true
			break
		}
	}
	if !eligible {
		return false
	}
	hints := strings.ToLower(pm.Thoroughfare + " " + pm.Name)
	for _, term := range businessDistrictTerms {
		if strings.Contains(hints, term) {
			return true
		}
	}
	return false
}

// normalizedFields concatenates the address fields the neighborhood rules
// match against, lowercased.
func normalizedFields(pm types.Placemark) string {
	return strings.ToLower(strings.Join([]string{
		pm.Name, pm.SubLocality, pm.Locality, pm.Thoroughfare, pm.AdministrativeArea,
	}, " "))
}

// FallbackClassifier resolves a location multiplier for a coordinate outside
// every configured zone: cached value first, then a timeout-bounded reverse
// geocode classified through the rule chain.
type FallbackClassifier struct {
	cache    MultiplierCache
	geocoder ReverseGeocoder
	timeout  time.Duration
	log      *zap.Logger
}

func NewFallbackClassifier(cache MultiplierCache, geocoder ReverseGeocoder, timeout time.Duration, log *zap.Logger) *FallbackClassifier {
	return &FallbackClassifier{
		cache:    cache,
		geocoder: geocoder,
		timeout:  timeout,
		log:      log,
	}
}

// Multiplier returns the location multiplier for p and where it came from.
// It never fails: a missed cache plus a failed or timed-out lookup yields
// the neutral 1.0, and a failed lookup is never cached.
func (c *FallbackClassifier) Multiplier(ctx context.Context, p types.Point) (float64, string) {
	key := geocache.QuantizeKey(p)

	if c.cache != nil {
		if m, err := c.cache.Fetch(ctx, key); err == nil {
			return m, LocationSourceCache
		}
	}

	if c.geocoder == nil {
		return 1.0, LocationSourceNone
	}

	pm, ok := async.Race(ctx, c.timeout, func(ctx context.Context) (types.Placemark, error) {
		return c.geocoder.ReverseGeocode(ctx, p)
	})
	if !ok {
		c.log.Debug("reverse geocode unavailable", zap.String("location_key", key))
		return 1.0, LocationSourceNone
	}

	m, rule := classifyPlacemark(pm)
	c.log.Debug("classified placemark",
		zap.String("location_key", key),
		zap.String("rule", rule),
		zap.Float64("multiplier", m))

	if c.cache != nil {
		// Write-behind so a slow store cannot delay the estimate.
		wctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), upsertTimeout)
		go func() {
			defer cancel()
			c.cache.Upsert(wctx, p, key, m, pm)
		}()
	}
	return m, LocationSourceGeocode
}
