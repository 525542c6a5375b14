// README: Pricing orchestrator composing the multiplier sources into a fare estimate.
package pricing

import (
	"context"
	"math"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"fareengine/internal/async"
	"fareengine/internal/types"
)

// GeoProvider resolves addresses and routes. External collaborator; any
// failure degrades the estimate rather than surfacing to the caller.
type GeoProvider interface {
	Geocode(ctx context.Context, address string) (types.Point, error)
	Route(ctx context.Context, from, to types.Point) (types.Route, error)
}

type locationResolver interface {
	Multiplier(ctx context.Context, p types.Point) (float64, string)
}

type Service struct {
	cfg      Config
	geo      GeoProvider
	weather  WeatherProvider
	fallback locationResolver
	log      *zap.Logger
	now      func() time.Time
}

// NewService wires the orchestrator. geo, weather and fallback may each be
// nil; the corresponding multiplier then stays neutral.
func NewService(cfg Config, geo GeoProvider, weather WeatherProvider, fallback *FallbackClassifier, log *zap.Logger) *Service {
	s := &Service{
		cfg:     cfg,
		geo:     geo,
		weather: weather,
		log:     log,
		now:     time.Now,
	}
	if fallback != nil {
		s.fallback = fallback
	}
	return s
}

// EstimateByAddress prices a trip between two street addresses. Both
// geocodes run concurrently; any failure in the resolution chain yields the
// fallback estimate instead of an error.
func (s *Service) EstimateByAddress(ctx context.Context, pickupAddr, dropoffAddr string) RideCostEstimate {
	if s.geo == nil {
		s.log.Warn("no geo provider wired, returning fallback estimate")
		return s.fallbackEstimate()
	}

	var pickup, dropoff types.Point
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		pickup, err = s.geo.Geocode(gctx, pickupAddr)
		return err
	})
	g.Go(func() error {
		var err error
		dropoff, err = s.geo.Geocode(gctx, dropoffAddr)
		return err
	})
	if err := g.Wait(); err != nil {
		s.log.Warn("geocode failed, returning fallback estimate", zap.Error(err))
		return s.fallbackEstimate()
	}

	route, err := s.geo.Route(ctx, pickup, dropoff)
	if err != nil {
		s.log.Warn("route resolution failed, returning fallback estimate", zap.Error(err))
		return s.fallbackEstimate()
	}

	return s.estimate(ctx, pickup, dropoff, milesFromMeters(route.DistanceMeters), route.DurationSeconds/60)
}

// EstimateByCoordinates prices a trip between two coordinates. Without a
// route provider (or when it fails) time is approximated from straight-line
// distance at the configured average urban speed.
func (s *Service) EstimateByCoordinates(ctx context.Context, pickup, dropoff types.Point) RideCostEstimate {
	if s.geo != nil {
		route, err := s.geo.Route(ctx, pickup, dropoff)
		if err == nil {
			return s.estimate(ctx, pickup, dropoff, milesFromMeters(route.DistanceMeters), route.DurationSeconds/60)
		}
		s.log.Warn("route lookup failed, approximating from straight-line distance", zap.Error(err))
	}

	miles := haversineMiles(pickup, dropoff)
	minutes := miles / s.cfg.AverageSpeedMPH * 60
	return s.estimate(ctx, pickup, dropoff, miles, minutes)
}

// EstimateRide prices a ride from explicit distance, time and multiplier
// values. Shared core of every entry point; pure and never fails.
func (s *Service) EstimateRide(distanceMiles, timeMinutes float64, m MultiplierBreakdown) RideCostEstimate {
	base := s.cfg.BaseFare + distanceMiles*s.cfg.CostPerMile + timeMinutes*s.cfg.CostPerMinute
	total := m.TimeOfDay * m.Location * m.Weather
	final := clamp(base*total, s.cfg.MinimumFare, s.cfg.MaximumFare)

	m.TimeOfDay = round2(m.TimeOfDay)
	m.Location = round2(m.Location)
	m.Weather = round2(m.Weather)

	return RideCostEstimate{
		FinalPrice:           round2(final),
		TotalMultiplier:      round2(total),
		EstimatedTimeMinutes: round2(timeMinutes),
		DistanceMiles:        round2(distanceMiles),
		Multipliers:          m,
	}
}

// estimate computes the three multipliers and prices the trip. Location and
// weather lookups are independent of each other, so they run concurrently.
func (s *Service) estimate(ctx context.Context, pickup, dropoff types.Point, distanceMiles, timeMinutes float64) RideCostEstimate {
	breakdown := MultiplierBreakdown{
		TimeOfDay:      TimeOfDayMultiplier(s.now()),
		Location:       1.0,
		Weather:        1.0,
		LocationSource: LocationSourceNone,
	}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		breakdown.Location, breakdown.MatchedZones, breakdown.LocationSource = s.locationMultiplier(ctx, pickup, dropoff)
	}()
	go func() {
		defer wg.Done()
		breakdown.Weather = s.weatherMultiplier(ctx, pickup)
	}()
	wg.Wait()

	return s.EstimateRide(distanceMiles, timeMinutes, breakdown)
}

// locationMultiplier prefers a zone match; only unzoned trips fall through
// to the reverse-geocoding classifier, keyed on the pickup coordinate.
func (s *Service) locationMultiplier(ctx context.Context, pickup, dropoff types.Point) (float64, []string, string) {
	m, matched := MatchZones(s.cfg.Zones, pickup, dropoff)
	if len(matched) > 0 {
		return m, matched, LocationSourceZone
	}
	if s.fallback == nil {
		return 1.0, nil, LocationSourceNone
	}
	fm, source := s.fallback.Multiplier(ctx, pickup)
	return fm, nil, source
}

func (s *Service) weatherMultiplier(ctx context.Context, p types.Point) float64 {
	if s.weather == nil {
		return 1.0
	}
	condition, ok := async.Race(ctx, s.cfg.WeatherTimeout, func(ctx context.Context) (string, error) {
		return s.weather.CurrentCondition(ctx, p)
	})
	if !ok {
		return 1.0
	}
	return conditionMultiplier(condition)
}

// fallbackEstimate is the degraded result when trip resolution fails:
// minimum fare, neutral multipliers, zero distance and time.
func (s *Service) fallbackEstimate() RideCostEstimate {
	return s.EstimateRide(0, 0, NeutralBreakdown())
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
