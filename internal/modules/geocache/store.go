// README: Geocoding cache store backed by PostgreSQL with a best-effort Redis hot layer.
package geocache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"fareengine/internal/types"
)

// Availability of the backing table. The flag transitions at most once,
// availUnknown -> (availOK | availMissing), and never reverts.
const (
	availUnknown int32 = iota
	availOK
	availMissing
)

const (
	hotKeyPrefix = "geocache:"
	hotTTL       = time.Hour

	// pgUndefinedTable is the Postgres error code for a query against a
	// table that does not exist.
	pgUndefinedTable = "42P01"
)

type Store struct {
	db  *pgxpool.Pool
	hot *redis.Client
	ttl time.Duration
	log *zap.Logger

	state atomic.Int32
	probe singleflight.Group
	now   func() time.Time
}

// NewStore creates a cache store. hot may be nil to disable the Redis layer;
// ttl bounds how old a row may be and still count as a hit.
func NewStore(db *pgxpool.Pool, hot *redis.Client, ttl time.Duration, log *zap.Logger) *Store {
	return &Store{
		db:  db,
		hot: hot,
		ttl: ttl,
		log: log,
		now: time.Now,
	}
}

// Fetch returns the freshest cached multiplier for the key, or ErrMiss if no
// row is fresh enough. Store errors never propagate: they are logged and
// reported as a miss.
func (s *Store) Fetch(ctx context.Context, key string) (float64, error) {
	if !s.EnsureAvailable(ctx) {
		return 0, ErrMiss
	}

	if m, ok := s.hotGet(ctx, key); ok {
		return m, nil
	}

	cutoff := s.now().Add(-s.ttl)
	var multiplier float64
	err := s.db.QueryRow(ctx, `
		SELECT multiplier
		FROM geocoding_cache
		WHERE location_key = $1 AND created_at >= $2
		ORDER BY created_at DESC
		LIMIT 1`, key, cutoff,
	).Scan(&multiplier)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, ErrMiss
	}
	if err != nil {
		if isUndefinedTable(err) {
			s.markUnavailable()
		}
		s.log.Warn("geocache fetch failed", zap.String("location_key", key), zap.Error(err))
		return 0, ErrMiss
	}

	s.hotSet(ctx, key, multiplier)
	return multiplier, nil
}

// Upsert writes an entry keyed by locationKey, replacing any previous entry.
// It is a best-effort side effect: failures are logged, never returned, so a
// broken store cannot block a computed multiplier from reaching the caller.
func (s *Store) Upsert(ctx context.Context, p types.Point, key string, multiplier float64, pm types.Placemark) {
	if !s.EnsureAvailable(ctx) {
		return
	}

	data, err := json.Marshal(pm)
	if err != nil {
		s.log.Warn("geocache placemark encode failed", zap.String("location_key", key), zap.Error(err))
		return
	}

	_, err = s.db.Exec(ctx, `
		INSERT INTO geocoding_cache (latitude, longitude, location_key, multiplier, placemark_data, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (location_key) DO UPDATE SET
			latitude = EXCLUDED.latitude,
			longitude = EXCLUDED.longitude,
			multiplier = EXCLUDED.multiplier,
			placemark_data = EXCLUDED.placemark_data,
			created_at = EXCLUDED.created_at`,
		p.Lat, p.Lng, key, multiplier, data, s.now(),
	)
	if err != nil {
		if isUndefinedTable(err) {
			s.markUnavailable()
		}
		s.log.Warn("geocache upsert failed", zap.String("location_key", key), zap.Error(err))
		return
	}

	s.hotSet(ctx, key, multiplier)
}

// EnsureAvailable reports whether the backing table is usable. The first call
// issues a bounded probe; concurrent first callers share one in-flight probe.
// A missing table is remembered for the life of the process, a transient
// probe failure leaves the flag undecided so a later call probes again.
func (s *Store) EnsureAvailable(ctx context.Context) bool {
	switch s.state.Load() {
	case availOK:
		return true
	case availMissing:
		return false
	}

	v, _, _ := s.probe.Do("availability", func() (interface{}, error) {
		var one int
		err := s.db.QueryRow(ctx, `SELECT 1 FROM geocoding_cache LIMIT 1`).Scan(&one)
		if err == nil || errors.Is(err, pgx.ErrNoRows) {
			s.state.CompareAndSwap(availUnknown, availOK)
			return true, nil
		}
		if isUndefinedTable(err) {
			s.markUnavailable()
			return false, nil
		}
		s.log.Warn("geocache availability probe failed", zap.Error(err))
		return false, nil
	})
	return v.(bool)
}

// Cleanup deletes rows older than the retention window and returns how many
// were removed. It is a maintenance operation, not part of the estimate path,
// so unlike the read/write paths it reports failure to its caller.
func (s *Store) Cleanup(ctx context.Context, retentionDays int) (int64, error) {
	cutoff := s.now().AddDate(0, 0, -retentionDays)
	tag, err := s.db.Exec(ctx, `DELETE FROM geocoding_cache WHERE created_at < $1`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("geocache cleanup: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (s *Store) markUnavailable() {
	if s.state.CompareAndSwap(availUnknown, availMissing) {
		s.log.Warn("geocoding cache table missing, disabling cache for this process")
	}
}

func (s *Store) hotGet(ctx context.Context, key string) (float64, bool) {
	if s.hot == nil {
		return 0, false
	}
	v, err := s.hot.Get(ctx, hotKeyPrefix+key).Float64()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.log.Debug("geocache hot read failed", zap.String("location_key", key), zap.Error(err))
		}
		return 0, false
	}
	return v, true
}

func (s *Store) hotSet(ctx context.Context, key string, multiplier float64) {
	if s.hot == nil {
		return
	}
	if err := s.hot.Set(ctx, hotKeyPrefix+key, multiplier, hotTTL).Err(); err != nil {
		s.log.Debug("geocache hot write failed", zap.String("location_key", key), zap.Error(err))
	}
}

func isUndefinedTable(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUndefinedTable
}
