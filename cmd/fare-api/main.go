// README: Entry point; loads config, wires providers and stores, starts HTTP server and maintenance scheduler.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"fareengine/internal/config"
	fehttp "fareengine/internal/http"
	"fareengine/internal/infra"
	"fareengine/internal/logger"
	"fareengine/internal/maps"
	"fareengine/internal/modules/geocache"
	"fareengine/internal/modules/pricing"
	"fareengine/internal/scheduler"
	"fareengine/internal/weatherapi"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	zlog, err := logger.New()
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = zlog.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
	if err != nil {
		zlog.Fatal("database init failed", zap.Error(err))
	}
	defer dbPool.Close()

	var hot = infra.NewRedis(cfg.Redis.Addr)
	if cfg.Redis.Addr == "" {
		hot = nil
		zlog.Info("redis hot layer disabled")
	}

	geoSvc, err := maps.NewGeocodingService(cfg.Google.APIKey)
	if err != nil {
		zlog.Fatal("google maps init failed", zap.Error(err))
	}

	var weather pricing.WeatherProvider
	if cfg.Weather.APIKey != "" {
		weather = weatherapi.NewClient(&http.Client{Timeout: cfg.Weather.Timeout}, cfg.Weather.APIKey)
	} else {
		zlog.Info("weather surge disabled, OPENWEATHER_API_KEY not set")
	}

	cacheStore := geocache.NewStore(dbPool, hot, cfg.Cache.TTL, zlog)
	fallback := pricing.NewFallbackClassifier(cacheStore, geoSvc, cfg.Geocode.Timeout, zlog)

	pricingCfg := pricing.DefaultConfig()
	pricingCfg.WeatherTimeout = cfg.Weather.Timeout
	pricingCfg.GeocodeTimeout = cfg.Geocode.Timeout
	if err := pricingCfg.Validate(); err != nil {
		zlog.Fatal("invalid pricing config", zap.Error(err))
	}
	pricingSvc := pricing.NewService(pricingCfg, geoSvc, weather, fallback, zlog)

	// One retention sweep at startup, then daily via the scheduler.
	if deleted, err := cacheStore.Cleanup(ctx, cfg.Cache.RetentionDays); err != nil {
		zlog.Warn("startup geocache cleanup failed", zap.Error(err))
	} else {
		zlog.Info("startup geocache cleanup completed", zap.Int64("deleted", deleted))
	}

	sched := scheduler.New(cacheStore, cfg.Cache.RetentionDays, zlog)
	if err := sched.Start(); err != nil {
		zlog.Fatal("scheduler start failed", zap.Error(err))
	}
	defer sched.Stop()

	handler := fehttp.NewServer(fehttp.ServerDeps{Pricing: pricingSvc, Log: zlog})
	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: handler.Routes()}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	zlog.Info("fare-api listening", zap.String("addr", cfg.HTTP.Addr))
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		zlog.Fatal("server exited", zap.Error(err))
	}
}
