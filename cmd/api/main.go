package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"

	server "parkbike/internal/adapters/http_server"
	"parkbike/internal/adapters/location"
	"parkbike/internal/adapters/observability"
	redisad "parkbike/internal/adapters/redis"
	"parkbike/internal/adapters/spots"
	"parkbike/internal/app"
	"parkbike/internal/domain"
	"parkbike/internal/i18n"
	"parkbike/internal/shared"
	"parkbike/internal/storage/memory"
	mysqlstore "parkbike/internal/storage/mysql"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv, cfg.LogLevel)

	reg := observability.InitRegistry()
	metricsSrv := observability.Serve(cfg.MetricsAddr, reg)

	// deps
	store, err := openStore(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.StoreDriver).Msg("store init failed")
	}
	log.Info().Str("driver", cfg.StoreDriver).Msg("store ok")

	spotClient, err := spots.New(cfg.SpotsURL, cfg.SpotsRPS)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize spots client")
	}
	locator, err := newLocator(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize location provider")
	}
	lang, err := i18n.ParseLang(cfg.Language)
	if err != nil {
		log.Warn().Err(err).Msg("falling back to English")
		lang = i18n.English
	}

	ctrl := app.NewController(locator, store, spotClient, app.Options{
		Language:       lang,
		RefreshTimeout: cfg.RefreshTimeout,
	})
	ctrl.Start(ctx)

	// http
	srv := server.New(log.Logger)
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{C: ctrl})

	log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux(), ReadHeaderTimeout: 5 * time.Second}

	go func() {
		<-ctx.Done()
		shutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdown); err != nil {
			log.Error().Err(err).Msg("http shutdown failed")
		}
		if metricsSrv != nil {
			if err := metricsSrv.Shutdown(shutdown); err != nil {
				log.Error().Err(err).Msg("metrics shutdown failed")
			}
		}
	}()

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
	log.Info().Msg("API stopped")
}

func openStore(ctx context.Context, cfg shared.Config) (domain.Store, error) {
	switch cfg.StoreDriver {
	case "memory":
		return memory.New(), nil
	case "redis":
		s := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		if err := s.Ping(ctx); err != nil {
			return nil, fmt.Errorf("redis ping: %w", err)
		}
		return s, nil
	case "mysql":
		db, err := sql.Open("mysql", cfg.MySQLDSN)
		if err != nil {
			return nil, fmt.Errorf("sql.Open: %w", err)
		}
		if err := db.PingContext(ctx); err != nil {
			return nil, fmt.Errorf("db.Ping: %w", err)
		}
		s := mysqlstore.New(db)
		if err := s.EnsureSchema(ctx); err != nil {
			return nil, fmt.Errorf("ensure schema: %w", err)
		}
		return s, nil
	}
	return nil, fmt.Errorf("unknown STORE_DRIVER %q", cfg.StoreDriver)
}

func newLocator(cfg shared.Config) (domain.LocationProvider, error) {
	switch cfg.LocationMode {
	case "static":
		return location.NewStatic(cfg.LocationLat, cfg.LocationLon), nil
	case "denied":
		return location.Denied(), nil
	case "http":
		return location.NewHTTP(cfg.LocationURL), nil
	}
	return nil, fmt.Errorf("unknown LOCATION_MODE %q", cfg.LocationMode)
}
