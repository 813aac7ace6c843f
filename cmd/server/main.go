package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/48hauling/web-panel/internal/api"
	"github.com/48hauling/web-panel/internal/audit"
	"github.com/48hauling/web-panel/internal/core/domain"
	"github.com/48hauling/web-panel/internal/devapi"
	"github.com/48hauling/web-panel/internal/infrastructure/db/redis"
	"github.com/48hauling/web-panel/internal/pkg/config"
	"github.com/48hauling/web-panel/internal/poll"
	"github.com/48hauling/web-panel/internal/session"
	"github.com/48hauling/web-panel/pkg/logger"
)

func main() {
	// .env is optional; real environments configure through the process env.
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.IsDevelopment(),
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rdb, err := redis.Connect(ctx, redis.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		log.Fatal().Err(err).Msg("connect redis")
	}
	defer rdb.Close()

	apiClient := devapi.New(cfg.DevAPI.BaseURL,
		devapi.WithLogger(log),
		devapi.WithHTTPClient(&http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}),
	)

	sessions := session.NewStore(redis.NewSessionRecords(rdb),
		session.WithTTL(cfg.Session.TTL),
		session.WithSecureCookies(cfg.Session.SecureCookies),
		session.WithLogger(log),
	)

	recorder := audit.NewRecorder(0, log)
	recorder.Start(ctx)

	deps := api.Dependencies{
		API:      apiClient,
		Sessions: sessions,
		Audit:    recorder,
		Redis:    rdb,
		Limiter:  redis.NewLoginLimiter(rdb, 0, 0),
		Log:      log,
	}

	// The shared pollers need their own credential; without one, live views
	// fall back to per-request fetches on the operator's session token.
	if cfg.DevAPI.ServiceToken != "" {
		svc := apiClient.ForToken(cfg.DevAPI.ServiceToken)

		deps.Devices = poll.NewRefresher("devices", cfg.Poll.Interval,
			func(ctx context.Context) ([]domain.DeviceStatus, error) {
				resp := svc.GetOnlineDevices(ctx)
				return resp.Data, resp.Err()
			}, log)
		deps.Locations = poll.NewRefresher("locations", cfg.Poll.Interval,
			func(ctx context.Context) ([]domain.LocationPoint, error) {
				resp := svc.GetActiveLocations(ctx)
				return resp.Data, resp.Err()
			}, log)

		deps.Devices.Start(ctx)
		deps.Locations.Start(ctx)
		defer deps.Devices.Stop()
		defer deps.Locations.Stop()
	}

	e, err := api.NewRouter(deps)
	if err != nil {
		log.Fatal().Err(err).Msg("build router")
	}

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("devapi", cfg.DevAPI.BaseURL).Msg("web panel started")

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
}
