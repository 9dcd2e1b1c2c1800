package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/vet-clinic-service/internal/api/http"
	"github.com/spec-kit/vet-clinic-service/internal/api/http/handlers"
	"github.com/spec-kit/vet-clinic-service/internal/auth"
	"github.com/spec-kit/vet-clinic-service/internal/config"
	"github.com/spec-kit/vet-clinic-service/internal/events"
	"github.com/spec-kit/vet-clinic-service/internal/observability"
	"github.com/spec-kit/vet-clinic-service/internal/persistence"
	"github.com/spec-kit/vet-clinic-service/internal/repository"
	"github.com/spec-kit/vet-clinic-service/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger, cfg.App)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	if cfg.Auth.JWTSecret == config.InsecureDefaultJWTSecret {
		logger.Warn("AUTH_JWT_SECRET not set; using insecure default secret")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	pool := pg.Pool()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pool, persistence.DefaultMigrationsDir, logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	metrics := observability.NewMetrics()
	dispatcher := events.NewInMemoryDispatcher()
	worker.StartAuthAuditWorker(dispatcher, logger, metrics)

	resolver, err := auth.NewIdentityResolver(
		auth.DefaultSources(repository.NewUserRepository(pool), repository.NewOwnerRepository(pool)),
		auth.WithFaultHook(auth.PublishLookupFaults(dispatcher, logger)),
	)
	if err != nil {
		logger.Fatal("failed to build identity resolver", zap.Error(err))
	}

	verifier, err := auth.NewTokenVerifier(auth.VerifierConfig{
		Secret: cfg.Auth.JWTSecret,
		Leeway: cfg.Auth.Leeway(),
	})
	if err != nil {
		logger.Fatal("failed to build token verifier", zap.Error(err))
	}

	authOpts := []auth.Option{auth.WithLogger(logger), auth.WithDispatcher(dispatcher)}
	dependencies := map[string]handlers.Pinger{"postgres": pg}

	if cfg.Auth.RevocationEnabled {
		redis, err := persistence.NewRedis(ctx, cfg.Redis, logger)
		if err != nil {
			logger.Fatal("failed to connect redis", zap.Error(err))
		}
		defer redis.Close()
		authOpts = append(authOpts, auth.WithRevocationList(redis.RevocationList(cfg.Auth.RevocationKeyPrefix)))
		dependencies["redis"] = redis
	}

	authMiddleware := auth.NewAuthMiddleware(verifier, resolver, authOpts...)

	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, dependencies),
		Metrics:        handlers.NewMetricsHandler(metrics),
		Identity:       handlers.NewIdentityHandler(resolver),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
