package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"quickdrop/cmd"
	httpin "quickdrop/internal/adapters/in/http"
	"quickdrop/internal/adapters/out/firebaseauth"
	"quickdrop/internal/adapters/out/jwtauth"
	"quickdrop/internal/adapters/out/postgres"
	"quickdrop/internal/adapters/out/rabbitmq"
	"quickdrop/internal/adapters/out/rediscache"
	"quickdrop/internal/adapters/out/stripepay"

	"github.com/labstack/gommon/log"
	gormpg "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	configs, err := cmd.LoadConfig()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gormDB := mustOpenDB(configs)

	adapters, closeAdapters := mustBuildAdapters(ctx, configs, logger)
	defer closeAdapters()

	app := cmd.NewCompositionRoot(configs, gormDB, adapters, logger)

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(ctx, app, configs.HTTPPort, logger)
}

func mustOpenDB(configs cmd.Config) *gorm.DB {
	gormDB, err := gorm.Open(gormpg.Open(configs.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := postgres.Migrate(gormDB); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	return gormDB
}

// mustBuildAdapters connects the outbound integrations. Redis and RabbitMQ are
// only used when their URL is configured.
func mustBuildAdapters(ctx context.Context, configs cmd.Config, logger *slog.Logger) (cmd.Adapters, func()) {
	var adapters cmd.Adapters
	var closers []func() error

	switch configs.IdentityProvider {
	case cmd.IdentityProviderJWT:
		verifier, err := jwtauth.NewVerifier(configs.JWTSecret)
		if err != nil {
			log.Fatalf("Failed to create JWT verifier: %v", err)
		}
		adapters.Verifier = verifier
	default:
		verifier, err := firebaseauth.New(ctx, configs.FirebaseKey)
		if err != nil {
			log.Fatalf("Failed to initialize Firebase auth: %v", err)
		}
		adapters.Verifier = verifier
	}

	gateway, err := stripepay.New(configs.StripeSecretKey, configs.PaymentCurrency)
	if err != nil {
		log.Fatalf("Failed to create payment gateway: %v", err)
	}
	adapters.Gateway = gateway

	if configs.RedisURL != "" {
		cache, err := rediscache.Connect(ctx, configs.RedisURL)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		adapters.RoleCache = cache
		closers = append(closers, cache.Close)
	} else {
		logger.Info("REDIS_URL not set, role checks read the users table")
	}

	if configs.RabbitMQURL != "" {
		publisher, err := rabbitmq.Dial(configs.RabbitMQURL, configs.EventsExchange, logger)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		adapters.Publisher = publisher
		closers = append(closers, publisher.Close)
	} else {
		logger.Info("RABBITMQ_URL not set, parcel events are not published")
	}

	return adapters, func() {
		for _, c := range closers {
			if err := c(); err != nil {
				logger.Error("Failed to close adapter", "error", err)
			}
		}
	}
}

func startWebServer(ctx context.Context, app cmd.CompositionRoot, port string, logger *slog.Logger) {
	server, err := app.CreateServer()
	if err != nil {
		log.Fatalf("Failed to create HTTP server: %v", err)
	}

	e := httpin.NewEcho(logger)
	server.Register(e)

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("HTTP server failed: %v", err)
		}
	}()
	logger.Info("QuickDrop API listening", "port", port)

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown failed", "error", err)
	}
}
