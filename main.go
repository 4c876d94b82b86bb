package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tcgmarket/marketplace/backend/config"
	"github.com/tcgmarket/marketplace/backend/handlers"
	"github.com/tcgmarket/marketplace/backend/middleware"
	webmodels "github.com/tcgmarket/marketplace/backend/models"
	"github.com/tcgmarket/marketplace/backend/router"
	"github.com/tcgmarket/marketplace/internal/domain/catalog"
	"github.com/tcgmarket/marketplace/internal/domain/identity"
	"github.com/tcgmarket/marketplace/internal/domain/inventory"
	"github.com/tcgmarket/marketplace/internal/domain/profile"
	"github.com/tcgmarket/marketplace/internal/gateways/database/repositories"
	"github.com/tcgmarket/marketplace/marketplace"
	constants "github.com/tcgmarket/marketplace/marketplace/config"
	"github.com/tcgmarket/marketplace/marketplace/database"
	"github.com/tcgmarket/marketplace/marketplace/logger"
	"github.com/tcgmarket/marketplace/marketplace/services"
)

var (
	version = "dev"
	commit  = "unknown"
)

type closer interface{ Close() }

func main() {
	path := flag.String("config", "config.toml", "path to config")
	initSchema := flag.Bool("init-schema", false, "create missing tables before serving")
	flag.Parse()

	cfg, err := marketplace.LoadConfig(*path)
	if err != nil {
		slog.Error("Failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.SetDefault(slog.New(logger.New("Marketplace", cfg.Log.Format, cfg.Log.Level, cfg.Log.AddSource)))
	slog.Info("Starting TCG Marketplace API",
		slog.String("version", version),
		slog.String("commit", commit))

	startCtx, cancel := context.WithTimeout(context.Background(), constants.StartupTimeout)
	defer cancel()

	dbStartTime := time.Now()
	db, err := database.New(startCtx, cfg.DB, cfg.Log.Queries)
	if err != nil {
		slog.Error("Database connection failed",
			slog.String("type", "db"),
			slog.String("error", err.Error()),
			slog.Duration("attempted_for", time.Since(dbStartTime)))
		os.Exit(1)
	}
	defer db.Close()
	slog.Info("Database connected successfully",
		slog.String("type", "db"),
		slog.String("database", cfg.DB.Database),
		slog.Duration("took", time.Since(dbStartTime)))

	if *initSchema {
		if err := db.InitializeSchema(startCtx); err != nil {
			slog.Error("Failed to initialize schema", slog.String("type", "db"), slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	blobs, err := services.NewBlobStore(startCtx, cfg.Storage)
	if err != nil {
		logger.LogError("Failed to initialize object storage", err)
		os.Exit(1)
	}

	keysCtx, stopKeys := context.WithCancel(context.Background())
	defer stopKeys()
	keys, err := identity.NewJWKSResolver(keysCtx, cfg.Auth.JWKSURL, &http.Client{Timeout: constants.KeyFetchTimeout})
	if err != nil {
		slog.Error("Failed to initialize key resolver", slog.String("type", "auth"), slog.String("error", err.Error()))
		os.Exit(1)
	}
	reader := identity.NewReader(identity.Options{
		ClientID:     cfg.Auth.ClientID,
		IssuerPrefix: cfg.Auth.IssuerPrefix,
		IssuerSuffix: cfg.Auth.IssuerSuffix,
		VerifyTokens: cfg.Auth.VerifyTokens,
	}, keys)

	webCfg := config.NewWebAppConfig(cfg)
	if webCfg.DecodeOnly() {
		slog.Warn("Request tokens are decoded without signature verification; set auth.verify_tokens to enable it",
			slog.String("type", "auth"))
	}

	bunDB := db.BunDB()
	svcs := webmodels.NewServices(
		inventory.NewService(repositories.NewInventoryRepository(bunDB), blobs),
		catalog.NewService(repositories.NewCatalogRepository(bunDB), blobs, cfg.Storage.DefaultImageURL),
		profile.NewService(repositories.NewUserRepository(bunDB)),
	)

	limiters, closers, err := newLimiters(startCtx, cfg, webCfg)
	if err != nil {
		logger.LogError("Failed to initialize rate limiting", err)
		os.Exit(1)
	}
	defer func() {
		for _, c := range closers {
			c.Close()
		}
	}()

	webApp := &handlers.WebApp{
		Config:   webCfg,
		DB:       db,
		Services: svcs,
		Identity: reader,
		Version:  version,
		Commit:   commit,
	}
	app := router.New(webApp, limiters)

	address := fmt.Sprintf("%s:%d", cfg.Web.Host, cfg.Web.Port)
	slog.Info("Starting server", slog.String("type", "sys"), slog.String("address", address))

	go func() {
		if err := app.Listen(address); err != nil {
			slog.Error("Server stopped", slog.String("type", "sys"), slog.String("error", err.Error()))
		}
	}()

	s := make(chan os.Signal, 1)
	signal.Notify(s, syscall.SIGINT, syscall.SIGTERM)
	<-s

	slog.Info("Shutting down server...", slog.String("type", "sys"))

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), constants.ShutdownTimeout)
	defer shutdownCancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		slog.Error("Server shutdown error", slog.String("type", "sys"), slog.String("error", err.Error()))
	}

	slog.Info("Shutdown complete", slog.String("type", "sys"))
}

// newLimiters picks redis-backed limiters when redis is configured and
// in-memory ones otherwise.
func newLimiters(ctx context.Context, cfg *marketplace.Config, webCfg *config.WebAppConfig) (router.Limiters, []closer, error) {
	if !cfg.RateLimit.Enabled {
		return router.Limiters{}, nil, nil
	}

	window := webCfg.RateLimitWindow()
	if cfg.Redis.Addr == "" {
		global := middleware.NewRateLimiter(cfg.RateLimit.Limit, window)
		login := middleware.NewRateLimiter(constants.AuthRateLimit, constants.RateLimitWindow)
		return router.Limiters{Global: global, Login: login}, []closer{global, login}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return router.Limiters{}, nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	slog.Info("Rate limiting backed by redis", slog.String("type", "sys"), slog.String("addr", cfg.Redis.Addr))

	limiters := router.Limiters{
		Global: middleware.NewRedisLimiter(client, "ratelimit", cfg.RateLimit.Limit, window),
		Login:  middleware.NewRedisLimiter(client, "ratelimit", constants.AuthRateLimit, constants.RateLimitWindow),
	}
	return limiters, []closer{redisCloser{client}}, nil
}

type redisCloser struct{ client *redis.Client }

func (r redisCloser) Close() {
	if err := r.client.Close(); err != nil {
		slog.Warn("Failed to close redis client", slog.String("error", err.Error()))
	}
}
