// @title           Menu Server API
// @version         1.0
// @description     Restaurants, categories and menus with admin and restaurant-owner authentication.
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Raw token or "Bearer <token>".
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	_ "github.com/menuhub/menu-server/docs"
	"github.com/menuhub/menu-server/internal/api"
	"github.com/menuhub/menu-server/internal/api/handler"
	"github.com/menuhub/menu-server/internal/auth"
	"github.com/menuhub/menu-server/internal/core/ports"
	"github.com/menuhub/menu-server/internal/core/service"
	"github.com/menuhub/menu-server/internal/infrastructure/config"
	mongodb "github.com/menuhub/menu-server/internal/infrastructure/db/mongo"
	redisdb "github.com/menuhub/menu-server/internal/infrastructure/db/redis"
	"github.com/menuhub/menu-server/pkg/logger"
)

const shutdownTimeout = 15 * time.Second

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logr := logger.Init(logger.Options{Level: cfg.LogLevel, Env: cfg.Env})

	if err := run(ctx, cfg, logr); err != nil {
		logr.Error().Err(err).Msg("menu server exited")
		os.Exit(1)
	}
}

// run owns every connection it opens; all of them are closed before it
// returns, on the error paths too.
func run(ctx context.Context, cfg *config.Config, logr zerolog.Logger) error {
	client, db, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		return err
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := client.Disconnect(disconnectCtx); err != nil {
			logr.Error().Err(err).Msg("mongodb disconnect")
		}
	}()

	admins := mongodb.NewAdminRepository(db)
	restaurants := mongodb.NewRestaurantRepository(db)
	categories := mongodb.NewCategoryRepository(db)
	statusEvents := mongodb.NewStatusEventRepository(db)
	if err := mongodb.EnsureIndexes(ctx, admins, restaurants, categories, statusEvents); err != nil {
		return err
	}

	images, err := mongodb.NewImageStore(db, cfg.PublicBaseURL)
	if err != nil {
		return err
	}

	health := map[string]handler.Pinger{
		"mongodb": handler.PingFunc(func(ctx context.Context) error { return mongodb.Ping(ctx, db) }),
	}

	var cache ports.RestaurantCache
	if cfg.Redis.Addr != "" {
		rdb, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
		if err != nil {
			return err
		}
		defer rdb.Close()

		restaurantCache := redisdb.NewRestaurantCache(rdb, cfg.Redis.CacheTTL)
		cache = restaurantCache
		health["redis"] = restaurantCache
	} else {
		logr.Info().Msg("REDIS_ADDR not set, restaurant cache disabled")
	}

	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AdminTokenTTL, cfg.Auth.RestaurantTokenTTL)

	authService := service.NewAuthService(admins, restaurants, tokens, cfg.Auth.BcryptCost, component(logr, "auth"))
	categoryService := service.NewCategoryService(categories, restaurants, component(logr, "categories"))
	restaurantService := service.NewRestaurantService(restaurants, statusEvents, cache, component(logr, "restaurants"))
	menuService := service.NewMenuService(restaurants, categoryService, images, cache, component(logr, "menu"))

	e := api.NewRouter(api.Deps{
		Auth:        authService,
		Tokens:      tokens,
		Admins:      admins,
		Owners:      restaurants,
		Restaurants: restaurantService,
		Categories:  categoryService,
		Menu:        menuService,
		Images:      images,
		Health:      health,
		Log:         component(logr, "http"),
	}, api.Options{
		Production:   cfg.IsProduction(),
		AllowOrigins: cfg.AllowedOrigins(),
		LoginLimit:   cfg.RateLimit.LoginLimit,
		LoginWindow:  cfg.RateLimit.LoginWindow,
	})

	serveErr := make(chan error, 1)
	go func() {
		logr.Info().Str("port", cfg.Port).Msg("listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	err = waitForShutdown(logr, serveErr)

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancelShutdown()
	if shutdownErr := e.Shutdown(shutdownCtx); shutdownErr != nil {
		logr.Error().Err(shutdownErr).Msg("echo shutdown")
	}
	return err
}

func component(log zerolog.Logger, name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}

// waitForShutdown blocks until a termination signal arrives or the server
// stops on its own, and returns the server's error in the latter case.
func waitForShutdown(log zerolog.Logger, serveErr <-chan error) error {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Info().Str("signal", sig.String()).Msg("shutting down")
		return nil
	case err := <-serveErr:
		return fmt.Errorf("serve: %w", err)
	}
}
