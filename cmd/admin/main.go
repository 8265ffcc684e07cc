// Command admin provisions administrator accounts directly in the database.
//
//	admin -username ana -email ana@menuhub.io -password s3cret! [-role moderator]
//
// ADMIN_PASSWORD is read when -password is omitted.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/menuhub/menu-server/internal/auth"
	"github.com/menuhub/menu-server/internal/core/domain"
	"github.com/menuhub/menu-server/internal/core/ports"
	"github.com/menuhub/menu-server/internal/core/service"
	"github.com/menuhub/menu-server/internal/infrastructure/config"
	mongodb "github.com/menuhub/menu-server/internal/infrastructure/db/mongo"
	"github.com/menuhub/menu-server/pkg/logger"
)

func main() {
	var (
		username = flag.String("username", "", "admin username")
		email    = flag.String("email", "", "admin email")
		password = flag.String("password", os.Getenv("ADMIN_PASSWORD"), "admin password")
		role     = flag.String("role", string(domain.AdminRoleAdmin), "admin or moderator")
	)
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	cfg, err := config.Load(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	logr := logger.Init(logger.Options{Level: cfg.LogLevel, Env: cfg.Env})

	in := ports.CreateAdminInput{
		Username: *username,
		Email:    *email,
		Password: *password,
		Role:     domain.AdminRole(*role),
	}
	if err := run(ctx, cfg, logr, in); err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			for field, msg := range verr.Fields {
				fmt.Fprintf(os.Stderr, "  %s: %s\n", field, msg)
			}
		}
		logr.Error().Err(err).Msg("failed to create admin")
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logr zerolog.Logger, in ports.CreateAdminInput) error {
	client, db, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		return err
	}
	defer client.Disconnect(context.Background()) //nolint:errcheck

	admins := mongodb.NewAdminRepository(db)
	restaurants := mongodb.NewRestaurantRepository(db)
	if err := mongodb.EnsureIndexes(ctx, admins, restaurants); err != nil {
		return err
	}

	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AdminTokenTTL, cfg.Auth.RestaurantTokenTTL)
	svc := service.NewAuthService(admins, restaurants, tokens, cfg.Auth.BcryptCost, logr)

	admin, err := svc.CreateAdmin(ctx, in)
	if err != nil {
		return err
	}
	fmt.Printf("created %s %s (%s)\n", admin.Role, admin.Username, admin.ID)
	return nil
}
