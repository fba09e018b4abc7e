package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"jobcart/internal/auth"
	"jobcart/internal/config"
	"jobcart/internal/models"
	"jobcart/internal/server"
	"jobcart/internal/server/storage/jsonfile"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	flag.Parse()

	if *showVersion {
		fmt.Printf("Shop Service\nVersion:    %s\nBuild Date: %s\n", Version, BuildDate)
		os.Exit(0)
	}

	cfg := config.MustLoad("data/shop")
	logger := newLogger(cfg.Env)

	if err := run(cfg, logger); err != nil {
		logger.Error("shop service failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx := context.Background()

	if err := os.MkdirAll(cfg.Storage.DataDir, 0o700); err != nil {
		return fmt.Errorf("failed to create data dir: %w", err)
	}

	users, err := jsonfile.NewUserStore(filepath.Join(cfg.Storage.DataDir, "users.json"))
	if err != nil {
		return err
	}

	products, err := jsonfile.NewProductStore(filepath.Join(cfg.Storage.DataDir, "products.json"))
	if err != nil {
		return err
	}

	carts, err := jsonfile.NewCartStore(filepath.Join(cfg.Storage.DataDir, "cart.json"))
	if err != nil {
		return err
	}

	if users.Empty() {
		if err := seedUsers(ctx, logger, users); err != nil {
			return fmt.Errorf("failed to seed users: %w", err)
		}
	}

	jwtConfig := auth.Config{
		Secret:         []byte(cfg.JWT.Secret),
		AccessTokenTTL: cfg.JWT.AccessTokenTTL,
		Issuer:         "jobcart-shop",
	}

	router := server.NewShopRouter(server.ShopConfig{
		Logger:      logger,
		JWT:         jwtConfig,
		Users:       users,
		Products:    products,
		Carts:       carts,
		LoginRate:   cfg.RateLimit.LoginRate,
		LoginWindow: cfg.RateLimit.LoginWindow,
	})

	srv := server.New(logger, cfg.HTTPServer.Address, router, cfg.HTTPServer.ShutdownTimeout)
	return srv.Run()
}

// seedUsers creates the default admin and customer accounts on first run.
// Passwords are stored hashed and never logged.
func seedUsers(ctx context.Context, logger *slog.Logger, users *jsonfile.UserStore) error {
	seeds := []struct {
		username string
		email    string
		role     string
	}{
		{"admin", "admin@shop.com", models.RoleAdmin},
		{"customer1", "customer1@shop.com", models.RoleCustomer},
	}

	for _, seed := range seeds {
		hash, err := auth.HashPassword("secret")
		if err != nil {
			return err
		}

		user := &models.User{
			ID:           uuid.New().String(),
			Username:     seed.username,
			Email:        seed.email,
			Role:         seed.role,
			PasswordHash: hash,
			CreatedAt:    time.Now(),
		}

		if err := users.CreateUser(ctx, user); err != nil {
			return err
		}

		logger.Info("seeded user", slog.String("username", seed.username), slog.String("role", seed.role))
	}

	return nil
}

func newLogger(env string) *slog.Logger {
	level := slog.LevelInfo
	if env == "local" {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}
