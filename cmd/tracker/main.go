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
		fmt.Printf("Job Tracker Service\nVersion:    %s\nBuild Date: %s\n", Version, BuildDate)
		os.Exit(0)
	}

	cfg := config.MustLoad("data/tracker")
	logger := newLogger(cfg.Env)

	if err := run(cfg, logger); err != nil {
		logger.Error("tracker service failed", slog.Any("error", err))
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

	apps, err := jsonfile.NewApplicationStore(filepath.Join(cfg.Storage.DataDir, "applications.json"))
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
		Issuer:         "jobcart-tracker",
	}

	router := server.NewTrackerRouter(server.TrackerConfig{
		Logger:       logger,
		JWT:          jwtConfig,
		Users:        users,
		Applications: apps,
		LoginRate:    cfg.RateLimit.LoginRate,
		LoginWindow:  cfg.RateLimit.LoginWindow,
	})

	srv := server.New(logger, cfg.HTTPServer.Address, router, cfg.HTTPServer.ShutdownTimeout)
	return srv.Run()
}

// seedUsers creates the default test accounts on first run. Passwords are
// stored hashed and never logged.
func seedUsers(ctx context.Context, logger *slog.Logger, users *jsonfile.UserStore) error {
	seeds := []struct {
		username string
		email    string
		fullName string
	}{
		{"john_doe", "john@example.com", "John Doe"},
		{"jane_smith", "jane@example.com", "Jane Smith"},
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
			FullName:     seed.fullName,
			PasswordHash: hash,
			CreatedAt:    time.Now(),
		}

		if err := users.CreateUser(ctx, user); err != nil {
			return err
		}

		logger.Info("seeded user", slog.String("username", seed.username))
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
