package config

import (
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds the settings shared by both services. Values come from
// the environment, or from a YAML file when CONFIG_PATH is set.
type Config struct {
	Env        string `yaml:"env" env:"APP_ENV" env-default:"local"`
	HTTPServer `yaml:"http_server"`
	JWT        `yaml:"jwt"`
	Storage    `yaml:"storage"`
	RateLimit  `yaml:"rate_limit"`
}

type HTTPServer struct {
	Address         string        `yaml:"address" env:"HTTP_ADDRESS" env-default:":8080"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"HTTP_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

type JWT struct {
	// Secret signs every token; rotating it invalidates all of them,
	// which is the only revocation mechanism there is.
	Secret         string        `yaml:"secret" env:"JWT_SECRET" env-default:"change-me-in-production"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"JWT_ACCESS_TOKEN_TTL" env-default:"30m"`
}

type Storage struct {
	// DataDir holds the JSON files of the service. Each service has its
	// own default so they never share files.
	DataDir string `yaml:"data_dir" env:"DATA_DIR"`
}

type RateLimit struct {
	LoginRate   int           `yaml:"login_rate" env:"LOGIN_RATE" env-default:"10"`
	LoginWindow time.Duration `yaml:"login_window" env:"LOGIN_WINDOW" env-default:"1m"`
}

// MustLoad reads the configuration or panics. defaultDataDir applies when
// neither the environment nor the config file sets one.
func MustLoad(defaultDataDir string) *Config {
	cfg, err := load(defaultDataDir)
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

func load(defaultDataDir string) (*Config, error) {
	var cfg Config

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	if cfg.Storage.DataDir == "" {
		cfg.Storage.DataDir = defaultDataDir
	}

	return &cfg, nil
}
