package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/nDmitry/rssreader/internal/entity"
	"github.com/nDmitry/rssreader/internal/fetcher"
)

// Default returns the configuration used when nothing is overridden
func Default() *entity.Config {
	return &entity.Config{
		Port:            "8080",
		ProxyURL:        fetcher.DefaultProxyURL,
		DefaultLanguage: "ru",
		PollInterval:    5 * time.Second,
		PollWorkers:     4,
		FetchTimeout:    30 * time.Second,
		ExportCacheTTL:  entity.ExportCacheTTLDefault,
		LogLevel:        "info",
	}
}

// Read loads the TOML file at configPath over the defaults.
// An empty path yields the defaults.
func Read(configPath string) (*entity.Config, error) {
	config := Default()

	if configPath == "" {
		return config, nil
	}

	contents, err := os.ReadFile(configPath)

	if err != nil {
		return nil, fmt.Errorf("could not read config file: %w", err)
	}

	if _, err = toml.Decode(string(contents), config); err != nil {
		return nil, fmt.Errorf("could not parse config file: %w", err)
	}

	return config, nil
}

// ApplyEnv overrides config with the environment variables that are set
func ApplyEnv(config *entity.Config) error {
	setString(&config.Port, "HTTP_SERVER_PORT")
	setString(&config.ProxyURL, "PROXY_URL")
	setString(&config.DefaultLanguage, "DEFAULT_LANGUAGE")
	setString(&config.RedisAddr, "REDIS_ADDR")
	setString(&config.LogLevel, "LOG_LEVEL")

	if v := os.Getenv("POLL_INTERVAL"); v != "" {
		d, err := time.ParseDuration(v)

		if err != nil {
			return fmt.Errorf("could not parse POLL_INTERVAL: %w", err)
		}

		config.PollInterval = d
	}

	if v := os.Getenv("POLL_WORKERS"); v != "" {
		n, err := strconv.Atoi(v)

		if err != nil {
			return fmt.Errorf("could not parse POLL_WORKERS: %w", err)
		}

		config.PollWorkers = n
	}

	return nil
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

// Validate checks config against the supported interface languages
func Validate(config *entity.Config, languages []string) error {
	var errs []error

	if config.Port == "" {
		errs = append(errs, errors.New("port must be set"))
	}

	if !slices.Contains(languages, config.DefaultLanguage) {
		errs = append(errs, fmt.Errorf("default language %q is not one of %v", config.DefaultLanguage, languages))
	}

	if config.PollInterval <= 0 {
		errs = append(errs, errors.New("poll interval must be positive"))
	}

	if config.PollWorkers <= 0 {
		errs = append(errs, errors.New("poll workers must be positive"))
	}

	if config.FetchTimeout <= 0 {
		errs = append(errs, errors.New("fetch timeout must be positive"))
	}

	if config.ExportCacheTTL < 0 {
		errs = append(errs, errors.New("export cache ttl must be non-negative"))
	}

	return errors.Join(errs...)
}
