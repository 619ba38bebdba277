package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/abdul-hamid-achik/apismoke/packages/core/config"
	"github.com/abdul-hamid-achik/apismoke/packages/core/env"
	"github.com/abdul-hamid-achik/apismoke/packages/domain"
)

var (
	configFlag  string
	envFileFlag string
	envFlag     string
)

// Environment variable helpers
func getEnvString(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		return val == "true" || val == "1" || val == "yes"
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
	if val := os.Getenv(key); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			return f
		}
	}
	return defaultVal
}

// loadConfig exports the .env file, reads the config file and applies the
// --env selector.
func loadConfig() (*config.Config, error) {
	if envFileFlag != "" {
		if _, err := env.LoadAndExport(envFileFlag); err != nil {
			return nil, withExitCode(ExitConfigError, err)
		}
	}

	cfg, err := config.LoadConfig(configFlag)
	if err != nil {
		return nil, withExitCode(ExitConfigError, fmt.Errorf("loading config: %w", err))
	}

	if envFlag != "" {
		e, err := domain.ParseEnv(envFlag)
		if err != nil {
			return nil, withExitCode(ExitUsageError, err)
		}
		cfg = cfg.Merge(&config.Config{Env: config.IntPtr(e)})
	}

	return cfg, nil
}

// parseHeaders turns "Key: value" or "Key=value" pairs into a map.
func parseHeaders(pairs []string) (map[string]string, error) {
	headers := make(map[string]string, len(pairs))
	for _, p := range pairs {
		sep := strings.IndexAny(p, ":=")
		if sep <= 0 {
			return nil, fmt.Errorf("invalid header %q (want Key: value or Key=value)", p)
		}
		headers[strings.TrimSpace(p[:sep])] = strings.TrimSpace(p[sep+1:])
	}
	return headers, nil
}
