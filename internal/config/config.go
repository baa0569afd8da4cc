package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds all configuration for the application
type Config struct {
	Redis   RedisConfig
	Content ContentConfig
	Engine  EngineConfig
}

// RedisConfig holds Redis-specific configuration. An empty URL keeps
// action uses in memory.
type RedisConfig struct {
	URL string
}

// Enabled reports whether a Redis URL is configured
func (c RedisConfig) Enabled() bool {
	return c.URL != ""
}

// ContentConfig lists the directories action and actor YAML is loaded from
type ContentConfig struct {
	Dirs []string
}

// EngineConfig holds action engine switches
type EngineConfig struct {
	StrictTargets bool
	Trace         bool
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	strict, err := getEnvAsBoolOrDefault("CRUCIBLE_STRICT_TARGETS", false)
	if err != nil {
		return nil, err
	}
	trace, err := getEnvAsBoolOrDefault("CRUCIBLE_TRACE", false)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Redis: RedisConfig{
			URL: os.Getenv("REDIS_URL"),
		},
		Content: ContentConfig{
			Dirs: splitList(getEnvOrDefault("CRUCIBLE_CONTENT_DIRS", "content")),
		},
		Engine: EngineConfig{
			StrictTargets: strict,
			Trace:         trace,
		},
	}

	if len(cfg.Content.Dirs) == 0 {
		return nil, fmt.Errorf("CRUCIBLE_CONTENT_DIRS must name at least one directory")
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsBoolOrDefault(key string, defaultValue bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("%s must be a boolean, got %q", key, value)
	}
	return b, nil
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
