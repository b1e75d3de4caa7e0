package config

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Config stores runtime configuration for the guardian service.
type Config struct {
	Server ServerConfig
	Slack  SlackConfig
	Rules  RulesConfig
}

type ServerConfig struct {
	Port          int
	ReadTimeout   time.Duration
	WriteTimeout  time.Duration
	ShutdownGrace time.Duration
}

type SlackConfig struct {
	WebhookURL string
	Timeout    time.Duration
}

type RulesConfig struct {
	KeywordsPath string
}

// Load resolves configuration from environment variables and sensible defaults.
func Load() (Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, errors.New("could not determine home directory")
	}

	defaultKeywords := filepath.Join(home, ".config", "guardian", "keywords.rules")
	keywordsPath := strings.TrimSpace(os.Getenv("GUARDIAN_KEYWORDS_FILE"))
	if keywordsPath == "" {
		keywordsPath = defaultKeywords
	}

	cfg := Config{
		Server: ServerConfig{
			Port:          firstPositiveInt("GUARDIAN_PORT", "PORT", 5000),
			ReadTimeout:   envOrDefaultMillis("GUARDIAN_READ_TIMEOUT_MS", 10000),
			WriteTimeout:  envOrDefaultMillis("GUARDIAN_WRITE_TIMEOUT_MS", 15000),
			ShutdownGrace: envOrDefaultMillis("GUARDIAN_SHUTDOWN_GRACE_MS", 5000),
		},
		Slack: SlackConfig{
			WebhookURL: strings.TrimSpace(os.Getenv("SLACK_WEBHOOK_URL")),
			Timeout:    envOrDefaultMillis("GUARDIAN_SLACK_TIMEOUT_MS", 10000),
		},
		Rules: RulesConfig{
			KeywordsPath: keywordsPath,
		},
	}

	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		cfg.Server.Port = 5000
	}

	return cfg, nil
}

func firstPositiveInt(primary string, secondary string, fallback int) int {
	for _, key := range []string{primary, secondary} {
		value := strings.TrimSpace(os.Getenv(key))
		if value == "" {
			continue
		}
		parsed, err := strconv.Atoi(value)
		if err == nil && parsed > 0 {
			return parsed
		}
	}
	return fallback
}

func envOrDefaultMillis(key string, fallback int) time.Duration {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return time.Duration(fallback) * time.Millisecond
	}
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed < 0 {
		return time.Duration(fallback) * time.Millisecond
	}
	return time.Duration(parsed) * time.Millisecond
}
