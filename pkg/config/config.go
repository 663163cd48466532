// Package config loads and validates the ticket engine's environment-driven
// configuration: the database, Redis lock store, dispatcher, stall
// thresholds, credential encryption key, and per-role agent model ids.
package config

import (
	"os"
	"time"
)

// Config is the umbrella configuration object produced by Load.
type Config struct {
	HTTPPort string

	Queue     *QueueConfig
	Stall     *StallConfig
	Retention *RetentionConfig
	Roles     *RoleConfig

	RedisURL          string
	AgentHostBaseURL  string
	AgentHostToken    string
	InternalToken     string
	CredentialKeyRaw  string // raw material; space-padded/truncated to 32 bytes by pkg/crypto
	AgentRunTimeout   time.Duration
	SpawnCallbackBase string // base URL the callback instructions point agents back to
}

// Stats summarizes configuration for logging/monitoring.
type Stats struct {
	Queues int
	Roles  int
}

// Stats returns configuration statistics for logging/monitoring.
func (c *Config) Stats() Stats {
	return Stats{Queues: 2, Roles: len(c.Roles.Models)}
}

// Load reads configuration from the environment with production-ready
// defaults, following the same getEnvOrDefault idiom as pkg/database.
func Load() (*Config, error) {
	runTimeout, err := time.ParseDuration(getEnvOrDefault("AGENT_RUN_TIMEOUT", "900s"))
	if err != nil {
		return nil, &EnvError{Var: "AGENT_RUN_TIMEOUT", Err: err}
	}

	cfg := &Config{
		HTTPPort:          getEnvOrDefault("HTTP_PORT", "8080"),
		Queue:             DefaultQueueConfig(),
		Stall:             DefaultStallConfig(),
		Retention:         DefaultRetentionConfig(),
		Roles:             loadRoleConfig(),
		RedisURL:          getEnvOrDefault("LOCK_STORE_URL", "redis://localhost:6379/0"),
		AgentHostBaseURL:  os.Getenv("AGENT_HOST_BASE_URL"),
		AgentHostToken:    os.Getenv("AGENT_HOST_TOKEN"),
		InternalToken:     os.Getenv("INTERNAL_CALLBACK_TOKEN"),
		CredentialKeyRaw:  os.Getenv("CREDENTIAL_ENCRYPTION_KEY"),
		AgentRunTimeout:   runTimeout,
		SpawnCallbackBase: getEnvOrDefault("CALLBACK_BASE_URL", "http://localhost:8080"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that required secrets/URLs are present.
func (c *Config) Validate() error {
	if c.InternalToken == "" {
		return missingEnv("INTERNAL_CALLBACK_TOKEN")
	}
	if c.CredentialKeyRaw == "" {
		return missingEnv("CREDENTIAL_ENCRYPTION_KEY")
	}
	return nil
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

