package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

const EnvPrefix = "RECEIPT"

const (
	EnvAppEnv           = "RECEIPT_APP_ENV"
	EnvLogLevel         = "RECEIPT_LOG_LEVEL"
	EnvLogWarnStack     = "RECEIPT_LOG_WARN_STACK"
	EnvLogFormat        = "RECEIPT_LOG_FORMAT"
	EnvSeedFile         = "RECEIPT_SEED_FILE"
	EnvMetricsTextfile  = "RECEIPT_METRICS_TEXTFILE"
	EnvServiceName      = "RECEIPT_SERVICE_NAME"
	AppEnvDev           = "dev"
	defaultServiceLabel = "receipt"
)

type Config struct {
	App     AppConfig
	Seed    SeedConfig
	Metrics MetricsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Seed.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"RECEIPT_APP_ENV" default:"dev"`
	ServiceName  string `envconfig:"RECEIPT_SERVICE_NAME" default:"receipt"`
	LogLevel     string `envconfig:"RECEIPT_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"RECEIPT_LOG_WARN_STACK" default:"false"`
	LogFormat    string `envconfig:"RECEIPT_LOG_FORMAT"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

// Format returns the log encoding. An explicit RECEIPT_LOG_FORMAT wins and dev
// runs default to console; otherwise it is empty and the logger decides.
func (a AppConfig) Format() string {
	if format := strings.ToLower(strings.TrimSpace(a.LogFormat)); format != "" {
		return format
	}
	if a.IsDev() {
		return "console"
	}
	return ""
}

// Service returns the logger service label, falling back to "receipt".
func (a AppConfig) Service() string {
	if name := strings.TrimSpace(a.ServiceName); name != "" {
		return name
	}
	return defaultServiceLabel
}

// SeedConfig points at an optional YAML file listing the cart items to load.
// When File is empty the built-in sample cart is used.
type SeedConfig struct {
	File string `envconfig:"RECEIPT_SEED_FILE"`
}

func (s SeedConfig) UseSample() bool {
	return strings.TrimSpace(s.File) == ""
}

func (s SeedConfig) validate() error {
	if s.UseSample() {
		return nil
	}
	lower := strings.ToLower(s.File)
	if !strings.HasSuffix(lower, ".yaml") && !strings.HasSuffix(lower, ".yml") {
		return fmt.Errorf("%s must point at a .yaml or .yml file, got %q", EnvSeedFile, s.File)
	}
	return nil
}

type MetricsConfig struct {
	TextfilePath string `envconfig:"RECEIPT_METRICS_TEXTFILE"`
}

func (m MetricsConfig) Enabled() bool {
	return strings.TrimSpace(m.TextfilePath) != ""
}
