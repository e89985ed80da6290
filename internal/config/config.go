// Package config loads server settings from the environment and the optional balance
// override file.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/cardastika-api/internal/entities/equipment"
	"github.com/KirkDiggler/cardastika-api/internal/errors"
)

// Log formats
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Config holds everything the server needs to start
type Config struct {
	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`
	GRPCPort      int    `env:"GRPC_PORT" envDefault:"50051"`
	OwnerID       string `env:"OWNER_ID" envDefault:"local"`
	BalanceFile   string `env:"BALANCE_FILE"`
	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat     string `env:"LOG_FORMAT" envDefault:"text"`

	// Balance is the default tables with BalanceFile applied on top
	Balance *equipment.Balance `env:"-"`
}

// Validate checks the parsed values
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.RedisAddr == "" {
		vb.RequiredField("REDIS_ADDR")
	}
	if c.OwnerID == "" {
		vb.RequiredField("OWNER_ID")
	}
	errors.ValidateRange("GRPC_PORT", float64(c.GRPCPort), 1, 65535, vb)
	if c.RedisDB < 0 {
		vb.Field("REDIS_DB", "must not be negative")
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		vb.Field("LOG_LEVEL", err.Error())
	}
	switch strings.ToLower(c.LogFormat) {
	case LogFormatText, LogFormatJSON:
	default:
		vb.Fieldf("LOG_FORMAT", "must be %q or %q", LogFormatText, LogFormatJSON)
	}

	return vb.Build()
}

// Load reads .env when present, parses the environment and resolves the balance tables
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded", "error", err)
	}
	return FromEnv()
}

// FromEnv parses the process environment without touching .env
func FromEnv() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	balance, err := LoadBalance(cfg.BalanceFile)
	if err != nil {
		return nil, err
	}
	cfg.Balance = balance

	return cfg, nil
}

// LoadBalance returns the default tables overridden by the YAML document at path. An
// empty path yields the defaults. Map entries in the file replace or add to the defaults
// key by key.
func LoadBalance(path string) (*equipment.Balance, error) {
	balance := equipment.DefaultBalance()
	if path == "" {
		return balance, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to read balance file").
			WithMeta("path", path)
	}
	if err := yaml.Unmarshal(data, balance); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse balance file").
			WithMeta("path", path)
	}
	if err := balance.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid balance file %s", path)
	}

	return balance, nil
}

// ParseLevel maps LOG_LEVEL onto a slog level
func ParseLevel(level string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", level)
	}
	return l, nil
}
