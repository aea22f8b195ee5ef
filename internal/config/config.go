// Package config carries the shared configuration every hbctl command reads.
// The root command builds one GlobalConfig from flags and environment, puts
// it on the cobra command context, and every subcommand pulls it back out.
package config

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/sethvargo/go-envconfig"

	"github.com/Mahesh-Koilapu/hbctl/internal/hbclient"
)

type contextKey string

const configKey contextKey = "hbctl-config"

// Env is the environment-variable surface of hbctl.
type Env struct {
	ServerURL      string `env:"HB_SERVER_URL, default=http://localhost:5000/api"`
	LogLevel       string `env:"HB_LOG_LEVEL, default=info"`
	NonInteractive bool   `env:"HB_NON_INTERACTIVE"`
	CacheDir       string `env:"HB_CACHE_DIR"`
}

// LoadEnv reads the environment surface.
func LoadEnv(ctx context.Context) (*Env, error) {
	var env Env
	if err := envconfig.Process(ctx, &env); err != nil {
		return nil, fmt.Errorf("failed to load environment configuration: %w", err)
	}
	return &env, nil
}

// GlobalConfig is the merged flag+env configuration plus the lazy client
// provider, injected into the command context by the root command.
type GlobalConfig struct {
	ServerURL      string
	NonInteractive bool
	CacheDir       string
	Logger         zerolog.Logger
	Provider       *hbclient.Provider
}

// InjectConfig adds cfg to the command context.
func InjectConfig(ctx context.Context, cfg *GlobalConfig) context.Context {
	return context.WithValue(ctx, configKey, cfg)
}

// FromContext retrieves the config. Returns (nil, false) when absent.
func FromContext(ctx context.Context) (*GlobalConfig, bool) {
	cfg, ok := ctx.Value(configKey).(*GlobalConfig)
	return cfg, ok
}

// MustFromContext retrieves the config or panics. Only for command RunE
// bodies, which always run below the root command's injection.
func MustFromContext(ctx context.Context) *GlobalConfig {
	cfg, ok := FromContext(ctx)
	if !ok {
		panic("hbctl: config not found in context - this is a bug in hbctl")
	}
	return cfg
}
