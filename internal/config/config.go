// Package config loads runtime configuration for the hello server.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds runtime configuration.
type Config struct {
	// ListenAddr is the address the hello server listens on
	ListenAddr string

	// OpsAddr is the address of the operational HTTP surface
	OpsAddr string

	// PoolSize is the fixed number of pool workers
	PoolSize int

	// DocRoot is the directory static pages are served from
	DocRoot string

	// MaxConnections stops the listener after that many accepted
	// connections; zero means unlimited
	MaxConnections int

	// ShutdownTimeout bounds pool teardown; zero means wait forever
	ShutdownTimeout time.Duration

	// LogLevel is a logrus level name
	LogLevel string
}

// Load reads configuration from defaults, the HELLOPOOL_* environment
// and an optional config file, in increasing order of precedence.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("listen_addr", "127.0.0.1:7878")
	v.SetDefault("ops_addr", "127.0.0.1:8080")
	v.SetDefault("pool_size", 4)
	v.SetDefault("doc_root", "./static")
	v.SetDefault("max_connections", 0)
	v.SetDefault("shutdown_timeout", time.Duration(0))
	v.SetDefault("log_level", "info")

	v.SetEnvPrefix("HELLOPOOL")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := &Config{
		ListenAddr:      v.GetString("listen_addr"),
		OpsAddr:         v.GetString("ops_addr"),
		PoolSize:        v.GetInt("pool_size"),
		DocRoot:         v.GetString("doc_root"),
		MaxConnections:  v.GetInt("max_connections"),
		ShutdownTimeout: v.GetDuration("shutdown_timeout"),
		LogLevel:        v.GetString("log_level"),
	}

	if cfg.ListenAddr == "" {
		return nil, errors.New("listen_addr must not be empty")
	}
	if cfg.PoolSize <= 0 {
		return nil, fmt.Errorf("pool_size must be positive, got %d", cfg.PoolSize)
	}
	if cfg.MaxConnections < 0 {
		return nil, fmt.Errorf("max_connections must not be negative, got %d", cfg.MaxConnections)
	}

	return cfg, nil
}
