// SPDX-License-Identifier: MIT

// Package config loads lvcat runtime settings from defaults, an optional
// .lvcat.yaml, LVCAT_* environment variables and bound CLI flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// ErrInvalid reports a setting outside its allowed values.
var ErrInvalid = errors.New("config: invalid setting")

// Cache backends.
const (
	CacheNone   = "none"
	CacheMemory = "memory"
	CacheRedis  = "redis"
)

// ServerConfig holds settings for `lvcat serve`.
type ServerConfig struct {
	Addr         string        `mapstructure:"addr"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	MaxBodyBytes int64         `mapstructure:"max_body_bytes"`
}

// CacheConfig selects and sizes the normal-form cache.
type CacheConfig struct {
	Backend    string        `mapstructure:"backend"`
	TTL        time.Duration `mapstructure:"ttl"`
	MaxEntries int           `mapstructure:"max_entries"`
	RedisAddr  string        `mapstructure:"redis_addr"`
	RedisDB    int           `mapstructure:"redis_db"`
	RedisKey   string        `mapstructure:"redis_prefix"`
}

// Config holds all runtime configuration.
// Values are populated from .lvcat.yaml, LVCAT_* env vars, and CLI flags.
type Config struct {
	Verbose  bool          `mapstructure:"verbose"`
	Workers  int           `mapstructure:"workers"`
	Debounce time.Duration `mapstructure:"debounce"`
	Server   ServerConfig  `mapstructure:"server"`
	Cache    CacheConfig   `mapstructure:"cache"`
}

// Init points v at the config file (or .lvcat.yaml in the working and
// home directories) and the LVCAT_ environment. A missing file is fine.
func Init(v *viper.Viper, cfgFile string) error {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(".lvcat")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}
	v.SetEnvPrefix("LVCAT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}

	return nil
}

// SetDefaults registers the built-in defaults on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("verbose", false)
	v.SetDefault("workers", 4)
	v.SetDefault("debounce", 100*time.Millisecond)
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.read_timeout", 10*time.Second)
	v.SetDefault("server.write_timeout", 30*time.Second)
	v.SetDefault("server.max_body_bytes", int64(1<<20))
	v.SetDefault("cache.backend", CacheMemory)
	v.SetDefault("cache.ttl", time.Hour)
	v.SetDefault("cache.max_entries", 1024)
	v.SetDefault("cache.redis_addr", "localhost:6379")
	v.SetDefault("cache.redis_db", 0)
	v.SetDefault("cache.redis_prefix", "lvcat:")
}

// Load reads configuration from v (the global viper when nil), applying
// built-in defaults for any values not set by config file, environment,
// or flags.
func Load(v *viper.Viper) (Config, error) {
	if v == nil {
		v = viper.GetViper()
	}
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	return cfg, cfg.Validate()
}

// Validate checks ranges and enumerations.
func (c Config) Validate() error {
	switch c.Cache.Backend {
	case CacheNone, CacheMemory, CacheRedis:
	default:
		return fmt.Errorf("%w: cache.backend %q (want none, memory or redis)", ErrInvalid, c.Cache.Backend)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers %d < 1", ErrInvalid, c.Workers)
	}
	if c.Cache.MaxEntries < 0 {
		return fmt.Errorf("%w: cache.max_entries %d < 0", ErrInvalid, c.Cache.MaxEntries)
	}
	if c.Server.MaxBodyBytes <= 0 {
		return fmt.Errorf("%w: server.max_body_bytes must be positive", ErrInvalid)
	}

	return nil
}
