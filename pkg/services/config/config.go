package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// StoreDriver selects which provider/benchmark backends the server wires up.
type StoreDriver string

const (
	StoreStatic   StoreDriver = "static"
	StorePostgres StoreDriver = "postgres"
	StoreS3       StoreDriver = "s3"
)

type ServerConfig struct {
	Addr            string        `mapstructure:"addr"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type StoreConfig struct {
	Driver StoreDriver `mapstructure:"driver"`
	DSN    string      `mapstructure:"dsn"`
	Bucket string      `mapstructure:"bucket"`
	Prefix string      `mapstructure:"prefix"`
	Region string      `mapstructure:"region"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Store  StoreConfig  `mapstructure:"store"`
	Redis  RedisConfig  `mapstructure:"redis"`
	Tier   string       `mapstructure:"tier"`
}

// Load reads the YAML config at path, with REVATLAS_* environment variables
// taking precedence. An empty path yields defaults only.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("REVATLAS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("store.driver", string(StoreStatic))
	v.SetDefault("store.prefix", "providers")
	v.SetDefault("tier", "pro")

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	switch cfg.Store.Driver {
	case StoreStatic, StorePostgres, StoreS3:
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}

	return &cfg, nil
}
