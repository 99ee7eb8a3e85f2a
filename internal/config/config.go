// Package config loads environment variables into typed config structs.
//
// Variables use the PORTFOLIO_ prefix and map into nested structs through
// koanf: PORTFOLIO_DATABASE_HOST -> Config.Database.Host. A .env file, when
// present, is loaded first via godotenv's autoload import. Missing required
// database settings fail the load: the process must not start without store
// credentials.
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "PORTFOLIO_"

type Config struct {
	App      AppConfig      `koanf:"app"`
	Server   ServerConfig   `koanf:"server"`
	Database DatabaseConfig `koanf:"database" validate:"required"`
}

type AppConfig struct {
	Name string `koanf:"name"`
	Env  string `koanf:"env"`
}

// ServerConfig holds HTTP runtime settings. Timeouts are seconds; all three
// are bounded so a slow client cannot hold a connection forever.
type ServerConfig struct {
	Port         string `koanf:"port"`
	ReadTimeout  int    `koanf:"read_timeout"`
	WriteTimeout int    `koanf:"write_timeout"`
	IdleTimeout  int    `koanf:"idle_timeout"`
	CORSOrigins  string `koanf:"cors_origins"`
}

type DatabaseConfig struct {
	Host     string `koanf:"host" validate:"required"`
	Port     int    `koanf:"port"`
	User     string `koanf:"user" validate:"required"`
	Password string `koanf:"password"`
	Name     string `koanf:"name" validate:"required"`
	SSLMode  string `koanf:"ssl_mode"`

	ConnectTimeout  int   `koanf:"connect_timeout"`
	MaxConns        int32 `koanf:"max_conns"`
	MinConns        int32 `koanf:"min_conns"`
	MaxConnLifetime int   `koanf:"max_conn_lifetime"`
	MaxConnIdleTime int   `koanf:"max_conn_idle_time"`

	Seed bool `koanf:"seed"`
}

func Load() (Config, error) {
	k := koanf.New(".")

	// PORTFOLIO_SERVER_READ_TIMEOUT -> "server.read_timeout": the first
	// underscore separates the section, the rest stays as the key.
	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.Replace(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "_", ".", 1)
	}), nil)
	if err != nil {
		return Config{}, fmt.Errorf("load env: %w", err)
	}

	cfg := defaults()
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func defaults() Config {
	return Config{
		App: AppConfig{
			Name: "portfolio-api",
			Env:  "development",
		},
		Server: ServerConfig{
			Port:         "8080",
			ReadTimeout:  10,
			WriteTimeout: 10,
			IdleTimeout:  60,
			CORSOrigins:  "*",
		},
		Database: DatabaseConfig{
			Port:           5432,
			SSLMode:        "disable",
			ConnectTimeout: 5,
			MaxConns:       10,
		},
	}
}
