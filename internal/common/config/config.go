package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// ============================================================
// Configuration
// ============================================================

const (
	StoreMemory = "memory"
	StoreSQLite = "sqlite"
)

var ErrStoreUnknown = errors.New("unknown store backend")

type Config struct {
	Port         string
	Environment  string
	ReadTimeout  int
	WriteTimeout int
	Store        string
	SQLiteDSN    string
	CORSOrigins  []string
}

// Load загружает конфигурацию из переменных окружения.
func Load() *Config {
	return FromViper(viper.New())
}

// FromViper читает конфигурацию из v. Ключи без значения берутся из
// переменных окружения (port -> PORT), затем из значений по умолчанию.
func FromViper(v *viper.Viper) *Config {
	v.SetDefault("port", "8000")
	v.SetDefault("env", "development")
	v.SetDefault("read_timeout", 10)
	v.SetDefault("write_timeout", 10)
	v.SetDefault("store", StoreMemory)
	v.SetDefault("sqlite_dsn", ":memory:")
	v.SetDefault("cors_origins", "*")
	v.AutomaticEnv()

	return &Config{
		Port:         v.GetString("port"),
		Environment:  v.GetString("env"),
		ReadTimeout:  v.GetInt("read_timeout"),
		WriteTimeout: v.GetInt("write_timeout"),
		Store:        strings.ToLower(v.GetString("store")),
		SQLiteDSN:    v.GetString("sqlite_dsn"),
		CORSOrigins:  splitList(v.GetString("cors_origins")),
	}
}

func (c *Config) Validate() error {
	switch c.Store {
	case StoreMemory, StoreSQLite:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrStoreUnknown, c.Store)
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
