package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Server ServerConfig
	Data   DataConfig
	Log    LogConfig
	Growth GrowthConfig
	Report ReportConfig
}

// ServerConfig holds HTTP settings.
type ServerConfig struct {
	Addr string
}

// DataConfig selects the sales table. Source is "csv" or "sqlite"; Table
// is only used for sqlite.
type DataConfig struct {
	Source string
	Path   string
	Table  string
}

type LogConfig struct {
	Level string
}

// GrowthConfig holds the default years compared by the growth chart.
type GrowthConfig struct {
	From int
	To   int
}

type ReportConfig struct {
	Granularity string
}

const (
	SourceCSV    = "csv"
	SourceSQLite = "sqlite"
)

// Load reads configuration from file and env. Env var overrides use prefix CARSALES_.
// The file is CARSALES_CONFIG when set, otherwise carsales.{yaml,toml} in the
// working directory if present.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("data.source", SourceCSV)
	v.SetDefault("data.path", "car sales.csv")
	v.SetDefault("data.table", "car_sales")
	v.SetDefault("log.level", "info")
	v.SetDefault("growth.from", 2022)
	v.SetDefault("growth.to", 2023)
	v.SetDefault("report.granularity", "month")

	cfgPath := os.Getenv("CARSALES_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("carsales")
	}

	v.SetEnvPrefix("CARSALES")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgPath != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate rejects settings the server cannot start with.
func (c Config) Validate() error {
	switch c.Data.Source {
	case SourceCSV, SourceSQLite:
	default:
		return fmt.Errorf("data.source must be %q or %q, got %q", SourceCSV, SourceSQLite, c.Data.Source)
	}
	if c.Data.Path == "" {
		return errors.New("data.path is required")
	}
	return nil
}
