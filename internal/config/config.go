package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Data     DataConfig
	Database DatabaseConfig
	Seed     SeedConfig
}

// DataConfig locates the raw statement files.
type DataConfig struct {
	Root string // statement files live at <root>/<account>/<period>.csv
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string
}

// SeedConfig locates the seed catalogue.
type SeedConfig struct {
	Catalogue string // path to a catalogue YAML; empty = built-in defaults
}

// Load reads configuration from file and env. Env var overrides use
// prefix BANKING_, e.g. BANKING_DATA_ROOT.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("data.root", "./data")
	v.SetDefault("database.path", "./banking.db")
	v.SetDefault("seed.catalogue", "")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("BANKING_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "banking-api"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("BANKING")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}
