package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"bestseller-sync/core/database"
	"bestseller-sync/core/logger"
	"bestseller-sync/core/server"
	"bestseller-sync/core/storage"
	"bestseller-sync/feature/bestsellers"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Server holds configuration for the HTTP server (service mode).
	Server server.Config `mapstructure:"server"`
	// Storage holds configuration for the snapshot archive (S3, Minio).
	Storage storage.Config `mapstructure:"storage"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Catalog holds configuration for the Audiobookshelf database.
	Catalog database.Config `mapstructure:"catalog"`
	// Source holds configuration for the NYT Books API.
	Source bestsellers.Config `mapstructure:"source"`
	// Sync holds what is published and where.
	Sync SyncConfig `mapstructure:"sync"`
}

// SyncConfig describes the collections a run publishes.
type SyncConfig struct {
	// Library is the name of the Audiobookshelf library collections live in.
	Library string `mapstructure:"library" default:"books"`
	// StrictTitleMatch treats title+author matches hitting several books as unresolved.
	StrictTitleMatch bool `mapstructure:"strict_title_match" default:"false"`
	// Collections maps collection names to NYT list ids. Only settable from config.yaml.
	Collections []bestsellers.TargetGroup `mapstructure:"collections"`
}

// LoadConfig loads configuration from environment variables, the .env file and an
// optional config.yaml in path.
func LoadConfig(path string) (*Config, error) {
	// 1. Load .env file if it exists
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Ignore error if file doesn't exist (e.g. production)
	_ = godotenv.Overload(envPath)

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(path)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Map environment variables to nested keys (e.g. CATALOG_PATH -> catalog.path)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// The variable name used by the NYT developer docs.
	_ = v.BindEnv("source.api_key", "SOURCE_API_KEY", "NYT_API_KEY")

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	if len(config.Sync.Collections) == 0 {
		config.Sync.Collections = bestsellers.DefaultCollections()
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks values that have no usable fallback.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Sync.Library) == "" {
		return errors.New("sync.library must not be empty")
	}
	switch c.Catalog.Mode {
	case "ro", "rw", "rwc":
	default:
		return fmt.Errorf("catalog.mode must be ro, rw or rwc, got %q", c.Catalog.Mode)
	}
	seen := make(map[string]struct{}, len(c.Sync.Collections))
	for i, g := range c.Sync.Collections {
		if strings.TrimSpace(g.Name) == "" {
			return fmt.Errorf("sync.collections[%d] has no name", i)
		}
		if _, dup := seen[g.Name]; dup {
			return fmt.Errorf("sync.collections: duplicate collection %q", g.Name)
		}
		seen[g.Name] = struct{}{}
	}
	return nil
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	// If it's a pointer, get the element
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		// Skip if no tag
		if tag == "" {
			continue
		}

		// Build the key
		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		switch field.Type.Kind() {
		case reflect.Struct:
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		case reflect.Slice, reflect.Map:
			// An empty-string default would shadow the config file value.
			continue
		}

		defaultValue := field.Tag.Get("default")
		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, defaultValue)
	}
}
