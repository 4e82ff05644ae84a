package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"item-translator/core/database"
	"item-translator/core/logger"
	"item-translator/core/mappings"
	"item-translator/core/server"
	"item-translator/core/storage"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application, one section per
// package.
type Config struct {
	Server    server.Config   `mapstructure:"server"`
	Storage   storage.Config  `mapstructure:"storage"`
	Log       logger.Config   `mapstructure:"log"`
	Database  database.Config `mapstructure:"database"`
	Converter Converter       `mapstructure:"converter"`
	Mappings  mappings.Config `mapstructure:"mappings"`
}

// Converter holds configuration for the legacy item converter.
type Converter struct {
	// PreserveInconvertibleData keeps values without a legacy equivalent
	// in the backup sub-tree.
	PreserveInconvertibleData bool `mapstructure:"preserve_inconvertible_data" default:"false"`
	// CacheSize bounds the number of cached translations.
	CacheSize int `mapstructure:"cache_size" default:"1024"`
}

// Validate checks every section and joins the failures.
func (c *Config) Validate() error {
	var errs []error
	if err := c.Server.Validate(); err != nil {
		errs = append(errs, err)
	}
	if err := c.Mappings.Validate(); err != nil {
		errs = append(errs, err)
	}
	if err := c.Database.Validate(); err != nil {
		errs = append(errs, err)
	}
	if c.Converter.CacheSize < 0 {
		errs = append(errs, fmt.Errorf("converter cache_size must not be negative"))
	}
	return errors.Join(errs...)
}

// LoadConfig loads configuration from an optional config.yaml in path, the
// .env file in path and environment variables, in increasing precedence.
func LoadConfig(path string) (*Config, error) {
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// A missing .env is normal outside development.
	_ = godotenv.Overload(envPath)

	v := viper.New()

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

	// SERVER_PORT -> server.port
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// bindValues registers every mapstructure key of iface in v with the value
// of its default tag.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")
		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		// An empty default still registers the key for AutomaticEnv.
		v.SetDefault(key, field.Tag.Get("default"))
	}
}
