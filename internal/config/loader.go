package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Load reads configuration from configs/config.yaml (optional) with
// environment-variable overrides. A .env file is honored when present so
// local development matches the deployed environment contract.
func Load() (*Config, error) {
	// Best effort; the deployed service gets real environment variables.
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath(".")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	// The hosting platform supplies these names.
	_ = v.BindEnv("mongo.uri", "MONGODB_URI", "MONGO_URI")
	_ = v.BindEnv("mongo.database", "DATABASE_NAME", "MONGO_DATABASE")
	_ = v.BindEnv("http.port", "PORT", "HTTP_PORT")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "bakery-catalog-service")
	v.SetDefault("app.environment", "development")

	v.SetDefault("http.port", 8080)
	v.SetDefault("http.read_timeout", 10000)
	v.SetDefault("http.write_timeout", 10000)
	v.SetDefault("http.shutdown_timeout", 5000)

	v.SetDefault("mongo.database", "bakery_website")
	v.SetDefault("mongo.connect_timeout", 5000)
	v.SetDefault("mongo.operation_timeout", 5000)

	v.SetDefault("catalog.default_page_size", 20)
	v.SetDefault("catalog.max_page_size", 100)

	v.SetDefault("cors.allowed_origins", []string{"*"})
	v.SetDefault("cors.allowed_methods", []string{"GET", "POST", "OPTIONS"})
	v.SetDefault("cors.allowed_headers", []string{"Content-Type", "Authorization"})

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
}

func validate(cfg *Config) error {
	if cfg.Mongo.URI == "" {
		return fmt.Errorf("mongo.uri is required (set MONGODB_URI)")
	}
	if cfg.Mongo.Database == "" {
		return fmt.Errorf("mongo.database is required")
	}
	if cfg.Catalog.DefaultPageSize < 1 {
		return fmt.Errorf("catalog.default_page_size must be >= 1")
	}
	if cfg.Catalog.MaxPageSize < cfg.Catalog.DefaultPageSize {
		return fmt.Errorf("catalog.max_page_size must be >= catalog.default_page_size")
	}
	if cfg.HTTP.Port < 1 || cfg.HTTP.Port > 65535 {
		return fmt.Errorf("http.port out of range: %d", cfg.HTTP.Port)
	}
	return nil
}
