package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Port         int
	CORSOrigins  []string
	JWTSecret    string
	MaxBodyBytes int64
	RateLimit    int
	RateWindow   time.Duration
	LogLevel     string
	LogFormat    string
}

// AuthEnabled reports whether /api/convert requires a bearer token.
func (c *Config) AuthEnabled() bool {
	return c.JWTSecret != ""
}

// Load reads configuration from defaults, an optional YAML file, a .env
// file in the working directory and the environment, in increasing order of
// precedence.
func Load(configFile string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	v.SetDefault("port", 8080)
	v.SetDefault("cors_origins", "*")
	v.SetDefault("jwt_secret", "")
	v.SetDefault("max_body_bytes", 10<<20)
	v.SetDefault("rate_limit", 0)
	v.SetDefault("rate_window", time.Minute)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "console")

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", configFile, err)
		}
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{
		Port:         v.GetInt("port"),
		CORSOrigins:  splitOrigins(v.GetString("cors_origins")),
		JWTSecret:    v.GetString("jwt_secret"),
		MaxBodyBytes: v.GetInt64("max_body_bytes"),
		RateLimit:    v.GetInt("rate_limit"),
		RateWindow:   v.GetDuration("rate_window"),
		LogLevel:     v.GetString("log_level"),
		LogFormat:    v.GetString("log_format"),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %d", c.Port)
	}
	if c.MaxBodyBytes <= 0 {
		return fmt.Errorf("max_body_bytes must be positive, got %d", c.MaxBodyBytes)
	}
	if c.RateLimit < 0 {
		return fmt.Errorf("rate_limit must not be negative, got %d", c.RateLimit)
	}
	if c.RateLimit > 0 && c.RateWindow <= 0 {
		return fmt.Errorf("rate_window must be positive when rate_limit is set")
	}
	return nil
}

// CORS origins: comma-separated list or "*"
func splitOrigins(v string) []string {
	origins := strings.Split(v, ",")
	out := make([]string, 0, len(origins))
	for _, o := range origins {
		o = strings.TrimSpace(o)
		if o != "" {
			out = append(out, o)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}
