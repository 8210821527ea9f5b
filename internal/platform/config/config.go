package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Addr               string
	Environment        string
	JWTSecret          string
	MaxBodyBytes       int64
	RateLimitPerMinute int
	MetricsEnabled     bool
	Drivers            []string
	Currency           string
	SheetHeaderRow     int
	DelimitedHeaderRow int
	ShutdownTimeout    time.Duration
	LogLevel           string
	LogFormat          string
}

var defaults = map[string]any{
	"APP_ADDR":              ":8080",
	"APP_ENV":               "development",
	"JWT_SECRET":            "",
	"MAX_BODY_BYTES":        10 << 20,
	"RATE_LIMIT_PER_MINUTE": 60,
	"METRICS_ENABLED":       true,
	"DRIVERS":               "MOUSSA,PATHE",
	"CURRENCY":              "CFA",
	"SHEET_HEADER_ROW":      2,
	"DELIMITED_HEADER_ROW":  4,
	"SHUTDOWN_TIMEOUT":      "10s",
	"LOG_LEVEL":             "info",
	"LOG_FORMAT":            "console",
}

// Load reads configuration from the environment, a .env file in the working
// directory and, when file is set, a YAML/JSON/TOML config file. Environment
// variables win over the file.
func Load(file string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return load(viper.New(), file)
}

func load(v *viper.Viper, file string) (Config, error) {
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", file, err)
		}
	}

	return Config{
		Addr:               v.GetString("APP_ADDR"),
		Environment:        v.GetString("APP_ENV"),
		JWTSecret:          v.GetString("JWT_SECRET"),
		MaxBodyBytes:       v.GetInt64("MAX_BODY_BYTES"),
		RateLimitPerMinute: v.GetInt("RATE_LIMIT_PER_MINUTE"),
		MetricsEnabled:     v.GetBool("METRICS_ENABLED"),
		Drivers:            splitList(v.GetStringSlice("DRIVERS")),
		Currency:           v.GetString("CURRENCY"),
		SheetHeaderRow:     v.GetInt("SHEET_HEADER_ROW"),
		DelimitedHeaderRow: v.GetInt("DELIMITED_HEADER_ROW"),
		ShutdownTimeout:    v.GetDuration("SHUTDOWN_TIMEOUT"),
		LogLevel:           strings.ToLower(v.GetString("LOG_LEVEL")),
		LogFormat:          strings.ToLower(v.GetString("LOG_FORMAT")),
	}, nil
}

func splitList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func (c Config) IsProduction() bool {
	return c.Environment == "production"
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.Addr) == "" {
		return fmt.Errorf("APP_ADDR is required")
	}
	if c.IsProduction() && strings.TrimSpace(c.JWTSecret) == "" {
		return fmt.Errorf("JWT_SECRET must be set in production")
	}
	if c.MaxBodyBytes < 1024 {
		return fmt.Errorf("MAX_BODY_BYTES must be at least 1024")
	}
	if c.RateLimitPerMinute < 0 {
		return fmt.Errorf("RATE_LIMIT_PER_MINUTE must not be negative")
	}
	if c.SheetHeaderRow < 1 || c.DelimitedHeaderRow < 1 {
		return fmt.Errorf("SHEET_HEADER_ROW and DELIMITED_HEADER_ROW must be at least 1")
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT must be positive")
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid LOG_LEVEL: %s", c.LogLevel)
	}
	switch c.LogFormat {
	case "console", "json":
	default:
		return fmt.Errorf("invalid LOG_FORMAT: %s", c.LogFormat)
	}
	return nil
}
