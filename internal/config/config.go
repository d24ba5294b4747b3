package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server ServerConfig
	Log    LogConfig
	Map    MapConfig
	Auth   AuthConfig
	App    AppConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port    int
	GinMode string // debug, release, test
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, text
}

// MapConfig is the calibration pair for the map view: the geographic
// bounding box and the pixel viewport must match the artwork the client
// draws markers over, so both live in configuration together.
type MapConfig struct {
	North  float64
	South  float64
	East   float64
	West   float64
	Width  float64
	Height float64
}

// AuthConfig holds the single organizer account and token settings.
// Password is a plaintext fallback for development; when PasswordHash is
// set it wins.
type AuthConfig struct {
	Username     string
	Password     string
	PasswordHash string // bcrypt
	Secret       string
	TokenTTL     int // hours
}

// AppConfig holds application-specific configuration
type AppConfig struct {
	SeedDemoData bool // fill an empty roster with sample participants
}

// Load reads configuration from file and environment variables
func Load() (*Config, error) {
	// Set config file name and paths
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AddConfigPath("$HOME/.skireis")

	// Set defaults; the map defaults are calibrated to the Netherlands
	// artwork shipped with the frontend.
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.ginmode", "release")
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "text")
	viper.SetDefault("map.north", 53.6)
	viper.SetDefault("map.south", 50.7)
	viper.SetDefault("map.east", 7.3)
	viper.SetDefault("map.west", 3.3)
	viper.SetDefault("map.width", 380)
	viper.SetDefault("map.height", 480)
	viper.SetDefault("auth.username", "organizer")
	viper.SetDefault("auth.tokenTTL", 24)
	viper.SetDefault("app.seedDemoData", true)

	// Read from environment variables
	viper.SetEnvPrefix("SKIREIS")
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err != nil {
		// It's okay if config file doesn't exist, we have defaults
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Unmarshal into config struct
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.Auth.Secret == "" {
		return nil, fmt.Errorf("auth.secret must be set")
	}
	if cfg.Auth.Password == "" && cfg.Auth.PasswordHash == "" {
		return nil, fmt.Errorf("auth.password or auth.passwordHash must be set")
	}

	return &cfg, nil
}

// GetServerAddr returns the server address in the format ":port"
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

// NewLogger creates a new slog.Logger based on the configuration
func (c *Config) NewLogger() *slog.Logger {
	// Parse log level
	var level slog.Level
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	// Create handler options
	opts := &slog.HandlerOptions{
		Level: level,
	}

	// Choose handler based on format
	var handler slog.Handler
	switch strings.ToLower(c.Log.Format) {
	case "json":
		handler = slog.NewJSONHandler(os.Stdout, opts)
	default: // "text" or anything else
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}
