package config

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds all application configuration
type Config struct {
	Port        string `mapstructure:"port"`
	GinMode     string `mapstructure:"gin_mode"`
	LogLevel    string `mapstructure:"log_level"`
	ContentFile string `mapstructure:"content_file"`
	Compress    bool   `mapstructure:"compress"`
}

// Load reads configuration from the environment. Call sites import
// godotenv/autoload first so a local .env file is honored.
func Load() (*Config, error) {
	v := viper.New()
	v.SetDefault("port", "8080")
	v.SetDefault("gin_mode", "release")
	v.SetDefault("log_level", "info")
	v.SetDefault("content_file", "")
	v.SetDefault("compress", true)

	for _, key := range []string{"port", "gin_mode", "log_level", "content_file", "compress"} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("binding %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	switch cfg.GinMode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
	default:
		return nil, fmt.Errorf("invalid GIN_MODE %q", cfg.GinMode)
	}
	return &cfg, nil
}

// Addr is the listen address for the HTTP server
func (c *Config) Addr() string {
	return ":" + c.Port
}

// Logger builds the production zap logger at the configured level
func (c *Config) Logger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("parsing log level %q: %w", c.LogLevel, err)
	}

	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}
