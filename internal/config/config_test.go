package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		for _, key := range []string{"PORT", "GIN_MODE", "LOG_LEVEL", "CONTENT_FILE", "COMPRESS"} {
			t.Setenv(key, "")
		}

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, ":8080", cfg.Addr())
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Empty(t, cfg.ContentFile)
		assert.True(t, cfg.Compress)
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("PORT", "9090")
		t.Setenv("GIN_MODE", "debug")
		t.Setenv("LOG_LEVEL", "debug")
		t.Setenv("CONTENT_FILE", "content.yaml")
		t.Setenv("COMPRESS", "false")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, ":9090", cfg.Addr())
		assert.Equal(t, "debug", cfg.GinMode)
		assert.Equal(t, "content.yaml", cfg.ContentFile)
		assert.False(t, cfg.Compress)
	})
}

func TestLoadRejectsUnknownGinMode(t *testing.T) {
	t.Setenv("GIN_MODE", "production")
	_, err := Load()
	assert.ErrorContains(t, err, "GIN_MODE")
}

func TestLogger(t *testing.T) {
	cfg := &Config{LogLevel: "debug"}
	logger, err := cfg.Logger()
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))

	cfg.LogLevel = "loud"
	_, err = cfg.Logger()
	assert.Error(t, err)
}
