package config_test

import (
	"testing"
	"time"

	"github.com/Astemirdum/book-exchange-admin/admin/config"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewConfig(t *testing.T) {
	t.Setenv("API_BASE_URL", "http://books.local/api")
	t.Setenv("KAFKA_ADDRS", "k1:9092,k2:9092")
	t.Setenv("LISTING_SHOW_ERRORS", "true")

	cfg := config.NewConfig(
		config.WithLogLevel(zapcore.DebugLevel),
		config.WithWriteTimeout(time.Minute),
		config.WithRenderWait(2*time.Second),
	)

	require.Equal(t, "http://books.local/api", cfg.API.BaseURL)
	require.Equal(t, time.Minute, cfg.API.Timeout)
	require.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Addrs)
	require.Equal(t, "admin-stats", cfg.Kafka.StatsTopic)
	require.True(t, cfg.Listing.ShowErrors)
	require.Equal(t, 10, cfg.Listing.PageSize)
	require.Equal(t, "en-US", cfg.Listing.Locale)
	require.Equal(t, 2*time.Second, cfg.Listing.RenderWait)
	require.Equal(t, time.Minute, cfg.Server.WriteTimeout)
	require.Equal(t, zapcore.DebugLevel, cfg.Log.LogLevel)
	require.Equal(t, "8080", cfg.Server.Port)
	require.Equal(t, 100, cfg.CircuitBreaker.RecordLength)

	// Later calls return the first configuration.
	again := config.NewConfig(config.WithLogLevel(zapcore.ErrorLevel))
	require.Equal(t, zapcore.DebugLevel, again.Log.LogLevel)
}
