package logger_test

import (
	"path/filepath"
	"testing"

	"github.com/Astemirdum/book-exchange-admin/pkg/logger"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewLogger(t *testing.T) {
	t.Parallel()
	sink := filepath.Join(t.TempDir(), "admin.log")
	log := logger.NewLogger(logger.Log{LogLevel: zapcore.WarnLevel, Sink: sink}, "test")
	require.NotNil(t, log)
	require.False(t, log.Core().Enabled(zapcore.InfoLevel))
	require.True(t, log.Core().Enabled(zapcore.ErrorLevel))
}
