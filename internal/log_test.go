package internal

import (
	"bytes"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	out, flags := log.Writer(), log.Flags()
	log.SetOutput(&buf)
	log.SetFlags(0)
	t.Cleanup(func() {
		log.SetOutput(out)
		log.SetFlags(flags)
	})
	return &buf
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, LogLevelError, ParseLogLevel("ERROR"))
	assert.Equal(t, LogLevelWarn, ParseLogLevel("warn"))
	assert.Equal(t, LogLevelDebug, ParseLogLevel(" debug "))
	assert.Equal(t, LogLevelTrace, ParseLogLevel("TRACE"))
	assert.Equal(t, LogLevelInfo, ParseLogLevel(""))
	assert.Equal(t, LogLevelInfo, ParseLogLevel("loud"))
}

func TestLogger_LevelFiltering(t *testing.T) {
	buf := captureLog(t)
	logger := NewLogger(LogLevelWarn).WithComponent("NormalityService")

	logger.Info("hidden %d", 1)
	logger.Debug("hidden %d", 2)
	logger.Warn("alpha %.2f has no table", 0.12)
	logger.Error("boom")

	assert.Equal(t, "[WARN] [NormalityService] alpha 0.12 has no table\n[ERROR] [NormalityService] boom\n", buf.String())
	assert.Equal(t, LogLevelWarn, logger.GetLevel())
}
