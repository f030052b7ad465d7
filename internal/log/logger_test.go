package log

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"termfolio/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBasicLogging(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(WithOutput(&buf))

	l.Info("info message")
	assert.Contains(t, buf.String(), "INFO")
	assert.Contains(t, buf.String(), "info message")
	buf.Reset()

	l.Warn("warn message")
	assert.Contains(t, buf.String(), "WARN")
	assert.Contains(t, buf.String(), "warn message")
	buf.Reset()

	l.Error("error message", "details")
	assert.Contains(t, buf.String(), "ERROR")
	assert.Contains(t, buf.String(), "error message: details")
	buf.Reset()

	l.Infof("formatted %s", "message")
	assert.Contains(t, buf.String(), "formatted message")
}

func TestDebugLogging(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(WithOutput(&buf))

	SetDebug(false)
	l.Debug("debug message")
	assert.Empty(t, buf.String())

	SetDebug(true)
	defer SetDebug(false)
	l.Debug("debug message")
	assert.Contains(t, buf.String(), "DEBUG")
	assert.Contains(t, buf.String(), "debug message")
	buf.Reset()

	l.Debugf("formatted %s", "debug")
	assert.Contains(t, buf.String(), "formatted debug")
}

func TestLevelOption(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(WithOutput(&buf), WithLevel("error"))

	l.Info("quiet")
	l.Warn("quiet")
	assert.Empty(t, buf.String())

	l.Error("loud")
	assert.Contains(t, buf.String(), "loud")
	buf.Reset()

	debug := NewLogger(WithOutput(&buf), WithLevel("debug"))
	debug.Debug("visible without SetDebug")
	assert.Contains(t, buf.String(), "visible without SetDebug")
}

func TestStructuredLogging(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(WithOutput(&buf))

	l.With(F("key1", "value1"), F("key2", 123)).Info("structured message")
	output := buf.String()
	assert.Contains(t, output, "structured message")
	assert.Contains(t, output, "key1=value1")
	assert.Contains(t, output, "key2=123")
	buf.Reset()

	l.With(F("key1", "value1")).With(F("key2", 123)).Info("chained fields")
	output = buf.String()
	assert.Contains(t, output, "key1=value1")
	assert.Contains(t, output, "key2=123")
}

func TestJSONLogging(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(WithOutput(&buf), WithJSON())

	l.Info("json message")
	var logEntry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(buf.String())), &logEntry))
	assert.Equal(t, "INFO", logEntry["level"])
	assert.Equal(t, "json message", logEntry["message"])
	assert.Contains(t, logEntry, "timestamp")
	assert.Contains(t, logEntry, "caller")
	buf.Reset()

	l.With(F("key1", "value1"), F("key2", 123)).Info("structured json")
	logEntry = map[string]interface{}{}
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(buf.String())), &logEntry))
	assert.Equal(t, "value1", logEntry["key1"])
	assert.Equal(t, float64(123), logEntry["key2"])
}

func TestErrorLogging(t *testing.T) {
	var buf bytes.Buffer
	originalLogger := logger
	Configure(WithOutput(&buf))
	defer func() { logger = originalLogger }()

	LogWithFields(F("error", "standard error")).Error("error occurred")
	assert.Contains(t, buf.String(), "error occurred")
	assert.Contains(t, buf.String(), "standard error")
	buf.Reset()

	LogWithError(errors.New("application error")).Error("app error occurred")
	output := buf.String()
	assert.Contains(t, output, "application error")
	assert.Contains(t, output, "error_kind=unknown")
	buf.Reset()

	inputErr := errors.NewInputError("poll", errors.InputPollFailed, fmt.Errorf("EBADF"))
	LogWithError(inputErr).Error("input failed")
	output = buf.String()
	assert.Contains(t, output, "input source failed: op=poll: EBADF")
	assert.Contains(t, output, "op=poll")
	assert.Contains(t, output, "error_kind=input_poll_failed")
	buf.Reset()

	configErr := errors.NewConfigError("bad value", "tick_rate", errors.InvalidConfig, nil)
	LogError(configErr, "convenient error log")
	output = buf.String()
	assert.Contains(t, output, "convenient error log")
	assert.Contains(t, output, "param=tick_rate")
	assert.Contains(t, output, "error_kind=invalid_config")
}

func TestNilErrorHandling(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(WithOutput(&buf))

	l.WithError(nil).Error("nil error test")
	assert.Contains(t, buf.String(), "nil error test")
	assert.Contains(t, buf.String(), "error=<nil>")
}

func TestCallerInfo(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(WithOutput(&buf))

	l.Info("caller test")
	assert.Contains(t, buf.String(), "caller=logger_test.go:")
}

func TestWithContext(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(WithOutput(&buf))

	l.WithContext(context.Background()).Info("context message")
	assert.Contains(t, buf.String(), "context message")
	buf.Reset()

	l.WithContext(nil).Info("nil context message")
	assert.Contains(t, buf.String(), "nil context message")
}

func TestFileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "termfolio.log")

	l := NewLogger(WithOutput(io.Discard), WithFile(path))
	l.Info("file test message")
	require.NoError(t, l.Close())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "file test message")
}

func TestConfigure(t *testing.T) {
	originalLogger := logger
	defer func() { logger = originalLogger }()

	var buf bytes.Buffer
	Configure(WithOutput(&buf), WithJSON())
	Info("global config test")

	var logEntry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(buf.String())), &logEntry))
	assert.Equal(t, "global config test", logEntry["message"])
	assert.Equal(t, "logger_test.go", strings.Split(logEntry["caller"].(string), ":")[0])
}
