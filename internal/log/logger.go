// Package log is the structured logger used across termfolio. It is a thin
// layer over logrus that adds field helpers, error-aware logging and caller
// information pointing at the code that logged, not at this package.
package log

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync/atomic"
	"time"

	"termfolio/internal/errors"

	"github.com/sirupsen/logrus"
)

var (
	isDebug atomic.Bool
	logger  = NewLogger()
)

// Field is a single structured key/value pair attached to a log entry.
type Field struct {
	Key   string
	Value interface{}
}

// F builds a Field.
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

type options struct {
	out   io.Writer
	json  bool
	file  string
	level logrus.Level
}

// Option configures a Logger.
type Option func(*options)

// WithOutput sets the primary writer (stdout by default).
func WithOutput(w io.Writer) Option {
	return func(o *options) { o.out = w }
}

// WithJSON switches to one JSON object per line.
func WithJSON() Option {
	return func(o *options) { o.json = true }
}

// WithFile additionally appends every entry to the file at path.
func WithFile(path string) Option {
	return func(o *options) { o.file = path }
}

// WithLevel sets the minimum level by name (debug, info, warn, error).
// Unknown names leave the default in place.
func WithLevel(level string) Option {
	return func(o *options) {
		if lvl, err := logrus.ParseLevel(level); err == nil {
			o.level = lvl
		}
	}
}

// Logger writes leveled, structured entries.
type Logger struct {
	entry *logrus.Entry
	level logrus.Level
	file  *os.File
}

// NewLogger creates a logger. If a log file cannot be opened the logger
// falls back to the primary output and reports the failure there.
func NewLogger(opts ...Option) *Logger {
	o := options{out: os.Stdout, level: logrus.InfoLevel}
	for _, opt := range opts {
		opt(&o)
	}

	base := logrus.New()
	// Level gating happens in Logger so SetDebug can flip it globally.
	base.SetLevel(logrus.DebugLevel)
	if o.json {
		base.SetFormatter(&jsonFormatter{})
	} else {
		base.SetFormatter(&textFormatter{})
	}

	l := &Logger{level: o.level}
	out := o.out
	if o.file != "" {
		f, err := openLogFile(o.file)
		if err != nil {
			fmt.Fprintf(o.out, "log: cannot open %s: %v\n", o.file, err)
		} else {
			l.file = f
			out = io.MultiWriter(o.out, f)
		}
	}
	base.SetOutput(out)
	l.entry = logrus.NewEntry(base)
	return l
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
}

// Close releases the log file, if any.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}

// Configure replaces the package-level logger.
func Configure(opts ...Option) {
	logger = NewLogger(opts...)
}

// Shutdown closes the package-level logger's file.
func Shutdown() error {
	return logger.Close()
}

// SetDebug enables debug output on every logger.
func SetDebug(debug bool) {
	isDebug.Store(debug)
}

func (l *Logger) enabled(level logrus.Level) bool {
	if level == logrus.DebugLevel && isDebug.Load() {
		return true
	}
	return level <= l.level
}

// With returns a child logger carrying the given fields.
func (l *Logger) With(fields ...Field) *Logger {
	data := make(logrus.Fields, len(fields))
	for _, f := range fields {
		data[f.Key] = f.Value
	}
	return &Logger{entry: l.entry.WithFields(data), level: l.level, file: l.file}
}

// WithError returns a child logger describing err.
func (l *Logger) WithError(err error) *Logger {
	return l.With(errorFields(err)...)
}

// WithContext returns a child logger bound to ctx.
func (l *Logger) WithContext(ctx context.Context) *Logger {
	if ctx == nil {
		return l
	}
	return &Logger{entry: l.entry.WithContext(ctx), level: l.level, file: l.file}
}

func (l *Logger) log(level logrus.Level, msg string) {
	if !l.enabled(level) {
		return
	}
	l.entry.WithField("caller", caller()).Log(level, msg)
}

func (l *Logger) Debug(msg string, args ...interface{}) {
	l.log(logrus.DebugLevel, withArgs(msg, args))
}

func (l *Logger) Debugf(format string, args ...interface{}) {
	l.log(logrus.DebugLevel, fmt.Sprintf(format, args...))
}

func (l *Logger) Info(msg string, args ...interface{}) {
	l.log(logrus.InfoLevel, withArgs(msg, args))
}

func (l *Logger) Infof(format string, args ...interface{}) {
	l.log(logrus.InfoLevel, fmt.Sprintf(format, args...))
}

func (l *Logger) Warn(msg string, args ...interface{}) {
	l.log(logrus.WarnLevel, withArgs(msg, args))
}

func (l *Logger) Warnf(format string, args ...interface{}) {
	l.log(logrus.WarnLevel, fmt.Sprintf(format, args...))
}

func (l *Logger) Error(msg string, args ...interface{}) {
	l.log(logrus.ErrorLevel, withArgs(msg, args))
}

func (l *Logger) Errorf(format string, args ...interface{}) {
	l.log(logrus.ErrorLevel, fmt.Sprintf(format, args...))
}

func withArgs(msg string, args []interface{}) string {
	if len(args) == 0 {
		return msg
	}
	return msg + ": " + fmt.Sprint(args...)
}

// errorFields flattens err into log fields, including the application
// error kind and the type-specific detail of the outermost typed error.
func errorFields(err error) []Field {
	if err == nil {
		return []Field{F("error", "<nil>")}
	}
	fields := []Field{F("error", err.Error()), F("error_kind", errors.KindOf(err).String())}

	var inputErr *errors.InputError
	if errors.As(err, &inputErr) {
		fields = append(fields, F("op", inputErr.Op()))
	}
	var configErr *errors.ConfigError
	if errors.As(err, &configErr) && configErr.Param() != "" {
		fields = append(fields, F("param", configErr.Param()))
	}
	return fields
}

func caller() string {
	pcs := make([]uintptr, 16)
	n := runtime.Callers(3, pcs)
	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		if !strings.HasSuffix(frame.File, "/internal/log/logger.go") {
			return fmt.Sprintf("%s:%d", filepath.Base(frame.File), frame.Line)
		}
		if !more {
			return "unknown"
		}
	}
}

// Package-level helpers use the configured global logger.

func Debug(msg string, args ...interface{}) { logger.Debug(msg, args...) }

func Debugf(format string, args ...interface{}) { logger.Debugf(format, args...) }

func Info(msg string, args ...interface{}) { logger.Info(msg, args...) }

func Infof(format string, args ...interface{}) { logger.Infof(format, args...) }

func Warn(msg string, args ...interface{}) { logger.Warn(msg, args...) }

func Warnf(format string, args ...interface{}) { logger.Warnf(format, args...) }

func Error(msg string, args ...interface{}) { logger.Error(msg, args...) }

func Errorf(format string, args ...interface{}) { logger.Errorf(format, args...) }

// LogWithFields returns the global logger with fields attached.
func LogWithFields(fields ...Field) *Logger {
	return logger.With(fields...)
}

// LogWithError returns the global logger with err's fields attached.
func LogWithError(err error) *Logger {
	return logger.WithError(err)
}

// LogError logs err at error level with msg.
func LogError(err error, msg string) {
	logger.WithError(err).Error(msg)
}

const timestampFormat = "2006-01-02 15:04:05"

type textFormatter struct{}

// Format renders "[timestamp] LEVEL: message key=value ..." with keys sorted.
func (f *textFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	var b bytes.Buffer
	fmt.Fprintf(&b, "[%s] %s: %s", entry.Time.Format(timestampFormat), levelName(entry.Level), entry.Message)

	keys := make([]string, 0, len(entry.Data))
	for k := range entry.Data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, entry.Data[k])
	}
	b.WriteByte('\n')
	return b.Bytes(), nil
}

type jsonFormatter struct{}

func (f *jsonFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	data := make(map[string]interface{}, len(entry.Data)+3)
	for k, v := range entry.Data {
		if err, ok := v.(error); ok {
			v = err.Error()
		}
		data[k] = v
	}
	data["level"] = levelName(entry.Level)
	data["message"] = entry.Message
	data["timestamp"] = entry.Time.Format(time.RFC3339)

	out, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal log entry: %w", err)
	}
	return append(out, '\n'), nil
}

func levelName(level logrus.Level) string {
	switch level {
	case logrus.WarnLevel:
		return "WARN"
	default:
		return strings.ToUpper(level.String())
	}
}
