package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"
	"time"
)

// New creates a logger writing entries of the given format to writer
func New(writer io.Writer, level Level, format Format) *StreamLogger {
	return &StreamLogger{
		shared: &loggerState{writer: writer, level: level, format: format},
		fields: make([]Field, 0),
	}
}

// NewJSONLogger creates a new JSON logger
func NewJSONLogger(writer io.Writer, level Level) *JSONLogger {
	return New(writer, level, FormatJSON)
}

// NewTextLogger creates a logger with human-readable output
func NewTextLogger(writer io.Writer, level Level) *StreamLogger {
	return New(writer, level, FormatText)
}

// log is the internal logging method
func (l *StreamLogger) log(level Level, msg string, fields ...Field) {
	s := l.shared
	s.mu.Lock()
	defer s.mu.Unlock()

	if level < s.level {
		return
	}

	fieldMap := make(map[string]any, len(l.fields)+len(fields))
	for _, f := range l.fields {
		fieldMap[f.Key] = f.Value
	}
	for _, f := range fields {
		fieldMap[f.Key] = f.Value
	}

	entry := LogEntry{
		Time:    time.Now().Format(time.RFC3339Nano),
		Level:   level.String(),
		Message: msg,
	}
	if len(fieldMap) > 0 {
		entry.Fields = fieldMap
	}

	if s.format == FormatText {
		fmt.Fprintln(s.writer, formatText(entry))
		return
	}

	data, err := json.Marshal(entry)
	if err != nil {
		fmt.Fprintf(s.writer, "[ERROR] Failed to marshal log entry: %v\n", err)
		return
	}
	s.writer.Write(append(data, '\n'))
}

// formatText renders an entry with fields sorted by key
func formatText(e LogEntry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %-5s %s", e.Time, e.Level, e.Message)
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, e.Fields[k])
	}
	return b.String()
}

// Debug logs a debug-level message
func (l *StreamLogger) Debug(msg string, fields ...Field) {
	l.log(DebugLevel, msg, fields...)
}

// Info logs an info-level message
func (l *StreamLogger) Info(msg string, fields ...Field) {
	l.log(InfoLevel, msg, fields...)
}

// Warn logs a warning-level message
func (l *StreamLogger) Warn(msg string, fields ...Field) {
	l.log(WarnLevel, msg, fields...)
}

// Error logs an error-level message
func (l *StreamLogger) Error(msg string, fields ...Field) {
	l.log(ErrorLevel, msg, fields...)
}

// With creates a child logger with the given fields pre-set
func (l *StreamLogger) With(fields ...Field) Logger {
	newFields := make([]Field, len(l.fields)+len(fields))
	copy(newFields, l.fields)
	copy(newFields[len(l.fields):], fields)

	return &StreamLogger{shared: l.shared, fields: newFields}
}

// SetLevel sets the minimum log level for this logger and its children
func (l *StreamLogger) SetLevel(level Level) {
	l.shared.mu.Lock()
	defer l.shared.mu.Unlock()
	l.shared.level = level
}

// GetLevel returns the current log level
func (l *StreamLogger) GetLevel() Level {
	l.shared.mu.Lock()
	defer l.shared.mu.Unlock()
	return l.shared.level
}

// Global default logger
var (
	defaultLogger Logger
	defaultMu     sync.Mutex
)

// DefaultLogger returns the global default logger. It writes text to stderr so
// command output on stdout stays clean; ANTENNAS_LOG_LEVEL or LOG_LEVEL set the level.
func DefaultLogger() Logger {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultLogger == nil {
		defaultLogger = NewTextLogger(os.Stderr, LevelFromEnv(InfoLevel))
	}
	return defaultLogger
}

// LevelFromEnv reads ANTENNAS_LOG_LEVEL, then LOG_LEVEL, falling back to def
func LevelFromEnv(def Level) Level {
	for _, key := range []string{"ANTENNAS_LOG_LEVEL", "LOG_LEVEL"} {
		if v := os.Getenv(key); v != "" {
			return ParseLevel(v)
		}
	}
	return def
}

// SetDefaultLogger sets the global default logger
func SetDefaultLogger(logger Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = logger
}

// Debug logs a debug-level message using the default logger
func Debug(msg string, fields ...Field) {
	DefaultLogger().Debug(msg, fields...)
}

// Info logs an info-level message using the default logger
func Info(msg string, fields ...Field) {
	DefaultLogger().Info(msg, fields...)
}

// Warn logs a warning-level message using the default logger
func Warn(msg string, fields ...Field) {
	DefaultLogger().Warn(msg, fields...)
}

// ErrorLog logs an error-level message using the default logger.
// Named ErrorLog to avoid conflict with the Error field constructor.
func ErrorLog(msg string, fields ...Field) {
	DefaultLogger().Error(msg, fields...)
}

// With creates a child of the default logger
func With(fields ...Field) Logger {
	return DefaultLogger().With(fields...)
}

// StartTimer begins timing an operation
func StartTimer(logger Logger, msg string, fields ...Field) *TimedOperation {
	return &TimedOperation{
		logger: logger,
		msg:    msg,
		start:  time.Now(),
		fields: fields,
	}
}

// End logs the operation with its duration at debug level
func (t *TimedOperation) End(fields ...Field) {
	all := append(append([]Field{}, t.fields...), fields...)
	t.logger.Debug(t.msg, append(all, Latency(time.Since(t.start)))...)
}

// EndError logs the operation as an error with its duration
func (t *TimedOperation) EndError(err error) {
	fields := append(append([]Field{}, t.fields...), Latency(time.Since(t.start)), Error(err))
	t.logger.Error(t.msg, fields...)
}
