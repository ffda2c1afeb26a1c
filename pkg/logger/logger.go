package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strings"
	"sync/atomic"
	"time"
)

// LogLevel represents the severity level of a log message
type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
)

func (l LogLevel) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

const (
	FormatText = "text"
	FormatJSON = "json"

	timestampLayout = "2006-01-02T15:04:05.000Z07:00"
)

// Logger is a leveled key/value logger. Child loggers created with
// WithField(s) share the parent's output and level.
type Logger struct {
	level  *atomic.Int32
	logger *log.Logger
	format string
	fields map[string]interface{}
}

type Config struct {
	Level  LogLevel
	Output io.Writer
	Format string // "json" or "text" (default)
}

func New() *Logger {
	return NewWithConfig(Config{
		Level:  INFO,
		Output: os.Stdout,
		Format: FormatText,
	})
}

func NewWithConfig(config Config) *Logger {
	if config.Output == nil {
		config.Output = os.Stdout
	}
	if config.Format != FormatJSON {
		config.Format = FormatText
	}

	level := &atomic.Int32{}
	level.Store(int32(config.Level))

	return &Logger{
		level: level,
		// no default prefix/flags, we'll format ourselves
		logger: log.New(config.Output, "", 0),
		format: config.Format,
		fields: make(map[string]interface{}),
	}
}

func (l *Logger) WithFields(keyVals ...interface{}) *Logger {
	newLogger := &Logger{
		level:  l.level,
		logger: l.logger,
		format: l.format,
		fields: make(map[string]interface{}, len(l.fields)+len(keyVals)/2),
	}

	for k, v := range l.fields {
		newLogger.fields[k] = v
	}

	for i := 0; i+1 < len(keyVals); i += 2 {
		key := fmt.Sprintf("%v", keyVals[i])
		newLogger.fields[key] = keyVals[i+1]
	}

	return newLogger
}

// WithField returns a new logger with a single additional context field
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return l.WithFields(key, value)
}

func (l *Logger) Debug(msg string, keyVals ...interface{}) {
	l.log(DEBUG, msg, keyVals...)
}

func (l *Logger) Info(msg string, kv ...interface{}) {
	l.log(INFO, msg, kv...)
}

func (l *Logger) Warn(msg string, kv ...interface{}) {
	l.log(WARN, msg, kv...)
}

func (l *Logger) Error(msg string, kv ...interface{}) {
	l.log(ERROR, msg, kv...)
}

func (l *Logger) Fatal(msg string, kv ...interface{}) {
	l.log(ERROR, msg, kv...)
	os.Exit(1)
}

func (l *Logger) Fatalf(format string, args ...interface{}) {
	l.log(ERROR, fmt.Sprintf(format, args...))
	os.Exit(1)
}

func (l *Logger) log(level LogLevel, msg string, kv ...interface{}) {
	if level < l.GetLevel() {
		return
	}

	timestamp := time.Now().Format(timestampLayout)

	allFields := make(map[string]interface{}, len(l.fields)+len(kv)/2)
	for k, v := range l.fields {
		allFields[k] = v
	}

	// key/vals from this call win over inherited ones
	for i := 0; i+1 < len(kv); i += 2 {
		key := fmt.Sprintf("%v", kv[i])
		allFields[key] = kv[i+1]
	}

	if l.format == FormatJSON {
		l.logger.Print(formatJSONLine(timestamp, level, msg, allFields))
		return
	}
	l.logger.Print(formatLogLine(timestamp, level, msg, allFields))
}

func formatLogLine(timestamp string, level LogLevel, msg string, fields map[string]interface{}) string {
	parts := []string{
		fmt.Sprintf("[%s]", timestamp),
		fmt.Sprintf("[%s]", level.String()),
		msg,
	}

	if len(fields) > 0 {
		keys := sortedKeys(fields)
		fieldParts := make([]string, 0, len(keys))
		for _, key := range keys {
			fieldParts = append(fieldParts, fmt.Sprintf("%s=%s", key, formatValue(fields[key])))
		}
		parts = append(parts, fmt.Sprintf("| %s", strings.Join(fieldParts, " ")))
	}

	return strings.Join(parts, " ")
}

func formatJSONLine(timestamp string, level LogLevel, msg string, fields map[string]interface{}) string {
	entry := make(map[string]interface{}, len(fields)+3)
	for k, v := range fields {
		switch val := v.(type) {
		case error:
			entry[k] = val.Error()
		case time.Duration:
			entry[k] = val.String()
		default:
			entry[k] = val
		}
	}
	entry["ts"] = timestamp
	entry["level"] = level.String()
	entry["msg"] = msg

	data, err := json.Marshal(entry)
	if err != nil {
		return formatLogLine(timestamp, level, msg, fields)
	}
	return string(data)
}

func sortedKeys(fields map[string]interface{}) []string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func formatValue(value interface{}) string {
	switch v := value.(type) {
	case string:
		// Quote strings that contain spaces
		if strings.Contains(v, " ") {
			return fmt.Sprintf(`"%s"`, v)
		}
		return v
	case error:
		return fmt.Sprintf(`"%s"`, v.Error())
	case time.Duration:
		return v.String()
	case time.Time:
		return v.Format("2006-01-02T15:04:05Z07:00")
	default:
		return fmt.Sprintf("%v", v)
	}
}

func (l *Logger) SetLevel(level LogLevel) {
	l.level.Store(int32(level))
}

func (l *Logger) GetLevel() LogLevel {
	return LogLevel(l.level.Load())
}

func (l *Logger) IsDebugEnabled() bool {
	return l.GetLevel() <= DEBUG
}

func (l *Logger) IsInfoEnabled() bool {
	return l.GetLevel() <= INFO
}

// global logger instance for the convenience
var globalLogger atomic.Pointer[Logger]

func init() {
	globalLogger.Store(New())
}

// SetGlobal replaces the logger used by the package-level helpers.
// Loggers already derived with WithField keep their old output.
func SetGlobal(l *Logger) {
	if l != nil {
		globalLogger.Store(l)
	}
}

func Global() *Logger {
	return globalLogger.Load()
}

func Debug(msg string, keyvals ...interface{}) {
	Global().Debug(msg, keyvals...)
}

func Info(msg string, keyvals ...interface{}) {
	Global().Info(msg, keyvals...)
}

func Warn(msg string, keyvals ...interface{}) {
	Global().Warn(msg, keyvals...)
}

func Error(msg string, keyvals ...interface{}) {
	Global().Error(msg, keyvals...)
}

func Fatal(msg string, keyvals ...interface{}) {
	Global().Fatal(msg, keyvals...)
}

func Fatalf(format string, args ...interface{}) {
	Global().Fatalf(format, args...)
}

func WithFields(keyvals ...interface{}) *Logger {
	return Global().WithFields(keyvals...)
}

func WithField(key string, value interface{}) *Logger {
	return Global().WithField(key, value)
}

func SetLevel(level LogLevel) {
	Global().SetLevel(level)
}

func ParseLevel(level string) (LogLevel, error) {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return DEBUG, nil
	case "INFO":
		return INFO, nil
	case "WARN", "WARNING":
		return WARN, nil
	case "ERROR":
		return ERROR, nil
	default:
		return INFO, fmt.Errorf("unknown log level: %s", level)
	}
}

// OpenOutput resolves a configured output name to a writer. "stdout" and
// "stderr" map to the process streams; anything else is opened as a file in
// append mode. The returned closer is a no-op for the process streams.
func OpenOutput(output string) (io.Writer, func() error, error) {
	switch strings.ToLower(output) {
	case "", "stdout":
		return os.Stdout, func() error { return nil }, nil
	case "stderr":
		return os.Stderr, func() error { return nil }, nil
	}

	f, err := os.OpenFile(output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log output %s: %w", output, err)
	}
	return f, f.Close, nil
}
