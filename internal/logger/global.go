package logger

import (
	"fmt"
	"strings"
	"sync"
)

var (
	globalMu     sync.RWMutex
	globalLogger = NewDefault()
)

// ParseLevel maps a level name (case-insensitive) to a Level
func ParseLevel(level string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return DEBUG, nil
	case "INFO", "":
		return INFO, nil
	case "WARN", "WARNING":
		return WARN, nil
	case "ERROR":
		return ERROR, nil
	case "FATAL":
		return FATAL, nil
	default:
		return INFO, fmt.Errorf("unknown log level %q", level)
	}
}

// ParseFormat maps "json" or "text" to a Format
func ParseFormat(format string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		return JSONFormat, nil
	case "text", "":
		return TextFormat, nil
	default:
		return TextFormat, fmt.Errorf("unknown log format %q", format)
	}
}

// Configure applies level and format names to the global logger
func Configure(level, format string) error {
	lvl, err := ParseLevel(level)
	if err != nil {
		return err
	}
	f, err := ParseFormat(format)
	if err != nil {
		return err
	}
	l := Global()
	l.SetLevel(lvl)
	l.SetFormat(f)
	return nil
}

// Global returns the process-wide logger
func Global() *Logger {
	globalMu.RLock()
	defer globalMu.RUnlock()
	return globalLogger
}

// SetGlobal replaces the process-wide logger
func SetGlobal(l *Logger) {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalLogger = l
}

// Component returns a child of the global logger for one component
func Component(name string) *Logger {
	return Global().WithComponent(name)
}

// Info logs an info message on the global logger
func Info(message string, fields ...Fields) {
	Global().log(INFO, message, firstFields(fields), nil)
}

// Warn logs a warning on the global logger
func Warn(message string, fields ...Fields) {
	Global().log(WARN, message, firstFields(fields), nil)
}

// Error logs an error on the global logger
func Error(message string, err error, fields ...Fields) {
	Global().log(ERROR, message, firstFields(fields), err)
}
