// Package logging provides config-driven categorized file logging for
// langtour. Logs are written to .langtour/logs/ with one file per category.
// When debug mode is off (the default) every call is a silent no-op, so
// library code can log freely without a production cost.
package logging

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"gopkg.in/yaml.v3"
)

// Category names a log stream.
type Category string

const (
	CategoryBoot     Category = "boot"     // Startup and config load
	CategoryRegistry Category = "registry" // Section registration
	CategoryRunner   Category = "runner"   // Tour run lifecycle
	CategorySection  Category = "section"  // Per-section execution
	CategoryWatch    Category = "watch"    // Config watcher events
)

// fileConfig mirrors the logging block of langtour.yaml. It is re-parsed
// here instead of importing internal/config so that logging stays a leaf
// package every other package can import.
type fileConfig struct {
	Logging struct {
		DebugMode  bool            `yaml:"debug_mode"`
		Level      string          `yaml:"level"`
		Categories map[string]bool `yaml:"categories"`
	} `yaml:"logging"`
}

// Log levels, ordered.
const (
	LevelDebug = iota
	LevelInfo
	LevelWarn
	LevelError
)

// Logger writes to a single category's log file. The zero value (no file)
// is a no-op logger.
type Logger struct {
	category Category
	logger   *log.Logger
	file     *os.File
}

var (
	mu        sync.RWMutex
	loggers   = make(map[Category]*Logger)
	logsDir   string
	debugMode bool
	logLevel  = LevelInfo
	enabled   map[string]bool
)

// Initialize loads the logging block from the given config file and, when
// debug mode is on, prepares the log directory next to it. Call once at
// startup; before Initialize (or with debug mode off) all loggers are no-ops.
func Initialize(configPath string) error {
	if configPath == "" {
		return fmt.Errorf("config path required")
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // No config, logging stays off.
		}
		return err
	}
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("failed to parse logging config: %w", err)
	}

	mu.Lock()
	debugMode = fc.Logging.DebugMode
	enabled = fc.Logging.Categories
	switch fc.Logging.Level {
	case "debug":
		logLevel = LevelDebug
	case "warn", "warning":
		logLevel = LevelWarn
	case "error":
		logLevel = LevelError
	default:
		logLevel = LevelInfo
	}
	logsDir = filepath.Join(filepath.Dir(configPath), ".langtour", "logs")
	on := debugMode
	mu.Unlock()

	if !on {
		return nil
	}
	if err := os.MkdirAll(logsDir, 0o755); err != nil {
		return fmt.Errorf("failed to create logs directory: %w", err)
	}
	Get(CategoryBoot).Info("langtour logging initialized (level=%s)", fc.Logging.Level)
	return nil
}

func categoryEnabled(category Category) bool {
	mu.RLock()
	defer mu.RUnlock()
	if !debugMode || logsDir == "" {
		return false
	}
	if enabled == nil {
		return true
	}
	on, ok := enabled[string(category)]
	if !ok {
		return true
	}
	return on
}

// Get returns (or creates) the logger for a category. Disabled categories
// get a no-op logger.
func Get(category Category) *Logger {
	if !categoryEnabled(category) {
		return &Logger{category: category}
	}

	mu.RLock()
	l, ok := loggers[category]
	mu.RUnlock()
	if ok {
		return l
	}

	mu.Lock()
	defer mu.Unlock()
	if l, ok := loggers[category]; ok {
		return l
	}

	name := fmt.Sprintf("%s_%s.log", time.Now().Format("2006-01-02"), category)
	file, err := os.OpenFile(filepath.Join(logsDir, name), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[logging] warning: could not open log file for %s: %v\n", category, err)
		return &Logger{category: category}
	}

	l = &Logger{
		category: category,
		file:     file,
		logger:   log.New(file, "", log.Ldate|log.Ltime|log.Lmicroseconds),
	}
	loggers[category] = l
	return l
}

func (l *Logger) write(level int, tag, format string, args ...any) {
	if l.logger == nil {
		return
	}
	mu.RLock()
	min := logLevel
	mu.RUnlock()
	if level < min {
		return
	}
	l.logger.Printf("[%s] %s", tag, fmt.Sprintf(format, args...))
}

// Debug logs at debug level.
func (l *Logger) Debug(format string, args ...any) { l.write(LevelDebug, "DEBUG", format, args...) }

// Info logs at info level.
func (l *Logger) Info(format string, args ...any) { l.write(LevelInfo, "INFO", format, args...) }

// Warn logs at warn level.
func (l *Logger) Warn(format string, args ...any) { l.write(LevelWarn, "WARN", format, args...) }

// Error logs at error level.
func (l *Logger) Error(format string, args ...any) { l.write(LevelError, "ERROR", format, args...) }

// CloseAll closes every open log file. Call at shutdown.
func CloseAll() {
	mu.Lock()
	defer mu.Unlock()
	for _, l := range loggers {
		if l.file != nil {
			l.file.Close()
		}
	}
	loggers = make(map[Category]*Logger)
}

// Convenience helpers for the common categories.

// Runner logs to the runner category at info level.
func Runner(format string, args ...any) { Get(CategoryRunner).Info(format, args...) }

// RunnerDebug logs to the runner category at debug level.
func RunnerDebug(format string, args ...any) { Get(CategoryRunner).Debug(format, args...) }

// RegistryDebug logs to the registry category at debug level.
func RegistryDebug(format string, args ...any) { Get(CategoryRegistry).Debug(format, args...) }

// Watch logs to the watch category at info level.
func Watch(format string, args ...any) { Get(CategoryWatch).Info(format, args...) }
