// Package obslog is the engine's leveled, category-filtered logger: a
// silent-by-default package logger that a caller turns on via
// REACTIVE_LOG_LEVEL / REACTIVE_LOG_CATEGORIES, or programmatically via
// SetLevel/EnableCategory, for tracing propagation without instrumenting
// every call site.
package obslog

import "fmt"

type Level int

const (
	LevelSilent Level = iota
	LevelError
	LevelWarn
	LevelInfo
	LevelDebug
	LevelTrace
)

var (
	currentLevel = LevelSilent
	categories   = make(map[string]bool)
)

func init() {
	initConfig()
}

func SetLevel(level Level) { currentLevel = level }

func EnableCategory(category string) { categories[category] = true }

func DisableCategory(category string) { delete(categories, category) }

func shouldLog(level Level, category string) bool {
	if currentLevel == LevelSilent {
		return false
	}
	if level > currentLevel {
		return false
	}
	if len(categories) > 0 && category != "" {
		return categories[category]
	}
	return true
}

func Error(category, format string, args ...any) {
	if shouldLog(LevelError, category) {
		fmt.Printf("[ERROR][%s] %s\n", category, fmt.Sprintf(format, args...))
	}
}

func Warn(category, format string, args ...any) {
	if shouldLog(LevelWarn, category) {
		fmt.Printf("[WARN][%s] %s\n", category, fmt.Sprintf(format, args...))
	}
}

func Info(category, format string, args ...any) {
	if shouldLog(LevelInfo, category) {
		fmt.Printf("[INFO][%s] %s\n", category, fmt.Sprintf(format, args...))
	}
}

func Debug(category, format string, args ...any) {
	if shouldLog(LevelDebug, category) {
		fmt.Printf("[DEBUG][%s] %s\n", category, fmt.Sprintf(format, args...))
	}
}

func Trace(category, format string, args ...any) {
	if shouldLog(LevelTrace, category) {
		fmt.Printf("[TRACE][%s] %s\n", category, fmt.Sprintf(format, args...))
	}
}
