// Package flog is a small leveled logger wrapping the standard library's
// log package, in the style of VictoriaMetrics' lib/logger: a package
// global level gate and a handful of Xxxf helpers. The core packages
// (nfa, regex, persist, search, lex) never log — only the cmd/ drivers
// do, per spec.md §5's single-threaded, non-suspending core.
package flog

import (
	"fmt"
	"log"
	"os"
	"strings"
)

// Level selects the minimum severity that gets written.
type Level int

const (
	LevelInfo Level = iota
	LevelError
	LevelFatal
)

func (l Level) String() string {
	switch l {
	case LevelInfo:
		return "INFO"
	case LevelError:
		return "ERROR"
	case LevelFatal:
		return "FATAL"
	default:
		return "UNKNOWN"
	}
}

var level = LevelInfo

// SetLevel sets the minimum level that will be logged. Name must be one
// of "info", "error", "fatal" (case-insensitive); an unrecognized name
// leaves the level unchanged.
func SetLevel(name string) {
	switch strings.ToLower(name) {
	case "info":
		level = LevelInfo
	case "error":
		level = LevelError
	case "fatal":
		level = LevelFatal
	}
}

var std = log.New(os.Stderr, "", log.LstdFlags)

func shouldLog(l Level) bool {
	return l >= level
}

// Infof logs an informational message.
func Infof(format string, args ...interface{}) {
	if shouldLog(LevelInfo) {
		std.Output(2, "INFO  "+fmt.Sprintf(format, args...))
	}
}

// Errorf logs an error message.
func Errorf(format string, args ...interface{}) {
	if shouldLog(LevelError) {
		std.Output(2, "ERROR "+fmt.Sprintf(format, args...))
	}
}

// Fatalf logs a fatal message and exits the process with status 1.
func Fatalf(format string, args ...interface{}) {
	std.Output(2, "FATAL "+fmt.Sprintf(format, args...))
	os.Exit(1)
}
