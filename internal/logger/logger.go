// Package logger is a small tagged console logger. Every line is
// "[tag] message" with a colored prefix when stdout is a terminal
// (github.com/mattn/go-isatty), and plain text otherwise so logs stay
// greppable in a container. This mirrors the teacher's Info/Success/
// Warn/Error/Banner/Section/Stats surface; ambient concerns like this
// one are carried regardless of spec.md's non-goals (SPEC_FULL.md §2).
package logger

import (
	"fmt"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"
)

const (
	colorReset  = "\033[0m"
	colorBlue   = "\033[34m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorRed    = "\033[31m"
	colorBold   = "\033[1m"
)

var colorEnabled = isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())

func colorize(color, s string) string {
	if !colorEnabled {
		return s
	}
	return color + s + colorReset
}

func line(color, level, tag, msg string) {
	prefix := colorize(color, fmt.Sprintf("[%s]", level))
	fmt.Printf("%s [%s] %s\n", prefix, tag, msg)
}

// Info logs a neutral progress line.
func Info(tag, msg string) { line(colorBlue, "INFO", tag, msg) }

// Success logs a completed-step line.
func Success(tag, msg string) { line(colorGreen, "OK", tag, msg) }

// Warn logs a recoverable condition (e.g. a day fell back to the
// greedy assignment).
func Warn(tag, msg string) { line(colorYellow, "WARN", tag, msg) }

// Error logs an unrecoverable condition.
func Error(tag, msg string) { line(colorRed, "ERROR", tag, msg) }

// Section prints a banner-less section header, used to separate
// phases of a long-running run in the console.
func Section(title string) {
	bar := strings.Repeat("-", len(title)+4)
	fmt.Println(colorize(colorBold, bar))
	fmt.Println(colorize(colorBold, fmt.Sprintf("  %s", title)))
	fmt.Println(colorize(colorBold, bar))
}

// Stats prints a single key/value telemetry line, formatting numeric
// values with thousands separators for readability.
func Stats(key string, value any) {
	switch v := value.(type) {
	case int:
		fmt.Printf("  %-24s %s\n", key+":", humanize.Comma(int64(v)))
	case int64:
		fmt.Printf("  %-24s %s\n", key+":", humanize.Comma(v))
	case float64:
		fmt.Printf("  %-24s %s\n", key+":", humanize.FormatFloat("#,###.##", v))
	default:
		fmt.Printf("  %-24s %v\n", key+":", v)
	}
}

// Banner prints the startup banner.
func Banner(version string) {
	fmt.Println(colorize(colorBold, "drove-planner"))
	if version != "" {
		fmt.Println(colorize(colorBlue, "version "+version))
	}
}

// Server logs the bound address, matching the teacher's dedicated
// startup line for the HTTP listener.
func Server(addr string) {
	Info("Server", fmt.Sprintf("listening on %s", addr))
}
