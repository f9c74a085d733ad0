// Package term detects terminal color support and renders the small set of
// ANSI styles the CLI uses.
package term

import (
	"os"
	"strings"
	"sync"

	"github.com/mattn/go-isatty"

	"github.com/funvibe/typeguard/internal/config"
)

// colorLevel caches the detected color support: 0=none, 1=basic(16),
// 256=256colors, 16777216=truecolor.
var (
	colorLevelOnce sync.Once
	colorLevelVal  int
	forced         string // config override: always / never / "" for auto
)

// SetMode applies the configured color mode (auto, always, never).
func SetMode(mode string) {
	switch mode {
	case config.ColorAlways, config.ColorNever:
		forced = mode
	default:
		forced = ""
	}
}

func detectColorLevel() int {
	// NO_COLOR convention: https://no-color.org/
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return 0
	}

	// Not a terminal
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return 0
	}

	term := os.Getenv("TERM")
	if term == "dumb" {
		return 0
	}

	colorTerm := os.Getenv("COLORTERM")
	if colorTerm == "truecolor" || colorTerm == "24bit" {
		return 16777216
	}

	if strings.Contains(term, "256color") {
		return 256
	}

	return 1
}

func level() int {
	switch forced {
	case config.ColorAlways:
		return 1
	case config.ColorNever:
		return 0
	}
	colorLevelOnce.Do(func() {
		colorLevelVal = detectColorLevel()
	})
	return colorLevelVal
}

func colorize(code, s string) string {
	if level() == 0 {
		return s
	}
	return "\x1b[" + code + "m" + s + "\x1b[0m"
}

// Red renders s in red when color is available.
func Red(s string) string { return colorize("31", s) }

// Green renders s in green when color is available.
func Green(s string) string { return colorize("32", s) }

// Yellow renders s in yellow when color is available.
func Yellow(s string) string { return colorize("33", s) }

// Bold renders s bold when color is available.
func Bold(s string) string { return colorize("1", s) }
