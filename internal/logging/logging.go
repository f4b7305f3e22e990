// Package logging builds the charmbracelet/log logger shared by the CLI and
// the headless runner.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"golang.org/x/term"
)

// Options configures a logger.
type Options struct {
	Level     string // debug, info, warn, error
	Format    string // auto, text, logfmt, json
	Prefix    string
	Timestamp bool
}

// New creates a logger writing to w. With the "auto" format, text output is
// used only when w is a terminal.
func New(w io.Writer, opts Options) (*log.Logger, error) {
	level := log.InfoLevel
	if opts.Level != "" {
		parsed, err := log.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return nil, fmt.Errorf("logging: %w", err)
		}
		level = parsed
	}

	formatter, err := formatterFor(w, opts.Format)
	if err != nil {
		return nil, err
	}

	logger := log.NewWithOptions(w, log.Options{
		Level:           level,
		Prefix:          opts.Prefix,
		ReportTimestamp: opts.Timestamp,
		Formatter:       formatter,
	})
	if formatter == log.TextFormatter {
		logger.SetStyles(Styles())
	}
	return logger, nil
}

func formatterFor(w io.Writer, format string) (log.Formatter, error) {
	switch strings.ToLower(format) {
	case "", "auto":
		if IsTerminal(w) {
			return log.TextFormatter, nil
		}
		return log.LogfmtFormatter, nil
	case "text":
		return log.TextFormatter, nil
	case "logfmt":
		return log.LogfmtFormatter, nil
	case "json":
		return log.JSONFormatter, nil
	default:
		return log.TextFormatter, fmt.Errorf("logging: unknown format %q", format)
	}
}

// IsTerminal reports whether w is a file attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd())) // #nosec G115 -- fd fits in int
}

// Styles returns the level badge styles used for text output.
func Styles() *log.Styles {
	styles := log.DefaultStyles()
	styles.Levels[log.DebugLevel] = badge("DEBUG", "63")
	styles.Levels[log.InfoLevel] = badge("INFO", "86")
	styles.Levels[log.WarnLevel] = badge("WARN", "192")
	styles.Levels[log.ErrorLevel] = badge("ERROR", "204")
	styles.Keys["status"] = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	styles.Values["status"] = lipgloss.NewStyle().Bold(true)
	return styles
}

func badge(label, color string) lipgloss.Style {
	return lipgloss.NewStyle().
		SetString(label).
		Padding(0, 1).
		Bold(true).
		Foreground(lipgloss.Color("0")).
		Background(lipgloss.Color(color))
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard)
}
