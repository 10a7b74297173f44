package main

import (
	"fmt"
	"io"
	"strings"
)

// ANSI color codes for terminal output
const (
	colorYellow = "\033[33m"
	colorRed    = "\033[31m"
	colorReset  = "\033[0m"
)

// Log levels with symbols; widths tuned so columns align.
const (
	LogInfo    = "ℹ  info   "
	LogWarning = "⚠  warning"
	LogError   = "✖  error  "
	LogSuccess = "✔  success"
)

// Logger components
const (
	ComponentHTTPServer = "HTTP SERVER"
	ComponentRouter     = "ROUTER"
	ComponentStore      = "STORE"
)

// Logger writes component-tagged lines to out.
type Logger struct {
	out    io.Writer
	indent string
	color  bool
}

// NewLogger creates a Logger writing to out. Color codes are only emitted
// when color is enabled with WithColor.
func NewLogger(out io.Writer) *Logger {
	return &Logger{out: out, indent: "    "}
}

// WithColor returns a copy of the logger that colors warnings and errors.
func (l *Logger) WithColor(enabled bool) *Logger {
	cp := *l
	cp.color = enabled
	return &cp
}

// RequestReceived prints the unindented first line of a request block.
func (l *Logger) RequestReceived(method, path string) {
	fmt.Fprintf(l.out, "[%s] %s %s %s   %s\n",
		ComponentHTTPServer,
		strings.ToLower(method),
		path,
		LogInfo,
		"Request received",
	)
}

func (l *Logger) log(component, level, message string) {
	var colorCode string
	if l.color {
		switch level {
		case LogWarning:
			colorCode = colorYellow
		case LogError:
			colorCode = colorRed
		}
	}

	if colorCode != "" {
		fmt.Fprintf(l.out, "%s[%s] %s%s%s   %s\n", l.indent, component, colorCode, level, colorReset, message)
	} else {
		fmt.Fprintf(l.out, "%s[%s] %s   %s\n", l.indent, component, level, message)
	}
}

// Info logs an info message.
func (l *Logger) Info(component, message string) {
	l.log(component, LogInfo, message)
}

// Warning logs a warning message.
func (l *Logger) Warning(component, message string) {
	l.log(component, LogWarning, message)
}

// Error logs an error message.
func (l *Logger) Error(component, message string) {
	l.log(component, LogError, message)
}

// Success logs a success message.
func (l *Logger) Success(component, message string) {
	l.log(component, LogSuccess, message)
}

// Responded closes a request block with the status that was sent.
func (l *Logger) Responded(statusCode int) {
	message := fmt.Sprintf("> Responding with \"%d\"", statusCode)
	switch {
	case statusCode >= 500:
		l.Error(ComponentHTTPServer, message)
	case statusCode >= 400:
		l.Warning(ComponentHTTPServer, message)
	default:
		l.Info(ComponentHTTPServer, message)
	}
}
