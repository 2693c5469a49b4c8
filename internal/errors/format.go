package errors

import (
	stderrors "errors"
	"fmt"
	"io"
	"strings"
)

// ANSI color codes for terminal output.
const (
	colorReset = "\033[0m"
	colorRed   = "\033[31m"
	colorGray  = "\033[90m"
	colorBold  = "\033[1m"
)

// colorEnabled controls whether ANSI colors are used.
var colorEnabled = true

// DisableColors disables ANSI color output.
func DisableColors() {
	colorEnabled = false
}

// EnableColors enables ANSI color output.
func EnableColors() {
	colorEnabled = true
}

func color(code, text string) string {
	if !colorEnabled {
		return text
	}
	return code + text + colorReset
}

func red(text string) string  { return color(colorRed, text) }
func gray(text string) string { return color(colorGray, text) }
func bold(text string) string { return color(colorBold, text) }

// Format returns a multi-line message for terminal display.
func (e *Error) Format() string {
	var b strings.Builder

	b.WriteString(red(bold("ERROR ")))
	if e.Code != "" {
		b.WriteString(bold(e.Code + ": "))
	}
	b.WriteString(e.Message)
	b.WriteString("\n")

	if e.Op != "" || e.Node != 0 {
		b.WriteString("  ")
		if e.Op != "" {
			b.WriteString(gray("op=" + e.Op + " "))
		}
		if e.Node != 0 {
			b.WriteString(gray(fmt.Sprintf("node=%d", e.Node)))
		}
		b.WriteString("\n")
	}
	if e.Detail != "" {
		b.WriteString("\n  " + e.Detail + "\n")
	}
	if e.Wrapped != nil {
		b.WriteString("\n  Caused by: " + e.Wrapped.Error() + "\n")
	}
	return b.String()
}

// FormatCompact returns a single-line message.
func (e *Error) FormatCompact() string {
	return e.Error()
}

// PrintError writes err to w, using the structured format when possible.
func PrintError(w io.Writer, err error) {
	var e *Error
	if stderrors.As(err, &e) {
		fmt.Fprint(w, e.Format())
		return
	}
	fmt.Fprintf(w, "%s %s\n", red(bold("ERROR")), err)
}
