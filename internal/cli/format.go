package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

var (
	// fatih/color disables these automatically when stdout is not a terminal
	warningColor = color.New(color.FgYellow, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	infoColor    = color.New(color.FgCyan)
	headerColor  = color.New(color.FgBlue, color.Bold)
	boldColor    = color.New(color.Bold)
	dimColor     = color.New(color.FgHiBlack)

	addColor       = color.New(color.FgGreen)
	overwriteColor = color.New(color.FgYellow)
	failColor      = color.New(color.FgRed)
)

// ruleWidth is the width of the horizontal rules around the plan preview.
const ruleWidth = 60

// console prints user-facing output to a single writer.
type console struct {
	w io.Writer
}

func newConsole(w io.Writer) *console {
	return &console{w: w}
}

// Section prints a section header
func (c *console) Section(title string) {
	fmt.Fprintln(c.w)
	_, _ = headerColor.Fprintf(c.w, "▸ %s\n", title)
}

// Warning prints a warning message with a warning symbol
func (c *console) Warning(msg string) {
	_, _ = warningColor.Fprintf(c.w, "⚠ %s\n", msg)
}

// Error prints an error message
func (c *console) Error(msg string) {
	_, _ = errorColor.Fprintf(c.w, "✗ %s\n", msg)
}

// Info prints an informational message
func (c *console) Info(msg string) {
	fmt.Fprintln(c.w, msg)
}

// Dim prints a de-emphasized line
func (c *console) Dim(msg string) {
	_, _ = dimColor.Fprintln(c.w, msg)
}

// Rule prints a horizontal separator
func (c *console) Rule() {
	_, _ = dimColor.Fprintln(c.w, strings.Repeat("─", ruleWidth))
}

// Blank prints an empty line
func (c *console) Blank() {
	fmt.Fprintln(c.w)
}

// indentLines prefixes every line of s with prefix.
func indentLines(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = prefix + l
	}
	return strings.Join(lines, "\n")
}

// countLabel formats a count with the singular or plural noun.
func countLabel(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}
