package render

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/deixis/diaglog"
)

// Graphical renders a boxed, optionally colorized report from a
// diagnostic, its cause chain, and its related diagnostics.
type Graphical struct {
	colors bool
}

// NewGraphical returns a renderer following the global color setting.
func NewGraphical() *Graphical {
	return &Graphical{colors: !color.NoColor}
}

// WithColor forces color output on or off.
func (g *Graphical) WithColor(enabled bool) *Graphical {
	g.colors = enabled
	return g
}

// Render walks the diagnostic surface and returns the report.
func (g *Graphical) Render(d diaglog.Diagnostic) string {
	var b strings.Builder
	g.render(&b, d, "")
	return b.String()
}

func (g *Graphical) render(b *strings.Builder, d diaglog.Diagnostic, indent string) {
	fmt.Fprintf(b, "%s%s\n\n", indent, g.paint(color.New(color.Faint), d.Code()))

	lines := strings.Split(d.Error(), "\n")
	fmt.Fprintf(b, "%s  %s %s\n", indent, g.glyph(d), lines[0])
	for _, line := range lines[1:] {
		fmt.Fprintf(b, "%s    %s\n", indent, line)
	}

	causes := causeChain(d)
	for i, cause := range causes {
		connector, pad := "├─▶", "│   "
		if i == len(causes)-1 {
			connector, pad = "╰─▶", "    "
		}
		causeLines := strings.Split(cause, "\n")
		fmt.Fprintf(b, "%s  %s %s\n", indent, connector, causeLines[0])
		for _, line := range causeLines[1:] {
			fmt.Fprintf(b, "%s  %s%s\n", indent, pad, line)
		}
	}

	if help := d.Help(); help != "" {
		fmt.Fprintf(b, "%s  help: %s\n", indent, help)
	}
	if url := d.URL(); url != "" {
		fmt.Fprintf(b, "%s  For more information: %s\n", indent, g.paint(color.New(color.FgCyan), url))
	}

	for _, related := range d.Related() {
		b.WriteString("\n")
		g.render(b, related, indent+"    ")
	}
}

// glyph returns the severity marker: × for errors, ⚠ for warnings, ☞
// for anything quieter. An unset severity renders as an error.
func (g *Graphical) glyph(d diaglog.Diagnostic) string {
	severity, ok := d.Severity()
	if !ok {
		severity = diaglog.SeverityError
	}
	switch {
	case severity <= diaglog.SeverityError:
		return g.paint(color.New(color.FgRed), "×")
	case severity == diaglog.SeverityWarn:
		return g.paint(color.New(color.FgYellow), "⚠")
	}
	return g.paint(color.New(color.FgCyan), "☞")
}

func (g *Graphical) paint(c *color.Color, s string) string {
	if !g.colors {
		return s
	}
	c.EnableColor()
	return c.Sprint(s)
}

// causeChain walks the standard error chain below the diagnostic, in
// order from immediate source to root cause.
func causeChain(d diaglog.Diagnostic) []string {
	var chain []string
	for err := errors.Unwrap(d); err != nil; err = errors.Unwrap(err) {
		chain = append(chain, err.Error())
	}
	return chain
}
