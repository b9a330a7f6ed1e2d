package render

import (
	"errors"
	"fmt"
	"strings"

	"github.com/deixis/diaglog"
)

// Narratable renders a diagnostic as plain prose, one fact per line,
// with no styling or layout characters.
type Narratable struct{}

// NewNarratable returns a prose renderer.
func NewNarratable() *Narratable {
	return &Narratable{}
}

// Render walks the diagnostic surface and returns the report.
func (n *Narratable) Render(d diaglog.Diagnostic) string {
	var b strings.Builder
	n.render(&b, d)
	return b.String()
}

func (n *Narratable) render(b *strings.Builder, d diaglog.Diagnostic) {
	b.WriteString(d.Error())
	b.WriteString("\n")
	if severity, ok := d.Severity(); ok {
		fmt.Fprintf(b, "    Diagnostic severity: %s\n", severity)
	}
	for err := errors.Unwrap(d); err != nil; err = errors.Unwrap(err) {
		fmt.Fprintf(b, "    Caused by: %s\n", err.Error())
	}
	fmt.Fprintf(b, "    diagnostic code: %s\n", d.Code())
	if help := d.Help(); help != "" {
		fmt.Fprintf(b, "    help: %s\n", help)
	}
	if url := d.URL(); url != "" {
		fmt.Fprintf(b, "    For more information, see %s\n", url)
	}
	for _, related := range d.Related() {
		b.WriteString("\nRelated:\n")
		n.render(b, related)
	}
}
