package logger

import (
	"github.com/fatih/color"

	"github.com/deixis/diaglog"
)

// Gray shades used by the sink. fatih/color has no gray attribute, so
// they are built from RGB values.
var (
	grayText     = color.RGB(168, 168, 168)
	darkGrayText = color.RGB(112, 112, 112)
	dimText      = color.New(color.Faint)

	errorText = color.New(color.FgRed)
	warnText  = color.New(color.FgYellow)
	infoText  = color.New(color.FgCyan)
)

// Gray applies a medium gray color when color output is on.
func Gray(s string) string {
	return grayText.Sprint(s)
}

// DarkGray applies a dark gray color when color output is on.
func DarkGray(s string) string {
	return darkGrayText.Sprint(s)
}

// severityText returns the color used for a severity's line prefix.
func severityText(severity diaglog.Severity) *color.Color {
	switch severity {
	case diaglog.SeverityError:
		return errorText
	case diaglog.SeverityWarn:
		return warnText
	case diaglog.SeverityInfo:
		return infoText
	case diaglog.SeverityDebug:
		return grayText
	}
	return darkGrayText
}
