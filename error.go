package diaglog

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/fatih/color"
)

var boldText = color.New(color.Bold)

// Error is a serializable and log friendly failure description.
type Error struct {
	// Action is a concise description of the action that failed.
	//
	// Typically starts with a verb.
	//
	// Will be displayed as:
	//	Failed to {action}
	//
	// Example: `deserialize object`
	Action string `json:"action" yaml:"action"`

	// Message is a concise description of the underlying cause.
	//
	// Displayed after the domain.
	//
	// Example: `Object is not valid.`
	Message string `json:"message" yaml:"message"`

	// Domain is a concise description of the domain in which the
	// failure occurred.
	//
	// Will be displayed as:
	//	A {domain} error occurred
	//
	// Example: `serialization`
	Domain string `json:"domain,omitempty" yaml:"domain,omitempty"`

	// StatusCode is an HTTP-shaped status code.
	//
	// Will be displayed as:
	//	A {status_code} error occurred
	//
	// Example: `404`
	StatusCode uint16 `json:"status_code,omitempty" yaml:"status_code,omitempty"`

	// Backtrace records the stack at the point of construction. It is
	// never serialized.
	Backtrace *Backtrace `json:"-" yaml:"-"`
}

// NewError returns an Error with the given action and message and a
// backtrace captured at the call site when available.
func NewError(action, message string) *Error {
	return &Error{
		Action:    action,
		Message:   message,
		Backtrace: captureBacktrace(),
	}
}

// lines formats the error as separate display lines.
func (e *Error) lines() []string {
	lines := []string{fmt.Sprintf("%s to %s", boldText.Sprint("Failed"), e.Action)}
	if e.Domain != "" {
		lines = append(lines, fmt.Sprintf("A %s error occurred", e.Domain))
	}
	if e.StatusCode != 0 {
		lines = append(lines, fmt.Sprintf("A %d error occurred", e.StatusCode))
	}
	return append(lines, e.Message)
}

// Display returns the multiline string representation of the error.
func (e *Error) Display() string {
	return strings.Join(e.lines(), "\n")
}

func (e *Error) Error() string {
	return e.Display()
}

// Log writes each display line at Error severity, then the backtrace,
// if any, at Trace severity, through the registered slog sink.
func (e *Error) Log() {
	for _, line := range e.lines() {
		slog.Error(line)
	}
	if e.Backtrace != nil {
		slog.Log(context.Background(), LevelTrace, "Backtrace:\n"+e.Backtrace.String())
	}
}

// Clone returns a copy of the error without its backtrace. A stack
// trace represents the point of capture and is not meaningful to
// duplicate.
func (e *Error) Clone() *Error {
	return &Error{
		Action:     e.Action,
		Message:    e.Message,
		Domain:     e.Domain,
		StatusCode: e.StatusCode,
	}
}
