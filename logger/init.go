package logger

import (
	"log/slog"
	"os"
	"sync/atomic"

	"github.com/fatih/color"
)

var initialized atomic.Bool

// Init registers the logger as the process-wide slog default sink.
//
// Returns true if the logger was installed, or false if a sink was
// already registered. Only the first call has any effect; subsequent
// calls are no-ops, not errors. Safe for concurrent use.
func (l *Logger) Init() bool {
	if initialized.Swap(true) {
		return false
	}
	if os.Getenv("COLORTERM") != "" {
		color.NoColor = false
	}
	slog.SetDefault(slog.New(NewHandler(l)))
	return true
}
