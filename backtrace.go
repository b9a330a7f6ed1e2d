package diaglog

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Backtrace is a stack trace captured when an Error is constructed. It
// describes the point of capture, so it is never serialized and never
// carried over by Clone.
type Backtrace struct {
	stack errors.StackTrace
}

type stackTracer interface {
	StackTrace() errors.StackTrace
}

// captureBacktrace records the current call stack, minus the capture
// frame itself. Returns nil if no stack could be captured.
func captureBacktrace() *Backtrace {
	st, ok := errors.New("backtrace").(stackTracer)
	if !ok {
		return nil
	}
	stack := st.StackTrace()
	if len(stack) > 1 {
		stack = stack[1:]
	}
	return &Backtrace{stack: stack}
}

func (b *Backtrace) String() string {
	return strings.TrimPrefix(fmt.Sprintf("%+v", b.stack), "\n")
}
