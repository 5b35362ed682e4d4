// Package diagnostic prints engine errors and parser warnings to a
// writer in one consistent line shape, labelled with the plugin
// life-cycle state active when the message was raised. It pulls in no
// logging library: the teacher's own CLI boundary logs with plain
// fmt.Fprintf to stderr, and nothing in the example pack reaches for a
// structured-logging dependency for this shape of tool.
package diagnostic

import (
	"fmt"
	"io"
	"os"

	"github.com/laminoid-pcb/sprintplugin/internal/errkind"
)

// StateFunc reports the caller's current life-cycle state as a label
// (e.g. "ParsingInput"), without diagnostic importing plugin/lifecycle
// directly — the core format engine never reads plugin state itself,
// only this logger's caller-supplied label does.
type StateFunc func() string

// Logger writes one line per diagnostic: "Kind error [state, origin]:
// message", or "Critical Kind error [state, origin]: message" when
// reported via Critical.
type Logger struct {
	w     io.Writer
	state StateFunc
}

// New builds a Logger writing to w, labelling each line with state().
// A nil state is treated as always reporting "unknown".
func New(w io.Writer, state StateFunc) *Logger {
	if state == nil {
		state = func() string { return "unknown" }
	}
	return &Logger{w: w, state: state}
}

// Stderr builds a Logger writing to os.Stderr, for the common case of a
// plugin binary that hasn't been handed an explicit writer.
func Stderr(state StateFunc) *Logger {
	return New(os.Stderr, state)
}

// Log writes a non-fatal diagnostic line for err.
func (l *Logger) Log(err error, origin fmt.Stringer) {
	l.write(false, err, origin)
}

// Critical writes a fatal diagnostic line for err, prefixed "Critical".
func (l *Logger) Critical(err error, origin fmt.Stringer) {
	l.write(true, err, origin)
}

func (l *Logger) write(critical bool, err error, origin fmt.Stringer) {
	kind := errkind.KindOf(err)
	prefix := ""
	if critical {
		prefix = "Critical "
	}
	originStr := "-"
	if origin != nil {
		originStr = origin.String()
	}
	fmt.Fprintf(l.w, "%s%s error [%s, %s]: %s\n", prefix, kind, l.state(), originStr, err)
}
