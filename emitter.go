package hand

import (
	"io"
	"os"
	"strings"
)

// An Emitter renders styled messages to a single output stream.
//
// Create instances with [New]; the zero value has no stream and emits
// nothing. An Emitter holds no state between calls and never closes its
// stream. Methods may be called from multiple goroutines, but simultaneous
// emissions can interleave their bytes on the shared stream.
type Emitter struct {
	w io.Writer
}

// New returns an [Emitter] that writes to w.
func New(w io.Writer) *Emitter {
	return &Emitter{w: w}
}

// Default is the [Emitter] behind the package-level functions. It writes to
// [os.Stderr]. Tests may swap it for an Emitter bound to a buffer.
var Default = New(os.Stderr)

// emit renders one message and writes it to the stream in a single call.
// Write errors are dropped; see the package documentation.
func (e *Emitter) emit(scope string, head Mark, template string, values []any, newline bool) {
	if e.w == nil {
		return
	}

	var sb strings.Builder

	if scope != "" {
		sb.WriteString("\x1b[2m[")
		sb.WriteString(scope)
		sb.WriteString("]\x1b[0m ")
	}

	sb.WriteString(string(head))
	sb.WriteByte(' ')
	sb.WriteString(render(template, values))

	if newline {
		sb.WriteByte('\n')
	}

	_, _ = io.WriteString(e.w, sb.String())
}

// Custom emits a message with an arbitrary head and no trailing newline.
//
//	e.Custom(hand.Mark("🌐"), "fetching {} ... ", url)
func (e *Emitter) Custom(head Mark, template string, values ...any) {
	e.emit("", head, template, values, false)
}

// Customln emits a newline-terminated message with an arbitrary head.
func (e *Emitter) Customln(head Mark, template string, values ...any) {
	e.emit("", head, template, values, true)
}

// ScopeCustom emits a scoped message with an arbitrary head and no trailing
// newline. The scope label is rendered dimmed in square brackets ahead of
// the head.
func (e *Emitter) ScopeCustom(scope string, head Mark, template string, values ...any) {
	e.emit(scope, head, template, values, false)
}

// ScopeCustomln emits a newline-terminated scoped message with an arbitrary
// head.
func (e *Emitter) ScopeCustomln(scope string, head Mark, template string, values ...any) {
	e.emit(scope, head, template, values, true)
}

// Info emits an info message with no trailing newline.
func (e *Emitter) Info(template string, values ...any) {
	e.emit("", MarkInfo, template, values, false)
}

// Infoln emits a newline-terminated info message.
func (e *Emitter) Infoln(template string, values ...any) {
	e.emit("", MarkInfo, template, values, true)
}

// ScopeInfo emits a scoped info message with no trailing newline.
func (e *Emitter) ScopeInfo(scope, template string, values ...any) {
	e.emit(scope, MarkInfo, template, values, false)
}

// ScopeInfoln emits a newline-terminated scoped info message.
func (e *Emitter) ScopeInfoln(scope, template string, values ...any) {
	e.emit(scope, MarkInfo, template, values, true)
}

// Warn emits a warning with no trailing newline.
func (e *Emitter) Warn(template string, values ...any) {
	e.emit("", MarkWarn, template, values, false)
}

// Warnln emits a newline-terminated warning.
func (e *Emitter) Warnln(template string, values ...any) {
	e.emit("", MarkWarn, template, values, true)
}

// ScopeWarn emits a scoped warning with no trailing newline.
func (e *Emitter) ScopeWarn(scope, template string, values ...any) {
	e.emit(scope, MarkWarn, template, values, false)
}

// ScopeWarnln emits a newline-terminated scoped warning.
func (e *Emitter) ScopeWarnln(scope, template string, values ...any) {
	e.emit(scope, MarkWarn, template, values, true)
}

// Error emits an error message with no trailing newline.
func (e *Emitter) Error(template string, values ...any) {
	e.emit("", MarkError, template, values, false)
}

// Errorln emits a newline-terminated error message.
func (e *Emitter) Errorln(template string, values ...any) {
	e.emit("", MarkError, template, values, true)
}

// ScopeError emits a scoped error message with no trailing newline.
func (e *Emitter) ScopeError(scope, template string, values ...any) {
	e.emit(scope, MarkError, template, values, false)
}

// ScopeErrorln emits a newline-terminated scoped error message.
func (e *Emitter) ScopeErrorln(scope, template string, values ...any) {
	e.emit(scope, MarkError, template, values, true)
}

// Success emits a success message with no trailing newline.
func (e *Emitter) Success(template string, values ...any) {
	e.emit("", MarkSuccess, template, values, false)
}

// Successln emits a newline-terminated success message.
func (e *Emitter) Successln(template string, values ...any) {
	e.emit("", MarkSuccess, template, values, true)
}

// ScopeSuccess emits a scoped success message with no trailing newline.
func (e *Emitter) ScopeSuccess(scope, template string, values ...any) {
	e.emit(scope, MarkSuccess, template, values, false)
}

// ScopeSuccessln emits a newline-terminated scoped success message.
func (e *Emitter) ScopeSuccessln(scope, template string, values ...any) {
	e.emit(scope, MarkSuccess, template, values, true)
}

// Wait emits a wait message with no trailing newline. Useful ahead of a
// long-running step, finished later on the same line by an unscoped
// [Emitter.Successln] or [Emitter.Errorln].
func (e *Emitter) Wait(template string, values ...any) {
	e.emit("", MarkWait, template, values, false)
}

// Waitln emits a newline-terminated wait message.
func (e *Emitter) Waitln(template string, values ...any) {
	e.emit("", MarkWait, template, values, true)
}

// ScopeWait emits a scoped wait message with no trailing newline.
func (e *Emitter) ScopeWait(scope, template string, values ...any) {
	e.emit(scope, MarkWait, template, values, false)
}

// ScopeWaitln emits a newline-terminated scoped wait message.
func (e *Emitter) ScopeWaitln(scope, template string, values ...any) {
	e.emit(scope, MarkWait, template, values, true)
}
