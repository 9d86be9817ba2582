package hand

// The top-level functions mirror the [Emitter] methods on [Default], so
// programs can log to stderr without holding an emitter.

// Custom emits a stderr message with an arbitrary head and no trailing
// newline.
func Custom(head Mark, template string, values ...any) {
	Default.Custom(head, template, values...)
}

// Customln emits a newline-terminated stderr message with an arbitrary head.
func Customln(head Mark, template string, values ...any) {
	Default.Customln(head, template, values...)
}

// ScopeCustom emits a scoped stderr message with an arbitrary head and no
// trailing newline.
func ScopeCustom(scope string, head Mark, template string, values ...any) {
	Default.ScopeCustom(scope, head, template, values...)
}

// ScopeCustomln emits a newline-terminated scoped stderr message with an
// arbitrary head.
func ScopeCustomln(scope string, head Mark, template string, values ...any) {
	Default.ScopeCustomln(scope, head, template, values...)
}

// Info emits an info message to stderr with no trailing newline.
func Info(template string, values ...any) {
	Default.Info(template, values...)
}

// Infoln emits a newline-terminated info message to stderr.
func Infoln(template string, values ...any) {
	Default.Infoln(template, values...)
}

// ScopeInfo emits a scoped info message to stderr with no trailing newline.
func ScopeInfo(scope, template string, values ...any) {
	Default.ScopeInfo(scope, template, values...)
}

// ScopeInfoln emits a newline-terminated scoped info message to stderr.
func ScopeInfoln(scope, template string, values ...any) {
	Default.ScopeInfoln(scope, template, values...)
}

// Warn emits a warning to stderr with no trailing newline.
func Warn(template string, values ...any) {
	Default.Warn(template, values...)
}

// Warnln emits a newline-terminated warning to stderr.
func Warnln(template string, values ...any) {
	Default.Warnln(template, values...)
}

// ScopeWarn emits a scoped warning to stderr with no trailing newline.
func ScopeWarn(scope, template string, values ...any) {
	Default.ScopeWarn(scope, template, values...)
}

// ScopeWarnln emits a newline-terminated scoped warning to stderr.
func ScopeWarnln(scope, template string, values ...any) {
	Default.ScopeWarnln(scope, template, values...)
}

// Error emits an error message to stderr with no trailing newline.
func Error(template string, values ...any) {
	Default.Error(template, values...)
}

// Errorln emits a newline-terminated error message to stderr.
func Errorln(template string, values ...any) {
	Default.Errorln(template, values...)
}

// ScopeError emits a scoped error message to stderr with no trailing
// newline.
func ScopeError(scope, template string, values ...any) {
	Default.ScopeError(scope, template, values...)
}

// ScopeErrorln emits a newline-terminated scoped error message to stderr.
func ScopeErrorln(scope, template string, values ...any) {
	Default.ScopeErrorln(scope, template, values...)
}

// Success emits a success message to stderr with no trailing newline.
func Success(template string, values ...any) {
	Default.Success(template, values...)
}

// Successln emits a newline-terminated success message to stderr.
func Successln(template string, values ...any) {
	Default.Successln(template, values...)
}

// ScopeSuccess emits a scoped success message to stderr with no trailing
// newline.
func ScopeSuccess(scope, template string, values ...any) {
	Default.ScopeSuccess(scope, template, values...)
}

// ScopeSuccessln emits a newline-terminated scoped success message to
// stderr.
func ScopeSuccessln(scope, template string, values ...any) {
	Default.ScopeSuccessln(scope, template, values...)
}

// Wait emits a wait message to stderr with no trailing newline.
func Wait(template string, values ...any) {
	Default.Wait(template, values...)
}

// Waitln emits a newline-terminated wait message to stderr.
func Waitln(template string, values ...any) {
	Default.Waitln(template, values...)
}

// ScopeWait emits a scoped wait message to stderr with no trailing newline.
func ScopeWait(scope, template string, values ...any) {
	Default.ScopeWait(scope, template, values...)
}

// ScopeWaitln emits a newline-terminated scoped wait message to stderr.
func ScopeWaitln(scope, template string, values ...any) {
	Default.ScopeWaitln(scope, template, values...)
}
