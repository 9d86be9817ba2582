// Package hand provides leveled, optionally scoped console output for
// command-line tools.
//
// Each message is a single styled line (or line fragment) written to the
// error stream: a colored severity mark, an optional dimmed scope label, and
// a message body rendered from a positional template.
//
// Top-level functions write to [os.Stderr] via [Default]:
//
//	hand.Infoln("downloading {} packages", 42)    // ℹ️ downloading 42 packages
//	hand.ScopeWarnln("cache", "entry {} is stale", key)
//	hand.Wait("Continuing in {} seconds ... ", 3) // no trailing newline
//	hand.Successln("done")                        // continues the same line
//
// Use [New] to bind an [Emitter] to another stream, for example in tests.
//
// # Templates
//
// Templates use {} positional placeholders. The Nth placeholder consumes the
// Nth value, rendered with [fmt.Sprint]. Doubled braces ({{ and }}) emit
// literal braces. Supplying fewer values than placeholders is a bug at the
// call site and panics; surplus values are ignored.
//
// # Styling
//
// Styling is unconditional. The package never checks whether the stream is a
// terminal and consults no environment variables (NO_COLOR included); output
// bytes depend only on the arguments, so identical calls emit identical
// bytes.
//
// # Errors
//
// Emission has no error path. A console logger has nowhere useful to report
// its own stream failing, so write errors are discarded.
//
// No interleaving guarantee is made when several goroutines share a stream;
// serialize externally if atomic lines matter.
package hand
