// Command hand prints a single styled log line to stderr, which gives shell
// scripts the same output as programs using the hand library.
//
// # Usage
//
//	hand [flags] <severity> <template> [value ...]
//
// Severity is one of info, warn, error, success, or wait. The template uses
// {} positional placeholders filled by the remaining arguments:
//
//	hand info "Deploying {} to {}" app production
//	hand --scope critical error "Critical error: {}" "file not found"
//	hand -n wait "Continuing in {} seconds ... "
//
// # Flags
//
//	-s, --scope LABEL   dimmed scope label ahead of the severity mark
//	-m, --mark HEAD     custom head replacing the severity mark
//	-n, --no-newline    leave the line open for a follow-up emission
//
// Styling is always emitted, also when stderr is redirected to a file or
// pipe.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/nomoreqwerty/hand"
	"github.com/nomoreqwerty/hand/version"
)

var errUnknownSeverity = errors.New("unknown severity")

// options holds the flag values for a single invocation.
type options struct {
	scope     string
	mark      string
	noNewline bool
}

func severities() []string {
	return []string{"info", "warn", "error", "success", "wait"}
}

func main() {
	var opts options

	rootCmd := &cobra.Command{
		Use:   "hand [flags] <severity> <template> [value ...]",
		Short: "Print a styled log line to stderr",
		Long: `hand prints one styled, optionally scoped log line to stderr. The template
uses {} positional placeholders filled by the remaining arguments.`,
		Args:          cobra.MinimumNArgs(2),
		Version:       version.String(),
		SilenceErrors: true,
		SilenceUsage:  true,
		ValidArgsFunction: func(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
			if len(args) == 0 {
				return severities(), cobra.ShellCompDirectiveNoFileComp
			}

			return nil, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(_ *cobra.Command, args []string) error {
			return run(hand.Default, opts, args[0], args[1], args[2:])
		},
	}

	registerFlags(rootCmd.Flags(), &opts)

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func registerFlags(flags *pflag.FlagSet, opts *options) {
	flags.StringVarP(&opts.scope, "scope", "s", "",
		"scope label rendered ahead of the severity mark")
	flags.StringVarP(&opts.mark, "mark", "m", "",
		"custom head replacing the severity mark")
	flags.BoolVarP(&opts.noNewline, "no-newline", "n", false,
		"leave the line open for a follow-up emission")
}

func run(e *hand.Emitter, opts options, severity, template string, rawValues []string) error {
	head, err := headFor(severity)
	if err != nil {
		return err
	}

	if opts.mark != "" {
		head = hand.Mark(opts.mark)
	}

	values := make([]any, len(rawValues))
	for i, v := range rawValues {
		values[i] = v
	}

	switch {
	case opts.scope != "" && opts.noNewline:
		e.ScopeCustom(opts.scope, head, template, values...)
	case opts.scope != "":
		e.ScopeCustomln(opts.scope, head, template, values...)
	case opts.noNewline:
		e.Custom(head, template, values...)
	default:
		e.Customln(head, template, values...)
	}

	return nil
}

func headFor(severity string) (hand.Mark, error) {
	switch severity {
	case "info":
		return hand.MarkInfo, nil
	case "warn", "warning":
		return hand.MarkWarn, nil
	case "error":
		return hand.MarkError, nil
	case "success":
		return hand.MarkSuccess, nil
	case "wait":
		return hand.MarkWait, nil
	}

	return "", fmt.Errorf("%w: %q, expected one of %v", errUnknownSeverity, severity, severities())
}
