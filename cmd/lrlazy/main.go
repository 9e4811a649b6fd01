/*
Lrlazy exercises the lazy LR(1) driver and offline LALR(1) verifier against a
small built-in arithmetic grammar.

Usage:

	lrlazy [flags] <subcommand>

The subcommands are:

	verify
		Build the sample grammar, run the offline conflict verifier over it,
		and print every (state, lookahead) conflict found along with how the
		shared precedence policy resolved it.

	repl
		Start an interactive readline session. Each line is tokenized on
		whitespace into name[:value] tokens and fed through the lazy driver
		as one parse, printing a shift/reduce trace as it goes.

	trace FILE
		Parse a fixed demonstration input, record every shift/reduce event,
		and write the event log to FILE in binary form.

	replay FILE
		Read an event log previously written by trace and print it back out.

The flags are:

	-p, --precedence FILE
		Load a TOML file of terminal precedence overrides and apply them on
		top of the sample grammar's built-in precedence table.
*/
package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
)

const (
	// ExitSuccess indicates a successful program execution.
	ExitSuccess = iota

	// ExitUsageError indicates the subcommand was missing or unrecognized.
	ExitUsageError

	// ExitRunError indicates the chosen subcommand failed while running.
	ExitRunError
)

var (
	returnCode int     = ExitSuccess
	precedence *string = pflag.StringP("precedence", "p", "", "TOML file of terminal precedence overrides to apply")
)

var defaultStderr = os.Stderr

func main() {
	defer func() {
		if panicErr := recover(); panicErr != nil {
			panic(fmt.Sprintf("unrecoverable panic occurred: %v", panicErr))
		} else {
			os.Exit(returnCode)
		}
	}()

	pflag.Parse()

	args := pflag.Args()
	if len(args) < 1 {
		fmt.Fprintln(defaultStderr, "ERROR: a subcommand is required (verify, repl, trace, replay)")
		returnCode = ExitUsageError
		return
	}

	var status int
	switch args[0] {
	case "verify":
		status = runVerify(*precedence)
	case "repl":
		status = runREPL(*precedence)
	case "trace":
		if len(args) < 2 {
			fmt.Fprintln(defaultStderr, "ERROR: trace requires a FILE argument")
			returnCode = ExitUsageError
			return
		}
		status = runTrace(args[1])
	case "replay":
		if len(args) < 2 {
			fmt.Fprintln(defaultStderr, "ERROR: replay requires a FILE argument")
			returnCode = ExitUsageError
			return
		}
		status = runReplay(args[1])
	default:
		fmt.Fprintf(defaultStderr, "ERROR: unknown subcommand %q\n", args[0])
		returnCode = ExitUsageError
		return
	}

	if status != 0 {
		returnCode = ExitRunError
	}
}
