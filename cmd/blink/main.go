// Command blink is the CLI entry point for the blink language toolchain.
//
// Usage:
//
//	blink <file>                  Tokenize, parse, and run a source file
//	blink tokens <file> [--json]  Print the token stream
//	blink parse  <file>           Print the AST as JSON
//	blink run    <file> [--verbose]  Run a source file
//	blink repl                    Start an interactive session
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newRootCmd builds the root command. With no recognized subcommand and
// no file argument, it reproduces spec.md §6's literal bare-invocation
// contract — cobra's own usage/help output does not match that contract,
// so it is special-cased here rather than left to cobra's defaults.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "blink [file]",
		Short:         "blink is a tree-walking interpreter for the blink language",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.ArbitraryArgs,
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) < 1 {
				fmt.Print("Usage:\nblink <filename>\n")
				os.Exit(1)
			}
			runFile(args[0], false)
		},
	}

	root.AddCommand(newTokensCmd(), newParseCmd(), newRunCmd(), newReplCmd())
	return root
}
