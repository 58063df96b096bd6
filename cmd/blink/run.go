package main

import (
	"fmt"
	"os"

	"blink-lang/internal/interp"
	"blink-lang/internal/lexer"
	"blink-lang/internal/parser"
	"blink-lang/internal/scope"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
)

var runVerbose bool

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <file>",
		Short: "Tokenize, parse, and evaluate a source file",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			runFile(args[0], runVerbose)
		},
	}
	cmd.Flags().BoolVar(&runVerbose, "verbose", false, "trace evaluator steps to stderr")
	return cmd
}

// runFile executes the spec's primary contract: tokenize, parse,
// evaluate, exit 0 on success, exit 1 on any diagnostic. readFile already
// exits 2 on an unreadable path.
func runFile(filename string, verbose bool) {
	source := readFile(filename)

	logger := hclog.NewNullLogger()
	if verbose {
		logger = hclog.New(&hclog.LoggerOptions{
			Name:  "blink",
			Level: hclog.Trace,
		})
	}

	lx := lexer.New(source, filename)
	sc := scope.New()
	p := parser.New(lx, sc)
	root, diags := p.Parse()
	if len(diags) > 0 {
		printDiagsText(diags)
		os.Exit(1)
	}

	i := interp.New(os.Stdout, logger)
	if err := i.Run(root); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
