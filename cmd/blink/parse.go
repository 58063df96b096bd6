package main

import (
	"os"

	"blink-lang/internal/ast"
	"blink-lang/internal/lexer"
	"blink-lang/internal/parser"
	"blink-lang/internal/scope"

	"github.com/spf13/cobra"
)

func newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a source file and print its AST as JSON",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			source := readFile(args[0])

			lx := lexer.New(source, args[0])
			p := parser.New(lx, scope.New())
			root, diags := p.Parse()

			printJSON(map[string]interface{}{
				"ast":         ast.NodeToMap(root),
				"diagnostics": diagsToSlice(diags),
			})

			if len(diags) > 0 {
				os.Exit(1)
			}
		},
	}
}
