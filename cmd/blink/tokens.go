package main

import (
	"os"

	"blink-lang/internal/lexer"

	"github.com/spf13/cobra"
)

var tokensJSON bool

func newTokensCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokens <file>",
		Short: "Tokenize a source file and print its tokens",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			source := readFile(args[0])
			lx := lexer.New(source, args[0])
			toks, diags := lx.Tokenize()

			if tokensJSON {
				printTokensJSON(toks, diags)
			} else {
				printTokensText(toks, diags)
			}
			if len(diags) > 0 {
				os.Exit(1)
			}
		},
	}
	cmd.Flags().BoolVar(&tokensJSON, "json", false, "print tokens as JSON")
	return cmd
}
