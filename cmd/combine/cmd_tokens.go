package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dhamidi/combine/calc"
)

func newTokensCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "tokens <expression>",
		Short:         "Dump the token stream for an expression",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, tok := range calc.Tokenize(args[0]) {
				fmt.Printf("%d:%d\t%s\t%q\n", tok.Pos.Line, tok.Pos.Column, tok.Kind, tok.Literal)
			}
			return nil
		},
	}
}
