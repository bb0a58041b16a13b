package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dhamidi/combine/calc"
)

func newEvalCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "eval <expression>",
		Short:         "Parse and evaluate an arithmetic expression",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := calc.Parse(args[0])
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				return fmt.Errorf("parse expression: %w", err)
			}
			fmt.Println(strconv.FormatFloat(result, 'g', -1, 64))
			return nil
		},
	}
}
