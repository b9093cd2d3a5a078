package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/lox/foundation/lox/ast"
	"github.com/msto63/lox/internal/runner"
)

var astCmd = &cobra.Command{
	Use:   "ast <file|->",
	Short: "Print the syntax tree of a script",
	Long: `Parses a script without running it and prints each statement in
parenthesized prefix form, for example

  print 1 + 2 * 3;   ->   (print (+ 1 (* 2 3)))

Use "-" to read from stdin.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		source, err := runner.ReadSource(args[0], cmd.InOrStdin())
		if err != nil {
			return &exitError{code: runner.ExitIOErr, err: err}
		}

		result, err := newRunner(cmd, false).Parse(source)
		out := cmd.OutOrStdout()
		for _, stmt := range result.Statements {
			fmt.Fprintln(out, ast.SprintStmt(stmt))
		}

		if code := runner.ExitCode(result, err); code != runner.ExitOK {
			return &exitError{code: code, err: err}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(astCmd)
}
