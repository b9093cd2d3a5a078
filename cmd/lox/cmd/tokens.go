package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/lox/internal/runner"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens <file|->",
	Short: "Print the tokens of a script",
	Long: `Scans a script and prints one token per line as

  KIND lexeme literal line

Use "-" to read from stdin.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		source, err := runner.ReadSource(args[0], cmd.InOrStdin())
		if err != nil {
			return &exitError{code: runner.ExitIOErr, err: err}
		}

		result, err := newRunner(cmd, false).Tokens(source)
		out := cmd.OutOrStdout()
		for _, tok := range result.Tokens {
			fmt.Fprintln(out, tok.String())
		}

		if code := runner.ExitCode(result, err); code != runner.ExitOK {
			return &exitError{code: code, err: err}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}
