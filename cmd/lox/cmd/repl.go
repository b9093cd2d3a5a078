package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/lox/internal/repl"
	"github.com/msto63/lox/internal/tui"
)

var replTUI bool

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive session",
	Long: `Starts an interactive session. Every line is run on its own; errors
are reported and the session continues. The value of a trailing
expression statement is echoed.

Type the exit command (default "exit") or send end of input to quit.

With --tui a full-screen session is started:
  Enter     - run the line
  Ctrl+L    - clear the scrollback
  Esc       - quit
  Ctrl+C    - quit`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInteractive(cmd, replTUI || app.cfg.REPL.TUI)
	},
}

func init() {
	replCmd.Flags().BoolVar(&replTUI, "tui", false, "full-screen terminal interface")
	rootCmd.AddCommand(replCmd)
}

func runInteractive(cmd *cobra.Command, fullScreen bool) error {
	cfg := app.cfg.REPL

	if fullScreen {
		return tui.Run(cmd.Context(), tui.Config{
			Prompt:       cfg.Prompt,
			ExitCommand:  cfg.ExitCommand,
			Echo:         cfg.Echo,
			Unterminated: app.cfg.Unterminated(),
			Logger:       app.logger,
		})
	}

	session := repl.New(
		newRunner(cmd, cfg.Echo),
		cmd.InOrStdin(),
		cmd.OutOrStdout(),
		repl.Config{Prompt: cfg.Prompt, ExitCommand: cfg.ExitCommand},
		app.logger,
	)
	return session.Run(cmd.Context())
}
