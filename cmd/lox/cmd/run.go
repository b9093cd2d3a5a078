package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/msto63/lox/internal/runner"
	"github.com/msto63/lox/internal/watch"
)

var runWatch bool

var runCmd = &cobra.Command{
	Use:   "run <file>",
	Short: "Run a script",
	Long: `Runs a script once. Diagnostics go to stderr and the exit code
reflects the first failing stage.

With --watch the script is run again every time it is saved, until
interrupted.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if runWatch {
			return watchFile(cmd, args[0])
		}
		return runFile(cmd, args[0])
	},
}

func init() {
	runCmd.Flags().BoolVarP(&runWatch, "watch", "w", false, "re-run the script when it changes")
	rootCmd.AddCommand(runCmd)
}

func runFile(cmd *cobra.Command, path string) error {
	result, err := newRunner(cmd, false).RunFile(path)
	if code := runner.ExitCode(result, err); code != runner.ExitOK {
		return &exitError{code: code, err: err}
	}
	return nil
}

func watchFile(cmd *cobra.Command, path string) error {
	r := newRunner(cmd, false)
	runOnce := func() { watchRun(cmd, r, path) }

	runOnce()
	return watch.File(cmd.Context(), path, watch.Options{
		Debounce: app.cfg.Watch.Debounce.Duration,
		Logger:   app.logger,
	}, runOnce)
}

// watchRun runs path once and prints the separator. Failures such as a
// file caught mid-save are logged and the watch goes on.
func watchRun(cmd *cobra.Command, r *runner.Runner, path string) {
	result, err := r.RunFile(path)
	if err != nil {
		app.logger.LogError(err)
	}
	runID := ""
	if result != nil {
		runID = result.RunID
	}
	fmt.Fprintln(cmd.ErrOrStderr(), app.render.Separator(filepath.Base(path), runID))
}
