package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	loxerror "github.com/msto63/lox/foundation/core/error"
	loxlog "github.com/msto63/lox/foundation/core/log"

	"github.com/msto63/lox/internal/render"
	"github.com/msto63/lox/internal/runner"
	"github.com/msto63/lox/pkg/core/config"
	"github.com/msto63/lox/pkg/core/logging"
	"github.com/msto63/lox/pkg/core/version"
)

var (
	cfgFile  string
	verbose  bool
	logLevel string
	noColor  bool
)

// app is filled by the persistent pre-run of every command
var app struct {
	cfg    *config.Config
	logger *loxlog.Logger
	render *render.Renderer
}

var rootCmd = &cobra.Command{
	Use:   "lox [file]",
	Short: "lox - a small scripting language",
	Long: `lox runs scripts written in a small expression language with
print statements, arithmetic, comparison and string concatenation.

Without a file argument an interactive session is started.

Exit codes:
  64  usage or configuration error
  65  lexical or syntax errors
  70  runtime errors
  74  I/O errors`,
	Version:           version.Version,
	Args:              cobra.MaximumNArgs(1),
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return runInteractive(cmd, app.cfg.REPL.TUI)
		}
		return runFile(cmd, args[0])
	},
}

// exitError carries a process exit code out of a command. err is printed
// when set; diagnostics have already been written when it is nil.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	if e.err == nil {
		return fmt.Sprintf("exit status %d", e.code)
	}
	return e.err.Error()
}

func (e *exitError) Unwrap() error {
	return e.err
}

// Execute runs the command tree and returns the process exit code
func Execute(ctx context.Context) int {
	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return runner.ExitOK
	}

	var ee *exitError
	if errors.As(err, &ee) {
		if ee.err != nil {
			printError(rootCmd.ErrOrStderr(), ee.err)
		}
		return ee.code
	}

	printError(rootCmd.ErrOrStderr(), err)
	if loxerror.GetCode(err) == loxerror.CodeUnknown {
		// cobra argument and flag errors
		return runner.ExitUsage
	}
	return runner.ExitCode(nil, err)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $LOX_CONFIG, ./lox.toml, ./lox.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (trace, debug, info, warn, error, off)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
}

// setup loads the configuration and builds the shared logger and renderer
func setup(cmd *cobra.Command, args []string) error {
	var (
		cfg *config.Config
		err error
	)
	if cfgFile != "" {
		cfg, err = config.Load(cfgFile)
	} else {
		cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return err
	}

	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	if verbose {
		cfg.Log.Level = "debug"
	}
	if noColor {
		cfg.General.Color = false
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	lc := logging.FromConfig("lox", cfg.Log, logLevel, verbose)
	lc.Output = cmd.ErrOrStderr()
	logger := logging.NewLogger(lc)
	loxlog.SetDefault(logger)

	app.cfg = cfg
	app.logger = logger
	app.render = render.New(cfg.General.Color)

	logger.Debug("configuration loaded", logging.KV(
		"command", cmd.Name(),
		"config", cfgFile,
		"unterminated", cfg.Scanner.Unterminated,
	))
	return nil
}

// newRunner creates a runner writing to the command's streams
func newRunner(cmd *cobra.Command, echo bool) *runner.Runner {
	return runner.New(runner.Options{
		Stdout:       cmd.OutOrStdout(),
		Stderr:       cmd.ErrOrStderr(),
		Unterminated: app.cfg.Unterminated(),
		Logger:       app.logger,
		Renderer:     app.render,
		Echo:         echo,
	})
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)
}
