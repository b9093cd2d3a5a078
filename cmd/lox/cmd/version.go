package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/lox/pkg/core/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		info := version.Get()
		_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s\n%s", app.render.Title(info.Short()), info.Details())
		return err
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
