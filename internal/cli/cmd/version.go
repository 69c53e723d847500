package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/vitrine/internal/domain/build"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version and build information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "vitrine %s\n", buildInfo.Version)
		fmt.Fprintf(cmd.OutOrStdout(), "  commit:  %s\n", buildInfo.Commit)
		fmt.Fprintf(cmd.OutOrStdout(), "  built:   %s\n", buildInfo.BuildDate)
		fmt.Fprintf(cmd.OutOrStdout(), "  go:      %s\n", buildInfo.GoVersion)
		fmt.Fprintf(cmd.OutOrStdout(), "  repo:    %s\n", build.RepoURL())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
