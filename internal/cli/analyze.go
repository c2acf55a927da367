package cli

import (
	"github.com/ethanbaker/stringanalyzer/pkg/analysis"
	"github.com/spf13/cobra"
)

func newAnalyzeCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "analyze <text>",
		Short: "Analyze a string locally without storing it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.print(cmd.OutOrStdout(), analysis.Analyze(args[0]))
		},
	}
}
