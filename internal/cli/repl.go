package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/ethanbaker/stringanalyzer/pkg/nlquery"
	"github.com/spf13/cobra"
)

func newReplCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Interactively translate natural language queries",
		Long:  "Reads one query per line and prints the filters it translates to. With --run each query is also sent to the service. Type 'exit' to quit.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			run, _ := cmd.Flags().GetBool("run")
			return startInteractiveSession(cmd, opts, run)
		},
	}

	cmd.Flags().Bool("run", false, "Also run each query against the service")
	return cmd
}

// startInteractiveSession reads queries until EOF or 'exit'. Bad queries are
// reported and the session continues.
func startInteractiveSession(cmd *cobra.Command, opts *options, run bool) error {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "String analyzer query console. Type 'exit' to quit.")

	scanner := bufio.NewScanner(cmd.InOrStdin())

	for {
		fmt.Fprint(out, "\n> ")

		if !scanner.Scan() {
			break
		}

		input := strings.TrimSpace(scanner.Text())

		if input == "exit" {
			break
		}

		if input == "" {
			continue
		}

		interpretation, err := nlquery.Interpret(input)
		if err != nil {
			fmt.Fprintf(out, "Error: %v\n", err)
			continue
		}

		if !run {
			if err := opts.print(out, interpretation); err != nil {
				return err
			}
			continue
		}

		result, err := opts.client().FilterByNaturalLanguage(cmd.Context(), input)
		if err != nil {
			fmt.Fprintf(out, "Error: %v\n", err)
			continue
		}
		if err := opts.print(out, result); err != nil {
			return err
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading input: %w", err)
	}

	return nil
}
