package cli

import (
	"fmt"

	"github.com/ethanbaker/stringanalyzer/pkg/filter"
	"github.com/ethanbaker/stringanalyzer/pkg/sdk"
	"github.com/spf13/cobra"
)

func newCreateCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "create <text>",
		Short: "Analyze and store a string",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			record, err := opts.client().CreateString(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("create: %w", err)
			}
			return opts.print(cmd.OutOrStdout(), record)
		},
	}
}

func newGetCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "get <text>",
		Short: "Show a stored string",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			record, err := opts.client().GetString(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("get: %w", err)
			}
			return opts.print(cmd.OutOrStdout(), record)
		},
	}
}

func newDeleteCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <text>",
		Aliases: []string{"rm"},
		Short:   "Delete a stored string",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.client().DeleteString(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("delete: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted %q\n", args[0])
			return nil
		},
	}
}

func newListCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored strings with optional filters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := listParams(cmd)
			if err != nil {
				return err
			}

			result, err := opts.client().ListStrings(cmd.Context(), params)
			if err != nil {
				return fmt.Errorf("list: %w", err)
			}
			return opts.print(cmd.OutOrStdout(), result)
		},
	}

	cmd.Flags().Bool("palindrome", false, "Only palindromes (use --palindrome=false for non-palindromes)")
	cmd.Flags().Int("min-length", 0, "Minimum length")
	cmd.Flags().Int("max-length", 0, "Maximum length")
	cmd.Flags().Int("word-count", 0, "Exact word count")
	cmd.Flags().String("contains", "", "Character the string must contain")

	return cmd
}

// listParams sets only the filters whose flags were given
func listParams(cmd *cobra.Command) (sdk.ListParams, error) {
	var params sdk.ListParams
	flags := cmd.Flags()

	if flags.Changed("palindrome") {
		v, err := flags.GetBool("palindrome")
		if err != nil {
			return params, err
		}
		params.IsPalindrome = filter.Bool(v)
	}

	for _, f := range []struct {
		name string
		dst  **int
	}{
		{"min-length", &params.MinLength},
		{"max-length", &params.MaxLength},
		{"word-count", &params.WordCount},
	} {
		if !flags.Changed(f.name) {
			continue
		}
		v, err := flags.GetInt(f.name)
		if err != nil {
			return params, err
		}
		*f.dst = filter.Int(v)
	}

	if flags.Changed("contains") {
		v, err := flags.GetString("contains")
		if err != nil {
			return params, err
		}
		params.ContainsCharacter = filter.String(v)
	}

	return params, nil
}

func newQueryCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "query <text>",
		Short: "List stored strings matching a natural language query",
		Long:  `List stored strings matching an English query such as "single word palindromic strings" or "strings longer than 10 characters containing the letter z".`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := opts.client().FilterByNaturalLanguage(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("query: %w", err)
			}
			return opts.print(cmd.OutOrStdout(), result)
		},
	}
}
