// Package cli implements the string analyzer command line tool.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/ethanbaker/stringanalyzer/pkg/sdk"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// DefaultURL is used when neither --url nor STRING_ANALYZER_URL is set
const DefaultURL = "http://localhost:8080"

// options are the persistent flags shared by every command
type options struct {
	url    string
	apiKey string
	format string
}

// NewRootCmd builds the top-level command with every subcommand attached
func NewRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "stringanalyzer",
		Short:         "Analyze, store and query strings",
		Long:          "A command line client for the string analyzer service. Strings are analyzed for length, palindromes, unique characters, word count, hash and character frequency.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.format != "json" && opts.format != "yaml" {
				return fmt.Errorf("unknown format '%s', expected json or yaml", opts.format)
			}
			return nil
		},
	}

	root.PersistentFlags().StringVar(&opts.url, "url", envOr("STRING_ANALYZER_URL", DefaultURL), "Service base URL (default: $STRING_ANALYZER_URL)")
	root.PersistentFlags().StringVar(&opts.apiKey, "api-key", os.Getenv("API_KEY"), "API key for create and delete (default: $API_KEY)")
	root.PersistentFlags().StringVarP(&opts.format, "format", "f", "json", "Output format: json or yaml")

	root.AddCommand(
		newAnalyzeCmd(opts),
		newCreateCmd(opts),
		newGetCmd(opts),
		newDeleteCmd(opts),
		newListCmd(opts),
		newQueryCmd(opts),
		newReplCmd(opts),
	)

	return root
}

// Execute runs the root command, printing any failure to stderr
func Execute() int {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

func (o *options) client() *sdk.Client {
	return sdk.NewClient(o.url, o.apiKey)
}

// print writes v in the selected format
func (o *options) print(w io.Writer, v any) error {
	if o.format == "yaml" {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}

	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
