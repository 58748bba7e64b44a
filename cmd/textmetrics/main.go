package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/seokit/textmetrics"
)

func main() {
	a := &app{}
	err := newRootCmd(a).Execute()
	a.close()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "textmetrics",
		Short: "Readability and keyword statistics for text",
		Long: `textmetrics scores how easy a text is to read and which words dominate it.

It reports Flesch Reading Ease, Flesch-Kincaid grade, reading time, keyword
density and LSI keyword frequencies for text given as arguments, read from
a file or piped on stdin.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	// Global flags
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().String("locale", "", "Interface locale: en, pt, es or fr")
	rootCmd.PersistentFlags().String("format", "", "Output format: text, json or yaml")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error")
	rootCmd.PersistentFlags().String("db", "", "Path to the drafts database")

	rootCmd.AddCommand(
		newVersionCmd(),
		newReadabilityCmd(a),
		newKeywordsCmd(a),
		newWordsCmd(a),
		newReportCmd(a),
		newDraftsCmd(a),
	)

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "textmetrics version %s\n", textmetrics.Version)
		},
	}
}
