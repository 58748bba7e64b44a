package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/seokit/textmetrics/internal/drafts"
)

// draftOutput is the structured form of a stored draft.
type draftOutput struct {
	Key       string    `json:"key" yaml:"key"`
	Locale    string    `json:"locale" yaml:"locale"`
	Text      string    `json:"text" yaml:"text"`
	UpdatedAt time.Time `json:"updatedAt" yaml:"updatedAt"`
}

func toDraftOutput(d drafts.Draft) draftOutput {
	return draftOutput{Key: d.Key, Locale: d.Locale, Text: d.Text, UpdatedAt: d.UpdatedAt}
}

func newDraftsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "drafts",
		Short: "Manage saved tool inputs",
	}

	cmd.AddCommand(
		newDraftsShowCmd(a),
		newDraftsClearCmd(a),
		newDraftsListCmd(a),
	)

	return cmd
}

func newDraftsShowCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the saved draft of a tool for the current locale",
		RunE: func(cmd *cobra.Command, args []string) error {
			tool, _ := cmd.Flags().GetString("tool")
			name, err := draftName(tool)
			if err != nil {
				return err
			}
			store, err := a.openDrafts()
			if err != nil {
				return err
			}
			d, err := store.Load(contextOf(cmd), name, a.locale())
			if err != nil {
				return err
			}

			return a.render(cmd.OutOrStdout(), toDraftOutput(d), func(w io.Writer) error {
				_, err := fmt.Fprintln(w, d.Text)
				return err
			})
		},
	}
	cmd.Flags().String("tool", "", "Tool name: readability, keywords, lsi, words or report")
	_ = cmd.MarkFlagRequired("tool")
	return cmd
}

func newDraftsClearCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete the saved draft of a tool for the current locale",
		RunE: func(cmd *cobra.Command, args []string) error {
			tool, _ := cmd.Flags().GetString("tool")
			name, err := draftName(tool)
			if err != nil {
				return err
			}
			store, err := a.openDrafts()
			if err != nil {
				return err
			}
			if err := store.Clear(contextOf(cmd), name, a.locale()); err != nil {
				return err
			}

			return a.render(cmd.OutOrStdout(), map[string]string{"status": "cleared", "key": drafts.Key(name)}, func(w io.Writer) error {
				_, err := fmt.Fprintf(w, "Cleared %s draft (%s)\n", tool, a.locale())
				return err
			})
		},
	}
	cmd.Flags().String("tool", "", "Tool name: readability, keywords, lsi, words or report")
	_ = cmd.MarkFlagRequired("tool")
	return cmd
}

func newDraftsListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every saved draft",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.openDrafts()
			if err != nil {
				return err
			}
			all, err := store.List(contextOf(cmd))
			if err != nil {
				return err
			}

			out := make([]draftOutput, 0, len(all))
			for _, d := range all {
				out = append(out, toDraftOutput(d))
			}
			return a.render(cmd.OutOrStdout(), out, func(w io.Writer) error {
				if len(out) == 0 {
					_, err := fmt.Fprintln(w, "No drafts saved.")
					return err
				}
				for _, d := range out {
					fmt.Fprintf(w, "%-40s %-3s %6d chars  %s\n",
						d.Key, d.Locale, len([]rune(d.Text)), d.UpdatedAt.Format(time.RFC3339))
				}
				return nil
			})
		},
	}
}
