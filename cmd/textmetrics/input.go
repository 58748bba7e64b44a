package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/seokit/textmetrics/internal/htmltext"
)

// Draft names for each tool, as stored under drafts.KeyPrefix.
var draftNames = map[string]string{
	"readability": "readability-analyzer-text",
	"keywords":    "keyword-density-text",
	"lsi":         "lsi-keywords-text",
	"words":       "word-counter-text",
	"report":      "report-text",
}

func draftName(tool string) (string, error) {
	name, ok := draftNames[strings.ToLower(strings.TrimSpace(tool))]
	if !ok {
		return "", fmt.Errorf("unknown tool %q: must be one of readability, keywords, lsi, words, report", tool)
	}
	return name, nil
}

func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("file", "f", "", "Read text from a file (- for stdin)")
	cmd.Flags().Bool("html", false, "Treat the input as HTML and analyze its visible text")
	cmd.Flags().Bool("save", false, "Save the analyzed text as this tool's draft")
	cmd.Flags().Bool("restore", false, "Analyze the saved draft instead of new input")
}

// input is the text a command analyzes. Title is set for HTML input only.
type input struct {
	Text  string
	Title string
}

// readInput resolves the text a command analyzes: the saved draft with
// --restore, otherwise --file, positional arguments or stdin, in that order.
func (a *app) readInput(cmd *cobra.Command, args []string, tool string) (input, error) {
	ctx := contextOf(cmd)
	name, err := draftName(tool)
	if err != nil {
		return input{}, err
	}

	restore, _ := cmd.Flags().GetBool("restore")
	if restore {
		store, err := a.openDrafts()
		if err != nil {
			return input{}, err
		}
		d, err := store.Load(ctx, name, a.locale())
		if err != nil {
			return input{}, fmt.Errorf("failed to restore %s draft: %w", tool, err)
		}
		a.log.Debug("draft restored", zap.String("key", d.Key), zap.Time("updatedAt", d.UpdatedAt))
		return input{Text: d.Text}, nil
	}

	raw, err := rawInput(cmd, args)
	if err != nil {
		return input{}, err
	}

	in := input{Text: raw}
	if isHTML, _ := cmd.Flags().GetBool("html"); isHTML {
		in.Text, err = htmltext.ExtractString(raw)
		if err != nil {
			return input{}, err
		}
		in.Title = htmltext.Title(raw)
	}

	if save, _ := cmd.Flags().GetBool("save"); save {
		store, err := a.openDrafts()
		if err != nil {
			return input{}, err
		}
		if err := store.Save(ctx, name, a.locale(), in.Text); err != nil {
			return input{}, err
		}
		a.log.Debug("draft saved", zap.String("tool", tool), zap.Int("bytes", len(in.Text)))
	}

	return in, nil
}

func rawInput(cmd *cobra.Command, args []string) (string, error) {
	path, _ := cmd.Flags().GetString("file")
	switch {
	case path == "-":
		return readAll(cmd.InOrStdin())
	case path != "":
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read input file: %w", err)
		}
		return string(data), nil
	case len(args) > 0:
		return strings.Join(args, " "), nil
	default:
		return readAll(cmd.InOrStdin())
	}
}

func readAll(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), nil
}
