package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rshade/pagenav/internal/config"
)

const tabPadding = 2

// outputFormat returns the effective output format of the running command.
func outputFormat() string {
	return config.GetDefaultOutputFormat()
}

// renderOutput writes v as JSON or YAML, or calls table for the table format.
func renderOutput(cmd *cobra.Command, v any, table func(w *tabwriter.Writer) error) error {
	out := cmd.OutOrStdout()
	switch format := outputFormat(); format {
	case config.FormatJSON:
		return renderJSON(out, v)
	case config.FormatYAML:
		return renderYAML(out, v)
	case config.FormatTable:
		w := tabwriter.NewWriter(out, 0, 0, tabPadding, ' ', 0)
		if err := table(w); err != nil {
			return err
		}
		return w.Flush()
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}

func renderJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

func renderYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
