package cli

import (
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rshade/pagenav/internal/config"
)

// NewConfigShowCmd creates the config show command printing the effective configuration.
func NewConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Long: `Shows the configuration after defaults, the config file, PAGENAV_*
environment variables and global flags have been applied.`,
		Example: `  pagenav config show
  PAGENAV_LIMIT=50 pagenav config show -o yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.GetGlobalConfig()
			return renderOutput(cmd, cfg, func(w *tabwriter.Writer) error {
				fmt.Fprintln(w, "Key\tValue")
				fmt.Fprintln(w, "---\t-----")
				fmt.Fprintf(w, "limit\t%d\n", cfg.Limit)
				fmt.Fprintf(w, "outset\t%d\n", cfg.Outset)
				fmt.Fprintf(w, "page_param\t%s\n", cfg.PageParam)
				fmt.Fprintf(w, "overflow\t%s\n", cfg.Overflow)
				fmt.Fprintf(w, "fragment\t%s\n", dash(cfg.Fragment))
				for _, at := range sortedKeys(cfg.Steps) {
					fmt.Fprintf(w, "steps.%d\t%v\n", at, cfg.Steps[at])
				}
				fmt.Fprintf(w, "headers.page\t%s\n", cfg.Headers.Page)
				fmt.Fprintf(w, "headers.limit\t%s\n", cfg.Headers.Limit)
				fmt.Fprintf(w, "headers.count\t%s\n", cfg.Headers.Count)
				fmt.Fprintf(w, "headers.pages\t%s\n", cfg.Headers.Pages)
				fmt.Fprintf(w, "locale\t%s\n", cfg.Locale)
				fmt.Fprintf(w, "output.default_format\t%s\n", cfg.Output.DefaultFormat)
				fmt.Fprintf(w, "logging.level\t%s\n", cfg.Logging.Level)
				return nil
			})
		},
	}
}

func sortedKeys(m map[int][]int) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
