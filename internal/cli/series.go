package cli

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rshade/pagenav/internal/cli/pageflags"
	"github.com/rshade/pagenav/internal/links"
	"github.com/rshade/pagenav/internal/pagination"
	"github.com/rshade/pagenav/internal/series"
	"github.com/rshade/pagenav/internal/tui"
)

// seriesResult is the structured output of the series command.
type seriesResult struct {
	Series []string        `json:"series" yaml:"series"`
	Active int             `json:"active,omitempty" yaml:"active,omitempty"`
	Meta   pagination.Meta `json:"meta"   yaml:"meta"`
}

// NewSeriesCmd creates the series command printing the page series.
func NewSeriesCmd() *cobra.Command {
	params := pageflags.NewParams()

	cmd := &cobra.Command{
		Use:   "series",
		Short: "Print the page series of a page",
		Long: `Prints the compact list of page numbers shown in a navigation bar.
Elided runs of pages appear as a gap; the current page is marked.`,
		Example: `  pagenav series --count 1000 --page 7
  pagenav series --count 103 --page 3 -o json
  pagenav series --countless --page 4 --has-more`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			pc, err := newPageContext(cmd, params)
			if err != nil {
				return err
			}
			tokens, err := pc.pager.Series(pc.nav)
			if err != nil {
				return err
			}

			result := seriesResult{
				Series: links.SeriesLabels(tokens, nil),
				Active: activePage(tokens),
				Meta:   pc.pager.Meta(pc.nav),
			}
			return renderOutput(cmd, result, func(w *tabwriter.Writer) error {
				line := formatSeries(tokens)
				if styledOutput(cmd) {
					line = tui.RenderSeries(tokens)
				}
				fmt.Fprintf(w, "Series\t%s\n", line)
				fmt.Fprintf(w, "Page\t%s\n", pageSummary(result.Meta))
				fmt.Fprintf(w, "Items\t%s\n", itemSummary(result.Meta))
				return nil
			})
		},
	}
	params.AddFlags(cmd)
	return cmd
}

func activePage(tokens []series.Token) int {
	for _, t := range tokens {
		if t.Kind == series.KindActive {
			return t.Page
		}
	}
	return 0
}

// formatSeries renders tokens as plain text with the active page in brackets.
func formatSeries(tokens []series.Token) string {
	parts := make([]string, len(tokens))
	for i, t := range tokens {
		switch t.Kind {
		case series.KindGap:
			parts[i] = links.GapLabel
		case series.KindActive:
			parts[i] = "[" + strconv.Itoa(t.Page) + "]"
		default:
			parts[i] = strconv.Itoa(t.Page)
		}
	}
	return strings.Join(parts, " ")
}

func pageSummary(m pagination.Meta) string {
	if m.Countless {
		if m.HasNext {
			return fmt.Sprintf("%d (more follow)", m.CurrentPage)
		}
		return fmt.Sprintf("%d (last)", m.CurrentPage)
	}
	return fmt.Sprintf("%d of %d", m.CurrentPage, m.TotalPages)
}

func itemSummary(m pagination.Meta) string {
	if m.From == 0 {
		if m.Countless {
			return "unknown"
		}
		return "none"
	}
	if m.Countless {
		return fmt.Sprintf("%d-%d", m.From, m.To)
	}
	return fmt.Sprintf("%d-%d of %d", m.From, m.To, m.TotalItems)
}
