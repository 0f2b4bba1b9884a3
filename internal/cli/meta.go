package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rshade/pagenav/internal/cli/pageflags"
)

// NewMetaCmd creates the meta command printing the page metadata.
func NewMetaCmd() *cobra.Command {
	params := pageflags.NewParams()

	cmd := &cobra.Command{
		Use:     "meta",
		Short:   "Print the metadata of a page",
		Example: `  pagenav meta --count 103 --page 6 -o json`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			pc, err := newPageContext(cmd, params)
			if err != nil {
				return err
			}
			meta := pc.pager.Meta(pc.nav)
			return renderOutput(cmd, meta, func(w *tabwriter.Writer) error {
				fmt.Fprintln(w, "Field\tValue")
				fmt.Fprintln(w, "-----\t-----")
				fmt.Fprintf(w, "Page\t%s\n", pageSummary(meta))
				fmt.Fprintf(w, "Page size\t%d\n", meta.PageSize)
				fmt.Fprintf(w, "Items\t%s\n", itemSummary(meta))
				fmt.Fprintf(w, "Prev page\t%s\n", optionalPage(meta.PrevPage))
				fmt.Fprintf(w, "Next page\t%s\n", optionalPage(meta.NextPage))
				return nil
			})
		},
	}
	params.AddFlags(cmd)
	return cmd
}

func optionalPage(page int) string {
	if page == 0 {
		return "-"
	}
	return fmt.Sprint(page)
}
