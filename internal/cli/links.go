package cli

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rshade/pagenav/internal/cli/pageflags"
	"github.com/rshade/pagenav/internal/links"
	"github.com/rshade/pagenav/internal/render"
)

// linksResult is the structured output of the links command.
type linksResult struct {
	Prev  links.LinkSpec   `json:"prev"  yaml:"prev"`
	Pages []links.LinkSpec `json:"pages" yaml:"pages"`
	Next  links.LinkSpec   `json:"next"  yaml:"next"`
}

// NewLinksCmd creates the links command listing the navigation links.
func NewLinksCmd() *cobra.Command {
	params := pageflags.NewParams()

	cmd := &cobra.Command{
		Use:   "links",
		Short: "List the navigation links of a page",
		Example: `  pagenav links --count 1000 --page 7 --url "https://example.com/items?q=shoes"
  pagenav links --count 1000 --page 7 -o yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			pc, err := newPageContext(cmd, params)
			if err != nil {
				return err
			}
			pages, err := pc.pager.Links(pc.nav, pc.req)
			if err != nil {
				return err
			}

			labels := render.LabelsFor(pc.pager.Translator(), "")
			urlFor := func(page int) string { return pc.pager.URL(pc.req, page, params.Absolute) }
			prev, next := links.PrevNext(pc.nav, urlFor, links.Labels{Prev: labels.Prev, Next: labels.Next})
			if params.Absolute {
				for i := range pages {
					if !pages[i].Disabled() {
						pages[i].URL = urlFor(pages[i].Page)
					}
				}
			}

			result := linksResult{Prev: prev, Pages: pages, Next: next}
			return renderOutput(cmd, result, func(w *tabwriter.Writer) error {
				fmt.Fprintln(w, "Label\tPage\tRel\tActive\tURL")
				fmt.Fprintln(w, "-----\t----\t---\t------\t---")
				all := append(append([]links.LinkSpec{prev}, pages...), next)
				for _, l := range all {
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
						l.Label, pageCell(l), dash(l.Rel), activeCell(l), dash(l.URL))
				}
				return nil
			})
		},
	}
	params.AddFlags(cmd)
	return cmd
}

func pageCell(l links.LinkSpec) string {
	if l.Disabled() {
		return "-"
	}
	return strconv.Itoa(l.Page)
}

func activeCell(l links.LinkSpec) string {
	if l.Active {
		return "*"
	}
	return ""
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
