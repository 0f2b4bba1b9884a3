package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rshade/pagenav/internal/cli/pageflags"
	"github.com/rshade/pagenav/internal/pagination"
)

// NewURLCmd creates the url command printing the URL of one page.
func NewURLCmd() *cobra.Command {
	params := pageflags.NewParams()

	cmd := &cobra.Command{
		Use:   "url",
		Short: "Print the URL of a page",
		Example: `  pagenav url --page 3 --url "https://example.com/items?q=shoes&page=9"
  pagenav url --page 3 --url "/items" --absolute`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			params.Bind(cmd)
			if err := params.Validate(); err != nil {
				return err
			}
			if params.Page < pagination.MinPage {
				return &pagination.RangeError{Page: params.Page}
			}
			p, err := newPager(params)
			if err != nil {
				return err
			}
			req, err := params.Request()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), p.URL(req, params.Page, params.Absolute))
			return nil
		},
	}
	params.AddFlags(cmd)
	return cmd
}

// pageURL is one row of the urls command.
type pageURL struct {
	Page int    `json:"page" yaml:"page"`
	URL  string `json:"url"  yaml:"url"`
}

// NewURLsCmd creates the urls command listing the URL of every page.
func NewURLsCmd() *cobra.Command {
	params := pageflags.NewParams()

	cmd := &cobra.Command{
		Use:   "urls",
		Short: "List the URL of every page",
		Long: `Lists the URL of every page, first page first. Without a total count the
list ends at the next page.`,
		Example: `  pagenav urls --count 103 --url "/items?q=shoes"`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			pc, err := newPageContext(cmd, params)
			if err != nil {
				return err
			}
			urls := pc.pager.URLs(pc.nav, pc.req, params.Absolute)
			rows := make([]pageURL, len(urls))
			for i, u := range urls {
				rows[i] = pageURL{Page: i + 1, URL: u}
			}
			return renderOutput(cmd, rows, func(w *tabwriter.Writer) error {
				fmt.Fprintln(w, "Page\tURL")
				fmt.Fprintln(w, "----\t---")
				for _, r := range rows {
					fmt.Fprintf(w, "%d\t%s\n", r.Page, r.URL)
				}
				return nil
			})
		},
	}
	params.AddFlags(cmd)
	return cmd
}
