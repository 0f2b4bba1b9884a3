package cli

import (
	"bufio"
	"fmt"
	"io"
	"net/http"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rshade/pagenav/internal/cli/pageflags"
	"github.com/rshade/pagenav/internal/config"
	"github.com/rshade/pagenav/internal/headers"
)

// NewHeadersCmd creates the headers command printing pagination response headers.
func NewHeadersCmd() *cobra.Command {
	params := pageflags.NewParams()

	cmd := &cobra.Command{
		Use:   "headers",
		Short: "Print the pagination response headers of a page",
		Long: `Prints the pagination response headers of a page, one "Name: value" per
line in table mode. Link targets are always absolute.`,
		Example: `  pagenav headers --count 1000 --page 7 --url https://example.com/items`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			pc, err := newPageContext(cmd, params)
			if err != nil {
				return err
			}
			hdrs := pc.pager.Headers(pc.nav, pc.req)
			return renderOutput(cmd, hdrs, func(w *tabwriter.Writer) error {
				return writeHeaderLines(w, hdrs)
			})
		},
	}
	params.AddFlags(cmd)
	return cmd
}

// writeHeaderLines writes hdrs as sorted "Name: value" lines.
func writeHeaderLines(w io.Writer, hdrs map[string]string) error {
	names := make([]string, 0, len(hdrs))
	for name := range hdrs {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if _, err := fmt.Fprintf(w, "%s: %s\n", name, hdrs[name]); err != nil {
			return err
		}
	}
	return nil
}

// NewParseHeadersCmd creates the parse-headers command reading pagination
// headers back into page numbers.
func NewParseHeadersCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "parse-headers",
		Short: "Parse pagination response headers",
		Long: `Reads "Name: value" header lines from a file or stdin and prints the
pagination state they describe. Header names follow the configuration.`,
		Example: `  pagenav headers --count 1000 --page 7 | pagenav parse-headers
  curl -sI https://example.com/items | pagenav parse-headers -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in := cmd.InOrStdin()
			if file != "" && file != "-" {
				f, err := os.Open(file)
				if err != nil {
					return fmt.Errorf("opening headers file: %w", err)
				}
				defer f.Close()
				in = f
			}

			h, err := readHeaders(in)
			if err != nil {
				return err
			}
			cfg := config.GetGlobalConfig()
			parsed, err := headers.Parse(h, cfg.HeaderNames(), cfg.PageParam)
			if err != nil {
				return err
			}
			logger.Debug().Ctx(cmd.Context()).Int("headers", len(h)).Msg("headers parsed")

			return renderOutput(cmd, parsed, func(w *tabwriter.Writer) error {
				fmt.Fprintln(w, "Field\tValue")
				fmt.Fprintln(w, "-----\t-----")
				fmt.Fprintf(w, "Page\t%s\n", optionalPage(parsed.Page))
				fmt.Fprintf(w, "Limit\t%s\n", optionalPage(parsed.Limit))
				fmt.Fprintf(w, "Count\t%s\n", optionalPage(parsed.Count))
				fmt.Fprintf(w, "Pages\t%s\n", optionalPage(parsed.Pages))
				fmt.Fprintf(w, "First\t%s\n", optionalPage(parsed.First))
				fmt.Fprintf(w, "Prev\t%s\n", optionalPage(parsed.Prev))
				fmt.Fprintf(w, "Next\t%s\n", optionalPage(parsed.Next))
				fmt.Fprintf(w, "Last\t%s\n", optionalPage(parsed.Last))
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "file with header lines (default stdin)")
	return cmd
}

// readHeaders reads "Name: value" lines. Status lines and lines without a
// colon are skipped.
func readHeaders(r io.Reader) (http.Header, error) {
	h := make(http.Header)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "HTTP/") {
			continue
		}
		name, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		h.Add(strings.TrimSpace(name), strings.TrimSpace(value))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading headers: %w", err)
	}
	return h, nil
}
