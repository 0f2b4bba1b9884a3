package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rshade/pagenav/internal/cli/pageflags"
	"github.com/rshade/pagenav/internal/tui"
)

// NewBrowseCmd creates the browse command paging through lines of text.
func NewBrowseCmd() *cobra.Command {
	params := pageflags.NewParams()
	var (
		file       string
		title      string
		order      string
		ignoreCase bool
	)

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Page interactively through the lines of a file",
		Long: `Pages through the lines of a file, or stdin, one page at a time.

On a terminal an interactive view is started. Otherwise the requested page is
printed once.`,
		Example: `  pagenav browse --file items.txt
  pagenav browse --file items.txt --limit 5 --page 3
  pagenav browse --file items.txt --sort desc
  ls -1 /usr/bin | pagenav browse`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			params.Bind(cmd)
			if err := params.Validate(); err != nil {
				return err
			}
			if params.Countless {
				return ErrCountRequired
			}

			items, err := readItems(cmd.InOrStdin(), file)
			if err != nil {
				return err
			}
			if items, err = sortItems(items, order, ignoreCase); err != nil {
				return err
			}
			p, err := newPager(params)
			if err != nil {
				return err
			}
			if title == "" {
				title = file
			}
			model, err := tui.NewBrowseModel(p, items, title, params.Page)
			if err != nil {
				return err
			}

			if !styledOutput(cmd) {
				fmt.Fprintln(cmd.OutOrStdout(), model.View())
				return nil
			}

			logger.Debug().Ctx(cmd.Context()).Int("items", len(items)).Msg("starting browse view")
			opts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(cmd.Context())}
			if file == "" || file == "-" {
				opts = append(opts, tea.WithInputTTY())
			}
			_, err = tea.NewProgram(model, opts...).Run()
			return err
		},
	}

	params.AddFlags(cmd)
	cmd.Flags().StringVarP(&file, "file", "f", "", "file to browse (default stdin)")
	cmd.Flags().StringVar(&title, "title", "", "title shown above the items (default file name)")
	cmd.Flags().StringVar(&order, "sort", SortOrderNone, "sort lines: asc or desc (default input order)")
	cmd.Flags().BoolVar(&ignoreCase, "ignore-case", false, "ignore case when sorting")
	return cmd
}

// readItems reads the lines of file, or of stdin when file is empty or "-".
func readItems(stdin io.Reader, file string) ([]string, error) {
	in := stdin
	if file != "" && file != "-" {
		f, err := os.Open(file)
		if err != nil {
			return nil, fmt.Errorf("opening %s: %w", file, err)
		}
		defer f.Close()
		in = f
	}

	var items []string
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		items = append(items, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading items: %w", err)
	}
	return items, nil
}
