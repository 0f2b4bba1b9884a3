package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/pagenav/internal/cli/pageflags"
	"github.com/rshade/pagenav/internal/render"
)

// ErrNavVariant is returned when more than one nav variant is selected.
var ErrNavVariant = errors.New("--js and --combo are mutually exclusive")

// NewNavCmd creates the nav command printing navigation markup.
func NewNavCmd() *cobra.Command {
	params := pageflags.NewParams()
	var (
		js    bool
		combo bool
		opts  render.Options
	)

	cmd := &cobra.Command{
		Use:   "nav",
		Short: "Render the HTML navigation bar of a page",
		Long: `Renders the navigation bar of a page as HTML.

By default a static bar of links is printed. --js prints an element carrying
its series as JSON for client-side assembly; --combo prints prev/next links
around a page number input.`,
		Example: `  pagenav nav --count 1000 --page 7 --url "/items?q=shoes"
  pagenav nav --count 1000 --page 7 --js
  pagenav nav --count 1000 --page 7 --combo --id pager`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if js && combo {
				return ErrNavVariant
			}
			pc, err := newPageContext(cmd, params)
			if err != nil {
				return err
			}

			var html string
			switch {
			case combo:
				pg, cErr := pc.counted()
				if cErr != nil {
					return cErr
				}
				html = pc.pager.ComboNavJS(pg, pc.req, "", opts)
			case js:
				html, err = pc.pager.NavJS(pc.nav, pc.req, "", opts)
			default:
				html, err = pc.pager.NavHTML(pc.nav, pc.req, "", opts)
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), html)
			return nil
		},
	}

	params.AddFlags(cmd)
	cmd.Flags().BoolVar(&js, "js", false, "render the client-side assembled variant")
	cmd.Flags().BoolVar(&combo, "combo", false, "render prev/next links around a page input")
	cmd.Flags().StringVar(&opts.ID, "id", "", "id attribute of the nav element")
	cmd.Flags().StringVar(&opts.LinkExtra, "link-extra", "", "extra attributes added to every link")
	return cmd
}

// NewInfoCmd creates the info command printing the item range line.
func NewInfoCmd() *cobra.Command {
	params := pageflags.NewParams()
	var opts render.Options

	cmd := &cobra.Command{
		Use:   "info",
		Short: "Render the item range info line of a page",
		Example: `  pagenav info --count 1000 --page 7
  pagenav info --count 1 --item-name product --locale de`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			pc, err := newPageContext(cmd, params)
			if err != nil {
				return err
			}
			pg, err := pc.counted()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), pc.pager.Info(pg, "", opts))
			return nil
		},
	}

	params.AddFlags(cmd)
	cmd.Flags().StringVar(&opts.ID, "id", "", "id attribute of the info element")
	cmd.Flags().StringVar(&opts.ItemName, "item-name", "", "literal item name, overrides --i18n-key")
	cmd.Flags().StringVar(&opts.I18nKey, "i18n-key", "", "dictionary key of the item name")
	return cmd
}
