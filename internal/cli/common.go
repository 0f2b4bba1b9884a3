package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rshade/pagenav/internal/cli/pageflags"
	"github.com/rshade/pagenav/internal/config"
	"github.com/rshade/pagenav/internal/i18n"
	"github.com/rshade/pagenav/internal/pager"
	"github.com/rshade/pagenav/internal/pagination"
	"github.com/rshade/pagenav/internal/urlbuilder"
)

// ErrCountRequired is returned by commands that need a known total.
var ErrCountRequired = errors.New("this command requires --count and cannot run with --countless")

// pageContext is the per-command pagination state built from the page flags.
type pageContext struct {
	pager  *pager.Pager
	params *pageflags.Params
	req    urlbuilder.Request

	// nav is always set; pg is nil in countless mode.
	nav pagination.Navigator
	pg  *pagination.Pagination
}

// newPager builds a pager from the global configuration with the limit
// override and URL params of params applied.
func newPager(params *pageflags.Params) (*pager.Pager, error) {
	cfg := *config.GetGlobalConfig()
	cfg.Limit = params.EffectiveLimit(cfg.Limit)

	extras, err := params.URLParams(cfg.Limit)
	if err != nil {
		return nil, err
	}
	dict, err := i18n.Load(cfg.LocaleSpecs()...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", config.ErrInvalidConfig, err)
	}
	return pager.New(&cfg, loggingTranslator{next: dict, log: logger}, urlbuilder.WithParams(extras))
}

// newPageContext validates the page flags and computes the page context.
func newPageContext(cmd *cobra.Command, params *pageflags.Params) (*pageContext, error) {
	params.Bind(cmd)
	if err := params.Validate(); err != nil {
		return nil, err
	}

	p, err := newPager(params)
	if err != nil {
		return nil, err
	}
	req, err := params.Request()
	if err != nil {
		return nil, err
	}

	pc := &pageContext{pager: p, params: params, req: req}
	if params.Countless {
		var (
			c    *pagination.Countless
			cErr error
		)
		if params.FetchedSet() {
			c, cErr = p.CountlessFetched(params.Page, params.Fetched)
		} else {
			c, cErr = p.Countless(params.Page, params.HasMore)
		}
		if cErr != nil {
			return nil, cErr
		}
		pc.nav = c
	} else {
		pg, pErr := p.Paginate(params.Count, params.Page)
		if pErr != nil {
			return nil, pErr
		}
		pc.nav, pc.pg = pg, pg
	}

	logger.Debug().Ctx(cmd.Context()).
		Int("page", pc.nav.CurrentPage()).
		Int("limit", pc.nav.PerPage()).
		Bool("countless", params.Countless).
		Msg("page context computed")
	return pc, nil
}

// counted returns the counted pagination or ErrCountRequired.
func (pc *pageContext) counted() (*pagination.Pagination, error) {
	if pc.pg == nil {
		return nil, ErrCountRequired
	}
	return pc.pg, nil
}

// styledOutput reports whether cmd writes to an interactive terminal.
func styledOutput(cmd *cobra.Command) bool {
	return cmd.OutOrStdout() == os.Stdout && isTerminal(os.Stdout)
}
