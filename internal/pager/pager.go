// Package pager ties the pagination packages together behind one value built
// from a validated configuration. A Pager is immutable and safe for
// concurrent use; every method works on per-request arguments only.
package pager

import (
	"fmt"

	"github.com/rshade/pagenav/internal/config"
	"github.com/rshade/pagenav/internal/headers"
	"github.com/rshade/pagenav/internal/i18n"
	"github.com/rshade/pagenav/internal/links"
	"github.com/rshade/pagenav/internal/pagination"
	"github.com/rshade/pagenav/internal/render"
	"github.com/rshade/pagenav/internal/series"
	"github.com/rshade/pagenav/internal/urlbuilder"
)

// Pager computes pagination and its renderings with a fixed configuration.
type Pager struct {
	limit    int
	outset   int
	overflow pagination.OverflowMode
	locale   string
	names    headers.Names
	series   *series.Builder
	urls     *urlbuilder.Builder
	tr       i18n.Translator
}

// New compiles cfg. A nil tr loads the dictionaries cfg names. Extra URL
// options are applied after the configured page param and fragment.
func New(cfg *config.Config, tr i18n.Translator, opts ...urlbuilder.Option) (*Pager, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	steps, err := cfg.SeriesSteps()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", config.ErrInvalidConfig, err)
	}
	builder, err := series.New(steps)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", config.ErrInvalidConfig, err)
	}
	overflow, err := cfg.OverflowMode()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", config.ErrInvalidConfig, err)
	}

	urlOpts := []urlbuilder.Option{urlbuilder.WithPageParam(cfg.PageParam)}
	if cfg.Fragment != "" {
		urlOpts = append(urlOpts, urlbuilder.WithFragment(cfg.Fragment))
	}
	urls, err := urlbuilder.New(append(urlOpts, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", config.ErrInvalidConfig, err)
	}

	if tr == nil {
		dict, loadErr := i18n.Load(cfg.LocaleSpecs()...)
		if loadErr != nil {
			return nil, fmt.Errorf("%w: %w", config.ErrInvalidConfig, loadErr)
		}
		tr = dict
	}

	logger := config.GetLogger()
	logger.Debug().
		Int("limit", cfg.Limit).
		Str("page_param", cfg.PageParam).
		Str("overflow", cfg.Overflow).
		Str("locale", cfg.Locale).
		Msg("pager configured")

	return &Pager{
		limit:    cfg.Limit,
		outset:   cfg.Outset,
		overflow: overflow,
		locale:   cfg.Locale,
		names:    cfg.HeaderNames(),
		series:   builder,
		urls:     urls,
		tr:       tr,
	}, nil
}

// Translator returns the translator used for labels and info lines.
func (p *Pager) Translator() i18n.Translator {
	return p.tr
}

// Limit returns the configured page size.
func (p *Pager) Limit() int {
	return p.limit
}

// Paginate computes the page context of page over count items.
func (p *Pager) Paginate(count, page int) (*pagination.Pagination, error) {
	return pagination.New(pagination.Vars{
		Count:    count,
		Page:     page,
		Limit:    p.limit,
		Outset:   p.outset,
		Overflow: p.overflow,
	})
}

// Countless computes a page context without a total. hasMore reports
// whether a following page exists.
func (p *Pager) Countless(page int, hasMore bool) (*pagination.Countless, error) {
	return pagination.NewCountless(page, p.limit, p.outset, hasMore)
}

// CountlessFetched computes a page context without a total from the number
// of rows fetched with pagination.FetchLimit(Limit()).
func (p *Pager) CountlessFetched(page, fetched int) (*pagination.Countless, error) {
	return pagination.NewCountlessFetched(page, p.limit, p.outset, fetched)
}

// Series returns the page series of nav. Without a known total the series
// ends at the next page. An empty overflow page gets the series of the last
// page with no active entry.
func (p *Pager) Series(nav pagination.Navigator) ([]series.Token, error) {
	page, pages := nav.CurrentPage(), knownPages(nav)
	if page <= pages {
		return p.series.Build(page, pages)
	}

	tokens, err := p.series.Build(pages, pages)
	if err != nil {
		return nil, err
	}
	for i, t := range tokens {
		if t.Kind == series.KindActive {
			tokens[i] = series.Page(t.Page)
		}
	}
	return tokens, nil
}

func knownPages(nav pagination.Navigator) int {
	if last, ok := nav.LastPage(); ok {
		return last
	}
	if next := nav.NextPage(); next > 0 {
		return next
	}
	return nav.CurrentPage()
}

// URL returns the URL of page for req.
func (p *Pager) URL(req urlbuilder.Request, page int, absolute bool) string {
	return p.urls.URL(req, page, absolute)
}

// URLs returns the URL of every known page of nav, first page first.
func (p *Pager) URLs(nav pagination.Navigator, req urlbuilder.Request, absolute bool) []string {
	urlFor := p.urls.Func(req, absolute)
	pages := knownPages(nav)
	out := make([]string, pages)
	for i := range out {
		out[i] = urlFor(i + 1)
	}
	return out
}

// Links formats the series of nav into link specs.
func (p *Pager) Links(nav pagination.Navigator, req urlbuilder.Request) ([]links.LinkSpec, error) {
	tokens, err := p.Series(nav)
	if err != nil {
		return nil, err
	}
	return links.Format(tokens, p.urls.Func(req, false)), nil
}

// Headers returns the pagination response headers of nav with absolute links.
func (p *Pager) Headers(nav pagination.Navigator, req urlbuilder.Request) map[string]string {
	return headers.Build(nav, p.urls.Template(req, true), p.names)
}

// Meta returns the serialisable summary of nav.
func (p *Pager) Meta(nav pagination.Navigator) pagination.Meta {
	return pagination.NewMeta(nav)
}

func (p *Pager) resolve(locale string) string {
	if locale == "" {
		return p.locale
	}
	return locale
}

// Info renders the info line of pg.
func (p *Pager) Info(pg *pagination.Pagination, locale string, opts render.Options) string {
	return render.Info(pg, p.tr, p.resolve(locale), opts)
}

// NavHTML renders the static navigation bar of nav.
func (p *Pager) NavHTML(nav pagination.Navigator, req urlbuilder.Request, locale string, opts render.Options) (string, error) {
	items, err := p.Links(nav, req)
	if err != nil {
		return "", err
	}
	labels := render.LabelsFor(p.tr, p.resolve(locale))
	prev, next := links.PrevNext(nav, p.urls.Func(req, false), links.Labels{Prev: labels.Prev, Next: labels.Next})
	return render.Nav(items, prev, next, labels, opts), nil
}

// NavJS renders a navigation element assembled client side.
func (p *Pager) NavJS(nav pagination.Navigator, req urlbuilder.Request, locale string, opts render.Options) (string, error) {
	tokens, err := p.Series(nav)
	if err != nil {
		return "", err
	}
	labels := render.LabelsFor(p.tr, p.resolve(locale))
	return render.NavJS(nav, links.SeriesLabels(tokens, nil), p.urls.Template(req, false), labels, opts), nil
}

// ComboNavJS renders the prev/next links around a page input.
func (p *Pager) ComboNavJS(pg *pagination.Pagination, req urlbuilder.Request, locale string, opts render.Options) string {
	locale = p.resolve(locale)
	labels := render.LabelsFor(p.tr, locale)
	prev, next := links.PrevNext(pg, p.urls.Func(req, false), links.Labels{Prev: labels.Prev, Next: labels.Next})
	return render.ComboNavJS(pg, prev, next, p.urls.Template(req, false), p.tr, locale, opts)
}
