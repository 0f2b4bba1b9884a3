// Package pageflags holds the page flags shared by pagenav commands.
//
// Two modes are supported:
//   - Counted: --count with --page and an optional --limit
//   - Countless: --countless with --page and either --has-more or --fetched
//
// The modes are mutually exclusive.
package pageflags

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rshade/pagenav/internal/urlbuilder"
)

// Flag defaults.
const (
	DefaultPage = 1
	DefaultURL  = "/"
)

// Validation errors.
var (
	ErrInvalidCount        = errors.New("count cannot be negative")
	ErrInvalidLimit        = errors.New("limit cannot be negative")
	ErrCountWithCountless  = errors.New("--count and --countless are mutually exclusive")
	ErrHasMoreWithoutCount = errors.New("--has-more requires --countless")
	ErrFetchedWithoutCount = errors.New("--fetched requires --countless")
	ErrFetchedWithHasMore  = errors.New("--fetched and --has-more are mutually exclusive")
	ErrInvalidFetched      = errors.New("fetched cannot be negative")
	ErrInvalidParam        = errors.New("param must be key=value")
)

// Params are the parsed page flags.
type Params struct {
	// Count is the total number of items (counted mode).
	Count int

	// Page is the 1-based page. Range checks happen in the pagination core.
	Page int

	// Limit overrides the configured page size when > 0.
	Limit int

	// Countless selects countless mode.
	Countless bool

	// HasMore reports a following page in countless mode.
	HasMore bool

	// Fetched is the number of rows a countless query returned when asked
	// for one more than the limit.
	Fetched int

	// URL is the request URL links are built from.
	URL string

	// Absolute makes URLs include scheme and host.
	Absolute bool

	// Extra are key=value params added to every page URL.
	Extra []string

	// KeepLimit carries the page size into every page URL.
	KeepLimit bool

	countSet   bool
	hasMoreSet bool
	fetchedSet bool
}

// urlExtras are flag values encoded into page URLs.
type urlExtras struct {
	Limit int `url:"limit,omitempty"`
}

// NewParams returns Params with default values.
func NewParams() *Params {
	return &Params{Page: DefaultPage, URL: DefaultURL}
}

// AddFlags registers the page flags on cmd.
func (p *Params) AddFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.IntVar(&p.Count, "count", p.Count, "total number of items")
	f.IntVar(&p.Page, "page", p.Page, "current page (1-based)")
	f.IntVar(&p.Limit, "limit", p.Limit, "items per page (0 = config default)")
	f.BoolVar(&p.Countless, "countless", p.Countless, "paginate without a total count")
	f.BoolVar(&p.HasMore, "has-more", p.HasMore, "a page follows the current one (countless mode)")
	f.IntVar(&p.Fetched, "fetched", p.Fetched, "rows fetched with limit+1 (countless mode)")
	f.StringVar(&p.URL, "url", p.URL, "request URL used to build links")
	f.BoolVar(&p.Absolute, "absolute", p.Absolute, "build absolute URLs")
	f.StringArrayVar(&p.Extra, "param", p.Extra, "key=value param added to page URLs (repeatable)")
	f.BoolVar(&p.KeepLimit, "keep-limit", p.KeepLimit, "add the page size to page URLs as limit")
}

// Bind records which flags were explicitly set on cmd.
func (p *Params) Bind(cmd *cobra.Command) {
	p.countSet = cmd.Flags().Changed("count")
	p.hasMoreSet = cmd.Flags().Changed("has-more")
	p.fetchedSet = cmd.Flags().Changed("fetched")
}

// FetchedSet reports whether --fetched was given.
func (p Params) FetchedSet() bool {
	return p.fetchedSet
}

// Validate checks the flags for consistency.
func (p Params) Validate() error {
	if p.Count < 0 {
		return ErrInvalidCount
	}
	if p.Limit < 0 {
		return ErrInvalidLimit
	}
	if p.Countless && p.countSet {
		return ErrCountWithCountless
	}
	if !p.Countless && (p.HasMore || p.hasMoreSet) {
		return ErrHasMoreWithoutCount
	}
	if p.fetchedSet {
		switch {
		case !p.Countless:
			return ErrFetchedWithoutCount
		case p.HasMore || p.hasMoreSet:
			return ErrFetchedWithHasMore
		case p.Fetched < 0:
			return ErrInvalidFetched
		}
	}
	for _, kv := range p.Extra {
		if key, _, ok := strings.Cut(kv, "="); !ok || key == "" {
			return fmt.Errorf("%w: %q", ErrInvalidParam, kv)
		}
	}
	return nil
}

// EffectiveLimit returns Limit, or configured when Limit is unset.
func (p Params) EffectiveLimit(configured int) int {
	if p.Limit > 0 {
		return p.Limit
	}
	return configured
}

// URLParams returns the params added to every page URL: the page size when
// KeepLimit is set, then each --param in order. limit is the effective page size.
func (p Params) URLParams(limit int) (urlbuilder.Params, error) {
	extras := urlExtras{}
	if p.KeepLimit {
		extras.Limit = limit
	}
	params, err := urlbuilder.ParamsFromStruct(extras)
	if err != nil {
		return nil, err
	}
	for _, kv := range p.Extra {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("%w: %q", ErrInvalidParam, kv)
		}
		params = params.Add(key, value)
	}
	return params, nil
}

// Request parses URL into a link request.
func (p Params) Request() (urlbuilder.Request, error) {
	return urlbuilder.ParseRequest(p.URL)
}
