// Package links turns a page series into link specifications for renderers.
package links

import (
	"strconv"

	"github.com/rshade/pagenav/internal/pagination"
	"github.com/rshade/pagenav/internal/series"
	"github.com/rshade/pagenav/internal/urlbuilder"
)

// GapLabel is the label of disabled gap links.
const GapLabel = "…"

// Link relations.
const (
	RelPrev  = "prev"
	RelNext  = "next"
	RelFirst = "first"
	RelLast  = "last"
)

// LinkSpec is a renderable link. Page is 0 for disabled links (gaps, missing prev/next).
type LinkSpec struct {
	Label  string `json:"label"            yaml:"label"`
	Page   int    `json:"page,omitempty"   yaml:"page,omitempty"`
	URL    string `json:"url,omitempty"    yaml:"url,omitempty"`
	Rel    string `json:"rel,omitempty"    yaml:"rel,omitempty"`
	Active bool   `json:"active,omitempty" yaml:"active,omitempty"`
	Gap    bool   `json:"gap,omitempty"    yaml:"gap,omitempty"`
}

// Disabled reports whether the link has no target page.
func (l LinkSpec) Disabled() bool {
	return l.Page == 0
}

// Labels holds the texts of the prev and next links.
type Labels struct {
	Prev string
	Next string
}

// DefaultLabels are used when no translator is involved.
//
//nolint:gochecknoglobals // Read-only default.
var DefaultLabels = Labels{Prev: "‹ Prev", Next: "Next ›"}

// Format maps a series to link specs. Pages adjacent to the active page get
// the prev/next relation.
func Format(tokens []series.Token, urlFor urlbuilder.URLFunc) []LinkSpec {
	active := 0
	for _, t := range tokens {
		if t.Kind == series.KindActive {
			active = t.Page
			break
		}
	}

	specs := make([]LinkSpec, 0, len(tokens))
	for _, t := range tokens {
		if t.IsGap() {
			specs = append(specs, LinkSpec{Label: GapLabel, Gap: true})
			continue
		}

		spec := LinkSpec{Label: strconv.Itoa(t.Page), Page: t.Page, URL: urlFor(t.Page)}
		switch {
		case t.Kind == series.KindActive:
			spec.Active = true
		case active > 0 && t.Page == active-1:
			spec.Rel = RelPrev
		case active > 0 && t.Page == active+1:
			spec.Rel = RelNext
		}
		specs = append(specs, spec)
	}
	return specs
}

// PrevNext returns the prev and next links of nav. A missing page yields a disabled link.
func PrevNext(nav pagination.Navigator, urlFor urlbuilder.URLFunc, labels Labels) (LinkSpec, LinkSpec) {
	prev := LinkSpec{Label: labels.Prev, Rel: RelPrev}
	if p := nav.PrevPage(); p > 0 {
		prev.Page = p
		prev.URL = urlFor(p)
	}

	next := LinkSpec{Label: labels.Next, Rel: RelNext}
	if n := nav.NextPage(); n > 0 {
		next.Page = n
		next.URL = urlFor(n)
	}
	return prev, next
}

// SeriesLabels returns the series as plain labels for client-side assembly.
// labelFor may be nil, in which case page numbers are used.
func SeriesLabels(tokens []series.Token, labelFor func(page int) string) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		switch {
		case t.IsGap():
			out[i] = series.GapLabel
		case labelFor != nil:
			out[i] = labelFor(t.Page)
		default:
			out[i] = strconv.Itoa(t.Page)
		}
	}
	return out
}
