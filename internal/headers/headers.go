// Package headers emits pagination response headers, including an RFC 8288
// Link header, and parses them back for clients.
package headers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/peterhellberg/link"
	"golang.org/x/net/http/httpguts"

	"github.com/rshade/pagenav/internal/links"
	"github.com/rshade/pagenav/internal/pagination"
	"github.com/rshade/pagenav/internal/urlbuilder"
)

// LinkHeader is the name of the Link header. It cannot be remapped.
const LinkHeader = "Link"

// Default header names.
const (
	DefaultPageHeader  = "Current-Page"
	DefaultLimitHeader = "Page-Items"
	DefaultCountHeader = "Total-Count"
	DefaultPagesHeader = "Total-Pages"
)

// ErrInvalidNames is wrapped by every header-name configuration error.
var ErrInvalidNames = errors.New("invalid header names")

// Names maps pagination values to header names. An empty name disables that header.
type Names struct {
	Page  string `yaml:"page"  json:"page"`
	Limit string `yaml:"limit" json:"limit"`
	Count string `yaml:"count" json:"count"`
	Pages string `yaml:"pages" json:"pages"`
}

// DefaultNames returns the standard header names.
func DefaultNames() Names {
	return Names{
		Page:  DefaultPageHeader,
		Limit: DefaultLimitHeader,
		Count: DefaultCountHeader,
		Pages: DefaultPagesHeader,
	}
}

// Validate checks that names are valid HTTP field names, distinct, and not "Link".
func (n Names) Validate() error {
	seen := make(map[string]string, 4)
	for _, entry := range n.entries() {
		if entry.name == "" {
			continue
		}
		if !httpguts.ValidHeaderFieldName(entry.name) {
			return fmt.Errorf("%w: %s header %q is not a valid field name", ErrInvalidNames, entry.field, entry.name)
		}
		canonical := http.CanonicalHeaderKey(entry.name)
		if canonical == LinkHeader {
			return fmt.Errorf("%w: %s header cannot be %q", ErrInvalidNames, entry.field, LinkHeader)
		}
		if other, dup := seen[canonical]; dup {
			return fmt.Errorf("%w: %s and %s both use %q", ErrInvalidNames, other, entry.field, entry.name)
		}
		seen[canonical] = entry.field
	}
	return nil
}

type nameEntry struct {
	field string
	name  string
}

func (n Names) entries() []nameEntry {
	return []nameEntry{
		{field: "page", name: n.Page},
		{field: "limit", name: n.Limit},
		{field: "count", name: n.Count},
		{field: "pages", name: n.Pages},
	}
}

type relPage struct {
	rel  string
	page int
}

// Build returns the pagination headers for nav. template is a URL template
// containing urlbuilder.Placeholder. Totals and the last link are omitted
// when nav does not know them.
func Build(nav pagination.Navigator, template string, names Names) map[string]string {
	hdrs := make(map[string]string, 5)

	rels := []relPage{
		{rel: links.RelFirst, page: 1},
		{rel: links.RelPrev, page: nav.PrevPage()},
		{rel: links.RelNext, page: nav.NextPage()},
	}
	last, known := nav.LastPage()
	if known {
		rels = append(rels, relPage{rel: links.RelLast, page: last})
	}

	parts := make([]string, 0, len(rels))
	for _, r := range rels {
		if r.page == 0 {
			continue
		}
		parts = append(parts, fmt.Sprintf(`<%s>; rel="%s"`, urlbuilder.Fill(template, r.page), r.rel))
	}
	hdrs[LinkHeader] = strings.Join(parts, ", ")

	if names.Page != "" {
		hdrs[names.Page] = strconv.Itoa(nav.CurrentPage())
	}
	if names.Limit != "" {
		hdrs[names.Limit] = strconv.Itoa(nav.PerPage())
	}
	if known {
		if names.Pages != "" {
			hdrs[names.Pages] = strconv.Itoa(last)
		}
		if names.Count != "" {
			count, _ := nav.TotalCount()
			hdrs[names.Count] = strconv.Itoa(count)
		}
	}
	return hdrs
}

// HTTPHeader converts a header map to http.Header.
func HTTPHeader(hdrs map[string]string) http.Header {
	h := make(http.Header, len(hdrs))
	for k, v := range hdrs {
		h.Set(k, v)
	}
	return h
}

// Parsed is the pagination state read back from response headers.
// Zero fields were absent.
type Parsed struct {
	Page  int               `json:"page,omitempty"  yaml:"page,omitempty"`
	Limit int               `json:"limit,omitempty" yaml:"limit,omitempty"`
	Count int               `json:"count,omitempty" yaml:"count,omitempty"`
	Pages int               `json:"pages,omitempty" yaml:"pages,omitempty"`
	First int               `json:"first,omitempty" yaml:"first,omitempty"`
	Prev  int               `json:"prev,omitempty"  yaml:"prev,omitempty"`
	Next  int               `json:"next,omitempty"  yaml:"next,omitempty"`
	Last  int               `json:"last,omitempty"  yaml:"last,omitempty"`
	URLs  map[string]string `json:"urls,omitempty"  yaml:"urls,omitempty"`
}

// Parse reads pagination headers and the Link header. Link targets are
// resolved to page numbers through pageParam.
func Parse(h http.Header, names Names, pageParam string) (Parsed, error) {
	var parsed Parsed
	var err error

	ints := []struct {
		name string
		dst  *int
	}{
		{name: names.Page, dst: &parsed.Page},
		{name: names.Limit, dst: &parsed.Limit},
		{name: names.Count, dst: &parsed.Count},
		{name: names.Pages, dst: &parsed.Pages},
	}
	for _, entry := range ints {
		if entry.name == "" {
			continue
		}
		raw := h.Get(entry.name)
		if raw == "" {
			continue
		}
		if *entry.dst, err = strconv.Atoi(raw); err != nil {
			return Parsed{}, fmt.Errorf("parsing %s header: %w", entry.name, err)
		}
	}

	group := link.ParseHeader(h)
	parsed.URLs = make(map[string]string, len(group))
	pages := map[string]*int{
		links.RelFirst: &parsed.First,
		links.RelPrev:  &parsed.Prev,
		links.RelNext:  &parsed.Next,
		links.RelLast:  &parsed.Last,
	}
	for rel, l := range group {
		parsed.URLs[rel] = l.URI
		dst, ok := pages[rel]
		if !ok {
			continue
		}
		if *dst, err = urlbuilder.PageFromURL(l.URI, pageParam); err != nil {
			return Parsed{}, fmt.Errorf("parsing %s link: %w", rel, err)
		}
	}
	return parsed, nil
}
