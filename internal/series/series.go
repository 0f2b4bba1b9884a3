// Package series builds the gapped sequence of page tokens shown as navigation links.
package series

import (
	"sort"
	"strconv"

	"github.com/rshade/pagenav/internal/pagination"
)

// Kind tags a Token.
type Kind int

const (
	// KindPage is a linkable page.
	KindPage Kind = iota
	// KindGap stands for an elided range of pages.
	KindGap
	// KindActive is the current page.
	KindActive
)

// GapLabel is the text form of a gap token.
const GapLabel = "gap"

// Token is one element of a series. Page is 0 for gaps.
type Token struct {
	Kind Kind
	Page int
}

// Page returns a KindPage token.
func Page(n int) Token { return Token{Kind: KindPage, Page: n} }

// Active returns a KindActive token.
func Active(n int) Token { return Token{Kind: KindActive, Page: n} }

// Gap returns a KindGap token.
func Gap() Token { return Token{Kind: KindGap} }

// IsGap reports whether the token is a gap.
func (t Token) IsGap() bool { return t.Kind == KindGap }

func (t Token) String() string {
	if t.Kind == KindGap {
		return GapLabel
	}
	return strconv.Itoa(t.Page)
}

// Builder builds series from a validated Steps configuration.
type Builder struct {
	steps Steps
}

// New validates steps once; Build never fails because of configuration.
func New(steps Steps) (*Builder, error) {
	if len(steps) == 0 {
		steps = DefaultSteps()
	}
	if err := steps.Validate(); err != nil {
		return nil, err
	}
	return &Builder{steps: steps}, nil
}

// Steps returns the builder's breakpoints.
func (b *Builder) Steps() Steps {
	return b.steps
}

// Build returns the series for page out of pages using the size selected by pages.
func (b *Builder) Build(page, pages int) ([]Token, error) {
	return Build(page, pages, b.steps.SizeFor(pages))
}

// window is an inclusive range of page numbers.
type window struct {
	start int
	end   int
}

// Build returns the series for page out of pages with the given size.
// Head, middle and tail windows are merged; a single Gap separates merged
// windows whose numeric distance is 2 or more, and the current page is Active.
func Build(page, pages int, size Size) ([]Token, error) {
	if pages < 1 || page < 1 || page > pages {
		return nil, &pagination.RangeError{Page: page, Pages: max(pages, 0)}
	}
	if reason := size.validate(); reason != "" {
		return nil, &ConfigError{Reason: reason}
	}
	if pages == 1 {
		return []Token{Active(1)}, nil
	}

	windows := []window{
		{start: 1, end: min(size.Head, pages)},
		{start: max(page-size.Before, 1), end: min(page+size.After, pages)},
		{start: max(pages-size.Tail+1, 1), end: pages},
	}
	sort.Slice(windows, func(i, j int) bool { return windows[i].start < windows[j].start })

	merged := windows[:1]
	for _, w := range windows[1:] {
		last := &merged[len(merged)-1]
		if w.start <= last.end+1 {
			last.end = max(last.end, w.end)
			continue
		}
		merged = append(merged, w)
	}

	capacity := len(merged) - 1
	for _, w := range merged {
		capacity += w.end - w.start + 1
	}

	tokens := make([]Token, 0, capacity)
	for i, w := range merged {
		if i > 0 {
			tokens = append(tokens, Gap())
		}
		for n := w.start; n <= w.end; n++ {
			if n == page {
				tokens = append(tokens, Active(n))
				continue
			}
			tokens = append(tokens, Page(n))
		}
	}
	return tokens, nil
}

// Pages returns the page numbers of a series, skipping gaps.
func Pages(tokens []Token) []int {
	pages := make([]int, 0, len(tokens))
	for _, t := range tokens {
		if !t.IsGap() {
			pages = append(pages, t.Page)
		}
	}
	return pages
}

// Strings returns the text form of each token.
func Strings(tokens []Token) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = t.String()
	}
	return out
}
