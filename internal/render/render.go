// Package render turns link specs and pagination state into HTML fragments.
//
// Labels coming from dictionaries are trusted markup (they carry entities such
// as &lsaquo;). URLs, ids and caller-supplied item names are escaped.
package render

import (
	"html"
	"strconv"
	"strings"

	"github.com/rshade/pagenav/internal/i18n"
	"github.com/rshade/pagenav/internal/links"
	"github.com/rshade/pagenav/internal/pagination"
)

// Dictionary keys used by the renderers.
const (
	KeyItemName      = "pagenav.item_name"
	KeyPrev          = "pagenav.nav.prev"
	KeyNext          = "pagenav.nav.next"
	KeyGap           = "pagenav.nav.gap"
	KeyNoItems       = "pagenav.info.no_items"
	KeySinglePage    = "pagenav.info.single_page"
	KeyMultiplePages = "pagenav.info.multiple_pages"
	KeyComboNav      = "pagenav.combo_nav_js"
)

// Options tune a rendered element.
type Options struct {
	// ID is set as the element id when not empty.
	ID string

	// LinkExtra is raw attribute text added to every anchor.
	LinkExtra string

	// ItemName replaces the translated item name in the info line.
	ItemName string

	// I18nKey selects the item name entry. Defaults to KeyItemName.
	I18nKey string
}

// Labels are the markup of the prev, next and gap elements.
type Labels struct {
	Prev string
	Next string
	Gap  string
}

// LabelsFor reads the navigation labels from tr.
func LabelsFor(tr i18n.Translator, locale string) Labels {
	return Labels{
		Prev: tr.Translate(locale, KeyPrev, nil),
		Next: tr.Translate(locale, KeyNext, nil),
		Gap:  tr.Translate(locale, KeyGap, nil),
	}
}

// Nav renders a static navigation bar.
func Nav(items []links.LinkSpec, prev, next links.LinkSpec, labels Labels, opts Options) string {
	parts := make([]string, 0, len(items)+2)
	parts = append(parts, edge(prev, labels.Prev, "prev", opts.LinkExtra))
	for _, item := range items {
		switch {
		case item.Gap:
			parts = append(parts, `<span class="page gap">`+labels.Gap+`</span>`)
		case item.Active:
			parts = append(parts, `<span class="page active">`+html.EscapeString(item.Label)+`</span>`)
		default:
			parts = append(parts, `<span class="page">`+
				anchor(item.URL, opts.LinkExtra, item.Rel, html.EscapeString(item.Label))+`</span>`)
		}
	}
	parts = append(parts, edge(next, labels.Next, "next", opts.LinkExtra))

	var b strings.Builder
	b.WriteString("<nav")
	writeID(&b, opts.ID)
	b.WriteString(` class="pagenav-nav pagination" aria-label="pager">`)
	b.WriteString(strings.Join(parts, " "))
	b.WriteString(`</nav>`)
	return b.String()
}

func edge(spec links.LinkSpec, label, class, extra string) string {
	if spec.Disabled() {
		return `<span class="page ` + class + ` disabled">` + label + `</span>`
	}
	return `<span class="page ` + class + `">` + anchor(spec.URL, extra, spec.Rel, label) + `</span>`
}

func anchor(url, extra, rel, inner string) string {
	var b strings.Builder
	b.WriteString(`<a href="`)
	b.WriteString(html.EscapeString(url))
	b.WriteString(`"`)
	if extra != "" {
		b.WriteString(" " + extra)
	}
	if rel != "" {
		b.WriteString(` rel="` + rel + `"`)
	}
	b.WriteString(">")
	b.WriteString(inner)
	b.WriteString("</a>")
	return b.String()
}

func writeID(b *strings.Builder, id string) {
	if id == "" {
		return
	}
	b.WriteString(` id="`)
	b.WriteString(html.EscapeString(id))
	b.WriteString(`"`)
}

// InfoText returns the unwrapped info line for p, such as
// "Displaying items <b>41-60</b> of <b>100</b> in total".
func InfoText(p *pagination.Pagination, tr i18n.Translator, locale string, opts Options) string {
	key := KeyMultiplePages
	switch {
	case p.Count == 0:
		key = KeyNoItems
	case p.Pages == 1:
		key = KeySinglePage
	}

	itemName := html.EscapeString(opts.ItemName)
	if itemName == "" {
		itemKey := opts.I18nKey
		if itemKey == "" {
			itemKey = KeyItemName
		}
		itemName = tr.Translate(locale, itemKey, i18n.Vars{"count": p.Count})
	}

	return tr.Translate(locale, key, i18n.Vars{
		"item_name": itemName,
		"count":     p.Count,
		"from":      p.From,
		"to":        p.To,
	})
}

// Info renders the info line wrapped in a span.
func Info(p *pagination.Pagination, tr i18n.Translator, locale string, opts Options) string {
	var b strings.Builder
	b.WriteString("<span")
	writeID(&b, opts.ID)
	b.WriteString(` class="pagenav-info">`)
	b.WriteString(InfoText(p, tr, locale, opts))
	b.WriteString("</span>")
	return b.String()
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
