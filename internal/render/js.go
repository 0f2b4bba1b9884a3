package render

import (
	"encoding/json"
	"html"
	"strings"

	"github.com/rshade/pagenav/internal/i18n"
	"github.com/rshade/pagenav/internal/links"
	"github.com/rshade/pagenav/internal/pagination"
)

// DataAttribute carries the client-side payload of JS elements.
const DataAttribute = "data-pagenav"

// Kinds of client-side payloads.
const (
	KindNav   = "nav"
	KindCombo = "combo"
)

// JSData is the payload a client script needs to assemble links. Template
// contains the page placeholder; Series holds labels with "gap" markers.
type JSData struct {
	Kind     string   `json:"kind"`
	Template string   `json:"template"`
	Page     int      `json:"page"`
	Pages    int      `json:"pages,omitempty"`
	Series   []string `json:"series,omitempty"`
	Prev     string   `json:"prev,omitempty"`
	Next     string   `json:"next,omitempty"`
	Gap      string   `json:"gap,omitempty"`
}

// Attr encodes d as an escaped attribute value.
func (d JSData) Attr() string {
	//nolint:errchkjson // JSData holds only strings and ints.
	raw, _ := json.Marshal(d)
	return html.EscapeString(string(raw))
}

// NavJS renders an empty nav element whose links are built client side.
func NavJS(nav pagination.Navigator, series []string, template string, labels Labels, opts Options) string {
	pages, _ := nav.LastPage()
	data := JSData{
		Kind:     KindNav,
		Template: template,
		Page:     nav.CurrentPage(),
		Pages:    pages,
		Series:   series,
		Prev:     labels.Prev,
		Next:     labels.Next,
		Gap:      labels.Gap,
	}

	var b strings.Builder
	b.WriteString("<nav")
	writeID(&b, opts.ID)
	b.WriteString(` class="pagenav-nav-js pagination" aria-label="pager" ` + DataAttribute + `="`)
	b.WriteString(data.Attr())
	b.WriteString(`"></nav>`)
	return b.String()
}

// ComboNavJS renders prev and next links around a page number input.
func ComboNavJS(
	p *pagination.Pagination,
	prev, next links.LinkSpec,
	template string,
	tr i18n.Translator,
	locale string,
	opts Options,
) string {
	labels := LabelsFor(tr, locale)
	data := JSData{Kind: KindCombo, Template: template, Page: p.Page, Pages: p.Pages}

	input := `<input type="number" min="1" max="` + itoa(p.Pages) + `" value="` + itoa(p.Page) +
		`" style="padding: 0; text-align: center; width: ` + itoa(len(itoa(p.Pages))+1) + `rem;">`

	var b strings.Builder
	b.WriteString("<nav")
	writeID(&b, opts.ID)
	b.WriteString(` class="pagenav-combo-nav-js pagination" aria-label="pager" ` + DataAttribute + `="`)
	b.WriteString(data.Attr())
	b.WriteString(`">`)
	b.WriteString(edge(prev, labels.Prev, "prev", opts.LinkExtra))
	b.WriteString(` <span class="pagenav-combo-input">`)
	b.WriteString(tr.Translate(locale, KeyComboNav, i18n.Vars{"page_input": input, "pages": p.Pages}))
	b.WriteString(`</span> `)
	b.WriteString(edge(next, labels.Next, "next", opts.LinkExtra))
	b.WriteString(`</nav>`)
	return b.String()
}
