package render_test

import (
	"encoding/json"
	"html"
	"regexp"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/pagenav/internal/i18n"
	"github.com/rshade/pagenav/internal/links"
	"github.com/rshade/pagenav/internal/pagination"
	"github.com/rshade/pagenav/internal/render"
	"github.com/rshade/pagenav/internal/series"
	"github.com/rshade/pagenav/internal/urlbuilder"
)

func urlFor(page int) string {
	return "/foo?page=" + strconv.Itoa(page)
}

func english(t *testing.T) *i18n.Dictionary {
	t.Helper()
	dict, err := i18n.Load()
	require.NoError(t, err)
	return dict
}

// products adds a custom item name entry on top of a dictionary.
type products struct {
	*i18n.Dictionary
}

func (p products) Translate(locale, key string, vars i18n.Vars) string {
	if key == "pagenav.info.product" {
		if vars["count"] == 1 {
			return "Product"
		}
		return "Products"
	}
	return p.Dictionary.Translate(locale, key, vars)
}

func paginate(t *testing.T, count, page int) *pagination.Pagination {
	t.Helper()
	p, err := pagination.New(pagination.Vars{Count: count, Page: page, Limit: 20})
	require.NoError(t, err)
	return p
}

func TestInfo(t *testing.T) {
	dict := english(t)

	tests := []struct {
		name  string
		count int
		page  int
		opts  render.Options
		tr    i18n.Translator
		want  string
	}{
		{name: "no items", count: 0, page: 1, want: `<span class="pagenav-info">No items found</span>`},
		{name: "single item", count: 1, page: 1, want: `<span class="pagenav-info">Displaying <b>1</b> item</span>`},
		{name: "single page", count: 13, page: 1, want: `<span class="pagenav-info">Displaying <b>13</b> items</span>`},
		{
			name:  "multiple pages",
			count: 100,
			page:  3,
			want:  `<span class="pagenav-info">Displaying items <b>41-60</b> of <b>100</b> in total</span>`,
		},
		{
			name:  "custom key none",
			count: 0,
			page:  1,
			opts:  render.Options{I18nKey: "pagenav.info.product"},
			tr:    products{dict},
			want:  `<span class="pagenav-info">No Products found</span>`,
		},
		{
			name:  "custom key one",
			count: 1,
			page:  1,
			opts:  render.Options{I18nKey: "pagenav.info.product"},
			tr:    products{dict},
			want:  `<span class="pagenav-info">Displaying <b>1</b> Product</span>`,
		},
		{
			name:  "custom key many",
			count: 100,
			page:  3,
			opts:  render.Options{I18nKey: "pagenav.info.product"},
			tr:    products{dict},
			want:  `<span class="pagenav-info">Displaying Products <b>41-60</b> of <b>100</b> in total</span>`,
		},
		{
			name:  "item name and id",
			count: 13,
			page:  1,
			opts:  render.Options{ID: "pagenav-info", ItemName: "Widgets"},
			want:  `<span id="pagenav-info" class="pagenav-info">Displaying <b>13</b> Widgets</span>`,
		},
		{
			name:  "item name is escaped",
			count: 0,
			page:  1,
			opts:  render.Options{ItemName: "<i>x</i>"},
			want:  `<span class="pagenav-info">No &lt;i&gt;x&lt;/i&gt; found</span>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := tt.tr
			if tr == nil {
				tr = dict
			}
			got := render.Info(paginate(t, tt.count, tt.page), tr, "en", tt.opts)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestInfo_Locale(t *testing.T) {
	dict, err := i18n.Load(i18n.LocaleSpec{Locale: "en"}, i18n.LocaleSpec{Locale: "de"})
	require.NoError(t, err)

	got := render.InfoText(paginate(t, 1, 1), dict, "de", render.Options{})
	assert.Contains(t, got, "Eintrag")
}

func TestNav_FirstPage(t *testing.T) {
	p, err := pagination.New(pagination.Vars{Count: 103, Page: 1, Limit: 20})
	require.NoError(t, err)
	tokens, err := series.Build(p.Page, p.Pages, series.DefaultSize)
	require.NoError(t, err)

	prev, next := links.PrevNext(p, urlFor, links.DefaultLabels)
	got := render.Nav(links.Format(tokens, urlFor), prev, next, render.LabelsFor(english(t), "en"), render.Options{})

	want := `<nav class="pagenav-nav pagination" aria-label="pager">` +
		`<span class="page prev disabled">&lsaquo;&nbsp;Prev</span> ` +
		`<span class="page active">1</span> ` +
		`<span class="page"><a href="/foo?page=2" rel="next">2</a></span> ` +
		`<span class="page"><a href="/foo?page=3">3</a></span> ` +
		`<span class="page"><a href="/foo?page=4">4</a></span> ` +
		`<span class="page gap">&hellip;</span> ` +
		`<span class="page"><a href="/foo?page=6">6</a></span> ` +
		`<span class="page next"><a href="/foo?page=2" rel="next">Next&nbsp;&rsaquo;</a></span>` +
		`</nav>`
	assert.Equal(t, want, got)
}

func TestNav_LinkExtraAndID(t *testing.T) {
	p, err := pagination.New(pagination.Vars{Count: 103, Page: 6, Limit: 20})
	require.NoError(t, err)
	tokens, err := series.Build(p.Page, p.Pages, series.DefaultSize)
	require.NoError(t, err)

	amp := func(page int) string { return urlFor(page) + "&a=1" }
	prev, next := links.PrevNext(p, amp, links.DefaultLabels)
	got := render.Nav(links.Format(tokens, amp), prev, next, render.LabelsFor(english(t), "en"),
		render.Options{ID: "test-nav-id", LinkExtra: `data-remote="true"`})

	assert.Contains(t, got, `<nav id="test-nav-id" class="pagenav-nav pagination"`)
	assert.Contains(t, got, `<a href="/foo?page=5&amp;a=1" data-remote="true" rel="prev">`)
	assert.Contains(t, got, `<span class="page next disabled">Next&nbsp;&rsaquo;</span>`)
	assert.Contains(t, got, `<span class="page active">6</span>`)
}

var dataAttr = regexp.MustCompile(`data-pagenav="([^"]*)"`)

func decode(t *testing.T, markup string) render.JSData {
	t.Helper()
	m := dataAttr.FindStringSubmatch(markup)
	require.Len(t, m, 2, "missing data attribute in %s", markup)

	var data render.JSData
	require.NoError(t, json.Unmarshal([]byte(html.UnescapeString(m[1])), &data))
	return data
}

func TestNavJS(t *testing.T) {
	p, err := pagination.New(pagination.Vars{Count: 1000, Page: 20, Limit: 20})
	require.NoError(t, err)
	tokens, err := series.Build(p.Page, p.Pages, series.DefaultSize)
	require.NoError(t, err)

	template := "/foo?page=" + urlbuilder.Placeholder + "&q=a%26b"
	got := render.NavJS(p, links.SeriesLabels(tokens, nil), template, render.LabelsFor(english(t), "en"),
		render.Options{ID: "js"})

	assert.Contains(t, got, `<nav id="js" class="pagenav-nav-js pagination"`)
	data := decode(t, got)
	assert.Equal(t, render.JSData{
		Kind:     render.KindNav,
		Template: template,
		Page:     20,
		Pages:    50,
		Series:   []string{"1", "gap", "17", "18", "19", "20", "21", "22", "23", "gap", "50"},
		Prev:     "&lsaquo;&nbsp;Prev",
		Next:     "Next&nbsp;&rsaquo;",
		Gap:      "&hellip;",
	}, data)
}

func TestNavJS_Countless(t *testing.T) {
	c, err := pagination.NewCountless(2, 10, 0, true)
	require.NoError(t, err)

	data := decode(t, render.NavJS(c, nil, "/x?page="+urlbuilder.Placeholder, render.Labels{}, render.Options{}))
	assert.Equal(t, 2, data.Page)
	assert.Zero(t, data.Pages)
}

func TestComboNavJS(t *testing.T) {
	dict := english(t)
	p, err := pagination.New(pagination.Vars{Count: 103, Page: 3, Limit: 20})
	require.NoError(t, err)

	template := "/foo?page=" + urlbuilder.Placeholder
	prev, next := links.PrevNext(p, urlFor, links.DefaultLabels)
	got := render.ComboNavJS(p, prev, next, template, dict, "en", render.Options{})

	assert.Contains(t, got, `<span class="page prev"><a href="/foo?page=2" rel="prev">&lsaquo;&nbsp;Prev</a></span>`)
	assert.Contains(t, got, `Page <input type="number" min="1" max="6" value="3"`)
	assert.Contains(t, got, `> of 6</span>`)
	assert.Contains(t, got, `<a href="/foo?page=4" rel="next">`)

	data := decode(t, got)
	assert.Equal(t, render.KindCombo, data.Kind)
	assert.Equal(t, 3, data.Page)
	assert.Equal(t, 6, data.Pages)
	assert.Equal(t, template, data.Template)
}
