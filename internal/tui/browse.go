// Package tui provides the interactive terminal views of pagenav.
package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rshade/pagenav/internal/links"
	"github.com/rshade/pagenav/internal/pager"
	"github.com/rshade/pagenav/internal/pagination"
	"github.com/rshade/pagenav/internal/series"
)

// BrowseModel pages through a list of items one page at a time.
type BrowseModel struct {
	pager *pager.Pager
	items []string
	title string

	// pg and tokens describe the current page.
	pg     *pagination.Pagination
	tokens []series.Token
	err    error

	keys KeyMap
	help help.Model

	width    int
	height   int
	quitting bool
}

// NewBrowseModel creates a browse model positioned at page.
func NewBrowseModel(p *pager.Pager, items []string, title string, page int) (*BrowseModel, error) {
	m := &BrowseModel{
		pager: p,
		items: items,
		title: title,
		keys:  DefaultKeyMap(),
		help:  help.New(),
	}
	if err := m.goTo(page); err != nil {
		return nil, err
	}
	return m, nil
}

// Page returns the current page.
func (m *BrowseModel) Page() int {
	return m.pg.Page
}

// Pages returns the number of pages.
func (m *BrowseModel) Pages() int {
	return m.pg.Pages
}

// Items returns the items of the current page.
func (m *BrowseModel) Items() []string {
	return pagination.Slice(m.items, m.pg)
}

// Init implements tea.Model.
func (m *BrowseModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}
	return m, nil
}

func (m *BrowseModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Next):
		if m.pg.Next > 0 {
			m.err = m.goTo(m.pg.Next)
		}
	case key.Matches(msg, m.keys.Prev):
		if m.pg.Prev > 0 {
			m.err = m.goTo(m.pg.Prev)
		}
	case key.Matches(msg, m.keys.First):
		m.err = m.goTo(1)
	case key.Matches(msg, m.keys.Last):
		m.err = m.goTo(m.pg.Last)
	}
	return m, nil
}

// goTo recomputes the page context. The previous page is kept on error.
func (m *BrowseModel) goTo(page int) error {
	pg, err := m.pager.Paginate(len(m.items), page)
	if err != nil {
		return err
	}
	tokens, err := m.pager.Series(pg)
	if err != nil {
		return err
	}
	m.pg, m.tokens = pg, tokens
	return nil
}

// View implements tea.Model.
func (m *BrowseModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	if m.title != "" {
		b.WriteString(titleStyle.Render(m.title))
		b.WriteString("\n\n")
	}

	items := m.Items()
	if len(items) == 0 {
		b.WriteString(itemStyle.Render("(no items)"))
		b.WriteString("\n")
	}
	for _, item := range items {
		b.WriteString(itemStyle.Render(item))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(RenderSeries(m.tokens))
	b.WriteString("\n")
	b.WriteString(statusStyle.Render(m.status()))
	b.WriteString("\n")
	if m.err != nil {
		b.WriteString(errorStyle.Render("Error: " + m.err.Error()))
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m *BrowseModel) status() string {
	if m.pg.Count == 0 {
		return "No items"
	}
	return fmt.Sprintf("Page %d of %d · items %d-%d of %d",
		m.pg.Page, m.pg.Pages, m.pg.From, m.pg.To, m.pg.Count)
}

// RenderSeries renders a page series as a single styled line.
func RenderSeries(tokens []series.Token) string {
	parts := make([]string, 0, len(tokens))
	for _, t := range tokens {
		switch t.Kind {
		case series.KindGap:
			parts = append(parts, gapStyle.Render(links.GapLabel))
		case series.KindActive:
			parts = append(parts, activeStyle.Render("["+strconv.Itoa(t.Page)+"]"))
		default:
			parts = append(parts, pageStyle.Render(strconv.Itoa(t.Page)))
		}
	}
	return strings.Join(parts, " ")
}
