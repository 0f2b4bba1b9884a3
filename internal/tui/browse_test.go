package tui

import (
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/pagenav/internal/config"
	"github.com/rshade/pagenav/internal/pager"
	"github.com/rshade/pagenav/internal/pagination"
	"github.com/rshade/pagenav/internal/series"
)

func newBrowse(t *testing.T, count, page int) *BrowseModel {
	t.Helper()
	cfg := config.Default()
	cfg.Limit = 10
	p, err := pager.New(cfg, nil)
	require.NoError(t, err)

	items := make([]string, count)
	for i := range items {
		items[i] = fmt.Sprintf("item-%d", i+1)
	}
	m, err := NewBrowseModel(p, items, "Items", page)
	require.NoError(t, err)
	return m
}

func send(t *testing.T, m *BrowseModel, msg tea.KeyMsg) *BrowseModel {
	t.Helper()
	updated, _ := m.Update(msg)
	bm, ok := updated.(*BrowseModel)
	require.True(t, ok)
	return bm
}

func TestNewBrowseModel_RangeError(t *testing.T) {
	cfg := config.Default()
	p, err := pager.New(cfg, nil)
	require.NoError(t, err)

	_, err = NewBrowseModel(p, []string{"a"}, "", 3)
	var rangeErr *pagination.RangeError
	assert.ErrorAs(t, err, &rangeErr)
}

func TestBrowseModel_Navigation(t *testing.T) {
	tests := []struct {
		name  string
		start int
		keys  []tea.KeyMsg
		want  int
	}{
		{name: "right", start: 1, keys: []tea.KeyMsg{{Type: tea.KeyRight}}, want: 2},
		{name: "l twice", start: 1, keys: []tea.KeyMsg{{Type: tea.KeyRunes, Runes: []rune{'l'}}, {Type: tea.KeyRunes, Runes: []rune{'l'}}}, want: 3},
		{name: "left", start: 3, keys: []tea.KeyMsg{{Type: tea.KeyLeft}}, want: 2},
		{name: "left at first", start: 1, keys: []tea.KeyMsg{{Type: tea.KeyLeft}}, want: 1},
		{name: "right at last", start: 4, keys: []tea.KeyMsg{{Type: tea.KeyRight}}, want: 4},
		{name: "end", start: 1, keys: []tea.KeyMsg{{Type: tea.KeyEnd}}, want: 4},
		{name: "home", start: 4, keys: []tea.KeyMsg{{Type: tea.KeyHome}}, want: 1},
		{name: "page down", start: 2, keys: []tea.KeyMsg{{Type: tea.KeyPgDown}}, want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newBrowse(t, 35, tt.start)
			for _, k := range tt.keys {
				m = send(t, m, k)
			}
			assert.Equal(t, tt.want, m.Page())
			assert.NoError(t, m.err)
		})
	}
}

func TestBrowseModel_Items(t *testing.T) {
	m := newBrowse(t, 35, 1)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnd})

	assert.Equal(t, []string{"item-31", "item-32", "item-33", "item-34", "item-35"}, m.Items())
	assert.Equal(t, 4, m.Pages())
}

func TestBrowseModel_Quit(t *testing.T) {
	m := newBrowse(t, 35, 1)
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.Empty(t, updated.View())

	m = newBrowse(t, 35, 1)
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
}

func TestBrowseModel_View(t *testing.T) {
	m := newBrowse(t, 35, 2)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	view := updated.View()

	assert.Contains(t, view, "Items")
	assert.Contains(t, view, "item-11")
	assert.NotContains(t, view, "item-21")
	assert.Contains(t, view, "[2]")
	assert.Contains(t, view, "Page 2 of 4 · items 11-20 of 35")
}

func TestBrowseModel_Empty(t *testing.T) {
	m := newBrowse(t, 0, 1)
	view := m.View()
	assert.Contains(t, view, "(no items)")
	assert.Contains(t, view, "No items")
}

func TestBrowseModel_HelpToggle(t *testing.T) {
	m := newBrowse(t, 35, 1)
	assert.False(t, m.help.ShowAll)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	assert.True(t, m.help.ShowAll)
}

func TestRenderSeries(t *testing.T) {
	got := RenderSeries([]series.Token{series.Page(1), series.Gap(), series.Active(5), series.Page(6)})
	assert.Contains(t, got, "1")
	assert.Contains(t, got, "…")
	assert.Contains(t, got, "[5]")
}
