package pagination_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/pagenav/internal/pagination"
)

func TestCountless(t *testing.T) {
	t.Run("first page with more", func(t *testing.T) {
		c, err := pagination.NewCountless(1, 20, 0, true)
		require.NoError(t, err)
		assert.Equal(t, 0, c.Prev)
		assert.Equal(t, 2, c.Next)
		assert.Equal(t, 1, c.From)
		assert.Equal(t, 20, c.To)
	})

	t.Run("page without more", func(t *testing.T) {
		c, err := pagination.NewCountless(3, 20, 0, false)
		require.NoError(t, err)
		assert.Equal(t, 2, c.Prev)
		assert.Equal(t, 0, c.Next)
		assert.Equal(t, 40, c.Offset)
		assert.Equal(t, 0, c.Items, "items unknown without a fetch count")
	})

	t.Run("outset", func(t *testing.T) {
		c, err := pagination.NewCountless(2, 10, 3, true)
		require.NoError(t, err)
		assert.Equal(t, 13, c.Offset)
		assert.Equal(t, 11, c.From)
	})

	t.Run("invalid page", func(t *testing.T) {
		_, err := pagination.NewCountless(0, 20, 0, true)
		assert.ErrorIs(t, err, pagination.ErrOutOfRange)
	})

	t.Run("invalid limit", func(t *testing.T) {
		_, err := pagination.NewCountless(1, 0, 0, true)
		assert.ErrorIs(t, err, pagination.ErrInvalidVars)
	})
}

func TestCountlessFetched(t *testing.T) {
	tests := []struct {
		name     string
		page     int
		fetched  int
		wantNext int
		wantFrom int
		wantTo   int
		wantMore bool
	}{
		{name: "extra row present", page: 1, fetched: 21, wantNext: 2, wantFrom: 1, wantTo: 20, wantMore: true},
		{name: "exactly full page", page: 2, fetched: 20, wantNext: 0, wantFrom: 21, wantTo: 40},
		{name: "partial page", page: 3, fetched: 7, wantNext: 0, wantFrom: 41, wantTo: 47},
		{name: "empty first page", page: 1, fetched: 0, wantNext: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := pagination.NewCountlessFetched(tt.page, 20, 0, tt.fetched)
			require.NoError(t, err)
			assert.Equal(t, tt.wantMore, c.HasMore)
			assert.Equal(t, tt.wantNext, c.Next)
			assert.Equal(t, tt.wantFrom, c.From)
			assert.Equal(t, tt.wantTo, c.To)
		})
	}

	t.Run("empty page after the first is out of range", func(t *testing.T) {
		_, err := pagination.NewCountlessFetched(4, 20, 0, 0)
		assert.ErrorIs(t, err, pagination.ErrOutOfRange)
	})
}

func TestFetchLimitAndHasMore(t *testing.T) {
	assert.Equal(t, 21, pagination.FetchLimit(20))
	assert.True(t, pagination.HasMore(21, 20))
	assert.False(t, pagination.HasMore(20, 20))
}

func TestNewMeta(t *testing.T) {
	t.Run("counted", func(t *testing.T) {
		p, err := pagination.New(pagination.Vars{Count: 25, Page: 2, Limit: 10})
		require.NoError(t, err)

		assert.Equal(t, pagination.Meta{
			CurrentPage: 2,
			PageSize:    10,
			TotalPages:  3,
			TotalItems:  25,
			From:        11,
			To:          20,
			PrevPage:    1,
			NextPage:    3,
			HasPrevious: true,
			HasNext:     true,
		}, pagination.NewMeta(p))
	})

	t.Run("countless", func(t *testing.T) {
		c, err := pagination.NewCountless(1, 10, 0, true)
		require.NoError(t, err)

		meta := pagination.NewMeta(c)
		assert.True(t, meta.Countless)
		assert.Zero(t, meta.TotalPages)
		assert.Zero(t, meta.TotalItems)
		assert.True(t, meta.HasNext)
		assert.False(t, meta.HasPrevious)
	})
}
