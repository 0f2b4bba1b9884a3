package pagination_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/pagenav/internal/pagination"
)

func TestSlice(t *testing.T) {
	items := make([]int, 45)
	for i := range items {
		items[i] = i + 1
	}

	tests := []struct {
		name string
		page int
		want []int
	}{
		{name: "first page", page: 1, want: items[0:20]},
		{name: "last partial page", page: 3, want: []int{41, 42, 43, 44, 45}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := pagination.New(pagination.Vars{Count: len(items), Page: tt.page, Limit: 20})
			require.NoError(t, err)
			assert.Equal(t, tt.want, pagination.Slice(items, p))
		})
	}

	t.Run("empty listing", func(t *testing.T) {
		p, err := pagination.New(pagination.Vars{Count: 0, Page: 1, Limit: 20})
		require.NoError(t, err)
		assert.Empty(t, pagination.Slice([]string{}, p))
	})

	t.Run("empty overflow page", func(t *testing.T) {
		p, err := pagination.New(pagination.Vars{Count: 45, Page: 9, Limit: 20, Overflow: pagination.OverflowEmptyPage})
		require.NoError(t, err)
		assert.Empty(t, pagination.Slice(items, p))
	})

	t.Run("countless", func(t *testing.T) {
		c, err := pagination.NewCountlessFetched(2, 10, 0, 11)
		require.NoError(t, err)
		assert.Equal(t, items[10:20], pagination.Slice(items, c))
	})
}
