package pagination

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTotalPages(t *testing.T) {
	tests := []struct {
		count int
		limit int
		want  int
	}{
		{count: 0, limit: 20, want: 1},
		{count: 1, limit: 20, want: 1},
		{count: 20, limit: 20, want: 1},
		{count: 21, limit: 20, want: 2},
		{count: 103, limit: 20, want: 6},
		{count: 1000, limit: 20, want: 50},
		{count: 7, limit: 1, want: 7},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, TotalPages(tt.count, tt.limit), "count=%d limit=%d", tt.count, tt.limit)
	}
}

func TestTotalPages_MatchesCeiling(t *testing.T) {
	for limit := 1; limit <= 13; limit++ {
		for count := 0; count <= 200; count++ {
			want := (count + limit - 1) / limit
			if want < 1 {
				want = 1
			}
			require.Equal(t, want, TotalPages(count, limit), "count=%d limit=%d", count, limit)
		}
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name string
		vars Vars
		want Pagination
	}{
		{
			name: "first page",
			vars: Vars{Count: 1000, Page: 1, Limit: 20},
			want: Pagination{
				Count: 1000, Page: 1, Limit: 20, Pages: 50, Last: 50,
				Offset: 0, From: 1, To: 20, Items: 20, Prev: 0, Next: 2, RequestedPage: 1,
			},
		},
		{
			name: "last page",
			vars: Vars{Count: 1000, Page: 50, Limit: 20},
			want: Pagination{
				Count: 1000, Page: 50, Limit: 20, Pages: 50, Last: 50,
				Offset: 980, From: 981, To: 1000, Items: 20, Prev: 49, Next: 0, RequestedPage: 50,
			},
		},
		{
			name: "partial last page",
			vars: Vars{Count: 103, Page: 6, Limit: 20},
			want: Pagination{
				Count: 103, Page: 6, Limit: 20, Pages: 6, Last: 6,
				Offset: 100, From: 101, To: 103, Items: 3, Prev: 5, Next: 0, RequestedPage: 6,
			},
		},
		{
			name: "middle page",
			vars: Vars{Count: 100, Page: 3, Limit: 20},
			want: Pagination{
				Count: 100, Page: 3, Limit: 20, Pages: 5, Last: 5,
				Offset: 40, From: 41, To: 60, Items: 20, Prev: 2, Next: 4, RequestedPage: 3,
			},
		},
		{
			name: "outset shifts offset only",
			vars: Vars{Count: 100, Page: 2, Limit: 10, Outset: 5},
			want: Pagination{
				Count: 100, Page: 2, Limit: 10, Outset: 5, Pages: 10, Last: 10,
				Offset: 15, From: 11, To: 20, Items: 10, Prev: 1, Next: 3, RequestedPage: 2,
			},
		},
		{
			name: "empty collection",
			vars: Vars{Count: 0, Page: 1, Limit: 20},
			want: Pagination{
				Count: 0, Page: 1, Limit: 20, Pages: 1, Last: 1, RequestedPage: 1,
			},
		},
		{
			name: "empty collection clamps requested page",
			vars: Vars{Count: 0, Page: 4, Limit: 20},
			want: Pagination{
				Count: 0, Page: 1, Limit: 20, Pages: 1, Last: 1, RequestedPage: 4,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := New(tt.vars)
			require.NoError(t, err)
			assert.Equal(t, tt.want, *got)
		})
	}
}

func TestNew_RangeErrors(t *testing.T) {
	tests := []struct {
		name string
		vars Vars
	}{
		{name: "page zero", vars: Vars{Count: 100, Page: 0, Limit: 20}},
		{name: "negative page", vars: Vars{Count: 100, Page: -3, Limit: 20}},
		{name: "page zero with last_page mode", vars: Vars{Count: 100, Page: 0, Limit: 20, Overflow: OverflowLastPage}},
		{name: "beyond last page", vars: Vars{Count: 100, Page: 6, Limit: 20}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.vars)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrOutOfRange)

			var rangeErr *RangeError
			require.True(t, errors.As(err, &rangeErr))
			assert.Equal(t, tt.vars.Page, rangeErr.Page)
		})
	}
}

func TestNew_InvalidVars(t *testing.T) {
	tests := []struct {
		name   string
		vars   Vars
		errMsg string
	}{
		{name: "zero limit", vars: Vars{Count: 10, Page: 1, Limit: 0}, errMsg: "limit must be >= 1"},
		{name: "negative count", vars: Vars{Count: -1, Page: 1, Limit: 10}, errMsg: "count cannot be negative"},
		{name: "negative outset", vars: Vars{Count: 1, Page: 1, Limit: 10, Outset: -2}, errMsg: "outset cannot be negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.vars)
			require.ErrorIs(t, err, ErrInvalidVars)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestNew_Overflow(t *testing.T) {
	t.Run("last_page clamps", func(t *testing.T) {
		p, err := New(Vars{Count: 1000, Page: 99, Limit: 20, Overflow: OverflowLastPage})
		require.NoError(t, err)
		assert.Equal(t, 50, p.Page)
		assert.Equal(t, 99, p.RequestedPage)
		assert.True(t, p.Overflowed)
		assert.Equal(t, 981, p.From)
		assert.Equal(t, 1000, p.To)
		assert.Equal(t, 49, p.Prev)
		assert.Equal(t, 0, p.Next)
	})

	t.Run("empty_page keeps requested page", func(t *testing.T) {
		p, err := New(Vars{Count: 1000, Page: 99, Limit: 20, Overflow: OverflowEmptyPage})
		require.NoError(t, err)
		assert.Equal(t, 99, p.Page)
		assert.True(t, p.Overflowed)
		assert.Equal(t, 0, p.From)
		assert.Equal(t, 0, p.To)
		assert.Equal(t, 0, p.Items)
		assert.Equal(t, 50, p.Prev, "prev points back to the last page")
		assert.Equal(t, 0, p.Next)
		assert.Equal(t, 98*20, p.Offset)
	})

	t.Run("in range is not overflowed", func(t *testing.T) {
		p, err := New(Vars{Count: 1000, Page: 50, Limit: 20, Overflow: OverflowEmptyPage})
		require.NoError(t, err)
		assert.False(t, p.Overflowed)
		assert.Equal(t, 1000, p.To)
	})
}

func TestParseOverflowMode(t *testing.T) {
	tests := []struct {
		in      string
		want    OverflowMode
		wantErr bool
	}{
		{in: "", want: OverflowError},
		{in: "exception", want: OverflowError},
		{in: "last_page", want: OverflowLastPage},
		{in: " Empty_Page ", want: OverflowEmptyPage},
		{in: "clamp", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseOverflowMode(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidOverflow)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	assert.Equal(t, "last_page", OverflowLastPage.String())
	assert.Equal(t, "exception", OverflowError.String())
}
