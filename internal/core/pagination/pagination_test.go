package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intRange(n int) []int {
	items := make([]int, n)
	for i := range items {
		items[i] = i
	}
	return items
}

// TestPaginate_PageCount verifies ceil(M/N) pages with the last page holding the
// remainder
func TestPaginate_PageCount(t *testing.T) {
	cases := []struct {
		name          string
		total         int
		pageSize      int
		wantPages     int
		wantLastCount int
	}{
		{"exact multiple", 20, 10, 2, 10},
		{"with remainder", 13, 10, 2, 3},
		{"single partial page", 3, 10, 1, 3},
		{"single full page", 10, 10, 1, 10},
		{"empty set", 0, 10, 1, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			first := Paginate(intRange(tc.total), 1, tc.pageSize)
			assert.Equal(t, tc.wantPages, first.TotalPages)
			assert.Equal(t, tc.total, first.TotalItems)

			last := Paginate(intRange(tc.total), tc.wantPages, tc.pageSize)
			assert.Len(t, last.Items, tc.wantLastCount)
			assert.False(t, last.HasNext)
		})
	}
}

func TestPaginate_MiddlePage(t *testing.T) {
	page := Paginate(intRange(25), 2, 10)

	require.Len(t, page.Items, 10)
	assert.Equal(t, 10, page.Items[0])
	assert.Equal(t, 19, page.Items[9])
	assert.Equal(t, 2, page.Number)
	assert.Equal(t, 3, page.TotalPages)
	assert.True(t, page.HasNext)
	assert.True(t, page.HasPrevious)
}

// TestPaginate_ClampsOutOfRange mirrors the conventional paginator fallback:
// out-of-range requests return a valid page instead of failing
func TestPaginate_ClampsOutOfRange(t *testing.T) {
	items := intRange(13)

	beyond := Paginate(items, 99, 10)
	assert.Equal(t, 2, beyond.Number)
	assert.Len(t, beyond.Items, 3)

	zero := Paginate(items, 0, 10)
	assert.Equal(t, 1, zero.Number)
	assert.Len(t, zero.Items, 10)

	negative := Paginate(items, -5, 10)
	assert.Equal(t, 1, negative.Number)
}

// TestPaginate_Deterministic verifies the same inputs always produce the same page
func TestPaginate_Deterministic(t *testing.T) {
	items := intRange(42)

	first := Paginate(items, 3, 10)
	second := Paginate(items, 3, 10)

	assert.Equal(t, first, second)
}

func TestParsePageNumber(t *testing.T) {
	assert.Equal(t, 1, ParsePageNumber(""))
	assert.Equal(t, 1, ParsePageNumber("abc"))
	assert.Equal(t, 1, ParsePageNumber("0"))
	assert.Equal(t, 1, ParsePageNumber("-2"))
	assert.Equal(t, 7, ParsePageNumber("7"))
}
