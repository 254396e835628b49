package listing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	name     string
	category string
	dates    []string
}

var items = []item{
	{name: "Alpha", category: "x", dates: []string{"2026-08-01"}},
	{name: "beta", category: "y", dates: []string{"2026-08-10", "2026-08-20"}},
	{name: "Gamma", category: "x", dates: nil},
	{name: "alphabet", category: "y", dates: []string{"2026-07-31"}},
}

func TestSearchCaseInsensitiveSubstring(t *testing.T) {
	got := Filter(items, Search("ALPHA", func(i item) []string { return []string{i.name} }))
	require.Len(t, got, 2)
	assert.Equal(t, "Alpha", got[0].name)
	assert.Equal(t, "alphabet", got[1].name)
}

func TestSearchEmptyMatchesAll(t *testing.T) {
	got := Filter(items, Search("  ", func(i item) []string { return []string{i.name} }))
	assert.Len(t, got, len(items))
}

func TestEqualsEmptySentinel(t *testing.T) {
	all := Filter(items, Equals("", func(i item) string { return i.category }))
	assert.Len(t, all, len(items))

	xs := Filter(items, Equals("x", func(i item) string { return i.category }))
	assert.Len(t, xs, 2)
}

func TestDateRangeExistsSemantics(t *testing.T) {
	// beta has one date inside and one outside the window; any match passes.
	got := Filter(items, DateRange("2026-08-05", "2026-08-15", func(i item) []string { return i.dates }))
	require.Len(t, got, 1)
	assert.Equal(t, "beta", got[0].name)
}

func TestDateRangeOpenBounds(t *testing.T) {
	from := Filter(items, DateRange("2026-08-01", "", func(i item) []string { return i.dates }))
	assert.Len(t, from, 2)

	until := Filter(items, DateRange("", "2026-07-31", func(i item) []string { return i.dates }))
	require.Len(t, until, 1)
	assert.Equal(t, "alphabet", until[0].name)

	both := Filter(items, DateRange("", "", func(i item) []string { return i.dates }))
	assert.Len(t, both, len(items))
}

func TestFilterComposesWithAND(t *testing.T) {
	got := Filter(items,
		Search("a", func(i item) []string { return []string{i.name} }),
		Equals("y", func(i item) string { return i.category }),
	)
	require.Len(t, got, 2)
	assert.Equal(t, "beta", got[0].name)
	assert.Equal(t, "alphabet", got[1].name)
}

func TestPipelineIdempotent(t *testing.T) {
	preds := []Predicate[item]{
		Search("a", func(i item) []string { return []string{i.name} }),
		Equals("y", func(i item) string { return i.category }),
	}

	once := Filter(items, preds...)
	twice := Filter(once, preds...)
	assert.Equal(t, once, twice)

	less := func(x, y item) bool { return x.name < y.name }
	SortStable(once, less)
	sorted := append([]item(nil), once...)
	SortStable(once, less)
	assert.Equal(t, sorted, once)
}

func TestSortStableKeepsEqualOrder(t *testing.T) {
	vals := []item{
		{name: "b", category: "1"},
		{name: "a", category: "2"},
		{name: "a", category: "3"},
		{name: "a", category: "4"},
	}
	SortStable(vals, func(x, y item) bool { return x.name < y.name })

	assert.Equal(t, "2", vals[0].category)
	assert.Equal(t, "3", vals[1].category)
	assert.Equal(t, "4", vals[2].category)
	assert.Equal(t, "b", vals[3].name)
}

func TestPaginate(t *testing.T) {
	vals := []int{1, 2, 3, 4, 5, 6, 7}

	page := Paginate(vals, 2, 3)
	assert.Equal(t, []int{4, 5, 6}, page.Items)
	assert.Equal(t, 7, page.Total)
	assert.Equal(t, 3, page.TotalPages)

	last := Paginate(vals, 3, 3)
	assert.Equal(t, []int{7}, last.Items)
}

func TestPaginatePastEndIsEmpty(t *testing.T) {
	vals := []int{1, 2, 3}

	page := Paginate(vals, 9, 10)
	require.NotNil(t, page.Items)
	assert.Empty(t, page.Items)
	assert.Equal(t, 3, page.Total)
	assert.Equal(t, 1, page.TotalPages)
}

func TestPaginateEmptyCollection(t *testing.T) {
	page := Paginate([]int{}, 1, 10)
	assert.Empty(t, page.Items)
	assert.Equal(t, 0, page.Total)
	assert.Equal(t, 0, page.TotalPages)
}
