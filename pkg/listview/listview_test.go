package listview

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/noah-isme/hmhy-admin-api/pkg/errors"
)

type person struct {
	Name      string
	City      string
	Age       int
	CreatedAt time.Time
}

func mustDate(t *testing.T, raw string) time.Time {
	t.Helper()
	ts, err := time.Parse("2006-01-02", raw)
	require.NoError(t, err)
	return ts
}

func personFields() *Fields[person] {
	return NewFields[person]().
		Searchable("name", func(p person) Value { return Text(p.Name) }).
		Searchable("city", func(p person) Value { return Text(p.City) }).
		Field("age", func(p person) Value { return Int(p.Age) }).
		Field("created_at", func(p person) Value { return Time(p.CreatedAt) })
}

func names(items []person) []string {
	out := make([]string, len(items))
	for i, p := range items {
		out[i] = p.Name
	}
	return out
}

func sampleRecords(t *testing.T) []person {
	return []person{
		{Name: "Bob", CreatedAt: mustDate(t, "2024-01-02")},
		{Name: "Ann", CreatedAt: mustDate(t, "2024-01-01")},
		{Name: "Cid", CreatedAt: mustDate(t, "2024-01-03")},
	}
}

func TestComputeSortsAndPaginates(t *testing.T) {
	records := sampleRecords(t)
	q := Query{SortKey: "name", SortDirection: Ascending, Page: 1, PageSize: 2}

	page, err := Compute(records, q, personFields())
	require.NoError(t, err)
	assert.Equal(t, []string{"Ann", "Bob"}, names(page.Items))
	assert.Equal(t, 3, page.TotalItems)
	assert.Equal(t, 2, page.TotalPages)
	assert.Equal(t, 1, page.CurrentPage)
	assert.Equal(t, 1, page.RangeStart)
	assert.Equal(t, 2, page.RangeEnd)
	assert.False(t, page.HasPrevious)
	assert.True(t, page.HasNext)

	page, err = Compute(records, q.WithPage(2), personFields())
	require.NoError(t, err)
	assert.Equal(t, []string{"Cid"}, names(page.Items))
	assert.Equal(t, 3, page.RangeStart)
	assert.Equal(t, 3, page.RangeEnd)
	assert.True(t, page.HasPrevious)
	assert.False(t, page.HasNext)
}

func TestComputeSearchIsCaseInsensitiveSubstring(t *testing.T) {
	q := NewQuery(10).WithSearch("an")

	page, err := Compute(sampleRecords(t), q, personFields())
	require.NoError(t, err)
	assert.Equal(t, []string{"Ann"}, names(page.Items))
	assert.Equal(t, 1, page.TotalItems)

	page, err = Compute(sampleRecords(t), NewQuery(10).WithSearch("BO"), personFields())
	require.NoError(t, err)
	assert.Equal(t, []string{"Bob"}, names(page.Items))
}

func TestComputeSearchOnlyUsesSearchableFields(t *testing.T) {
	records := []person{{Name: "Ann", Age: 42}, {Name: "Bob", Age: 7}}

	page, err := Compute(records, NewQuery(10).WithSearch("42"), personFields())
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Equal(t, 0, page.RangeStart)
	assert.Equal(t, 0, page.RangeEnd)
}

func TestComputeEmptyRecords(t *testing.T) {
	page, err := Compute(nil, NewQuery(5), personFields())
	require.NoError(t, err)

	want := Page[person]{
		Items:         []person{},
		TotalItems:    0,
		TotalPages:    1,
		CurrentPage:   1,
		PageSize:      5,
		RangeStart:    0,
		RangeEnd:      0,
		SortDirection: Ascending,
	}
	if diff := cmp.Diff(want, page); diff != "" {
		t.Fatalf("unexpected page (-want +got):\n%s", diff)
	}
}

func TestComputeRejectsInvalidArguments(t *testing.T) {
	_, err := Compute(sampleRecords(t), Query{Page: 1, PageSize: 0}, personFields())
	require.Error(t, err)
	assert.True(t, errors.Is(err, appErrors.ErrInvalidArgument))

	_, err = Compute(sampleRecords(t), Query{Page: 0, PageSize: 10}, personFields())
	require.Error(t, err)
	assert.True(t, errors.Is(err, appErrors.ErrInvalidArgument))

	_, err = Compute(sampleRecords(t), Query{Page: -3, PageSize: -1}, personFields())
	assert.Equal(t, "INVALID_ARGUMENT", appErrors.FromError(err).Code)
}

func TestComputeUnknownSortKeyKeepsInputOrder(t *testing.T) {
	q := NewQuery(10).WithSort("nmae", Descending)

	page, err := Compute(sampleRecords(t), q, personFields())
	require.NoError(t, err)
	assert.Equal(t, []string{"Bob", "Ann", "Cid"}, names(page.Items))
	assert.Empty(t, page.SortKey)
	assert.Empty(t, page.Meta().Order)
}

func TestComputeClampsPage(t *testing.T) {
	records := make([]person, 0, 25)
	for i := 0; i < 25; i++ {
		records = append(records, person{Name: fmt.Sprintf("p%02d", i), Age: i})
	}
	q := NewQuery(10).WithSort("age", Ascending)

	last, err := Compute(records, q.WithPage(3), personFields())
	require.NoError(t, err)
	clamped, err := Compute(records, q.WithPage(9999), personFields())
	require.NoError(t, err)

	assert.Equal(t, 3, clamped.TotalPages)
	assert.Equal(t, 3, clamped.CurrentPage)
	assert.Equal(t, last.Items, clamped.Items)
	assert.Equal(t, 21, clamped.RangeStart)
	assert.Equal(t, 25, clamped.RangeEnd)
}

func TestComputeIsIdempotentAndDoesNotMutateInput(t *testing.T) {
	records := sampleRecords(t)
	snapshot := append([]person(nil), records...)
	q := NewQuery(2).WithSort("created_at", Descending)

	first, err := Compute(records, q, personFields())
	require.NoError(t, err)
	second, err := Compute(records, q, personFields())
	require.NoError(t, err)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("pages differ (-first +second):\n%s", diff)
	}
	assert.Equal(t, snapshot, records)
	assert.Equal(t, []string{"Cid", "Bob"}, names(first.Items))
}

func TestComputeStableAcrossDirectionFlips(t *testing.T) {
	records := []person{
		{Name: "first", City: "Tashkent"},
		{Name: "second", City: "Bukhara"},
		{Name: "third", City: "Tashkent"},
		{Name: "fourth", City: "Bukhara"},
		{Name: "fifth", City: "Tashkent"},
	}
	q := NewQuery(10)

	asc, err := Compute(records, q.WithSort("city", Ascending), personFields())
	require.NoError(t, err)
	desc, err := Compute(records, q.WithSort("city", Descending), personFields())
	require.NoError(t, err)
	again, err := Compute(records, q.WithSort("city", Ascending), personFields())
	require.NoError(t, err)

	assert.Equal(t, []string{"second", "fourth", "first", "third", "fifth"}, names(asc.Items))
	assert.Equal(t, []string{"first", "third", "fifth", "second", "fourth"}, names(desc.Items))
	assert.Equal(t, asc.Items, again.Items)
}

func TestComputeUsesLocaleAwareCollation(t *testing.T) {
	records := []person{{Name: "Zoe"}, {Name: "apple"}, {Name: "Émile"}, {Name: "Banana"}}

	page, err := Compute(records, NewQuery(10).WithSort("name", Ascending), personFields())
	require.NoError(t, err)
	assert.Equal(t, []string{"apple", "Banana", "Émile", "Zoe"}, names(page.Items))
}

func TestComputeEmptyValuesSortFirst(t *testing.T) {
	records := []person{
		{Name: "dated", CreatedAt: mustDate(t, "2024-05-01")},
		{Name: "undated"},
	}

	page, err := Compute(records, NewQuery(10).WithSort("created_at", Ascending), personFields())
	require.NoError(t, err)
	assert.Equal(t, []string{"undated", "dated"}, names(page.Items))
}

func TestComputeTreatsNonFiniteNumbersAsEmpty(t *testing.T) {
	type rated struct {
		Name   string
		Rating float64
	}
	fields := NewFields[rated]().
		Searchable("name", func(r rated) Value { return Text(r.Name) }).
		Field("rating", func(r rated) Value { return Number(r.Rating) })
	records := []rated{
		{Name: "nan", Rating: math.NaN()},
		{Name: "four", Rating: 4.5},
		{Name: "inf", Rating: math.Inf(1)},
		{Name: "neg", Rating: math.Inf(-1)},
		{Name: "one", Rating: 1},
	}

	var asc, desc Page[rated]
	require.NotPanics(t, func() {
		var err error
		asc, err = Compute(records, NewQuery(10).WithSort("rating", Ascending), fields)
		require.NoError(t, err)
		desc, err = Compute(records, NewQuery(10).WithSort("rating", Descending), fields)
		require.NoError(t, err)
	})

	order := func(items []rated) []string {
		out := make([]string, len(items))
		for i, r := range items {
			out[i] = r.Name
		}
		return out
	}
	assert.Equal(t, []string{"nan", "inf", "neg", "one", "four"}, order(asc.Items))
	assert.Equal(t, []string{"four", "one", "nan", "inf", "neg"}, order(desc.Items))
	assert.Equal(t, KindEmpty, Number(math.NaN()).Kind())
	assert.Equal(t, KindEmpty, Number(math.Inf(-1)).Kind())
}

func TestComputeFiltersAreExactAndCaseInsensitive(t *testing.T) {
	records := []person{
		{Name: "Ann", City: "Tashkent"},
		{Name: "Bob", City: "Samarkand"},
		{Name: "Cid", City: "tashkent"},
		{Name: "Dan", City: "Tashkent-2"},
	}
	q := NewQuery(10).WithFilter("city", "TASHKENT").WithFilter("unknown", "x")

	page, err := Compute(records, q, personFields())
	require.NoError(t, err)
	assert.Equal(t, []string{"Ann", "Cid"}, names(page.Items))

	cleared := q.WithFilter("city", "")
	page, err = Compute(records, cleared, personFields())
	require.NoError(t, err)
	assert.Len(t, page.Items, 4)
}

func TestComputeFilterProperties(t *testing.T) {
	var records []person
	for i := 0; i < 40; i++ {
		records = append(records, person{Name: fmt.Sprintf("User%d", i), City: []string{"Andijan", "Navoi", "Nukus"}[i%3]})
	}
	fields := personFields()

	for _, search := range []string{"", "an", "NAV", "user1", "zz"} {
		q := NewQuery(7).WithSearch(search)
		first, err := Compute(records, q, fields)
		require.NoError(t, err)

		seen := 0
		for p := 1; p <= first.TotalPages; p++ {
			page, err := Compute(records, q.WithPage(p), fields)
			require.NoError(t, err)
			assert.LessOrEqual(t, len(page.Items), 7)
			if len(page.Items) < 7 {
				assert.Equal(t, page.TotalPages, page.CurrentPage)
			}
			for _, item := range page.Items {
				hay := strings.ToLower(item.Name + "|" + item.City)
				assert.Contains(t, hay, strings.ToLower(search))
			}
			seen += len(page.Items)
		}

		expected := 0
		for _, r := range records {
			if strings.Contains(strings.ToLower(r.Name), strings.ToLower(search)) ||
				strings.Contains(strings.ToLower(r.City), strings.ToLower(search)) {
				expected++
			}
		}
		assert.Equal(t, expected, seen, "search %q", search)
		assert.Equal(t, expected, first.TotalItems)
	}
}

func TestQueryMutationsResetPage(t *testing.T) {
	q := NewQuery(10).WithPage(4)
	assert.Equal(t, 4, q.Page)
	assert.Equal(t, 1, q.WithSearch("x").Page)
	assert.Equal(t, 1, q.WithSort("name", Descending).Page)
	assert.Equal(t, 1, q.WithFilter("city", "Navoi").Page)

	withFilter := q.WithFilter("city", "Navoi")
	_ = withFilter.WithFilter("city", "Nukus")
	assert.Equal(t, "Navoi", withFilter.Filters["city"])
}

func TestParseDirection(t *testing.T) {
	assert.Equal(t, Descending, ParseDirection("DESC"))
	assert.Equal(t, Descending, ParseDirection(" desc "))
	assert.Equal(t, Ascending, ParseDirection("asc"))
	assert.Equal(t, Ascending, ParseDirection(""))
	assert.Equal(t, Ascending, ParseDirection("sideways"))
}

func TestValueOrderingByKind(t *testing.T) {
	cheap := Decimal(decimal.RequireFromString("49999.50"))
	pricey := Decimal(decimal.RequireFromString("150000"))
	assert.Equal(t, -1, compare(cheap, pricey, nil))
	assert.Equal(t, 0, compare(Int(3), Number(3), nil))
	assert.Equal(t, -1, compare(Empty(), Text("a"), nil))
	assert.Equal(t, "2024-01-02T00:00:00Z", Time(mustDate(t, "2024-01-02")).String())
	assert.Equal(t, KindEmpty, OptionalText(nil).Kind())
	assert.Equal(t, KindEmpty, Time(time.Time{}).Kind())
}
