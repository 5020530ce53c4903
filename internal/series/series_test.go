package series

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var expectedNames = []string{
	"Employment Trends",
	"Unemployment Rate",
	"GDP Growth",
	"CPI Trends",
	"Wage Growth",
	"Housing Prices",
	"Interest Rates",
	"Trade Balance",
	"Business Confidence",
	"Retail Sales",
	"Manufacturing Index",
	"Consumer Confidence",
}

func TestDatesSpanMonthEnds(t *testing.T) {
	t.Parallel()

	dates := Dates()
	require.Len(t, dates, 48)
	assert.Equal(t, time.Date(2020, time.January, 31, 0, 0, 0, 0, time.UTC), dates[0])
	assert.Equal(t, time.Date(2020, time.February, 29, 0, 0, 0, 0, time.UTC), dates[1])
	assert.Equal(t, time.Date(2023, time.December, 31, 0, 0, 0, 0, time.UTC), dates[47])

	for i := 1; i < len(dates); i++ {
		assert.True(t, dates[i].After(dates[i-1]))
		assert.Equal(t, dates[i].AddDate(0, 0, 1).Day(), 1, "not a month end: %s", dates[i])
	}
}

func TestGenerateProducesTwelveSeriesOnSharedAxis(t *testing.T) {
	t.Parallel()

	axis := Dates()
	for _, region := range Regions() {
		region := region
		t.Run(region.String(), func(t *testing.T) {
			t.Parallel()

			coll, err := Generate(region, rand.New(rand.NewPCG(1, 2)))
			require.NoError(t, err)
			assert.Equal(t, region, coll.Region)
			assert.Equal(t, expectedNames, coll.Names())

			for _, entry := range coll.Entries {
				assert.Equal(t, axis, entry.Table.Dates, entry.Name)
				require.NotEmpty(t, entry.Table.Columns, entry.Name)
				for _, col := range entry.Table.Columns {
					assert.Len(t, col.Values, len(axis), "%s/%s", entry.Name, col.Name)
				}
			}
		})
	}
}

func TestGenerateColumnLayout(t *testing.T) {
	t.Parallel()

	coll, err := Generate(US, rand.New(rand.NewPCG(3, 4)))
	require.NoError(t, err)

	employment, ok := coll.Lookup("Employment Trends")
	require.True(t, ok)
	assert.Equal(t, []string{"Full Time", "Part Time"}, employment.ColumnNames())

	trade, ok := coll.Lookup("Trade Balance")
	require.True(t, ok)
	assert.Equal(t, []string{"Exports", "Imports"}, trade.ColumnNames())

	housing, ok := coll.Lookup("Housing Prices")
	require.True(t, ok)
	assert.Equal(t, []string{"Median Price"}, housing.ColumnNames())

	_, ok = coll.Lookup("Bitcoin")
	assert.False(t, ok)
}

func TestUnemploymentCentresOnRegionBase(t *testing.T) {
	t.Parallel()

	cases := []struct {
		region Region
		mean   float64
	}{
		{US, 5.5},
		{AUS, 4.5},
		{EU, 6.5},
	}

	cache := NewCache(42)
	for _, tc := range cases {
		coll, err := cache.Get(tc.region)
		require.NoError(t, err)

		rate, ok := coll.Lookup("Unemployment Rate")
		require.True(t, ok)

		sum := Summarize(rate.Columns[0].Values)
		m, sd := sum.Mean, sum.Std
		assert.InDelta(t, tc.mean, m, 0.3, tc.region.String())
		assert.InDelta(t, 0.5, sd, 0.2, tc.region.String())
	}
}

func TestHousingStartsFromRegionBase(t *testing.T) {
	t.Parallel()

	bases := map[Region]float64{US: 400000, AUS: 800000, EU: 300000}
	for region, base := range bases {
		coll, err := Generate(region, rand.New(rand.NewPCG(9, 9)))
		require.NoError(t, err)
		housing, _ := coll.Lookup("Housing Prices")
		values := housing.Columns[0].Values

		// First point is base plus one ~5000 increment; the walk drifts upward.
		assert.InDelta(t, base+5000, values[0], 5000, region.String())
		assert.Greater(t, values[len(values)-1], values[0], region.String())
	}
}

func TestGenerateRejectsUnknownRegion(t *testing.T) {
	t.Parallel()

	for _, region := range []Region{Region(-1), EU + 1, Region(99)} {
		require.NotPanics(t, func() {
			coll, err := Generate(region, rand.New(rand.NewPCG(1, 1)))
			require.ErrorIs(t, err, ErrUnknownRegion, region.String())
			assert.Empty(t, coll.Entries)
		})
	}
}

func TestCacheMemoisesPerRegion(t *testing.T) {
	t.Parallel()

	calls := map[Region]int{}
	cache := NewCache(7)
	cache.generate = func(r Region, rng *rand.Rand) (Collection, error) {
		calls[r]++
		return Generate(r, rng)
	}

	first, err := cache.Get(US)
	require.NoError(t, err)
	second, err := cache.Get(US)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, calls[US])
	assert.Equal(t, 1, cache.Len())

	_, err = cache.Get(EU)
	require.NoError(t, err)
	assert.Equal(t, 1, calls[EU])
	assert.Equal(t, 2, cache.Len())

	cache.Reset()
	assert.Equal(t, 0, cache.Len())

	third, err := cache.Get(US)
	require.NoError(t, err)
	assert.Equal(t, 2, calls[US])
	assert.Equal(t, first, third, "same seed regenerates the same values")
}

func TestCacheResultsIndependentOfRequestOrder(t *testing.T) {
	t.Parallel()

	a := NewCache(11)
	b := NewCache(11)

	aUS, _ := a.Get(US)
	_, _ = b.Get(EU)
	_, _ = b.Get(AUS)
	bUS, _ := b.Get(US)

	assert.Equal(t, aUS, bUS)
}

func TestCacheReturnsCopies(t *testing.T) {
	t.Parallel()

	cache := NewCache(5)
	first, err := cache.Get(AUS)
	require.NoError(t, err)
	original := first.Entries[0].Table.Columns[0].Values[0]

	first.Entries[0].Table.Columns[0].Values[0] = -1

	second, err := cache.Get(AUS)
	require.NoError(t, err)
	assert.Equal(t, original, second.Entries[0].Table.Columns[0].Values[0])
}

func TestCacheReseedChangesValues(t *testing.T) {
	t.Parallel()

	cache := NewCache(1)
	before, _ := cache.Get(US)
	cache.Reseed(2)
	after, _ := cache.Get(US)
	assert.NotEqual(t, before, after)
}

func TestCacheRejectsInvalidRegion(t *testing.T) {
	t.Parallel()

	_, err := NewCache(1).Get(Region(9))
	require.ErrorIs(t, err, ErrUnknownRegion)
}

func TestParseRegion(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in      string
		want    Region
		wantErr bool
	}{
		{in: "us", want: US},
		{in: " AUS ", want: AUS},
		{in: "Eu", want: EU},
		{in: "uk", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tc := range cases {
		got, err := ParseRegion(tc.in)
		if tc.wantErr {
			require.ErrorIs(t, err, ErrUnknownRegion, tc.in)
			continue
		}
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got)
	}
}

func TestRegionFormatting(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "aus", AUS.String())
	assert.Equal(t, "AUS", AUS.Label())
	assert.Equal(t, "region(5)", Region(5).String())

	var r Region
	require.NoError(t, r.Set("eu"))
	assert.Equal(t, EU, r)
	assert.Error(t, r.Set("mars"))
	assert.Equal(t, "region", r.Type())
}

func TestSummarize(t *testing.T) {
	t.Parallel()

	s := Summarize([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	assert.InDelta(t, 5.0, s.Mean, 1e-9)
	assert.InDelta(t, 2.0, s.Std, 1e-9)
	assert.Equal(t, 2.0, s.Min)
	assert.Equal(t, 9.0, s.Max)
	assert.Equal(t, 2.0, s.First)
	assert.Equal(t, 9.0, s.Last)

	assert.Equal(t, Summary{}, Summarize(nil))
}
