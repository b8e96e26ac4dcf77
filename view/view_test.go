package view

import (
	"fmt"
	"slices"
	"testing"
	"time"

	"github.com/guyvdb/srplist/fault"
	"github.com/guyvdb/srplist/filter"
	"github.com/guyvdb/srplist/record"
	"github.com/guyvdb/srplist/sorting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ships = []string{"Rifter", "Merlin", "Tristan", "Punisher", "Incursus"}

// makeRecords builds n records whose ids are shuffled relative to store
// order.
func makeRecords(n int) []record.Record {
	statuses := []record.Status{
		record.StatusEvaluating, record.StatusApproved, record.StatusPaid,
		record.StatusRejected, record.StatusIncomplete,
	}
	out := make([]record.Record, n)
	for i := 0; i < n; i++ {
		id := int64((i*7)%n + 1)
		out[i] = record.Record{
			Id:            id,
			Status:        statuses[i%len(statuses)],
			Ship:          ships[i%len(ships)],
			Pilot:         fmt.Sprintf("pilot-%02d", id),
			KillTimestamp: time.Date(2014, 1, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(id) * time.Hour),
			Payout:        float64(id) * 1.5,
		}
	}
	return out
}

type fixture struct {
	store   *record.Store
	filters *filter.Set
	view    *View
	updates int
}

func newFixture(t *testing.T, n int, opts ...Option) *fixture {
	t.Helper()
	store, err := record.NewStore(makeRecords(n))
	require.NoError(t, err)

	filters := filter.NewSet()
	require.NoError(t, filters.Register(record.AttrStatus, record.FilterStatuses))
	require.NoError(t, filters.Register(record.AttrShip, ships))

	c, err := sorting.NewCollator("en")
	require.NoError(t, err)
	sorts, err := sorting.Defaults(c)
	require.NoError(t, err)

	v, err := New(store, filters, sorts, opts...)
	require.NoError(t, err)

	f := &fixture{store: store, filters: filters, view: v}
	v.OnUpdate(func(*View) { f.updates++ })
	return f
}

func ids(items []record.Record) []int64 {
	out := make([]int64, len(items))
	for i, r := range items {
		out[i] = r.Id
	}
	return out
}

func idRange(from, to int64) []int64 {
	out := make([]int64, 0)
	for i := from; i <= to; i++ {
		out = append(out, i)
	}
	return out
}

func TestFullCycle(t *testing.T) {
	f := newFixture(t, 25, WithSort("id_asc"))
	v := f.view

	assert.Equal(t, 2, v.TotalPages())
	assert.Equal(t, "id_asc", v.CurrentSort())
	assert.Equal(t, idRange(1, 20), ids(v.CurrentItems()))

	require.NoError(t, v.Page(1))
	assert.Equal(t, 1, v.CurrentPage())
	assert.Equal(t, idRange(21, 25), ids(v.CurrentItems()))
	assert.Equal(t, 1, f.updates)
}

func TestUnsortedKeepsStoreOrder(t *testing.T) {
	f := newFixture(t, 25, WithPageSize(100))
	want := make([]int64, 0)
	for i := 0; i < f.store.Len(); i++ {
		want = append(want, f.store.At(i).Id)
	}
	assert.Equal(t, Unsorted, f.view.CurrentSort())
	assert.Equal(t, want, ids(f.view.CurrentItems()))

	require.NoError(t, f.view.SetSort("id_asc"))
	require.NoError(t, f.view.SetSort(Unsorted))
	assert.Equal(t, want, ids(f.view.CurrentItems()))
}

func TestReversedSortReversesOrder(t *testing.T) {
	for _, base := range []string{"id_asc", "payout_asc", "kill_timestamp_asc", "pilot_asc"} {
		t.Run(base, func(t *testing.T) {
			f := newFixture(t, 25, WithPageSize(25))
			require.NoError(t, f.view.SetSort(base))
			asc := ids(f.view.CurrentItems())

			stem, _, _ := sorting.SplitName(base)
			require.NoError(t, f.view.SetSort(stem+"_dsc"))
			dsc := ids(f.view.CurrentItems())

			slices.Reverse(dsc)
			assert.Equal(t, asc, dsc)
		})
	}
}

func TestSetPageBounds(t *testing.T) {
	f := newFixture(t, 25)
	v := f.view

	require.ErrorIs(t, v.SetPage(2), fault.ErrPageOutOfRange)
	require.ErrorIs(t, v.SetPage(-1), fault.ErrPageOutOfRange)
	require.ErrorIs(t, v.Page(-1), fault.ErrPageOutOfRange)
	assert.Equal(t, 0, f.updates)
	assert.Equal(t, 0, v.CurrentPage())

	require.NoError(t, v.SetPage(1))
	require.ErrorIs(t, v.Page(1), fault.ErrPageOutOfRange)
	assert.Equal(t, 1, v.CurrentPage())
	assert.Equal(t, 1, f.updates)
}

func TestEmptyMatchSet(t *testing.T) {
	f := newFixture(t, 0)
	v := f.view

	assert.Equal(t, 0, v.TotalPages())
	require.NoError(t, v.SetPage(0))
	assert.Empty(t, v.CurrentItems())
	require.ErrorIs(t, v.SetPage(1), fault.ErrPageOutOfRange)
}

func TestFilterChangeRecomputesAndResetsPage(t *testing.T) {
	f := newFixture(t, 25, WithPageSize(5))
	v := f.view
	require.NoError(t, v.SetPage(3))

	require.NoError(t, f.filters.Add(record.AttrShip, "Rifter"))
	assert.Equal(t, 0, v.CurrentPage())
	assert.Equal(t, 5, v.MatchCount())
	assert.Equal(t, 1, v.TotalPages())
	for _, r := range v.CurrentItems() {
		assert.Equal(t, "Rifter", r.Ship)
	}
	assert.Equal(t, 2, f.updates)

	require.NoError(t, f.filters.Add(record.AttrStatus, "paid"))
	narrowed := v.MatchCount()
	assert.LessOrEqual(t, narrowed, 5)

	require.NoError(t, f.filters.Remove(record.AttrShip, "Rifter"))
	require.NoError(t, f.filters.Remove(record.AttrStatus, "paid"))
	assert.Equal(t, 25, v.MatchCount())
}

func TestSetSort(t *testing.T) {
	f := newFixture(t, 10)
	v := f.view

	require.ErrorIs(t, v.SetSort("ransom_asc"), fault.ErrUnknownSort)
	assert.Equal(t, 0, f.updates)

	require.NoError(t, v.SetSort("status_asc"))
	require.NoError(t, v.SetSort("status_asc"))
	assert.Equal(t, 1, f.updates)

	items := v.CurrentItems()
	assert.Equal(t, record.StatusEvaluating, items[0].Status)
	assert.Equal(t, record.StatusPaid, items[len(items)-1].Status)
}

func TestToggleColumn(t *testing.T) {
	f := newFixture(t, 10)
	v := f.view

	require.NoError(t, v.ToggleColumn(record.AttrPayout))
	assert.Equal(t, "payout_asc", v.CurrentSort())
	require.NoError(t, v.ToggleColumn(record.AttrPayout))
	assert.Equal(t, "payout_dsc", v.CurrentSort())
	require.NoError(t, v.ToggleColumn(record.AttrPayout))
	assert.Equal(t, "payout_asc", v.CurrentSort())
	require.NoError(t, v.ToggleColumn(record.AttrShip))
	assert.Equal(t, "ship_asc", v.CurrentSort())

	require.ErrorIs(t, v.ToggleColumn(record.AttrHref), fault.ErrUnknownSort)
	assert.Equal(t, "ship_asc", v.CurrentSort())
}

func TestNewRejectsBadConfiguration(t *testing.T) {
	store, err := record.NewStore(makeRecords(3))
	require.NoError(t, err)
	filters := filter.NewSet()

	_, err = New(store, filters, sorting.NewRegistry(), WithPageSize(0))
	require.ErrorIs(t, err, fault.ErrInvalidPageSize)

	_, err = New(store, filters, sorting.NewRegistry(), WithSort("id_asc"))
	require.ErrorIs(t, err, fault.ErrUnknownSort)

	narrow := sorting.NewRegistry()
	require.NoError(t, narrow.RegisterPair(sorting.Explicit(record.AttrStatus, []string{"paid"})))
	_, err = New(store, filters, narrow)
	require.ErrorIs(t, err, fault.ErrSortDomain)
}
