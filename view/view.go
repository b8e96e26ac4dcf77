package view

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/guyvdb/srplist/fault"
	"github.com/guyvdb/srplist/filter"
	"github.com/guyvdb/srplist/record"
	"github.com/guyvdb/srplist/sorting"
)

// Unsorted is the sort name reported when no sort is selected; records
// then keep store order.
const Unsorted = ""

// View is the sorted, paginated projection of the records that pass the
// filter set. It is not safe for concurrent use; every mutation runs to
// completion on the caller's goroutine.
type View struct {
	store    *record.Store
	filters  *filter.Set
	sorts    *sorting.Registry
	pageSize int

	page int
	sort *sorting.Sort

	// matches holds store indexes of matching records in display order.
	matches   []int
	listeners []func(*View)
}

// New builds a view over store. Explicit sorts in sorts are checked against
// every record, and the view recomputes whenever filters change.
func New(store *record.Store, filters *filter.Set, sorts *sorting.Registry, opts ...Option) (*View, error) {
	cfg := applyOptions(opts)
	if cfg.pageSize <= 0 {
		return nil, fmt.Errorf("%w: %d", fault.ErrInvalidPageSize, cfg.pageSize)
	}
	if err := sorts.Validate(store); err != nil {
		return nil, err
	}

	v := &View{
		store:    store,
		filters:  filters,
		sorts:    sorts,
		pageSize: cfg.pageSize,
	}
	if cfg.sort != Unsorted {
		s, err := sorts.Get(cfg.sort)
		if err != nil {
			return nil, err
		}
		v.sort = s
	}
	v.recompute()

	filters.OnChange(v.filtersChanged)
	return v, nil
}

// OnUpdate registers fn to run after every change of page, sort or
// matching records.
func (v *View) OnUpdate(fn func(*View)) {
	v.listeners = append(v.listeners, fn)
}

func (v *View) PageSize() int    { return v.pageSize }
func (v *View) CurrentPage() int { return v.page }
func (v *View) MatchCount() int  { return len(v.matches) }

// CurrentSort returns the active sort name, or Unsorted.
func (v *View) CurrentSort() string {
	if v.sort == nil {
		return Unsorted
	}
	return v.sort.Name
}

// TotalPages is the number of pages the matching records fill. It is zero
// when nothing matches.
func (v *View) TotalPages() int {
	return (len(v.matches) + v.pageSize - 1) / v.pageSize
}

// CurrentItems returns copies of the records on the current page.
func (v *View) CurrentItems() []record.Record {
	start := v.page * v.pageSize
	end := min(start+v.pageSize, len(v.matches))
	items := make([]record.Record, 0, max(end-start, 0))
	for _, i := range v.matches[start:end] {
		items = append(items, *v.store.At(i))
	}
	return items
}

// CheckPage reports whether n is a valid page index. Page 0 is always valid,
// even when there are no pages.
func (v *View) CheckPage(n int) error {
	total := v.TotalPages()
	if n == 0 && total == 0 {
		return nil
	}
	if n < 0 || n >= total {
		return fmt.Errorf("%w: page %d of %d", fault.ErrPageOutOfRange, n, total)
	}
	return nil
}

// CheckSort reports whether name selects a registered sort or Unsorted.
func (v *View) CheckSort(name string) error {
	if name == Unsorted {
		return nil
	}
	_, err := v.sorts.Get(name)
	return err
}

// SetPage moves to page n.
func (v *View) SetPage(n int) error {
	if err := v.CheckPage(n); err != nil {
		return err
	}
	v.page = n
	slog.Debug("view.SetPage - page changed", "page", n, "total", v.TotalPages())
	v.notify()
	return nil
}

// Page moves delta pages from the current one. Moving off either end fails
// the same way SetPage does.
func (v *View) Page(delta int) error {
	return v.SetPage(v.page + delta)
}

// SetSort selects the sort called name. Unsorted restores store order.
// Selecting the active sort again does nothing.
func (v *View) SetSort(name string) error {
	if name == v.CurrentSort() {
		return nil
	}
	var s *sorting.Sort
	if name != Unsorted {
		var err error
		if s, err = v.sorts.Get(name); err != nil {
			return err
		}
	}
	v.sort = s
	v.recompute()
	slog.Debug("view.SetSort - sort changed", "sort", name)
	v.notify()
	return nil
}

// ToggleColumn applies a click on the header of column: the active column
// flips direction, any other column is sorted ascending.
func (v *View) ToggleColumn(column record.Attribute) error {
	return v.SetSort(sorting.Toggle(v.CurrentSort(), column))
}

func (v *View) filtersChanged() {
	v.page = 0
	v.recompute()
	slog.Debug("view.filtersChanged - matches recomputed", "matches", len(v.matches))
	v.notify()
}

// recompute rebuilds the match list from scratch: filter, then sort.
func (v *View) recompute() {
	matches := make([]int, 0, v.store.Len())
	for i := 0; i < v.store.Len(); i++ {
		if v.filters.Matches(v.store.At(i)) {
			matches = append(matches, i)
		}
	}
	if v.sort != nil {
		cmp := v.sort.Compare
		slices.SortStableFunc(matches, func(a, b int) int {
			return cmp(v.store.At(a), v.store.At(b))
		})
	}
	v.matches = matches
}

func (v *View) notify() {
	for _, fn := range v.listeners {
		fn(v)
	}
}
