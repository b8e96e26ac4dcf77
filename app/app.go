// Package app wires the request list together: it owns the record store,
// filters, sorts, view and history binding for the lifetime of one list,
// and routes input events to them.
package app

import (
	"fmt"
	"log/slog"

	"github.com/guyvdb/srplist/config"
	"github.com/guyvdb/srplist/fault"
	"github.com/guyvdb/srplist/filter"
	"github.com/guyvdb/srplist/history"
	"github.com/guyvdb/srplist/pager"
	"github.com/guyvdb/srplist/record"
	"github.com/guyvdb/srplist/sorting"
	"github.com/guyvdb/srplist/view"
)

// DomainSource answers the distinct-values query used to fill the filter
// domains.
type DomainSource interface {
	DistinctValues(attr record.Attribute) ([]string, error)
}

var _ DomainSource = (*record.Store)(nil)

type App struct {
	Store   *record.Store
	Filters *filter.Set
	Sorts   *sorting.Registry
	View    *view.View
	History *history.Sync

	window pager.Window
}

// New builds the application state once the bulk data is resident.
// Filter domains come from domains, or from the records themselves when
// domains is nil; the status facet always offers the fixed status list.
func New(records []record.Record, domains DomainSource, cfg *config.Config, nav history.Navigator) (*App, error) {
	store, err := record.NewStore(records)
	if err != nil {
		return nil, err
	}
	if domains == nil {
		domains = store
	}

	filters := filter.NewSet()
	for _, attr := range record.FilterableAttributes() {
		values := record.FilterStatuses
		if attr != record.AttrStatus {
			if values, err = domains.DistinctValues(attr); err != nil {
				return nil, fmt.Errorf("loading %s filter values: %w", attr, err)
			}
		}
		if err := filters.Register(attr, values); err != nil {
			return nil, err
		}
	}

	collator, err := sorting.NewCollator(cfg.Locale)
	if err != nil {
		return nil, err
	}
	sorts, err := sorting.Defaults(collator)
	if err != nil {
		return nil, err
	}

	v, err := view.New(store, filters, sorts, view.WithPageSize(cfg.PageSize), view.WithSort(cfg.Sort))
	if err != nil {
		return nil, err
	}

	a := &App{
		Store:   store,
		Filters: filters,
		Sorts:   sorts,
		View:    v,
		History: history.NewSync(v, nav, cfg.BasePath),
		window:  cfg.Window,
	}
	a.History.Replace()

	slog.Info("app.New - request list ready", "requests", store.Len(), "pages", v.TotalPages(), "sort", v.CurrentSort())
	return a, nil
}

// Pager returns the pager model for the current view position.
func (a *App) Pager() pager.Model {
	return pager.Build(a.View.TotalPages(), a.View.CurrentPage(), a.window)
}

// Dispatch applies ev. Page and sort changes made by the user are pushed
// to history. Filter changes send the view back to the first page and
// overwrite the current entry. Restored states touch neither. A failed
// event changes nothing.
func (a *App) Dispatch(ev Event) error {
	switch e := ev.(type) {
	case FilterAdded:
		if err := a.Filters.Add(e.Attr, e.Value); err != nil {
			return err
		}
		a.History.Replace()
		return nil
	case FilterRemoved:
		if err := a.Filters.Remove(e.Attr, e.Value); err != nil {
			return err
		}
		a.History.Replace()
		return nil
	case ColumnClicked:
		if err := a.View.ToggleColumn(e.Attr); err != nil {
			return err
		}
	case PagerClicked:
		if err := a.page(e); err != nil {
			return err
		}
	case StateRestored:
		return a.History.Restore(e.State)
	default:
		return fmt.Errorf("%w: %T", fault.ErrUnknownEvent, ev)
	}
	a.History.Push()
	return nil
}

func (a *App) page(e PagerClicked) error {
	switch e.Action {
	case PagerPrev:
		return a.View.Page(-1)
	case PagerNext:
		return a.View.Page(1)
	case PagerNumber:
		return a.View.SetPage(e.Number - 1)
	}
	return fmt.Errorf("%w: pager action %d", fault.ErrUnknownEvent, e.Action)
}
