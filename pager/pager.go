// Package pager computes which page links a pager control shows.
//
// Numbers produces the same sequence as Flask-SQLAlchemy's
// Pagination.iter_pages with the same defaults, shifted to zero-based page
// indexes, so a client rendered pager matches a server rendered one.
package pager

import "strconv"

// Window configures how many pages are kept around the edges and around
// the current page.
type Window struct {
	LeftEdge     int `mapstructure:"left-edge"`
	LeftCurrent  int `mapstructure:"left-current"`
	RightCurrent int `mapstructure:"right-current"`
	RightEdge    int `mapstructure:"right-edge"`
}

var DefaultWindow = Window{LeftEdge: 2, LeftCurrent: 2, RightCurrent: 5, RightEdge: 2}

// Entry is either a zero-based page index or, when Gap is set, an ellipsis
// standing for one or more skipped pages.
type Entry struct {
	Page int
	Gap  bool
}

func (w Window) keeps(i, total, current int) bool {
	return i < w.LeftEdge ||
		(current-w.LeftCurrent-1 < i && i < current+w.RightCurrent) ||
		i > total-w.RightEdge-1
}

// Numbers returns the page entries to display. Consecutive skipped pages
// collapse into a single gap.
func Numbers(total, current int, w Window) []Entry {
	entries := make([]Entry, 0)
	for i := 0; i < total; i++ {
		if w.keeps(i, total, current) {
			entries = append(entries, Entry{Page: i})
		} else if len(entries) == 0 || !entries[len(entries)-1].Gap {
			entries = append(entries, Entry{Gap: true})
		}
	}
	return entries
}

// Item is one rendered pager control.
type Item struct {
	Page    int
	Label   string
	Current bool
	Gap     bool
}

// Model is everything a renderer needs to draw the pager.
type Model struct {
	Visible     bool
	Current     int
	Total       int
	PrevEnabled bool
	NextEnabled bool
	Items       []Item
}

// Build assembles the pager model. The pager is hidden when there is at
// most one page, and the arrows are disabled at either end.
func Build(total, current int, w Window) Model {
	m := Model{Current: current, Total: total}
	if total <= 1 {
		return m
	}
	m.Visible = true
	m.PrevEnabled = current > 0
	m.NextEnabled = current < total-1
	for _, e := range Numbers(total, current, w) {
		if e.Gap {
			m.Items = append(m.Items, Item{Gap: true, Label: "…"})
			continue
		}
		m.Items = append(m.Items, Item{
			Page:    e.Page,
			Label:   strconv.Itoa(e.Page + 1),
			Current: e.Page == current,
		})
	}
	return m
}
