package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/guyvdb/srplist/app"
	"github.com/guyvdb/srplist/pager"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

const timeLayout = "2006-01-02 15:04"

func renderPage(w io.Writer, a *app.App) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"ID", "Status", "Pilot", "Ship", "Corporation", "Alliance", "System", "Kill Time", "Payout"})
	for _, r := range a.View.CurrentItems() {
		t.AppendRow(table.Row{
			r.Id, r.Status, r.Pilot, r.Ship, r.Corporation, r.Alliance, r.System,
			r.KillTimestamp.UTC().Format(timeLayout),
			fmt.Sprintf("%.2f", r.Payout),
		})
	}
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 9, Align: text.AlignRight},
	})
	t.AppendFooter(table.Row{"", "", "", "", "", "", "", "Matches", a.View.MatchCount()})
	t.Render()

	fmt.Fprintln(w, position(a))
	if m := a.Pager(); m.Visible {
		fmt.Fprintln(w, pagerLine(m))
	}
}

func position(a *app.App) string {
	sort := a.View.CurrentSort()
	if sort == "" {
		sort = "unsorted"
	}
	page := a.View.CurrentPage() + 1
	if a.View.TotalPages() == 0 {
		page = 0
	}
	return fmt.Sprintf("page %d/%d sort %s at %s", page, a.View.TotalPages(), sort, a.History.Path())
}

// pagerLine renders the pager as text, with the current page in brackets.
func pagerLine(m pager.Model) string {
	if !m.Visible {
		return ""
	}
	parts := make([]string, 0, len(m.Items)+2)
	parts = append(parts, arrow("«", m.PrevEnabled))
	for _, item := range m.Items {
		if item.Current {
			parts = append(parts, "["+item.Label+"]")
			continue
		}
		parts = append(parts, item.Label)
	}
	parts = append(parts, arrow("»", m.NextEnabled))
	return strings.Join(parts, " ")
}

func arrow(label string, enabled bool) string {
	if enabled {
		return label
	}
	return "-"
}
