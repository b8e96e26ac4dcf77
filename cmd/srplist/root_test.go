package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeExport writes n requests with ids 1..n in reverse order.
func writeExport(t *testing.T, n int) string {
	t.Helper()
	statuses := []string{"evaluating", "approved", "paid"}
	requests := make([]map[string]any, n)
	for i := range requests {
		id := n - i
		requests[i] = map[string]any{
			"id":               id,
			"href":             fmt.Sprintf("/request/%d/", id),
			"status":           statuses[i%len(statuses)],
			"alliance":         "Test Alliance",
			"corporation":      "Dreddit",
			"pilot":            fmt.Sprintf("pilot-%02d", id),
			"ship":             []string{"Rifter", "Merlin"}[i%2],
			"division":         "PvP",
			"system":           "Jita",
			"kill_timestamp":   time.Date(2014, 6, 1, i, 0, 0, 0, time.UTC).Format(time.RFC3339),
			"submit_timestamp": time.Date(2014, 6, 2, i, 0, 0, 0, time.UTC).Format(time.RFC3339),
			"payout":           float64(id) * 1000000,
		}
	}
	data, err := json.Marshal(map[string]any{"requests": requests})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "export.json")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	rc := NewRootCommand(strings.NewReader(stdin), &stdout, &stderr)
	rc.SetArgs(append(args, "--no-color"))
	err := rc.Execute()
	return stdout.String(), err
}

func TestListPage(t *testing.T) {
	export := writeExport(t, 25)
	out, err := run(t, "", "list", "--file", export, "--sort", "id_asc", "--page", "2")
	require.NoError(t, err)

	assert.Contains(t, out, "page 2/2 sort id_asc at /requests/2/")
	assert.Contains(t, out, "« 1 [2] -")
	assert.Contains(t, out, "pilot-25")
	assert.Contains(t, out, "pilot-21")
	assert.NotContains(t, out, "pilot-20")
}

func TestListFilters(t *testing.T) {
	export := writeExport(t, 25)
	out, err := run(t, "", "list", "--file", export, "--filter", "ship:Merlin", "--filter", "status:paid")
	require.NoError(t, err)
	assert.Contains(t, out, "page 1/1 sort unsorted")
	// Merlin rows are the odd positions, paid every third: positions 5, 11, 17, 23
	for _, id := range []int{20, 14, 8, 2} {
		assert.Contains(t, out, fmt.Sprintf("pilot-%02d", id))
	}
	assert.NotContains(t, out, "pilot-25")

	_, err = run(t, "", "list", "--file", export, "--filter", "ship:Thrasher")
	assert.Error(t, err)
	_, err = run(t, "", "list", "--file", export, "--page", "3")
	assert.Error(t, err)
}

func TestImportThenList(t *testing.T) {
	export := writeExport(t, 25)
	db := filepath.Join(t.TempDir(), "srp.db")

	out, err := run(t, "", "import", export, "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "imported 25 requests")

	out, err = run(t, "", "list", "--db", db, "--filter", "ship:Rifter", "--sort", "id_dsc")
	require.NoError(t, err)
	assert.Contains(t, out, "page 1/1 sort id_dsc")
	assert.Contains(t, out, "pilot-25")
	assert.NotContains(t, out, "pilot-24")

	_, err = run(t, "", "list")
	assert.Error(t, err)
}

func TestShowAndDelete(t *testing.T) {
	export := writeExport(t, 25)
	db := filepath.Join(t.TempDir(), "srp.db")
	_, err := run(t, "", "import", export, "--db", db)
	require.NoError(t, err)

	out, err := run(t, "", "show", "7", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "pilot-07")
	assert.Contains(t, out, "/request/7/")
	assert.Contains(t, out, "7000000")

	fromFile, err := run(t, "", "show", "7", "--file", export)
	require.NoError(t, err)
	assert.Equal(t, out, fromFile)

	out, err = run(t, "", "delete", "7", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "deleted request 7")

	_, err = run(t, "", "show", "7", "--db", db)
	assert.Error(t, err)
	_, err = run(t, "", "delete", "7", "--db", db)
	assert.Error(t, err)

	out, err = run(t, "", "list", "--db", db, "--filter", "pilot:pilot-07")
	assert.Error(t, err, out)
	out, err = run(t, "", "list", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "page 1/2")
	assert.NotContains(t, out, "pilot-07")
}

func TestBrowse(t *testing.T) {
	export := writeExport(t, 25)
	script := strings.Join([]string{
		"# walk the pages",
		"page next",
		"back",
		"forward",
		"",
		"sort id",
		"sort id",
		"add hull:Rifter",
		"add ship:Rifter",
		"back",
	}, "\n")

	out, err := run(t, script, "browse", "--file", export)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 8)
	assert.Equal(t, "page next: page 2/2 sort unsorted at /requests/2/", lines[0])
	assert.Equal(t, "back: page 1/2 sort unsorted at /requests/1/", lines[1])
	assert.Equal(t, "forward: page 2/2 sort unsorted at /requests/2/", lines[2])
	assert.Equal(t, "sort id: page 2/2 sort id_asc at /requests/2/", lines[3])
	assert.Equal(t, "sort id: page 2/2 sort id_dsc at /requests/2/", lines[4])
	assert.True(t, strings.HasPrefix(lines[5], "add hull:Rifter: "), lines[5])
	assert.Equal(t, "add ship:Rifter: page 1/1 sort id_dsc at /requests/1/", lines[6])
	// the filtered list no longer has a second page
	assert.Contains(t, lines[7], "back: ")
	assert.Contains(t, lines[7], "page out of range")
}

func TestBrowseBackKeepsConfiguredSort(t *testing.T) {
	export := writeExport(t, 45)
	out, err := run(t, "page next\nback\n", "browse", "--file", export, "--sort", "id_dsc")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "page next: page 2/3 sort id_dsc at /requests/2/", lines[0])
	assert.Equal(t, "back: page 1/3 sort id_dsc at /requests/1/", lines[1])
}

func TestPages(t *testing.T) {
	out, err := run(t, "", "pages", "10", "1")
	require.NoError(t, err)
	assert.Equal(t, "- [1] 2 3 4 5 … 9 10 »\n", out)

	out, err = run(t, "", "pages", "1", "1")
	require.NoError(t, err)
	assert.Equal(t, "\n", out)

	_, err = run(t, "", "pages", "10", "11")
	assert.Error(t, err)
}
