package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/guyvdb/srplist/app"
	"github.com/guyvdb/srplist/history"
	"github.com/spf13/cobra"
)

func newBrowseCommand(e *env) *cobra.Command {
	var (
		file   string
		script string
	)
	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Drive the request list with a script of events.",
		Long: `Reads one event per line from --script, or standard input, and applies it
to the request list. After each event the position and location are printed.

	add <attr>:<value>      add a filter token
	remove <attr>:<value>   remove a filter token
	sort <column>           click a column header
	page prev|next|<n>      click the pager
	back, forward           move through history
	show                    print the current page

Rejected events are reported and skipped. Blank lines and lines starting
with # are ignored.
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in := e.stdin
			if script != "" {
				f, err := os.Open(script)
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}

			nav := history.NewMemoryNavigator(history.Entry{URL: e.cfg.BasePath})
			a, err := e.newApp(file, nav)
			if err != nil {
				return err
			}
			return browse(a, nav, in, e.stdout)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&file, "file", "f", "", "JSON export to read instead of the snapshot database.")
	flags.StringVarP(&script, "script", "s", "", "Event script, one event per line.")
	return cmd
}

func browse(a *app.App, nav *history.MemoryNavigator, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		var err error
		switch line {
		case "show":
			renderPage(out, a)
			continue
		case "back", "forward":
			err = replay(a, nav, line)
		default:
			var ev app.Event
			if ev, err = app.ParseCommand(line); err == nil {
				err = a.Dispatch(ev)
			}
		}

		if err != nil {
			fmt.Fprintf(out, "%s: %v\n", line, err)
			continue
		}
		fmt.Fprintf(out, "%s: %s\n", line, position(a))
	}
	return scanner.Err()
}

func replay(a *app.App, nav *history.MemoryNavigator, direction string) error {
	move := nav.Back
	if direction == "forward" {
		move = nav.Forward
	}
	entry, ok := move()
	if !ok {
		return fmt.Errorf("no %s history", direction)
	}
	return a.Dispatch(app.StateRestored{State: entry.State})
}
