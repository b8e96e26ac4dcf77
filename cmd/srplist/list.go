package main

import (
	"github.com/guyvdb/srplist/app"
	"github.com/guyvdb/srplist/history"
	"github.com/spf13/cobra"
)

func newListCommand(e *env) *cobra.Command {
	var (
		file    string
		filters []string
		page    int
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print one page of requests.",
		Long: `Prints a single page of the request list followed by the pager.

Filters are given as attribute:value tokens. Tokens on the same attribute
match either value, tokens on different attributes must all match:

	srplist list --file export.json --filter status:approved --filter status:paid --filter ship:Rifter
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			nav := history.NewMemoryNavigator(history.Entry{URL: e.cfg.BasePath})
			a, err := e.newApp(file, nav)
			if err != nil {
				return err
			}
			for _, token := range filters {
				attr, value, err := app.ParseToken(token)
				if err != nil {
					return err
				}
				if err := a.Dispatch(app.FilterAdded{Attr: attr, Value: value}); err != nil {
					return err
				}
			}
			if page != 1 {
				if err := a.Dispatch(app.PagerClicked{Action: app.PagerNumber, Number: page}); err != nil {
					return err
				}
			}
			renderPage(e.stdout, a)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&file, "file", "f", "", "JSON export to read instead of the snapshot database.")
	flags.StringArrayVar(&filters, "filter", nil, "Filter token attribute:value, repeatable.")
	flags.IntVarP(&page, "page", "p", 1, "Page to print, starting at 1.")
	return cmd
}
