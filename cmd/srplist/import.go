package main

import (
	"fmt"
	"log/slog"

	"github.com/guyvdb/srplist/store"
	"github.com/spf13/cobra"
)

func newImportCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "import <export.json>",
		Short: "Write a JSON export into the snapshot database.",
		Long: `Replaces the contents of the --db snapshot with the requests in the
given export. Records keep their export order and the filter value indexes
are rebuilt.
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if e.cfg.DB == "" {
				return fmt.Errorf("--db is required")
			}
			records, err := readExport(args[0])
			if err != nil {
				return err
			}

			bs, err := store.NewBoltStore(e.cfg.DB)
			if err != nil {
				return err
			}
			defer bs.Close()

			if err := bs.PutAll(records); err != nil {
				return err
			}
			slog.Info("import - snapshot written", "db", e.cfg.DB, "requests", len(records))
			fmt.Fprintf(e.stdout, "imported %d requests into %s\n", len(records), e.cfg.DB)
			return nil
		},
	}
}
