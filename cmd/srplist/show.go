package main

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/guyvdb/srplist/fault"
	"github.com/guyvdb/srplist/record"
	"github.com/guyvdb/srplist/store"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func parseId(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("request id '%s': %w", arg, err)
	}
	return id, nil
}

func newShowCommand(e *env) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Print every attribute of one request.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseId(args[0])
			if err != nil {
				return err
			}
			r, err := e.lookup(file, id)
			if err != nil {
				return err
			}

			t := table.NewWriter()
			t.SetOutputMirror(e.stdout)
			t.SetStyle(table.StyleLight)
			t.AppendHeader(table.Row{"Attribute", "Value"})
			for _, attr := range record.Attributes() {
				t.AppendRow(table.Row{attr.String(), attr.Of(&r).Key()})
			}
			t.Render()
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "JSON export to read instead of the snapshot database.")
	return cmd
}

func (e *env) lookup(file string, id int64) (record.Record, error) {
	if file != "" {
		records, err := readExport(file)
		if err != nil {
			return record.Record{}, err
		}
		s, err := record.NewStore(records)
		if err != nil {
			return record.Record{}, err
		}
		r, ok := s.Get(id)
		if !ok {
			return r, fmt.Errorf("%w: request %d", fault.ErrKeyNotFound, id)
		}
		return r, nil
	}
	if e.cfg.DB == "" {
		return record.Record{}, fmt.Errorf("one of --file or --db is required")
	}

	bs, err := store.NewBoltStore(e.cfg.DB)
	if err != nil {
		return record.Record{}, err
	}
	defer bs.Close()

	r, err := bs.Get(id)
	if err != nil {
		return r, fmt.Errorf("request %d: %w", id, err)
	}
	return r, nil
}

func newDeleteCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Remove one request from the snapshot database.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseId(args[0])
			if err != nil {
				return err
			}
			if e.cfg.DB == "" {
				return fmt.Errorf("--db is required")
			}

			bs, err := store.NewBoltStore(e.cfg.DB)
			if err != nil {
				return err
			}
			defer bs.Close()

			exists, err := bs.Exists(id)
			if err != nil {
				return err
			}
			if !exists {
				return fmt.Errorf("%w: request %d", fault.ErrKeyNotFound, id)
			}
			if err := bs.Delete(id); err != nil {
				return err
			}
			slog.Info("delete - request removed", "db", e.cfg.DB, "id", id)
			fmt.Fprintf(e.stdout, "deleted request %d from %s\n", id, e.cfg.DB)
			return nil
		},
	}
}
