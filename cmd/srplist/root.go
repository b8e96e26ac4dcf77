package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/guyvdb/srplist/app"
	"github.com/guyvdb/srplist/config"
	"github.com/guyvdb/srplist/history"
	"github.com/guyvdb/srplist/logx"
	"github.com/guyvdb/srplist/record"
	"github.com/guyvdb/srplist/store"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// env is shared by every subcommand. cfg is filled in before any RunE.
type env struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	cfg    *config.Config
}

func NewRootCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	e := &env{stdin: stdin, stdout: stdout, stderr: stderr}
	var configFile string

	rc := &cobra.Command{
		Use:   "srplist",
		Short: "Browse reimbursement requests from a bulk export.",
		Long: `srplist loads the bulk request export once and then filters, sorts and
pages through it in memory. Requests come from a JSON export (--file) or from
a snapshot written earlier by "srplist import" (--db).

Every flag can also be set in the config file or through an SRPLIST_
environment variable, e.g. SRPLIST_PAGE_SIZE=50.
`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			v := viper.New()
			if err := v.BindPFlags(cmd.Flags()); err != nil {
				return fmt.Errorf("binding flags: %w", err)
			}
			cfg, err := config.Load(v, configFile)
			if err != nil {
				return err
			}
			level, err := logx.ParseLevel(cfg.LogLevel)
			if err != nil {
				return fmt.Errorf("log level '%s': %w", cfg.LogLevel, err)
			}
			slog.SetDefault(logx.New(e.stderr, level, cfg.NoColor))
			e.cfg = cfg
			return nil
		},
	}

	flags := rc.PersistentFlags()
	flags.StringVarP(&configFile, "config", "c", "", "Configuration file to read from.")
	flags.String("db", "", "Snapshot database written by import.")
	flags.Int("page-size", 20, "Requests per page.")
	flags.String("sort", "", "Initial sort name, e.g. kill_timestamp_dsc.")
	flags.String("locale", "en", "Locale used for alphabetical sorts.")
	flags.String("base-path", "/requests/", "Path the page number is appended to.")
	flags.String("log-level", "info", "debug, info, warn or error.")
	flags.Bool("no-color", false, "Disable colored log output.")

	rc.AddCommand(newImportCommand(e))
	rc.AddCommand(newListCommand(e))
	rc.AddCommand(newBrowseCommand(e))
	rc.AddCommand(newPagesCommand(e))
	rc.AddCommand(newShowCommand(e))
	rc.AddCommand(newDeleteCommand(e))

	rc.SetOut(stdout)
	rc.SetErr(stderr)
	rc.SetIn(stdin)
	return rc
}

func readExport(path string) ([]record.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return record.Decode(f)
}

// newApp loads requests from file when given and from the snapshot
// database otherwise. With a snapshot the filter domains are read from its
// indexes.
func (e *env) newApp(file string, nav history.Navigator) (*app.App, error) {
	if file != "" {
		records, err := readExport(file)
		if err != nil {
			return nil, err
		}
		return app.New(records, nil, e.cfg, nav)
	}
	if e.cfg.DB == "" {
		return nil, fmt.Errorf("one of --file or --db is required")
	}

	bs, err := store.NewBoltStore(e.cfg.DB)
	if err != nil {
		return nil, err
	}
	defer bs.Close()

	records, err := bs.GetAll()
	if err != nil {
		return nil, err
	}
	return app.New(records, bs, e.cfg, nav)
}
