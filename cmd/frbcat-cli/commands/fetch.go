package commands

import (
	"fmt"
	"os"
	"time"

	"frbcat/lib/burststore"
	"frbcat/lib/burststore/db"
	"frbcat/lib/frame"
	"frbcat/lib/restyutil"
	"frbcat/lib/scrapers/frbcat"
	"frbcat/lib/scrapers/tns"
	"frbcat/lib/snapshot"
	"frbcat/lib/sqliteutil"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

type Config struct {
	// TnsId and TnsName identify the registered TNS bot used when
	// fetching from the Transient Name Server.
	TnsId   int    `json:"tns_id"`
	TnsName string `json:"tns_name"`
	// SnapshotDir holds the dated CSV copies, defaults to the working
	// directory.
	SnapshotDir string `json:"snapshot_dir"`
}

var fetchFlags struct {
	source       string
	update       string
	oneOffs      bool
	repeaters    bool
	repeatBursts bool
	onePerFrb    bool
	csvPath      string
	dbPath       string
	limit        int
	debugHttp    string
}

func init() {
	f := fetchCmd.Flags()
	f.StringVar(&fetchFlags.source, "source", "frbcat", "Catalog to fetch, frbcat or tns.")
	f.StringVar(&fetchFlags.update, "update", "monthly", "When to re-fetch over the network: always, monthly or never.")
	f.BoolVar(&fetchFlags.oneOffs, "one-offs", true, "Include bursts never seen to repeat.")
	f.BoolVar(&fetchFlags.repeaters, "repeaters", true, "Include repeating sources.")
	f.BoolVar(&fetchFlags.repeatBursts, "repeat-bursts", true, "Keep every burst of a repeater rather than just the earliest.")
	f.BoolVar(&fetchFlags.onePerFrb, "one-per-frb", true, "Collapse multiple analyses of the same burst to one row (frbcat only).")
	f.StringVar(&fetchFlags.csvPath, "csv", "", "Write the resulting table to a CSV file.")
	f.StringVar(&fetchFlags.dbPath, "db", "", "Archive the canonical burst rows into a sqlite database.")
	f.IntVar(&fetchFlags.limit, "limit", 25, "How many rows to print, 0 for all.")
	f.StringVar(&fetchFlags.debugHttp, "debug-http", "", "Dump every HTTP exchange into this directory.")
	rootCmd.AddCommand(fetchCmd)
}

var fetchCmd = &cobra.Command{
	Use:   "fetch [--source frbcat|tns]",
	Short: "Fetches a burst catalog, prints it and optionally archives it.",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := readConfig()
		if err != nil {
			fatal("failed to read config", err)
		}

		update, err := snapshot.ParsePolicy(fetchFlags.update)
		if err != nil {
			fatal("bad --update flag", err)
		}
		snapshots := snapshot.Dir{Path: cfg.SnapshotDir}

		if fetchFlags.debugHttp != "" {
			output := restyutil.NewFilesystemOutput(fetchFlags.debugHttp)
			frbcat.SetRestyInstrumentOutput(output)
			tns.SetRestyInstrumentOutput(output)
		}

		var f *frame.Frame
		var cols burststore.ColumnMap

		switch fetchFlags.source {
		case frbcat.Source:
			client := frbcat.NewClient(frbcat.ClientOptions{})
			opts := frbcat.DefaultOptions(snapshots)
			opts.Update = update
			opts.Filter = frbcat.FilterOptions{
				OneOffs:      fetchFlags.oneOffs,
				Repeaters:    fetchFlags.repeaters,
				RepeatBursts: fetchFlags.repeatBursts,
				OnePerFRB:    fetchFlags.onePerFrb,
			}
			f, err = client.Catalog(cmd.Context(), opts)
			cols = frbcat.Columns()
		case tns.Source:
			client := tns.NewClient(tns.ClientOptions{
				TnsId:   cfg.TnsId,
				TnsName: cfg.TnsName,
			})
			opts := tns.DefaultOptions(snapshots)
			opts.Update = update
			opts.Filter = tns.FilterOptions{
				OneOffs:      fetchFlags.oneOffs,
				Repeaters:    fetchFlags.repeaters,
				RepeatBursts: fetchFlags.repeatBursts,
			}
			f, err = client.Catalog(cmd.Context(), opts)
			cols = tns.Columns()
		default:
			fatal("bad --source flag", fmt.Errorf("unknown source %q, want frbcat or tns", fetchFlags.source))
		}
		if err != nil {
			fatal("failed to fetch catalog", err)
		}

		if fetchFlags.csvPath != "" {
			if err := writeCsv(f, fetchFlags.csvPath); err != nil {
				fatal("failed to write csv", err)
			}
		}
		if fetchFlags.dbPath != "" {
			if err := archive(cmd, f, cols); err != nil {
				fatal("failed to archive bursts", err)
			}
		}

		renderCatalog(f, cols, fetchFlags.limit)
	},
}

func writeCsv(f *frame.Frame, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return f.WriteCSV(file)
}

func archive(cmd *cobra.Command, f *frame.Frame, cols burststore.ColumnMap) error {
	database, err := sqliteutil.OpenDB(db.Schema, fetchFlags.dbPath)
	if err != nil {
		return err
	}
	defer database.Close()

	store := burststore.NewStore(database)
	return store.Push(cmd.Context(), burststore.PushRequest{
		Source:    fetchFlags.source,
		FetchedAt: time.Now(),
		Bursts:    burststore.FromFrame(f, cols),
	})
}

// renderCatalog prints the canonical columns, the full table is far
// too wide for a terminal.
func renderCatalog(f *frame.Frame, cols burststore.ColumnMap, limit int) {
	t := newTable()
	t.AppendHeader(table.Row{
		"name", "utc", "telescope", "dm", "snr", "fluence", "ra", "dec",
	})

	shown := 0
	for _, row := range f.Rows() {
		if limit > 0 && shown >= limit {
			break
		}
		t.AppendRow(table.Row{
			row[cols.Name].Render(),
			row[cols.Utc].Render(),
			row[cols.Telescope].Render(),
			row[cols.DM].Render(),
			row[cols.SNR].Render(),
			row[cols.Fluence].Render(),
			row[cols.RA].Render(),
			row[cols.Dec].Render(),
		})
		shown++
	}
	t.Render()

	if limit > 0 && f.Len() > limit {
		fmt.Printf("... %d more rows\n", f.Len()-limit)
	}
}
