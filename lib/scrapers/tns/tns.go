package tns

import (
	"context"
	"log/slog"
	"time"

	"frbcat/lib/burststore"
	"frbcat/lib/frame"
	"frbcat/lib/snapshot"
)

// Source is the snapshot and archive key for this scraper.
const Source = "tns"

type Options struct {
	Filter FilterOptions
	// Update controls when the server is re-scraped over the network,
	// see snapshot.Policy.
	Update snapshot.Policy
	// Snapshots is the directory holding dated CSV copies of the
	// cleaned table.
	Snapshots snapshot.Dir
}

func DefaultOptions(snapshots snapshot.Dir) Options {
	return Options{
		Filter:    DefaultFilterOptions(),
		Update:    snapshot.Monthly,
		Snapshots: snapshots,
	}
}

// Catalog produces the cleaned, filtered TNS table: one row per
// burst, sorted newest first, columns in alphabetical order.
//
// Unlike the FRBCAT archive, the snapshot is taken after cleaning:
// the raw search pages are too bulky to be worth keeping.
func (c *Client) Catalog(ctx context.Context, opts Options) (*frame.Frame, error) {
	f, err := c.cleanedTable(ctx, opts)
	if err != nil {
		return nil, err
	}

	Filter(f, opts.Filter)

	f.SortBy("discovery_date", false)
	f.SortColumns()
	return f, nil
}

func (c *Client) cleanedTable(ctx context.Context, opts Options) (*frame.Frame, error) {
	now := time.Now()

	fetch, err := opts.Snapshots.ShouldFetch(Source, opts.Update, now)
	if err != nil {
		return nil, err
	}

	if fetch {
		f, err := c.fetchCleaned(ctx)
		if err == nil {
			path, err := opts.Snapshots.Save(Source, now, f)
			if err != nil {
				return nil, err
			}
			slog.InfoContext(ctx, "saved snapshot", "path", path)
			return f, nil
		}
		slog.WarnContext(ctx, "failed to fetch TNS, falling back to local snapshot", "err", err)
	}

	f, path, err := opts.Snapshots.Latest(Source)
	if err != nil {
		return nil, err
	}
	slog.InfoContext(ctx, "using local snapshot", "path", path)
	return f, nil
}

func (c *Client) fetchCleaned(ctx context.Context) (*frame.Frame, error) {
	entries, err := c.FetchEntries(ctx)
	if err != nil {
		return nil, err
	}

	f := Flatten(entries)
	Clean(f)
	TransformCoordinates(ctx, f)
	return f, nil
}

// Columns maps the cleaned table onto the canonical burst schema.
func Columns() burststore.ColumnMap {
	return burststore.ColumnMap{
		Name:      "name",
		Utc:       "discovery_date",
		Telescope: "telescope",
		DM:        "dm",
		SNR:       "snr",
		Fluence:   "fluence",
		RA:        "ra_frac",
		Dec:       "dec_frac",
		GL:        "gl_frac",
		GB:        "gb_frac",
		Repeater:  "repeater_of_objid",
	}
}
