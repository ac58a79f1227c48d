package frbcat

import (
	"context"
	"log/slog"
	"time"

	"frbcat/lib/burststore"
	"frbcat/lib/frame"
	"frbcat/lib/snapshot"
)

// Source is the snapshot and archive key for this scraper.
const Source = "frbcat"

type Options struct {
	Filter FilterOptions
	// Update controls when the archive is re-fetched over the
	// network, see snapshot.Policy.
	Update snapshot.Policy
	// Snapshots is the directory holding dated CSV copies of the
	// raw archive.
	Snapshots snapshot.Dir
}

func DefaultOptions(snapshots snapshot.Dir) Options {
	return Options{
		Filter:    DefaultFilterOptions(),
		Update:    snapshot.Monthly,
		Snapshots: snapshots,
	}
}

// Catalog produces the cleaned, filtered FRBCAT table: one row per
// detected burst, sorted newest first, columns in alphabetical order.
//
// The raw merged archive is snapshotted as CSV before cleaning; when
// the update policy says the local copy is fresh, or the network
// fetch fails, the newest snapshot is used instead.
func (c *Client) Catalog(ctx context.Context, opts Options) (*frame.Frame, error) {
	raw, err := c.rawTable(ctx, opts)
	if err != nil {
		return nil, err
	}

	Clean(raw)
	TransformCoordinates(ctx, raw)
	Filter(raw, opts.Filter)

	raw.SortBy("utc", false)
	raw.SortColumns()
	return raw, nil
}

func (c *Client) rawTable(ctx context.Context, opts Options) (*frame.Frame, error) {
	now := time.Now()

	fetch, err := opts.Snapshots.ShouldFetch(Source, opts.Update, now)
	if err != nil {
		return nil, err
	}

	if fetch {
		raw, err := c.FetchRaw(ctx)
		if err == nil {
			path, err := opts.Snapshots.Save(Source, now, raw)
			if err != nil {
				return nil, err
			}
			slog.InfoContext(ctx, "saved snapshot", "path", path)
			return raw, nil
		}
		slog.WarnContext(ctx, "failed to fetch FRBCAT, falling back to local snapshot", "err", err)
	}

	raw, path, err := opts.Snapshots.Latest(Source)
	if err != nil {
		return nil, err
	}
	slog.InfoContext(ctx, "using local snapshot", "path", path)
	return raw, nil
}

// Columns maps the cleaned table onto the canonical burst schema.
func Columns() burststore.ColumnMap {
	return burststore.ColumnMap{
		Name:      "frb_name",
		Utc:       "utc",
		Telescope: "telescope",
		DM:        "dm",
		DMErr:     "dm_err",
		SNR:       "snr",
		Fluence:   "fluence",
		RA:        "ra",
		Dec:       "dec",
		GL:        "gl",
		GB:        "gb",
		Repeater:  "type",
	}
}
