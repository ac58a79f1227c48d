// Package burststore archives canonical burst rows in sqlite, one
// batch per fetch, so that catalog contents can be compared across
// fetches.
package burststore

import (
	"context"
	"database/sql"
	"time"

	"frbcat/lib/frame"

	_ "modernc.org/sqlite"
)

type Store struct {
	db *sql.DB
}

func NewStore(database *sql.DB) Store {
	return Store{db: database}
}

// Burst is the canonical per-event row shared by both sources.
// Missing catalog fields stay invalid rather than zero.
type Burst struct {
	Name      string
	Utc       sql.NullTime
	Telescope sql.NullString
	DM        sql.NullFloat64
	DMErr     sql.NullFloat64
	SNR       sql.NullFloat64
	Fluence   sql.NullFloat64
	RA        sql.NullFloat64
	Dec       sql.NullFloat64
	GL        sql.NullFloat64
	GB        sql.NullFloat64
	Repeater  bool
}

type PushRequest struct {
	Source    string
	FetchedAt time.Time
	Bursts    []Burst
}

// Push stores one fetch worth of bursts, replacing any batch already
// stored for the same source and day. Last write wins.
func (s Store) Push(ctx context.Context, req PushRequest) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	dayStart := time.Date(
		req.FetchedAt.Year(), req.FetchedAt.Month(), req.FetchedAt.Day(),
		0, 0, 0, 0, time.UTC,
	).Unix()
	dayEnd := dayStart + 24*60*60

	_, err = tx.ExecContext(ctx, `
		DELETE FROM bursts
		WHERE source = ? AND fetched_at >= ? AND fetched_at < ?`,
		req.Source, dayStart, dayEnd,
	)
	if err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO bursts (
			source, fetched_at, name, utc, telescope,
			dm, dm_err, snr, fluence, ra, dec, gl, gb, repeater
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, b := range req.Bursts {
		var utc sql.NullInt64
		if b.Utc.Valid {
			utc = sql.NullInt64{Int64: b.Utc.Time.Unix(), Valid: true}
		}
		_, err = stmt.ExecContext(ctx,
			req.Source, req.FetchedAt.Unix(), b.Name, utc, b.Telescope,
			b.DM, b.DMErr, b.SNR, b.Fluence, b.RA, b.Dec, b.GL, b.GB,
			b.Repeater,
		)
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}

// Pull reads back the most recent batch stored for a source, newest
// burst first.
func (s Store) Pull(ctx context.Context, source string) ([]Burst, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT name, utc, telescope, dm, dm_err, snr, fluence,
		       ra, dec, gl, gb, repeater
		FROM bursts
		WHERE source = ?
		  AND fetched_at = (
			SELECT COALESCE(MAX(fetched_at), 0) FROM bursts WHERE source = ?
		  )
		ORDER BY utc DESC`,
		source, source,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bursts []Burst
	for rows.Next() {
		var b Burst
		var utc sql.NullInt64
		err := rows.Scan(
			&b.Name, &utc, &b.Telescope, &b.DM, &b.DMErr, &b.SNR,
			&b.Fluence, &b.RA, &b.Dec, &b.GL, &b.GB, &b.Repeater,
		)
		if err != nil {
			return nil, err
		}
		if utc.Valid {
			b.Utc = sql.NullTime{Time: time.Unix(utc.Int64, 0).UTC(), Valid: true}
		}
		bursts = append(bursts, b)
	}
	return bursts, rows.Err()
}

// ColumnMap names the frame columns feeding each Burst field, since
// the two sources use different column names for the same quantity.
type ColumnMap struct {
	Name      string
	Utc       string
	Telescope string
	DM        string
	DMErr     string
	SNR       string
	Fluence   string
	RA        string
	Dec       string
	GL        string
	GB        string
	// Repeater marks a row as a repeat burst when the column is
	// non-null and, for string columns, not equal to "one-off".
	Repeater string
}

// FromFrame converts a cleaned catalog frame into canonical bursts.
// Rows without a name are skipped.
func FromFrame(f *frame.Frame, cols ColumnMap) []Burst {
	nullFloat := func(row frame.Row, col string) sql.NullFloat64 {
		if v, ok := row[col].Float(); ok {
			return sql.NullFloat64{Float64: v, Valid: true}
		}
		return sql.NullFloat64{}
	}

	var bursts []Burst
	for _, row := range f.Rows() {
		name, ok := row[cols.Name].Str()
		if !ok {
			continue
		}
		b := Burst{
			Name:    name,
			DM:      nullFloat(row, cols.DM),
			DMErr:   nullFloat(row, cols.DMErr),
			SNR:     nullFloat(row, cols.SNR),
			Fluence: nullFloat(row, cols.Fluence),
			RA:      nullFloat(row, cols.RA),
			Dec:     nullFloat(row, cols.Dec),
			GL:      nullFloat(row, cols.GL),
			GB:      nullFloat(row, cols.GB),
		}
		if ts, ok := row[cols.Utc].Time(); ok {
			b.Utc = sql.NullTime{Time: ts, Valid: true}
		}
		if tele, ok := row[cols.Telescope].Str(); ok {
			b.Telescope = sql.NullString{String: tele, Valid: true}
		}
		if v := row[cols.Repeater]; !v.IsNull() {
			s, isStr := v.Str()
			b.Repeater = !isStr || s != "one-off"
		}
		bursts = append(bursts, b)
	}
	return bursts
}
