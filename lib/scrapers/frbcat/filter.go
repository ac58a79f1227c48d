package frbcat

import (
	"sort"

	"frbcat/lib/frame"
)

// FilterOptions mirrors the catalog's inclusion policy. The zero
// value excludes everything, use DefaultFilterOptions for the usual
// include-all behavior.
type FilterOptions struct {
	// OneOffs includes bursts never seen to repeat.
	OneOffs bool
	// Repeaters includes sources with more than one detected burst.
	Repeaters bool
	// RepeatBursts keeps every burst of a repeater rather than just
	// the earliest.
	RepeatBursts bool
	// OnePerFRB collapses the archive's multiple analyses per burst
	// to the single row with the most populated fields.
	OnePerFRB bool
}

func DefaultFilterOptions() FilterOptions {
	return FilterOptions{
		OneOffs:      true,
		Repeaters:    true,
		RepeatBursts: true,
		OnePerFRB:    true,
	}
}

// Filter applies the deduplication policy in place.
func Filter(f *frame.Frame, opts FilterOptions) {
	if opts.OnePerFRB {
		// keep, per detection time, the analysis carrying the most
		// determined parameters
		cols := f.Columns()
		rows := f.Rows()
		sort.SliceStable(rows, func(i, j int) bool {
			return rows[i].NonNullCount(cols) > rows[j].NonNullCount(cols)
		})
		f.DropDuplicates([]string{"utc"}, frame.KeepFirst)
	}

	if !opts.OneOffs {
		// only keep repeat detections
		duplicated := f.Duplicated("frb_name")
		i := 0
		f.Filter(func(frame.Row) bool {
			keep := duplicated[i]
			i++
			return keep
		})
	}

	if !opts.Repeaters {
		f.DropDuplicates([]string{"frb_name"}, frame.KeepNone)
	}

	if !opts.RepeatBursts {
		f.SortBy("utc", true)
		f.DropDuplicates([]string{"frb_name"}, frame.KeepFirst)
	}
}
