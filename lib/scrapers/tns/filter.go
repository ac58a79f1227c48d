package tns

import (
	"frbcat/lib/frame"
)

// FilterOptions mirrors the catalog's inclusion policy. The zero
// value excludes everything, use DefaultFilterOptions for the usual
// include-all behavior.
type FilterOptions struct {
	// OneOffs includes bursts never seen to repeat.
	OneOffs bool
	// Repeaters includes bursts attributed to a repeating source.
	Repeaters bool
	// RepeatBursts keeps every burst of a repeater rather than just
	// the earliest.
	RepeatBursts bool
}

func DefaultFilterOptions() FilterOptions {
	return FilterOptions{
		OneOffs:      true,
		Repeaters:    true,
		RepeatBursts: true,
	}
}

// Filter applies the inclusion policy in place. TNS marks repeat
// bursts by pointing repeater_of_objid at the original detection, so
// a null there means a one-off.
func Filter(f *frame.Frame, opts FilterOptions) {
	if !opts.OneOffs {
		f.Filter(func(row frame.Row) bool {
			return !row["repeater_of_objid"].IsNull()
		})
	}

	if !opts.Repeaters {
		f.Filter(func(row frame.Row) bool {
			return row["repeater_of_objid"].IsNull()
		})
	}

	if !opts.RepeatBursts {
		// keep the earliest burst per repeating source
		f.SortBy("photometry_date", true)
		seen := map[string]bool{}
		f.Filter(func(row frame.Row) bool {
			if row["repeater_of_objid"].IsNull() {
				return true
			}
			objid := row["repeater_of_objid"].Render()
			if seen[objid] {
				return false
			}
			seen[objid] = true
			return true
		})
	}
}
