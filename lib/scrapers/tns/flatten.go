package tns

import (
	"frbcat/lib/frame"
)

// Flatten turns parsed entries into a single table: each object's
// fields plus its most recent report and photometry sub-entries.
// Sub-entry keys that collide with object keys get the sub-table
// name as a prefix.
func Flatten(entries []entry) *frame.Frame {
	f := frame.New()
	for _, e := range entries {
		row := frame.Row{}
		for key, val := range e.fields {
			row[key] = frame.String(val)
		}
		// always take the most recent sub-entry
		mergeSub(row, e.fields, "reports", e.reports)
		mergeSub(row, e.fields, "photometry", e.photometry)
		mergeSub(row, e.fields, "file", e.files)
		f.Append(row)
	}
	return f
}

func mergeSub(row frame.Row, fields map[string]string, prefix string, sub []map[string]string) {
	if len(sub) == 0 {
		return
	}
	for key, val := range sub[0] {
		name := key
		if _, collides := fields[key]; collides {
			name = prefix + "_" + key
		}
		row[name] = frame.String(val)
	}
}
