package frame

import (
	"fmt"
	"slices"
	"sort"
	"strings"
)

// Row maps column names to cells. Columns absent from the row are null.
type Row map[string]Value

// NonNullCount reports how many of the given columns hold a value.
func (r Row) NonNullCount(cols []string) int {
	n := 0
	for _, c := range cols {
		if !r[c].IsNull() {
			n++
		}
	}
	return n
}

// Frame is a column-ordered in-memory table. It implements only the
// handful of operations the catalog pipelines need, it is not a
// general dataframe.
type Frame struct {
	cols []string
	rows []Row
}

func New(cols ...string) *Frame {
	return &Frame{cols: slices.Clone(cols)}
}

func (f *Frame) Len() int {
	return len(f.rows)
}

func (f *Frame) Columns() []string {
	return slices.Clone(f.cols)
}

func (f *Frame) HasColumn(name string) bool {
	return slices.Contains(f.cols, name)
}

func (f *Frame) Row(i int) Row {
	return f.rows[i]
}

func (f *Frame) Rows() []Row {
	return f.rows
}

// AddColumn registers a column at the end of the column order.
// Adding an existing column is a no-op.
func (f *Frame) AddColumn(name string) {
	if !slices.Contains(f.cols, name) {
		f.cols = append(f.cols, name)
	}
}

// Append adds a row, registering any columns it introduces.
func (f *Frame) Append(r Row) {
	for c := range r {
		f.AddColumn(c)
	}
	f.rows = append(f.rows, r)
}

func (f *Frame) Get(i int, col string) Value {
	return f.rows[i][col]
}

func (f *Frame) Set(i int, col string, v Value) {
	f.AddColumn(col)
	f.rows[i][col] = v
}

// Rename changes column names per the given mapping. Columns not in
// the mapping keep their names.
func (f *Frame) Rename(mapping map[string]string) {
	for i, c := range f.cols {
		if to, ok := mapping[c]; ok {
			f.cols[i] = to
		}
	}
	for _, row := range f.rows {
		for from, to := range mapping {
			if v, ok := row[from]; ok {
				delete(row, from)
				row[to] = v
			}
		}
	}
}

// RenameFunc rewrites every column name through fn.
func (f *Frame) RenameFunc(fn func(string) string) {
	mapping := make(map[string]string, len(f.cols))
	for _, c := range f.cols {
		to := fn(c)
		if to != c {
			mapping[c] = to
		}
	}
	f.Rename(mapping)
}

// AddPrefix prefixes every column name, mirroring what the upstream
// catalog does when merging note tables.
func (f *Frame) AddPrefix(prefix string) {
	f.RenameFunc(func(c string) string { return prefix + c })
}

// Drop removes the named columns. Unknown names are ignored.
func (f *Frame) Drop(cols ...string) {
	f.DropFunc(func(c string) bool {
		return slices.Contains(cols, c)
	})
}

// DropFunc removes every column for which fn returns true.
func (f *Frame) DropFunc(fn func(string) bool) {
	kept := f.cols[:0]
	for _, c := range f.cols {
		if fn(c) {
			for _, row := range f.rows {
				delete(row, c)
			}
			continue
		}
		kept = append(kept, c)
	}
	f.cols = kept
}

// SortColumns orders columns alphabetically.
func (f *Frame) SortColumns() {
	sort.Strings(f.cols)
}

// SortBy stably sorts rows by a column. Nulls always sort last,
// regardless of direction.
func (f *Frame) SortBy(col string, ascending bool) {
	sort.SliceStable(f.rows, func(i, j int) bool {
		a, b := f.rows[i][col], f.rows[j][col]
		if a.IsNull() {
			return false
		}
		if b.IsNull() {
			return true
		}
		less := compareValues(a, b) < 0
		if !ascending {
			less = compareValues(b, a) < 0
		}
		return less
	})
}

func compareValues(a, b Value) int {
	if af, ok := a.Float(); ok {
		if bf, ok := b.Float(); ok {
			switch {
			case af < bf:
				return -1
			case af > bf:
				return 1
			}
			return 0
		}
	}
	if at, ok := a.Time(); ok {
		if bt, ok := b.Time(); ok {
			return at.Compare(bt)
		}
	}
	return strings.Compare(a.Render(), b.Render())
}

// Filter keeps only rows for which fn returns true.
func (f *Frame) Filter(fn func(Row) bool) {
	kept := f.rows[:0]
	for _, row := range f.rows {
		if fn(row) {
			kept = append(kept, row)
		}
	}
	f.rows = kept
}

type Keep int

const (
	// KeepFirst keeps the first row of every duplicate group.
	KeepFirst Keep = iota
	// KeepNone drops every row belonging to a duplicate group.
	KeepNone
)

func subsetKey(row Row, subset []string) string {
	parts := make([]string, len(subset))
	for i, c := range subset {
		v := row[c]
		if v.IsNull() {
			parts[i] = "\x00"
		} else {
			parts[i] = v.Render()
		}
	}
	return strings.Join(parts, "\x1f")
}

// DropDuplicates removes rows sharing the same values in the subset
// columns. Null cells compare equal to each other.
func (f *Frame) DropDuplicates(subset []string, keep Keep) {
	counts := make(map[string]int, len(f.rows))
	for _, row := range f.rows {
		counts[subsetKey(row, subset)]++
	}

	seen := make(map[string]bool, len(counts))
	kept := f.rows[:0]
	for _, row := range f.rows {
		key := subsetKey(row, subset)
		switch keep {
		case KeepFirst:
			if seen[key] {
				continue
			}
			seen[key] = true
		case KeepNone:
			if counts[key] > 1 {
				continue
			}
		}
		kept = append(kept, row)
	}
	f.rows = kept
}

// Duplicated reports, per row, whether an earlier row holds the same
// value in the given column.
func (f *Frame) Duplicated(col string) []bool {
	out := make([]bool, len(f.rows))
	seen := make(map[string]bool, len(f.rows))
	for i, row := range f.rows {
		key := subsetKey(row, []string{col})
		out[i] = seen[key]
		seen[key] = true
	}
	return out
}

// ValueCounts returns how many rows hold each distinct non-null value
// of the column.
func (f *Frame) ValueCounts(col string) map[string]int {
	counts := map[string]int{}
	for _, row := range f.rows {
		if v := row[col]; !v.IsNull() {
			counts[v.Render()]++
		}
	}
	return counts
}

// LeftJoin joins right onto left: every left row is matched against
// right rows holding an equal join-key cell. Unmatched left rows keep
// null cells for the right columns; left rows with several matches
// fan out into one row per match.
func LeftJoin(left, right *Frame, leftOn, rightOn string) (*Frame, error) {
	if !left.HasColumn(leftOn) {
		return nil, fmt.Errorf("left frame has no column %q", leftOn)
	}
	if !right.HasColumn(rightOn) {
		return nil, fmt.Errorf("right frame has no column %q", rightOn)
	}

	index := map[string][]Row{}
	for _, row := range right.rows {
		if v := row[rightOn]; !v.IsNull() {
			index[v.Render()] = append(index[v.Render()], row)
		}
	}

	out := New()
	for _, c := range left.cols {
		out.AddColumn(c)
	}
	for _, c := range right.cols {
		out.AddColumn(c)
	}

	for _, lrow := range left.rows {
		key := lrow[leftOn]
		var matches []Row
		if !key.IsNull() {
			matches = index[key.Render()]
		}
		if len(matches) == 0 {
			out.rows = append(out.rows, cloneRow(lrow))
			continue
		}
		for _, rrow := range matches {
			joined := cloneRow(lrow)
			for c, v := range rrow {
				if _, taken := joined[c]; !taken {
					joined[c] = v
				}
			}
			out.rows = append(out.rows, joined)
		}
	}
	return out, nil
}

func cloneRow(r Row) Row {
	out := make(Row, len(r))
	for c, v := range r {
		out[c] = v
	}
	return out
}
