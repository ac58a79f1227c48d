package tns

import (
	"strings"
	"time"

	"frbcat/lib/frame"
	"frbcat/lib/measure"
)

// columns the flattened table carries that add nothing to the burst
// record (duplicates of other columns, reporter privacy, web cruft)
var droppedColumns = []string{
	"reps",                    // number of reports on an FRB
	"ot_name",                 // object type (all FRBs anyway)
	"isTNS_AT",                // internal flag
	"public",                  // all downloaded FRBs are public
	"user_name",               // ensuring some privacy
	"discoverydate",           // there is already a discovery_date column
	"reports_internal_name",   // already have internal_name
	"discoverymag",            // same as flux column
	"file_list",               // empty key
	"file_name",               // copy of filename
	"ra",                      // already in reports_ra with error margin
	"decl",                    // same as above
	"dm",                      // already in reports_dm with more info
	"ext_catalogs",            // external catalogues are irrelevant
	"discoverer",              // already in reporter_name
	"observer",                // already in reporter_name
	"photometry",              // number of photometry options
	"end_prop_period",         // proprietary period is irrelevant
	"reports_end_prop_period", // same as above
	"unit_name",               // all in Jy
	"disc_filter_name",        // same as filter_name
}

var columnRenames = map[string]string{
	"filter_name":   "back_end",
	"obsdate":       "photometry_date",
	"groups":        "group",
	"id":            "tns_id",
	"related_files": "num_files",
	"channels_no":   "num_channels",
}

var numericColumns = []string{
	"tns_id",
	"reports_id",
	"photometry_id",
	"snr",
	"num_channels",
	"host_redshift",
	"frac_lin_pol",
}

var dateColumns = []string{
	"time_received",
	"barycentric_event_time",
	"discovery_date",
	"photometry_date",
	"lastmodified",
}

const dateLayout = "2006-01-02 15:04:05"

// Clean normalizes the flattened TNS table in place: redundant
// columns go, names are unified, and the "value (error)" encodings
// split into numeric columns.
func Clean(f *frame.Frame) {
	f.Drop(droppedColumns...)
	dropMirroredColumns(f)

	f.Rename(columnRenames)

	for _, col := range numericColumns {
		coerceFloat(f, col)
	}

	nullBlank(f, "repeater_of_objid")

	splitDm(f)
	splitCoordinates(f)
	splitWithUnit(f, "flux", "")
	splitTelescope(f)
	splitWithUnit(f, "fluence", " Jy ms")
	splitWithUnit(f, "burst_width", " ms")
	splitWithUnit(f, "scattering_time", " ms")
	splitWithUnit(f, "burst_bandwidth", " MHz")
	stripUnit(f, "sampling_time", " ms")
	splitWithUnit(f, "rm", " rad/m2")

	parseDates(f)

	f.SortColumns()
}

func dropMirroredColumns(f *frame.Frame) {
	mirrors := [][2]string{
		{"source_group_name", "reporting_group_name"},
		{"reports_reporting_group_name", "source_group_name"},
		{"reporting_group_name", "groups"},
		{"reports_source_group_name", "source_group_name"},
		{"disc_filter_name", "filter_name"},
		{"reports_galactic_max_dm", "galactic_max_dm"},
		{"reports_public_webpage", "public_webpage"},
	}
	// compare everything before dropping anything: several pairs share
	// a column, and a drop must not hide a later mirror
	var drops []string
	for _, pair := range mirrors {
		drop, keep := pair[0], pair[1]
		if columnsEqual(f, drop, keep) {
			drops = append(drops, drop)
		}
	}
	f.Drop(drops...)
}

func columnsEqual(f *frame.Frame, a, b string) bool {
	if !f.HasColumn(a) || !f.HasColumn(b) {
		return false
	}
	for _, row := range f.Rows() {
		if row[a].Render() != row[b].Render() {
			return false
		}
	}
	return true
}

func maybeCell(m measure.Maybe) frame.Value {
	if !m.OK {
		return frame.Null
	}
	return frame.Float(m.Value)
}

func coerceFloat(f *frame.Frame, col string) {
	if !f.HasColumn(col) {
		return
	}
	for _, row := range f.Rows() {
		if s, ok := row[col].Str(); ok {
			row[col] = maybeCell(measure.Parse(s))
		}
	}
}

func nullBlank(f *frame.Frame, col string) {
	for _, row := range f.Rows() {
		if s, ok := row[col].Str(); ok && strings.TrimSpace(s) == "" {
			row[col] = frame.Null
		}
	}
}

// splitDm separates "557.0 (YMW16)" dispersion measures into the
// value and the electron-density model used to derive it. The reports
// DM becomes the canonical dm column.
func splitDm(f *frame.Frame) {
	for _, col := range []string{"galactic_max_dm", "reports_dm"} {
		if !f.HasColumn(col) {
			continue
		}
		target := col
		if col == "reports_dm" {
			target = "dm"
		}
		f.AddColumn(target)
		f.AddColumn(target + "_model")
		for _, row := range f.Rows() {
			s, ok := row[col].Str()
			if !ok {
				continue
			}
			val, model := measure.SplitParenText(s)
			row[target] = maybeCell(val)
			if model != "" {
				row[target+"_model"] = frame.String(model)
			} else {
				row[target+"_model"] = frame.Null
			}
		}
	}
	f.Drop("reports_dm")
}

// splitCoordinates turns "21:44:25.255 (0.01)" report coordinates
// into sexagesimal ra/decl plus their error columns.
func splitCoordinates(f *frame.Frame) {
	for _, col := range []string{"reports_ra", "reports_decl"} {
		if !f.HasColumn(col) {
			continue
		}
		parts := strings.Split(col, "_")
		target := parts[len(parts)-1]
		f.AddColumn(target)
		f.AddColumn(target + "_err")
		for _, row := range f.Rows() {
			s, ok := row[col].Str()
			if !ok {
				continue
			}
			val, errStr := measure.SplitParenString(s)
			row[target] = frame.String(val)
			if errStr != "" {
				row[target+"_err"] = frame.String(errStr)
			} else {
				row[target+"_err"] = frame.Null
			}
		}
		f.Drop(col)
	}
}

// splitWithUnit splits a "value unit (error)" column into numeric
// value and error columns.
func splitWithUnit(f *frame.Frame, col, unit string) {
	if !f.HasColumn(col) {
		return
	}
	errCol := col + "_err"
	f.AddColumn(errCol)
	for _, row := range f.Rows() {
		s, ok := row[col].Str()
		if !ok {
			continue
		}
		val, errVal := measure.SplitParenErr(s, unit)
		row[col] = maybeCell(val)
		row[errCol] = maybeCell(errVal)
	}
}

func stripUnit(f *frame.Frame, col, unit string) {
	if !f.HasColumn(col) {
		return
	}
	for _, row := range f.Rows() {
		if s, ok := row[col].Str(); ok {
			row[col] = maybeCell(measure.Parse(strings.TrimSuffix(s, unit)))
		}
	}
}

// splitTelescope separates "ASKAP_ICS" instrument designations into
// telescope and observing mode.
func splitTelescope(f *frame.Frame) {
	if !f.HasColumn("tel_inst") {
		return
	}
	f.AddColumn("telescope")
	f.AddColumn("telescope_mode")
	for _, row := range f.Rows() {
		s, ok := row["tel_inst"].Str()
		if !ok {
			continue
		}
		telescope, mode, _ := strings.Cut(s, "_")
		row["telescope"] = frame.String(telescope)
		if mode != "" {
			row["telescope_mode"] = frame.String(mode)
		}
	}
	f.Drop("tel_inst")
}

func parseDates(f *frame.Frame) {
	for _, col := range dateColumns {
		if !f.HasColumn(col) {
			continue
		}
		for _, row := range f.Rows() {
			s, ok := row[col].Str()
			if !ok {
				continue
			}
			if ts, err := time.Parse(dateLayout, s); err == nil {
				row[col] = frame.Time(ts.UTC())
			} else {
				row[col] = frame.Null
			}
		}
	}
}
