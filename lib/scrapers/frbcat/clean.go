package frbcat

import (
	"math"
	"strings"
	"time"

	"frbcat/lib/frame"
	"frbcat/lib/measure"
)

// renames unifying FRBCAT column names with the schema shared with
// the TNS source
var columnRenames = map[string]string{
	"mw_dm_limit":          "dm_mw",
	"width":                "w_eff",
	"flux":                 "s_peak",
	"redshift_host":        "z",
	"spectral_index":       "si",
	"dispersion_smearing":  "t_dm",
	"dm_error":             "dm_err",
	"scattering_timescale": "t_scat",
	"sampling_time":        "t_samp",
}

var utcLayouts = []string{
	"2006-01-02 15:04:05.999",
	"2006-01-02 15:04:05",
	"2006/01/02 15:04:05.999",
	time.RFC3339,
}

// Clean normalizes the raw merged FRBCAT table in place: column
// naming, value/error splitting, type coercion, derived columns and
// the repeater/one-off classification.
func Clean(f *frame.Frame) {
	f.RenameFunc(strings.ToLower)
	f.RenameFunc(func(c string) string {
		c = strings.ReplaceAll(c, "rop_", "")
		return strings.ReplaceAll(c, "rmp_", "")
	})
	f.DropFunc(func(c string) bool {
		return strings.HasSuffix(c, "id")
	})

	splitSymmetricErrors(f)
	splitAsymmetricErrors(f)

	f.Rename(columnRenames)

	coerceFloat(f, "w_eff")

	derive(f)
	cleanTelescope(f)
	parseUtc(f)
	stripNewlines(f, "pub_description")
	classify(f)
}

func columnContains(f *frame.Frame, col string, fn func(string) bool) bool {
	for _, row := range f.Rows() {
		if s, ok := row[col].Str(); ok && fn(s) {
			return true
		}
	}
	return false
}

func maybeCell(m measure.Maybe) frame.Value {
	if !m.OK {
		return frame.Null
	}
	return frame.Float(m.Value)
}

// splitSymmetricErrors splits every column carrying the
// "value&plusmn;error" encoding into numeric <col> and <col>_err.
func splitSymmetricErrors(f *frame.Frame) {
	for _, col := range f.Columns() {
		if !columnContains(f, col, measure.HasPlusMinus) {
			continue
		}
		errCol := col + "_err"
		f.AddColumn(errCol)
		for _, row := range f.Rows() {
			s, ok := row[col].Str()
			if !ok {
				continue
			}
			val, errVal, _ := measure.SplitPlusMinus(s)
			row[col] = maybeCell(val)
			row[errCol] = maybeCell(errVal)
		}
	}
}

// splitAsymmetricErrors splits the HTML sup/sub encoding into numeric
// <col>, <col>_err_up and <col>_err_down.
func splitAsymmetricErrors(f *frame.Frame) {
	for _, col := range f.Columns() {
		if !columnContains(f, col, measure.HasSupSub) {
			continue
		}
		upCol := col + "_err_up"
		downCol := col + "_err_down"
		f.AddColumn(upCol)
		f.AddColumn(downCol)
		for _, row := range f.Rows() {
			s, ok := row[col].Str()
			if !ok {
				continue
			}
			val, up, down, _ := measure.SplitSupSub(s)
			row[col] = maybeCell(val)
			row[upCol] = maybeCell(up)
			row[downCol] = maybeCell(down)
		}
	}
}

func coerceFloat(f *frame.Frame, col string) {
	for _, row := range f.Rows() {
		if s, ok := row[col].Str(); ok {
			row[col] = maybeCell(measure.Parse(s))
		}
	}
}

// derive adds fluence (peak flux times effective width) and w_arr,
// a rough pulse width upon arrival at Earth.
func derive(f *frame.Frame) {
	f.AddColumn("fluence")
	f.AddColumn("w_arr")
	for _, row := range f.Rows() {
		sPeak, okS := row["s_peak"].Float()
		wEff, okW := row["w_eff"].Float()
		if okS && okW {
			row["fluence"] = frame.Float(sPeak * wEff)
		}

		tDm, okDm := row["t_dm"].Float()
		tScat, okScat := row["t_scat"].Float()
		tSamp, okSamp := row["t_samp"].Float()
		if okW && okDm && okScat && okSamp {
			squared := wEff*wEff - tDm*tDm - tScat*tScat - tSamp*tSamp
			if squared >= 0 {
				row["w_arr"] = frame.Float(math.Sqrt(squared))
			}
		}
	}
}

func cleanTelescope(f *frame.Frame) {
	for _, row := range f.Rows() {
		s, ok := row["telescope"].Str()
		if !ok {
			continue
		}
		s = strings.ToLower(s)
		// the archive lists the CHIME telescope as chime/frb
		if strings.Contains(s, "chime/frb") {
			s, _, _ = strings.Cut(s, "/")
		}
		row["telescope"] = frame.String(s)
	}
}

func parseUtc(f *frame.Frame) {
	for _, row := range f.Rows() {
		s, ok := row["utc"].Str()
		if !ok {
			continue
		}
		row["utc"] = frame.Null
		for _, layout := range utcLayouts {
			if ts, err := time.Parse(layout, s); err == nil {
				row["utc"] = frame.Time(ts.UTC())
				break
			}
		}
	}
}

func stripNewlines(f *frame.Frame, col string) {
	for _, row := range f.Rows() {
		if s, ok := row[col].Str(); ok {
			row[col] = frame.String(strings.ReplaceAll(s, "\n", ""))
		}
	}
}

// classify marks second-and-later bursts of an FRB name as repeater
// detections, everything else as one-offs.
func classify(f *frame.Frame) {
	f.AddColumn("type")
	duplicated := f.Duplicated("frb_name")
	for i, row := range f.Rows() {
		if duplicated[i] {
			row["type"] = frame.String("repeater")
		} else {
			row["type"] = frame.String("one-off")
		}
	}
}
