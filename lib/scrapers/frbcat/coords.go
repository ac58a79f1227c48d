package frbcat

import (
	"context"
	"log/slog"

	"frbcat/lib/astro"
	"frbcat/lib/frame"
)

// TransformCoordinates derives fractional-degree equatorial (ra, dec)
// and galactic (gl, gb) columns from the raj/decj sexagesimal
// strings. Rows with unparseable coordinates keep null cells.
func TransformCoordinates(ctx context.Context, f *frame.Frame) {
	for _, col := range []string{"ra", "dec", "gl", "gb"} {
		f.AddColumn(col)
	}

	for _, row := range f.Rows() {
		raj, okRa := row["raj"].Str()
		decj, okDec := row["decj"].Str()
		if !okRa || !okDec {
			continue
		}

		// some archive rows truncate the seconds field
		ra, errRa := astro.RAToDeg(astro.PadSexagesimal(raj))
		dec, errDec := astro.DecToDeg(astro.PadSexagesimal(decj))
		if errRa != nil || errDec != nil {
			slog.WarnContext(ctx, "unparseable coordinates",
				"raj", raj, "decj", decj)
			continue
		}

		gl, gb := astro.EquatorialToGalactic(ra, dec)
		row["ra"] = frame.Float(ra)
		row["dec"] = frame.Float(dec)
		row["gl"] = frame.Float(gl)
		row["gb"] = frame.Float(gb)
	}
}
