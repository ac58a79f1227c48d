package tns

import (
	"context"
	"log/slog"

	"frbcat/lib/astro"
	"frbcat/lib/frame"
)

// TransformCoordinates derives fractional-degree equatorial
// (ra_frac, dec_frac) and galactic (gl_frac, gb_frac) columns from
// the sexagesimal ra/decl report coordinates. Rows with unparseable
// coordinates keep null cells.
func TransformCoordinates(ctx context.Context, f *frame.Frame) {
	for _, col := range []string{"ra_frac", "dec_frac", "gl_frac", "gb_frac"} {
		f.AddColumn(col)
	}

	for _, row := range f.Rows() {
		ras, okRa := row["ra"].Str()
		decs, okDec := row["decl"].Str()
		if !okRa || !okDec {
			continue
		}

		ra, errRa := astro.RAToDeg(astro.PadSexagesimal(ras))
		dec, errDec := astro.DecToDeg(astro.PadSexagesimal(decs))
		if errRa != nil || errDec != nil {
			slog.WarnContext(ctx, "unparseable coordinates",
				"ra", ras, "decl", decs)
			continue
		}

		gl, gb := astro.EquatorialToGalactic(ra, dec)
		row["ra_frac"] = frame.Float(ra)
		row["dec_frac"] = frame.Float(dec)
		row["gl_frac"] = frame.Float(gl)
		row["gb_frac"] = frame.Float(gb)
	}
}
