// Package astro converts the coordinate encodings used by the FRB
// catalogs: sexagesimal right ascension / declination strings into
// fractional degrees, and equatorial into galactic coordinates.
package astro

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// PadSexagesimal appends a ":00" seconds field to coordinate strings
// that only carry hours/degrees and minutes. Some catalog rows are
// truncated this way.
func PadSexagesimal(s string) string {
	if strings.Count(s, ":") < 2 {
		return s + ":00"
	}
	return s
}

func splitThree(s string) (float64, float64, float64, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("expected hh:mm:ss coordinate, got %q", s)
	}
	out := [3]float64{}
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return 0, 0, 0, fmt.Errorf("coordinate field %q: %w", p, err)
		}
		out[i] = f
	}
	return out[0], out[1], out[2], nil
}

// RAToDeg converts right ascension "hh:mm:ss" to fractional degrees.
func RAToDeg(ra string) (float64, error) {
	h, m, s, err := splitThree(ra)
	if err != nil {
		return 0, err
	}
	return h*15 + m/4 + s/240, nil
}

// DecToDeg converts declination "±dd:mm:ss" to fractional degrees.
// The sign of the degrees field applies to the minute and second
// terms as well.
func DecToDeg(dec string) (float64, error) {
	d, m, s, err := splitThree(dec)
	if err != nil {
		return 0, err
	}
	sign := 1.0
	if d < 0 || strings.HasPrefix(strings.TrimSpace(dec), "-") {
		sign = -1.0
	}
	return d + sign*m/60 + sign*s/3600, nil
}

// Coordinates of the galactic north pole (J2000).
const (
	ngpRA   = 12.9406333 * 15.0
	ngpDec  = 27.1282500
	ngpLon  = 123.9320000
	deg2rad = math.Pi / 180.0
	rad2deg = 180.0 / math.Pi
)

// EquatorialToGalactic converts fractional-degree equatorial
// coordinates to galactic longitude and latitude. It uses the
// spherical-triangle formulas from Carroll & Ostlie rather than a
// full astrometry library: accuracy is within a fraction of a degree,
// which is all the catalog's population statistics need.
func EquatorialToGalactic(ra, dec float64) (gl, gb float64) {
	a := ra * deg2rad
	d := dec * deg2rad

	aNGP := ngpRA * deg2rad
	dNGP := ngpDec * deg2rad
	lNGP := ngpLon * deg2rad

	sdNGP := math.Sin(dNGP)
	cdNGP := math.Cos(dNGP)
	sd := math.Sin(d)
	cd := math.Cos(d)

	y := cd * math.Sin(a-aNGP)
	x := cdNGP*sd - sdNGP*cd*math.Cos(a-aNGP)
	gl = math.Mod((-math.Atan2(y, x)+lNGP)*rad2deg, 360)
	if gl < 0 {
		gl += 360
	}
	// shift into (-180, 180]
	if gl > 180 {
		gl = -(360 - gl)
	}

	gb = math.Mod(math.Asin(sdNGP*sd+cdNGP*cd*math.Cos(a-aNGP))*rad2deg, 360)
	if gb < 0 {
		gb += 360
	}
	if gb > 270 {
		gb = -(360 - gb)
	}

	return gl, gb
}
