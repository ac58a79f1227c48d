package astro

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPadSexagesimal(t *testing.T) {
	require.Equal(t, "19:06:00", PadSexagesimal("19:06"))
	require.Equal(t, "19:06:53", PadSexagesimal("19:06:53"))
}

func TestRAToDeg(t *testing.T) {
	ra, err := RAToDeg("19:06:53")
	require.NoError(t, err)
	require.InDelta(t, 286.720833, ra, 1e-6)

	_, err = RAToDeg("19:06")
	require.Error(t, err)

	_, err = RAToDeg("19:xx:53")
	require.Error(t, err)
}

func TestDecToDeg(t *testing.T) {
	dec, err := DecToDeg("-40:37:14")
	require.NoError(t, err)
	require.InDelta(t, -40.620555, dec, 1e-6)

	dec, err = DecToDeg("33:08:52")
	require.NoError(t, err)
	require.InDelta(t, 33.147777, dec, 1e-6)

	// negative sign must survive a zero degrees field
	dec, err = DecToDeg("-00:30:00")
	require.NoError(t, err)
	require.InDelta(t, -0.5, dec, 1e-6)
}

func TestEquatorialToGalactic(t *testing.T) {
	// the north galactic pole maps to b = 90
	_, gb := EquatorialToGalactic(12.9406333*15, 27.12825)
	require.InDelta(t, 90, gb, 1e-6)

	// the galactic center sits near l = 0, b = 0
	gl, gb := EquatorialToGalactic(266.41683, -29.00781)
	require.InDelta(t, 0, gl, 0.5)
	require.InDelta(t, 0, gb, 0.5)
}

func TestGalacticRanges(t *testing.T) {
	points := [][2]float64{
		{286.720833, -40.620555},
		{82.994167, 33.147777},
		{0, 0},
		{359.9, 89.9},
		{123.4, -67.8},
	}
	for _, p := range points {
		gl, gb := EquatorialToGalactic(p[0], p[1])
		require.Greater(t, gl, -180.0)
		require.LessOrEqual(t, gl, 180.0)
		require.GreaterOrEqual(t, gb, -90.0)
		require.LessOrEqual(t, gb, 90.0)
	}
}
