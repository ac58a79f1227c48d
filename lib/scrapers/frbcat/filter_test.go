package frbcat

import (
	"testing"
	"time"

	"frbcat/lib/frame"

	"github.com/stretchr/testify/require"
)

func burst(name string, utc time.Time, extras ...string) frame.Row {
	row := frame.Row{
		"frb_name": frame.String(name),
		"utc":      frame.Time(utc),
	}
	for i, col := range extras {
		row[col] = frame.Float(float64(i))
	}
	return row
}

func catalog() *frame.Frame {
	f := frame.New("frb_name", "utc", "dm", "snr", "w_eff")
	t0 := time.Date(2018, 9, 24, 16, 23, 12, 0, time.UTC)

	// two analyses of the same burst, the second more complete
	f.Append(burst("FRB 180924", t0, "dm"))
	f.Append(burst("FRB 180924", t0, "dm", "snr", "w_eff"))

	// a repeating source with two bursts
	f.Append(burst("FRB 121102", t0.AddDate(-6, 0, 0), "dm"))
	f.Append(burst("FRB 121102", t0.AddDate(-3, 0, 0), "dm", "snr"))

	return f
}

func names(f *frame.Frame) []string {
	var out []string
	for _, row := range f.Rows() {
		s, _ := row["frb_name"].Str()
		out = append(out, s)
	}
	return out
}

func TestFilterOnePerFRB(t *testing.T) {
	f := catalog()
	Filter(f, DefaultFilterOptions())

	// the two analyses of FRB 180924 collapse to the richer one
	require.Equal(t, 3, f.Len())
	counts := f.ValueCounts("frb_name")
	require.Equal(t, 1, counts["FRB 180924"])
	require.Equal(t, 2, counts["FRB 121102"])

	for _, row := range f.Rows() {
		name, _ := row["frb_name"].Str()
		if name == "FRB 180924" {
			require.False(t, row["snr"].IsNull(), "kept the sparser analysis")
		}
	}
}

func TestFilterOnlyRepeaters(t *testing.T) {
	f := catalog()
	opts := DefaultFilterOptions()
	opts.OneOffs = false
	Filter(f, opts)

	for _, name := range names(f) {
		require.Equal(t, "FRB 121102", name)
	}
	require.NotZero(t, f.Len())
}

func TestFilterDropRepeaters(t *testing.T) {
	f := catalog()
	opts := DefaultFilterOptions()
	opts.Repeaters = false
	Filter(f, opts)

	require.Equal(t, []string{"FRB 180924"}, names(f))
}

func TestFilterSingleBurstPerRepeater(t *testing.T) {
	f := catalog()
	opts := DefaultFilterOptions()
	opts.RepeatBursts = false
	Filter(f, opts)

	require.Equal(t, 2, f.Len())
	counts := f.ValueCounts("frb_name")
	require.Equal(t, 1, counts["FRB 121102"])

	// the earliest burst of the repeater is the one kept
	for _, row := range f.Rows() {
		name, _ := row["frb_name"].Str()
		if name == "FRB 121102" {
			ts, ok := row["utc"].Time()
			require.True(t, ok)
			require.Equal(t, 2012, ts.Year())
		}
	}
}
