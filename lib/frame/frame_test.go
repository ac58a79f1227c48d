package frame

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRenameAndDrop(t *testing.T) {
	f := New("rop_width", "rmp_flux", "frb_id")
	f.Append(Row{
		"rop_width": Float(4.2),
		"rmp_flux":  Float(0.7),
		"frb_id":    Float(12),
	})

	f.RenameFunc(func(c string) string {
		return trimPrefixes(c)
	})
	require.Equal(t, []string{"width", "flux", "frb_id"}, f.Columns())

	f.DropFunc(func(c string) bool { return c == "frb_id" })
	require.Equal(t, []string{"width", "flux"}, f.Columns())
	require.True(t, f.Get(0, "frb_id").IsNull())

	w, ok := f.Get(0, "width").Float()
	require.True(t, ok)
	require.Equal(t, 4.2, w)
}

func trimPrefixes(c string) string {
	for _, p := range []string{"rop_", "rmp_"} {
		if len(c) > len(p) && c[:len(p)] == p {
			return c[len(p):]
		}
	}
	return c
}

func TestSortByTimeDescending(t *testing.T) {
	f := New("name", "utc")
	f.Append(Row{"name": String("a"), "utc": Time(time.Date(2019, 3, 1, 0, 0, 0, 0, time.UTC))})
	f.Append(Row{"name": String("b")})
	f.Append(Row{"name": String("c"), "utc": Time(time.Date(2020, 7, 1, 0, 0, 0, 0, time.UTC))})

	f.SortBy("utc", false)

	first, _ := f.Get(0, "name").Str()
	second, _ := f.Get(1, "name").Str()
	third, _ := f.Get(2, "name").Str()
	require.Equal(t, "c", first)
	require.Equal(t, "a", second)
	// nulls always sort last
	require.Equal(t, "b", third)
}

func TestDropDuplicates(t *testing.T) {
	build := func() *Frame {
		f := New("name", "snr")
		f.Append(Row{"name": String("FRB 121102"), "snr": Float(14)})
		f.Append(Row{"name": String("FRB 010724"), "snr": Float(23)})
		f.Append(Row{"name": String("FRB 121102"), "snr": Float(9)})
		return f
	}

	first := build()
	first.DropDuplicates([]string{"name"}, KeepFirst)
	require.Equal(t, 2, first.Len())
	snr, _ := first.Get(0, "snr").Float()
	require.Equal(t, float64(14), snr)

	none := build()
	none.DropDuplicates([]string{"name"}, KeepNone)
	require.Equal(t, 1, none.Len())
	name, _ := none.Get(0, "name").Str()
	require.Equal(t, "FRB 010724", name)
}

func TestDuplicated(t *testing.T) {
	f := New("name")
	f.Append(Row{"name": String("x")})
	f.Append(Row{"name": String("y")})
	f.Append(Row{"name": String("x")})

	require.Equal(t, []bool{false, false, true}, f.Duplicated("name"))
}

func TestLeftJoin(t *testing.T) {
	left := New("frb_id", "name")
	left.Append(Row{"frb_id": Float(1), "name": String("FRB 180924")})
	left.Append(Row{"frb_id": Float(2), "name": String("FRB 190523")})

	right := New("notes_frb_id", "note")
	right.Append(Row{"notes_frb_id": Float(1), "note": String("localized")})

	joined, err := LeftJoin(left, right, "frb_id", "notes_frb_id")
	require.NoError(t, err)
	require.Equal(t, 2, joined.Len())

	note, ok := joined.Get(0, "note").Str()
	require.True(t, ok)
	require.Equal(t, "localized", note)
	require.True(t, joined.Get(1, "note").IsNull())

	_, err = LeftJoin(left, right, "missing", "notes_frb_id")
	require.Error(t, err)
}

func TestCSVRoundTrip(t *testing.T) {
	f := New("name", "dm", "utc")
	utc := time.Date(2018, 9, 24, 16, 23, 12, 0, time.UTC)
	f.Append(Row{
		"name": String("FRB 180924"),
		"dm":   Float(361.42),
		"utc":  Time(utc),
	})
	f.Append(Row{"name": String("FRB 190523")})

	var buf bytes.Buffer
	err := f.WriteCSV(&buf)
	require.NoError(t, err)

	back, err := ReadCSV(&buf)
	require.NoError(t, err)
	require.Equal(t, f.Columns(), back.Columns())
	require.Equal(t, 2, back.Len())

	dm, ok := back.Get(0, "dm").Float()
	require.True(t, ok)
	require.Equal(t, 361.42, dm)

	ts, ok := back.Get(0, "utc").Time()
	require.True(t, ok)
	require.True(t, ts.Equal(utc))

	require.True(t, back.Get(1, "dm").IsNull())
}

func TestNonNullCount(t *testing.T) {
	f := New("a", "b", "c")
	f.Append(Row{"a": Float(1), "c": String("x")})
	require.Equal(t, 2, f.Row(0).NonNullCount(f.Columns()))
}
