package measure

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplitPlusMinus(t *testing.T) {
	testCases := []struct {
		in    string
		val   Maybe
		err   Maybe
		found bool
	}{
		{"1.23&plusmn0.04", Maybe{1.23, true}, Maybe{0.04, true}, true},
		{"557&plusmn", Maybe{557, true}, Maybe{}, true},
		{"12.5", Maybe{12.5, true}, Maybe{}, false},
		{"n/a", Maybe{}, Maybe{}, false},
	}

	for _, test := range testCases {
		val, err, found := SplitPlusMinus(test.in)
		require.Equal(t, test.val, val, test.in)
		require.Equal(t, test.err, err, test.in)
		require.Equal(t, test.found, found, test.in)
	}
}

func TestSplitSupSub(t *testing.T) {
	val, up, down, found := SplitSupSub(
		"2.1<span className='supsub'><sup>0.3</sup><sub>0.2</sub></span>")
	require.True(t, found)
	require.Equal(t, Maybe{2.1, true}, val)
	require.Equal(t, Maybe{0.3, true}, up)
	require.Equal(t, Maybe{0.2, true}, down)

	val, up, down, found = SplitSupSub("14.2")
	require.False(t, found)
	require.Equal(t, Maybe{14.2, true}, val)
	require.False(t, up.OK)
	require.False(t, down.OK)
}

func TestSplitParenErr(t *testing.T) {
	testCases := []struct {
		in   string
		unit string
		val  Maybe
		err  Maybe
	}{
		{"557.0 (2.0)", "", Maybe{557.0, true}, Maybe{2.0, true}},
		{"557.0", "", Maybe{557.0, true}, Maybe{}},
		{"557.0 ()", "", Maybe{557.0, true}, Maybe{}},
		{"2.31 Jy ms (0.04)", " Jy ms", Maybe{2.31, true}, Maybe{0.04, true}},
		{"4.2 ms", " ms", Maybe{4.2, true}, Maybe{}},
		{"12.4 ms (0.3)", " ms", Maybe{12.4, true}, Maybe{0.3, true}},
		{"-9.2 rad/m2 (1.1)", " rad/m2", Maybe{-9.2, true}, Maybe{1.1, true}},
	}

	for _, test := range testCases {
		val, err := SplitParenErr(test.in, test.unit)
		require.Equal(t, test.val, val, test.in)
		require.Equal(t, test.err, err, test.in)
	}
}

func TestSplitParenText(t *testing.T) {
	val, model := SplitParenText("348.8 (YMW16)")
	require.Equal(t, Maybe{348.8, true}, val)
	require.Equal(t, "YMW16", model)

	val, model = SplitParenText("348.8")
	require.Equal(t, Maybe{348.8, true}, val)
	require.Equal(t, "", model)
}

func TestSplitParenString(t *testing.T) {
	val, err := SplitParenString("21:44:25.255 (0.01)")
	require.Equal(t, "21:44:25.255", val)
	require.Equal(t, "0.01", err)

	val, err = SplitParenString("-40:54:00")
	require.Equal(t, "-40:54:00", val)
	require.Equal(t, "", err)
}
