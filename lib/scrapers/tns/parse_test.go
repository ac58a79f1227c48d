package tns

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// searchPage is a single object with one report, one photometry row
// and one related file, the way the server interleaves them.
const searchPage = `<html><body><table class="results-table">
<tr class="public odd">
  <td class="cell-id"><a href="/object/42768">42768</a></td>
  <td class="cell-name"><a href="/object/frb20180924b">FRB 20180924B</a></td>
  <td class="cell-reps">1<a href="#">expand</a></td>
  <td class="cell-ot_name">FRB</td>
  <td class="cell-ra">21:44:25</td>
  <td class="cell-decl">-40:54:00</td>
  <td class="cell-dm">362.4</td>
  <td class="cell-repeater_of_objid"></td>
  <td class="cell-internal_name">FRB180924</td>
  <td class="cell-public_webpage"><a href="https://example.org/frb20180924b">site</a></td>
</tr>
<tr class="public odd reports">
  <td class="cell-reporter_name">K. Bannister</td>
  <td class="cell-photometry">1<a href="#">expand</a></td>
  <td class="cell-related_files">1<a href="#">expand</a></td>
  <td class="cell-ra">21:44:25.255 (0.01)</td>
  <td class="cell-decl">-40:54:00.10 (0.02)</td>
  <td class="cell-dm">361.42 (NE2001)</td>
  <td class="cell-galactic_max_dm">57.4 (YMW16)</td>
  <td class="cell-discovery_date">2018-09-24 16:23:12</td>
  <td class="cell-flux">16 (1)</td>
  <td class="cell-fluence">16 Jy ms (1)</td>
  <td class="cell-burst_width">1.3 ms (0.1)</td>
  <td class="cell-sampling_time">0.864 ms</td>
  <td class="cell-tel_inst">ASKAP_ICS</td>
  <td class="cell-filter_name">ICS</td>
  <td class="cell-reporting_group_name">CRAFT</td>
  <td class="cell-source_group_name">CRAFT</td>
</tr>
<tr class="public odd photometry">
  <td class="cell-obsdate">2018-09-24 16:23:12</td>
  <td class="cell-snr">21.1</td>
  <td class="cell-ref_freq">1297.5</td>
  <td class="cell-burst_bandwidth">336 MHz</td>
  <td class="cell-channels_no">336</td>
</tr>
<tr class="public odd files">
  <td class="cell-filename"><a href="https://example.org/data.json">data.json</a></td>
  <td class="cell-filetype">json</td>
</tr>
</table></body></html>`

func TestParseSearchPage(t *testing.T) {
	entries, err := parseSearchPage([]byte(searchPage), nil)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	e := entries[0]
	require.Equal(t, "42768", e.fields["id"])
	require.Equal(t, "FRB 20180924B", e.fields["name"])
	require.Equal(t, "1", e.fields["reps"])
	require.Equal(t, "https://example.org/frb20180924b", e.fields["public_webpage"])
	// the empty repeater cell is omitted entirely
	_, present := e.fields["repeater_of_objid"]
	require.False(t, present)

	require.Len(t, e.reports, 1)
	require.Equal(t, "K. Bannister", e.reports[0]["reporter_name"])
	require.Equal(t, "361.42 (NE2001)", e.reports[0]["dm"])

	require.Len(t, e.photometry, 1)
	require.Equal(t, "21.1", e.photometry[0]["snr"])

	require.Len(t, e.files, 1)
	require.Equal(t, "https://example.org/data.json", e.files[0]["filename"])
}

func TestFlattenPrefixesCollidingKeys(t *testing.T) {
	entries, err := parseSearchPage([]byte(searchPage), nil)
	require.NoError(t, err)

	f := Flatten(entries)
	require.Equal(t, 1, f.Len())
	row := f.Row(0)

	// the object keeps its own coordinate cells
	ra, _ := row["ra"].Str()
	require.Equal(t, "21:44:25", ra)

	// the report's colliding cells pick up the sub-table prefix
	reportRa, _ := row["reports_ra"].Str()
	require.Equal(t, "21:44:25.255 (0.01)", reportRa)
	reportDm, _ := row["reports_dm"].Str()
	require.Equal(t, "361.42 (NE2001)", reportDm)

	// non-colliding report cells keep their names
	require.True(t, f.HasColumn("galactic_max_dm"))
	require.True(t, f.HasColumn("obsdate"))
}
