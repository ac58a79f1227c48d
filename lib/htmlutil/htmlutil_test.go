package htmlutil

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

func parseCell(t *testing.T, markup string) *goquery.Selection {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(
		"<table><tr>" + markup + "</tr></table>"))
	require.NoError(t, err)
	sel := doc.Find("td")
	require.Equal(t, 1, sel.Length())
	return sel
}

func TestGetText(t *testing.T) {
	sel := parseCell(t, `<td class="cell-name"><a href="/object/x">FRB 20180924B</a></td>`)
	require.Equal(t, "FRB 20180924B", GetText(sel.Nodes[0]))
}

func TestTextBefore(t *testing.T) {
	sel := parseCell(t, `<td class="cell-reps">3 <a href="/more">show</a></td>`)
	require.Equal(t, "3", strings.TrimSpace(TextBefore(sel.Nodes[0], "a")))

	noAnchor := parseCell(t, `<td class="cell-reps">7</td>`)
	require.Equal(t, "7", strings.TrimSpace(TextBefore(noAnchor.Nodes[0], "a")))
}

func TestFirstHref(t *testing.T) {
	sel := parseCell(t, `<td class="cell-filename"><a href="https://example.org/file.fits">file.fits</a></td>`)
	require.Equal(t, "https://example.org/file.fits", FirstHref(sel.Nodes[0]))

	empty := parseCell(t, `<td class="cell-filename">none</td>`)
	require.Equal(t, "", FirstHref(empty.Nodes[0]))
}

func TestAnchorText(t *testing.T) {
	sel := parseCell(t, `<td class="cell-id"><span><a href="/object/42">42</a></span></td>`)
	require.Equal(t, "42", AnchorText(sel.Nodes[0]))

	plain := parseCell(t, `<td class="cell-id"> 43 </td>`)
	require.Equal(t, "43", AnchorText(plain.Nodes[0]))
}
