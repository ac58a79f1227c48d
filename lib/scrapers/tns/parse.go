package tns

import (
	"bytes"
	"strings"

	"frbcat/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
)

// entry is one TNS object with its nested report, photometry and
// related-file sub-tables.
type entry struct {
	fields     map[string]string
	reports    []map[string]string
	photometry []map[string]string
	files      []map[string]string
}

// cells whose value is the href of their anchor
var hrefCells = map[string]bool{
	"filename":        true,
	"public_webpage":  true,
	"region_filename": true,
}

// cells whose value is the text before their first anchor
var countCells = map[string]bool{
	"photometry":    true,
	"related_files": true,
	"reps":          true,
}

// cells whose value is their anchor's text
var anchorCells = map[string]bool{
	"id":                true,
	"name":              true,
	"repeater_of_objid": true,
}

// parseRow converts a search-result <tr> into a cell-class keyed map.
// Empty cells are omitted.
func parseRow(row *goquery.Selection) map[string]string {
	out := map[string]string{}
	row.Find("td").Each(func(_ int, td *goquery.Selection) {
		key := cellKey(td.AttrOr("class", ""))
		if key == "" {
			return
		}

		node := td.Nodes[0]
		var val string
		switch {
		case hrefCells[key]:
			val = htmlutil.FirstHref(node)
		case countCells[key]:
			val = strings.TrimSpace(htmlutil.TextBefore(node, "a"))
		case anchorCells[key]:
			val = htmlutil.AnchorText(node)
		default:
			val = strings.TrimSpace(htmlutil.GetText(node))
		}
		if val != "" {
			out[key] = val
		}
	})
	return out
}

// cellKey extracts XXX from a `cell-XXX` class list.
func cellKey(classAttr string) string {
	for _, class := range strings.Fields(classAttr) {
		if rest, found := strings.CutPrefix(class, "cell-"); found {
			return rest
		}
	}
	return ""
}

func hasCells(row *goquery.Selection, keys ...string) bool {
	for _, key := range keys {
		if row.Find("td.cell-"+key).Length() == 0 {
			return false
		}
	}
	return true
}

// parseSearchPage appends the rows of one search page onto entries.
// The set of cell classes present identifies the row kind: object
// rows open a new entry, the other kinds attach to the last one.
func parseSearchPage(body []byte, entries []entry) ([]entry, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	doc.Find("tr").Each(func(_ int, row *goquery.Selection) {
		switch {
		case hasCells(row, "reps", "ot_name"):
			entries = append(entries, entry{fields: parseRow(row)})
		case hasCells(row, "reporter_name", "photometry"):
			if len(entries) > 0 {
				last := &entries[len(entries)-1]
				last.reports = append(last.reports, parseRow(row))
			}
		case hasCells(row, "snr", "ref_freq"):
			if len(entries) > 0 {
				last := &entries[len(entries)-1]
				last.photometry = append(last.photometry, parseRow(row))
			}
		case hasCells(row, "filename", "filetype"):
			if len(entries) > 0 {
				last := &entries[len(entries)-1]
				last.files = append(last.files, parseRow(row))
			}
		}
	})
	return entries, nil
}
