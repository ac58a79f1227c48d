package frame

import (
	"encoding/csv"
	"fmt"
	"io"
)

// WriteCSV exports the frame with a header row. Cell types are not
// recorded: ReadCSV re-infers them the same way a dataframe reader
// would.
func (f *Frame) WriteCSV(w io.Writer) error {
	out := csv.NewWriter(w)

	if err := out.Write(f.cols); err != nil {
		return err
	}
	record := make([]string, len(f.cols))
	for _, row := range f.rows {
		for i, c := range f.cols {
			record[i] = row[c].Render()
		}
		if err := out.Write(record); err != nil {
			return err
		}
	}

	out.Flush()
	return out.Error()
}

func ReadCSV(r io.Reader) (*Frame, error) {
	in := csv.NewReader(r)

	header, err := in.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("csv is missing a header row")
	}
	if err != nil {
		return nil, err
	}

	f := New(header...)
	for {
		record, err := in.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		row := make(Row, len(header))
		for i, cell := range record {
			if v := ParseCell(cell); !v.IsNull() {
				row[header[i]] = v
			}
		}
		f.rows = append(f.rows, row)
	}
	return f, nil
}
