package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
)

// ReadCSV builds a table from CSV data. The first record is the header and
// becomes the column set; all cells are stored as strings, so date and
// amount columns stay coercible downstream.
func ReadCSV(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	tbl := New(header...)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV record: %w", err)
		}

		row := make(map[string]interface{}, len(header))
		for i, col := range header {
			if i < len(record) {
				row[col] = record[i]
			}
		}
		tbl.Append(row)
	}

	return tbl, nil
}
