// Package ingest turns uploaded PFG invoice exports into column-keyed
// rows and routes each row to a store location.
package ingest

import (
	"encoding/csv"
	"errors"
	"io"
	"strings"

	"github.com/Sunny-DSA/Sanpeggios-PFG-Analytics/models"
)

var ErrNoData = errors.New("ingest: no data rows in file")

// ParseCSV reads a header-keyed CSV export into raw invoice rows. Header
// names are trimmed (and stripped of a UTF-8 BOM on the first column);
// short rows fill missing columns with "". Rows whose cells are all empty
// are skipped, matching how the dashboard's parser treated trailing
// blank lines.
func ParseCSV(r io.Reader) ([]models.RawInvoiceRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // PFG exports occasionally ship ragged rows

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, ErrNoData
		}
		return nil, err
	}
	for i, col := range header {
		if i == 0 {
			col = strings.TrimPrefix(col, "\uFEFF")
		}
		header[i] = strings.TrimSpace(col)
	}

	rows := make([]models.RawInvoiceRow, 0)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		row := make(models.RawInvoiceRow, len(header))
		empty := true
		for i, col := range header {
			if col == "" {
				continue
			}
			value := ""
			if i < len(record) {
				value = strings.TrimSpace(record[i])
			}
			if value != "" {
				empty = false
			}
			row[col] = value
		}
		if empty {
			continue
		}
		rows = append(rows, row)
	}

	if len(rows) == 0 {
		return nil, ErrNoData
	}
	return rows, nil
}
