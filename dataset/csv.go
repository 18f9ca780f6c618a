package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"
)

// dateLayout covers date-only cells; datetime cells use TimeLayout.
const dateLayout = "2006-01-02"

// ReadCSV loads a delimited file into a snapshot. The first record is the
// column header; cells are typed by inspection: int64, then float64, then
// date/datetime, else string. A missing or malformed file is a load failure
// for the caller to propagate.
func ReadCSV(path string) (*Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("dataset: parse %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("dataset: %s: missing header record", path)
	}

	columns := records[0]
	rows := make([]Row, 0, len(records)-1)
	for _, rec := range records[1:] {
		row := make(Row, len(columns))
		for i, col := range columns {
			row[col] = typeCell(rec[i])
		}
		rows = append(rows, row)
	}
	return New(columns, rows)
}

func typeCell(s string) any {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t
	}
	if t, err := time.Parse(TimeLayout, s); err == nil {
		return t
	}
	return s
}
