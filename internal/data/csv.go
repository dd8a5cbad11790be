package data

import (
    "encoding/csv"
    "errors"
    "fmt"
    "io"
    "strings"
)

// ReadCSV parses a categorical table. The first record names the columns.
func ReadCSV(r io.Reader) (Dataset, error) {
    cr := csv.NewReader(r)
    cr.TrimLeadingSpace = true
    rows, err := cr.ReadAll()
    if err != nil { return Dataset{}, err }
    if len(rows) == 0 { return Dataset{}, errors.New("csv: missing header") }

    header := make([]string, len(rows[0]))
    seen := map[string]bool{}
    for i, h := range rows[0] {
        h = strings.TrimSpace(h)
        if h == "" { return Dataset{}, fmt.Errorf("csv: empty column name at position %d", i+1) }
        if seen[h] { return Dataset{}, fmt.Errorf("csv: duplicate column %q", h) }
        seen[h] = true
        header[i] = h
    }

    ds := Dataset{Columns: header, Rows: make([]Row, 0, len(rows)-1)}
    for i := 1; i < len(rows); i++ {
        // encoding/csv already rejects ragged records unless FieldsPerRecord < 0
        row := make(Row, len(header))
        for j, v := range rows[i] { row[header[j]] = strings.TrimSpace(v) }
        ds.Rows = append(ds.Rows, row)
    }
    return ds, nil
}

// WriteCSV writes ds with a header row, in column order.
func WriteCSV(w io.Writer, ds Dataset) error {
    cw := csv.NewWriter(w)
    if err := cw.Write(ds.Columns); err != nil { return err }
    rec := make([]string, len(ds.Columns))
    for _, r := range ds.Rows {
        for i, c := range ds.Columns { rec[i] = r[c] }
        if err := cw.Write(rec); err != nil { return err }
    }
    cw.Flush()
    return cw.Error()
}
