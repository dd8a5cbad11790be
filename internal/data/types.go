package data

// Row maps an attribute name to its categorical value.
type Row map[string]string

// Dataset is an ordered table of categorical rows. Columns fixes the
// attribute order used whenever a caller does not pass one explicitly.
type Dataset struct {
    Columns []string `json:"columns"`
    Rows    []Row    `json:"rows"`
}

func (d Dataset) Len() int { return len(d.Rows) }

func (d Dataset) HasColumn(name string) bool {
    for _, c := range d.Columns {
        if c == name { return true }
    }
    return false
}

// Column returns the values of attr in row order. Rows lacking attr
// contribute an empty string.
func (d Dataset) Column(attr string) []string {
    out := make([]string, len(d.Rows))
    for i, r := range d.Rows { out[i] = r[attr] }
    return out
}

// Values returns the distinct values of attr in first-seen order.
func (d Dataset) Values(attr string) []string {
    return Distinct(d.Column(attr))
}

// Where returns the rows whose attr equals value. Rows are shared, not copied.
func (d Dataset) Where(attr, value string) Dataset {
    out := Dataset{Columns: d.Columns}
    for _, r := range d.Rows {
        if r[attr] == value { out.Rows = append(out.Rows, r) }
    }
    return out
}

// Distinct returns the unique entries of vals in first-seen order.
func Distinct(vals []string) []string {
    seen := make(map[string]struct{}, len(vals))
    out := make([]string, 0, len(vals))
    for _, v := range vals {
        if _, ok := seen[v]; ok { continue }
        seen[v] = struct{}{}
        out = append(out, v)
    }
    return out
}

// Purchase is one record of the synthetic purchase table.
type Purchase struct {
    Age       int    `json:"age"`
    Salary    int    `json:"salary"`
    Purchased int    `json:"purchased"`
    Gender    string `json:"gender"`
    City      string `json:"city"`
}
