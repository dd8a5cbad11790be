package data

import (
    "encoding/csv"
    "io"
    "math/rand"
    "os"
    "path/filepath"
    "strconv"
)

var genders = []string{"Male", "Female"}
var cities = []string{"New York", "San Francisco", "Los Angeles"}

// PurchaseHeader is the column layout written by WritePurchasesCSV.
var PurchaseHeader = []string{"Age", "Salary", "Purchased", "Gender", "City"}

// GeneratePurchases draws n synthetic purchase records. Age is uniform in
// [18,70), Salary in [30000,120000); Purchased, Gender and City are uniform
// over their categories.
func GeneratePurchases(n int, rng *rand.Rand) []Purchase {
    out := make([]Purchase, n)
    for i := range out {
        out[i] = Purchase{
            Age:       18 + rng.Intn(70-18),
            Salary:    30000 + rng.Intn(120000-30000),
            Purchased: rng.Intn(2),
            Gender:    genders[rng.Intn(len(genders))],
            City:      cities[rng.Intn(len(cities))],
        }
    }
    return out
}

func WritePurchases(w io.Writer, ps []Purchase) error {
    cw := csv.NewWriter(w)
    if err := cw.Write(PurchaseHeader); err != nil { return err }
    for _, p := range ps {
        rec := []string{
            strconv.Itoa(p.Age),
            strconv.Itoa(p.Salary),
            strconv.Itoa(p.Purchased),
            p.Gender,
            p.City,
        }
        if err := cw.Write(rec); err != nil { return err }
    }
    cw.Flush()
    return cw.Error()
}

// WritePurchasesCSV writes ps to outPath, creating the parent directory.
func WritePurchasesCSV(ps []Purchase, outPath string) error {
    return WriteFile(outPath, func(w io.Writer) error { return WritePurchases(w, ps) })
}

// WriteFile creates path and its parent directory and fills it with write.
// A failed close is reported when write itself succeeded.
func WriteFile(path string, write func(io.Writer) error) error {
    if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
        return err
    }
    f, err := os.Create(path)
    if err != nil {
        return err
    }
    return writeClose(f, write)
}

func writeClose(wc io.WriteCloser, write func(io.Writer) error) error {
    if err := write(wc); err != nil {
        wc.Close()
        return err
    }
    return wc.Close()
}
