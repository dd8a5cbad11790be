package features

import (
    "fmt"
    "math"
    "math/rand"
    "strconv"

    "id3lab/internal/data"
)

// Regression inputs for the purchase table.
var Names = []string{"Age", "Salary"}

// Vectorize returns the Age/Salary row and the Purchased target of p.
func Vectorize(p data.Purchase) ([]float64, float64) {
    return []float64{float64(p.Age), float64(p.Salary)}, float64(p.Purchased)
}

func Matrix(ps []data.Purchase) ([][]float64, []float64) {
    X := make([][]float64, len(ps))
    y := make([]float64, len(ps))
    for i, p := range ps { X[i], y[i] = Vectorize(p) }
    return X, y
}

// TrainTestSplit shuffles the rows with seed and holds out ceil(n·testSize)
// of them for testing.
func TrainTestSplit(X [][]float64, y []float64, testSize float64, seed int64) (Xtrain [][]float64, Xtest [][]float64, ytrain []float64, ytest []float64, err error) {
    n := len(X)
    if len(y) != n { return nil, nil, nil, nil, fmt.Errorf("split: %d rows but %d targets", n, len(y)) }
    if testSize <= 0 || testSize >= 1 { return nil, nil, nil, nil, fmt.Errorf("split: test size %v outside (0,1)", testSize) }
    nTest := int(math.Ceil(testSize * float64(n)))
    if nTest < 1 || nTest >= n { return nil, nil, nil, nil, fmt.Errorf("split: cannot hold out %d of %d rows", nTest, n) }

    idx := rand.New(rand.NewSource(seed)).Perm(n)
    for i, j := range idx {
        if i < nTest {
            Xtest = append(Xtest, X[j]); ytest = append(ytest, y[j])
        } else {
            Xtrain = append(Xtrain, X[j]); ytrain = append(ytrain, y[j])
        }
    }
    return Xtrain, Xtest, ytrain, ytest, nil
}

// Table turns purchases into a categorical dataset. Age is bucketed by
// decade and Salary by 30k band so the table can feed a decision tree.
func Table(ps []data.Purchase) data.Dataset {
    ds := data.Dataset{Columns: []string{"AgeBand", "SalaryBand", "Gender", "City", "Purchased"}}
    for _, p := range ps {
        ds.Rows = append(ds.Rows, data.Row{
            "AgeBand":    strconv.Itoa(p.Age/10*10) + "s",
            "SalaryBand": band(p.Salary),
            "Gender":     p.Gender,
            "City":       p.City,
            "Purchased":  strconv.Itoa(p.Purchased),
        })
    }
    return ds
}

func band(salary int) string {
    switch {
    case salary < 60000:
        return "low"
    case salary < 90000:
        return "mid"
    default:
        return "high"
    }
}
