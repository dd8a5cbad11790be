package models

import (
    "errors"
    "fmt"

    "gonum.org/v1/gonum/mat"
)

// LinearRegression is an ordinary least squares fit with an intercept.
type LinearRegression struct {
    Intercept float64
    Coef      []float64
}

func NewLinearRegression() *LinearRegression {
    return &LinearRegression{}
}

func (lr *LinearRegression) Name() string { return "LinearRegression" }

// Fit solves min ||[1 X]·β - y||² through a QR factorisation.
func (lr *LinearRegression) Fit(X [][]float64, y []float64) error {
    n := len(X)
    if n == 0 { return errors.New("linear: empty X") }
    if len(y) != n { return fmt.Errorf("linear: %d rows but %d targets", n, len(y)) }
    p := len(X[0])
    for i := range X {
        if len(X[i]) != p { return fmt.Errorf("linear: row %d has %d features, want %d", i, len(X[i]), p) }
    }
    if n < p+1 { return fmt.Errorf("linear: need at least %d samples, have %d", p+1, n) }

    A := mat.NewDense(n, p+1, nil)
    for i := 0; i < n; i++ {
        A.Set(i, 0, 1)
        for j := 0; j < p; j++ { A.Set(i, j+1, X[i][j]) }
    }
    b := mat.NewVecDense(n, append([]float64(nil), y...))

    var beta mat.VecDense
    if err := beta.SolveVec(A, b); err != nil {
        // a Condition error still carries a usable solution
        var c mat.Condition
        if !errors.As(err, &c) { return fmt.Errorf("linear: %w", err) }
    }
    lr.Intercept = beta.AtVec(0)
    lr.Coef = make([]float64, p)
    for j := range lr.Coef { lr.Coef[j] = beta.AtVec(j + 1) }
    return nil
}

// Predict returns the fitted values for X. Every row must have as many
// features as the model was fitted on; a mismatch panics, as gonum does for
// mismatched shapes.
func (lr *LinearRegression) Predict(X [][]float64) []float64 {
    out := make([]float64, len(X))
    if len(X) == 0 || lr.Coef == nil { return out }
    Xm := mat.NewDense(len(X), len(lr.Coef), nil)
    for i := range X {
        if len(X[i]) != len(lr.Coef) {
            panic(fmt.Sprintf("linear: row %d has %d features, want %d", i, len(X[i]), len(lr.Coef)))
        }
        for j := range lr.Coef { Xm.Set(i, j, X[i][j]) }
    }
    var yhat mat.VecDense
    yhat.MulVec(Xm, mat.NewVecDense(len(lr.Coef), lr.Coef))
    for i := range out { out[i] = yhat.AtVec(i) + lr.Intercept }
    return out
}

// Score returns the coefficient of determination R² of the predictions on X.
// A constant y scores 1 when predicted exactly and 0 otherwise.
func (lr *LinearRegression) Score(X [][]float64, y []float64) float64 {
    return R2(y, lr.Predict(X))
}

func R2(y, pred []float64) float64 {
    if len(y) == 0 { return 0 }
    mean := 0.0
    for _, v := range y { mean += v }
    mean /= float64(len(y))
    var ssRes, ssTot float64
    for i := range y {
        d := y[i] - pred[i]
        ssRes += d * d
        t := y[i] - mean
        ssTot += t * t
    }
    if ssTot == 0 {
        if ssRes == 0 { return 1 }
        return 0
    }
    return 1 - ssRes/ssTot
}
