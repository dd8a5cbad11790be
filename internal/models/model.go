package models

// Model is a numeric regressor fitted on a design matrix.
type Model interface {
    Fit(X [][]float64, y []float64) error
    Predict(X [][]float64) []float64
    Score(X [][]float64, y []float64) float64
    Name() string
}
