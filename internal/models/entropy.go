package models

import (
    "math"

    "id3lab/internal/data"
)

// Entropy returns the Shannon entropy, in bits, of a label column.
// Pure and empty columns have zero entropy.
func Entropy(labels []string) float64 {
    if len(labels) == 0 { return 0 }
    counts := make(map[string]int)
    for _, l := range labels { counts[l]++ }
    n := float64(len(labels))
    e := 0.0
    // map order is random; sum in first-seen order
    for _, v := range data.Distinct(labels) {
        p := float64(counts[v]) / n
        e -= p * math.Log2(p)
    }
    return e
}

// InformationGain is the drop in target entropy obtained by partitioning ds
// on attr. Rounding noise below zero is reported as zero.
func InformationGain(ds data.Dataset, attr, target string) float64 {
    if ds.Len() == 0 { return 0 }
    total := Entropy(ds.Column(target))
    n := float64(ds.Len())
    weighted := 0.0
    for _, v := range ds.Values(attr) {
        sub := ds.Where(attr, v)
        weighted += float64(sub.Len()) / n * Entropy(sub.Column(target))
    }
    g := total - weighted
    if g < 0 { g = 0 }
    return g
}

// majority returns the most frequent label; ties go to the label seen first.
func majority(labels []string) string {
    counts := make(map[string]int)
    for _, l := range labels { counts[l]++ }
    best, bestCt := "", 0
    for _, v := range data.Distinct(labels) {
        if counts[v] > bestCt {
            best, bestCt = v, counts[v]
        }
    }
    return best
}

// gainEpsilon is the margin a later feature must beat the current best by.
// Equal gains summed in different orders can differ in the last bit.
const gainEpsilon = 1e-12

// bestFeature picks the feature with the highest gain; ties, up to
// gainEpsilon, go to the one listed first.
func bestFeature(ds data.Dataset, features []string, target string) (string, float64) {
    best, bestGain := "", -1.0
    for _, f := range features {
        if g := InformationGain(ds, f, target); g > bestGain+gainEpsilon {
            best, bestGain = f, g
        }
    }
    return best, bestGain
}

type Gain struct {
    Attribute string  `json:"attribute"`
    Gain      float64 `json:"gain"`
}

// GainReport computes the information gain of each feature over the whole
// dataset, in feature order. A nil features slice means every column except
// the target.
func GainReport(ds data.Dataset, features []string, target string) ([]Gain, error) {
    if features == nil { features = defaultFeatures(ds, target) }
    if err := validate(ds, features, target); err != nil { return nil, err }
    out := make([]Gain, len(features))
    for i, f := range features {
        out[i] = Gain{Attribute: f, Gain: InformationGain(ds, f, target)}
    }
    return out, nil
}
