package models

import (
    "errors"
    "fmt"

    "go.uber.org/multierr"
    "go.uber.org/zap"
    "golang.org/x/sync/errgroup"

    "id3lab/internal/data"
)

var (
    // ErrInvalidInput reports a dataset, target or feature list that cannot
    // be used to build a tree.
    ErrInvalidInput = errors.New("invalid input")
    // ErrUnseenValue is returned by Classify when a row carries a value no
    // branch was grown for.
    ErrUnseenValue = errors.New("unseen attribute value")
)

// ID3 grows categorical decision trees by greedy information-gain splits.
type ID3 struct {
    // Workers > 1 grows the root's branches concurrently.
    Workers int
    Logger  *zap.Logger
}

func NewID3() *ID3 {
    return &ID3{Workers: 1, Logger: zap.NewNop()}
}

func (b *ID3) Name() string { return "ID3" }

// Build grows a tree over every column of ds except target, using ds.Columns
// as the feature order.
func Build(ds data.Dataset, target string) (Tree, error) {
    return NewID3().Build(ds, target)
}

func (b *ID3) Build(ds data.Dataset, target string) (Tree, error) {
    return b.BuildWithFeatures(ds, defaultFeatures(ds, target), target)
}

// BuildWithFeatures grows a tree considering only features, in the given
// order. Gain ties are resolved in favour of the earlier feature.
func (b *ID3) BuildWithFeatures(ds data.Dataset, features []string, target string) (Tree, error) {
    if err := validate(ds, features, target); err != nil {
        return nil, err
    }
    fs := make([]string, len(features))
    copy(fs, features)

    b.logger().Debug("building tree",
        zap.Int("rows", ds.Len()),
        zap.Strings("features", fs),
        zap.String("target", target),
    )
    workers := b.Workers
    if workers < 1 { workers = 1 }
    return b.grow(ds, ds, fs, target, majority(ds.Column(target)), 0, workers), nil
}

func (b *ID3) logger() *zap.Logger {
    if b.Logger == nil { return zap.NewNop() }
    return b.Logger
}

// grow is the recursive step. original is the top-level dataset and parent
// is the majority label of the node that produced ds.
func (b *ID3) grow(ds, original data.Dataset, features []string, target, parent string, depth, workers int) Tree {
    labels := ds.Column(target)
    uniq := data.Distinct(labels)
    switch {
    case len(uniq) == 1:
        return Leaf{Label: uniq[0]}
    case ds.Len() == 0:
        return Leaf{Label: majority(original.Column(target))}
    case len(features) == 0:
        return Leaf{Label: parent}
    }

    fallback := majority(labels)
    best, gain := bestFeature(ds, features, target)
    b.logger().Debug("split",
        zap.String("attribute", best),
        zap.Float64("gain", gain),
        zap.Int("rows", ds.Len()),
        zap.Int("depth", depth),
    )

    rest := make([]string, 0, len(features)-1)
    for _, f := range features {
        if f != best { rest = append(rest, f) }
    }

    values := ds.Values(best)
    node := Internal{Attribute: best, Branches: make([]Branch, len(values))}
    for i, v := range values { node.Branches[i].Value = v }

    if workers > 1 && len(values) > 1 {
        var g errgroup.Group
        g.SetLimit(workers)
        for i, v := range values {
            i, v := i, v
            g.Go(func() error {
                node.Branches[i].Child = b.grow(ds.Where(best, v), original, rest, target, fallback, depth+1, 1)
                return nil
            })
        }
        _ = g.Wait()
        return node
    }

    for i, v := range values {
        node.Branches[i].Child = b.grow(ds.Where(best, v), original, rest, target, fallback, depth+1, 1)
    }
    return node
}

func defaultFeatures(ds data.Dataset, target string) []string {
    out := make([]string, 0, len(ds.Columns))
    for _, c := range ds.Columns {
        if c != target { out = append(out, c) }
    }
    return out
}

func validate(ds data.Dataset, features []string, target string) error {
    if ds.Len() == 0 {
        return fmt.Errorf("%w: empty dataset", ErrInvalidInput)
    }
    if !ds.HasColumn(target) {
        return fmt.Errorf("%w: target %q is not a column", ErrInvalidInput, target)
    }

    var errs error
    seen := make(map[string]bool, len(features))
    for _, f := range features {
        switch {
        case f == target:
            errs = multierr.Append(errs, fmt.Errorf("feature %q is the target", f))
        case seen[f]:
            errs = multierr.Append(errs, fmt.Errorf("feature %q listed twice", f))
        case !ds.HasColumn(f):
            errs = multierr.Append(errs, fmt.Errorf("feature %q is not a column", f))
        }
        seen[f] = true
    }
    for i, r := range ds.Rows {
        if _, ok := r[target]; !ok {
            errs = multierr.Append(errs, fmt.Errorf("row %d: missing %q", i, target))
        }
        for _, f := range features {
            if _, ok := r[f]; !ok {
                errs = multierr.Append(errs, fmt.Errorf("row %d: missing %q", i, f))
            }
        }
    }
    if errs != nil {
        return fmt.Errorf("%w: %w", ErrInvalidInput, errs)
    }
    return nil
}
