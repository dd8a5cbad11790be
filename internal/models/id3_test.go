package models

import (
    "math"
    "testing"

    "github.com/google/go-cmp/cmp"
    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
    "go.uber.org/zap"
    "go.uber.org/zap/zaptest/observer"

    "id3lab/internal/data"
)

var tennisFeatures = []string{"Outlook", "Temperature", "Humidity", "Windy"}

func tennisTree() Tree {
    return Internal{Attribute: "Outlook", Branches: []Branch{
        {Value: "Sunny", Child: Internal{Attribute: "Humidity", Branches: []Branch{
            {Value: "High", Child: Leaf{Label: "No"}},
            {Value: "Normal", Child: Leaf{Label: "Yes"}},
        }}},
        {Value: "Overcast", Child: Leaf{Label: "Yes"}},
        {Value: "Rainy", Child: Internal{Attribute: "Windy", Branches: []Branch{
            {Value: "False", Child: Leaf{Label: "Yes"}},
            {Value: "True", Child: Leaf{Label: "No"}},
        }}},
    }}
}

func table(cols []string, recs ...[]string) data.Dataset {
    ds := data.Dataset{Columns: cols}
    for _, rec := range recs {
        r := data.Row{}
        for i, c := range cols { r[c] = rec[i] }
        ds.Rows = append(ds.Rows, r)
    }
    return ds
}

func TestEntropyPureColumnIsZero(t *testing.T) {
    for n := 1; n <= 5; n++ {
        col := make([]string, n)
        for i := range col { col[i] = "Yes" }
        assert.Equal(t, 0.0, Entropy(col))
    }
    assert.Equal(t, 0.0, Entropy(nil))
}

func TestEntropyUniformColumnIsLog2K(t *testing.T) {
    labels := []string{"a", "b", "c", "d", "e", "f", "g", "h"}
    for k := 2; k <= len(labels); k++ {
        var col []string
        for rep := 0; rep < 3; rep++ { col = append(col, labels[:k]...) }
        assert.InDelta(t, math.Log2(float64(k)), Entropy(col), 1e-12, "k=%d", k)
    }
}

func TestEntropyTennisTarget(t *testing.T) {
    assert.InDelta(t, 0.940286, Entropy(data.Tennis().Column("Play")), 1e-6)
}

func TestInformationGainTennis(t *testing.T) {
    ds := data.Tennis()
    want := map[string]float64{
        "Outlook":     0.246750,
        "Temperature": 0.029223,
        "Humidity":    0.151836,
        "Windy":       0.048127,
    }
    for attr, g := range want {
        assert.InDelta(t, g, InformationGain(ds, attr, "Play"), 1e-6, attr)
    }
}

func TestInformationGainNeverNegative(t *testing.T) {
    ds := data.Tennis()
    for _, outlook := range ds.Values("Outlook") {
        sub := ds.Where("Outlook", outlook)
        for _, attr := range tennisFeatures {
            assert.GreaterOrEqual(t, InformationGain(sub, attr, "Play"), 0.0)
        }
    }
    // an attribute that tells nothing about the label
    flat := table([]string{"A", "T"},
        []string{"x", "yes"}, []string{"y", "yes"},
        []string{"x", "no"}, []string{"y", "no"},
    )
    assert.Equal(t, 0.0, InformationGain(flat, "A", "T"))
}

func TestBuildTennis(t *testing.T) {
    tree, err := NewID3().BuildWithFeatures(data.Tennis(), tennisFeatures, "Play")
    require.NoError(t, err)

    root, ok := tree.(Internal)
    require.True(t, ok, "root should be an internal node, got %T", tree)
    require.Equal(t, "Outlook", root.Attribute)

    if diff := cmp.Diff(tennisTree(), tree); diff != "" {
        t.Errorf("tennis tree mismatch (-want +got):\n%s", diff)
    }
    assert.Equal(t, 2, Depth(tree))
    assert.Equal(t, 5, Leaves(tree))
}

func TestBuildDefaultsFeaturesToColumns(t *testing.T) {
    tree, err := Build(data.Tennis(), data.TennisTarget)
    require.NoError(t, err)
    assert.Empty(t, cmp.Diff(tennisTree(), tree))
}

func TestBuildIsIdempotent(t *testing.T) {
    ds := data.Tennis()
    first, err := Build(ds, "Play")
    require.NoError(t, err)
    second, err := Build(ds, "Play")
    require.NoError(t, err)
    assert.Empty(t, cmp.Diff(first, second))
    assert.Equal(t, data.Tennis(), ds, "input must not be modified")
}

func TestBuildSingleLabelIsLeaf(t *testing.T) {
    ds := table([]string{"A", "B", "T"},
        []string{"x", "1", "same"},
        []string{"y", "2", "same"},
        []string{"z", "3", "same"},
    )
    for _, fs := range [][]string{{"A", "B"}, {"B"}, {}} {
        tree, err := NewID3().BuildWithFeatures(ds, fs, "T")
        require.NoError(t, err)
        assert.Equal(t, Leaf{Label: "same"}, tree)
    }
}

func TestBuildExhaustedFeaturesUsesParentMajority(t *testing.T) {
    // rows 0 and 1 agree on A but disagree on T
    ds := table([]string{"A", "T"},
        []string{"x", "no"},
        []string{"x", "yes"},
        []string{"y", "no"},
    )
    tree, err := Build(ds, "T")
    require.NoError(t, err)
    want := Internal{Attribute: "A", Branches: []Branch{
        {Value: "x", Child: Leaf{Label: "no"}},
        {Value: "y", Child: Leaf{Label: "no"}},
    }}
    assert.Empty(t, cmp.Diff(want, tree))

    ds = table([]string{"A", "T"},
        []string{"x", "no"},
        []string{"x", "yes"},
        []string{"y", "yes"},
        []string{"z", "yes"},
    )
    tree, err = Build(ds, "T")
    require.NoError(t, err)
    x, ok := tree.(Internal).Child("x")
    require.True(t, ok)
    assert.Equal(t, Leaf{Label: "yes"}, x)
}

func TestMajorityTieGoesToFirstSeen(t *testing.T) {
    assert.Equal(t, "b", majority([]string{"b", "a", "a", "b"}))
    assert.Equal(t, "a", majority([]string{"a", "b"}))
    assert.Equal(t, "c", majority([]string{"a", "c", "c"}))
}

func TestGainTieGoesToFirstFeature(t *testing.T) {
    // A and B carry identical information
    ds := table([]string{"A", "B", "T"},
        []string{"1", "p", "yes"},
        []string{"2", "q", "no"},
    )
    for _, order := range [][]string{{"A", "B"}, {"B", "A"}} {
        tree, err := NewID3().BuildWithFeatures(ds, order, "T")
        require.NoError(t, err)
        assert.Equal(t, order[0], tree.(Internal).Attribute)
    }
}

func TestGainTieSurvivesRoundingDrift(t *testing.T) {
    // A splits the labels into blocks (1,2) (1,1) (1,2), B into (1,2) (1,2) (1,1):
    // equal gain, but summed in a different order
    ds := table([]string{"A", "B", "T"},
        []string{"a1", "b1", "yes"},
        []string{"a1", "b1", "no"},
        []string{"a1", "b2", "no"},
        []string{"a2", "b1", "no"},
        []string{"a2", "b3", "yes"},
        []string{"a3", "b2", "yes"},
        []string{"a3", "b2", "no"},
        []string{"a3", "b3", "no"},
    )
    require.InDelta(t, InformationGain(ds, "A", "T"), InformationGain(ds, "B", "T"), 1e-12)

    for _, order := range [][]string{{"A", "B"}, {"B", "A"}} {
        best, _ := bestFeature(ds, order, "T")
        assert.Equal(t, order[0], best)

        tree, err := NewID3().BuildWithFeatures(ds, order, "T")
        require.NoError(t, err)
        assert.Equal(t, order[0], tree.(Internal).Attribute)
    }
}

func TestGrowEmptySubsetUsesOriginalMajority(t *testing.T) {
    orig := table([]string{"A", "T"},
        []string{"x", "no"}, []string{"y", "yes"}, []string{"z", "yes"},
    )
    empty := data.Dataset{Columns: orig.Columns}
    got := NewID3().grow(empty, orig, []string{"A"}, "T", "no", 1, 1)
    assert.Equal(t, Leaf{Label: "yes"}, got)
}

func TestBuildInvalidInput(t *testing.T) {
    ds := data.Tennis()
    cases := []struct {
        name     string
        ds       data.Dataset
        features []string
        target   string
    }{
        {"empty dataset", data.Dataset{Columns: []string{"A", "T"}}, []string{"A"}, "T"},
        {"unknown target", ds, tennisFeatures, "Golf"},
        {"feature is target", ds, []string{"Outlook", "Play"}, "Play"},
        {"unknown feature", ds, []string{"Outlook", "Pressure"}, "Play"},
        {"duplicate feature", ds, []string{"Outlook", "Outlook"}, "Play"},
        {"row missing target", data.Dataset{Columns: []string{"A", "T"}, Rows: []data.Row{{"A": "x", "T": "y"}, {"A": "z"}}}, []string{"A"}, "T"},
    }
    for _, tc := range cases {
        t.Run(tc.name, func(t *testing.T) {
            tree, err := NewID3().BuildWithFeatures(tc.ds, tc.features, tc.target)
            require.ErrorIs(t, err, ErrInvalidInput)
            assert.Nil(t, tree)
        })
    }
}

func TestBuildRejectsEmptyDatasetViaBuild(t *testing.T) {
    _, err := Build(data.Dataset{}, "Play")
    require.ErrorIs(t, err, ErrInvalidInput)
}

func TestValidateReportsEveryMissingCell(t *testing.T) {
    ds := data.Dataset{Columns: []string{"A", "B", "T"}, Rows: []data.Row{
        {"A": "x", "B": "1", "T": "yes"},
        {"B": "1"},
    }}
    err := validate(ds, []string{"A", "B"}, "T")
    require.ErrorIs(t, err, ErrInvalidInput)
    assert.Contains(t, err.Error(), `row 1: missing "T"`)
    assert.Contains(t, err.Error(), `row 1: missing "A"`)
}

func TestParallelBuildMatchesSequential(t *testing.T) {
    seq, err := Build(data.Tennis(), "Play")
    require.NoError(t, err)
    b := NewID3()
    b.Workers = 4
    par, err := b.Build(data.Tennis(), "Play")
    require.NoError(t, err)
    assert.Empty(t, cmp.Diff(seq, par))
}

func TestBuildLogsSplits(t *testing.T) {
    core, logs := observer.New(zap.DebugLevel)
    b := NewID3()
    b.Logger = zap.New(core)
    _, err := b.Build(data.Tennis(), "Play")
    require.NoError(t, err)

    splits := logs.FilterMessage("split").All()
    require.Len(t, splits, 3)
    assert.Equal(t, "Outlook", splits[0].ContextMap()["attribute"])
}

func TestGainReport(t *testing.T) {
    gains, err := GainReport(data.Tennis(), nil, "Play")
    require.NoError(t, err)
    require.Len(t, gains, 4)
    for i, g := range gains { assert.Equal(t, tennisFeatures[i], g.Attribute) }
    assert.InDelta(t, 0.246750, gains[0].Gain, 1e-6)

    _, err = GainReport(data.Tennis(), []string{"Nope"}, "Play")
    require.ErrorIs(t, err, ErrInvalidInput)
}
