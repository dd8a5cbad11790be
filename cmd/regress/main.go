package main

import (
    "flag"
    "fmt"
    "io"
    "math/rand"
    "os"
    "path/filepath"
    "text/tabwriter"
    "time"

    "gonum.org/v1/plot"
    "gonum.org/v1/plot/plotter"
    "gonum.org/v1/plot/vg"

    "go.uber.org/zap"

    "id3lab/internal/data"
    "id3lab/internal/features"
    "id3lab/internal/models"
    "id3lab/pkg/utils"
)

func main() {
    logger := utils.Logger()
    defer logger.Sync()

    n := flag.Int("n", 20, "Number of synthetic records")
    seed := flag.Int64("seed", time.Now().UnixNano(), "Seed for the synthetic data")
    out := flag.String("out", "", "Optional CSV path for the generated records")
    testSize := flag.Float64("test_size", 0.2, "Fraction of records held out for scoring")
    splitSeed := flag.Int64("split_seed", 42, "Seed for the train/test shuffle")
    plotPath := flag.String("plot", "", "Optional PNG path for actual vs predicted")
    tree := flag.Bool("tree", false, "Also grow an ID3 tree over the banded table")
    tableOut := flag.String("table_out", "", "Optional CSV path for the banded categorical table")
    flag.Parse()

    ps := data.GeneratePurchases(*n, rand.New(rand.NewSource(*seed)))
    if *out != "" {
        if err := data.WritePurchasesCSV(ps, *out); err != nil {
            logger.Fatal("Failed to write dataset", zap.String("out", *out), zap.Error(err))
        }
        logger.Info("Dataset written", zap.String("out", *out), zap.Int("n", len(ps)))
    }
    if err := printPurchases(os.Stdout, ps); err != nil {
        logger.Fatal("Failed to print dataset", zap.Error(err))
    }

    X, y := features.Matrix(ps)
    Xtrain, Xtest, ytrain, ytest, err := features.TrainTestSplit(X, y, *testSize, *splitSeed)
    if err != nil { logger.Fatal("Failed to split dataset", zap.Error(err)) }

    var mdl models.Model = models.NewLinearRegression()
    if err := mdl.Fit(Xtrain, ytrain); err != nil {
        logger.Fatal("Failed to fit model", zap.String("model", mdl.Name()), zap.Error(err))
    }
    score := mdl.Score(Xtest, ytest)
    lr := mdl.(*models.LinearRegression)
    logger.Info("Holdout metrics",
        zap.String("model", mdl.Name()),
        zap.Int("train", len(Xtrain)),
        zap.Int("test", len(Xtest)),
        zap.Float64("intercept", lr.Intercept),
        zap.Float64s("coef", lr.Coef),
        zap.Float64("r2", score),
    )
    fmt.Println(score)

    if *plotPath != "" {
        if err := plotPredictions(*plotPath, ytest, mdl.Predict(Xtest)); err != nil {
            logger.Warn("Failed to save plot", zap.Error(err))
        } else {
            logger.Info("Plot saved", zap.String("png", *plotPath))
        }
    }

    table := features.Table(ps)
    if *tableOut != "" {
        if err := writeTable(*tableOut, table); err != nil {
            logger.Fatal("Failed to write table", zap.String("out", *tableOut), zap.Error(err))
        }
        logger.Info("Table written", zap.String("out", *tableOut))
    }

    if *tree {
        b := models.NewID3()
        b.Logger = logger
        t, err := b.Build(table, "Purchased")
        if err != nil { logger.Fatal("Failed to build tree", zap.Error(err)) }
        fmt.Println("Decision Tree:")
        if err := models.Render(os.Stdout, t); err != nil {
            logger.Fatal("Failed to print tree", zap.Error(err))
        }
    }
}

func printPurchases(w io.Writer, ps []data.Purchase) error {
    tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
    fmt.Fprintln(tw, "\tAge\tSalary\tPurchased\tGender\tCity")
    for i, p := range ps {
        fmt.Fprintf(tw, "%d\t%d\t%d\t%d\t%s\t%s\n", i, p.Age, p.Salary, p.Purchased, p.Gender, p.City)
    }
    return tw.Flush()
}

func writeTable(path string, ds data.Dataset) error {
    return data.WriteFile(path, func(w io.Writer) error { return data.WriteCSV(w, ds) })
}

func plotPredictions(path string, actual, predicted []float64) error {
    p := plot.New()
    p.Title.Text = "Linear regression on holdout"
    p.X.Label.Text = "Actual"
    p.Y.Label.Text = "Predicted"

    pts := make(plotter.XYs, len(actual))
    for i := range actual { pts[i].X = actual[i]; pts[i].Y = predicted[i] }
    s, err := plotter.NewScatter(pts)
    if err != nil { return err }
    p.Add(s, plotter.NewGrid())

    if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil { return err }
    return p.Save(6*vg.Inch, 4*vg.Inch, path)
}
