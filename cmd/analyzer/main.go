package main

import (
    "flag"
    "fmt"
    "io"
    "os"
    "path/filepath"

    "gonum.org/v1/plot"
    "gonum.org/v1/plot/plotter"
    "gonum.org/v1/plot/plotutil"
    "gonum.org/v1/plot/vg"

    "go.uber.org/zap"

    "id3lab/internal/data"
    "id3lab/internal/models"
    "id3lab/pkg/utils"
)

func main() {
    logger := utils.Logger()
    defer logger.Sync()

    dataPath := flag.String("data", "", "CSV with a header row; empty uses the built-in tennis table")
    target := flag.String("target", data.TennisTarget, "Label column")
    outImg := flag.String("out_img", "", "Optional PNG bar chart of the gains")
    flag.Parse()

    ds := data.Tennis()
    if *dataPath != "" {
        f, err := os.Open(*dataPath)
        if err != nil { logger.Fatal("Failed to open CSV", zap.Error(err)) }
        ds, err = data.ReadCSV(f)
        f.Close()
        if err != nil { logger.Fatal("Failed to read CSV", zap.Error(err)) }
    }

    gains, err := models.GainReport(ds, nil, *target)
    if err != nil { logger.Fatal("Failed to compute gains", zap.Error(err)) }

    if err := writeReport(os.Stdout, models.Entropy(ds.Column(*target)), gains); err != nil {
        logger.Fatal("Failed to print report", zap.Error(err))
    }

    if *outImg != "" {
        if err := plotGains(*outImg, gains); err != nil {
            logger.Warn("Failed to save chart", zap.Error(err))
        } else {
            logger.Info("Chart saved", zap.String("png", *outImg))
        }
    }
}

func writeReport(w io.Writer, entropy float64, gains []models.Gain) error {
    if _, err := fmt.Fprintf(w, "Target entropy: %.4f\n", entropy); err != nil { return err }
    for _, g := range gains {
        if _, err := fmt.Fprintf(w, "%-15s: %.4f\n", g.Attribute, g.Gain); err != nil { return err }
    }
    return nil
}

func plotGains(path string, gains []models.Gain) error {
    p := plot.New()
    p.Title.Text = "Information gain"
    p.Y.Label.Text = "Bits"

    vals := make(plotter.Values, len(gains))
    names := make([]string, len(gains))
    for i, g := range gains { vals[i] = g.Gain; names[i] = g.Attribute }

    bars, err := plotter.NewBarChart(vals, vg.Points(30))
    if err != nil { return err }
    bars.Color = plotutil.Color(0)
    p.Add(bars)
    p.NominalX(names...)

    if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil { return err }
    return p.Save(6*vg.Inch, 4*vg.Inch, path)
}
