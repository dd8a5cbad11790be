package main

import (
    "flag"
    "fmt"
    "io"
    "os"
    "strings"
    "time"

    "github.com/goccy/go-json"
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
    feats := flag.String("features", "", "Comma separated feature order; empty uses every other column")
    workers := flag.Int("workers", 1, "Goroutines used to grow the root's branches")
    asJSON := flag.Bool("json", false, "Print the tree as nested JSON instead of text")
    flag.Parse()

    ds, err := loadDataset(*dataPath)
    if err != nil { logger.Fatal("Failed to load dataset", zap.String("path", *dataPath), zap.Error(err)) }

    b := models.NewID3()
    b.Workers = *workers
    b.Logger = logger

    start := time.Now()
    var tree models.Tree
    if fs := splitList(*feats); fs != nil {
        tree, err = b.BuildWithFeatures(ds, fs, *target)
    } else {
        tree, err = b.Build(ds, *target)
    }
    if err != nil { logger.Fatal("Failed to build tree", zap.Error(err)) }
    logger.Info("Tree built",
        zap.String("model", b.Name()),
        zap.Int("rows", ds.Len()),
        zap.Int("depth", models.Depth(tree)),
        zap.Int("leaves", models.Leaves(tree)),
        zap.Duration("elapsed", time.Since(start)),
    )

    if err := printTree(os.Stdout, tree, *asJSON); err != nil {
        logger.Fatal("Failed to print tree", zap.Error(err))
    }
}

func loadDataset(path string) (data.Dataset, error) {
    if path == "" { return data.Tennis(), nil }
    f, err := os.Open(path)
    if err != nil { return data.Dataset{}, err }
    defer f.Close()
    return data.ReadCSV(f)
}

func splitList(s string) []string {
    if strings.TrimSpace(s) == "" { return nil }
    parts := strings.Split(s, ",")
    out := make([]string, 0, len(parts))
    for _, p := range parts {
        if p = strings.TrimSpace(p); p != "" { out = append(out, p) }
    }
    return out
}

func printTree(w io.Writer, tree models.Tree, asJSON bool) error {
    if asJSON {
        b, err := json.MarshalIndent(tree, "", "  ")
        if err != nil { return err }
        _, err = fmt.Fprintln(w, string(b))
        return err
    }
    if _, err := fmt.Fprintln(w, "Decision Tree:"); err != nil { return err }
    return models.Render(w, tree)
}
