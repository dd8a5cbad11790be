package models

import (
    "fmt"
    "io"
    "strings"

    "id3lab/internal/data"
)

// Render writes t as tab-indented text: the split attribute, then each
// value as "<value> ->" one level deeper, then its subtree two levels
// deeper. Leaves print as "Leaf: <label>".
func Render(w io.Writer, t Tree) error {
    return render(w, t, 0)
}

func render(w io.Writer, t Tree, level int) error {
    indent := strings.Repeat("\t", level)
    switch n := t.(type) {
    case Leaf:
        _, err := fmt.Fprintf(w, "%sLeaf: %s\n", indent, n.Label)
        return err
    case Internal:
        if _, err := fmt.Fprintf(w, "%s%s\n", indent, n.Attribute); err != nil { return err }
        for _, b := range n.Branches {
            if _, err := fmt.Fprintf(w, "%s\t%s ->\n", indent, b.Value); err != nil { return err }
            if err := render(w, b.Child, level+2); err != nil { return err }
        }
        return nil
    default:
        return fmt.Errorf("render: unknown node %T", t)
    }
}

// Classify follows row down t and returns the label of the leaf it reaches.
func Classify(t Tree, row data.Row) (string, error) {
    for {
        switch n := t.(type) {
        case Leaf:
            return n.Label, nil
        case Internal:
            v, ok := row[n.Attribute]
            if !ok {
                return "", fmt.Errorf("%w: row has no %q", ErrInvalidInput, n.Attribute)
            }
            child, ok := n.Child(v)
            if !ok {
                return "", fmt.Errorf("%w: %s=%q", ErrUnseenValue, n.Attribute, v)
            }
            t = child
        default:
            return "", fmt.Errorf("classify: unknown node %T", t)
        }
    }
}
