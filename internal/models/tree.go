package models

import (
    "bytes"

    "github.com/goccy/go-json"
)

// Tree is either a Leaf or an Internal node.
type Tree interface {
    isTree()
}

// Leaf predicts a single label.
type Leaf struct {
    Label string
}

// Internal splits on Attribute. Branches keep the order in which each value
// was first seen in the rows that reached the node.
type Internal struct {
    Attribute string
    Branches  []Branch
}

type Branch struct {
    Value string
    Child Tree
}

func (Leaf) isTree()     {}
func (Internal) isTree() {}

// Child returns the subtree for value.
func (n Internal) Child(value string) (Tree, bool) {
    for _, b := range n.Branches {
        if b.Value == value { return b.Child, true }
    }
    return nil, false
}

// MarshalJSON encodes a leaf as its bare label.
func (l Leaf) MarshalJSON() ([]byte, error) {
    return json.Marshal(l.Label)
}

// MarshalJSON encodes the node as {"attr": {"value": subtree, ...}} with
// branches in order.
func (n Internal) MarshalJSON() ([]byte, error) {
    var buf bytes.Buffer
    key, err := json.Marshal(n.Attribute)
    if err != nil { return nil, err }
    buf.WriteByte('{')
    buf.Write(key)
    buf.WriteString(":{")
    for i, b := range n.Branches {
        if i > 0 { buf.WriteByte(',') }
        k, err := json.Marshal(b.Value)
        if err != nil { return nil, err }
        v, err := json.Marshal(b.Child)
        if err != nil { return nil, err }
        buf.Write(k)
        buf.WriteByte(':')
        buf.Write(v)
    }
    buf.WriteString("}}")
    return buf.Bytes(), nil
}

// Depth is the number of splits on the longest root-to-leaf path.
func Depth(t Tree) int {
    n, ok := t.(Internal)
    if !ok { return 0 }
    d := 0
    for _, b := range n.Branches {
        if cd := Depth(b.Child); cd > d { d = cd }
    }
    return d + 1
}

// Leaves counts the leaves of t.
func Leaves(t Tree) int {
    n, ok := t.(Internal)
    if !ok { return 1 }
    c := 0
    for _, b := range n.Branches { c += Leaves(b.Child) }
    return c
}
