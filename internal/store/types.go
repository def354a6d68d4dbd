package store

import "errors"

var (
	// ErrNotFound is returned when an item in store is not found.
	ErrNotFound = errors.New("not found")
)

// Edge is a directed fund flow from one identity to another.
type Edge struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Node is a graph node together with its neighbours, in insertion order.
type Node struct {
	ID  string
	In  []string
	Out []string
}

type Stats struct {
	Nodes int
	Edges int
}
