// Package render writes read-only snapshots of the fund flow graph for external visualization tools.
package render

import (
	"context"
	"fmt"
	"io"

	"github.com/emicklei/dot"

	"github.com/hedisam/txflowgraph/internal/graph"
	"github.com/hedisam/txflowgraph/internal/store"
)

type GraphReader interface {
	Nodes(ctx context.Context) ([]string, error)
	Edges(ctx context.Context) ([]store.Edge, error)
}

// WriteDOT writes the graph in Graphviz DOT format. Nodes are labelled with the short label of their id,
// the full id is kept as the tooltip. Layout is left to Graphviz.
func WriteDOT(ctx context.Context, w io.Writer, g GraphReader) error {
	nodes, err := g.Nodes(ctx)
	if err != nil {
		return fmt.Errorf("could not read nodes: %w", err)
	}
	edges, err := g.Edges(ctx)
	if err != nil {
		return fmt.Errorf("could not read edges: %w", err)
	}

	_, err = io.WriteString(w, Build(nodes, edges).String())
	if err != nil {
		return fmt.Errorf("could not write dot output: %w", err)
	}

	return nil
}

// Build converts a graph snapshot into a dot graph.
func Build(nodes []string, edges []store.Edge) *dot.Graph {
	out := dot.NewGraph(dot.Directed)
	out.ID("txflow")

	for _, id := range nodes {
		out.Node(id).
			Label(graph.Label(id)).
			Attr("tooltip", id).
			Attr("shape", "ellipse").
			Attr("fontsize", "10")
	}
	for _, edge := range edges {
		// Node returns the existing node for a known id
		out.Edge(out.Node(edge.From), out.Node(edge.To))
	}

	return out
}
