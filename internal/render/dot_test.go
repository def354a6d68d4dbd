package render_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hedisam/txflowgraph/internal/graph"
	"github.com/hedisam/txflowgraph/internal/render"
	"github.com/hedisam/txflowgraph/internal/store"
	"github.com/hedisam/txflowgraph/internal/store/memdb"
)

func TestWriteDOT(t *testing.T) {
	ctx := context.Background()
	s := memdb.NewGraphStore()
	_, err := s.AddEdge(ctx, graph.CoinbaseID, "0014abcdef0123")
	require.NoError(t, err)
	_, err = s.AddEdge(ctx, `weird"id`, "0014abcdef0123")
	require.NoError(t, err)

	var buf bytes.Buffer
	err = render.WriteDOT(ctx, &buf, s)
	require.NoError(t, err)

	out := buf.String()
	assert.True(t, strings.HasPrefix(strings.TrimSpace(out), "digraph"))
	assert.Contains(t, out, "txflow")
	assert.Contains(t, out, `label="Coinbase"`)
	assert.Contains(t, out, `tooltip="Coinbase Transaction"`)
	assert.Contains(t, out, `label="0014abcd"`)
	assert.Contains(t, out, `tooltip="0014abcdef0123"`)
	assert.Contains(t, out, `tooltip="weird\"id"`)
	assert.NotContains(t, out, `label="0014abcdef0123"`)
	assert.Equal(t, 2, strings.Count(out, "->"))
}

func TestBuild(t *testing.T) {
	g := render.Build(
		[]string{graph.CoinbaseID, "script-r", graph.UnknownID},
		[]store.Edge{
			{From: graph.CoinbaseID, To: "script-r"},
			{From: graph.UnknownID, To: "script-r"},
		},
	)

	assert.Len(t, g.FindNodes(), 3)
	assert.Len(t, g.EdgesMap(), 2)

	node, ok := g.FindNodeById(graph.CoinbaseID)
	require.True(t, ok)
	assert.Equal(t, "Coinbase", node.Value("label"))
	assert.Equal(t, graph.CoinbaseID, node.Value("tooltip"))
}

type failingGraph struct{}

func (failingGraph) Nodes(context.Context) ([]string, error) {
	return nil, errors.New("boom")
}

func (failingGraph) Edges(context.Context) ([]store.Edge, error) {
	return nil, nil
}

func TestWriteDOTReadError(t *testing.T) {
	var buf bytes.Buffer
	err := render.WriteDOT(context.Background(), &buf, failingGraph{})
	require.Error(t, err)
	assert.ErrorContains(t, err, "boom")
	assert.Zero(t, buf.Len())
}
