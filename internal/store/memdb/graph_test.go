package memdb_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hedisam/txflowgraph/internal/store"
	"github.com/hedisam/txflowgraph/internal/store/memdb"
)

func TestGraphStore(t *testing.T) {
	ctx := context.Background()
	s := memdb.NewGraphStore(memdb.WithMemSize(4))

	for _, edge := range []store.Edge{
		{From: "a", To: "b"},
		{From: "c", To: "b"},
		{From: "a", To: "b"},
		{From: "b", To: "a"},
	} {
		_, err := s.AddEdge(ctx, edge.From, edge.To)
		require.NoError(t, err)
	}

	nodes, err := s.Nodes(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, nodes)

	edges, err := s.Edges(ctx)
	require.NoError(t, err)
	assert.Equal(t, []store.Edge{
		{From: "a", To: "b"},
		{From: "c", To: "b"},
		{From: "b", To: "a"},
	}, edges)

	node, err := s.Node(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, &store.Node{
		ID:  "b",
		In:  []string{"a", "c"},
		Out: []string{"a"},
	}, node)

	_, err = s.Node(ctx, "d")
	assert.ErrorIs(t, err, store.ErrNotFound)

	stats, err := s.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, store.Stats{Nodes: 3, Edges: 3}, stats)
}

func TestGraphStoreAddEdgeReportsNewEdges(t *testing.T) {
	ctx := context.Background()
	s := memdb.NewGraphStore()

	added, err := s.AddEdge(ctx, "a", "a")
	require.NoError(t, err)
	assert.True(t, added)

	added, err = s.AddEdge(ctx, "a", "a")
	require.NoError(t, err)
	assert.False(t, added)

	node, err := s.Node(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, node.In)
	assert.Equal(t, []string{"a"}, node.Out)
}

func TestGraphStoreSnapshotsAreCopies(t *testing.T) {
	ctx := context.Background()
	s := memdb.NewGraphStore()
	_, err := s.AddEdge(ctx, "a", "b")
	require.NoError(t, err)

	nodes, err := s.Nodes(ctx)
	require.NoError(t, err)
	nodes[0] = "mutated"

	again, err := s.Nodes(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, again)
}
