package memdb

import (
	"context"
	"slices"
	"sync"

	"github.com/hedisam/txflowgraph/internal/store"
)

// GraphStore is a directed graph with set semantics for both nodes and edges.
// Nodes and edges are reported in the order they were first inserted.
type GraphStore struct {
	nodes   []string
	edges   []store.Edge
	out     map[string][]string
	in      map[string][]string
	edgeSet map[store.Edge]struct{}
	mu      sync.RWMutex
}

func NewGraphStore(opts ...Option) *GraphStore {
	cfg := &config{memSize: DefaultMemSize}
	for opt := range slices.Values(opts) {
		opt(cfg)
	}

	return &GraphStore{
		out:     make(map[string][]string, cfg.memSize),
		in:      make(map[string][]string, cfg.memSize),
		edgeSet: make(map[store.Edge]struct{}, cfg.memSize),
	}
}

// AddEdge inserts both endpoints and the from->to edge. It returns false if the edge already existed.
func (s *GraphStore) AddEdge(_ context.Context, from, to string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.addNode(from)
	s.addNode(to)

	edge := store.Edge{From: from, To: to}
	if _, ok := s.edgeSet[edge]; ok {
		return false, nil
	}
	s.edgeSet[edge] = struct{}{}
	s.edges = append(s.edges, edge)
	s.out[from] = append(s.out[from], to)
	s.in[to] = append(s.in[to], from)

	return true, nil
}

func (s *GraphStore) addNode(id string) bool {
	if _, ok := s.out[id]; ok {
		return false
	}
	s.out[id] = nil
	s.in[id] = nil
	s.nodes = append(s.nodes, id)
	return true
}

// Nodes returns a copy of all node ids.
func (s *GraphStore) Nodes(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.nodes), nil
}

// Edges returns a copy of all edges.
func (s *GraphStore) Edges(_ context.Context) ([]store.Edge, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.edges), nil
}

// Node returns the node with the given id along with its neighbours.
func (s *GraphStore) Node(_ context.Context, id string) (*store.Node, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out, ok := s.out[id]
	if !ok {
		return nil, store.ErrNotFound
	}

	return &store.Node{
		ID:  id,
		In:  slices.Clone(s.in[id]),
		Out: slices.Clone(out),
	}, nil
}

func (s *GraphStore) Stats(_ context.Context) (store.Stats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return store.Stats{
		Nodes: len(s.nodes),
		Edges: len(s.edges),
	}, nil
}
