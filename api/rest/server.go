package rest

import (
	"context"
	"errors"
	"net/http"
	"slices"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/hedisam/txflowgraph/internal/graph"
	"github.com/hedisam/txflowgraph/internal/store"
)

type GraphStore interface {
	Nodes(ctx context.Context) ([]string, error)
	Edges(ctx context.Context) ([]store.Edge, error)
	Node(ctx context.Context, id string) (*store.Node, error)
	Stats(ctx context.Context) (store.Stats, error)
}

type ReportStore interface {
	Reports(ctx context.Context) ([]graph.BlockReport, error)
}

type Server struct {
	logger      *logrus.Logger
	graphStore  GraphStore
	reportStore ReportStore
}

func NewServer(logger *logrus.Logger, graphStore GraphStore, reportStore ReportStore) *Server {
	return &Server{
		logger:      logger,
		graphStore:  graphStore,
		reportStore: reportStore,
	}
}

// Register wires the server handlers into mux.
func (s *Server) Register(mux *http.ServeMux) {
	RegisterFunc(s.logger, mux, http.MethodGet, "/api/v1/graph", s.GetGraph)
	RegisterFunc(s.logger, mux, http.MethodGet, "/api/v1/graph/nodes/{id}", s.GetNode)
	RegisterFunc(s.logger, mux, http.MethodGet, "/api/v1/graph/stats", s.GetStats)
	RegisterFunc(s.logger, mux, http.MethodGet, "/api/v1/blocks", s.ListBlocks)
}

func (s *Server) GetGraph(ctx context.Context, _ *GetGraphRequest) (*GetGraphResponse, error) {
	logger := s.logger.WithContext(ctx)

	nodeIDs, err := s.graphStore.Nodes(ctx)
	if err != nil {
		logger.WithError(err).Error("Failed to list nodes from store")
		return nil, NewErrf(http.StatusInternalServerError, "could not list graph nodes")
	}
	storedEdges, err := s.graphStore.Edges(ctx)
	if err != nil {
		logger.WithError(err).Error("Failed to list edges from store")
		return nil, NewErrf(http.StatusInternalServerError, "could not list graph edges")
	}

	nodes := make([]*Node, 0, len(nodeIDs))
	for id := range slices.Values(nodeIDs) {
		nodes = append(nodes, &Node{
			ID:    id,
			Label: graph.Label(id),
		})
	}
	edges := make([]*Edge, 0, len(storedEdges))
	for edge := range slices.Values(storedEdges) {
		edges = append(edges, &Edge{
			From: edge.From,
			To:   edge.To,
		})
	}

	return &GetGraphResponse{
		Nodes: nodes,
		Edges: edges,
	}, nil
}

func (s *Server) GetNode(ctx context.Context, req *GetNodeRequest) (*GetNodeResponse, error) {
	logger := s.logger.WithContext(ctx).WithField("id", req.ID)

	id := strings.TrimSpace(req.ID)
	if id == "" {
		logger.Warn("Node id is required to get a node")
		return nil, NewErrf(http.StatusBadRequest, "Missing required field: 'id'")
	}

	node, err := s.graphStore.Node(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			logger.Warn("Requested node is not in the graph")
			return nil, NewErrf(http.StatusNotFound, "Node not found")
		}
		logger.WithError(err).Error("Failed to get node from store")
		return nil, NewErrf(http.StatusInternalServerError, "could not get node from store")
	}

	return &GetNodeResponse{
		Node: &Node{
			ID:    node.ID,
			Label: graph.Label(node.ID),
			In:    node.In,
			Out:   node.Out,
		},
	}, nil
}

func (s *Server) GetStats(ctx context.Context, _ *GetStatsRequest) (*GetStatsResponse, error) {
	stats, err := s.graphStore.Stats(ctx)
	if err != nil {
		s.logger.WithContext(ctx).WithError(err).Error("Failed to get graph stats from store")
		return nil, NewErrf(http.StatusInternalServerError, "could not get graph stats")
	}

	return &GetStatsResponse{
		Nodes: stats.Nodes,
		Edges: stats.Edges,
	}, nil
}

func (s *Server) ListBlocks(ctx context.Context, _ *ListBlocksRequest) (*ListBlocksResponse, error) {
	reports, err := s.reportStore.Reports(ctx)
	if err != nil {
		s.logger.WithContext(ctx).WithError(err).Error("Failed to list block reports")
		return nil, NewErrf(http.StatusInternalServerError, "could not list block reports")
	}

	blocks := make([]*Block, 0, len(reports))
	for report := range slices.Values(reports) {
		block := &Block{
			Height:   report.Height,
			Txs:      report.Txs,
			Ingested: report.Ingested,
			Failed:   report.Failed,
			NewEdges: report.NewEdges,
		}
		if report.Err != nil {
			block.Error = report.Err.Error()
		}
		blocks = append(blocks, block)
	}

	return &ListBlocksResponse{
		Blocks: blocks,
	}, nil
}
