package graph

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/hedisam/txflowgraph/internal/custompromauto"
)

var (
	blocksFailedProcessing = custompromauto.Auto().NewCounter(prometheus.CounterOpts{
		Name: "txflowgraph_blocks_failed_processing_total",
		Help: "Total number of blocks skipped because their transactions could not be fetched",
	})

	processedBlocks = custompromauto.Auto().NewCounter(prometheus.CounterOpts{
		Name: "txflowgraph_blocks_processed_total",
		Help: "Total number of blocks ingested into the graph",
	})
	ingestedTransactions = custompromauto.Auto().NewCounter(prometheus.CounterOpts{
		Name: "txflowgraph_ingested_transactions_total",
		Help: "Total number of transactions successfully ingested",
	})
	failedTransactions = custompromauto.Auto().NewCounter(prometheus.CounterOpts{
		Name: "txflowgraph_failed_transactions_total",
		Help: "Total number of malformed transactions skipped during ingestion",
	})
	edgesAdded = custompromauto.Auto().NewCounter(prometheus.CounterOpts{
		Name: "txflowgraph_edges_added_total",
		Help: "Total number of new edges added to the graph",
	})

	graphNodes = custompromauto.Auto().NewGauge(prometheus.GaugeOpts{
		Name: "txflowgraph_graph_nodes",
		Help: "Number of nodes in the graph after the last ingested block",
	})
	graphEdges = custompromauto.Auto().NewGauge(prometheus.GaugeOpts{
		Name: "txflowgraph_graph_edges",
		Help: "Number of edges in the graph after the last ingested block",
	})
)
