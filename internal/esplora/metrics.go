package esplora

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/hedisam/txflowgraph/internal/custompromauto"
)

const (
	outcomeOK             = "ok"
	outcomeNotFound       = "not_found"
	outcomeServiceError   = "service_error"
	outcomeTransportError = "transport_error"
)

var requests = custompromauto.Auto().NewCounterVec(prometheus.CounterOpts{
	Name: "txflowgraph_api_requests_total",
	Help: "Number of requests made to the block API by endpoint and outcome",
}, []string{"endpoint", "outcome"})

var failedBlockRetrievals = custompromauto.Auto().NewCounter(prometheus.CounterOpts{
	Name: "txflowgraph_failed_block_retrievals_total",
	Help: "Number of blocks whose transactions could not be retrieved",
})

var retrievedBlocks = custompromauto.Auto().NewCounter(prometheus.CounterOpts{
	Name: "txflowgraph_block_retrievals_total",
	Help: "Number of blocks whose transactions were retrieved",
})
