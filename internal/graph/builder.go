package graph

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/hedisam/pipeline/chans"

	"github.com/hedisam/txflowgraph/internal/esplora"
	"github.com/hedisam/txflowgraph/internal/store"
)

var (
	// ErrMalformedTransaction is returned when a transaction lacks the fields needed to derive an edge.
	ErrMalformedTransaction = errors.New("malformed transaction")
)

type TransactionSource interface {
	FetchTransactions(ctx context.Context, height int64) ([]*esplora.Tx, error)
}

type GraphStore interface {
	AddEdge(ctx context.Context, from, to string) (bool, error)
	Stats(ctx context.Context) (store.Stats, error)
}

// BlockReport summarises the ingestion of one block. Err is set when the block could not be fetched,
// in which case the graph was left untouched.
type BlockReport struct {
	Height   int64
	Txs      int
	Ingested int
	Failed   int
	NewEdges int
	Err      error
}

// Builder folds transactions into a fund flow graph, one at a time.
type Builder struct {
	logger   *logrus.Logger
	source   TransactionSource
	graph    GraphStore
	keyField KeyField

	mu      sync.RWMutex
	reports []BlockReport
}

func New(logger *logrus.Logger, source TransactionSource, graph GraphStore, keyField KeyField) *Builder {
	if keyField == "" {
		keyField = KeyScript
	}
	return &Builder{
		logger:   logger,
		source:   source,
		graph:    graph,
		keyField: keyField,
	}
}

// Ingest adds one edge per usable input of tx, from the input's sender to the receiver of the
// first output. Inputs that are neither coinbase nor carry a prevout are skipped.
// It returns the number of edges that were not in the graph before.
func (b *Builder) Ingest(ctx context.Context, tx *esplora.Tx) (int, error) {
	if tx == nil {
		return 0, fmt.Errorf("%w: nil transaction", ErrMalformedTransaction)
	}
	if len(tx.Vout) == 0 {
		return 0, fmt.Errorf("%w: transaction %q has no outputs", ErrMalformedTransaction, tx.TxID)
	}

	// every input fans in to the first output only
	receiver := b.keyField.identityOf(tx.Vout[0]).String()

	var added int
	for in := range slices.Values(tx.Vin) {
		sender, ok := b.senderOf(in)
		if !ok {
			continue
		}

		inserted, err := b.graph.AddEdge(ctx, sender.String(), receiver)
		if err != nil {
			return added, fmt.Errorf("could not add edge for tx %q: %w", tx.TxID, err)
		}
		if inserted {
			added++
		}
	}

	return added, nil
}

func (b *Builder) senderOf(in *esplora.Input) (Identity, bool) {
	switch {
	case in == nil:
		return Identity{}, false
	case in.IsCoinbase:
		return Coinbase(), true
	case in.Prevout != nil:
		return b.keyField.identityOf(in.Prevout), true
	default:
		return Identity{}, false
	}
}

// IngestBlock fetches the transactions of the block at height and ingests them.
// A failed fetch is logged and reported, never returned.
func (b *Builder) IngestBlock(ctx context.Context, height int64) BlockReport {
	txs, err := b.source.FetchTransactions(ctx, height)
	return b.IngestResult(ctx, &esplora.BlockResult{Height: height, Txs: txs, Err: err})
}

// IngestResult ingests an already fetched block.
func (b *Builder) IngestResult(ctx context.Context, result *esplora.BlockResult) BlockReport {
	logger := b.logger.WithContext(ctx).WithField("height", result.Height)

	report := BlockReport{
		Height: result.Height,
		Txs:    len(result.Txs),
	}
	if result.Err != nil {
		logger.WithError(result.Err).Error("Failed to fetch block, skipping")
		blocksFailedProcessing.Inc()
		report.Txs = 0
		report.Err = result.Err
		b.record(report)
		return report
	}

	for tx := range slices.Values(result.Txs) {
		added, err := b.Ingest(ctx, tx)
		report.NewEdges += added
		if err != nil {
			txID := ""
			if tx != nil {
				txID = tx.TxID
			}
			logger.WithField("txid", txID).WithError(err).Warn("Failed to ingest transaction, skipping")
			failedTransactions.Inc()
			report.Failed++
			continue
		}
		report.Ingested++
	}

	processedBlocks.Inc()
	ingestedTransactions.Add(float64(report.Ingested))
	edgesAdded.Add(float64(report.NewEdges))

	stats, err := b.graph.Stats(ctx)
	if err != nil {
		logger.WithError(err).Warn("Failed to read graph stats")
	} else {
		graphNodes.Set(float64(stats.Nodes))
		graphEdges.Set(float64(stats.Edges))
	}

	logger.WithFields(logrus.Fields{
		"total_txs":    report.Txs,
		"ingested_txs": report.Ingested,
		"failed_txs":   report.Failed,
		"new_edges":    report.NewEdges,
	}).Debug("Successfully processed block")

	b.record(report)
	return report
}

// Run ingests the blocks in [from, to) one after the other, in increasing height order.
func (b *Builder) Run(ctx context.Context, from, to int64) []BlockReport {
	var reports []BlockReport
	for height := from; height < to; height++ {
		if ctx.Err() != nil {
			break
		}
		reports = append(reports, b.IngestBlock(ctx, height))
	}
	return reports
}

// Start ingests the fetched blocks in the order they are received until in is closed or ctx is done.
func (b *Builder) Start(ctx context.Context, in <-chan *esplora.BlockResult) []BlockReport {
	var reports []BlockReport
	for result := range chans.ReceiveOrDoneSeq(ctx, in) {
		reports = append(reports, b.IngestResult(ctx, result))
	}
	return reports
}

// Reports returns the reports of every block ingested so far.
func (b *Builder) Reports(_ context.Context) ([]BlockReport, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return slices.Clone(b.reports), nil
}

func (b *Builder) record(report BlockReport) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.reports = append(b.reports, report)
}
