package esplora

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/hedisam/pipeline/chans"

	"github.com/hedisam/txflowgraph/internal/ringbuffer"
)

// FetchFunc retrieves the transactions of the block at the given height.
type FetchFunc func(ctx context.Context, height int64) ([]*Tx, error)

// BlockResult is the outcome of fetching one block. Err is set when Txs could not be retrieved.
type BlockResult struct {
	Height int64
	Txs    []*Tx
	Err    error
}

// Stream fetches the blocks in [from, to) with up to concurrency fetches in flight and emits
// the results in increasing height order. Failed fetches are emitted with Err set.
// The returned channel is closed once the range is exhausted or ctx is done.
func Stream(ctx context.Context, logger *logrus.Logger, fetch FetchFunc, from, to int64, concurrency uint) <-chan *BlockResult {
	out := make(chan *BlockResult)

	go func() {
		defer close(out)

		// pending fetches, oldest height at the head
		window := ringbuffer.New[chan *BlockResult](concurrency)
		emitOldest := func() bool {
			pending, ok := window.Pop()
			if !ok {
				return true
			}

			var result *BlockResult
			select {
			case <-ctx.Done():
				return false
			case result = <-pending:
			}

			logger := logger.WithField("height", result.Height)
			if result.Err != nil {
				logger.WithError(result.Err).Debug("Failed to fetch block transactions")
				failedBlockRetrievals.Inc()
			} else {
				logger.WithField("total_txs", len(result.Txs)).Debug("Fetched block transactions")
				retrievedBlocks.Inc()
			}

			return chans.SendOrDone(ctx, out, result)
		}

		for height := from; height < to; height++ {
			if ctx.Err() != nil {
				return
			}
			if window.IsFull() && !emitOldest() {
				return
			}

			pending := make(chan *BlockResult, 1)
			go func() {
				txs, err := fetch(ctx, height)
				pending <- &BlockResult{Height: height, Txs: txs, Err: err}
			}()
			_ = window.Push(pending)
		}

		for window.Size() > 0 {
			if !emitOldest() {
				return
			}
		}
	}()

	return out
}

// FetchTransactions lets a FetchFunc be used wherever a transaction source is expected.
func (f FetchFunc) FetchTransactions(ctx context.Context, height int64) ([]*Tx, error) {
	return f(ctx, height)
}
