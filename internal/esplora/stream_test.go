package esplora_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hedisam/txflowgraph/internal/esplora"
)

func TestStreamKeepsHeightOrder(t *testing.T) {
	tests := map[string]struct {
		concurrency uint
	}{
		"sequential":              {concurrency: 1},
		"parallel":                {concurrency: 3},
		"window wider than range": {concurrency: 10},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			var inFlight, maxInFlight atomic.Int64
			fetch := func(ctx context.Context, height int64) ([]*esplora.Tx, error) {
				n := inFlight.Add(1)
				defer inFlight.Add(-1)
				for {
					current := maxInFlight.Load()
					if n <= current || maxInFlight.CompareAndSwap(current, n) {
						break
					}
				}

				// later heights finish first
				time.Sleep(time.Millisecond * time.Duration(10-height))
				if height == 3 {
					return nil, esplora.ErrService
				}
				return []*esplora.Tx{{TxID: "tx"}}, nil
			}

			var heights []int64
			for result := range esplora.Stream(context.Background(), logrus.New(), fetch, 0, 6, test.concurrency) {
				heights = append(heights, result.Height)
				if result.Height == 3 {
					assert.ErrorIs(t, result.Err, esplora.ErrService)
					assert.Nil(t, result.Txs)
					continue
				}
				require.NoError(t, result.Err)
				assert.Len(t, result.Txs, 1)
			}

			assert.Equal(t, []int64{0, 1, 2, 3, 4, 5}, heights)
			assert.LessOrEqual(t, maxInFlight.Load(), int64(test.concurrency))
		})
	}
}

func TestStreamEmptyRange(t *testing.T) {
	fetch := func(ctx context.Context, height int64) ([]*esplora.Tx, error) {
		return nil, errors.New("should not be called")
	}

	var results []*esplora.BlockResult
	for result := range esplora.Stream(context.Background(), logrus.New(), fetch, 5, 5, 2) {
		results = append(results, result)
	}
	assert.Empty(t, results)
}

func TestStreamClosesWhenContextIsDone(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	fetch := func(ctx context.Context, height int64) ([]*esplora.Tx, error) {
		return nil, nil
	}

	out := esplora.Stream(ctx, logrus.New(), fetch, 0, 1_000_000, 2)
	first := <-out
	require.NotNil(t, first)
	assert.Equal(t, int64(0), first.Height)
	cancel()

	require.Eventually(t, func() bool {
		select {
		case _, ok := <-out:
			return !ok
		default:
			return false
		}
	}, time.Second, time.Millisecond*5)
}
