package esplora

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/jellydator/ttlcache/v3"
	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
	"golang.org/x/time/rate"
)

const (
	// DefaultRateLimit is the default number of requests per second sent to the API.
	DefaultRateLimit = 10
	// DefaultHashTTL is how long a resolved block hash is reused within a run.
	DefaultHashTTL = time.Minute * 10
)

const (
	endpointBlockHeight endpoint = "block-height"
	endpointBlock       endpoint = "block"
	endpointBlockTxs    endpoint = "block-txs"
)

var (
	// ErrNotFound is returned when the API has no data for the requested height or hash.
	ErrNotFound = errors.New("not found")
	// ErrService is returned when the API responds with a non-success status.
	ErrService = errors.New("service error")
	// ErrDecode is returned when a response body cannot be decoded.
	ErrDecode = errors.New("decode error")
)

type endpoint string

type Client struct {
	logger     *logrus.Logger
	httpClient *http.Client
	baseURL    string
	limiter    *rate.Limiter
	maxRetries uint64
	hashes     *ttlcache.Cache[int64, string]
}

type Option func(*Client)

// WithRateLimit limits outgoing requests to rps per second. A non-positive rps disables the limit.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *Client) {
		if rps <= 0 {
			c.limiter = rate.NewLimiter(rate.Inf, 0)
			return
		}
		c.limiter = rate.NewLimiter(rate.Limit(rps), max(1, burst))
	}
}

// WithMaxRetries sets how many times a request that failed at the transport level is retried.
// Responses with a non-success status are never retried.
func WithMaxRetries(n uint64) Option {
	return func(c *Client) {
		c.maxRetries = n
	}
}

// WithHashTTL sets how long resolved height to hash mappings are kept in memory.
func WithHashTTL(ttl time.Duration) Option {
	return func(c *Client) {
		if ttl > 0 {
			c.hashes = ttlcache.New[int64, string](ttlcache.WithTTL[int64, string](ttl))
		}
	}
}

func New(logger *logrus.Logger, httpClient *http.Client, baseURL string, opts ...Option) *Client {
	c := &Client{
		logger:     logger,
		httpClient: httpClient,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		limiter:    rate.NewLimiter(rate.Limit(DefaultRateLimit), 1),
		hashes:     ttlcache.New[int64, string](ttlcache.WithTTL[int64, string](DefaultHashTTL)),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// ResolveHash returns the hash of the block at the given height.
func (c *Client) ResolveHash(ctx context.Context, height int64) (string, error) {
	if item := c.hashes.Get(height); item != nil {
		return item.Value(), nil
	}

	body, err := c.get(ctx, endpointBlockHeight, "/block-height/"+strconv.FormatInt(height, 10))
	if err != nil {
		return "", fmt.Errorf("get block hash for height %d: %w", height, err)
	}

	hash := strings.TrimSpace(string(body))
	if hash == "" {
		return "", fmt.Errorf("%w: empty block hash for height %d", ErrDecode, height)
	}
	c.hashes.Set(height, hash, ttlcache.DefaultTTL)

	return hash, nil
}

// FetchBlock returns the metadata of the block at the given height.
func (c *Client) FetchBlock(ctx context.Context, height int64) (*BlockInfo, error) {
	hash, err := c.ResolveHash(ctx, height)
	if err != nil {
		return nil, err
	}

	body, err := c.get(ctx, endpointBlock, "/block/"+hash)
	if err != nil {
		return nil, fmt.Errorf("get block %q: %w", hash, err)
	}
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("%w: invalid block json for %q", ErrDecode, hash)
	}

	block := gjson.ParseBytes(body)
	if !block.IsObject() || !block.Get("tx_count").Exists() {
		return nil, fmt.Errorf("%w: block %q has no tx_count", ErrDecode, hash)
	}

	return &BlockInfo{
		Hash:              block.Get("id").String(),
		Height:            block.Get("height").Int(),
		TxCount:           int(block.Get("tx_count").Int()),
		Timestamp:         block.Get("timestamp").Int(),
		PreviousBlockHash: block.Get("previousblockhash").String(),
	}, nil
}

// FetchTransactions returns the first page of transactions of the block at the given height.
func (c *Client) FetchTransactions(ctx context.Context, height int64) ([]*Tx, error) {
	hash, err := c.ResolveHash(ctx, height)
	if err != nil {
		return nil, err
	}

	txs, err := c.getTxs(ctx, "/block/"+hash+"/txs")
	if err != nil {
		return nil, fmt.Errorf("get txs of block %q: %w", hash, err)
	}

	return txs, nil
}

// FetchAllTransactions pages through every transaction of the block at the given height.
func (c *Client) FetchAllTransactions(ctx context.Context, height int64) ([]*Tx, error) {
	block, err := c.FetchBlock(ctx, height)
	if err != nil {
		return nil, err
	}

	hash, err := c.ResolveHash(ctx, height)
	if err != nil {
		return nil, err
	}

	txs := make([]*Tx, 0, block.TxCount)
	for start := 0; start < block.TxCount; start += TxsPageSize {
		page, err := c.getTxs(ctx, fmt.Sprintf("/block/%s/txs/%d", hash, start))
		if err != nil {
			return nil, fmt.Errorf("get txs of block %q from index %d: %w", hash, start, err)
		}
		if len(page) == 0 {
			break
		}
		txs = append(txs, page...)
	}

	return txs, nil
}

func (c *Client) getTxs(ctx context.Context, path string) ([]*Tx, error) {
	body, err := c.get(ctx, endpointBlockTxs, path)
	if err != nil {
		return nil, err
	}

	var txs []*Tx
	err = json.Unmarshal(body, &txs)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	return txs, nil
}

func (c *Client) get(ctx context.Context, ep endpoint, path string) ([]byte, error) {
	logger := c.logger.WithContext(ctx).WithFields(logrus.Fields{
		"endpoint": ep,
		"path":     path,
	})

	err := c.limiter.Wait(ctx)
	if err != nil {
		return nil, fmt.Errorf("wait for rate limiter: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("create new http request: %w", err)
	}

	resp, err := c.doRequestWithRetry(req, ep)
	if err != nil {
		requests.WithLabelValues(string(ep), outcomeTransportError).Inc()
		return nil, fmt.Errorf("do request with retry: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		requests.WithLabelValues(string(ep), outcomeTransportError).Inc()
		return nil, fmt.Errorf("read response body: %w", err)
	}

	switch resp.StatusCode {
	case http.StatusOK:
		requests.WithLabelValues(string(ep), outcomeOK).Inc()
		return body, nil
	case http.StatusNotFound:
		requests.WithLabelValues(string(ep), outcomeNotFound).Inc()
		logger.WithField("response", string(body)).Debug("Resource not found")
		return nil, fmt.Errorf("%w: %s", ErrNotFound, resp.Status)
	default:
		requests.WithLabelValues(string(ep), outcomeServiceError).Inc()
		logger.WithFields(logrus.Fields{
			"status":   resp.StatusCode,
			"response": string(body),
		}).Error("Received unexpected status code from API")
		return nil, fmt.Errorf("%w: received unexpected status: %s", ErrService, resp.Status)
	}
}

func (c *Client) doRequestWithRetry(req *http.Request, ep endpoint) (*http.Response, error) {
	bk := backoff.WithMaxRetries(newExponentialBackoffConfig(), c.maxRetries)
	resp, err := backoff.RetryWithData[*http.Response](func() (*http.Response, error) {
		resp, err := c.httpClient.Do(req)
		if err != nil {
			if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
				return nil, backoff.Permanent(fmt.Errorf("could not make http call: %w", err))
			}
			c.logger.WithField("endpoint", ep).WithError(err).Error("Failed to make http request")
			return nil, fmt.Errorf("http request failed: %w", err)
		}
		return resp, nil
	}, backoff.WithContext(bk, req.Context()))
	if err != nil {
		return nil, err
	}

	return resp, nil
}

func newExponentialBackoffConfig() *backoff.ExponentialBackOff {
	return backoff.NewExponentialBackOff(
		backoff.WithMaxElapsedTime(time.Second*3),
		backoff.WithMaxInterval(time.Second),
		backoff.WithInitialInterval(time.Millisecond*100),
		backoff.WithMultiplier(2),
		backoff.WithRandomizationFactor(0.2),
	)
}
