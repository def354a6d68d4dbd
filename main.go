package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	restapi "github.com/hedisam/txflowgraph/api/rest"
	"github.com/hedisam/txflowgraph/internal/custompromauto"
	"github.com/hedisam/txflowgraph/internal/esplora"
	"github.com/hedisam/txflowgraph/internal/graph"
	"github.com/hedisam/txflowgraph/internal/render"
	"github.com/hedisam/txflowgraph/internal/store/memdb"
)

type Options struct {
	APIAddr          string
	From             int64
	To               int64
	FetchConcurrency uint
	RateLimit        float64
	MaxRetries       uint64
	AllTxs           bool
	KeyField         string
	Out              string
	ServerAddr       string
	HTTPTimeout      time.Duration
	HashTTL          time.Duration
	Verbose          bool
}

func main() {
	var opts Options
	flag.StringVar(&opts.APIAddr, "api-addr", "https://blockstream.info/api", "Base url of the Esplora compatible block API")
	flag.Int64Var(&opts.From, "from", 881485, "First block height to fetch (inclusive)")
	flag.Int64Var(&opts.To, "to", 881487, "Last block height to fetch (exclusive)")
	flag.UintVar(&opts.FetchConcurrency, "fetch-concurrency", 1, "Number of blocks fetched in parallel. Ingestion is always sequential")
	flag.Float64Var(&opts.RateLimit, "rate-limit", esplora.DefaultRateLimit, "Max API requests per second, 0 disables the limit")
	flag.Uint64Var(&opts.MaxRetries, "max-retries", 0, "Retries for requests failing at the transport level")
	flag.BoolVar(&opts.AllTxs, "all-txs", false, "Page through every transaction of a block instead of the first page only")
	flag.StringVar(&opts.KeyField, "key", string(graph.KeyScript), "Output field identifying a node: 'script' (scriptpubkey) or 'address' (scriptpubkey_address)")
	flag.StringVar(&opts.Out, "out", "txflow.dot", "Path to write the Graphviz DOT output to, '-' for stdout")
	flag.StringVar(&opts.ServerAddr, "server-addr", "", "If set, serve the graph over http on this addr until interrupted")
	flag.DurationVar(&opts.HTTPTimeout, "http-timeout", time.Second*10, "Timeout of each API request")
	flag.DurationVar(&opts.HashTTL, "hash-ttl", esplora.DefaultHashTTL, "How long a resolved block hash is reused within this run")
	flag.BoolVar(&opts.Verbose, "v", false, "Verbose output")
	flag.Parse()

	logger := logrus.New()
	keyField := ensureValidOpts(logger, opts)

	if opts.Verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	httpClient := &http.Client{Timeout: opts.HTTPTimeout}
	client := esplora.New(logger, httpClient, opts.APIAddr,
		esplora.WithRateLimit(opts.RateLimit, 1),
		esplora.WithMaxRetries(opts.MaxRetries),
		esplora.WithHashTTL(opts.HashTTL),
	)
	fetch := esplora.FetchFunc(client.FetchTransactions)
	if opts.AllTxs {
		fetch = client.FetchAllTransactions
	}

	graphStore := memdb.NewGraphStore()
	builder := graph.New(logger, fetch, graphStore, keyField)

	logger.WithFields(logrus.Fields{
		"from": opts.From,
		"to":   opts.To,
	}).Info("Building transaction graph...")

	var reports []graph.BlockReport
	if opts.FetchConcurrency <= 1 {
		reports = builder.Run(ctx, opts.From, opts.To)
	} else {
		blocks := esplora.Stream(ctx, logger, fetch, opts.From, opts.To, opts.FetchConcurrency)
		reports = builder.Start(ctx, blocks)
	}
	logSummary(ctx, logger, reports, graphStore)

	err := writeGraph(ctx, opts.Out, graphStore)
	if err != nil {
		logger.WithError(err).WithField("out", opts.Out).Error("Failed to write graph")
	}

	if opts.ServerAddr == "" {
		return
	}
	if ctx.Err() != nil {
		logger.Info("Interrupted, not serving the graph")
		return
	}

	restServer := restapi.NewServer(logger, graphStore, builder)
	mux := http.NewServeMux()
	restServer.Register(mux)
	// use a custom prom registry to avoid recording the default http handler metrics
	mux.Handle("/metrics", custompromauto.Handler())

	mustListenAndServe(ctx, logger, opts.ServerAddr, mux)
}

func logSummary(ctx context.Context, logger *logrus.Logger, reports []graph.BlockReport, graphStore *memdb.GraphStore) {
	var failedBlocks, failedTxs int
	for _, report := range reports {
		if report.Err != nil {
			failedBlocks++
		}
		failedTxs += report.Failed
	}

	summaryLogger := logger.WithFields(logrus.Fields{
		"blocks":        len(reports),
		"failed_blocks": failedBlocks,
		"failed_txs":    failedTxs,
	})

	stats, err := graphStore.Stats(ctx)
	if err != nil {
		summaryLogger.WithError(err).Error("Failed to read graph stats")
		return
	}
	summaryLogger.WithFields(logrus.Fields{
		"nodes": stats.Nodes,
		"edges": stats.Edges,
	}).Info("Transaction graph built")
}

func writeGraph(ctx context.Context, out string, graphStore *memdb.GraphStore) error {
	var w io.Writer = os.Stdout
	if out != "-" {
		f, err := os.Create(out)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	return render.WriteDOT(ctx, w, graphStore)
}

func mustListenAndServe(ctx context.Context, logger *logrus.Logger, addr string, handler http.Handler) {
	srv := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	go func() {
		logger.WithField("addr", addr).Info("Serving server...")
		err := srv.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("Server failed with error")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	logger.Info("Shutting down server...")
	err := srv.Shutdown(shutdownCtx)
	if err != nil && !errors.Is(err, context.DeadlineExceeded) {
		logger.WithError(err).Error("Failed to shutdown server gracefully")
	}
}

func ensureValidOpts(logger *logrus.Logger, opts Options) graph.KeyField {
	if opts.APIAddr == "" {
		logger.Error("--api-addr is required")
		flag.Usage()
		os.Exit(1)
	}
	if opts.From < 0 {
		logger.Error("--from cannot be negative")
		flag.Usage()
		os.Exit(1)
	}
	if opts.To <= opts.From {
		logger.Error("--to must be greater than --from")
		flag.Usage()
		os.Exit(1)
	}
	if opts.RateLimit < 0 {
		logger.Error("--rate-limit cannot be negative")
		flag.Usage()
		os.Exit(1)
	}
	if opts.HashTTL <= 0 {
		logger.Error("--hash-ttl must be positive")
		flag.Usage()
		os.Exit(1)
	}
	if opts.Out == "" {
		logger.Error("--out is required")
		flag.Usage()
		os.Exit(1)
	}
	keyField, err := graph.ParseKeyField(opts.KeyField)
	if err != nil {
		logger.WithError(err).Error("--key is invalid")
		flag.Usage()
		os.Exit(1)
	}

	return keyField
}
