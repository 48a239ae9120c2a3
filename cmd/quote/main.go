package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"globalquote/internal/application"
	"globalquote/internal/bootstrap"
	"globalquote/internal/config"
	"globalquote/internal/domain"
	"globalquote/internal/infrastructure/logx"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func init() { _ = godotenv.Load() }

type line struct {
	Symbol string                `json:"symbol"`
	Found  bool                  `json:"found"`
	Quote  *domain.QuoteSnapshot `json:"quote,omitempty"`
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: quote SYMBOL [SYMBOL...]")
		os.Exit(2)
	}
	cfg := config.Load()
	logger, err := logx.New(cfg.LogLevel)
	if err != nil {
		logger = logx.L()
	}
	logx.SetLogger(logger)
	defer func() { _ = logger.Sync() }()

	svc, err := bootstrap.BuildQuoteService(cfg, logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, "CRITICAL ERROR:", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := run(ctx, svc, os.Args[1:], os.Stdout, logger); err != nil {
		logger.Error("quote lookup failed", zap.Error(err))
		os.Exit(1)
	}
}

// run looks up each symbol in turn. Rate-limited symbols are logged and
// skipped; any other failure stops the run.
func run(ctx context.Context, svc *application.QuoteService, symbols []string, out io.Writer, log *zap.Logger) error {
	enc := json.NewEncoder(out)
	for _, symbol := range symbols {
		q, err := svc.GetGlobalQuote(ctx, symbol)
		if errors.Is(err, domain.ErrRateLimited) {
			log.Warn("rate limited, skipping", zap.String("symbol", symbol), zap.Error(err))
			continue
		}
		if err != nil {
			return fmt.Errorf("%s: %w", symbol, err)
		}
		l := line{Symbol: symbol, Found: !q.IsEmpty()}
		if l.Found {
			l.Quote = &q.Snapshot
		}
		if err := enc.Encode(l); err != nil {
			return err
		}
	}
	return nil
}
