package application

import (
	"context"
	"fmt"
	"strings"

	"globalquote/internal/domain"
	"globalquote/internal/infrastructure/logx"

	"go.uber.org/zap"
)

type QuoteService struct {
	provider QuoteProvider
	log      *zap.Logger
}

type Option func(*QuoteService)

func WithLogger(l *zap.Logger) Option { return func(s *QuoteService) { s.log = l } }

func NewQuoteService(provider QuoteProvider, opts ...Option) *QuoteService {
	s := &QuoteService{provider: provider}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		s.log = zap.NewNop()
	}
	return s
}

// GetGlobalQuote validates symbol and delegates to the provider.
// Provider failures are returned unchanged so callers can switch on domain.KindOf.
func (s *QuoteService) GetGlobalQuote(ctx context.Context, symbol string) (domain.GlobalQuote, error) {
	symbol = strings.TrimSpace(symbol)
	if symbol == "" {
		return domain.GlobalQuote{}, fmt.Errorf("%w: symbol is required", ErrBadRequest)
	}
	log := logx.WithFields(ctx, s.log).With(zap.String("symbol", symbol))

	q, err := s.provider.GetGlobalQuote(ctx, symbol)
	if err != nil {
		log.Warn("quote.lookup_failed", zap.Stringer("kind", domain.KindOf(err)), zap.Error(err))
		return domain.GlobalQuote{}, err
	}
	if q.IsEmpty() {
		log.Info("quote.symbol_not_found")
	} else {
		log.Info("quote.lookup_success", zap.String("price", q.Snapshot.Price))
	}
	return q, nil
}
