package application

import (
	"context"

	"globalquote/internal/domain"
)

// QuoteProvider looks up the latest global quote of one symbol.
// Failures are *domain.Error values.
type QuoteProvider interface {
	GetGlobalQuote(ctx context.Context, symbol string) (domain.GlobalQuote, error)
}
