package application

import (
	"context"

	"globalquote/internal/domain"
)

type fakeQuoteProvider struct {
	out   domain.GlobalQuote
	err   error
	calls []string
}

func (f *fakeQuoteProvider) GetGlobalQuote(_ context.Context, symbol string) (domain.GlobalQuote, error) {
	f.calls = append(f.calls, symbol)
	if f.err != nil {
		return domain.GlobalQuote{}, f.err
	}
	return f.out, nil
}
