package bootstrap

import (
	"fmt"

	"globalquote/internal/application"
	"globalquote/internal/config"
	"globalquote/internal/infrastructure/provider"

	"go.uber.org/zap"
)

// BuildQuoteProvider validates cfg and constructs the Alpha Vantage client.
// A missing API key fails here, before any request is attempted.
func BuildQuoteProvider(cfg config.Config, log *zap.Logger) (*provider.AlphaVantageClient, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	c, err := provider.NewAlphaVantageClient(
		cfg.AlphaVantageBaseURL,
		cfg.AlphaVantageAPIKey,
		provider.WithTimeout(cfg.RequestTimeout),
		provider.WithLogger(log),
	)
	if err != nil {
		return nil, fmt.Errorf("build alphavantage client: %w", err)
	}
	return c, nil
}

// BuildQuoteService wires the provider into the application service.
func BuildQuoteService(cfg config.Config, log *zap.Logger) (*application.QuoteService, error) {
	p, err := BuildQuoteProvider(cfg, log)
	if err != nil {
		return nil, err
	}
	return application.NewQuoteService(p, application.WithLogger(log)), nil
}
