package provider

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"time"

	"globalquote/internal/application"
	"globalquote/internal/domain"
	"globalquote/internal/infrastructure/httpx"
	"globalquote/internal/infrastructure/logx"

	"go.uber.org/zap"
)

const (
	DefaultTimeout = 15 * time.Second

	globalQuoteFunction = "GLOBAL_QUOTE"
	apiKeyParam         = "apikey"
)

// HTTPClient describes an HTTP client.
//
//go:generate mockgen -package=provider_test -destination=mock_http_client_test.go -source=alphavantage.go HTTPClient
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// AlphaVantageClient queries the Alpha Vantage GLOBAL_QUOTE function.
// All fields are fixed at construction, so one client may be shared by
// any number of goroutines.
type AlphaVantageClient struct {
	baseURL    string
	timeout    time.Duration
	httpClient HTTPClient
	userAgent  string
	log        *zap.Logger
	transport  *httpx.Client
}

var _ application.QuoteProvider = (*AlphaVantageClient)(nil)

type Option func(*AlphaVantageClient)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(c HTTPClient) Option {
	return func(a *AlphaVantageClient) { a.httpClient = c }
}

// WithTimeout overrides the per-request budget.
func WithTimeout(d time.Duration) Option {
	return func(a *AlphaVantageClient) {
		if d > 0 {
			a.timeout = d
		}
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(a *AlphaVantageClient) {
		if l != nil {
			a.log = l
		}
	}
}

func WithUserAgent(ua string) Option {
	return func(a *AlphaVantageClient) { a.userAgent = ua }
}

// NewAlphaVantageClient validates its arguments and prepares the transport.
// It performs no network I/O.
func NewAlphaVantageClient(baseURL, apiKey string, opts ...Option) (*AlphaVantageClient, error) {
	if baseURL == "" {
		return nil, errors.New("alphavantage: base url is required")
	}
	if apiKey == "" {
		return nil, errors.New("alphavantage: api key is required")
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("alphavantage: invalid base url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("alphavantage: base url %q must be absolute", baseURL)
	}

	c := &AlphaVantageClient{
		baseURL: baseURL,
		timeout: DefaultTimeout,
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}

	t := httpx.New(c.timeout)
	if c.httpClient != nil {
		t.HTTP = c.httpClient
	}
	if c.userAgent != "" {
		t.UserAgent = c.userAgent
	}
	t.Query.Set(apiKeyParam, apiKey)
	t.Secrets = []string{apiKeyParam}
	t.Log = c.log.With(zap.String("component", "alphavantage"))
	c.transport = t
	return c, nil
}

// GetGlobalQuote fetches the latest snapshot of symbol. The symbol is sent
// as given. An unknown symbol is a successful empty result, not an error.
func (c *AlphaVantageClient) GetGlobalQuote(ctx context.Context, symbol string) (domain.GlobalQuote, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	log := logx.WithFields(ctx, c.log).With(zap.String("symbol", symbol))
	start := time.Now()
	log.Debug("alphavantage.request_start")

	body, err := c.transport.Get(ctx, c.baseURL, url.Values{
		"function": {globalQuoteFunction},
		"symbol":   {symbol},
	})
	if err != nil {
		terr := transportError(err)
		log.Warn("alphavantage.transport_error",
			zap.Int("status", terr.StatusCode),
			zap.Bool("timeout", terr.Timeout),
			zap.Error(terr),
		)
		return domain.GlobalQuote{}, terr
	}

	q, err := classify(body)
	if err != nil {
		kind := domain.KindOf(err)
		fields := []zap.Field{zap.Stringer("kind", kind), zap.Duration("duration", time.Since(start))}
		if kind == domain.KindMalformed {
			fields = append(fields, zap.ByteString("body", body))
		} else {
			fields = append(fields, zap.String("message", err.Error()))
		}
		log.Warn("alphavantage.request_rejected", fields...)
		return domain.GlobalQuote{}, err
	}
	log.Info("alphavantage.request_success",
		zap.Stringer("result", q.Kind),
		zap.Duration("duration", time.Since(start)),
	)
	return q, nil
}

func transportError(err error) *domain.Error {
	var se *httpx.StatusError
	if errors.As(err, &se) {
		return domain.TransportStatus(se.Code, se)
	}
	return domain.Transport(err, isTimeout(err))
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}
