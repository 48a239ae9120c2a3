package httpx

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
)

const maxBodyBytes = 4 << 20

// Doer is the subset of *http.Client used by Client.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client issues GET requests with a fixed set of default query parameters
// and returns the raw body of 2xx responses. It never retries.
type Client struct {
	HTTP      Doer
	Query     url.Values
	UserAgent string
	Log       *zap.Logger
	// Secrets names query parameters whose values are masked in logged and
	// returned errors.
	Secrets []string
}

const redacted = "REDACTED"

// StatusError is returned for responses outside the 2xx range.
type StatusError struct {
	Code int
	Body []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("status %d %s", e.Code, http.StatusText(e.Code))
}

// New returns a Client backed by a dedicated transport and an overall request timeout.
func New(timeout time.Duration) *Client {
	transport := &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		DialContext:           (&net.Dialer{Timeout: 5 * time.Second, KeepAlive: 30 * time.Second}).DialContext,
		MaxIdleConns:          100,
		MaxIdleConnsPerHost:   10,
		ForceAttemptHTTP2:     true,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   5 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}
	return &Client{
		HTTP:      &http.Client{Timeout: timeout, Transport: transport},
		Query:     url.Values{},
		UserAgent: "globalquote/1.0",
	}
}

// Get sends GET baseURL with params merged over the client's default query.
// Request-level params win on key collisions.
func (c *Client) Get(ctx context.Context, baseURL string, params url.Values) ([]byte, error) {
	log := c.Log
	if log == nil {
		log = zap.NewNop()
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		log.Error("http.request_setup_failed", zap.Error(err))
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	q := u.Query()
	for k, vs := range c.Query {
		q[k] = append([]string(nil), vs...)
	}
	for k, vs := range params {
		q[k] = append([]string(nil), vs...)
	}
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		err = c.redact(err)
		log.Error("http.request_setup_failed", zap.Error(err))
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}

	doer := c.HTTP
	if doer == nil {
		doer = http.DefaultClient
	}
	resp, err := doer.Do(req)
	if err != nil {
		err = c.redact(err)
		log.Warn("http.no_response", zap.String("host", u.Host), zap.Error(err))
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		log.Warn("http.read_body_failed", zap.Int("status", resp.StatusCode), zap.Error(err))
		return nil, fmt.Errorf("read body: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Warn("http.status_error",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", truncate(body, 512)),
		)
		return nil, &StatusError{Code: resp.StatusCode, Body: body}
	}
	return body, nil
}

// redact masks the Secrets in the request URL that net/http embeds in
// *url.Error messages. The wrapped cause is kept intact.
func (c *Client) redact(err error) error {
	var ue *url.Error
	if len(c.Secrets) == 0 || !errors.As(err, &ue) {
		return err
	}
	u, perr := url.Parse(ue.URL)
	if perr != nil {
		return &url.Error{Op: ue.Op, URL: redacted, Err: ue.Err}
	}
	q := u.Query()
	changed := false
	for _, name := range c.Secrets {
		if q.Has(name) {
			q.Set(name, redacted)
			changed = true
		}
	}
	if !changed {
		return err
	}
	u.RawQuery = q.Encode()
	return &url.Error{Op: ue.Op, URL: u.String(), Err: ue.Err}
}

func truncate(b []byte, n int) []byte {
	if len(b) <= n {
		return b
	}
	return b[:n]
}
