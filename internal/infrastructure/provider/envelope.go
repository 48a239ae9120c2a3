package provider

import (
	"bytes"
	"encoding/json"
	"fmt"

	"globalquote/internal/domain"
)

const (
	globalQuoteKey  = "Global Quote"
	errorMessageKey = "Error Message"
)

// The service is not consistent about which key carries its informational
// (usually rate-limit) notice, so any of these counts.
var informationKeys = []string{"Information", "Note"}

// envelope is the structural probe of one GLOBAL_QUOTE response body.
type envelope struct {
	information  *string
	errorMessage *string
	quote        map[string]json.RawMessage
	hasQuote     bool
}

func decodeEnvelope(body []byte) (envelope, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(body, &top); err != nil {
		return envelope{}, err
	}
	var env envelope
	for _, k := range informationKeys {
		if s, ok := stringValue(top[k]); ok {
			env.information = &s
			break
		}
	}
	if s, ok := stringValue(top[errorMessageKey]); ok {
		env.errorMessage = &s
	}
	if raw, ok := top[globalQuoteKey]; ok {
		var attrs map[string]json.RawMessage
		if err := json.Unmarshal(raw, &attrs); err == nil && attrs != nil {
			env.quote = attrs
			env.hasQuote = true
		}
	}
	return env, nil
}

// classify maps a response body onto a result or a typed failure.
// Checks run in a fixed order and the first match wins.
func classify(body []byte) (domain.GlobalQuote, error) {
	env, err := decodeEnvelope(body)
	if err != nil {
		return domain.GlobalQuote{}, domain.Malformed(body, err)
	}
	switch {
	case env.information != nil:
		return domain.GlobalQuote{}, domain.RateLimited(*env.information)
	case env.errorMessage != nil:
		return domain.GlobalQuote{}, domain.Upstream(*env.errorMessage)
	case env.hasQuote && len(env.quote) == 0:
		return domain.EmptyResult(), nil
	case env.hasQuote:
		s, err := snapshotFrom(env.quote)
		if err != nil {
			return domain.GlobalQuote{}, domain.Malformed(body, err)
		}
		return domain.NewSnapshotResult(s), nil
	default:
		return domain.GlobalQuote{}, domain.Malformed(body, nil)
	}
}

func snapshotFrom(attrs map[string]json.RawMessage) (domain.QuoteSnapshot, error) {
	vals := make(map[string]string, len(domain.GlobalQuoteKeys))
	for _, k := range domain.GlobalQuoteKeys {
		raw, ok := attrs[k]
		if !ok {
			return domain.QuoteSnapshot{}, fmt.Errorf("missing attribute %q", k)
		}
		s, ok := stringValue(raw)
		if !ok {
			return domain.QuoteSnapshot{}, fmt.Errorf("attribute %q is not a string", k)
		}
		vals[k] = s
	}
	return domain.QuoteSnapshot{
		Symbol:           vals[domain.KeySymbol],
		Open:             vals[domain.KeyOpen],
		High:             vals[domain.KeyHigh],
		Low:              vals[domain.KeyLow],
		Price:            vals[domain.KeyPrice],
		Volume:           vals[domain.KeyVolume],
		LatestTradingDay: vals[domain.KeyLatestTradingDay],
		PreviousClose:    vals[domain.KeyPreviousClose],
		Change:           vals[domain.KeyChange],
		ChangePercent:    vals[domain.KeyChangePercent],
	}, nil
}

func stringValue(raw json.RawMessage) (string, bool) {
	if raw == nil || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}
