package provider

import (
	"testing"

	"globalquote/internal/domain"

	"github.com/stretchr/testify/require"
)

const msftBody = `{
  "Global Quote": {
    "01. symbol": "MSFT",
    "02. open": "100.00",
    "03. high": "105.00",
    "04. low": "99.00",
    "05. price": "104.50",
    "06. volume": "1000000",
    "07. latest trading day": "2025-06-27",
    "08. previous close": "100.00",
    "09. change": "4.50",
    "10. change percent": "4.5000%"
  }
}`

func TestClassify(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name    string
		body    string
		kind    domain.ErrorKind
		empty   bool
		message string
	}{
		{name: "snapshot", body: msftBody},
		{name: "empty quote", body: `{"Global Quote": {}}`, empty: true},
		{name: "information", body: `{"Information": "slow down"}`, kind: domain.KindRateLimited, message: "slow down"},
		{name: "note", body: `{"Note": "call frequency exceeded"}`, kind: domain.KindRateLimited, message: "call frequency exceeded"},
		{name: "error message", body: `{"Error Message": "Invalid API call."}`, kind: domain.KindUpstream, message: "Invalid API call."},
		{name: "information beats error", body: `{"Error Message": "bad", "Information": "limit"}`, kind: domain.KindRateLimited, message: "limit"},
		{name: "error beats quote", body: `{"Error Message": "bad", "Global Quote": {}}`, kind: domain.KindUpstream, message: "bad"},
		{name: "information beats quote", body: `{"Note": "limit", "Global Quote": {"01. symbol": "X"}}`, kind: domain.KindRateLimited, message: "limit"},
		{name: "empty information text", body: `{"Information": ""}`, kind: domain.KindRateLimited, message: ""},
		{name: "unknown object", body: `{"Meta Data": {}}`, kind: domain.KindMalformed},
		{name: "empty object", body: `{}`, kind: domain.KindMalformed},
		{name: "null quote", body: `{"Global Quote": null}`, kind: domain.KindMalformed},
		{name: "quote not an object", body: `{"Global Quote": "MSFT"}`, kind: domain.KindMalformed},
		{name: "null information", body: `{"Information": null}`, kind: domain.KindMalformed},
		{name: "numeric information", body: `{"Information": 42}`, kind: domain.KindMalformed},
		{name: "partial quote", body: `{"Global Quote": {"01. symbol": "MSFT"}}`, kind: domain.KindMalformed},
		{name: "numeric attribute", body: `{"Global Quote": {"01. symbol": "MSFT", "02. open": 1}}`, kind: domain.KindMalformed},
		{name: "array", body: `[]`, kind: domain.KindMalformed},
		{name: "null", body: `null`, kind: domain.KindMalformed},
		{name: "not json", body: `<html>oops</html>`, kind: domain.KindMalformed},
	}
	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()
			q, err := classify([]byte(c.body))
			if c.kind != 0 {
				require.Error(t, err)
				require.Equal(t, c.kind, domain.KindOf(err))
				if c.kind == domain.KindRateLimited || c.kind == domain.KindUpstream {
					require.Equal(t, c.message, err.Error())
				}
				if c.kind == domain.KindMalformed {
					var de *domain.Error
					require.ErrorAs(t, err, &de)
					require.Equal(t, c.body, string(de.Raw))
				}
				return
			}
			require.NoError(t, err)
			require.Equal(t, c.empty, q.IsEmpty())
		})
	}
}

func TestClassify_SnapshotFields(t *testing.T) {
	t.Parallel()
	q, err := classify([]byte(msftBody))
	require.NoError(t, err)
	require.Equal(t, domain.ResultSnapshot, q.Kind)
	require.Equal(t, domain.QuoteSnapshot{
		Symbol:           "MSFT",
		Open:             "100.00",
		High:             "105.00",
		Low:              "99.00",
		Price:            "104.50",
		Volume:           "1000000",
		LatestTradingDay: "2025-06-27",
		PreviousClose:    "100.00",
		Change:           "4.50",
		ChangePercent:    "4.5000%",
	}, q.Snapshot)
}

func TestClassify_ExtraAttributesIgnored(t *testing.T) {
	t.Parallel()
	body := `{"Global Quote": {
		"01. symbol": "IBM", "02. open": "1", "03. high": "1", "04. low": "1", "05. price": "1",
		"06. volume": "1", "07. latest trading day": "2025-01-02", "08. previous close": "1",
		"09. change": "0", "10. change percent": "0%", "11. currency": "USD"}}`
	q, err := classify([]byte(body))
	require.NoError(t, err)
	require.Equal(t, "IBM", q.Snapshot.Symbol)
}
