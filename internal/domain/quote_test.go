package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestQuoteSnapshot_FieldsOrder(t *testing.T) {
	t.Parallel()
	s := QuoteSnapshot{Symbol: "IBM", ChangePercent: "1.0%"}
	fields := s.Fields()
	require.Len(t, fields, len(GlobalQuoteKeys))
	for i, f := range fields {
		require.Equal(t, GlobalQuoteKeys[i], f.Key)
	}
	require.Equal(t, "IBM", fields[0].Value)
	require.Equal(t, "1.0%", fields[9].Value)
}

func TestGlobalQuote_Kinds(t *testing.T) {
	t.Parallel()
	require.True(t, EmptyResult().IsEmpty())
	q := NewSnapshotResult(QuoteSnapshot{Symbol: "IBM"})
	require.False(t, q.IsEmpty())
	require.Equal(t, "snapshot", q.Kind.String())
	require.Equal(t, "empty", EmptyResult().Kind.String())
}
