package domain

type ResultKind int

const (
	ResultSnapshot ResultKind = iota + 1
	// ResultEmpty means the upstream knows no such symbol.
	ResultEmpty
)

func (k ResultKind) String() string {
	switch k {
	case ResultSnapshot:
		return "snapshot"
	case ResultEmpty:
		return "empty"
	default:
		return "unknown"
	}
}

// GlobalQuote is the successful outcome of a global quote lookup.
// Snapshot is only populated when Kind is ResultSnapshot.
type GlobalQuote struct {
	Kind     ResultKind
	Snapshot QuoteSnapshot
}

func NewSnapshotResult(s QuoteSnapshot) GlobalQuote {
	return GlobalQuote{Kind: ResultSnapshot, Snapshot: s}
}

func EmptyResult() GlobalQuote { return GlobalQuote{Kind: ResultEmpty} }

func (q GlobalQuote) IsEmpty() bool { return q.Kind == ResultEmpty }
