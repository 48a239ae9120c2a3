package domain

// Upstream attribute names of a global quote, in the order the service emits them.
const (
	KeySymbol           = "01. symbol"
	KeyOpen             = "02. open"
	KeyHigh             = "03. high"
	KeyLow              = "04. low"
	KeyPrice            = "05. price"
	KeyVolume           = "06. volume"
	KeyLatestTradingDay = "07. latest trading day"
	KeyPreviousClose    = "08. previous close"
	KeyChange           = "09. change"
	KeyChangePercent    = "10. change percent"
)

var GlobalQuoteKeys = []string{
	KeySymbol,
	KeyOpen,
	KeyHigh,
	KeyLow,
	KeyPrice,
	KeyVolume,
	KeyLatestTradingDay,
	KeyPreviousClose,
	KeyChange,
	KeyChangePercent,
}

// QuoteSnapshot is the latest trading snapshot of one security.
// Values are kept in the upstream string representation.
type QuoteSnapshot struct {
	Symbol           string `json:"symbol"`
	Open             string `json:"open"`
	High             string `json:"high"`
	Low              string `json:"low"`
	Price            string `json:"price"`
	Volume           string `json:"volume"`
	LatestTradingDay string `json:"latest_trading_day"`
	PreviousClose    string `json:"previous_close"`
	Change           string `json:"change"`
	ChangePercent    string `json:"change_percent"`
}

type Field struct {
	Key   string
	Value string
}

// Fields returns the snapshot attributes keyed by upstream name, in GlobalQuoteKeys order.
func (s QuoteSnapshot) Fields() []Field {
	return []Field{
		{KeySymbol, s.Symbol},
		{KeyOpen, s.Open},
		{KeyHigh, s.High},
		{KeyLow, s.Low},
		{KeyPrice, s.Price},
		{KeyVolume, s.Volume},
		{KeyLatestTradingDay, s.LatestTradingDay},
		{KeyPreviousClose, s.PreviousClose},
		{KeyChange, s.Change},
		{KeyChangePercent, s.ChangePercent},
	}
}
