package model

// Currency is a closed set of symbolic accounting units. Each unit is an
// independent bucket; amounts are never converted between units.
type Currency string

const (
	CurrencyKRW Currency = "원화"
	CurrencyUSD Currency = "달러"
	CurrencyJPY Currency = "엔화"
	CurrencyEUR Currency = "유로화"
)

// Currencies lists every supported currency in display order.
var Currencies = []Currency{CurrencyKRW, CurrencyUSD, CurrencyJPY, CurrencyEUR}

// Valid reports whether c is one of the supported currency units.
func (c Currency) Valid() bool {
	switch c {
	case CurrencyKRW, CurrencyUSD, CurrencyJPY, CurrencyEUR:
		return true
	}
	return false
}

// MoneyAmount is the user-declared total investable budget.
type MoneyAmount struct {
	Amount   float64  `json:"amount"`
	Currency Currency `json:"currency"`
}

// Holding represents a single stock position in the portfolio
type Holding struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	PurchasePrice float64  `json:"purchasePrice"`
	Amount        float64  `json:"amount"` // quantity of shares, not money
	Currency      Currency `json:"currency"`
}

// Value returns the invested value of the holding (purchase price times
// quantity). It is always computed fresh and never cached on the entity.
func (h Holding) Value() float64 {
	return h.PurchasePrice * h.Amount
}

// Portfolio is the single persisted document: the declared budget plus the
// ordered list of holdings. Insertion order of Stocks is the display order.
type Portfolio struct {
	TotalAmount MoneyAmount `json:"totalAmount"`
	Stocks      []Holding   `json:"stocks"`
}

// DefaultPortfolio returns the initial state used on first run and after a
// reset: zero budget in KRW and no holdings.
func DefaultPortfolio() Portfolio {
	return Portfolio{
		TotalAmount: MoneyAmount{Amount: 0, Currency: CurrencyKRW},
		Stocks:      []Holding{},
	}
}

// Clone returns a deep copy of the portfolio so callers can hand out
// snapshots without exposing the canonical slice to mutation.
func (p Portfolio) Clone() Portfolio {
	out := Portfolio{
		TotalAmount: p.TotalAmount,
		Stocks:      make([]Holding, len(p.Stocks)),
	}
	copy(out.Stocks, p.Stocks)
	return out
}
