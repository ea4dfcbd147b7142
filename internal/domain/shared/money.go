package shared

import "github.com/shopspring/decimal"

// Money is an amount sent upstream. It marshals as a bare JSON number
// (2500000.5, not "2500000.5") and still accepts either form when decoding.
type Money struct {
	decimal.Decimal
}

func NewMoney(d decimal.Decimal) Money {
	return Money{Decimal: d}
}

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.Decimal.String()), nil
}
