package money

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// Money is an immutable amount of a currency, held as an exact integer
// count of that currency's subunits. It never holds a fractional subunit.
// Equality is by (subunits, currency).
type Money struct {
	subunits int64
	currency Currency
}

// New builds a Money from a subunit count and a currency.
func New(subunits int64, c Currency) Money {
	return Money{subunits: subunits, currency: c}
}

// Subunits returns the exact subunit count.
func (m Money) Subunits() int64 {
	return m.subunits
}

// Currency returns the currency of m.
func (m Money) Currency() Currency {
	return m.currency
}

// Amount returns the value in whole currency units, e.g. 12.34 for 1234
// cents of USD.
func (m Money) Amount() decimal.Decimal {
	return decimal.New(m.subunits, -m.currency.Exponent)
}

// Equal reports whether m and o have the same subunit count and currency.
func (m Money) Equal(o Money) bool {
	return m == o
}

// IsZero reports a zero amount (the currency is not considered).
func (m Money) IsZero() bool {
	return m.subunits == 0
}

// String renders the amount at the currency's precision followed by the
// code, e.g. "12.34 USD".
func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.Amount().StringFixed(m.currency.Exponent), m.currency.Code)
}

type moneyJSON struct {
	Subunits int64  `json:"subunits"`
	Currency string `json:"currency"`
}

// MarshalJSON encodes the subunit count and the currency code, losslessly.
func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(moneyJSON{Subunits: m.subunits, Currency: m.currency.Code})
}

// UnmarshalJSON decodes the subunit/code pair, resolving the currency via
// the registry.
func (m *Money) UnmarshalJSON(data []byte) error {
	var raw moneyJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("unmarshaling money: %w", err)
	}
	cur, err := Lookup(raw.Currency)
	if err != nil {
		return fmt.Errorf("unmarshaling money: %w", err)
	}
	*m = Money{subunits: raw.Subunits, currency: cur}
	return nil
}
