package models

import "github.com/shopspring/decimal"

// RateTable maps a currency code to its rate against the provider's implicit base currency.
type RateTable map[string]decimal.Decimal

// Clone returns an independent copy of the table.
func (t RateTable) Clone() RateTable {
	if t == nil {
		return nil
	}
	out := make(RateTable, len(t))
	for code, rate := range t {
		out[code] = rate
	}
	return out
}
