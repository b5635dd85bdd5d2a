package models

import (
	"github.com/shopspring/decimal"
)

// Decimal is a custom type for decimal.Decimal
// the difference from `shopspring` is the json representation is without quotes
// for example the result of this type is 500 instead of "500".
//
// Unmarshalling accepts both forms, so admin forms posting "500" keep working.
type Decimal struct {
	decimal.Decimal
}

func NewDecimalFromInt(value int64) Decimal {
	return Decimal{decimal.NewFromInt(value)}
}

func NewDecimal(value string) (Decimal, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Decimal{}, err
	}

	return Decimal{d}, nil
}

func MustDecimal(value string) Decimal {
	d, err := NewDecimal(value)
	if err != nil {
		panic(err)
	}
	return d
}

func (d Decimal) MarshalJSON() ([]byte, error) {
	return []byte(d.String()), nil
}
