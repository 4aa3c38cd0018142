package utils

import "github.com/shopspring/decimal"

// ToFloat converts a fixed-point amount to float64 at the API boundary.
func ToFloat(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

// ToFloatPtr converts an optional amount; nil stays nil.
func ToFloatPtr(d *decimal.Decimal) *float64 {
	if d == nil {
		return nil
	}
	f := ToFloat(*d)
	return &f
}

// FromFloat converts a client-supplied amount to fixed-point, rounded to cents.
func FromFloat(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f).Round(2)
}

// FromFloatPtr converts an optional client amount.
func FromFloatPtr(f *float64) *decimal.Decimal {
	if f == nil {
		return nil
	}
	d := FromFloat(*f)
	return &d
}
