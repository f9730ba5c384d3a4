package cart

import "github.com/shopspring/decimal"

// LineTotal computes pricePerMeter × meters. It is defined only when the
// line has a unit price and is not custom-priced; custom-priced work is
// quoted manually.
func LineTotal(line Line) (decimal.Decimal, bool) {
	if line.IsCustomPrice || line.PricePerMeter == nil {
		return decimal.Zero, false
	}
	return line.PricePerMeter.Mul(line.Meters), true
}

// RoundMeters rounds a quantity to one decimal place, applied on every
// input change.
func RoundMeters(m decimal.Decimal) decimal.Decimal {
	return m.Round(1)
}

// IncrementMeters steps the quantity up by MetersStep.
func IncrementMeters(m decimal.Decimal) decimal.Decimal {
	return RoundMeters(m.Add(MetersStep))
}

// DecrementMeters steps the quantity down by MetersStep, never below
// MinMeters.
func DecrementMeters(m decimal.Decimal) decimal.Decimal {
	next := m.Sub(MetersStep)
	if next.LessThan(MinMeters) {
		next = MinMeters
	}
	return RoundMeters(next)
}
