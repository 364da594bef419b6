package service

import (
	"github.com/shopspring/decimal"
)

// roundTo2Decimals redondea un float64 a 2 decimales, mitad hacia afuera
// sobre su representación decimal más corta.
func roundTo2Decimals(value float64) float64 {
	if !isFinite(value) {
		return value
	}
	return decimal.NewFromFloat(value).Round(2).InexactFloat64()
}

// sumCents adds already rounded amounts without accumulating binary error.
func sumCents(values ...float64) decimal.Decimal {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(decimal.NewFromFloat(v))
	}
	return total
}
