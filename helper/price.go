package helper

import (
	"time"

	"github.com/shopspring/decimal"
)

var DoublesMultiplier = decimal.RequireFromString("1.5")

// DurationMinutes counts whole minutes between start and end; a trailing
// partial minute is dropped.
func DurationMinutes(start, end time.Time) int64 {
	return int64(end.Sub(start) / time.Minute)
}

// CalculatePrice = pricePerMinute * minutes, times 1.5 for doubles.
func CalculatePrice(pricePerMinute decimal.Decimal, start, end time.Time, doubles bool) decimal.Decimal {
	price := pricePerMinute.Mul(decimal.NewFromInt(DurationMinutes(start, end)))
	if doubles {
		price = price.Mul(DoublesMultiplier)
	}
	return price
}
