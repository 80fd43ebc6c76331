package service

import "math"

// Amounts holds the fixed-point breakdown of a sale. All values are
// cents.
type Amounts struct {
	SubtotalCents int64
	TaxCents      int64
	DiscountCents int64
	FinalCents    int64
}

// ComputeAmounts applies tax and discount percentages to a subtotal.
// Percentages may be fractional; each derived amount is rounded to the
// nearest cent before the final sum, so
// final = subtotal + round(subtotal*tax/100) - round(subtotal*discount/100).
func ComputeAmounts(subtotalCents int64, taxPct, discountPct float64) Amounts {
	tax := roundCents(float64(subtotalCents) * taxPct / 100)
	discount := roundCents(float64(subtotalCents) * discountPct / 100)
	return Amounts{
		SubtotalCents: subtotalCents,
		TaxCents:      tax,
		DiscountCents: discount,
		FinalCents:    subtotalCents + tax - discount,
	}
}

func roundCents(v float64) int64 {
	return int64(math.Round(v))
}
