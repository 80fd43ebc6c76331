package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeAmounts(t *testing.T) {
	tests := []struct {
		name     string
		subtotal int64
		tax      float64
		discount float64
		want     Amounts
	}{
		{
			name:     "no tax no discount",
			subtotal: 30000,
			want:     Amounts{SubtotalCents: 30000, FinalCents: 30000},
		},
		{
			name:     "tax and discount",
			subtotal: 30000,
			tax:      10,
			discount: 5,
			want:     Amounts{SubtotalCents: 30000, TaxCents: 3000, DiscountCents: 1500, FinalCents: 31500},
		},
		{
			name:     "fractional percentages round per amount",
			subtotal: 999,
			tax:      7.5,  // 74.925 -> 75
			discount: 2.5,  // 24.975 -> 25
			want:     Amounts{SubtotalCents: 999, TaxCents: 75, DiscountCents: 25, FinalCents: 1049},
		},
		{
			name:     "full discount",
			subtotal: 12345,
			discount: 100,
			want:     Amounts{SubtotalCents: 12345, DiscountCents: 12345, FinalCents: 0},
		},
		{
			name: "zero subtotal",
			tax:  18,
			want: Amounts{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeAmounts(tt.subtotal, tt.tax, tt.discount)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got.SubtotalCents+got.TaxCents-got.DiscountCents, got.FinalCents)
		})
	}
}
