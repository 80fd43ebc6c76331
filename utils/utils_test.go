package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenSaleNumber(t *testing.T) {
	ts := time.Date(2025, 11, 29, 14, 30, 52, 0, time.UTC)
	assert.Equal(t, "SALE-20251129143052", GenSaleNumber(ts))

	// Same second, same number.
	assert.Equal(t, GenSaleNumber(ts), GenSaleNumber(ts.Add(500*time.Millisecond)))
}

func TestFormatCents(t *testing.T) {
	assert.Equal(t, "300.00", FormatCents(30000))
	assert.Equal(t, "0.05", FormatCents(5))
	assert.Equal(t, "0.00", FormatCents(0))
	assert.Equal(t, "1234.56", FormatCents(123456))
	assert.Equal(t, "-12.50", FormatCents(-1250))
}
