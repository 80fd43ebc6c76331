package carts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartAddMergesSameProduct(t *testing.T) {
	var cart Cart
	cart.Add(Item{ProductID: 1, Name: "Laptop", UnitPriceCents: 10000, Quantity: 1})
	cart.Add(Item{ProductID: 2, Name: "Mouse", UnitPriceCents: 2500, Quantity: 2})
	cart.Add(Item{ProductID: 1, Name: "Laptop", UnitPriceCents: 10000, Quantity: 3})

	require.Len(t, cart.Items, 2)
	assert.Equal(t, 4, cart.Find(1).Quantity)
	assert.Equal(t, 6, cart.Count())
	assert.Equal(t, int64(45000), cart.TotalCents())
}

func TestCartSetQuantity(t *testing.T) {
	var cart Cart
	cart.Add(Item{ProductID: 1, UnitPriceCents: 10000, Quantity: 2})

	cart.SetQuantity(1, 5)
	assert.Equal(t, 5, cart.Find(1).Quantity)

	// Unknown products are ignored.
	cart.SetQuantity(99, 3)
	assert.Len(t, cart.Items, 1)

	// Zero or negative removes the line.
	cart.SetQuantity(1, 0)
	assert.Nil(t, cart.Find(1))
	assert.Empty(t, cart.Items)
}

func TestCartRemove(t *testing.T) {
	var cart Cart
	cart.Add(Item{ProductID: 1, UnitPriceCents: 10000, Quantity: 1})
	cart.Add(Item{ProductID: 2, UnitPriceCents: 2500, Quantity: 1})

	cart.Remove(1)
	assert.Nil(t, cart.Find(1))
	assert.NotNil(t, cart.Find(2))

	cart.Remove(99)
	assert.Len(t, cart.Items, 1)
}

func TestEmptyCart(t *testing.T) {
	var cart Cart
	assert.Equal(t, 0, cart.Count())
	assert.Equal(t, int64(0), cart.TotalCents())
	assert.Nil(t, cart.Find(1))
}
