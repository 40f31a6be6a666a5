package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeCartTotalsEmptyCart(t *testing.T) {
	totals := ComputeCartTotals(nil, 0)

	assert.Equal(t, 0.0, totals.Subtotal)
	assert.Equal(t, 0.0, totals.Total)
	assert.Equal(t, 0, totals.ItemCount)
}

func TestComputeCartTotalsNoDiscount(t *testing.T) {
	items := []CartItem{
		{Price: 10.00, Quantity: 2},
		{Price: 5.50, Quantity: 1},
	}

	totals := ComputeCartTotals(items, 0)

	assert.Equal(t, 25.50, totals.Subtotal)
	assert.Equal(t, 0.0, totals.Discount)
	assert.Equal(t, 2.55, totals.Tax)           // 10% of 25.50
	assert.Equal(t, 1.28, totals.ShippingCost)  // 5% of 25.50, rounded
	assert.Equal(t, 29.33, totals.Total)
	assert.Equal(t, 3, totals.ItemCount)
}

func TestComputeCartTotalsTaxAndShippingOnDiscountedSubtotal(t *testing.T) {
	items := []CartItem{
		{Price: 100.00, Quantity: 1},
	}

	totals := ComputeCartTotals(items, 20)

	assert.Equal(t, 100.00, totals.Subtotal)
	assert.Equal(t, 20.00, totals.Discount)
	assert.Equal(t, 8.00, totals.Tax)          // 10% of 80
	assert.Equal(t, 4.00, totals.ShippingCost) // 5% of 80
	assert.Equal(t, 92.00, totals.Total)
}

func TestComputeCartTotalsDiscountClampedToSubtotal(t *testing.T) {
	items := []CartItem{
		{Price: 30.00, Quantity: 1},
	}

	totals := ComputeCartTotals(items, 500)

	assert.Equal(t, 30.00, totals.Discount)
	assert.Equal(t, 0.0, totals.Tax)
	assert.Equal(t, 0.0, totals.ShippingCost)
	assert.Equal(t, 0.0, totals.Total)
}

func TestComputeCartTotalsNegativeDiscountIgnored(t *testing.T) {
	items := []CartItem{
		{Price: 10.00, Quantity: 1},
	}

	totals := ComputeCartTotals(items, -50)

	assert.Equal(t, 0.0, totals.Discount)
	assert.Equal(t, 11.50, totals.Total)
}
