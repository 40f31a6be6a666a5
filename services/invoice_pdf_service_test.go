package services

import (
	"bytes"
	"testing"
	"time"

	"github.com/novamart-commerce/novamart-backoffice/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateOrderInvoicePDF(t *testing.T) {
	variant := "500g-Ground"
	order := &models.Order{
		OrderNumber:  "ORD-20260827-1A2B3C",
		Subtotal:     52.80,
		Tax:          5.28,
		ShippingCost: 2.64,
		Discount:     5.00,
		WalletPaid:   10.00,
		TotalAmount:  55.72,
		CreatedAt:    time.Now(),
	}
	items := []models.OrderItem{
		{ProductName: "Single Origin Coffee", VariantName: &variant, Price: 24.00, Quantity: 2},
		{ProductName: "Ceramic Pour-Over Set", Price: 4.80, Quantity: 1},
	}

	buf := GenerateOrderInvoicePDF(order, items, "Ade Shopper", "shopper@example.com")

	require.NotNil(t, buf)
	assert.Greater(t, buf.Len(), 0)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}

func TestGenerateOrderInvoicePDFNilVariant(t *testing.T) {
	order := &models.Order{
		OrderNumber: "ORD-20260827-4D5E6F",
		Subtotal:    10.00,
		TotalAmount: 11.50,
		CreatedAt:   time.Now(),
	}
	items := []models.OrderItem{
		{ProductName: "House Blend", VariantName: nil, Price: 10.00, Quantity: 1},
	}

	buf := GenerateOrderInvoicePDF(order, items, "Ade Shopper", "shopper@example.com")

	require.NotNil(t, buf)
	assert.Greater(t, buf.Len(), 0)
}
