package services

import (
	"bytes"
	"fmt"
	"log"

	"github.com/johnfercher/maroto/pkg/color"
	"github.com/johnfercher/maroto/pkg/consts"
	"github.com/johnfercher/maroto/pkg/pdf"
	"github.com/johnfercher/maroto/pkg/props"
	"github.com/novamart-commerce/novamart-backoffice/models"
)

// GenerateOrderInvoicePDF renders an order invoice as an in-memory PDF
func GenerateOrderInvoicePDF(order *models.Order, items []models.OrderItem, customerName, customerEmail string) *bytes.Buffer {
	m := pdf.NewMaroto(consts.Portrait, consts.A4)
	m.SetPageMargins(20, 20, 20)

	darkGray := color.Color{Red: 38, Green: 38, Blue: 34}
	mediumGray := color.Color{Red: 121, Green: 119, Blue: 109}

	// Invoice Title
	m.Row(15, func() {
		m.Col(12, func() {
			m.Text("INVOICE", props.Text{
				Size:  24,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
	})

	// Company Info
	m.Row(10, func() {
		m.Col(12, func() {
			m.Text("NOVAMART", props.Text{
				Size:  16,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
	})

	m.Row(5, func() {
		m.Col(12, func() {
			m.Text("contact@novamart.shop", props.Text{
				Size:  9,
				Color: mediumGray,
			})
		})
	})

	m.Row(8, func() {})

	// Billing Section
	m.Row(5, func() {
		m.Col(6, func() {
			m.Text("BILL TO", props.Text{
				Size:  8,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
		m.Col(6, func() {
			m.Text("INVOICE DETAILS", props.Text{
				Size:  8,
				Style: consts.Bold,
				Color: darkGray,
				Align: consts.Right,
			})
		})
	})

	m.Row(5, func() {
		m.Col(6, func() {
			m.Text(customerName, props.Text{
				Size:  10,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
		m.Col(6, func() {
			m.Text(fmt.Sprintf("Invoice #%s", order.OrderNumber), props.Text{
				Size:  10,
				Color: darkGray,
				Align: consts.Right,
			})
		})
	})

	m.Row(5, func() {
		m.Col(6, func() {
			m.Text(customerEmail, props.Text{
				Size:  9,
				Color: mediumGray,
			})
		})
		m.Col(6, func() {
			m.Text(fmt.Sprintf("Date: %s", order.CreatedAt.Format("Jan 02, 2006")), props.Text{
				Size:  9,
				Color: mediumGray,
				Align: consts.Right,
			})
		})
	})

	m.Row(8, func() {})

	// Items Table Header
	m.Row(6, func() {
		m.Col(6, func() {
			m.Text("Description", props.Text{
				Size:  8,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
		m.Col(2, func() {
			m.Text("Qty", props.Text{
				Size:  8,
				Style: consts.Bold,
				Color: darkGray,
				Align: consts.Right,
			})
		})
		m.Col(2, func() {
			m.Text("Price", props.Text{
				Size:  8,
				Style: consts.Bold,
				Color: darkGray,
				Align: consts.Right,
			})
		})
		m.Col(2, func() {
			m.Text("Total", props.Text{
				Size:  8,
				Style: consts.Bold,
				Color: darkGray,
				Align: consts.Right,
			})
		})
	})

	// Items
	for _, item := range items {
		itemTotal := item.Price * float64(item.Quantity)
		name := item.ProductName
		if item.VariantName != nil && *item.VariantName != "" {
			name = fmt.Sprintf("%s (%s)", item.ProductName, *item.VariantName)
		}
		m.Row(6, func() {
			m.Col(6, func() {
				m.Text(name, props.Text{
					Size:  9,
					Color: darkGray,
				})
			})
			m.Col(2, func() {
				m.Text(fmt.Sprintf("%d", item.Quantity), props.Text{
					Size:  9,
					Color: darkGray,
					Align: consts.Right,
				})
			})
			m.Col(2, func() {
				m.Text(fmt.Sprintf("$%.2f", item.Price), props.Text{
					Size:  9,
					Color: darkGray,
					Align: consts.Right,
				})
			})
			m.Col(2, func() {
				m.Text(fmt.Sprintf("$%.2f", itemTotal), props.Text{
					Size:  9,
					Color: darkGray,
					Align: consts.Right,
				})
			})
		})
	}

	m.Row(8, func() {})

	// Summary Section
	summaryRow := func(label string, value string, bold bool) {
		size := 9.0
		style := consts.Normal
		labelColor := mediumGray
		if bold {
			size = 12.0
			style = consts.Bold
			labelColor = darkGray
		}
		m.Row(5, func() {
			m.Col(8, func() {})
			m.Col(2, func() {
				m.Text(label, props.Text{
					Size:  size,
					Style: style,
					Color: labelColor,
					Align: consts.Right,
				})
			})
			m.Col(2, func() {
				m.Text(value, props.Text{
					Size:  size,
					Style: style,
					Color: darkGray,
					Align: consts.Right,
				})
			})
		})
	}

	summaryRow("Subtotal", fmt.Sprintf("$%.2f", order.Subtotal), false)
	summaryRow("Shipping", fmt.Sprintf("$%.2f", order.ShippingCost), false)
	summaryRow("Tax", fmt.Sprintf("$%.2f", order.Tax), false)
	if order.Discount > 0 {
		summaryRow("Discount", fmt.Sprintf("-$%.2f", order.Discount), false)
	}
	if order.WalletPaid > 0 {
		summaryRow("Wallet", fmt.Sprintf("-$%.2f", order.WalletPaid), false)
	}
	summaryRow("Total", fmt.Sprintf("$%.2f", order.TotalAmount), true)

	m.Row(12, func() {})

	// Footer
	m.Row(5, func() {
		m.Col(12, func() {
			m.Text("Thank you for your business!", props.Text{
				Size:  8,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
	})

	m.Row(5, func() {
		m.Col(12, func() {
			m.Text("© 2026 NovaMart. All rights reserved.", props.Text{
				Size:  8,
				Color: mediumGray,
			})
		})
	})

	buf, err := m.Output()
	if err != nil {
		log.Printf("[invoice-pdf] failed to generate PDF: %v", err)
		return bytes.NewBuffer(nil)
	}

	return &buf
}
