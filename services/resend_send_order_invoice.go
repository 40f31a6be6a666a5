package services

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log"
	"strings"
)

// OrderInvoicePDFEmailData holds data for order invoice PDF email
type OrderInvoicePDFEmailData struct {
	CustomerName  string
	CustomerEmail string
	OrderNumber   string
	OrderDate     string
	AddressLine   string
	Items         []OrderInvoiceItem
	Subtotal      float64
	ShippingCost  float64
	Tax           float64
	Discount      float64
	WalletPaid    float64
	TotalAmount   float64
	PDFContent    []byte
}

// OrderInvoiceItem represents a line item in an invoice
type OrderInvoiceItem struct {
	ProductName string
	Quantity    int
	Price       float64
	Subtotal    float64
}

// SendOrderInvoicePDFEmail sends an order invoice with HTML preview and PDF attachment
func (r *ResendClient) SendOrderInvoicePDFEmail(data OrderInvoicePDFEmailData) error {
	htmlBody := r.buildOrderInvoiceHTML(data)
	pdfBase64 := base64.StdEncoding.EncodeToString(data.PDFContent)

	payload := map[string]interface{}{
		"from":    r.from,
		"to":      data.CustomerEmail,
		"subject": fmt.Sprintf("Your NovaMart invoice #%s", data.OrderNumber),
		"html":    htmlBody,
		"attachments": []map[string]interface{}{
			{
				"filename": fmt.Sprintf("invoice-%s.pdf", data.OrderNumber),
				"content":  pdfBase64,
			},
		},
	}

	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		log.Printf("[resend] failed to marshal payload: %v", err)
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	if err := r.postEmail(jsonPayload); err != nil {
		return err
	}

	log.Printf("[resend] order invoice email sent to %s for order %s", data.CustomerEmail, data.OrderNumber)
	return nil
}

// buildOrderInvoiceHTML creates the inline-styled HTML preview of the invoice
func (r *ResendClient) buildOrderInvoiceHTML(data OrderInvoicePDFEmailData) string {
	var itemsRows strings.Builder
	for _, item := range data.Items {
		itemsRows.WriteString(fmt.Sprintf(`
      <tr>
        <td style="padding: 8px 0; font-size: 14px; color: #1a1a1a;">%s</td>
        <td style="padding: 8px 0; font-size: 14px; text-align: right; color: #1a1a1a;">%d</td>
        <td style="padding: 8px 0; font-size: 14px; text-align: right; color: #1a1a1a;">$%.2f</td>
        <td style="padding: 8px 0; font-size: 14px; text-align: right; font-weight: 600; color: #1a1a1a;">$%.2f</td>
      </tr>
    `, item.ProductName, item.Quantity, item.Price, item.Subtotal))
	}

	optionalRows := ""
	if data.Discount > 0 {
		optionalRows += fmt.Sprintf(`
    <tr>
      <td colspan="3" style="padding: 6px 0; font-size: 14px; color: #626262;">Discount</td>
      <td style="padding: 6px 0; font-size: 14px; text-align: right; color: #1a1a1a;">-$%.2f</td>
    </tr>
    `, data.Discount)
	}
	if data.WalletPaid > 0 {
		optionalRows += fmt.Sprintf(`
    <tr>
      <td colspan="3" style="padding: 6px 0; font-size: 14px; color: #626262;">Paid from wallet</td>
      <td style="padding: 6px 0; font-size: 14px; text-align: right; color: #1a1a1a;">-$%.2f</td>
    </tr>
    `, data.WalletPaid)
	}

	return fmt.Sprintf(`
<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Invoice - %s</title>
</head>
<body style="margin: 0; padding: 16px; font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', 'Roboto', sans-serif; background-color: #ffffff; line-height: 1.5;">
  <table width="100%%" cellpadding="0" cellspacing="0" border="0" style="max-width: 900px; margin: auto; background: #ffffff; padding: 24px;">
    <tr>
      <td style="border-bottom: 1px solid #e5e5e5; padding-bottom: 16px;">
        <h1 style="margin: 0; font-size: 30px; font-weight: bold; color: #1a1a1a;">INVOICE</h1>
      </td>
    </tr>

    <tr>
      <td style="padding: 16px 0;">
        <h2 style="margin: 0; font-size: 24px; font-weight: bold; color: #1a1a1a;">NOVAMART</h2>
        <p style="margin: 4px 0; font-size: 14px; color: #626262;">support@novamart.shop</p>
      </td>
    </tr>

    <tr>
      <td style="padding: 16px 0;">
        <table width="100%%" cellpadding="0" cellspacing="0" border="0">
          <tr>
            <td style="vertical-align: top;">
              <p style="margin: 0; font-size: 14px; font-weight: bold; color: #1a1a1a;">Bill To</p>
              <p style="margin: 4px 0; font-size: 14px; color: #1a1a1a;">%s</p>
              <p style="margin: 4px 0; font-size: 14px; color: #626262;">%s</p>
              <p style="margin: 4px 0; font-size: 14px; color: #626262;">%s</p>
            </td>
            <td style="text-align: right; vertical-align: top;">
              <p style="margin: 0; font-size: 14px; color: #626262;">Invoice Number</p>
              <p style="margin: 4px 0; font-size: 14px; font-weight: bold; color: #1a1a1a;">%s</p>
              <p style="margin: 8px 0 0 0; font-size: 14px; color: #626262;">Invoice Date</p>
              <p style="margin: 4px 0; font-size: 14px; font-weight: bold; color: #1a1a1a;">%s</p>
            </td>
          </tr>
        </table>
      </td>
    </tr>

    <tr>
      <td style="padding: 16px 0; border-top: 1px solid #e5e5e5; border-bottom: 1px solid #e5e5e5;">
        <table width="100%%" cellpadding="0" cellspacing="0" border="0">
          <thead>
            <tr>
              <th style="text-align: left; font-size: 12px; text-transform: uppercase; color: #1a1a1a; padding-bottom: 8px;">Description</th>
              <th style="text-align: right; font-size: 12px; text-transform: uppercase; color: #1a1a1a; padding-bottom: 8px;">Qty</th>
              <th style="text-align: right; font-size: 12px; text-transform: uppercase; color: #1a1a1a; padding-bottom: 8px;">Price</th>
              <th style="text-align: right; font-size: 12px; text-transform: uppercase; color: #1a1a1a; padding-bottom: 8px;">Total</th>
            </tr>
          </thead>
          <tbody>
            %s
          </tbody>
        </table>
      </td>
    </tr>

    <tr>
      <td style="padding: 16px 0;">
        <table align="right" width="300" cellpadding="0" cellspacing="0" border="0">
          <tr>
            <td style="font-size: 14px; color: #626262;">Subtotal</td>
            <td style="text-align: right; font-size: 14px; color: #1a1a1a;">$%.2f</td>
          </tr>
          <tr>
            <td style="font-size: 14px; color: #626262;">Shipping</td>
            <td style="text-align: right; font-size: 14px; color: #1a1a1a;">$%.2f</td>
          </tr>
          <tr>
            <td style="font-size: 14px; color: #626262;">Tax</td>
            <td style="text-align: right; font-size: 14px; color: #1a1a1a;">$%.2f</td>
          </tr>
          %s
          <tr>
            <td style="font-size: 14px; font-weight: bold; border-top: 1px solid #e5e5e5; padding-top: 8px;">Total</td>
            <td style="text-align: right; font-size: 16px; font-weight: bold; color: #1a1a1a; border-top: 1px solid #e5e5e5; padding-top: 8px;">$%.2f</td>
          </tr>
        </table>
      </td>
    </tr>

    <tr>
      <td style="padding: 16px 0; border-top: 1px solid #e5e5e5;">
        <p style="font-size: 14px; font-weight: bold; color: #1a1a1a;">Thank you for shopping with us!</p>
        <p style="font-size: 14px; color: #626262;">© 2026 NovaMart. All rights reserved.</p>
      </td>
    </tr>

  </table>
</body>
</html>
`, data.OrderNumber,
		data.CustomerName, data.CustomerEmail, data.AddressLine,
		data.OrderNumber, data.OrderDate,
		itemsRows.String(),
		data.Subtotal, data.ShippingCost, data.Tax,
		optionalRows,
		data.TotalAmount,
	)
}
