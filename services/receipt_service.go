package services

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/yeremiapane/cafe-pos/models"
	"github.com/yeremiapane/cafe-pos/utils"
)

const (
	receiptLineStep  = 20.0
	receiptTopY      = 72.0
	receiptBottomPad = 80.0
)

// RenderReceiptPDF lays the bill out line by line with a manual y
// cursor and starts a new page when the cursor runs past the bottom
// margin.
func RenderReceiptPDF(order *models.Order) ([]byte, error) {
	pdf := fpdf.New("P", "pt", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "", 12)

	_, pageHeight := pdf.GetPageSize()
	y := receiptTopY

	pdf.Text(200, y, "Cafe Management System - Bill")
	y += receiptLineStep + 10

	meta := []string{
		fmt.Sprintf("Order ID: %s", order.OrderID),
		fmt.Sprintf("Customer: %s", order.Customer),
		fmt.Sprintf("Table No: %d", order.TableNo),
		fmt.Sprintf("Date: %s", order.CreatedAt.Format("2006-01-02 15:04:05")),
	}
	for _, line := range meta {
		pdf.Text(50, y, line)
		y += receiptLineStep
	}
	y += 10

	for _, it := range order.Items {
		if y > pageHeight-receiptBottomPad {
			pdf.AddPage()
			y = receiptTopY
		}
		pdf.Text(50, y, fmt.Sprintf("%d x %s = %s", it.Quantity, it.Name, utils.FormatUSD(it.Cost)))
		y += receiptLineStep
	}

	if y > pageHeight-receiptBottomPad {
		pdf.AddPage()
		y = receiptTopY
	}
	y += 10
	pdf.Text(50, y, fmt.Sprintf("Discount: %d%%", order.DiscountPct))
	y += receiptLineStep
	pdf.Text(50, y, fmt.Sprintf("Total: %s", utils.FormatUSD(order.Total)))
	y += receiptLineStep
	pdf.Text(50, y, fmt.Sprintf("Payment Method: %s", order.Payment))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render receipt for %s: %w", order.OrderID, err)
	}
	return buf.Bytes(), nil
}
