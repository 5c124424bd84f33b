package reports

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"
	"github.com/mmdatafocus/inventory_backend/models"
	"github.com/mmdatafocus/inventory_backend/utils"
)

var billColumnWidths = []float64{12, 83, 25, 35, 35}

// WriteSalesBillPdf renders a printable A4 bill for sale. Details must have
// Product preloaded for names to show.
func WriteSalesBillPdf(w io.Writer, sale *models.SalesMaster) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Sales Invoice "+sale.InvoiceNo, false)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.CellFormat(0, 12, "Sales Invoice", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	customerName, contact := unknownName, "N/A"
	if sale.Customer != nil {
		customerName = sale.Customer.Name
		if sale.Customer.ContactNumber != "" {
			contact = sale.Customer.ContactNumber
		}
	}

	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(95, 7, "Invoice No: "+sale.InvoiceNo, "", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, "Customer: "+customerName, "", 1, "L", false, 0, "")
	pdf.CellFormat(95, 7, "Date: "+utils.FormatDate(sale.Date), "", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, "Contact: "+contact, "", 1, "L", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Arial", "B", 11)
	pdf.SetFillColor(229, 231, 235)
	for i, h := range []string{"#", "Product", "Qty", "Price", "Amount"} {
		pdf.CellFormat(billColumnWidths[i], 8, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 11)
	for i, d := range sale.Details {
		productName := unknownName
		if d.Product != nil {
			productName = d.Product.Name
		}
		cells := []string{
			fmt.Sprint(i + 1),
			productName,
			d.Quantity.String(),
			d.Price.StringFixed(2),
			d.Quantity.Mul(d.Price).StringFixed(2),
		}
		for j, c := range cells {
			align := "C"
			if j == 1 {
				align = "L"
			}
			pdf.CellFormat(billColumnWidths[j], 8, c, "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.Ln(4)
	pdf.SetFont("Arial", "B", 13)
	pdf.CellFormat(0, 10, "Grand Total: Rs. "+sale.TotalAmount.StringFixed(2), "", 1, "R", false, 0, "")

	return pdf.Output(w)
}

// GetSalesBillPdf loads sale id with its customer and lines and renders the bill.
func GetSalesBillPdf(ctx context.Context, id int) ([]byte, error) {
	sale, err := models.GetSale(ctx, id)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := WriteSalesBillPdf(&buf, sale); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
