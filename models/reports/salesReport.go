package reports

import (
	"context"
	"time"

	"github.com/mmdatafocus/inventory_backend/utils"
	"github.com/shopspring/decimal"
)

// SalesReportRow is either a sale line or, when IsSubtotal, the subtotal of a
// (date, customer) group with only Date, CustomerName and TotalAmount set.
type SalesReportRow struct {
	Date          string           `json:"Date"`
	InvoiceNo     string           `json:"InvoiceNo"`
	CustomerName  string           `json:"CustomerName"`
	ProductName   string           `json:"ProductName"`
	Category      string           `json:"Category"`
	Quantity      *decimal.Decimal `json:"Quantity"`
	SellingPrice  *decimal.Decimal `json:"SellingPrice"`
	CostPrice     *decimal.Decimal `json:"CostPrice"`
	ProfitPerUnit *decimal.Decimal `json:"ProfitPerUnit"`
	TotalProfit   *decimal.Decimal `json:"TotalProfit"`
	TotalAmount   decimal.Decimal  `json:"TotalAmount"`
	IsSubtotal    bool             `json:"IsSubtotal"`
}

type salesLineRecord struct {
	MasterId     int
	InvoiceNo    string
	Date         time.Time
	CustomerName *string
	ProductName  *string
	Category     *string
	CostPrice    *decimal.Decimal
	Quantity     decimal.Decimal
	Price        decimal.Decimal
}

func (r *SalesReportRow) GetCellValues() []interface{} {
	return []interface{}{
		r.Date, r.InvoiceNo, r.CustomerName, r.ProductName, r.Category,
		cellDecimal(r.Quantity), cellDecimal(r.SellingPrice), cellDecimal(r.CostPrice),
		cellDecimal(r.ProfitPerUnit), cellDecimal(r.TotalProfit), r.TotalAmount.InexactFloat64(),
	}
}

var salesReportHeadings = []string{
	"Date", "Invoice No", "Customer", "Product", "Category",
	"Quantity", "Selling Price", "Cost Price", "Profit / Unit", "Total Profit", "Total Amount",
}

func salesReportLine(rec *salesLineRecord) *SalesReportRow {
	costPrice := utils.DereferencePtr(rec.CostPrice, decimal.Zero)
	profitPerUnit := rec.Price.Sub(costPrice)
	return &SalesReportRow{
		Date:          utils.FormatDate(rec.Date),
		InvoiceNo:     rec.InvoiceNo,
		CustomerName:  nameOrUnknown(rec.CustomerName),
		ProductName:   nameOrUnknown(rec.ProductName),
		Category:      categoryOrNA(rec.Category),
		Quantity:      decimalPtr(rec.Quantity),
		SellingPrice:  decimalPtr(rec.Price),
		CostPrice:     decimalPtr(costPrice),
		ProfitPerUnit: decimalPtr(profitPerUnit),
		TotalProfit:   decimalPtr(profitPerUnit.Mul(rec.Quantity)),
		TotalAmount:   rec.Quantity.Mul(rec.Price),
	}
}

func buildSalesReport(records []*salesLineRecord) []*SalesReportRow {
	rows := make([]*SalesReportRow, 0, len(records))
	for _, rec := range records {
		rows = append(rows, salesReportLine(rec))
	}
	return groupWithSubtotals(rows,
		func(r *SalesReportRow) groupKey { return groupKey{Date: r.Date, Name: r.CustomerName} },
		func(r *SalesReportRow) decimal.Decimal { return r.TotalAmount },
		func(k groupKey, total decimal.Decimal) *SalesReportRow {
			return &SalesReportRow{
				Date:         k.Date,
				CustomerName: k.Name + subtotalSuffix,
				TotalAmount:  total,
				IsSubtotal:   true,
			}
		},
	)
}

func fetchSalesLines(ctx context.Context, dateRange *DateRange) ([]*salesLineRecord, error) {
	where, params := dateRange.whereClause("sm.date")
	sql := `
SELECT
    sm.id AS master_id,
    sm.invoice_no,
    sm.date,
    customers.name AS customer_name,
    products.name AS product_name,
    products.category,
    products.cost_price,
    sd.quantity,
    sd.price
FROM
    sales_masters AS sm
    JOIN sales_details AS sd ON sd.sales_master_id = sm.id
    LEFT JOIN customers ON customers.id = sm.customer_id
    LEFT JOIN products ON products.id = sd.product_id
` + where + `
ORDER BY
    sm.date DESC, sm.id DESC, sd.id
`
	var records []*salesLineRecord
	if err := rawQuery(ctx, sql, params).Scan(&records).Error; err != nil {
		return nil, utils.AsAppError(err)
	}
	return records, nil
}

func GetSalesReport(ctx context.Context, dateRange *DateRange) ([]*SalesReportRow, error) {
	return cachedReport(ctx, "sales_report", dateRange, func() ([]*SalesReportRow, error) {
		records, err := fetchSalesLines(ctx, dateRange)
		if err != nil {
			return nil, err
		}
		return buildSalesReport(records), nil
	})
}
