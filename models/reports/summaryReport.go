package reports

import (
	"context"
	"time"

	"github.com/mmdatafocus/inventory_backend/models"
	"github.com/mmdatafocus/inventory_backend/utils"
	"github.com/shopspring/decimal"
)

type SalesSummaryRow struct {
	InvoiceNo    string          `json:"InvoiceNo"`
	CustomerName string          `json:"CustomerName"`
	ProductCount int             `json:"ProductCount"`
	TotalAmount  decimal.Decimal `json:"TotalAmount"`
	Date         string          `json:"Date"`
}

type PurchaseSummaryRow struct {
	BillNo       string          `json:"BillNo"`
	SupplierName string          `json:"SupplierName"`
	ProductCount int             `json:"ProductCount"`
	TotalAmount  decimal.Decimal `json:"TotalAmount"`
	Date         string          `json:"Date"`
}

type masterSummaryRecord struct {
	Id           int
	InvoiceNo    string
	Name         *string
	ProductCount int
	TotalAmount  decimal.Decimal
	Date         time.Time
}

func (r *SalesSummaryRow) GetCellValues() []interface{} {
	return []interface{}{r.InvoiceNo, r.CustomerName, r.ProductCount, r.TotalAmount.InexactFloat64(), r.Date}
}

func (r *PurchaseSummaryRow) GetCellValues() []interface{} {
	return []interface{}{r.BillNo, r.SupplierName, r.ProductCount, r.TotalAmount.InexactFloat64(), r.Date}
}

var salesSummaryHeadings = []string{"Invoice No", "Customer", "Products", "Total Amount", "Date"}
var purchaseSummaryHeadings = []string{"Bill No", "Supplier", "Products", "Total Amount", "Date"}

// one row per master; the stored total is reported as-is
func fetchMasterSummaries(ctx context.Context, sqlTemplate string, dateRange *DateRange) ([]*masterSummaryRecord, error) {
	where, params := dateRange.whereClause("m.date")
	sql, err := utils.ExecTemplate(sqlTemplate, map[string]interface{}{"where": where})
	if err != nil {
		return nil, err
	}
	var records []*masterSummaryRecord
	if err := rawQuery(ctx, sql, params).Scan(&records).Error; err != nil {
		return nil, utils.AsAppError(err)
	}
	return records, nil
}

const salesSummarySql = `
SELECT
    m.id,
    m.invoice_no,
    customers.name AS name,
    COUNT(d.id) AS product_count,
    m.total_amount,
    m.date
FROM
    sales_masters AS m
    LEFT JOIN sales_details AS d ON d.sales_master_id = m.id
    LEFT JOIN customers ON customers.id = m.customer_id
{{.where}}
GROUP BY
    m.id, m.invoice_no, customers.name, m.total_amount, m.date
ORDER BY
    m.date DESC, m.id DESC
`

const purchaseSummarySql = `
SELECT
    m.id,
    suppliers.name AS name,
    COUNT(d.id) AS product_count,
    m.total_amount,
    m.date
FROM
    purchase_masters AS m
    LEFT JOIN purchase_details AS d ON d.purchase_master_id = m.id
    LEFT JOIN suppliers ON suppliers.id = m.supplier_id
{{.where}}
GROUP BY
    m.id, suppliers.name, m.total_amount, m.date
ORDER BY
    m.date DESC, m.id DESC
`

func GetSalesSummary(ctx context.Context, dateRange *DateRange) ([]*SalesSummaryRow, error) {
	return cachedReport(ctx, "sales_summary", dateRange, func() ([]*SalesSummaryRow, error) {
		records, err := fetchMasterSummaries(ctx, salesSummarySql, dateRange)
		if err != nil {
			return nil, err
		}
		rows := make([]*SalesSummaryRow, 0, len(records))
		for _, rec := range records {
			rows = append(rows, &SalesSummaryRow{
				InvoiceNo:    rec.InvoiceNo,
				CustomerName: nameOrUnknown(rec.Name),
				ProductCount: rec.ProductCount,
				TotalAmount:  rec.TotalAmount,
				Date:         utils.FormatDate(rec.Date),
			})
		}
		return rows, nil
	})
}

func GetPurchaseSummary(ctx context.Context, dateRange *DateRange) ([]*PurchaseSummaryRow, error) {
	return cachedReport(ctx, "purchase_summary", dateRange, func() ([]*PurchaseSummaryRow, error) {
		records, err := fetchMasterSummaries(ctx, purchaseSummarySql, dateRange)
		if err != nil {
			return nil, err
		}
		rows := make([]*PurchaseSummaryRow, 0, len(records))
		for _, rec := range records {
			rows = append(rows, &PurchaseSummaryRow{
				BillNo:       models.PurchaseBillNo(rec.Id),
				SupplierName: nameOrUnknown(rec.Name),
				ProductCount: rec.ProductCount,
				TotalAmount:  rec.TotalAmount,
				Date:         utils.FormatDate(rec.Date),
			})
		}
		return rows, nil
	})
}
