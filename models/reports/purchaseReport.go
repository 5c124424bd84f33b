package reports

import (
	"context"
	"time"

	"github.com/mmdatafocus/inventory_backend/models"
	"github.com/mmdatafocus/inventory_backend/utils"
	"github.com/shopspring/decimal"
)

type PurchaseReportRow struct {
	Date         string           `json:"Date"`
	BillNo       string           `json:"BillNo"`
	SupplierName string           `json:"SupplierName"`
	ProductName  string           `json:"ProductName"`
	Category     string           `json:"Category"`
	Quantity     *decimal.Decimal `json:"Quantity"`
	Rate         *decimal.Decimal `json:"Rate"`
	TotalAmount  decimal.Decimal  `json:"TotalAmount"`
	IsSubtotal   bool             `json:"IsSubtotal"`
}

type purchaseLineRecord struct {
	MasterId     int
	Date         time.Time
	SupplierName *string
	ProductName  *string
	Category     *string
	Quantity     decimal.Decimal
	Rate         decimal.Decimal
}

func (r *PurchaseReportRow) GetCellValues() []interface{} {
	return []interface{}{
		r.Date, r.BillNo, r.SupplierName, r.ProductName, r.Category,
		cellDecimal(r.Quantity), cellDecimal(r.Rate), r.TotalAmount.InexactFloat64(),
	}
}

var purchaseReportHeadings = []string{
	"Date", "Bill No", "Supplier", "Product", "Category", "Quantity", "Rate", "Total Amount",
}

func buildPurchaseReport(records []*purchaseLineRecord) []*PurchaseReportRow {
	rows := make([]*PurchaseReportRow, 0, len(records))
	for _, rec := range records {
		rows = append(rows, &PurchaseReportRow{
			Date:         utils.FormatDate(rec.Date),
			BillNo:       models.PurchaseBillNo(rec.MasterId),
			SupplierName: nameOrUnknown(rec.SupplierName),
			ProductName:  nameOrUnknown(rec.ProductName),
			Category:     categoryOrNA(rec.Category),
			Quantity:     decimalPtr(rec.Quantity),
			Rate:         decimalPtr(rec.Rate),
			TotalAmount:  rec.Quantity.Mul(rec.Rate),
		})
	}
	return groupWithSubtotals(rows,
		func(r *PurchaseReportRow) groupKey { return groupKey{Date: r.Date, Name: r.SupplierName} },
		func(r *PurchaseReportRow) decimal.Decimal { return r.TotalAmount },
		func(k groupKey, total decimal.Decimal) *PurchaseReportRow {
			return &PurchaseReportRow{
				Date:         k.Date,
				SupplierName: k.Name + subtotalSuffix,
				TotalAmount:  total,
				IsSubtotal:   true,
			}
		},
	)
}

func fetchPurchaseLines(ctx context.Context, dateRange *DateRange) ([]*purchaseLineRecord, error) {
	where, params := dateRange.whereClause("pm.date")
	sql := `
SELECT
    pm.id AS master_id,
    pm.date,
    suppliers.name AS supplier_name,
    products.name AS product_name,
    products.category,
    pd.quantity,
    pd.rate
FROM
    purchase_masters AS pm
    JOIN purchase_details AS pd ON pd.purchase_master_id = pm.id
    LEFT JOIN suppliers ON suppliers.id = pm.supplier_id
    LEFT JOIN products ON products.id = pd.product_id
` + where + `
ORDER BY
    pm.date DESC, pm.id DESC, pd.id
`
	var records []*purchaseLineRecord
	if err := rawQuery(ctx, sql, params).Scan(&records).Error; err != nil {
		return nil, utils.AsAppError(err)
	}
	return records, nil
}

func GetPurchaseReport(ctx context.Context, dateRange *DateRange) ([]*PurchaseReportRow, error) {
	return cachedReport(ctx, "purchase_report", dateRange, func() ([]*PurchaseReportRow, error) {
		records, err := fetchPurchaseLines(ctx, dateRange)
		if err != nil {
			return nil, err
		}
		return buildPurchaseReport(records), nil
	})
}
