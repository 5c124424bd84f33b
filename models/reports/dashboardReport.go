package reports

import (
	"context"
	"sort"

	"github.com/mmdatafocus/inventory_backend/config"
	"github.com/mmdatafocus/inventory_backend/utils"
	"github.com/shopspring/decimal"
)

const topProductsLimit = 6

var monthNames = [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

type DashboardSummaryResponse struct {
	TotalProducts int64           `json:"totalProducts"`
	TotalSales    decimal.Decimal `json:"totalSales"`
	TotalPurchase decimal.Decimal `json:"totalPurchase"`
	ClosingStock  decimal.Decimal `json:"closingStock"`
}

type MonthlySalesResponse struct {
	Month   string          `json:"month"`
	MonthNo int             `json:"monthNo"`
	Total   decimal.Decimal `json:"total"`
}

type TopProductResponse struct {
	Product    string          `json:"product"`
	TotalSales decimal.Decimal `json:"totalSales"`
}

type StockDistributionResponse struct {
	Product  string          `json:"product"`
	StockQty decimal.Decimal `json:"stockQty"`
}

func GetDashboardSummary(ctx context.Context) (*DashboardSummaryResponse, error) {
	return cachedReport(ctx, "dashboard_summary", nil, func() (*DashboardSummaryResponse, error) {
		sql := `
SELECT
    (SELECT COUNT(*) FROM products) AS total_products,
    (SELECT COALESCE(SUM(total_amount), 0) FROM sales_masters) AS total_sales,
    (SELECT COALESCE(SUM(total_amount), 0) FROM purchase_masters) AS total_purchase,
    (SELECT COALESCE(SUM(qty), 0) FROM products WHERE qty > 0) AS closing_stock
`
		var result DashboardSummaryResponse
		db := config.GetDB()
		if err := db.WithContext(ctx).Raw(sql).Scan(&result).Error; err != nil {
			return nil, utils.AsAppError(err)
		}
		return &result, nil
	})
}

func GetMonthlySales(ctx context.Context) ([]*MonthlySalesResponse, error) {
	return cachedReport(ctx, "monthly_sales", nil, func() ([]*MonthlySalesResponse, error) {
		sql := `
SELECT
    MONTH(date) AS month_no,
    SUM(total_amount) AS total
FROM
    sales_masters
GROUP BY
    MONTH(date)
ORDER BY
    month_no
`
		var results []*MonthlySalesResponse
		db := config.GetDB()
		if err := db.WithContext(ctx).Raw(sql).Scan(&results).Error; err != nil {
			return nil, utils.AsAppError(err)
		}
		for _, r := range results {
			r.Month = monthName(r.MonthNo)
		}
		return results, nil
	})
}

func monthName(monthNo int) string {
	if monthNo < 1 || monthNo > 12 {
		return ""
	}
	return monthNames[monthNo-1]
}

// rankTopProducts drops unnamed and "Unknown" products, then keeps the
// limit highest totals.
func rankTopProducts(totals []*TopProductResponse, limit int) []*TopProductResponse {
	ranked := make([]*TopProductResponse, 0, len(totals))
	for _, t := range totals {
		if t.Product == "" || t.Product == unknownName {
			continue
		}
		ranked = append(ranked, t)
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TotalSales.GreaterThan(ranked[j].TotalSales)
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

func GetTopProducts(ctx context.Context) ([]*TopProductResponse, error) {
	return cachedReport(ctx, "top_products", nil, func() ([]*TopProductResponse, error) {
		sql := `
SELECT
    products.name AS product,
    SUM(sd.amount) AS total_sales
FROM
    sales_details AS sd
    JOIN products ON products.id = sd.product_id
GROUP BY
    products.name
`
		var totals []*TopProductResponse
		db := config.GetDB()
		if err := db.WithContext(ctx).Raw(sql).Scan(&totals).Error; err != nil {
			return nil, utils.AsAppError(err)
		}
		return rankTopProducts(totals, topProductsLimit), nil
	})
}

func GetStockDistribution(ctx context.Context) ([]*StockDistributionResponse, error) {
	return cachedReport(ctx, "stock_distribution", nil, func() ([]*StockDistributionResponse, error) {
		sql := `
SELECT
    name AS product,
    qty AS stock_qty
FROM
    products
WHERE
    qty > 0 AND name <> '' AND name <> @unknown
ORDER BY
    id
`
		var results []*StockDistributionResponse
		db := config.GetDB()
		if err := db.WithContext(ctx).Raw(sql, map[string]interface{}{"unknown": unknownName}).Scan(&results).Error; err != nil {
			return nil, utils.AsAppError(err)
		}
		return results, nil
	})
}
