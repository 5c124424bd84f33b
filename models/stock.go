package models

import (
	"context"

	"github.com/mmdatafocus/inventory_backend/config"
	"github.com/mmdatafocus/inventory_backend/utils"
	"github.com/shopspring/decimal"
)

type StockViewRow struct {
	SrNo           int             `json:"srNo"`
	ProductId      int             `json:"productId"`
	ProductName    string          `json:"product_name"`
	OpeningStock   decimal.Decimal `json:"openingStock"`
	PurchaseInward decimal.Decimal `json:"purchaseInward"`
	SalesOutward   decimal.Decimal `json:"salesOutward"`
	ClosingStock   decimal.Decimal `json:"closingStock"`
}

type ProductStockResponse struct {
	ProductId      int             `json:"productId"`
	ProductName    string          `json:"product_name"`
	AvailableStock decimal.Decimal `json:"availableStock"`
}

type productQtySum struct {
	ProductId int
	Total     decimal.Decimal
}

// ClosingStock is opening + inward - outward.
func ClosingStock(opening, inward, outward decimal.Decimal) decimal.Decimal {
	return opening.Add(inward).Sub(outward)
}

// BuildStockRows numbers products from 1 in the given order. Products absent
// from inward/outward have no movement.
func BuildStockRows(products []*Product, inward, outward map[int]decimal.Decimal) []*StockViewRow {
	rows := make([]*StockViewRow, 0, len(products))
	for i, p := range products {
		in := inward[p.ID]
		out := outward[p.ID]
		rows = append(rows, &StockViewRow{
			SrNo:           i + 1,
			ProductId:      p.ID,
			ProductName:    p.Name,
			OpeningStock:   p.Qty,
			PurchaseInward: in,
			SalesOutward:   out,
			ClosingStock:   ClosingStock(p.Qty, in, out),
		})
	}
	return rows
}

// sums quantity per product for model's table; productIds narrows the scan when given
func sumQuantityByProduct[T any](ctx context.Context, productIds ...int) (map[int]decimal.Decimal, error) {
	var model T
	var sums []productQtySum

	db := config.GetDB()
	dbCtx := db.WithContext(ctx).Model(&model).
		Select("product_id, SUM(quantity) AS total")
	if len(productIds) > 0 {
		dbCtx = dbCtx.Where("product_id IN ?", productIds)
	}
	if err := dbCtx.Group("product_id").Scan(&sums).Error; err != nil {
		return nil, utils.AsAppError(err)
	}

	result := make(map[int]decimal.Decimal, len(sums))
	for _, s := range sums {
		result[s.ProductId] = s.Total
	}
	return result, nil
}

func GetStockView(ctx context.Context) ([]*StockViewRow, error) {
	products, err := utils.FetchAllModels[Product](ctx, "id")
	if err != nil {
		return nil, err
	}
	inward, err := sumQuantityByProduct[PurchaseDetail](ctx)
	if err != nil {
		return nil, err
	}
	outward, err := sumQuantityByProduct[SalesDetail](ctx)
	if err != nil {
		return nil, err
	}
	return BuildStockRows(products, inward, outward), nil
}

func GetProductStock(ctx context.Context, productId int) (*ProductStockResponse, error) {
	product, err := fetchMaster[Product](ctx, productId, "product not found")
	if err != nil {
		return nil, err
	}
	inward, err := sumQuantityByProduct[PurchaseDetail](ctx, productId)
	if err != nil {
		return nil, err
	}
	outward, err := sumQuantityByProduct[SalesDetail](ctx, productId)
	if err != nil {
		return nil, err
	}
	return &ProductStockResponse{
		ProductId:      product.ID,
		ProductName:    product.Name,
		AvailableStock: ClosingStock(product.Qty, inward[productId], outward[productId]),
	}, nil
}
