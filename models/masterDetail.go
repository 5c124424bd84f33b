package models

import (
	"context"
	"fmt"
	"time"

	"github.com/mmdatafocus/inventory_backend/config"
	"github.com/mmdatafocus/inventory_backend/utils"
	"github.com/shopspring/decimal"
)

// txLine is one validated line of a sale or purchase.
type txLine struct {
	ProductId int
	Quantity  decimal.Decimal
	UnitPrice decimal.Decimal
}

func (l txLine) amount() decimal.Decimal {
	return l.Quantity.Mul(l.UnitPrice)
}

func totalAmount(lines []txLine) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.amount())
	}
	return total
}

func lineProductIds(lines []txLine) []int {
	ids := make([]int, 0, len(lines))
	for _, l := range lines {
		ids = append(ids, l.ProductId)
	}
	return ids
}

// validateLines checks tags on input, then the scale of each line, then that
// every referenced product exists.
func validateLines(ctx context.Context, input interface{}, lines []txLine, priceField string) error {
	if err := utils.ValidateStruct(input); err != nil {
		return err
	}
	if err := validateLineScale(lines, priceField); err != nil {
		return err
	}
	return utils.ValidateResourcesId[Product](ctx, lineProductIds(lines), "product not found")
}

// transactionDate parses the optional date field, defaulting to now.
func transactionDate(value string) (time.Time, error) {
	if value == "" {
		return time.Now().UTC(), nil
	}
	date, err := utils.ParseDate(value)
	if err != nil {
		return time.Time{}, utils.NewValidationError(err.Error())
	}
	return date, nil
}

func newInvoiceNo(now time.Time) string {
	return fmt.Sprintf("INV-%d", now.UnixMilli())
}

// PurchaseBillNo is the display number of a purchase.
func PurchaseBillNo(id int) string {
	return fmt.Sprintf("PUR-%06d", id)
}

func lockKey(kind string, id int) string {
	return fmt.Sprintf("Lock:%s:%d", kind, id)
}

// invalidateReports runs after every committed write that reports read from.
func invalidateReports(moduleName string, funcName string) {
	if err := utils.ClearReportCache(); err != nil {
		config.LogError(config.GetLogger(), moduleName, funcName, "clearing report cache", nil, err)
	}
}

// fetchMaster is FetchModel with a domain-specific not-found message.
func fetchMaster[T any](ctx context.Context, id int, notFound string, associations ...string) (*T, error) {
	result, err := utils.FetchModel[T](ctx, id, associations...)
	if err != nil {
		if utils.IsNotFound(err) {
			return nil, utils.NewNotFoundError(notFound)
		}
		return nil, err
	}
	return result, nil
}
