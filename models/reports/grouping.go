package reports

import (
	"github.com/shopspring/decimal"
)

const (
	unknownName     = "Unknown"
	unknownCategory = "N/A"
	subtotalSuffix  = " (Subtotal)"
)

// groupKey buckets report rows. Rows are grouped per day and counterparty, so
// two invoices for one customer on one day share a subtotal.
type groupKey struct {
	Date string
	Name string
}

type rowGroup[T any] struct {
	rows  []T
	total decimal.Decimal
}

// groupWithSubtotals emits each group's rows in their original order followed by
// one subtotal row. Groups appear in the order their first row was seen.
func groupWithSubtotals[T any](
	rows []T,
	keyOf func(T) groupKey,
	amountOf func(T) decimal.Decimal,
	subtotal func(groupKey, decimal.Decimal) T,
) []T {
	var order []groupKey
	groups := make(map[groupKey]*rowGroup[T])
	for _, r := range rows {
		k := keyOf(r)
		g, ok := groups[k]
		if !ok {
			g = &rowGroup[T]{total: decimal.Zero}
			groups[k] = g
			order = append(order, k)
		}
		g.rows = append(g.rows, r)
		g.total = g.total.Add(amountOf(r))
	}

	result := make([]T, 0, len(rows)+len(order))
	for _, k := range order {
		g := groups[k]
		result = append(result, g.rows...)
		result = append(result, subtotal(k, g.total))
	}
	return result
}

func nameOrUnknown(name *string) string {
	if name == nil || *name == "" {
		return unknownName
	}
	return *name
}

func categoryOrNA(category *string) string {
	if category == nil || *category == "" {
		return unknownCategory
	}
	return *category
}

func decimalPtr(d decimal.Decimal) *decimal.Decimal {
	return &d
}
