package models

import (
	"testing"

	"github.com/shopspring/decimal"
)

func dec(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func TestClosingStock(t *testing.T) {
	cases := []struct {
		opening, inward, outward int64
		expected                 int64
	}{
		{50, 20, 10, 60},
		{5, 0, 0, 5},
		{0, 0, 3, -3},
		{10, 7, 17, 0},
	}
	for _, tc := range cases {
		got := ClosingStock(dec(tc.opening), dec(tc.inward), dec(tc.outward))
		if !got.Equal(dec(tc.expected)) {
			t.Fatalf("ClosingStock(%d,%d,%d) expected %d, got %s", tc.opening, tc.inward, tc.outward, tc.expected, got)
		}
	}
}

func TestBuildStockRows_NumbersFromOneAndDefaultsMissingMovement(t *testing.T) {
	products := []*Product{
		{ID: 4, Name: "Notebook", Qty: dec(50)},
		{ID: 9, Name: "Gel Pen", Qty: dec(12)},
		{ID: 2, Name: "Desk Lamp", Qty: dec(0)},
	}
	inward := map[int]decimal.Decimal{4: dec(20), 2: dec(5)}
	outward := map[int]decimal.Decimal{4: dec(10), 2: dec(1)}

	rows := BuildStockRows(products, inward, outward)
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}

	expected := []struct {
		srNo      int
		productId int
		closing   int64
	}{
		{1, 4, 60},
		{2, 9, 12},
		{3, 2, 4},
	}
	for i, e := range expected {
		r := rows[i]
		if r.SrNo != e.srNo || r.ProductId != e.productId {
			t.Fatalf("row %d: expected srNo=%d productId=%d, got %+v", i, e.srNo, e.productId, r)
		}
		if !r.ClosingStock.Equal(dec(e.closing)) {
			t.Fatalf("row %d: expected closing %d, got %s", i, e.closing, r.ClosingStock)
		}
	}

	// no purchase or sale history: closing equals opening
	pen := rows[1]
	if !pen.PurchaseInward.IsZero() || !pen.SalesOutward.IsZero() || !pen.ClosingStock.Equal(pen.OpeningStock) {
		t.Fatalf("expected untouched product to close at opening, got %+v", pen)
	}
}

func TestBuildStockRows_EmptyProducts(t *testing.T) {
	rows := BuildStockRows(nil, nil, nil)
	if rows == nil || len(rows) != 0 {
		t.Fatalf("expected empty non-nil rows, got %#v", rows)
	}
}
