package reports

import (
	"context"
	"fmt"

	"github.com/mmdatafocus/inventory_backend/models"
	"github.com/mmdatafocus/inventory_backend/utils"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

type ExcelExporter interface {
	GetCellValues() []interface{}
}

const (
	ReportKindSalesReport     = "sales-report"
	ReportKindPurchaseReport  = "purchase-report"
	ReportKindSalesSummary    = "sales-summary"
	ReportKindPurchaseSummary = "purchase-summary"
	ReportKindStock           = "stock"
)

var ReportKinds = []string{
	ReportKindSalesReport, ReportKindPurchaseReport,
	ReportKindSalesSummary, ReportKindPurchaseSummary, ReportKindStock,
}

type stockExportRow struct {
	*models.StockViewRow
}

func (r stockExportRow) GetCellValues() []interface{} {
	return []interface{}{
		r.SrNo, r.ProductName,
		r.OpeningStock.InexactFloat64(), r.PurchaseInward.InexactFloat64(),
		r.SalesOutward.InexactFloat64(), r.ClosingStock.InexactFloat64(),
	}
}

var stockHeadings = []string{"Sr No", "Product", "Opening Stock", "Purchase Inward", "Sales Outward", "Closing Stock"}

// blank cell for subtotal columns
func cellDecimal(d *decimal.Decimal) interface{} {
	if d == nil {
		return ""
	}
	return d.InexactFloat64()
}

func toExporters[T ExcelExporter](rows []T) []ExcelExporter {
	result := make([]ExcelExporter, 0, len(rows))
	for _, r := range rows {
		result = append(result, r)
	}
	return result
}

// collectReport loads one report kind as sheet name, headings and rows.
func collectReport(ctx context.Context, kind string, dateRange *DateRange) (string, []string, []ExcelExporter, error) {
	switch kind {
	case ReportKindSalesReport:
		rows, err := GetSalesReport(ctx, dateRange)
		return "Sales Report", salesReportHeadings, toExporters(rows), err
	case ReportKindPurchaseReport:
		rows, err := GetPurchaseReport(ctx, dateRange)
		return "Purchase Report", purchaseReportHeadings, toExporters(rows), err
	case ReportKindSalesSummary:
		rows, err := GetSalesSummary(ctx, dateRange)
		return "Sales Summary", salesSummaryHeadings, toExporters(rows), err
	case ReportKindPurchaseSummary:
		rows, err := GetPurchaseSummary(ctx, dateRange)
		return "Purchase Summary", purchaseSummaryHeadings, toExporters(rows), err
	case ReportKindStock:
		rows, err := models.GetStockView(ctx)
		if err != nil {
			return "", nil, nil, err
		}
		exporters := make([]ExcelExporter, 0, len(rows))
		for _, r := range rows {
			exporters = append(exporters, stockExportRow{r})
		}
		return "Stock", stockHeadings, exporters, nil
	}
	return "", nil, nil, utils.NewValidationError(fmt.Sprintf("unknown report %q", kind))
}

// BuildReportWorkbook renders one report kind into a single-sheet workbook.
func BuildReportWorkbook(ctx context.Context, kind string, dateRange *DateRange) (*excelize.File, error) {
	sheetName, headings, data, err := collectReport(ctx, kind, dateRange)
	if err != nil {
		return nil, err
	}
	return buildWorkbook(sheetName, headings, data)
}

func buildWorkbook(sheetName string, headings []string, data []ExcelExporter) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}

	// Add headers
	for i, h := range headings {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return nil, err
		}
	}
	if len(headings) > 0 {
		lastHeading, _ := excelize.CoordinatesToCellName(len(headings), 1)
		if err := f.SetCellStyle(sheetName, "A1", lastHeading, headerStyle); err != nil {
			return nil, err
		}
	}

	// Add data
	for rowIdx, d := range data {
		for colIdx, value := range d.GetCellValues() {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return nil, err
			}
		}
	}
	return f, nil
}

// ExportReportFile saves the workbook for kind at filename.
func ExportReportFile(ctx context.Context, filename string, kind string, dateRange *DateRange) error {
	f, err := BuildReportWorkbook(ctx, kind, dateRange)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.SaveAs(filename)
}
