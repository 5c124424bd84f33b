package main

import (
	"context"
	"fmt"
	"net/http"
	"slices"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mmdatafocus/inventory_backend/models/reports"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// dateRangeReportHandler serves a from/to filtered report as {ok, data}.
func dateRangeReportHandler[T any](funcName string, load func(context.Context, *reports.DateRange) (T, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		dateRange, err := reports.ParseDateRange(c.Query("from"), c.Query("to"))
		if err != nil {
			respondError(c, "Reports", funcName, err)
			return
		}
		data, err := load(c.Request.Context(), dateRange)
		if err != nil {
			respondError(c, "Reports", funcName, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true, "data": data})
	}
}

// dashboardHandler serves an unfiltered rollup as plain JSON.
func dashboardHandler[T any](funcName string, load func(context.Context) (T, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		data, err := load(c.Request.Context())
		if err != nil {
			respondError(c, "Reports", funcName, err)
			return
		}
		c.JSON(http.StatusOK, data)
	}
}

func salesReportHandler() gin.HandlerFunc {
	return dateRangeReportHandler("salesReportHandler", reports.GetSalesReport)
}

func purchaseReportHandler() gin.HandlerFunc {
	return dateRangeReportHandler("purchaseReportHandler", reports.GetPurchaseReport)
}

func salesSummaryHandler() gin.HandlerFunc {
	return dateRangeReportHandler("salesSummaryHandler", reports.GetSalesSummary)
}

func purchaseSummaryHandler() gin.HandlerFunc {
	return dateRangeReportHandler("purchaseSummaryHandler", reports.GetPurchaseSummary)
}

func dashboardSummaryHandler() gin.HandlerFunc {
	return dashboardHandler("dashboardSummaryHandler", reports.GetDashboardSummary)
}

func monthlySalesHandler() gin.HandlerFunc {
	return dashboardHandler("monthlySalesHandler", reports.GetMonthlySales)
}

func topProductsHandler() gin.HandlerFunc {
	return dashboardHandler("topProductsHandler", reports.GetTopProducts)
}

func stockDistributionHandler() gin.HandlerFunc {
	return dashboardHandler("stockDistributionHandler", reports.GetStockDistribution)
}

func exportReportHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		kind := c.Param("kind")
		if !slices.Contains(reports.ReportKinds, kind) {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": fmt.Sprintf("unknown report %q", kind)})
			return
		}
		dateRange, err := reports.ParseDateRange(c.Query("from"), c.Query("to"))
		if err != nil {
			respondError(c, "Reports", "exportReportHandler", err)
			return
		}
		f, err := reports.BuildReportWorkbook(c.Request.Context(), kind, dateRange)
		if err != nil {
			respondError(c, "Reports", "exportReportHandler", err)
			return
		}
		defer f.Close()

		filename := fmt.Sprintf("%s-%s.xlsx", kind, time.Now().Format("20060102"))
		c.Header("Content-Type", xlsxContentType)
		c.Header("Content-Disposition", "attachment; filename="+filename)
		c.Status(http.StatusOK)
		if err := f.Write(c.Writer); err != nil {
			_ = c.Error(err)
		}
	}
}
