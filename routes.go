package main

import (
	"github.com/gin-gonic/gin"
)

func registerRoutes(api *gin.RouterGroup) {
	customers := api.Group("/customers")
	customers.GET("", listCustomersHandler())
	customers.POST("", createCustomerHandler())
	customers.GET("/:id", getCustomerHandler())
	customers.PUT("/:id", updateCustomerHandler())
	customers.DELETE("/:id", deleteCustomerHandler())

	suppliers := api.Group("/suppliers")
	suppliers.GET("", listSuppliersHandler())
	suppliers.POST("", createSupplierHandler())
	suppliers.GET("/:id", getSupplierHandler())
	suppliers.PUT("/:id", updateSupplierHandler())
	suppliers.DELETE("/:id", deleteSupplierHandler())

	products := api.Group("/products")
	products.GET("", listProductsHandler())
	products.POST("", createProductHandler())
	products.GET("/:id", getProductHandler())
	products.PUT("/:id", updateProductHandler())
	products.DELETE("/:id", deleteProductHandler())

	stocks := api.Group("/stocks")
	stocks.GET("", stockViewHandler())
	stocks.GET("/product/:id", productStockHandler())

	sales := api.Group("/sales")
	sales.GET("", listSalesHandler())
	sales.POST("", createSaleHandler())
	sales.GET("/:id", getSaleHandler())
	sales.PUT("/:id", updateSaleHandler())
	sales.DELETE("/:id", deleteSaleHandler())
	sales.GET("/:id/details", saleDetailsHandler())
	sales.GET("/:id/print", printSaleHandler())

	purchases := api.Group("/purchases")
	purchases.GET("", listPurchasesHandler())
	purchases.POST("", createPurchaseHandler())
	purchases.GET("/:id", getPurchaseHandler())
	purchases.PUT("/:id", updatePurchaseHandler())
	purchases.DELETE("/:id", deletePurchaseHandler())
	purchases.GET("/:id/details", purchaseDetailsHandler())

	reports := api.Group("/reports")
	reports.GET("/sales-report", salesReportHandler())
	reports.GET("/purchase-report", purchaseReportHandler())
	reports.GET("/sales-summary", salesSummaryHandler())
	reports.GET("/purchase-summary", purchaseSummaryHandler())
	reports.GET("/summary", dashboardSummaryHandler())
	reports.GET("/monthly-sales", monthlySalesHandler())
	reports.GET("/top-products", topProductsHandler())
	reports.GET("/stock-distribution", stockDistributionHandler())
	reports.GET("/:kind/export", exportReportHandler())
}
