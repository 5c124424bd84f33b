package main

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mmdatafocus/inventory_backend/models"
	"github.com/mmdatafocus/inventory_backend/models/reports"
)

func listSalesHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		results, err := models.GetSales(c.Request.Context())
		if err != nil {
			respondError(c, "Sales", "listSalesHandler", err)
			return
		}
		c.JSON(http.StatusOK, results)
	}
}

func getSaleHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		result, err := models.GetSale(c.Request.Context(), id)
		if err != nil {
			respondError(c, "Sales", "getSaleHandler", err)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

func createSaleHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.NewSale
		if !bindInput(c, &input) {
			return
		}
		result, err := models.CreateSale(c.Request.Context(), &input)
		if err != nil {
			respondError(c, "Sales", "createSaleHandler", err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"ok": true, "message": "Sale added successfully", "salesMaster": result})
	}
}

func updateSaleHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		var input models.NewSale
		if !bindInput(c, &input) {
			return
		}
		result, err := models.UpdateSale(c.Request.Context(), id, &input)
		if err != nil {
			respondError(c, "Sales", "updateSaleHandler", err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true, "message": "Sale updated successfully", "salesMaster": result})
	}
}

func deleteSaleHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		if _, err := models.DeleteSale(c.Request.Context(), id); err != nil {
			respondError(c, "Sales", "deleteSaleHandler", err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true, "message": "Sale deleted successfully"})
	}
}

func printSaleHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		pdf, err := reports.GetSalesBillPdf(c.Request.Context(), id)
		if err != nil {
			respondError(c, "Sales", "printSaleHandler", err)
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf("inline; filename=sales-bill-%d.pdf", id))
		c.Data(http.StatusOK, "application/pdf", pdf)
	}
}

func saleDetailsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		results, err := models.GetSalesDetails(c.Request.Context(), id)
		if err != nil {
			respondError(c, "Sales", "saleDetailsHandler", err)
			return
		}
		c.JSON(http.StatusOK, results)
	}
}
