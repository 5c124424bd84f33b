package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mmdatafocus/inventory_backend/models"
)

func stockViewHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		rows, err := models.GetStockView(c.Request.Context())
		if err != nil {
			respondError(c, "Stock", "stockViewHandler", err)
			return
		}
		c.JSON(http.StatusOK, rows)
	}
}

func productStockHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		result, err := models.GetProductStock(c.Request.Context(), id)
		if err != nil {
			respondError(c, "Stock", "productStockHandler", err)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}
