package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mmdatafocus/inventory_backend/models"
)

func listSuppliersHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		results, err := models.GetSuppliers(c.Request.Context())
		if err != nil {
			respondError(c, "Suppliers", "listSuppliersHandler", err)
			return
		}
		c.JSON(http.StatusOK, results)
	}
}

func getSupplierHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		result, err := models.GetSupplier(c.Request.Context(), id)
		if err != nil {
			respondError(c, "Suppliers", "getSupplierHandler", err)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

func createSupplierHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.NewSupplier
		if !bindInput(c, &input) {
			return
		}
		result, err := models.CreateSupplier(c.Request.Context(), &input)
		if err != nil {
			respondError(c, "Suppliers", "createSupplierHandler", err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"ok": true, "message": "Supplier added successfully", "supplier": result})
	}
}

func updateSupplierHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		var input models.NewSupplier
		if !bindInput(c, &input) {
			return
		}
		result, err := models.UpdateSupplier(c.Request.Context(), id, &input)
		if err != nil {
			respondError(c, "Suppliers", "updateSupplierHandler", err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true, "message": "Supplier updated successfully", "supplier": result})
	}
}

func deleteSupplierHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		if _, err := models.DeleteSupplier(c.Request.Context(), id); err != nil {
			respondError(c, "Suppliers", "deleteSupplierHandler", err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true, "message": "Supplier deleted successfully"})
	}
}
