package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mmdatafocus/inventory_backend/models"
)

func listProductsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		results, err := models.GetProducts(c.Request.Context())
		if err != nil {
			respondError(c, "Products", "listProductsHandler", err)
			return
		}
		c.JSON(http.StatusOK, results)
	}
}

func getProductHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		result, err := models.GetProduct(c.Request.Context(), id)
		if err != nil {
			respondError(c, "Products", "getProductHandler", err)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

func createProductHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.NewProduct
		if !bindInput(c, &input) {
			return
		}
		result, err := models.CreateProduct(c.Request.Context(), &input)
		if err != nil {
			respondError(c, "Products", "createProductHandler", err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"ok": true, "message": "Product added successfully", "product": result})
	}
}

func updateProductHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		var input models.NewProduct
		if !bindInput(c, &input) {
			return
		}
		result, err := models.UpdateProduct(c.Request.Context(), id, &input)
		if err != nil {
			respondError(c, "Products", "updateProductHandler", err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true, "message": "Product updated successfully", "product": result})
	}
}

func deleteProductHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		if _, err := models.DeleteProduct(c.Request.Context(), id); err != nil {
			respondError(c, "Products", "deleteProductHandler", err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true, "message": "Product deleted successfully"})
	}
}
