package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mmdatafocus/inventory_backend/models"
)

func listCustomersHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var name *string
		if v := c.Query("name"); v != "" {
			name = &v
		}
		results, err := models.GetCustomers(c.Request.Context(), name)
		if err != nil {
			respondError(c, "Customers", "listCustomersHandler", err)
			return
		}
		c.JSON(http.StatusOK, results)
	}
}

func getCustomerHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		result, err := models.GetCustomer(c.Request.Context(), id)
		if err != nil {
			respondError(c, "Customers", "getCustomerHandler", err)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

func createCustomerHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.NewCustomer
		if !bindInput(c, &input) {
			return
		}
		result, err := models.CreateCustomer(c.Request.Context(), &input)
		if err != nil {
			respondError(c, "Customers", "createCustomerHandler", err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"ok": true, "message": "Customer added successfully", "customer": result})
	}
}

func updateCustomerHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		var input models.NewCustomer
		if !bindInput(c, &input) {
			return
		}
		result, err := models.UpdateCustomer(c.Request.Context(), id, &input)
		if err != nil {
			respondError(c, "Customers", "updateCustomerHandler", err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true, "message": "Customer updated successfully", "customer": result})
	}
}

func deleteCustomerHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		if _, err := models.DeleteCustomer(c.Request.Context(), id); err != nil {
			respondError(c, "Customers", "deleteCustomerHandler", err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true, "message": "Customer deleted successfully"})
	}
}
