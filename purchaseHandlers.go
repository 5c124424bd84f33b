package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mmdatafocus/inventory_backend/models"
)

func listPurchasesHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		results, err := models.GetPurchases(c.Request.Context())
		if err != nil {
			respondError(c, "Purchases", "listPurchasesHandler", err)
			return
		}
		c.JSON(http.StatusOK, results)
	}
}

func getPurchaseHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		result, err := models.GetPurchase(c.Request.Context(), id)
		if err != nil {
			respondError(c, "Purchases", "getPurchaseHandler", err)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

func createPurchaseHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.NewPurchase
		if !bindInput(c, &input) {
			return
		}
		result, err := models.CreatePurchase(c.Request.Context(), &input)
		if err != nil {
			respondError(c, "Purchases", "createPurchaseHandler", err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"ok": true, "message": "Purchase added successfully", "purchaseMaster": result})
	}
}

func updatePurchaseHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		var input models.NewPurchase
		if !bindInput(c, &input) {
			return
		}
		result, err := models.UpdatePurchase(c.Request.Context(), id, &input)
		if err != nil {
			respondError(c, "Purchases", "updatePurchaseHandler", err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true, "message": "Purchase updated successfully", "purchaseMaster": result})
	}
}

func deletePurchaseHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		if _, err := models.DeletePurchase(c.Request.Context(), id); err != nil {
			respondError(c, "Purchases", "deletePurchaseHandler", err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true, "message": "Purchase deleted successfully"})
	}
}

func purchaseDetailsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		results, err := models.GetPurchaseDetails(c.Request.Context(), id)
		if err != nil {
			respondError(c, "Purchases", "purchaseDetailsHandler", err)
			return
		}
		c.JSON(http.StatusOK, results)
	}
}
