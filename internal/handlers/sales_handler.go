package handlers

import (
	"net/http"
	"time"

	"go-chain-ops/internal/database"
	"go-chain-ops/internal/models"
	"go-chain-ops/internal/reducers"

	"github.com/gin-gonic/gin"
)

type SaleRequest struct {
	OutletID      uint64                 `json:"outlet_id" binding:"required"`
	Items         []models.SaleItemInput `json:"items"`
	PaymentMethod models.PaymentMethod   `json:"payment_method" binding:"required"`
	Date          time.Time              `json:"date" binding:"required"`
}

func GetSales(c *gin.Context) {
	var sales []models.Sale
	if err := database.DB.Preload("Items").Find(&sales).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch sales"})
		return
	}
	c.JSON(http.StatusOK, sales)
}

// --- POST: Record a sale with its line items ---
func RecordSale(c *gin.Context) {
	var req SaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	sale, err := reducers.RecordSale(database.DB, req.OutletID, req.Items, req.PaymentMethod, req.Date)
	if err != nil {
		reducerError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Sale recorded",
		"sale_id": sale.ID,
		"total":   sale.Total,
	})
}

func GetCashFlow(c *gin.Context) {
	var entries []models.CashFlow
	if err := database.DB.Find(&entries).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cash flow"})
		return
	}
	c.JSON(http.StatusOK, entries)
}
