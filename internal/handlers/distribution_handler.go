package handlers

import (
	"net/http"
	"time"

	"go-chain-ops/internal/database"
	"go-chain-ops/internal/models"
	"go-chain-ops/internal/reducers"

	"github.com/gin-gonic/gin"
)

type DistributionRequest struct {
	FromOutletID uint64    `json:"from_outlet_id" binding:"required"`
	ToOutletID   uint64    `json:"to_outlet_id" binding:"required"`
	IngredientID uint64    `json:"ingredient_id" binding:"required"`
	Quantity     int64     `json:"quantity"`
	Date         time.Time `json:"date" binding:"required"`
}

func GetDistributions(c *gin.Context) {
	var distributions []models.Distribution
	if err := database.DB.Find(&distributions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch distributions"})
		return
	}
	c.JSON(http.StatusOK, distributions)
}

func RequestDistribution(c *gin.Context) {
	var req DistributionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	dist, err := reducers.RequestDistribution(database.DB, req.FromOutletID, req.ToOutletID, req.IngredientID, req.Quantity, req.Date)
	if err != nil {
		reducerError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dist)
}

func MarkDistributionDelivered(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := reducers.MarkDistributionDelivered(database.DB, id); err != nil {
		reducerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Distribution marked delivered"})
}
