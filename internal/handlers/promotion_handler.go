package handlers

import (
	"net/http"
	"time"

	"go-chain-ops/internal/database"
	"go-chain-ops/internal/models"
	"go-chain-ops/internal/reducers"

	"github.com/gin-gonic/gin"
)

type PromotionRequest struct {
	Name          string                 `json:"name" binding:"required"`
	DiscountType  models.DiscountType    `json:"discount_type" binding:"required"`
	DiscountValue int64                  `json:"discount_value"`
	StartDate     time.Time              `json:"start_date" binding:"required"`
	EndDate       time.Time              `json:"end_date" binding:"required"`
	Status        models.PromotionStatus `json:"status" binding:"required"`
}

func GetPromotions(c *gin.Context) {
	var promotions []models.Promotion
	if err := database.DB.Find(&promotions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch promotions"})
		return
	}
	c.JSON(http.StatusOK, promotions)
}

func CreatePromotion(c *gin.Context) {
	var req PromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	promo, err := reducers.CreatePromotion(database.DB, req.Name, req.DiscountType, req.DiscountValue, req.StartDate, req.EndDate, req.Status)
	if err != nil {
		reducerError(c, err)
		return
	}
	c.JSON(http.StatusCreated, promo)
}
