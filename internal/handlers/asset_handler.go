package handlers

import (
	"net/http"
	"time"

	"go-chain-ops/internal/database"
	"go-chain-ops/internal/models"
	"go-chain-ops/internal/reducers"

	"github.com/gin-gonic/gin"
)

type AssetRequest struct {
	OutletID        uint64    `json:"outlet_id" binding:"required"`
	Name            string    `json:"name" binding:"required"`
	Category        string    `json:"category" binding:"required"`
	LastMaintenance time.Time `json:"last_maintenance" binding:"required"`
}

type AssetStatusRequest struct {
	Status          models.AssetStatus `json:"status" binding:"required"`
	LastMaintenance time.Time          `json:"last_maintenance" binding:"required"`
}

func GetAssets(c *gin.Context) {
	var assets []models.Asset
	if err := database.DB.Find(&assets).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch assets"})
		return
	}
	c.JSON(http.StatusOK, assets)
}

func AddAsset(c *gin.Context) {
	var req AssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	asset, err := reducers.AddAsset(database.DB, req.OutletID, req.Name, req.Category, req.LastMaintenance)
	if err != nil {
		reducerError(c, err)
		return
	}
	c.JSON(http.StatusCreated, asset)
}

func UpdateAssetStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req AssetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	if err := reducers.UpdateAssetStatus(database.DB, id, req.Status, req.LastMaintenance); err != nil {
		reducerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Asset status updated"})
}
