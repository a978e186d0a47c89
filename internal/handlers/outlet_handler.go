package handlers

import (
	"net/http"

	"go-chain-ops/internal/database"
	"go-chain-ops/internal/models"
	"go-chain-ops/internal/reducers"

	"github.com/gin-gonic/gin"
)

type OutletRequest struct {
	Name    string `json:"name" binding:"required"`
	Area    string `json:"area" binding:"required"`
	Address string `json:"address" binding:"required"`
}

type OutletUpdateRequest struct {
	Name    string              `json:"name" binding:"required"`
	Area    string              `json:"area" binding:"required"`
	Address string              `json:"address" binding:"required"`
	Status  models.OutletStatus `json:"status" binding:"required"`
}

// --- GET: List all outlets ---
func GetOutlets(c *gin.Context) {
	var outlets []models.Outlet
	if err := database.DB.Find(&outlets).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch outlets"})
		return
	}
	c.JSON(http.StatusOK, outlets)
}

// --- POST: Open a new outlet ---
func CreateOutlet(c *gin.Context) {
	var req OutletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	outlet, err := reducers.CreateOutlet(database.DB, req.Name, req.Area, req.Address)
	if err != nil {
		reducerError(c, err)
		return
	}
	c.JSON(http.StatusCreated, outlet)
}

// --- PUT: Full-field replace of an outlet ---
func UpdateOutlet(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req OutletUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	if err := reducers.UpdateOutlet(database.DB, id, req.Name, req.Area, req.Address, req.Status); err != nil {
		reducerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Outlet updated successfully"})
}

// --- DELETE: Remove an outlet (no cascade) ---
func DeleteOutlet(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := reducers.DeleteOutlet(database.DB, id); err != nil {
		reducerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Outlet deleted successfully"})
}
