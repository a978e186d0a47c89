package handlers

import (
	"net/http"
	"time"

	"go-chain-ops/internal/database"
	"go-chain-ops/internal/models"
	"go-chain-ops/internal/reducers"

	"github.com/gin-gonic/gin"
)

type ChecklistRequest struct {
	OutletID      uint64    `json:"outlet_id" binding:"required"`
	ChecklistName string    `json:"checklist_name" binding:"required"`
	Date          time.Time `json:"date" binding:"required"`
}

type ChecklistStatusRequest struct {
	IsCompleted *bool `json:"is_completed" binding:"required"`
}

type OpenShiftRequest struct {
	OutletID    uint64    `json:"outlet_id" binding:"required"`
	EmployeeID  uint64    `json:"employee_id" binding:"required"`
	ShiftStart  time.Time `json:"shift_start" binding:"required"`
	InitialCash int64     `json:"initial_cash"` // minor units
}

func GetChecklists(c *gin.Context) {
	var checklists []models.DailyChecklist
	if err := database.DB.Find(&checklists).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch checklists"})
		return
	}
	c.JSON(http.StatusOK, checklists)
}

func CreateDailyChecklist(c *gin.Context) {
	var req ChecklistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	checklist, err := reducers.CreateDailyChecklist(database.DB, req.OutletID, req.ChecklistName, req.Date)
	if err != nil {
		reducerError(c, err)
		return
	}
	c.JSON(http.StatusCreated, checklist)
}

func UpdateChecklistStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req ChecklistStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	if err := reducers.UpdateChecklistStatus(database.DB, id, *req.IsCompleted); err != nil {
		reducerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Checklist updated"})
}

func GetShiftReports(c *gin.Context) {
	var reports []models.ShiftReport
	if err := database.DB.Find(&reports).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch shift reports"})
		return
	}
	c.JSON(http.StatusOK, reports)
}

func OpenShift(c *gin.Context) {
	var req OpenShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	shift, err := reducers.OpenShift(database.DB, req.OutletID, req.EmployeeID, req.ShiftStart, req.InitialCash)
	if err != nil {
		reducerError(c, err)
		return
	}
	c.JSON(http.StatusCreated, shift)
}
