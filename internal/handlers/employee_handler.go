package handlers

import (
	"net/http"

	"go-chain-ops/internal/database"
	"go-chain-ops/internal/models"
	"go-chain-ops/internal/reducers"

	"github.com/gin-gonic/gin"
)

type EmployeeRequest struct {
	Name     string                  `json:"name" binding:"required"`
	Position string                  `json:"position" binding:"required"`
	OutletID uint64                  `json:"outlet_id" binding:"required"`
	Salary   int64                   `json:"salary"`
	Status   models.EmploymentStatus `json:"status" binding:"required"`
}

type EmployeeStatusRequest struct {
	Status models.EmploymentStatus `json:"status" binding:"required"`
}

func GetEmployees(c *gin.Context) {
	var employees []models.Employee
	if err := database.DB.Find(&employees).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch employees"})
		return
	}
	c.JSON(http.StatusOK, employees)
}

func CreateEmployee(c *gin.Context) {
	var req EmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	emp, err := reducers.CreateEmployee(database.DB, req.Name, req.Position, req.OutletID, req.Salary, req.Status)
	if err != nil {
		reducerError(c, err)
		return
	}
	c.JSON(http.StatusCreated, emp)
}

func UpdateEmployeeStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req EmployeeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	if err := reducers.UpdateEmployeeStatus(database.DB, id, req.Status); err != nil {
		reducerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Employee status updated"})
}
