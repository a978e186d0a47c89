package handlers

import (
	"net/http"

	"go-chain-ops/internal/database"
	"go-chain-ops/internal/models"
	"go-chain-ops/internal/reducers"

	"github.com/gin-gonic/gin"
)

type CandidateRequest struct {
	Name     string `json:"name" binding:"required"`
	Position string `json:"position" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
	Email    string `json:"email" binding:"required"`
}

type CandidateStatusRequest struct {
	Status models.CandidateStatus `json:"status" binding:"required"`
}

func GetCandidates(c *gin.Context) {
	var candidates []models.Candidate
	if err := database.DB.Find(&candidates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch candidates"})
		return
	}
	c.JSON(http.StatusOK, candidates)
}

func AddCandidate(c *gin.Context) {
	var req CandidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	candidate, err := reducers.AddCandidate(database.DB, req.Name, req.Position, req.Phone, req.Email)
	if err != nil {
		reducerError(c, err)
		return
	}
	c.JSON(http.StatusCreated, candidate)
}

func UpdateCandidateStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req CandidateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	if err := reducers.UpdateCandidateStatus(database.DB, id, req.Status); err != nil {
		reducerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Candidate status updated"})
}
