package handlers

import (
	"net/http"
	"os"

	"go-chain-ops/internal/ai"

	"github.com/gin-gonic/gin"
)

type AskRequest struct {
	Message string `json:"message" binding:"required"`
}

func AskAssistant(c *gin.Context) {
	var req AskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Message is required"})
		return
	}

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server missing Gemini API key"})
		return
	}

	response, err := ai.RunAgent(req.Message, apiKey)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"reply": response})
}
