package handlers

import (
	"net/http"

	"go-chain-ops/internal/auth"
	"go-chain-ops/internal/database"
	"go-chain-ops/internal/models"
	"go-chain-ops/internal/reducers"

	"github.com/gin-gonic/gin"
)

type RegisterUserRequest struct {
	Username string          `json:"username" binding:"required"`
	Role     models.UserRole `json:"role" binding:"required"`
	OutletID *uint64         `json:"outlet_id"`
}

// --- POST: /auth/identity ---
// ConnectIdentity mints a fresh principal identity and a bearer
// token for it, the way the platform hands identities to anonymous
// connections. Registration as a User is a separate, one-time call.
func ConnectIdentity(c *gin.Context) {
	identity := auth.NewIdentity()

	token, err := auth.GenerateToken(identity)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"identity": identity,
		"token":    token,
	})
}

// --- POST: /api/users ---
// RegisterUser creates the User row for the calling identity. At
// most one row per identity, ever.
func RegisterUser(c *gin.Context) {
	var req RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	identity := c.MustGet("identity").(string)

	user, err := reducers.CreateUser(database.DB, identity, req.Username, req.Role, req.OutletID)
	if err != nil {
		reducerError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

// --- GET: /api/users/me ---
func GetCurrentUser(c *gin.Context) {
	identity := c.MustGet("identity").(string)

	var user models.User
	if err := database.DB.First(&user, "id = ?", identity).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	c.JSON(http.StatusOK, user)
}
