package handlers

import (
	"net/http"
	"strconv"

	"go-chain-ops/internal/reducers"

	"github.com/gin-gonic/gin"
)

// reducerError maps a reducer failure to the right HTTP status. The
// message goes through unchanged so callers see the same text the
// reducer produced.
func reducerError(c *gin.Context, err error) {
	switch {
	case reducers.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case reducers.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case reducers.IsConflict(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func pathID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return id, true
}
