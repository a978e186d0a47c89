package handlers

import (
	"net/http"

	"go-chain-ops/internal/database"
	"go-chain-ops/internal/models"
	"go-chain-ops/internal/reducers"

	"github.com/gin-gonic/gin"
)

type ProductRequest struct {
	Name     string `json:"name" binding:"required"`
	Category string `json:"category" binding:"required"`
	Price    int64  `json:"price"` // minor units
	OutletID uint64 `json:"outlet_id" binding:"required"`
}

type IngredientRequest struct {
	Name     string                  `json:"name" binding:"required"`
	Unit     string                  `json:"unit" binding:"required"`
	MinStock int64                   `json:"min_stock"`
	Stock    int64                   `json:"stock"`
	OutletID uint64                  `json:"outlet_id" binding:"required"`
	Status   models.IngredientStatus `json:"status" binding:"required"`
}

type StockRequest struct {
	NewStock int64 `json:"new_stock"`
}

func GetProducts(c *gin.Context) {
	var products []models.Product
	if err := database.DB.Find(&products).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
		return
	}
	c.JSON(http.StatusOK, products)
}

func GetIngredients(c *gin.Context) {
	var ingredients []models.Ingredient
	if err := database.DB.Find(&ingredients).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch ingredients"})
		return
	}
	c.JSON(http.StatusOK, ingredients)
}

func AddProduct(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	product, err := reducers.AddProduct(database.DB, req.Name, req.Category, req.Price, req.OutletID)
	if err != nil {
		reducerError(c, err)
		return
	}
	c.JSON(http.StatusCreated, product)
}

func AddIngredient(c *gin.Context) {
	var req IngredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	ing, err := reducers.AddIngredient(database.DB, req.Name, req.Unit, req.MinStock, req.Stock, req.OutletID, req.Status)
	if err != nil {
		reducerError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ing)
}

// --- PUT: Overwrite an ingredient's stock counter ---
func UpdateInventory(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req StockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	if err := reducers.UpdateInventory(database.DB, id, req.NewStock); err != nil {
		reducerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Stock updated"})
}
