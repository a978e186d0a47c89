package handlers

import (
	"net/http"

	"go-chain-ops/internal/database"
	"go-chain-ops/internal/models"

	"github.com/gin-gonic/gin"
)

// ReportData is the dashboard payload. All amounts in minor units.
type ReportData struct {
	TotalRevenue int64 `json:"total_revenue"`
	TotalOrders  int64 `json:"total_orders"`
	TopSelling   []struct {
		ProductName string `json:"product_name"`
		Sold        int64  `json:"sold"`
		Revenue     int64  `json:"revenue"`
	} `json:"top_selling"`
	LowStock    []models.Ingredient `json:"low_stock"`
	RecentSales []models.Sale       `json:"recent_sales"`
}

// --- GET: /api/reports ---
func GetSalesReport(c *gin.Context) {
	var data ReportData

	// 1. Total revenue, all time
	err := database.DB.Model(&models.Sale{}).
		Select("COALESCE(SUM(total), 0)").
		Scan(&data.TotalRevenue).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to calculate revenue"})
		return
	}

	// 2. Order count
	err = database.DB.Model(&models.Sale{}).Count(&data.TotalOrders).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count orders"})
		return
	}

	// 3. Top 5 best sellers
	err = database.DB.Table("sale_items").
		Select("products.name as product_name, SUM(sale_items.quantity) as sold, SUM(sale_items.quantity * sale_items.price) as revenue").
		Joins("JOIN products ON sale_items.product_id = products.id").
		Group("products.name").
		Order("sold desc").
		Limit(5).
		Scan(&data.TopSelling).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch top selling items"})
		return
	}

	// 4. Ingredients at or below their minimum
	data.LowStock, err = database.LowStockIngredients(database.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch low stock"})
		return
	}

	// 5. Last 10 sales, newest first
	err = database.DB.Preload("Items").Order("date desc").Limit(10).Find(&data.RecentSales).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch recent sales"})
		return
	}

	c.JSON(http.StatusOK, data)
}
