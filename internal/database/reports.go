package database

import (
	"time"

	"go-chain-ops/internal/models"

	"gorm.io/gorm"
)

// SalesReportResult holds the aggregates the dashboard and the
// assistant both need. Revenue is in minor units.
type SalesReportResult struct {
	TotalRevenue int64
	TotalCount   int64
}

// GetSalesReport calculates sales within a specific date range
func GetSalesReport(db *gorm.DB, start, end time.Time) (*SalesReportResult, error) {
	var result SalesReportResult

	// COALESCE ensures we get 0 instead of NULL if no sales exist
	err := db.Model(&models.Sale{}).
		Where("date BETWEEN ? AND ?", start, end).
		Select("COALESCE(SUM(total), 0)").
		Scan(&result.TotalRevenue).Error
	if err != nil {
		return nil, err
	}

	err = db.Model(&models.Sale{}).
		Where("date BETWEEN ? AND ?", start, end).
		Count(&result.TotalCount).Error
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// LowStockIngredients lists every ingredient at or below its minimum.
func LowStockIngredients(db *gorm.DB) ([]models.Ingredient, error) {
	var ingredients []models.Ingredient
	err := db.Where("stock <= min_stock").Find(&ingredients).Error
	return ingredients, err
}
