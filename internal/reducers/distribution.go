package reducers

import (
	"errors"
	"time"

	"go-chain-ops/internal/models"

	"gorm.io/gorm"
)

// RequestDistribution opens a Pending transfer between two distinct
// outlets.
func RequestDistribution(db *gorm.DB, fromOutletID, toOutletID, ingredientID uint64, quantity int64, date time.Time) (*models.Distribution, error) {
	if fromOutletID == toOutletID {
		return nil, validation("from_outlet_id and to_outlet_id must differ")
	}
	dist := models.Distribution{
		FromOutletID: fromOutletID,
		ToOutletID:   toOutletID,
		IngredientID: ingredientID,
		Quantity:     quantity,
		Status:       models.DistributionPending,
		Date:         date,
	}
	if err := db.Create(&dist).Error; err != nil {
		return nil, err
	}
	return &dist, nil
}

// MarkDistributionDelivered jumps straight to Delivered. There is no
// InTransit transition in the operation set.
func MarkDistributionDelivered(db *gorm.DB, distributionID uint64) error {
	var dist models.Distribution
	if err := db.First(&dist, distributionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound("Distribution not found")
		}
		return err
	}
	dist.Status = models.DistributionDelivered
	return db.Save(&dist).Error
}
