package reducers

import (
	"time"

	"go-chain-ops/internal/models"

	"gorm.io/gorm"
)

// CreatePromotion stores the promotion exactly as given. The status
// is whatever the caller says; it is never derived from the dates.
func CreatePromotion(db *gorm.DB, name string, discountType models.DiscountType, discountValue int64, startDate, endDate time.Time, status models.PromotionStatus) (*models.Promotion, error) {
	if !discountType.Valid() {
		return nil, validation("Invalid discount type")
	}
	if !status.Valid() {
		return nil, validation("Invalid promotion status")
	}
	promo := models.Promotion{
		Name:          name,
		DiscountType:  discountType,
		DiscountValue: discountValue,
		StartDate:     startDate,
		EndDate:       endDate,
		Status:        status,
	}
	if err := db.Create(&promo).Error; err != nil {
		return nil, err
	}
	return &promo, nil
}
