package reducers

import (
	"errors"
	"time"

	"go-chain-ops/internal/models"

	"gorm.io/gorm"
)

// AddAsset registers equipment at an outlet, starting InUse.
func AddAsset(db *gorm.DB, outletID uint64, name, category string, lastMaintenance time.Time) (*models.Asset, error) {
	asset := models.Asset{
		OutletID:        outletID,
		Name:            name,
		Category:        category,
		Status:          models.AssetInUse,
		LastMaintenance: lastMaintenance,
	}
	if err := db.Create(&asset).Error; err != nil {
		return nil, err
	}
	return &asset, nil
}

func UpdateAssetStatus(db *gorm.DB, assetID uint64, status models.AssetStatus, lastMaintenance time.Time) error {
	if !status.Valid() {
		return validation("Invalid asset status")
	}
	var asset models.Asset
	if err := db.First(&asset, assetID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound("Asset not found")
		}
		return err
	}
	asset.Status = status
	asset.LastMaintenance = lastMaintenance
	return db.Save(&asset).Error
}
