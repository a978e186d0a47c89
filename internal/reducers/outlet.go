package reducers

import (
	"errors"

	"go-chain-ops/internal/models"

	"gorm.io/gorm"
)

// CreateOutlet inserts a new outlet with status Open. Never fails on
// input.
func CreateOutlet(db *gorm.DB, name, area, address string) (*models.Outlet, error) {
	outlet := models.Outlet{
		Name:    name,
		Area:    area,
		Address: address,
		Status:  models.OutletOpen,
	}
	if err := db.Create(&outlet).Error; err != nil {
		return nil, err
	}
	return &outlet, nil
}

// UpdateOutlet replaces every field of an existing outlet.
func UpdateOutlet(db *gorm.DB, id uint64, name, area, address string, status models.OutletStatus) error {
	if !status.Valid() {
		return validation("Invalid outlet status")
	}
	var outlet models.Outlet
	if err := db.First(&outlet, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound("Outlet not found")
		}
		return err
	}
	outlet.Name = name
	outlet.Area = area
	outlet.Address = address
	outlet.Status = status
	return db.Save(&outlet).Error
}

// DeleteOutlet removes the outlet row. Dependent rows are left in
// place; nothing cascades.
func DeleteOutlet(db *gorm.DB, id uint64) error {
	return db.Delete(&models.Outlet{}, id).Error
}
