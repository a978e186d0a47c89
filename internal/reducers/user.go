package reducers

import (
	"errors"

	"go-chain-ops/internal/models"

	"gorm.io/gorm"
)

// CreateUser registers the calling identity. One row per identity,
// ever; a second call for the same principal is a conflict.
func CreateUser(db *gorm.DB, identity, username string, role models.UserRole, outletID *uint64) (*models.User, error) {
	if !role.Valid() {
		return nil, validation("Invalid user role")
	}

	var existing models.User
	err := db.First(&existing, "id = ?", identity).Error
	if err == nil {
		return nil, conflict("User with this identity already exists")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	user := models.User{
		ID:       identity,
		Username: username,
		Role:     role,
		OutletID: outletID,
	}
	if err := db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
