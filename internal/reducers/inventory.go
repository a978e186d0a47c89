package reducers

import (
	"errors"

	"go-chain-ops/internal/models"

	"gorm.io/gorm"
)

// AddProduct inserts a product. The outlet reference is stored as
// given, not checked against the outlets table.
func AddProduct(db *gorm.DB, name, category string, price int64, outletID uint64) (*models.Product, error) {
	product := models.Product{
		Name:     name,
		Category: category,
		Price:    price,
		OutletID: outletID,
	}
	if err := db.Create(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func AddIngredient(db *gorm.DB, name, unit string, minStock, stock int64, outletID uint64, status models.IngredientStatus) (*models.Ingredient, error) {
	if !status.Valid() {
		return nil, validation("Invalid ingredient status")
	}
	ing := models.Ingredient{
		Name:     name,
		Unit:     unit,
		MinStock: minStock,
		Stock:    stock,
		OutletID: outletID,
		Status:   status,
	}
	if err := db.Create(&ing).Error; err != nil {
		return nil, err
	}
	return &ing, nil
}

// UpdateInventory overwrites an ingredient's stock counter. This is
// the only operation that changes stock; sales and distributions do
// not touch it.
func UpdateInventory(db *gorm.DB, ingredientID uint64, newStock int64) error {
	var ing models.Ingredient
	if err := db.First(&ing, ingredientID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound("Ingredient not found")
		}
		return err
	}
	ing.Stock = newStock
	return db.Save(&ing).Error
}
