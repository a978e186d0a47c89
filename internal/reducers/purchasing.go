package reducers

import (
	"errors"
	"time"

	"go-chain-ops/internal/models"

	"gorm.io/gorm"
)

func AddSupplier(db *gorm.DB, name, contact string, rating int32) (*models.Supplier, error) {
	supplier := models.Supplier{
		Name:    name,
		Contact: contact,
		Rating:  rating,
	}
	if err := db.Create(&supplier).Error; err != nil {
		return nil, err
	}
	return &supplier, nil
}

// CreatePurchaseOrder inserts the order header plus one item row per
// input, all in one transaction. The caller-supplied total is stored
// as-is; deliberately not recomputed from the items (sales do the
// opposite).
func CreatePurchaseOrder(db *gorm.DB, outletID, supplierID uint64, total int64, date time.Time, items []models.PurchaseOrderItemInput) (*models.PurchaseOrder, error) {
	po := models.PurchaseOrder{
		OutletID:   outletID,
		SupplierID: supplierID,
		Total:      total,
		Status:     models.POCreated,
		Date:       date,
	}
	for _, it := range items {
		po.Items = append(po.Items, models.PurchaseOrderItem{
			IngredientID: it.IngredientID,
			Quantity:     it.Quantity,
			Price:        it.Price,
		})
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		// GORM stamps each item with the new order's id.
		return tx.Create(&po).Error
	})
	if err != nil {
		return nil, err
	}
	return &po, nil
}

// ApprovePurchaseOrder sets the status to Ordered from any prior
// status; there is no precondition check, so re-approving is a no-op.
func ApprovePurchaseOrder(db *gorm.DB, poID uint64) error {
	return setPurchaseOrderStatus(db, poID, models.POOrdered)
}

// RejectPurchaseOrder sets the status to Cancelled, same contract as
// ApprovePurchaseOrder.
func RejectPurchaseOrder(db *gorm.DB, poID uint64) error {
	return setPurchaseOrderStatus(db, poID, models.POCancelled)
}

func setPurchaseOrderStatus(db *gorm.DB, poID uint64, status models.POStatus) error {
	var po models.PurchaseOrder
	if err := db.First(&po, poID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound("Purchase order not found")
		}
		return err
	}
	po.Status = status
	return db.Save(&po).Error
}
