package reducers

import (
	"time"

	"go-chain-ops/internal/models"

	"gorm.io/gorm"
)

// RecordSale books a sale with its line items in one transaction.
// The total is always recomputed here from the items, with saturating
// arithmetic; whatever total the caller thinks it has is ignored.
func RecordSale(db *gorm.DB, outletID uint64, items []models.SaleItemInput, paymentMethod models.PaymentMethod, date time.Time) (*models.Sale, error) {
	if len(items) == 0 {
		return nil, validation("Sale must have at least one item")
	}
	if !paymentMethod.Valid() {
		return nil, validation("Invalid payment method")
	}

	var total int64
	sale := models.Sale{
		OutletID:      outletID,
		PaymentMethod: paymentMethod,
		Date:          date,
	}
	for _, it := range items {
		total = models.SatAdd(total, models.SatMul(it.Price, int64(it.Quantity)))
		sale.Items = append(sale.Items, models.SaleItem{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Price:     it.Price,
		})
	}
	sale.Total = total

	err := db.Transaction(func(tx *gorm.DB) error {
		// GORM inserts the header and stamps every item with its id.
		return tx.Create(&sale).Error
	})
	if err != nil {
		return nil, err
	}
	return &sale, nil
}
