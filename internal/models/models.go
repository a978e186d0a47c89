package models

import (
	"time"
)

// All monetary fields are integer minor units (sen). Never floats.

// Outlet - a branch of the chain. Root of most ownership hierarchies.
type Outlet struct {
	ID      uint64       `gorm:"primaryKey" json:"id"`
	Name    string       `gorm:"size:100" json:"name"`
	Area    string       `gorm:"size:100" json:"area"`
	Address string       `json:"address"`
	Status  OutletStatus `gorm:"size:20" json:"status"`
}

// User - one row per caller identity, created at most once.
// The key is the caller's principal identity, not an auto-increment id.
type User struct {
	ID       string   `gorm:"primaryKey;size:64" json:"id"`
	Username string   `gorm:"size:50" json:"username"`
	Role     UserRole `gorm:"size:20" json:"role"`
	OutletID *uint64  `json:"outlet_id"`
}

type Employee struct {
	ID       uint64           `gorm:"primaryKey" json:"id"`
	Name     string           `gorm:"size:100" json:"name"`
	Position string           `gorm:"size:50" json:"position"`
	OutletID uint64           `gorm:"index" json:"outlet_id"`
	Salary   int64            `json:"salary"` // minor units
	Status   EmploymentStatus `gorm:"size:20" json:"status"`
}

type Product struct {
	ID       uint64 `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"size:100" json:"name"`
	Category string `gorm:"size:50" json:"category"`
	Price    int64  `json:"price"` // minor units
	OutletID uint64 `gorm:"index" json:"outlet_id"`
}

// Ingredient - stock is a plain counter. Nothing decrements it on
// sale or distribution; UpdateInventory overwrites it.
type Ingredient struct {
	ID       uint64           `gorm:"primaryKey" json:"id"`
	Name     string           `gorm:"size:100" json:"name"`
	Unit     string           `gorm:"size:20" json:"unit"`
	MinStock int64            `json:"min_stock"`
	Stock    int64            `json:"stock"`
	OutletID uint64           `gorm:"index" json:"outlet_id"`
	Status   IngredientStatus `gorm:"size:20" json:"status"`
}

type Supplier struct {
	ID      uint64 `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"size:100" json:"name"`
	Contact string `gorm:"size:50" json:"contact"`
	Rating  int32  `json:"rating"`
}

// Sale - the transaction header. Total is computed server-side from
// the items, never trusted from the caller.
type Sale struct {
	ID            uint64        `gorm:"primaryKey" json:"id"`
	OutletID      uint64        `gorm:"index" json:"outlet_id"`
	Total         int64         `json:"total"` // minor units
	PaymentMethod PaymentMethod `gorm:"size:20" json:"payment_method"`
	Date          time.Time     `gorm:"index" json:"date"`
	Items         []SaleItem    `gorm:"foreignKey:SaleID" json:"items"`
}

type SaleItem struct {
	ID        uint64 `gorm:"primaryKey" json:"id"`
	SaleID    uint64 `gorm:"index" json:"sale_id"`
	ProductID uint64 `json:"product_id"`
	Quantity  int32  `json:"quantity"`
	Price     int64  `json:"price"` // unit price at sale time, minor units
}

// PurchaseOrder - unlike Sale, the total here is stored exactly as
// the caller supplied it.
type PurchaseOrder struct {
	ID         uint64              `gorm:"primaryKey" json:"id"`
	OutletID   uint64              `gorm:"index" json:"outlet_id"`
	SupplierID uint64              `json:"supplier_id"`
	Total      int64               `json:"total"` // minor units
	Status     POStatus            `gorm:"size:20" json:"status"`
	Date       time.Time           `json:"date"`
	Items      []PurchaseOrderItem `gorm:"foreignKey:PurchaseOrderID" json:"items"`
}

type PurchaseOrderItem struct {
	ID              uint64 `gorm:"primaryKey" json:"id"`
	PurchaseOrderID uint64 `gorm:"index" json:"purchase_order_id"`
	IngredientID    uint64 `json:"ingredient_id"`
	Quantity        int64  `json:"quantity"`
	Price           int64  `json:"price"` // unit price, minor units
}

// Distribution - inter-outlet ingredient transfer. FromOutletID must
// differ from ToOutletID.
type Distribution struct {
	ID           uint64             `gorm:"primaryKey" json:"id"`
	FromOutletID uint64             `gorm:"index" json:"from_outlet_id"`
	ToOutletID   uint64             `gorm:"index" json:"to_outlet_id"`
	IngredientID uint64             `json:"ingredient_id"`
	Quantity     int64              `json:"quantity"`
	Status       DistributionStatus `gorm:"size:20" json:"status"`
	Date         time.Time          `json:"date"`
}

type DailyChecklist struct {
	ID            uint64    `gorm:"primaryKey" json:"id"`
	OutletID      uint64    `gorm:"index" json:"outlet_id"`
	ChecklistName string    `json:"checklist_name"`
	IsCompleted   bool      `json:"is_completed"`
	Date          time.Time `json:"date"`
}

type ShiftReport struct {
	ID          uint64      `gorm:"primaryKey" json:"id"`
	OutletID    uint64      `gorm:"index" json:"outlet_id"`
	EmployeeID  uint64      `json:"employee_id"`
	ShiftStart  time.Time   `json:"shift_start"`
	ShiftEnd    time.Time   `json:"shift_end"`
	InitialCash int64       `json:"initial_cash"` // minor units
	FinalCash   int64       `json:"final_cash"`   // minor units
	Status      ShiftStatus `gorm:"size:20" json:"status"`
}

type Candidate struct {
	ID       uint64          `gorm:"primaryKey" json:"id"`
	Name     string          `gorm:"size:100" json:"name"`
	Position string          `gorm:"size:50" json:"position"`
	Phone    string          `gorm:"size:20" json:"phone"`
	Email    string          `gorm:"size:100" json:"email"`
	Status   CandidateStatus `gorm:"size:20" json:"status"`
}

// Promotion - status is caller-supplied, never derived from the
// start/end dates against the clock.
type Promotion struct {
	ID           uint64       `gorm:"primaryKey" json:"id"`
	Name         string       `gorm:"size:100" json:"name"`
	DiscountType DiscountType `gorm:"size:20" json:"discount_type"`
	// Percentage promotions store basis points (1000 = 10%),
	// FixedAmount promotions store minor units.
	DiscountValue int64           `json:"discount_value"`
	StartDate     time.Time       `json:"start_date"`
	EndDate       time.Time       `json:"end_date"`
	Status        PromotionStatus `gorm:"size:20" json:"status"`
}

type Asset struct {
	ID              uint64      `gorm:"primaryKey" json:"id"`
	OutletID        uint64      `gorm:"index" json:"outlet_id"`
	Name            string      `gorm:"size:100" json:"name"`
	Category        string      `gorm:"size:50" json:"category"`
	Status          AssetStatus `gorm:"size:20" json:"status"`
	LastMaintenance time.Time   `json:"last_maintenance"`
}

type CashFlow struct {
	ID          uint64       `gorm:"primaryKey" json:"id"`
	OutletID    uint64       `gorm:"index" json:"outlet_id"`
	Type        CashFlowType `gorm:"size:20" json:"type"`
	Category    string       `gorm:"size:50" json:"category"`
	Amount      int64        `json:"amount"` // minor units
	Date        time.Time    `json:"date"`
	Description string       `json:"description"`
}

// SystemState - single row marking that the one-shot bootstrap has
// already run. The seed never re-runs while this row exists.
type SystemState struct {
	ID       uint64    `gorm:"primaryKey" json:"id"`
	Seeded   bool      `json:"seeded"`
	SeededAt time.Time `json:"seeded_at"`
}

// SaleItemInput is one line of a RecordSale call.
type SaleItemInput struct {
	ProductID uint64 `json:"product_id"`
	Quantity  int32  `json:"quantity"`
	Price     int64  `json:"price"` // unit price, minor units
}

// PurchaseOrderItemInput is one line of a CreatePurchaseOrder call.
type PurchaseOrderItemInput struct {
	IngredientID uint64 `json:"ingredient_id"`
	Quantity     int64  `json:"quantity"`
	Price        int64  `json:"price"` // unit price, minor units
}
