package database

import (
	"log"
	"os"
	"time"

	"go-chain-ops/internal/models"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Connect opens the store. DB_DSN points at MySQL in production; when
// it is unset we fall back to a local SQLite file so the server runs
// out of the box in development.
func Connect() {
	dsn := os.Getenv("DB_DSN")

	var err error

	if dsn == "" {
		log.Println("DB_DSN not set, using local SQLite file chainops.db")
		DB, err = gorm.Open(sqlite.Open("chainops.db"), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Warn),
		})
		if err != nil {
			log.Fatal("Failed to open SQLite database:", err)
		}
	} else {
		// Wait for MySQL to come up (docker compose etc.)
		for i := 0; i < 5; i++ {
			DB, err = gorm.Open(mysql.Open(dsn), &gorm.Config{
				Logger: logger.Default.LogMode(logger.Warn),
			})
			if err == nil {
				break
			}
			log.Printf("Failed to connect to database. Retrying in 2 seconds... (%d/5)", i+1)
			time.Sleep(2 * time.Second)
		}
		if err != nil {
			log.Fatal("Failed to connect to database after 5 attempts:", err)
		}
		log.Println("✅ Connected to MySQL")
	}

	if err := Migrate(DB); err != nil {
		log.Fatal("Schema migration failed:", err)
	}
	log.Println("✅ Database schema synced")
}

// Migrate creates/updates every table. Split out from Connect so
// tests can run it against their own store.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Outlet{},
		&models.User{},
		&models.Employee{},
		&models.Product{},
		&models.Ingredient{},
		&models.Supplier{},
		&models.Sale{},
		&models.SaleItem{},
		&models.PurchaseOrder{},
		&models.PurchaseOrderItem{},
		&models.Distribution{},
		&models.DailyChecklist{},
		&models.ShiftReport{},
		&models.Candidate{},
		&models.Promotion{},
		&models.Asset{},
		&models.CashFlow{},
		&models.SystemState{},
	)
}
