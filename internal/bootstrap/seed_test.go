package bootstrap

import (
	"fmt"
	"strings"
	"testing"

	"go-chain-ops/internal/database"
	"go-chain-ops/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testIdentity = "c0ffeec0ffeec0ffeec0ffeec0ffeec0ffeec0ffeec0ffeec0ffeec0ffee0000"

func newSeededDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	require.NoError(t, Run(db, testIdentity))
	return db
}

func count(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}

func TestSeedEntityCounts(t *testing.T) {
	db := newSeededDB(t)

	assert.EqualValues(t, 18, count(t, db, &models.Outlet{}))
	assert.EqualValues(t, 5, count(t, db, &models.Supplier{}))
	assert.EqualValues(t, 10, count(t, db, &models.Product{}))
	assert.EqualValues(t, 20, count(t, db, &models.Ingredient{}))
	assert.EqualValues(t, 50, count(t, db, &models.Employee{}))
	assert.EqualValues(t, 30, count(t, db, &models.Sale{}))
	assert.EqualValues(t, 15, count(t, db, &models.PurchaseOrder{}))
	assert.EqualValues(t, 10, count(t, db, &models.Distribution{}))
	assert.EqualValues(t, 18, count(t, db, &models.DailyChecklist{}))
	assert.EqualValues(t, 10, count(t, db, &models.ShiftReport{}))
	assert.EqualValues(t, 15, count(t, db, &models.Candidate{}))
	assert.EqualValues(t, 5, count(t, db, &models.Promotion{}))
	assert.EqualValues(t, 30, count(t, db, &models.Asset{}))
	assert.EqualValues(t, 50, count(t, db, &models.CashFlow{}))
	assert.EqualValues(t, 1, count(t, db, &models.User{}))
}

func TestSeedRunsOnlyOnce(t *testing.T) {
	db := newSeededDB(t)

	// Restarting must not duplicate anything, even with a different
	// bootstrap identity.
	require.NoError(t, Run(db, "another-identity"))

	assert.EqualValues(t, 18, count(t, db, &models.Outlet{}))
	assert.EqualValues(t, 1, count(t, db, &models.User{}))

	var user models.User
	require.NoError(t, db.First(&user).Error)
	assert.Equal(t, testIdentity, user.ID)
}

func TestSeedAdminUser(t *testing.T) {
	db := newSeededDB(t)

	var user models.User
	require.NoError(t, db.First(&user).Error)
	assert.Equal(t, testIdentity, user.ID)
	assert.Equal(t, "admin_pusat", user.Username)
	assert.Equal(t, models.RoleAdminPusat, user.Role)
	assert.Nil(t, user.OutletID)
}

func TestSeedSaleTotalsMatchItems(t *testing.T) {
	db := newSeededDB(t)

	var sales []models.Sale
	require.NoError(t, db.Preload("Items").Find(&sales).Error)
	require.Len(t, sales, 30)

	for _, sale := range sales {
		require.NotEmpty(t, sale.Items, "sale %d has no items", sale.ID)
		assert.LessOrEqual(t, len(sale.Items), 3)
		var sum int64
		for _, it := range sale.Items {
			sum += it.Price * int64(it.Quantity)
		}
		assert.Equal(t, sum, sale.Total, "sale %d total mismatch", sale.ID)
	}
}

func TestSeedPurchaseOrderItems(t *testing.T) {
	db := newSeededDB(t)

	ingredientIDs := idSet(t, db, &models.Ingredient{})

	var orders []models.PurchaseOrder
	require.NoError(t, db.Preload("Items").Find(&orders).Error)
	for _, po := range orders {
		require.NotEmpty(t, po.Items)
		assert.LessOrEqual(t, len(po.Items), 3)
		for _, it := range po.Items {
			assert.Equal(t, po.ID, it.PurchaseOrderID)
			assert.Contains(t, ingredientIDs, it.IngredientID)
		}
	}
}

func TestSeedDistributionsUseDistinctOutlets(t *testing.T) {
	db := newSeededDB(t)

	outletIDs := idSet(t, db, &models.Outlet{})

	var distributions []models.Distribution
	require.NoError(t, db.Find(&distributions).Error)
	for _, d := range distributions {
		assert.NotEqual(t, d.FromOutletID, d.ToOutletID)
		assert.Contains(t, outletIDs, d.FromOutletID)
		assert.Contains(t, outletIDs, d.ToOutletID)
	}
}

func TestSeedIngredientStockAboveMinimum(t *testing.T) {
	db := newSeededDB(t)

	var ingredients []models.Ingredient
	require.NoError(t, db.Find(&ingredients).Error)
	for _, g := range ingredients {
		assert.Greater(t, g.Stock, g.MinStock, "ingredient %s", g.Name)
		assert.Equal(t, models.IngredientActive, g.Status)
	}
}

func TestSeedReferencesResolve(t *testing.T) {
	db := newSeededDB(t)

	outletIDs := idSet(t, db, &models.Outlet{})
	supplierIDs := idSet(t, db, &models.Supplier{})
	employeeIDs := idSet(t, db, &models.Employee{})
	productIDs := idSet(t, db, &models.Product{})
	ingredientIDs := idSet(t, db, &models.Ingredient{})

	var employees []models.Employee
	require.NoError(t, db.Find(&employees).Error)
	for _, e := range employees {
		assert.Contains(t, outletIDs, e.OutletID)
	}

	var products []models.Product
	require.NoError(t, db.Find(&products).Error)
	for _, p := range products {
		assert.Contains(t, outletIDs, p.OutletID)
	}

	var sales []models.Sale
	require.NoError(t, db.Preload("Items").Find(&sales).Error)
	for _, s := range sales {
		assert.Contains(t, outletIDs, s.OutletID)
		for _, it := range s.Items {
			assert.Contains(t, productIDs, it.ProductID)
		}
	}

	var orders []models.PurchaseOrder
	require.NoError(t, db.Find(&orders).Error)
	for _, po := range orders {
		assert.Contains(t, outletIDs, po.OutletID)
		assert.Contains(t, supplierIDs, po.SupplierID)
	}

	var distributions []models.Distribution
	require.NoError(t, db.Find(&distributions).Error)
	for _, d := range distributions {
		assert.Contains(t, ingredientIDs, d.IngredientID)
	}

	var shifts []models.ShiftReport
	require.NoError(t, db.Find(&shifts).Error)
	for _, sr := range shifts {
		assert.Contains(t, outletIDs, sr.OutletID)
		assert.Contains(t, employeeIDs, sr.EmployeeID)
	}

	var checklists []models.DailyChecklist
	require.NoError(t, db.Find(&checklists).Error)
	for _, cl := range checklists {
		assert.Contains(t, outletIDs, cl.OutletID)
	}

	var assets []models.Asset
	require.NoError(t, db.Find(&assets).Error)
	for _, a := range assets {
		assert.Contains(t, outletIDs, a.OutletID)
	}

	var cashflow []models.CashFlow
	require.NoError(t, db.Find(&cashflow).Error)
	for _, cf := range cashflow {
		assert.Contains(t, outletIDs, cf.OutletID)
	}
}

func TestSeedOpenShiftsHaveZeroFinalCash(t *testing.T) {
	db := newSeededDB(t)

	var shifts []models.ShiftReport
	require.NoError(t, db.Find(&shifts).Error)
	for _, sr := range shifts {
		if sr.Status == models.ShiftOpen {
			assert.Zero(t, sr.FinalCash)
		} else {
			assert.Equal(t, models.SatAdd(sr.InitialCash, 500_000*100), sr.FinalCash)
		}
	}
}

func TestSeedPromotionWindows(t *testing.T) {
	db := newSeededDB(t)

	var promotions []models.Promotion
	require.NoError(t, db.Order("id").Find(&promotions).Error)
	require.Len(t, promotions, 5)

	// One live promotion spanning now, one upcoming, three finished.
	assert.Equal(t, models.PromotionActive, promotions[0].Status)
	assert.True(t, promotions[0].StartDate.Before(promotions[0].EndDate))
	assert.True(t, promotions[1].StartDate.After(promotions[0].StartDate))
	for _, p := range promotions[1:] {
		assert.Equal(t, models.PromotionEnded, p.Status)
	}
}

func idSet(t *testing.T, db *gorm.DB, model interface{}) map[uint64]struct{} {
	t.Helper()
	var ids []uint64
	require.NoError(t, db.Model(model).Pluck("id", &ids).Error)
	set := make(map[uint64]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}
