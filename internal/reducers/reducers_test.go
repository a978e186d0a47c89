package reducers

import (
	"fmt"
	"math"
	"strings"
	"testing"
	"time"

	"go-chain-ops/internal/database"
	"go-chain-ops/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Each test gets its own named in-memory store. The shared-cache DSN
// keeps the database alive across GORM's pooled connections.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func TestCreateOutletStartsOpen(t *testing.T) {
	db := newTestDB(t)

	outlet, err := CreateOutlet(db, "Kampoeng Steak Cirebon", "Cirebon", "Jl. Merdeka No. 1")
	require.NoError(t, err)
	assert.NotZero(t, outlet.ID)
	assert.Equal(t, models.OutletOpen, outlet.Status)
}

func TestUpdateOutletReplacesAllFields(t *testing.T) {
	db := newTestDB(t)

	outlet, err := CreateOutlet(db, "Old Name", "Old Area", "Old Address")
	require.NoError(t, err)

	err = UpdateOutlet(db, outlet.ID, "New Name", "New Area", "New Address", models.OutletRenovation)
	require.NoError(t, err)

	var got models.Outlet
	require.NoError(t, db.First(&got, outlet.ID).Error)
	assert.Equal(t, "New Name", got.Name)
	assert.Equal(t, "New Area", got.Area)
	assert.Equal(t, "New Address", got.Address)
	assert.Equal(t, models.OutletRenovation, got.Status)
}

func TestUpdateOutletNotFoundLeavesStoreUnchanged(t *testing.T) {
	db := newTestDB(t)

	before, err := CreateOutlet(db, "Only Outlet", "Area", "Address")
	require.NoError(t, err)

	err = UpdateOutlet(db, 9999, "x", "y", "z", models.OutletClosed)
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
	assert.Equal(t, "Outlet not found", err.Error())

	var after []models.Outlet
	require.NoError(t, db.Find(&after).Error)
	require.Len(t, after, 1)
	assert.Equal(t, *before, after[0])
}

func TestUpdateOutletRejectsUnknownStatus(t *testing.T) {
	db := newTestDB(t)

	outlet, err := CreateOutlet(db, "Outlet", "Area", "Address")
	require.NoError(t, err)

	err = UpdateOutlet(db, outlet.ID, "Outlet", "Area", "Address", models.OutletStatus("Demolished"))
	require.Error(t, err)
	assert.True(t, IsValidation(err))
}

func TestDeleteOutletNoCascade(t *testing.T) {
	db := newTestDB(t)

	outlet, err := CreateOutlet(db, "Doomed", "Area", "Address")
	require.NoError(t, err)
	_, err = CreateEmployee(db, "Karyawan 1", "Kasir", outlet.ID, 350_000_000, models.EmploymentActive)
	require.NoError(t, err)

	require.NoError(t, DeleteOutlet(db, outlet.ID))

	var outlets int64
	require.NoError(t, db.Model(&models.Outlet{}).Count(&outlets).Error)
	assert.Zero(t, outlets)

	// The employee still points at the deleted outlet.
	var employees int64
	require.NoError(t, db.Model(&models.Employee{}).Count(&employees).Error)
	assert.EqualValues(t, 1, employees)
}

func TestUpdateEmployeeStatus(t *testing.T) {
	db := newTestDB(t)

	emp, err := CreateEmployee(db, "Karyawan 1", "Koki", 1, 400_000_000, models.EmploymentActive)
	require.NoError(t, err)

	require.NoError(t, UpdateEmployeeStatus(db, emp.ID, models.EmploymentInactive))

	var got models.Employee
	require.NoError(t, db.First(&got, emp.ID).Error)
	assert.Equal(t, models.EmploymentInactive, got.Status)

	err = UpdateEmployeeStatus(db, 9999, models.EmploymentActive)
	assert.True(t, IsNotFound(err))
	assert.Equal(t, "Employee not found", err.Error())
}

func TestUpdateInventoryOverwritesStock(t *testing.T) {
	db := newTestDB(t)

	ing, err := AddIngredient(db, "Daging Sapi", "kg", 10, 40, 1, models.IngredientActive)
	require.NoError(t, err)

	require.NoError(t, UpdateInventory(db, ing.ID, 7))

	var got models.Ingredient
	require.NoError(t, db.First(&got, ing.ID).Error)
	assert.EqualValues(t, 7, got.Stock)
	// MinStock untouched; the counter is just overwritten.
	assert.EqualValues(t, 10, got.MinStock)

	err = UpdateInventory(db, 9999, 1)
	assert.True(t, IsNotFound(err))
	assert.Equal(t, "Ingredient not found", err.Error())
}

func TestRecordSaleComputesTotalFromItems(t *testing.T) {
	db := newTestDB(t)

	sale, err := RecordSale(db, 1, []models.SaleItemInput{
		{ProductID: 1, Quantity: 2, Price: 1000},
		{ProductID: 2, Quantity: 1, Price: 500},
	}, models.PaymentCash, time.Now())
	require.NoError(t, err)

	assert.EqualValues(t, 2500, sale.Total)

	var items []models.SaleItem
	require.NoError(t, db.Where("sale_id = ?", sale.ID).Find(&items).Error)
	require.Len(t, items, 2)
	for _, it := range items {
		assert.Equal(t, sale.ID, it.SaleID)
	}
}

func TestRecordSaleRejectsEmptyCart(t *testing.T) {
	db := newTestDB(t)

	_, err := RecordSale(db, 1, nil, models.PaymentCash, time.Now())
	require.Error(t, err)
	assert.True(t, IsValidation(err))
	assert.Equal(t, "Sale must have at least one item", err.Error())

	var sales, items int64
	require.NoError(t, db.Model(&models.Sale{}).Count(&sales).Error)
	require.NoError(t, db.Model(&models.SaleItem{}).Count(&items).Error)
	assert.Zero(t, sales)
	assert.Zero(t, items)
}

func TestRecordSaleSaturatesInsteadOfOverflowing(t *testing.T) {
	db := newTestDB(t)

	sale, err := RecordSale(db, 1, []models.SaleItemInput{
		{ProductID: 1, Quantity: math.MaxInt32, Price: math.MaxInt64},
		{ProductID: 2, Quantity: 1, Price: 100},
	}, models.PaymentCard, time.Now())
	require.NoError(t, err)
	assert.EqualValues(t, int64(math.MaxInt64), sale.Total)
}

func TestRecordSaleStoredTotalMatchesItems(t *testing.T) {
	db := newTestDB(t)

	_, err := RecordSale(db, 3, []models.SaleItemInput{
		{ProductID: 1, Quantity: 3, Price: 4_800_000},
		{ProductID: 2, Quantity: 2, Price: 1_000_000},
		{ProductID: 3, Quantity: 1, Price: 2_200_000},
	}, models.PaymentEWallet, time.Now())
	require.NoError(t, err)

	var sale models.Sale
	require.NoError(t, db.Preload("Items").First(&sale).Error)

	var sum int64
	for _, it := range sale.Items {
		sum += it.Price * int64(it.Quantity)
	}
	assert.Equal(t, sum, sale.Total)
}

func TestCreatePurchaseOrderStampsItems(t *testing.T) {
	db := newTestDB(t)

	items := []models.PurchaseOrderItemInput{
		{IngredientID: 1, Quantity: 5, Price: 2_500_000},
		{IngredientID: 2, Quantity: 8, Price: 3_000_000},
		{IngredientID: 3, Quantity: 11, Price: 3_500_000},
	}
	po, err := CreatePurchaseOrder(db, 1, 1, 999, time.Now(), items)
	require.NoError(t, err)

	assert.Equal(t, models.POCreated, po.Status)
	// Caller total is trusted verbatim, not recomputed.
	assert.EqualValues(t, 999, po.Total)

	var rows []models.PurchaseOrderItem
	require.NoError(t, db.Where("purchase_order_id = ?", po.ID).Find(&rows).Error)
	require.Len(t, rows, len(items))
	for i, row := range rows {
		assert.Equal(t, po.ID, row.PurchaseOrderID)
		assert.Equal(t, items[i].IngredientID, row.IngredientID)
	}
}

func TestApprovePurchaseOrderIsIdempotent(t *testing.T) {
	db := newTestDB(t)

	po, err := CreatePurchaseOrder(db, 1, 1, 100, time.Now(), nil)
	require.NoError(t, err)

	require.NoError(t, ApprovePurchaseOrder(db, po.ID))

	var got models.PurchaseOrder
	require.NoError(t, db.First(&got, po.ID).Error)
	assert.Equal(t, models.POOrdered, got.Status)

	// No precondition check: approving again leaves it Ordered.
	require.NoError(t, ApprovePurchaseOrder(db, po.ID))
	require.NoError(t, db.First(&got, po.ID).Error)
	assert.Equal(t, models.POOrdered, got.Status)
}

func TestRejectPurchaseOrderFromAnyStatus(t *testing.T) {
	db := newTestDB(t)

	po, err := CreatePurchaseOrder(db, 1, 1, 100, time.Now(), nil)
	require.NoError(t, err)

	// Even an already approved order can be rejected.
	require.NoError(t, ApprovePurchaseOrder(db, po.ID))
	require.NoError(t, RejectPurchaseOrder(db, po.ID))

	var got models.PurchaseOrder
	require.NoError(t, db.First(&got, po.ID).Error)
	assert.Equal(t, models.POCancelled, got.Status)
}

func TestPurchaseOrderStatusNotFound(t *testing.T) {
	db := newTestDB(t)

	err := ApprovePurchaseOrder(db, 42)
	assert.True(t, IsNotFound(err))
	assert.Equal(t, "Purchase order not found", err.Error())

	err = RejectPurchaseOrder(db, 42)
	assert.True(t, IsNotFound(err))
}

func TestRequestDistributionRejectsSameOutlet(t *testing.T) {
	db := newTestDB(t)

	for _, outletID := range []uint64{1, 7, 9999} {
		_, err := RequestDistribution(db, outletID, outletID, 1, 5, time.Now())
		require.Error(t, err)
		assert.True(t, IsValidation(err))
		assert.Equal(t, "from_outlet_id and to_outlet_id must differ", err.Error())
	}

	var count int64
	require.NoError(t, db.Model(&models.Distribution{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestDistributionLifecycle(t *testing.T) {
	db := newTestDB(t)

	dist, err := RequestDistribution(db, 1, 2, 3, 5, time.Now())
	require.NoError(t, err)
	assert.Equal(t, models.DistributionPending, dist.Status)

	require.NoError(t, MarkDistributionDelivered(db, dist.ID))

	var got models.Distribution
	require.NoError(t, db.First(&got, dist.ID).Error)
	assert.Equal(t, models.DistributionDelivered, got.Status)

	err = MarkDistributionDelivered(db, 9999)
	assert.True(t, IsNotFound(err))
	assert.Equal(t, "Distribution not found", err.Error())
}

func TestChecklistLifecycle(t *testing.T) {
	db := newTestDB(t)

	checklist, err := CreateDailyChecklist(db, 1, "Buka toko, cek kebersihan", time.Now())
	require.NoError(t, err)
	assert.False(t, checklist.IsCompleted)

	require.NoError(t, UpdateChecklistStatus(db, checklist.ID, true))

	var got models.DailyChecklist
	require.NoError(t, db.First(&got, checklist.ID).Error)
	assert.True(t, got.IsCompleted)

	err = UpdateChecklistStatus(db, 9999, true)
	assert.True(t, IsNotFound(err))
	assert.Equal(t, "Checklist not found", err.Error())
}

func TestOpenShiftDefaults(t *testing.T) {
	db := newTestDB(t)

	start := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	shift, err := OpenShift(db, 1, 2, start, 100_000_000)
	require.NoError(t, err)

	assert.Equal(t, models.ShiftOpen, shift.Status)
	assert.True(t, shift.ShiftEnd.Equal(start))
	assert.Zero(t, shift.FinalCash)
	assert.EqualValues(t, 100_000_000, shift.InitialCash)
}

func TestCandidateStatusOverwrite(t *testing.T) {
	db := newTestDB(t)

	candidate, err := AddCandidate(db, "Pelamar 1", "Kasir", "08111111111", "pelamar1@mail.com")
	require.NoError(t, err)
	assert.Equal(t, models.CandidateApplied, candidate.Status)

	// Any valid status from any valid status, no transition order.
	require.NoError(t, UpdateCandidateStatus(db, candidate.ID, models.CandidateHired))
	require.NoError(t, UpdateCandidateStatus(db, candidate.ID, models.CandidateApplied))

	err = UpdateCandidateStatus(db, candidate.ID, models.CandidateStatus("Ghosted"))
	assert.True(t, IsValidation(err))

	err = UpdateCandidateStatus(db, 9999, models.CandidateHired)
	assert.True(t, IsNotFound(err))
	assert.Equal(t, "Candidate not found", err.Error())
}

func TestCreatePromotionStoresStatusVerbatim(t *testing.T) {
	db := newTestDB(t)

	// Dates lie in the past but the caller said Draft; the status is
	// never derived from the dates.
	start := time.Now().AddDate(0, 0, -30)
	end := time.Now().AddDate(0, 0, -20)
	promo, err := CreatePromotion(db, "Promo Spesial", models.DiscountPercentage, 1000, start, end, models.PromotionDraft)
	require.NoError(t, err)
	assert.Equal(t, models.PromotionDraft, promo.Status)

	_, err = CreatePromotion(db, "Bad", models.DiscountType("BOGO"), 1, start, end, models.PromotionDraft)
	assert.True(t, IsValidation(err))
}

func TestAssetLifecycle(t *testing.T) {
	db := newTestDB(t)

	asset, err := AddAsset(db, 1, "Kompor", "Dapur", time.Now())
	require.NoError(t, err)
	assert.Equal(t, models.AssetInUse, asset.Status)

	maint := time.Now()
	require.NoError(t, UpdateAssetStatus(db, asset.ID, models.AssetBroken, maint))

	var got models.Asset
	require.NoError(t, db.First(&got, asset.ID).Error)
	assert.Equal(t, models.AssetBroken, got.Status)

	err = UpdateAssetStatus(db, 9999, models.AssetInUse, maint)
	assert.True(t, IsNotFound(err))
	assert.Equal(t, "Asset not found", err.Error())
}

func TestCreateUserOncePerIdentity(t *testing.T) {
	db := newTestDB(t)

	const identity = "deadbeefdeadbeefdeadbeefdeadbeefdeadbeefdeadbeefdeadbeefdeadbeef"

	user, err := CreateUser(db, identity, "a", models.RoleKasir, nil)
	require.NoError(t, err)
	assert.Equal(t, identity, user.ID)

	_, err = CreateUser(db, identity, "b", models.RoleFinance, nil)
	require.Error(t, err)
	assert.True(t, IsConflict(err))
	assert.Equal(t, "User with this identity already exists", err.Error())

	var count int64
	require.NoError(t, db.Model(&models.User{}).Where("id = ?", identity).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	// A different identity registers fine.
	_, err = CreateUser(db, "another-identity", "b", models.RoleGudang, nil)
	require.NoError(t, err)
}

func TestCreateUserRejectsUnknownRole(t *testing.T) {
	db := newTestDB(t)

	_, err := CreateUser(db, "some-identity", "a", models.UserRole("Janitor"), nil)
	require.Error(t, err)
	assert.True(t, IsValidation(err))
}
