package bootstrap

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"go-chain-ops/internal/models"

	"gorm.io/gorm"
)

// Run seeds the initial dataset exactly once. A persisted SystemState
// row is the guard: once it exists the seed is skipped on every
// later start, so restarts never duplicate data.
func Run(db *gorm.DB, identity string) error {
	var state models.SystemState
	err := db.First(&state).Error
	if err == nil && state.Seeded {
		return nil
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	now := time.Now()
	if err := db.Transaction(func(tx *gorm.DB) error {
		if err := seed(tx, identity, now); err != nil {
			return err
		}
		return tx.Create(&models.SystemState{Seeded: true, SeededAt: now}).Error
	}); err != nil {
		return err
	}

	log.Println("✅ Initial dataset seeded")
	return nil
}

// days/hours as saturating offsets from a base timestamp. A duration
// that would wrap the time range leaves the base unchanged.
func shift(ts time.Time, d time.Duration) time.Time {
	out := ts.Add(d)
	if (d > 0 && out.Before(ts)) || (d < 0 && out.After(ts)) {
		return ts
	}
	return out
}

func days(d int64) time.Duration  { return time.Duration(d) * 24 * time.Hour }
func hours(h int64) time.Duration { return time.Duration(h) * time.Hour }

// seed writes the whole representative dataset in dependency order,
// so every reference points at a row created earlier in the same
// transaction.
func seed(tx *gorm.DB, identity string, now time.Time) error {
	// 1) Outlets (18)
	outletNames := []string{
		"Kampoeng Steak Jakarta Pusat",
		"Kampoeng Steak Jakarta Barat",
		"Kampoeng Steak Tangerang",
		"Kampoeng Steak Bekasi",
		"Kampoeng Steak Bogor",
		"Kampoeng Steak Depok",
		"Kampoeng Steak Bandung",
		"Kampoeng Steak Surabaya",
		"Kampoeng Steak Semarang",
		"Kampoeng Steak Yogyakarta",
		"Kampoeng Steak Medan",
		"Kampoeng Steak Palembang",
		"Kampoeng Steak Makassar",
		"Kampoeng Steak Bali",
		"Kampoeng Steak Malang",
		"Kampoeng Steak Solo",
		"Kampoeng Steak Pekanbaru",
		"Kampoeng Steak Balikpapan",
	}
	outletIDs := make([]uint64, 0, len(outletNames))
	for i, name := range outletNames {
		fields := strings.Fields(name)
		area := "Area"
		if len(fields) > 0 {
			area = fields[len(fields)-1]
		}
		outlet := models.Outlet{
			Name:    name,
			Area:    area,
			Address: fmt.Sprintf("Jl. Utama No. %d, %s", i+1, area),
			Status:  models.OutletOpen,
		}
		if err := tx.Create(&outlet).Error; err != nil {
			return err
		}
		outletIDs = append(outletIDs, outlet.ID)
	}
	outletCount := len(outletIDs)

	// 2) Suppliers (5)
	suppliers := []struct {
		name    string
		contact string
	}{
		{"PT Daging Prima", "021-5551234"},
		{"PT Sayur Fresh", "021-5555678"},
		{"PT Bumbu Nusantara", "021-7771111"},
		{"PT Minuman Sejuk", "021-8882222"},
		{"PT Kemasan Jaya", "021-9993333"},
	}
	supplierIDs := make([]uint64, 0, len(suppliers))
	for i, s := range suppliers {
		supplier := models.Supplier{
			Name:    s.name,
			Contact: s.contact,
			Rating:  int32(4 + i%2), // 4-5 stars
		}
		if err := tx.Create(&supplier).Error; err != nil {
			return err
		}
		supplierIDs = append(supplierIDs, supplier.ID)
	}

	// 3) Products (10), round-robin across outlets, prices in sen
	products := []struct {
		name     string
		category string
		priceRp  int64
	}{
		{"Steak Wagyu", "Makanan", 185_000},
		{"Steak Sirloin", "Makanan", 95_000},
		{"Steak Tenderloin", "Makanan", 115_000},
		{"Chicken Steak", "Makanan", 55_000},
		{"Fish & Chips", "Makanan", 48_000},
		{"Pasta Carbonara", "Makanan", 45_000},
		{"French Fries", "Makanan", 20_000},
		{"Orange Juice", "Minuman", 18_000},
		{"Iced Tea", "Minuman", 10_000},
		{"Coffee", "Minuman", 22_000},
	}
	seededProducts := make([]models.Product, 0, len(products))
	for i, p := range products {
		product := models.Product{
			Name:     p.name,
			Category: p.category,
			Price:    p.priceRp * 100,
			OutletID: outletIDs[i%outletCount],
		}
		if err := tx.Create(&product).Error; err != nil {
			return err
		}
		seededProducts = append(seededProducts, product)
	}

	// 4) Ingredients (20); min/stock come from the index so that
	// stock > min_stock always holds
	ingredients := []struct {
		name string
		unit string
	}{
		{"Daging Sapi", "kg"},
		{"Daging Ayam", "kg"},
		{"Ikan", "kg"},
		{"Kentang", "kg"},
		{"Bawang", "kg"},
		{"Tomat", "kg"},
		{"Keju", "kg"},
		{"Susu", "L"},
		{"Telur", "pcs"},
		{"Tepung", "kg"},
		{"Minyak", "L"},
		{"Garam", "kg"},
		{"Merica", "kg"},
		{"Saus", "L"},
		{"Pasta", "kg"},
		{"Kopi", "kg"},
		{"Teh", "kg"},
		{"Jus Jeruk", "L"},
		{"Es Batu", "kg"},
		{"Gula", "kg"},
	}
	ingredientIDs := make([]uint64, 0, len(ingredients))
	for i, g := range ingredients {
		min := int64(10 + (i%10)*5)
		cur := min + 20 + int64(i%5)*10
		ing := models.Ingredient{
			Name:     g.name,
			Unit:     g.unit,
			MinStock: min,
			Stock:    cur,
			OutletID: outletIDs[i%outletCount],
			Status:   models.IngredientActive,
		}
		if err := tx.Create(&ing).Error; err != nil {
			return err
		}
		ingredientIDs = append(ingredientIDs, ing.ID)
	}

	// 5) Employees (50), round-robin positions with salary tiers
	positions := []string{"Manager", "Koki", "Kasir", "Waiter"}
	employeeIDs := make([]uint64, 0, 50)
	for i := 0; i < 50; i++ {
		pos := positions[i%len(positions)]
		var salary int64
		switch pos {
		case "Manager":
			salary = 6_000_000
		case "Koki":
			salary = 4_000_000
		case "Kasir":
			salary = 3_500_000
		default:
			salary = 3_000_000
		}
		emp := models.Employee{
			Name:     fmt.Sprintf("Karyawan %d", i+1),
			Position: pos,
			OutletID: outletIDs[i%outletCount],
			Salary:   salary * 100, // sen
			Status:   models.EmploymentActive,
		}
		if err := tx.Create(&emp).Error; err != nil {
			return err
		}
		employeeIDs = append(employeeIDs, emp.ID)
	}

	// 6) Sales (30) with 1-3 items each, totals computed from items
	for i := 0; i < 30; i++ {
		ts := shift(shift(now, -days(int64(i%30)+1)), hours(int64(i%8)))
		var method models.PaymentMethod
		switch i % 4 {
		case 0:
			method = models.PaymentCash
		case 1:
			method = models.PaymentCard
		case 2:
			method = models.PaymentEWallet
		default:
			method = models.PaymentTransfer
		}
		sale := models.Sale{
			OutletID:      outletIDs[i%outletCount],
			PaymentMethod: method,
			Date:          ts,
		}
		var total int64
		itemCount := 1 + i%3
		for j := 0; j < itemCount; j++ {
			prod := seededProducts[(i+j)%len(seededProducts)]
			qty := int32(1 + j)
			total = models.SatAdd(total, models.SatMul(prod.Price, int64(qty)))
			sale.Items = append(sale.Items, models.SaleItem{
				ProductID: prod.ID,
				Quantity:  qty,
				Price:     prod.Price,
			})
		}
		sale.Total = total
		if err := tx.Create(&sale).Error; err != nil {
			return err
		}
	}

	// 7) Purchase orders (15) with 1-3 items
	for i := 0; i < 15; i++ {
		var status models.POStatus
		switch i % 4 {
		case 0:
			status = models.POCreated
		case 1:
			status = models.POOrdered
		case 2:
			status = models.POReceived
		default:
			status = models.POCancelled
		}
		po := models.PurchaseOrder{
			OutletID:   outletIDs[i%outletCount],
			SupplierID: supplierIDs[i%len(supplierIDs)],
			Total:      (500_000 + int64(i%10)*75_000) * 100,
			Status:     status,
			Date:       shift(now, -days(40-int64(i%30))),
		}
		itemCount := 1 + i%3
		for j := 0; j < itemCount; j++ {
			po.Items = append(po.Items, models.PurchaseOrderItem{
				IngredientID: ingredientIDs[(i+j)%len(ingredientIDs)],
				Quantity:     5 + int64(j)*3,
				Price:        25_000*100 + int64(j)*5_000*100,
			})
		}
		if err := tx.Create(&po).Error; err != nil {
			return err
		}
	}

	// 8) Distributions (10); consecutive outlet pairs keep from != to
	for i := 0; i < 10; i++ {
		var status models.DistributionStatus
		switch i % 3 {
		case 0:
			status = models.DistributionPending
		case 1:
			status = models.DistributionInTransit
		default:
			status = models.DistributionDelivered
		}
		dist := models.Distribution{
			FromOutletID: outletIDs[i%outletCount],
			ToOutletID:   outletIDs[(i+1)%outletCount],
			IngredientID: ingredientIDs[i%len(ingredientIDs)],
			Quantity:     5 + int64(i%10),
			Status:       status,
			Date:         shift(now, -days(20-int64(i%15))),
		}
		if err := tx.Create(&dist).Error; err != nil {
			return err
		}
	}

	// 9) Daily checklists, one per outlet
	for i, oid := range outletIDs {
		checklist := models.DailyChecklist{
			OutletID:      oid,
			ChecklistName: "Buka toko, cek kebersihan, stok bahan, mesin kasir",
			IsCompleted:   i%2 == 0,
			Date:          shift(now, -days(int64(i%10))),
		}
		if err := tx.Create(&checklist).Error; err != nil {
			return err
		}
	}

	// 10) Shift reports (10)
	for i := 0; i < 10; i++ {
		start := shift(now, -days(int64(i%20)))
		initialCash := (1_000_000 + int64(i)*100_000) * 100
		status := models.ShiftClosed
		if i%3 == 0 {
			status = models.ShiftOpen
		}
		finalCash := models.SatAdd(initialCash, 500_000*100)
		if status == models.ShiftOpen {
			finalCash = 0
		}
		report := models.ShiftReport{
			OutletID:    outletIDs[i%outletCount],
			EmployeeID:  employeeIDs[i%len(employeeIDs)],
			ShiftStart:  start,
			ShiftEnd:    shift(start, hours(8)),
			InitialCash: initialCash,
			FinalCash:   finalCash,
			Status:      status,
		}
		if err := tx.Create(&report).Error; err != nil {
			return err
		}
	}

	// 11) Candidates (15)
	for i := 0; i < 15; i++ {
		var status models.CandidateStatus
		switch i % 4 {
		case 0:
			status = models.CandidateApplied
		case 1:
			status = models.CandidateInterview
		case 2:
			status = models.CandidateHired
		default:
			status = models.CandidateRejected
		}
		candidate := models.Candidate{
			Name:     fmt.Sprintf("Pelamar %d", i+1),
			Position: positions[i%len(positions)],
			Phone:    fmt.Sprintf("08%09d", 111111111+i),
			Email:    fmt.Sprintf("pelamar%d@mail.com", i+1),
			Status:   status,
		}
		if err := tx.Create(&candidate).Error; err != nil {
			return err
		}
	}

	// 12) Promotions (5): one live, one upcoming, three finished
	for i := 0; i < 5; i++ {
		var startDate, endDate time.Time
		switch i {
		case 0:
			startDate, endDate = shift(now, -days(5)), shift(now, days(5))
		case 1:
			startDate, endDate = shift(now, days(5)), shift(now, days(15))
		default:
			startDate = shift(now, -days(20+int64(i)*3))
			endDate = shift(now, -days(10+int64(i)*2))
		}
		discountType := models.DiscountFixedAmount
		discountValue := int64(10_000 * 100) // Rp10.000
		if i%2 == 0 {
			discountType = models.DiscountPercentage
			discountValue = 1000 // 10% in basis points
		}
		status := models.PromotionEnded
		if i == 0 {
			status = models.PromotionActive
		}
		promo := models.Promotion{
			Name:          fmt.Sprintf("Promo Spesial %d", i+1),
			DiscountType:  discountType,
			DiscountValue: discountValue,
			StartDate:     startDate,
			EndDate:       endDate,
			Status:        status,
		}
		if err := tx.Create(&promo).Error; err != nil {
			return err
		}
	}

	// 13) Assets (30)
	assetNames := []string{"Kompor", "Kulkas", "AC", "Meja", "Kursi", "Wastafel"}
	assetCats := []string{"Dapur", "Pendingin", "HVAC", "Furnitur", "Furnitur", "Sanitasi"}
	for i := 0; i < 30; i++ {
		var status models.AssetStatus
		switch i % 5 {
		case 1:
			status = models.AssetMaintenance
		case 2:
			status = models.AssetBroken
		default:
			status = models.AssetInUse
		}
		idx := i % len(assetNames)
		asset := models.Asset{
			OutletID:        outletIDs[i%outletCount],
			Name:            assetNames[idx],
			Category:        assetCats[idx],
			Status:          status,
			LastMaintenance: shift(now, -days(15-int64(i%10))),
		}
		if err := tx.Create(&asset).Error; err != nil {
			return err
		}
	}

	// 14) Cash flow (50)
	categories := []string{"Sales", "Purchase", "Salary", "Rent", "Utilities"}
	for i := 0; i < 50; i++ {
		cfType := models.CashOutflow
		if i%2 == 0 {
			cfType = models.CashInflow
		}
		cf := models.CashFlow{
			OutletID:    outletIDs[i%outletCount],
			Type:        cfType,
			Category:    categories[i%len(categories)],
			Amount:      (200_000 + int64(i%10)*50_000) * 100,
			Date:        shift(now, -days(int64(i%60))),
			Description: "Catatan kas harian",
		}
		if err := tx.Create(&cf).Error; err != nil {
			return err
		}
	}

	// 15) One admin user bound to the bootstrapping identity
	admin := models.User{
		ID:       identity,
		Username: "admin_pusat",
		Role:     models.RoleAdminPusat,
		OutletID: nil,
	}
	return tx.Create(&admin).Error
}
