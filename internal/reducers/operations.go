package reducers

import (
	"errors"
	"time"

	"go-chain-ops/internal/models"

	"gorm.io/gorm"
)

func CreateDailyChecklist(db *gorm.DB, outletID uint64, checklistName string, date time.Time) (*models.DailyChecklist, error) {
	checklist := models.DailyChecklist{
		OutletID:      outletID,
		ChecklistName: checklistName,
		IsCompleted:   false,
		Date:          date,
	}
	if err := db.Create(&checklist).Error; err != nil {
		return nil, err
	}
	return &checklist, nil
}

func UpdateChecklistStatus(db *gorm.DB, checklistID uint64, isCompleted bool) error {
	var checklist models.DailyChecklist
	if err := db.First(&checklist, checklistID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound("Checklist not found")
		}
		return err
	}
	checklist.IsCompleted = isCompleted
	return db.Save(&checklist).Error
}

// OpenShift starts a shift report. ShiftEnd mirrors ShiftStart and
// FinalCash stays zero until someone closes the shift out-of-band;
// no close-shift operation exists yet.
func OpenShift(db *gorm.DB, outletID, employeeID uint64, shiftStart time.Time, initialCash int64) (*models.ShiftReport, error) {
	shift := models.ShiftReport{
		OutletID:    outletID,
		EmployeeID:  employeeID,
		ShiftStart:  shiftStart,
		ShiftEnd:    shiftStart,
		InitialCash: initialCash,
		FinalCash:   0,
		Status:      models.ShiftOpen,
	}
	if err := db.Create(&shift).Error; err != nil {
		return nil, err
	}
	return &shift, nil
}
