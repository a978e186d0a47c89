package reducers

import (
	"errors"

	"go-chain-ops/internal/models"

	"gorm.io/gorm"
)

func CreateEmployee(db *gorm.DB, name, position string, outletID uint64, salary int64, status models.EmploymentStatus) (*models.Employee, error) {
	if !status.Valid() {
		return nil, validation("Invalid employment status")
	}
	emp := models.Employee{
		Name:     name,
		Position: position,
		OutletID: outletID,
		Salary:   salary,
		Status:   status,
	}
	if err := db.Create(&emp).Error; err != nil {
		return nil, err
	}
	return &emp, nil
}

func UpdateEmployeeStatus(db *gorm.DB, employeeID uint64, status models.EmploymentStatus) error {
	if !status.Valid() {
		return validation("Invalid employment status")
	}
	var emp models.Employee
	if err := db.First(&emp, employeeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound("Employee not found")
		}
		return err
	}
	emp.Status = status
	return db.Save(&emp).Error
}
