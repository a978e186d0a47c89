package reducers

import (
	"errors"

	"go-chain-ops/internal/models"

	"gorm.io/gorm"
)

func AddCandidate(db *gorm.DB, name, position, phone, email string) (*models.Candidate, error) {
	candidate := models.Candidate{
		Name:     name,
		Position: position,
		Phone:    phone,
		Email:    email,
		Status:   models.CandidateApplied,
	}
	if err := db.Create(&candidate).Error; err != nil {
		return nil, err
	}
	return &candidate, nil
}

// UpdateCandidateStatus overwrites the status with any valid value.
// There is no transition order between Applied, Interview, Hired
// and Rejected.
func UpdateCandidateStatus(db *gorm.DB, candidateID uint64, status models.CandidateStatus) error {
	if !status.Valid() {
		return validation("Invalid candidate status")
	}
	var candidate models.Candidate
	if err := db.First(&candidate, candidateID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound("Candidate not found")
		}
		return err
	}
	candidate.Status = status
	return db.Save(&candidate).Error
}
