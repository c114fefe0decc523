package services

import (
	"time"

	"farmpro/dto"
	"farmpro/errors"
	"farmpro/models"
	"farmpro/services/logger"

	"gorm.io/gorm"
)

// EarningService owns earning records. All operations are scoped by the
// farmerId supplied by the caller.
type EarningService struct {
	DB  *gorm.DB
	Log logger.Logger
}

func NewEarningService(db *gorm.DB) *EarningService {
	return &EarningService{
		DB:  db,
		Log: logger.NewDefaultLogger(logger.InfoLevel),
	}
}

// parseRecordDate resolves the optional date field of a create payload.
// Missing or unparseable input defaults to now.
func parseRecordDate(raw string) time.Time {
	if raw == "" {
		return time.Now()
	}
	layouts := []string{
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	return time.Now()
}

func (s *EarningService) List(farmerID string) ([]models.Earning, error) {
	earnings := make([]models.Earning, 0)
	if err := s.DB.
		Where("farmer_id = ?", farmerID).
		Order("date DESC, id DESC").
		Find(&earnings).Error; err != nil {
		s.Log.Error("Error fetching earnings: %v", err)
		return nil, errors.Internal("Failed to fetch earnings", err)
	}
	return earnings, nil
}

func (s *EarningService) Create(input dto.CreateEarningInput) (*models.Earning, error) {
	earning := models.Earning{
		FarmerID:    input.FarmerID,
		Amount:      *input.Amount,
		Source:      input.Source,
		Description: input.Description,
		CropName:    input.CropName,
		Date:        parseRecordDate(input.Date),
	}

	if err := s.DB.Create(&earning).Error; err != nil {
		s.Log.Error("Error creating earning: %v", err)
		return nil, errors.Internal("Failed to create earning", err)
	}
	return &earning, nil
}

// Delete removes the record in a single statement scoped by both owner and
// id; the affected-row count distinguishes deleted from not found.
func (s *EarningService) Delete(farmerID string, id uint) error {
	result := s.DB.
		Where("id = ? AND farmer_id = ?", id, farmerID).
		Delete(&models.Earning{})
	if result.Error != nil {
		s.Log.Error("Error deleting earning: %v", result.Error)
		return errors.Internal("Failed to delete earning", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NotFound("Earning not found or does not belong to this farmer")
	}
	return nil
}
