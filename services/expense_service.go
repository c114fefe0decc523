package services

import (
	"farmpro/dto"
	"farmpro/errors"
	"farmpro/models"
	"farmpro/services/logger"

	"gorm.io/gorm"
)

// ExpenseService mirrors EarningService for the expense record kind.
type ExpenseService struct {
	DB  *gorm.DB
	Log logger.Logger
}

func NewExpenseService(db *gorm.DB) *ExpenseService {
	return &ExpenseService{
		DB:  db,
		Log: logger.NewDefaultLogger(logger.InfoLevel),
	}
}

func (s *ExpenseService) List(farmerID string) ([]models.Expense, error) {
	expenses := make([]models.Expense, 0)
	if err := s.DB.
		Where("farmer_id = ?", farmerID).
		Order("date DESC, id DESC").
		Find(&expenses).Error; err != nil {
		s.Log.Error("Error fetching expenses: %v", err)
		return nil, errors.Internal("Failed to fetch expenses", err)
	}
	return expenses, nil
}

func (s *ExpenseService) Create(input dto.CreateExpenseInput) (*models.Expense, error) {
	expense := models.Expense{
		FarmerID:    input.FarmerID,
		Amount:      *input.Amount,
		Category:    input.Category,
		Description: input.Description,
		CropName:    input.CropName,
		Date:        parseRecordDate(input.Date),
	}

	if err := s.DB.Create(&expense).Error; err != nil {
		s.Log.Error("Error creating expense: %v", err)
		return nil, errors.Internal("Failed to create expense", err)
	}
	return &expense, nil
}

func (s *ExpenseService) Delete(farmerID string, id uint) error {
	result := s.DB.
		Where("id = ? AND farmer_id = ?", id, farmerID).
		Delete(&models.Expense{})
	if result.Error != nil {
		s.Log.Error("Error deleting expense: %v", result.Error)
		return errors.Internal("Failed to delete expense", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NotFound("Expense not found or does not belong to this farmer")
	}
	return nil
}
