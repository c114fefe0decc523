package dto

import (
	"github.com/shopspring/decimal"
)

// CreateEarningInput accepts the amount as either a JSON number or a
// numeric string; decimal handles both on unmarshal. A nil Amount means the
// field was absent.
type CreateEarningInput struct {
	FarmerID    string           `json:"farmerId"`
	Amount      *decimal.Decimal `json:"amount"`
	Source      string           `json:"source"`
	Description string           `json:"description"`
	CropName    string           `json:"cropName"`
	Date        string           `json:"date"`
}

type CreateExpenseInput struct {
	FarmerID    string           `json:"farmerId"`
	Amount      *decimal.Decimal `json:"amount"`
	Category    string           `json:"category"`
	Description string           `json:"description"`
	CropName    string           `json:"cropName"`
	Date        string           `json:"date"`
}
