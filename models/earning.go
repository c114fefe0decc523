package models

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Ledger amounts render as JSON numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

type Earning struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	FarmerID    string          `gorm:"index;not null" json:"farmerId"`
	Amount      decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"amount"`
	Source      string          `gorm:"not null" json:"source"`
	Description string          `json:"description,omitempty"`
	CropName    string          `json:"cropName,omitempty"`
	Date        time.Time       `gorm:"index" json:"date"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime" json:"updatedAt"`
}
