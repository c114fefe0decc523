package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is the identity record. The ID doubles as the farmerId that scopes
// ledger records.
type User struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"default:New User" json:"name"`
	Email     string    `gorm:"unique;not null" json:"email"`
	Image     string    `json:"image"`
	GoogleID  string    `json:"googleId,omitempty"`
	Accounts  []Account `gorm:"foreignKey:UserID" json:"-"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// Account links a user to an external OAuth identity, keyed by
// (provider, providerAccountId).
type Account struct {
	ID                uint   `gorm:"primaryKey" json:"id"`
	UserID            string `gorm:"index;not null" json:"userId"`
	Type              string `gorm:"default:oauth" json:"type"`
	Provider          string `gorm:"uniqueIndex:idx_provider_account;not null" json:"provider"`
	ProviderAccountID string `gorm:"uniqueIndex:idx_provider_account;not null" json:"providerAccountId"`
	IDToken           string `json:"-"`
	Scope             string `json:"scope,omitempty"`
	TokenType         string `json:"tokenType,omitempty"`
	CreatedAt         time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt         time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
