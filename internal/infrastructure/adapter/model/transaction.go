package model

import (
	"time"
)

// Transaction represents the database model for ledger entries
type Transaction struct {
	ID              uint64    `gorm:"primaryKey;autoIncrement"`
	UserID          uint64    `gorm:"not null;index:idx_transactions_owner_date,priority:1"`
	TransactionType string    `gorm:"not null;size:16;check:chk_transactions_type,transaction_type IN ('income','expense')"`
	Amount          float64   `gorm:"type:double precision;not null"`
	Description     string    `gorm:"type:text"`
	TransactionDate time.Time `gorm:"not null;index:idx_transactions_owner_date,priority:2"`
	CreatedAt       time.Time `gorm:"not null"`

	// Define relationships
	User User `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}
