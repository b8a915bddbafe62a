package models

import (
	"time"

	"gorm.io/gorm"
)

// TransactionType defines the type of wallet transaction
type TransactionType string

const (
	TransactionTypeCredit   TransactionType = "CREDIT"
	TransactionTypeDebit    TransactionType = "DEBIT"
	TransactionTypePurchase TransactionType = "PURCHASE"
)

// WalletTransaction tracks all wallet transactions for a user
type WalletTransaction struct {
	gorm.Model
	UserID          uint            `gorm:"not null;index" json:"userId"`
	TransactionType TransactionType `gorm:"type:varchar(20);not null" json:"transactionType"`
	Amount          float64         `gorm:"not null" json:"amount"`
	BalanceBefore   float64         `gorm:"not null" json:"balanceBefore"`
	BalanceAfter    float64         `gorm:"not null" json:"balanceAfter"`
	Description     string          `gorm:"type:text" json:"description"`
	TransactionDate time.Time       `gorm:"not null" json:"transactionDate"`
	IsDeleted       bool            `gorm:"default:false" json:"-"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (WalletTransaction) TableName() string {
	return "wallet_transactions"
}
