package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// OrderStatus defines the lifecycle of a payment order
type OrderStatus string

const (
	OrderStatusCreated OrderStatus = "CREATED"
	OrderStatusPaid    OrderStatus = "PAID"
	OrderStatusExpired OrderStatus = "EXPIRED"
)

// PaymentOrder correlates a gateway order to the user and courses it was
// created for. The gateway owns the order itself; this row only carries the
// notes needed to resolve a verification callback.
type PaymentOrder struct {
	gorm.Model
	OrderID  string         `gorm:"uniqueIndex;not null" json:"orderId"` // gateway order id
	Receipt  string         `gorm:"not null" json:"receipt"`
	UserID   uint           `gorm:"index;not null" json:"userId"`
	Amount   int64          `gorm:"not null" json:"amount"` // minor units
	Currency string         `gorm:"type:varchar(10);not null" json:"currency"`
	Notes    datatypes.JSON `json:"notes"` // {"courses": [ids]}
	Status   OrderStatus    `gorm:"type:varchar(20);default:'CREATED'" json:"status"`
}

func (PaymentOrder) TableName() string {
	return "payment_orders"
}
