package models

import (
	"time"

	"gorm.io/gorm"
)

// Estados posibles de un gasto
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Expense modelo de gasto
type Expense struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	Amount      float64        `json:"amount" gorm:"type:decimal(10,2);not null"`
	Description string         `json:"description" gorm:"size:255;not null"`
	Category    string         `json:"category" gorm:"size:50;not null"`
	Date        time.Time      `json:"date" gorm:"not null"`
	Status      string         `json:"status" gorm:"size:20;default:pending"`
	UserID      uint           `json:"user_id" gorm:"index;not null"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
	User        User           `json:"-" gorm:"foreignKey:UserID"`
	Receipts    []Receipt      `json:"receipts,omitempty" gorm:"foreignKey:ExpenseID"`
}

// TableName configura el nombre de la tabla
func (Expense) TableName() string {
	return "expenses"
}

// GetStatuses devuelve los estados válidos de un gasto
func GetStatuses() []string {
	return []string{StatusPending, StatusApproved, StatusRejected}
}
