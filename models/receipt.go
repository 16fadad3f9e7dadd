package models

import (
	"time"

	"gorm.io/gorm"
)

// Receipt modelo de recibo: la imagen que respalda un gasto,
// alojada en un servicio externo (ImgBB)
type Receipt struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	URL          string         `json:"url" gorm:"size:512;not null"`
	Filename     string         `json:"filename" gorm:"size:255"`
	ThumbnailURL string         `json:"thumbnail_url,omitempty" gorm:"size:512"`
	DeleteURL    string         `json:"delete_url,omitempty" gorm:"size:512"`
	ExpenseID    uint           `json:"expense_id" gorm:"index;not null"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"-" gorm:"index"`
	Expense      Expense        `json:"-" gorm:"foreignKey:ExpenseID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName configura el nombre de la tabla
func (Receipt) TableName() string {
	return "receipts"
}
