package models

import (
	"time"
)

type OrderItem struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	OrderID   uint      `json:"order_id" gorm:"not null;index"`
	CoffeeID  string    `json:"coffee_id" gorm:"size:50;not null"`
	Size      CupSize   `json:"size" gorm:"type:varchar(10);default:'small'"`
	Quantity  int       `json:"quantity" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CupSize is the serving size of a single order line.
type CupSize string

const (
	SizeSmall  CupSize = "small"
	SizeMedium CupSize = "medium"
	SizeLarge  CupSize = "large"
)

func (s CupSize) Valid() bool {
	switch s {
	case SizeSmall, SizeMedium, SizeLarge:
		return true
	}
	return false
}
