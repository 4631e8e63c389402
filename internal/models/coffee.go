package models

import (
	"time"
)

type Coffee struct {
	ID          string       `json:"id" gorm:"size:50;primaryKey"`
	AdminID     *uint        `json:"admin_id"`
	Name        string       `json:"name" gorm:"size:100;not null"`
	Description string       `json:"description" gorm:"type:text"`
	Image       []byte       `json:"image,omitempty"`
	CategoryID  *uint        `json:"category_id"`
	Price       float64      `json:"price" gorm:"type:decimal(10,2);not null"`
	Status      CoffeeStatus `json:"status" gorm:"type:varchar(20);default:'active'"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

type CoffeeStatus string

const (
	CoffeeActive   CoffeeStatus = "active"
	CoffeeInactive CoffeeStatus = "inactive"
)

func (s CoffeeStatus) Valid() bool {
	switch s {
	case CoffeeActive, CoffeeInactive:
		return true
	}
	return false
}
