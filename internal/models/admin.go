package models

import (
	"time"
)

type Admin struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Username  string    `json:"username" gorm:"size:50;unique;not null"`
	Password  string    `json:"-" gorm:"size:255;not null"`
	Coffees   []Coffee  `json:"coffees,omitempty" gorm:"foreignKey:AdminID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
