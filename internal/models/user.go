package models

import (
	"time"
)

type User struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	FirebaseUID string    `json:"firebase_uid" gorm:"size:100;unique;not null"`
	Email       string    `json:"email" gorm:"size:100"`
	Name        string    `json:"name" gorm:"size:100"`
	Address     string    `json:"address" gorm:"size:255"`
	Phone       string    `json:"phone" gorm:"size:20"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
