package models

import (
	"time"
)

type Store struct {
	ID              uint        `json:"id" gorm:"primaryKey"`
	Name            string      `json:"name" gorm:"size:100;not null;uniqueIndex:idx_stores_name_address"`
	Address         string      `json:"address" gorm:"size:255;not null;uniqueIndex:idx_stores_name_address"`
	PrepTimeMinutes int         `json:"prep_time_minutes"`
	Status          StoreStatus `json:"status" gorm:"type:varchar(20);default:'open'"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

type StoreStatus string

const (
	StoreOpen   StoreStatus = "open"
	StoreClosed StoreStatus = "closed"
)

func (s StoreStatus) Valid() bool {
	switch s {
	case StoreOpen, StoreClosed:
		return true
	}
	return false
}
