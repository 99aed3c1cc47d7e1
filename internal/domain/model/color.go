package model

import "time"

type Color struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	StoreID   string    `gorm:"type:uuid;not null;index" json:"store_id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Value     string    `gorm:"type:varchar(255);not null" json:"value"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
