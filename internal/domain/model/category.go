package model

import "time"

type Category struct {
	ID          string    `gorm:"type:uuid;primaryKey" json:"id"`
	StoreID     string    `gorm:"type:uuid;not null;index" json:"store_id"`
	BillboardID string    `gorm:"type:uuid;not null" json:"billboard_id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	CreatedAt   time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
