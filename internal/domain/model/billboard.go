package model

import "time"

type Billboard struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	StoreID   string    `gorm:"type:uuid;not null;index" json:"store_id"`
	Label     string    `gorm:"type:varchar(255);not null" json:"label"`
	ImageURL  string    `gorm:"type:text;not null" json:"image_url"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
