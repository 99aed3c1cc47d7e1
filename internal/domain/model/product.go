package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Product struct {
	ID         string `gorm:"type:uuid;primaryKey" json:"id"`
	StoreID    string `gorm:"type:uuid;not null;index" json:"store_id"`
	CategoryID string `gorm:"type:uuid;not null;index" json:"category_id"`
	SizeID     string `gorm:"type:uuid;not null" json:"size_id"`
	ColorID    string `gorm:"type:uuid;not null" json:"color_id"`
	Name       string `gorm:"type:varchar(255);not null" json:"name"`
	//金額は浮動小数で持たない（集計で誤差が出るため）
	Price      decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"price"`
	IsFeatured bool            `gorm:"not null;default:false" json:"is_featured"`
	IsArchived bool            `gorm:"not null;default:false" json:"is_archived"`
	Images     []Image         `gorm:"foreignKey:ProductID" json:"images"`
	CreatedAt  time.Time       `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time       `gorm:"not null;autoUpdateTime" json:"updated_at"`
	DeletedAt  gorm.DeletedAt  `gorm:"index" json:"-"`
}
