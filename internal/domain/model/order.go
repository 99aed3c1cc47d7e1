package model

import "time"

type Order struct {
	ID      string `gorm:"type:uuid;primaryKey" json:"id"`
	StoreID string `gorm:"type:uuid;not null;index" json:"store_id"`
	//falseで作られ、決済確定（settlement）で一度だけtrueになる。戻らない。
	IsPaid     bool        `gorm:"not null;default:false;index" json:"is_paid"`
	Phone      string      `gorm:"type:varchar(64);not null;default:''" json:"phone"`
	Address    string      `gorm:"type:text;not null;default:''" json:"address"`
	OrderItems []OrderItem `gorm:"foreignKey:OrderID" json:"order_items"`
	CreatedAt  time.Time   `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time   `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
