package model

// 注文1件の中の商品1つ。数量は常に1（同じ商品を2回頼むと2行になる）。
// 価格はスナップショットせず、集計時に商品側の現在価格を読む。
type OrderItem struct {
	ID        string  `gorm:"type:uuid;primaryKey" json:"id"`
	OrderID   string  `gorm:"type:uuid;not null;index" json:"order_id"`
	ProductID string  `gorm:"type:uuid;not null;index" json:"product_id"`
	Product   Product `gorm:"foreignKey:ProductID" json:"product"`
}
