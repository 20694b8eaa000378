package model

import "time"

// 注文確定時点のカート明細の凍結コピー
type OrderLine struct {
	ID        int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID   int64 `gorm:"not null;uniqueIndex:idx_order_line_order_product" json:"orderId"`
	ProductID int64 `gorm:"not null;uniqueIndex:idx_order_line_order_product" json:"productId"`
	Quantity  int64 `gorm:"not null" json:"quantity"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
