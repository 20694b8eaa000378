package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "Pending"
	OrderStatusShipped   OrderStatus = "Shipped"
	OrderStatusDelivered OrderStatus = "Delivered"
	OrderStatusCanceled  OrderStatus = "Canceled"
)

// 注文。作成後はこのサブシステムからは変更しない。
type Order struct {
	ID              int64       `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID          int64       `gorm:"not null;index" json:"userId"`
	OrderDate       time.Time   `gorm:"not null" json:"orderDate"`
	DeliveryAddress string      `gorm:"type:varchar(255);not null" json:"deliveryAddress"`
	DeliveryDate    *time.Time  `json:"deliveryDate"`
	OrderStatus     OrderStatus `gorm:"type:varchar(20);not null;default:'Pending'" json:"orderStatus"`

	//確定時の合計。商品価格が後で変わっても再計算しない。
	TotalCost decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"totalCost"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
