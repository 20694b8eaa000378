package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// カート/注文からは読み取り専用のカタログ商品
type Product struct {
	ID          int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string `gorm:"type:varchar(255);not null" json:"title"`
	Photo       string `gorm:"type:varchar(255)" json:"photo"`
	Description string `gorm:"type:text" json:"description"`
	VendorInfo  string `gorm:"type:varchar(255);column:vendor_info" json:"vendorInfo"`

	//通貨は小数2桁固定
	Price decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
