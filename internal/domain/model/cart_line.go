package model

import "time"

// カートの明細
// (userId, productId) は一意。quantity=0 の行は保存しない（削除で表す）。
type CartLine struct {
	ID        int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    int64 `gorm:"not null;uniqueIndex:idx_cart_user_product" json:"userId"`
	ProductID int64 `gorm:"not null;uniqueIndex:idx_cart_user_product" json:"productId"`
	Quantity  int64 `gorm:"not null" json:"quantity"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`

	//GET /cart/:userId で商品を埋め込んで返す
	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}
