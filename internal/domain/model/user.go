package model

import "time"

type User struct {
	ID    int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Login string `gorm:"type:varchar(255);uniqueIndex;not null" json:"login"`

	//平文では保存しない（bcryptハッシュのみ）
	PasswordHash string `gorm:"column:password_hash;not null" json:"-"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
