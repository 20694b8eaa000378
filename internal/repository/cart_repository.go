package repository

import (
	"context"

	"marketplace/internal/domain/model"
)

type CartRepository interface {
	//商品を埋め込んで一覧取得
	ListByUserID(ctx context.Context, userID int64) ([]model.CartLine, error)

	//注文確定用：行ロック付きで一覧取得（FOR UPDATE）
	ListByUserIDForUpdate(ctx context.Context, userID int64) ([]model.CartLine, error)

	// 絶対数量で上書き（無ければ作成）。加算はしない。
	Upsert(ctx context.Context, userID int64, productID int64, quantity int64) error

	//行が無ければ ErrNotFound
	Delete(ctx context.Context, userID int64, productID int64) error

	//行が無くても成功（冪等）
	DeleteIfExists(ctx context.Context, userID int64, productID int64) error

	//注文成功後のカート空化
	DeleteAllByUserID(ctx context.Context, userID int64) error
}
