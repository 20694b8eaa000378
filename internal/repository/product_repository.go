package repository

import (
	"context"
	"errors"

	"marketplace/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

// 商品の取得だけを約束。カート/注文側からは読み取り専用。
type ProductRepository interface {
	List(ctx context.Context) ([]model.Product, error)
	FindByID(ctx context.Context, id int64) (model.Product, error)

	//初期データ投入用
	Count(ctx context.Context) (int64, error)
	CreateBulk(ctx context.Context, products []model.Product) error
}
