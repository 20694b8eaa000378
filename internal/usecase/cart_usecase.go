package usecase

import (
	"context"
	"errors"
	"net/http"

	"marketplace/internal/domain/model"
	repo "marketplace/internal/repository"
)

// CartUsecase は /cart の業務ロジックです。
// 数量は常に絶対値で受け取る（サーバー側で加算・減算はしない）。
type CartUsecase struct {
	cartRepo repo.CartRepository
}

func NewCartUsecase(cartRepo repo.CartRepository) *CartUsecase {
	return &CartUsecase{cartRepo: cartRepo}
}

// SetQuantity は明細を絶対数量で上書きする。
// quantity=0 は削除（行が無くても成功する冪等な操作）。
// 戻り値の removed は「削除扱いだったか」（handlerが200/201を出し分ける）。
func (u *CartUsecase) SetQuantity(ctx context.Context, userID int64, productID int64, quantity int64) (removed bool, err error) {
	if userID <= 0 {
		return false, NewHTTPError(http.StatusBadRequest, "userId is required")
	}
	if productID <= 0 {
		return false, NewHTTPError(http.StatusBadRequest, "invalid productId")
	}
	if quantity < 0 {
		return false, NewHTTPError(http.StatusBadRequest, "invalid quantity")
	}

	if quantity == 0 {
		if err := u.cartRepo.DeleteIfExists(ctx, userID, productID); err != nil {
			return false, NewHTTPError(http.StatusInternalServerError, "db error")
		}
		return true, nil
	}

	if err := u.cartRepo.Upsert(ctx, userID, productID, quantity); err != nil {
		return false, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return false, nil
}

// GetCart はユーザーのカート明細（商品埋め込み）を返す。
// 空は正常な結果（「ユーザーが存在しない」とは区別しない）。
func (u *CartUsecase) GetCart(ctx context.Context, userID int64) ([]model.CartLine, error) {
	if userID <= 0 {
		return nil, NewHTTPError(http.StatusBadRequest, "userId is required")
	}

	lines, err := u.cartRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return lines, nil
}

// RemoveLine は明細を削除する。無ければ404（2回目の削除は not found）。
func (u *CartUsecase) RemoveLine(ctx context.Context, userID int64, productID int64) error {
	if userID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "User ID is required")
	}
	if productID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid productId")
	}

	err := u.cartRepo.Delete(ctx, userID, productID)
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, "Product not found in cart")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}
