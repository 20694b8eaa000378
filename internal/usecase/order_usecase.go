package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"marketplace/internal/domain/model"
	repo "marketplace/internal/repository"

	"github.com/shopspring/decimal"
)

type OrderUsecase struct {
	tx repo.TransactionManager
}

func NewOrderUsecase(tx repo.TransactionManager) *OrderUsecase {
	return &OrderUsecase{tx: tx}
}

type PlaceOrderInput struct {
	DeliveryAddress string
	DeliveryDate    *time.Time
}

type OrderLineOutput struct {
	ProductID int64           `json:"productId"`
	Title     string          `json:"title"`
	Photo     string          `json:"photo"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int64           `json:"quantity"`
}

type OrderOutput struct {
	ID              int64             `json:"id"`
	UserID          int64             `json:"userId"`
	OrderDate       time.Time         `json:"orderDate"`
	DeliveryAddress string            `json:"deliveryAddress"`
	DeliveryDate    *time.Time        `json:"deliveryDate"`
	OrderStatus     string            `json:"orderStatus"`
	TotalCost       decimal.Decimal   `json:"totalCost"`
	Products        []OrderLineOutput `json:"products"`
}

// PlaceOrder はカートを不変の注文に変換する。
// 読み取り→検証→作成→カート空化までを1トランザクションで行う。
// カート行は FOR UPDATE で読むので、同一ユーザーの同時注文は直列化され、
// 後続は空カート扱いになる（同じスナップショットから注文が2つできることはない）。
func (u *OrderUsecase) PlaceOrder(ctx context.Context, userID int64, in PlaceOrderInput) (int64, error) {
	if userID <= 0 {
		return 0, NewHTTPError(http.StatusBadRequest, "userId is required")
	}
	if strings.TrimSpace(in.DeliveryAddress) == "" {
		return 0, NewHTTPError(http.StatusBadRequest, "deliveryAddress is required")
	}

	var orderID int64

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		//カート読み取り（行ロック）
		lines, err := r.Carts().ListByUserIDForUpdate(ctx, userID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if len(lines) == 0 {
			return NewHTTPError(http.StatusBadRequest, "Cart is empty")
		}

		//全明細の価格解決を先に済ませる。1件でも商品が消えていたら
		//注文は丸ごと失敗（部分的な注文は残さない）。
		total := decimal.Zero
		orderLines := make([]model.OrderLine, 0, len(lines))

		for _, line := range lines {
			p, err := r.Products().FindByID(ctx, line.ProductID)
			if errors.Is(err, repo.ErrNotFound) {
				return NewHTTPError(http.StatusInternalServerError, "product not found")
			}
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}

			subtotal := p.Price.Mul(decimal.NewFromInt(line.Quantity))
			total = total.Add(subtotal)

			orderLines = append(orderLines, model.OrderLine{
				ProductID: line.ProductID,
				Quantity:  line.Quantity,
			})
		}

		//注文作成
		now := time.Now()
		orderID, err = r.Orders().Create(ctx, model.Order{
			UserID:          userID,
			OrderDate:       now,
			DeliveryAddress: strings.TrimSpace(in.DeliveryAddress),
			DeliveryDate:    in.DeliveryDate,
			OrderStatus:     model.OrderStatusPending,
			TotalCost:       total.Round(2),
			CreatedAt:       now,
			UpdatedAt:       now,
		})
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		//注文明細一括作成
		if err := r.OrderLines().CreateBulk(ctx, orderID, orderLines); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		//カート空化。ロック範囲の内側で行う（同時注文防止の一部）。
		if err := r.Carts().DeleteAllByUserID(ctx, userID); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		return nil
	})

	if err != nil {
		return 0, err
	}
	return orderID, nil
}

// ListOrders は注文履歴を商品表示項目（タイトル・写真・価格）付きで返す。
// 並び順は保証しない。
func (u *OrderUsecase) ListOrders(ctx context.Context, userID int64) ([]OrderOutput, error) {
	if userID <= 0 {
		return nil, NewHTTPError(http.StatusBadRequest, "userId is required")
	}

	var outs []OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		orders, err := r.Orders().ListByUserID(ctx, userID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		outs = make([]OrderOutput, 0, len(orders))
		for _, o := range orders {
			lines, err := r.OrderLines().ListByOrderID(ctx, o.ID)
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}

			products := make([]OrderLineOutput, 0, len(lines))
			for _, line := range lines {
				p, err := r.Products().FindByID(ctx, line.ProductID)
				if errors.Is(err, repo.ErrNotFound) {
					//カタログから消えた商品は表示項目なしで数量だけ返す
					products = append(products, OrderLineOutput{
						ProductID: line.ProductID,
						Quantity:  line.Quantity,
					})
					continue
				}
				if err != nil {
					return NewHTTPError(http.StatusInternalServerError, "db error")
				}

				products = append(products, OrderLineOutput{
					ProductID: line.ProductID,
					Title:     p.Title,
					Photo:     p.Photo,
					Price:     p.Price,
					Quantity:  line.Quantity,
				})
			}

			outs = append(outs, OrderOutput{
				ID:              o.ID,
				UserID:          o.UserID,
				OrderDate:       o.OrderDate,
				DeliveryAddress: o.DeliveryAddress,
				DeliveryDate:    o.DeliveryDate,
				OrderStatus:     string(o.OrderStatus),
				TotalCost:       o.TotalCost,
				Products:        products,
			})
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return outs, nil
}
