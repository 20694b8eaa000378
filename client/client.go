// Package client は marketplace API のGoクライアントと、
// リロード（プロセス再起動）をまたいで生き残るローカルのカートミラーを提供する。
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// サーバー側のJSON契約に合わせたDTO

type Product struct {
	ID          int64           `json:"id"`
	Title       string          `json:"title"`
	Photo       string          `json:"photo"`
	Description string          `json:"description"`
	VendorInfo  string          `json:"vendorInfo"`
	Price       decimal.Decimal `json:"price"`
}

type CartLine struct {
	ID        int64    `json:"id"`
	UserID    int64    `json:"userId"`
	ProductID int64    `json:"productId"`
	Quantity  int64    `json:"quantity"`
	Product   *Product `json:"product,omitempty"`
}

type OrderLine struct {
	ProductID int64           `json:"productId"`
	Title     string          `json:"title"`
	Photo     string          `json:"photo"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int64           `json:"quantity"`
}

type Order struct {
	ID              int64           `json:"id"`
	UserID          int64           `json:"userId"`
	OrderDate       time.Time       `json:"orderDate"`
	DeliveryAddress string          `json:"deliveryAddress"`
	DeliveryDate    *time.Time      `json:"deliveryDate"`
	OrderStatus     string          `json:"orderStatus"`
	TotalCost       decimal.Decimal `json:"totalCost"`
	Products        []OrderLine     `json:"products"`
}

type apiError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// APIError はサーバーが返したエラー応答。
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

func (c *Client) doJSON(ctx context.Context, method string, path string, reqBody interface{}, out interface{}) error {
	var body io.Reader
	if reqBody != nil {
		b, err := json.Marshal(reqBody)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return err
	}
	if reqBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode >= 400 {
		var ae apiError
		_ = json.Unmarshal(data, &ae)
		msg := ae.Error
		if msg == "" {
			msg = ae.Message
		}
		return &APIError{Status: resp.StatusCode, Message: msg}
	}

	if out != nil {
		return json.Unmarshal(data, out)
	}
	return nil
}

// Products は全カタログを返す。
func (c *Client) Products(ctx context.Context) ([]Product, error) {
	var out []Product
	if err := c.doJSON(ctx, http.MethodGet, "/products", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetProduct は商品を1件取得する。
func (c *Client) GetProduct(ctx context.Context, productID int64) (Product, error) {
	var out Product
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/products/%d", productID), nil, &out); err != nil {
		return Product{}, err
	}
	return out, nil
}

// GetCart はサーバーの正のカートを返す。
// サーバーは空カートを404で表すので、404は「空」として正常に返す。
func (c *Client) GetCart(ctx context.Context, userID int64) ([]CartLine, error) {
	var out []CartLine
	err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/cart/%d", userID), nil, &out)
	if err != nil {
		var ae *APIError
		if errors.As(err, &ae) && ae.Status == http.StatusNotFound {
			return []CartLine{}, nil
		}
		return nil, err
	}
	return out, nil
}

type setCartRequest struct {
	UserID    int64 `json:"userId"`
	ProductID int64 `json:"productId"`
	Quantity  int64 `json:"quantity"`
}

// SetQuantity は絶対数量をサーバーへ送る。quantity=0 は削除。
func (c *Client) SetQuantity(ctx context.Context, userID int64, productID int64, quantity int64) error {
	return c.doJSON(ctx, http.MethodPost, "/cart", setCartRequest{
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
	}, nil)
}

type removeCartRequest struct {
	UserID int64 `json:"userId"`
}

// RemoveLine は明細を削除する。無ければ found=false。
func (c *Client) RemoveLine(ctx context.Context, userID int64, productID int64) (found bool, err error) {
	err = c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/cart/%d", productID), removeCartRequest{UserID: userID}, nil)
	if err != nil {
		var ae *APIError
		if errors.As(err, &ae) && ae.Status == http.StatusNotFound {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

type createOrderRequest struct {
	UserID          int64      `json:"userId"`
	DeliveryAddress string     `json:"deliveryAddress"`
	DeliveryDate    *time.Time `json:"deliveryDate,omitempty"`
}

type createOrderResponse struct {
	Message string `json:"message"`
	OrderID int64  `json:"orderId"`
}

// PlaceOrder は注文を作成して新しい注文IDを返す。
// 成功時はサーバー側でカートが空になるので、ローカルミラーも空にするのは呼び出し側の責務
// （SyncCartを呼べば追従する）。
func (c *Client) PlaceOrder(ctx context.Context, userID int64, deliveryAddress string, deliveryDate *time.Time) (int64, error) {
	var out createOrderResponse
	err := c.doJSON(ctx, http.MethodPost, "/my-orders", createOrderRequest{
		UserID:          userID,
		DeliveryAddress: deliveryAddress,
		DeliveryDate:    deliveryDate,
	}, &out)
	if err != nil {
		return 0, err
	}
	return out.OrderID, nil
}

// MyOrders は注文履歴を返す。1件も無ければ空スライス。
func (c *Client) MyOrders(ctx context.Context, userID int64) ([]Order, error) {
	var out []Order
	err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/my-orders?userId=%d", userID), nil, &out)
	if err != nil {
		var ae *APIError
		if errors.As(err, &ae) && ae.Status == http.StatusNotFound {
			return []Order{}, nil
		}
		return nil, err
	}
	return out, nil
}

// SyncCart はサーバーの正のカートを取得してミラーへ上書きする。
// サーバーが常に勝つ（ローカルの未確定変更は捨てる）。
func (c *Client) SyncCart(ctx context.Context, userID int64, mirror *CartMirror) error {
	lines, err := c.GetCart(ctx, userID)
	if err != nil {
		return err
	}
	return mirror.Reconcile(lines)
}
