package handler_test

import (
	"net/http"
	"testing"

	"marketplace/internal/domain/model"
	"marketplace/internal/handler"
	repo "marketplace/internal/repository"
	"marketplace/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type orderMocks struct {
	orders     *orderRepoMock
	orderLines *orderLineRepoMock
	carts      *cartRepoMock
	products   *productRepoMock
}

func newOrderEcho() (*echo.Echo, orderMocks) {
	m := orderMocks{
		orders:     new(orderRepoMock),
		orderLines: new(orderLineRepoMock),
		carts:      new(cartRepoMock),
		products:   new(productRepoMock),
	}

	tx := &txManagerStub{repos: &txReposStub{
		orders:     m.orders,
		orderLines: m.orderLines,
		carts:      m.carts,
		products:   m.products,
	}}

	e := echo.New()
	h := handler.NewOrderHandler(usecase.NewOrderUsecase(tx))
	h.RegisterRoutes(e)
	return e, m
}

// カート {p1:2, p2:1}、10.00と5.00 → 201、orderId返却
func TestPostMyOrders_Created(t *testing.T) {
	e, m := newOrderEcho()

	m.carts.On("ListByUserIDForUpdate", mock.Anything, int64(7)).Return([]model.CartLine{
		{ID: 1, UserID: 7, ProductID: 10, Quantity: 2},
		{ID: 2, UserID: 7, ProductID: 20, Quantity: 1},
	}, nil)
	m.products.On("FindByID", mock.Anything, int64(10)).Return(model.Product{
		ID: 10, Price: decimal.RequireFromString("10.00"),
	}, nil)
	m.products.On("FindByID", mock.Anything, int64(20)).Return(model.Product{
		ID: 20, Price: decimal.RequireFromString("5.00"),
	}, nil)
	m.orders.On("Create", mock.Anything, mock.MatchedBy(func(o model.Order) bool {
		return o.TotalCost.Equal(decimal.RequireFromString("25.00"))
	})).Return(int64(99), nil)
	m.orderLines.On("CreateBulk", mock.Anything, int64(99), mock.Anything).Return(nil)
	m.carts.On("DeleteAllByUserID", mock.Anything, int64(7)).Return(nil)

	rec := doRequest(t, e, http.MethodPost, "/my-orders", `{"userId":7,"deliveryAddress":"1 Main St"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp handler.CreateOrderResponse
	mustUnmarshal(t, rec.Body.Bytes(), &resp)
	assert.Equal(t, int64(99), resp.OrderID)
	assert.Equal(t, "Order created", resp.Message)
}

func TestPostMyOrders_EmptyCart400(t *testing.T) {
	e, m := newOrderEcho()
	m.carts.On("ListByUserIDForUpdate", mock.Anything, int64(7)).Return([]model.CartLine{}, nil)

	rec := doRequest(t, e, http.MethodPost, "/my-orders", `{"userId":7,"deliveryAddress":"1 Main St"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	m.orders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

// 商品消失は500だが、本文で内部エラーと区別できる
func TestPostMyOrders_ProductGone500(t *testing.T) {
	e, m := newOrderEcho()
	m.carts.On("ListByUserIDForUpdate", mock.Anything, int64(7)).Return([]model.CartLine{
		{ID: 1, UserID: 7, ProductID: 10, Quantity: 1},
	}, nil)
	m.products.On("FindByID", mock.Anything, int64(10)).Return(model.Product{}, repo.ErrNotFound)

	rec := doRequest(t, e, http.MethodPost, "/my-orders", `{"userId":7,"deliveryAddress":"1 Main St"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp handler.ErrorResponse
	mustUnmarshal(t, rec.Body.Bytes(), &resp)
	assert.Equal(t, "product not found", resp.Error)

	m.orders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	m.carts.AssertNotCalled(t, "DeleteAllByUserID", mock.Anything, mock.Anything)
}

func TestGetMyOrders_None404(t *testing.T) {
	e, m := newOrderEcho()
	m.orders.On("ListByUserID", mock.Anything, int64(7)).Return([]model.Order{}, nil)

	rec := doRequest(t, e, http.MethodGet, "/my-orders?userId=7", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetMyOrders_WithLines(t *testing.T) {
	e, m := newOrderEcho()

	m.orders.On("ListByUserID", mock.Anything, int64(7)).Return([]model.Order{
		{ID: 99, UserID: 7, OrderStatus: model.OrderStatusPending, TotalCost: decimal.RequireFromString("25.00")},
	}, nil)
	m.orderLines.On("ListByOrderID", mock.Anything, int64(99)).Return([]model.OrderLine{
		{OrderID: 99, ProductID: 10, Quantity: 2},
	}, nil)
	m.products.On("FindByID", mock.Anything, int64(10)).Return(model.Product{
		ID: 10, Title: "Apple iPhone 13", Photo: "iphone13.png", Price: decimal.RequireFromString("999.99"),
	}, nil)

	rec := doRequest(t, e, http.MethodGet, "/my-orders?userId=7", "")

	assert.Equal(t, http.StatusOK, rec.Code)

	var orders []map[string]interface{}
	mustUnmarshal(t, rec.Body.Bytes(), &orders)
	if assert.Len(t, orders, 1) {
		assert.Equal(t, "Pending", orders[0]["orderStatus"])
		products, ok := orders[0]["products"].([]interface{})
		if assert.True(t, ok) && assert.Len(t, products, 1) {
			line := products[0].(map[string]interface{})
			assert.Equal(t, "Apple iPhone 13", line["title"])
			assert.EqualValues(t, 2, line["quantity"])
		}
	}
}

func TestGetMyOrders_BadUserID(t *testing.T) {
	e, _ := newOrderEcho()

	rec := doRequest(t, e, http.MethodGet, "/my-orders?userId=abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
