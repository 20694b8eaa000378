package handler

import (
	"net/http"
	"strconv"
	"time"

	"marketplace/internal/usecase"

	"github.com/labstack/echo/v4"
)

type OrderHandler struct {
	uc *usecase.OrderUsecase
}

func NewOrderHandler(uc *usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

type CreateOrderRequest struct {
	UserID          int64      `json:"userId"`
	DeliveryAddress string     `json:"deliveryAddress"`
	DeliveryDate    *time.Time `json:"deliveryDate"`
}

type CreateOrderResponse struct {
	Message string `json:"message"`
	OrderID int64  `json:"orderId"`
}

func (h *OrderHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/my-orders", h.create)
	e.GET("/my-orders", h.list)
}

// POST /my-orders。空カートは400、商品消失は500（エラー種別は本文で区別できる）。
func (h *OrderHandler) create(c echo.Context) error {
	var req CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	orderID, err := h.uc.PlaceOrder(c.Request().Context(), req.UserID, usecase.PlaceOrderInput{
		DeliveryAddress: req.DeliveryAddress,
		DeliveryDate:    req.DeliveryDate,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, CreateOrderResponse{Message: "Order created", OrderID: orderID})
}

// GET /my-orders?userId=。注文が無ければ404（契約どおり）。
func (h *OrderHandler) list(c echo.Context) error {
	userID, err := strconv.ParseInt(c.QueryParam("userId"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid userId"})
	}

	out, err := h.uc.ListOrders(c.Request().Context(), userID)
	if err != nil {
		return writeError(c, err)
	}

	if len(out) == 0 {
		return c.JSON(http.StatusNotFound, MessageResponse{Message: "Orders not found"})
	}

	return c.JSON(http.StatusOK, out)
}
