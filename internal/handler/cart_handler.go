package handler

import (
	"net/http"
	"strconv"

	"marketplace/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /cartのHTTP
type CartHandler struct {
	uc *usecase.CartUsecase
}

// DI
func NewCartHandler(uc *usecase.CartUsecase) *CartHandler {
	return &CartHandler{uc: uc}
}

// フィールド名はAPI契約の一部（camelCase固定）
type SetCartRequest struct {
	UserID    int64 `json:"userId"`
	ProductID int64 `json:"productId"`
	Quantity  int64 `json:"quantity"`
}

type RemoveCartRequest struct {
	UserID int64 `json:"userId"`
}

func (h *CartHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/cart", h.setQuantity)
	e.DELETE("/cart/:productId", h.removeLine)
	e.GET("/cart/:userId", h.getCart)
}

// POST /cart。quantity=0 は削除（200）、quantity>0 は絶対数量で上書き（201）。
func (h *CartHandler) setQuantity(c echo.Context) error {
	var req SetCartRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	removed, err := h.uc.SetQuantity(c.Request().Context(), req.UserID, req.ProductID, req.Quantity)
	if err != nil {
		return writeError(c, err)
	}

	if removed {
		return c.JSON(http.StatusOK, MessageResponse{Message: "Product removed from cart"})
	}
	return c.JSON(http.StatusCreated, MessageResponse{Message: "Product added to cart"})
}

// DELETE /cart/:productId。userIdはbodyで受け取る（契約どおり）。
func (h *CartHandler) removeLine(c echo.Context) error {
	productID, err := strconv.ParseInt(c.Param("productId"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid productId"})
	}

	var req RemoveCartRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	if err := h.uc.RemoveLine(c.Request().Context(), req.UserID, productID); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "Product removed from cart"})
}

// GET /cart/:userId。空のカートは404（契約どおり）。
func (h *CartHandler) getCart(c echo.Context) error {
	userID, err := strconv.ParseInt(c.Param("userId"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid userId"})
	}

	lines, err := h.uc.GetCart(c.Request().Context(), userID)
	if err != nil {
		return writeError(c, err)
	}

	if len(lines) == 0 {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "Cart is empty"})
	}

	return c.JSON(http.StatusOK, lines)
}
