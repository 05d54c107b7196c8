package handler

import (
	"net/http"
	"strconv"

	"shopapi/internal/config"
	"shopapi/internal/domain/model"
	"shopapi/internal/middleware"
	"shopapi/internal/repository"
	"shopapi/internal/usecase"

	"github.com/labstack/echo/v4"
)

// 注文の閲覧・ステータス管理。既存API互換で /api/v1/auth 配下。
type OrderHandler struct {
	uc *usecase.OrderUsecase
}

// DI
func NewOrderHandler(uc *usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

func (h *OrderHandler) RegisterRoutes(e *echo.Echo, cfg config.Config, userRepo repository.UserRepository) {
	g := e.Group("/api/v1/auth", middleware.RequireSignIn(cfg))

	g.GET("/orders", h.myOrders)

	admin := g.Group("", middleware.IsAdmin(userRepo))
	admin.GET("/all-orders", h.allOrders)
	admin.PUT("/order-status/:orderId", h.updateStatus)
}

func (h *OrderHandler) myOrders(c echo.Context) error {
	buyerID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, envelope{"success": false, "message": "unauthorized"})
	}

	orders, err := h.uc.ListMyOrders(c.Request().Context(), buyerID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) allOrders(c echo.Context) error {
	orders, err := h.uc.ListAllOrders(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, orders)
}

type orderStatusRequest struct {
	Status string `json:"status"`
}

func (h *OrderHandler) updateStatus(c echo.Context) error {
	orderID, err := strconv.ParseInt(c.Param("orderId"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, envelope{"success": false, "message": "invalid id"})
	}

	var req orderStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, envelope{"success": false, "message": "invalid body"})
	}

	if err := h.uc.UpdateStatus(c.Request().Context(), orderID, model.OrderStatus(req.Status)); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, envelope{
		"success": true,
		"message": "Status Updated Successfully",
	})
}
