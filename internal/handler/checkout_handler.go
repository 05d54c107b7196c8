package handler

import (
	"net/http"

	"shopapi/internal/config"
	"shopapi/internal/middleware"
	"shopapi/internal/usecase"

	"github.com/labstack/echo/v4"
)

// Braintree連携（トークン発行と決済）のHTTP。
// 既存API互換のため /api/v1/product 配下にぶら下げる。
type CheckoutHandler struct {
	uc *usecase.CheckoutUsecase
}

// DI
func NewCheckoutHandler(uc *usecase.CheckoutUsecase) *CheckoutHandler {
	return &CheckoutHandler{uc: uc}
}

func (h *CheckoutHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	g := e.Group("/api/v1/product/braintree")

	g.GET("/token", h.token)
	g.POST("/payment", h.payment, middleware.RequireSignIn(cfg))
}

func (h *CheckoutHandler) token(c echo.Context) error {
	token, err := h.uc.ClientToken(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, envelope{"clientToken": token})
}

type paymentRequest struct {
	Nonce string             `json:"nonce"`
	Cart  []usecase.CartItem `json:"cart"`
}

func (h *CheckoutHandler) payment(c echo.Context) error {
	buyerID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, envelope{"success": false, "message": "unauthorized"})
	}

	var req paymentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, envelope{"success": false, "message": "invalid body"})
	}

	if err := h.uc.Pay(c.Request().Context(), buyerID, usecase.PaymentInput{
		Nonce: req.Nonce,
		Cart:  req.Cart,
	}); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, envelope{"ok": true})
}
