package server

import (
	"shopapi/internal/config"
	"shopapi/internal/handler"
	"shopapi/internal/repository"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(
	e *echo.Echo,
	cfg config.Config,
	userRepo repository.UserRepository,
	authH *handler.AuthHandler,
	categoryH *handler.CategoryHandler,
	productH *handler.ProductHandler,
	checkoutH *handler.CheckoutHandler,
	orderH *handler.OrderHandler,
) {
	authH.RegisterRoutes(e, cfg, userRepo)
	categoryH.RegisterRoutes(e, cfg, userRepo)
	productH.RegisterRoutes(e, cfg, userRepo)
	checkoutH.RegisterRoutes(e, cfg)
	orderH.RegisterRoutes(e, cfg, userRepo)
}
