package middleware

import (
	"net/http"

	"shopapi/internal/domain/model"
	"shopapi/internal/repository"

	"github.com/labstack/echo/v4"
)

type adminErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// IsAdminはDB上の現在のroleで判定する（トークン発行後の降格を拾うため）。
func IsAdmin(users repository.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rawID := c.Get(CtxUserIDKey)
			userID, ok := rawID.(int64)
			if !ok || userID <= 0 {
				return c.JSON(http.StatusUnauthorized, adminErrorResponse{
					Success: false,
					Message: "UnAuthorized Access",
				})
			}

			u, err := users.FindByID(c.Request().Context(), userID)
			if err != nil || u.Role != model.RoleAdmin {
				return c.JSON(http.StatusUnauthorized, adminErrorResponse{
					Success: false,
					Message: "UnAuthorized Access",
				})
			}

			return next(c)
		}
	}
}
