package handler

import (
	"net/http"

	"shopapi/internal/config"
	"shopapi/internal/middleware"
	"shopapi/internal/repository"
	"shopapi/internal/usecase"
	"shopapi/internal/validator"

	"github.com/labstack/echo/v4"
)

// /api/v1/auth のHTTP
type AuthHandler struct {
	uc *usecase.AuthUsecase
}

// DI
func NewAuthHandler(uc *usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

func (h *AuthHandler) RegisterRoutes(e *echo.Echo, cfg config.Config, userRepo repository.UserRepository) {
	g := e.Group("/api/v1/auth")

	g.POST("/register", h.register)
	g.POST("/login", h.login)
	g.POST("/forgot-password", h.forgotPassword)

	// フロントのルートガード用プローブ
	g.GET("/user-auth", h.probe, middleware.RequireSignIn(cfg))
	g.GET("/admin-auth", h.probe, middleware.RequireSignIn(cfg), middleware.IsAdmin(userRepo))
}

// labelが既存APIのメッセージ上の名前（"Phone no is Required"等）。
type registerRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
	Phone    string `json:"phone" validate:"required" label:"Phone no"`
	Address  string `json:"address" validate:"required"`
	Answer   string `json:"answer" validate:"required"`
	DOB      string `json:"DOB" validate:"required" label:"DOB"`
}

func (h *AuthHandler) register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, envelope{"message": "invalid body"})
	}

	if msg := validator.FirstRequiredMessage(req); msg != "" {
		return c.JSON(http.StatusBadRequest, envelope{"message": msg})
	}

	user, err := h.uc.Register(c.Request().Context(), usecase.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
		Address:  req.Address,
		Answer:   req.Answer,
		DOB:      req.DOB,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, envelope{
		"success": true,
		"message": "User Register Successfully",
		"user":    user,
	})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, envelope{"message": "invalid body"})
	}

	out, err := h.uc.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, envelope{
		"success": true,
		"message": "login successfully",
		"user":    out.User,
		"token":   out.Token,
	})
}

type forgotPasswordRequest struct {
	Email       string `json:"email" validate:"required"`
	Answer      string `json:"answer" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required" label:"New Password"`
}

func (h *AuthHandler) forgotPassword(c echo.Context) error {
	var req forgotPasswordRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, envelope{"message": "invalid body"})
	}

	// こちらだけ小文字の"is required"（既存APIの表記どおり）
	if field := validator.FirstMissingField(req); field != "" {
		return c.JSON(http.StatusBadRequest, envelope{"message": field + " is required"})
	}

	if err := h.uc.ForgotPassword(c.Request().Context(), usecase.ForgotPasswordInput{
		Email:       req.Email,
		Answer:      req.Answer,
		NewPassword: req.NewPassword,
	}); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, envelope{
		"success": true,
		"message": "Password Reset Successfully",
	})
}

func (h *AuthHandler) probe(c echo.Context) error {
	return c.JSON(http.StatusOK, envelope{"ok": true})
}
