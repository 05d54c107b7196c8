package handler

import (
	"errors"
	"net/http"
	"strconv"

	"shopapi/internal/config"
	"shopapi/internal/middleware"
	"shopapi/internal/repository"
	"shopapi/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /api/v1/category のHTTP
type CategoryHandler struct {
	uc *usecase.CategoryUsecase
}

// DI
func NewCategoryHandler(uc *usecase.CategoryUsecase) *CategoryHandler {
	return &CategoryHandler{uc: uc}
}

func (h *CategoryHandler) RegisterRoutes(e *echo.Echo, cfg config.Config, userRepo repository.UserRepository) {
	g := e.Group("/api/v1/category")

	g.GET("/get-category", h.list)
	g.GET("/single-category/:slug", h.single)

	admin := g.Group("", middleware.RequireSignIn(cfg), middleware.IsAdmin(userRepo))
	admin.POST("/create-category", h.create)
	admin.PUT("/update-category/:id", h.update)
	admin.DELETE("/delete-category/:id", h.deleteCategory)
}

type categoryRequest struct {
	Name string `json:"name"`
}

func (h *CategoryHandler) create(c echo.Context) error {
	var req categoryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, envelope{"message": "invalid body"})
	}

	created, err := h.uc.Create(c.Request().Context(), req.Name)
	if err != nil {
		// 重複は既存API互換で200・success:true
		if errors.Is(err, usecase.ErrCategoryExists) {
			return c.JSON(http.StatusOK, envelope{
				"success": true,
				"message": "Category Already Exists",
			})
		}
		if he, ok := usecase.AsHTTPError(err); ok && he.Status == http.StatusUnauthorized {
			return c.JSON(he.Status, envelope{"message": he.Message})
		}
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, envelope{
		"success":  true,
		"message":  "new category created",
		"category": created,
	})
}

func (h *CategoryHandler) update(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, envelope{"success": false, "message": "invalid id"})
	}

	var req categoryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, envelope{"message": "invalid body"})
	}

	updated, err := h.uc.Update(c.Request().Context(), id, req.Name)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, envelope{
		"success":  true,
		"message":  "Category Updated Successfully",
		"category": updated,
	})
}

func (h *CategoryHandler) list(c echo.Context) error {
	categories, err := h.uc.ListAll(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, envelope{
		"success":  true,
		"message":  "All Categories List",
		"category": categories,
	})
}

func (h *CategoryHandler) single(c echo.Context) error {
	category, err := h.uc.GetBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, envelope{
		"success":  true,
		"message":  "Get Single Category Successfully",
		"category": category,
	})
}

func (h *CategoryHandler) deleteCategory(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, envelope{"success": false, "message": "invalid id"})
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, envelope{
		"success": true,
		"message": "Category Deleted Successfully",
	})
}
