package handler

import (
	"io"
	"net/http"
	"strconv"

	"shopapi/internal/config"
	"shopapi/internal/middleware"
	"shopapi/internal/repository"
	"shopapi/internal/usecase"
	"shopapi/internal/validator"

	"github.com/labstack/echo/v4"
)

// /api/v1/product のHTTP
type ProductHandler struct {
	uc      *usecase.ProductUsecase
	adminUC *usecase.AdminProductUsecase
}

// DI
func NewProductHandler(uc *usecase.ProductUsecase, adminUC *usecase.AdminProductUsecase) *ProductHandler {
	return &ProductHandler{uc: uc, adminUC: adminUC}
}

func (h *ProductHandler) RegisterRoutes(e *echo.Echo, cfg config.Config, userRepo repository.UserRepository) {
	g := e.Group("/api/v1/product")

	g.GET("/product-list/:page", h.listPage)
	g.GET("/product-count", h.count)
	g.POST("/product-filters", h.filters)
	g.GET("/related-product/:pid/:cid", h.related)
	g.GET("/search/:keyword", h.search)
	g.GET("/get-product", h.catalog)
	g.GET("/get-product/:slug", h.detail)
	g.GET("/product-photo/:pid", h.photo)

	admin := g.Group("", middleware.RequireSignIn(cfg), middleware.IsAdmin(userRepo))
	admin.POST("/create-product", h.create)
	admin.PUT("/update-product/:pid", h.update)
	admin.DELETE("/delete-product/:pid", h.deleteProduct)
}

// page欠落・不正は1ページ目扱い。
func (h *ProductHandler) listPage(c echo.Context) error {
	page := 1
	if v := c.Param("page"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			page = p
		}
	}

	products, err := h.uc.ListPage(c.Request().Context(), page)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, envelope{"success": true, "products": products})
}

func (h *ProductHandler) count(c echo.Context) error {
	total, err := h.uc.CountAll(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, envelope{"success": true, "total": total})
}

type filterRequest struct {
	Checked []int64   `json:"checked"`
	Radio   []float64 `json:"radio"`
}

func (h *ProductHandler) filters(c echo.Context) error {
	var req filterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, envelope{"success": false, "message": "invalid body"})
	}

	products, err := h.uc.FilterProducts(c.Request().Context(), usecase.FilterInput{
		Checked: req.Checked,
		Radio:   req.Radio,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, envelope{"success": true, "products": products})
}

func (h *ProductHandler) related(c echo.Context) error {
	pid, err := strconv.ParseInt(c.Param("pid"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, envelope{"success": false, "message": "invalid id"})
	}
	cid, err := strconv.ParseInt(c.Param("cid"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, envelope{"success": false, "message": "invalid id"})
	}

	products, err := h.uc.RelatedProducts(c.Request().Context(), pid, cid)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, envelope{"success": true, "products": products})
}

// searchだけエンベロープ無しの素の配列を返す（既存API互換）。
func (h *ProductHandler) search(c echo.Context) error {
	products, err := h.uc.SearchProducts(c.Request().Context(), c.Param("keyword"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) catalog(c echo.Context) error {
	products, err := h.uc.ListCatalog(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, envelope{
		"success":  true,
		"total":    len(products),
		"message":  "All Products",
		"products": products,
	})
}

func (h *ProductHandler) detail(c echo.Context) error {
	p, err := h.uc.GetBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, envelope{
		"success": true,
		"message": "Single Product Fetched",
		"product": p,
	})
}

// 写真は素のバイナリ＋Content-Typeで返す。
func (h *ProductHandler) photo(c echo.Context) error {
	pid, err := strconv.ParseInt(c.Param("pid"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, envelope{"success": false, "message": "invalid id"})
	}

	data, contentType, err := h.uc.Photo(c.Request().Context(), pid)
	if err != nil {
		return writeError(c, err)
	}
	return c.Blob(http.StatusOK, contentType, data)
}

// multipart formの必須チェック用。labelが既存APIのメッセージ上の名前。
type productForm struct {
	Name        string `validate:"required"`
	Description string `validate:"required"`
	Price       string `validate:"required"`
	Quantity    string `validate:"required"`
	Category    string `validate:"required"`
}

// フォームを読み取ってProductInputへ。検証エラーは既存APIの
// {error:"<Field> is Required"} で返す（photo超過も同じ形）。
func (h *ProductHandler) bindProductForm(c echo.Context) (usecase.ProductInput, bool, error) {
	form := productForm{
		Name:        c.FormValue("name"),
		Description: c.FormValue("description"),
		Price:       c.FormValue("price"),
		Quantity:    c.FormValue("quantity"),
		Category:    c.FormValue("category"),
	}
	if msg := validator.FirstRequiredMessage(form); msg != "" {
		return usecase.ProductInput{}, false, c.JSON(http.StatusBadRequest, envelope{"error": msg})
	}

	price, err := strconv.ParseFloat(form.Price, 64)
	if err != nil {
		return usecase.ProductInput{}, false, c.JSON(http.StatusBadRequest, envelope{"error": "Price is Required"})
	}
	quantity, err := strconv.ParseInt(form.Quantity, 10, 64)
	if err != nil {
		return usecase.ProductInput{}, false, c.JSON(http.StatusBadRequest, envelope{"error": "Quantity is Required"})
	}
	categoryID, err := strconv.ParseInt(form.Category, 10, 64)
	if err != nil {
		return usecase.ProductInput{}, false, c.JSON(http.StatusBadRequest, envelope{"error": "Category is Required"})
	}
	shipping := c.FormValue("shipping") == "1" || c.FormValue("shipping") == "true"

	in := usecase.ProductInput{
		Name:        form.Name,
		Description: form.Description,
		Price:       price,
		Quantity:    quantity,
		CategoryID:  categoryID,
		Shipping:    shipping,
	}

	// photoは任意。ただし1MB上限
	if file, err := c.FormFile("photo"); err == nil && file != nil {
		if file.Size > usecase.MaxPhotoBytes {
			return usecase.ProductInput{}, false, c.JSON(http.StatusBadRequest,
				envelope{"error": "photo is Required and should be less then 1mb"})
		}
		src, err := file.Open()
		if err != nil {
			return usecase.ProductInput{}, false, c.JSON(http.StatusBadRequest, envelope{"error": "invalid photo"})
		}
		defer src.Close()

		data, err := io.ReadAll(src)
		if err != nil {
			return usecase.ProductInput{}, false, c.JSON(http.StatusBadRequest, envelope{"error": "invalid photo"})
		}
		in.PhotoData = data
		in.PhotoContentType = file.Header.Get("Content-Type")
	}

	return in, true, nil
}

func (h *ProductHandler) create(c echo.Context) error {
	in, ok, resp := h.bindProductForm(c)
	if !ok {
		return resp
	}

	p, err := h.adminUC.Create(c.Request().Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, envelope{
		"success": true,
		"message": "Product Created Successfully",
		"product": p,
	})
}

func (h *ProductHandler) update(c echo.Context) error {
	pid, err := strconv.ParseInt(c.Param("pid"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, envelope{"success": false, "message": "invalid id"})
	}

	in, ok, resp := h.bindProductForm(c)
	if !ok {
		return resp
	}

	p, err := h.adminUC.Update(c.Request().Context(), pid, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, envelope{
		"success": true,
		"message": "Product Updated Successfully",
		"product": p,
	})
}

func (h *ProductHandler) deleteProduct(c echo.Context) error {
	pid, err := strconv.ParseInt(c.Param("pid"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, envelope{"success": false, "message": "invalid id"})
	}

	if err := h.adminUC.Delete(c.Request().Context(), pid); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, envelope{
		"success": true,
		"message": "Product Deleted successfully",
	})
}
