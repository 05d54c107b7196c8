package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"shopapi/internal/config"
	"shopapi/internal/domain/model"
	"shopapi/internal/handler"
	repo "shopapi/internal/repository"
	"shopapi/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

// 公開エンドポイント用のスタブ。呼び出し引数を記録して
// 缶詰データを返すだけで、admin系は使わない。
type productRepoStub struct {
	listPageOffset int
	listPageLimit  int
	lastFilter     repo.ProductFilter
	products       []model.Product
	searchResults  []model.Product
	findBySlugErr  error
}

func (s *productRepoStub) ListPage(ctx context.Context, offset int, limit int) ([]model.Product, error) {
	s.listPageOffset = offset
	s.listPageLimit = limit
	return s.products, nil
}

func (s *productRepoStub) CountAll(ctx context.Context) (int64, error) { return 42, nil }

func (s *productRepoStub) Filter(ctx context.Context, f repo.ProductFilter) ([]model.Product, error) {
	s.lastFilter = f
	return s.products, nil
}

func (s *productRepoStub) Related(ctx context.Context, productID int64, categoryID int64, limit int) ([]model.Product, error) {
	return s.products, nil
}

func (s *productRepoStub) Search(ctx context.Context, keyword string) ([]model.Product, error) {
	return s.searchResults, nil
}

func (s *productRepoStub) ListCatalog(ctx context.Context, limit int) ([]model.Product, error) {
	return s.products, nil
}

func (s *productRepoStub) FindBySlug(ctx context.Context, slug string) (model.Product, error) {
	if s.findBySlugErr != nil {
		return model.Product{}, s.findBySlugErr
	}
	return model.Product{ID: 1, Slug: slug}, nil
}

func (s *productRepoStub) FindByID(ctx context.Context, id int64) (model.Product, error) {
	return model.Product{ID: id}, nil
}

func (s *productRepoStub) FindByIDWithPhoto(ctx context.Context, id int64) (model.Product, error) {
	return model.Product{ID: id, PhotoData: []byte("jpegbytes"), PhotoContentType: "image/jpeg"}, nil
}

func (s *productRepoStub) Create(ctx context.Context, p model.Product) (model.Product, error) {
	return p, nil
}

func (s *productRepoStub) Update(ctx context.Context, p model.Product) error { return nil }

func (s *productRepoStub) Delete(ctx context.Context, id int64) error { return nil }

type userRepoStub struct{}

func (userRepoStub) FindByID(ctx context.Context, id int64) (model.User, error) {
	return model.User{}, repo.ErrNotFound
}

func (userRepoStub) FindByEmail(ctx context.Context, email string) (model.User, error) {
	return model.User{}, repo.ErrNotFound
}

func (userRepoStub) Create(ctx context.Context, u model.User) (model.User, error) { return u, nil }

func (userRepoStub) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	return nil
}

func newProductTestServer(stub *productRepoStub) *echo.Echo {
	e := echo.New()
	h := handler.NewProductHandler(
		usecase.NewProductUsecase(stub),
		usecase.NewAdminProductUsecase(stub),
	)
	h.RegisterRoutes(e, config.Config{}, userRepoStub{})
	return e
}

func TestProductHandler_ListPage_OffsetFromPageParam(t *testing.T) {
	stub := &productRepoStub{products: []model.Product{}}
	e := newProductTestServer(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/product/product-list/3", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 12, stub.listPageOffset)
	assert.Equal(t, usecase.ListPageSize, stub.listPageLimit)
	assert.Contains(t, rec.Body.String(), `"success":true`)
}

// page欠落・不正は1ページ目
func TestProductHandler_ListPage_BadPageDefaultsToFirst(t *testing.T) {
	stub := &productRepoStub{products: []model.Product{}}
	e := newProductTestServer(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/product/product-list/abc", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 0, stub.listPageOffset)
}

// searchだけエンベロープ無しの素のJSON配列
func TestProductHandler_Search_BareArray(t *testing.T) {
	stub := &productRepoStub{searchResults: []model.Product{}}
	e := newProductTestServer(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/product/search/textbook", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}

func TestProductHandler_Filters_BodyMapsToPredicates(t *testing.T) {
	stub := &productRepoStub{products: []model.Product{}}
	e := newProductTestServer(stub)

	body := `{"checked":[1,2],"radio":[20,39]}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/product/product-filters", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []int64{1, 2}, stub.lastFilter.CategoryIDs)
	if assert.NotNil(t, stub.lastFilter.MinPrice) {
		assert.Equal(t, 20.0, *stub.lastFilter.MinPrice)
	}
	if assert.NotNil(t, stub.lastFilter.MaxPrice) {
		assert.Equal(t, 39.0, *stub.lastFilter.MaxPrice)
	}
}

func TestProductHandler_Detail_NotFoundEnvelope(t *testing.T) {
	stub := &productRepoStub{findBySlugErr: repo.ErrNotFound}
	e := newProductTestServer(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/product/get-product/missing", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":false`)
}

func TestProductHandler_Photo_RawBytesWithContentType(t *testing.T) {
	stub := &productRepoStub{}
	e := newProductTestServer(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/product/product-photo/1", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/jpeg", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, "jpegbytes", rec.Body.String())
}

// 管理ルートはトークン無しでは通らない
func TestProductHandler_AdminRoutesRequireToken(t *testing.T) {
	stub := &productRepoStub{}
	e := newProductTestServer(stub)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/product/delete-product/1", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
