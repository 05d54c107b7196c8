package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"shopapi/internal/domain/model"
	repo "shopapi/internal/repository"
)

type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

const (
	// 1ページの件数は固定6（既存API互換、設定不可）。
	ListPageSize = 6

	// 関連商品は最大3件のハードキャップ。
	RelatedLimit = 3

	// 全件取得（トップ画面）の上限。
	CatalogLimit = 12
)

type ProductUsecase struct {
	productRepo repo.ProductRepository
}

// DI
func NewProductUsecase(productRepo repo.ProductRepository) *ProductUsecase {
	return &ProductUsecase{productRepo: productRepo}
}

// ListPageは1始まりのページ番号で窓を返す。
// page未指定・不正は1扱い。範囲外ページは空リスト（エラーにしない）。
func (u *ProductUsecase) ListPage(ctx context.Context, page int) ([]model.Product, error) {
	if page < 1 {
		page = 1
	}

	offset := (page - 1) * ListPageSize
	products, err := u.productRepo.ListPage(ctx, offset, ListPageSize)
	if err != nil {
		return nil, NewHTTPError(http.StatusBadRequest, "error in per page ctrl")
	}
	return products, nil
}

// CountAllは絞り込み前の総件数。UI側のページ数計算用。
func (u *ProductUsecase) CountAll(ctx context.Context) (int64, error) {
	total, err := u.productRepo.CountAll(ctx)
	if err != nil {
		return 0, NewHTTPError(http.StatusBadRequest, "error in product count")
	}
	return total, nil
}

// FilterInputはUIのチェックボックス（カテゴリ）とラジオ（価格帯[min,max]）。
type FilterInput struct {
	Checked []int64
	Radio   []float64
}

// FilterProductsは指定された述語だけをANDで組み合わせる。
// どちらも無ければ全件（絞り込み無しは正常ケース）。
func (u *ProductUsecase) FilterProducts(ctx context.Context, in FilterInput) ([]model.Product, error) {
	f := repo.ProductFilter{}

	if len(in.Checked) > 0 {
		f.CategoryIDs = in.Checked
	}
	if len(in.Radio) == 2 {
		min, max := in.Radio[0], in.Radio[1]
		f.MinPrice = &min
		f.MaxPrice = &max
	}

	products, err := u.productRepo.Filter(ctx, f)
	if err != nil {
		return nil, NewHTTPError(http.StatusBadRequest, "error while filtering products")
	}
	return products, nil
}

// RelatedProductsは同カテゴリの兄弟商品を最大3件（自分自身は除く）。
// 0件は正常。
func (u *ProductUsecase) RelatedProducts(ctx context.Context, productID int64, categoryID int64) ([]model.Product, error) {
	products, err := u.productRepo.Related(ctx, productID, categoryID, RelatedLimit)
	if err != nil {
		return nil, NewHTTPError(http.StatusBadRequest, "error while getting related products")
	}
	return products, nil
}

// SearchProductsはname/descriptionの部分一致（大文字小文字無視）。
// 空キーワードは全件にマッチし得る（仕様どおり、直さない）。
func (u *ProductUsecase) SearchProducts(ctx context.Context, keyword string) ([]model.Product, error) {
	products, err := u.productRepo.Search(ctx, keyword)
	if err != nil {
		return nil, NewHTTPError(http.StatusBadRequest, "error in search product api")
	}
	return products, nil
}

// ListCatalogは全商品（新着順、上限12件、category解決込み）。
func (u *ProductUsecase) ListCatalog(ctx context.Context) ([]model.Product, error) {
	products, err := u.productRepo.ListCatalog(ctx, CatalogLimit)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "error in getting products")
	}
	return products, nil
}

// GetBySlugは単品取得。読み取り系の「無し」は空で返す方針だが、
// 単品だけはNotFoundを返す（レスポンス組み立てはhandler側）。
func (u *ProductUsecase) GetBySlug(ctx context.Context, s string) (model.Product, error) {
	s = strings.TrimSpace(s)
	p, err := u.productRepo.FindBySlug(ctx, s)
	if err == repo.ErrNotFound {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "product not found")
	}
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "error while getting single product")
	}
	return p, nil
}

// Photoは写真のバイト列とContent-Typeを返す。
func (u *ProductUsecase) Photo(ctx context.Context, productID int64) ([]byte, string, error) {
	p, err := u.productRepo.FindByIDWithPhoto(ctx, productID)
	if err == repo.ErrNotFound {
		return nil, "", NewHTTPError(http.StatusNotFound, "photo not found")
	}
	if err != nil {
		return nil, "", NewHTTPError(http.StatusInternalServerError, "error while getting photo")
	}
	if len(p.PhotoData) == 0 {
		return nil, "", NewHTTPError(http.StatusNotFound, "photo not found")
	}
	return p.PhotoData, p.PhotoContentType, nil
}
