package repository

import (
	"context"
	"errors"

	"shopapi/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

// ProductFilterはUIで選ばれた絞り込みの集合。
// 指定されなかった述語はクエリに含めない（絞り込み無し＝全件）。
type ProductFilter struct {
	CategoryIDs []int64
	MinPrice    *float64
	MaxPrice    *float64
}

type ProductRepository interface {
	// ListPageはcreated_at降順でoffset/limitの窓を返す（photo除外）。
	ListPage(ctx context.Context, offset int, limit int) ([]model.Product, error)

	// CountAllは絞り込み前の総件数（概算契約）。
	CountAll(ctx context.Context) (int64, error)

	// Filterは全件・ページング無しで返す（photoも含む既存API互換）。
	Filter(ctx context.Context, f ProductFilter) ([]model.Product, error)

	// Relatedは同カテゴリかつ自分以外をlimit件まで（photo除外、category解決込み）。
	Related(ctx context.Context, productID int64, categoryID int64, limit int) ([]model.Product, error)

	// Searchはname/descriptionの部分一致（大文字小文字無視、photo除外）。
	Search(ctx context.Context, keyword string) ([]model.Product, error)

	ListCatalog(ctx context.Context, limit int) ([]model.Product, error)
	FindBySlug(ctx context.Context, slug string) (model.Product, error)
	FindByID(ctx context.Context, id int64) (model.Product, error)
	FindByIDWithPhoto(ctx context.Context, id int64) (model.Product, error)

	Create(ctx context.Context, p model.Product) (model.Product, error)
	Update(ctx context.Context, p model.Product) error
	Delete(ctx context.Context, id int64) error
}
