package usecase

import (
	"context"
	"net/http"
	"strings"

	"shopapi/internal/domain/model"
	repo "shopapi/internal/repository"

	"github.com/gosimple/slug"
)

// 写真の上限は1MB（超過は作成・更新とも拒否）。
const MaxPhotoBytes = 1 << 20

type AdminProductUsecase struct {
	productRepo repo.ProductRepository
}

// DI
func NewAdminProductUsecase(productRepo repo.ProductRepository) *AdminProductUsecase {
	return &AdminProductUsecase{productRepo: productRepo}
}

type ProductInput struct {
	Name             string
	Description      string
	Price            float64
	Quantity         int64
	CategoryID       int64
	Shipping         bool
	PhotoData        []byte
	PhotoContentType string
}

func validateProductInput(in ProductInput) error {
	if in.Price < 0 {
		return NewHTTPError(http.StatusBadRequest, "price must be >= 0")
	}
	if in.Quantity < 0 {
		return NewHTTPError(http.StatusBadRequest, "quantity must be >= 0")
	}
	if len(in.PhotoData) > MaxPhotoBytes {
		return NewHTTPError(http.StatusBadRequest, "photo is Required and should be less then 1mb")
	}
	return nil
}

// Createはslug=slugify(name)で商品を作成する。
func (u *AdminProductUsecase) Create(ctx context.Context, in ProductInput) (model.Product, error) {
	if err := validateProductInput(in); err != nil {
		return model.Product{}, err
	}

	name := strings.TrimSpace(in.Name)
	p, err := u.productRepo.Create(ctx, model.Product{
		Name:             name,
		Slug:             slug.Make(name),
		Description:      in.Description,
		Price:            in.Price,
		Quantity:         in.Quantity,
		CategoryID:       in.CategoryID,
		Shipping:         in.Shipping,
		PhotoData:        in.PhotoData,
		PhotoContentType: in.PhotoContentType,
	})
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "Error in creating product")
	}
	return p, nil
}

// Updateは書き込みのたびにslugを再導出する。
func (u *AdminProductUsecase) Update(ctx context.Context, productID int64, in ProductInput) (model.Product, error) {
	if productID <= 0 {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid product id")
	}
	if err := validateProductInput(in); err != nil {
		return model.Product{}, err
	}

	name := strings.TrimSpace(in.Name)
	p := model.Product{
		ID:               productID,
		Name:             name,
		Slug:             slug.Make(name),
		Description:      in.Description,
		Price:            in.Price,
		Quantity:         in.Quantity,
		CategoryID:       in.CategoryID,
		Shipping:         in.Shipping,
		PhotoData:        in.PhotoData,
		PhotoContentType: in.PhotoContentType,
	}

	err := u.productRepo.Update(ctx, p)
	if err == repo.ErrNotFound {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "product not found")
	}
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "Error in updating product")
	}
	return p, nil
}

func (u *AdminProductUsecase) Delete(ctx context.Context, productID int64) error {
	if productID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid product id")
	}
	err := u.productRepo.Delete(ctx, productID)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "product not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "Error while deleting product")
	}
	return nil
}
