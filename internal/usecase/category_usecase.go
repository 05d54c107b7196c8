package usecase

import (
	"context"
	"net/http"
	"strings"

	"shopapi/internal/domain/model"
	repo "shopapi/internal/repository"

	"github.com/gosimple/slug"
)

// ErrCategoryExistsは名前重複の既存応答（200でsuccess:true）を
// ハンドラ側で組み立てられるよう、他のHTTPErrorと区別できるようにしておく。
var ErrCategoryExists = NewHTTPError(http.StatusOK, "Category Already Exists")

type CategoryUsecase struct {
	categoryRepo repo.CategoryRepository
}

// DI
func NewCategoryUsecase(categoryRepo repo.CategoryRepository) *CategoryUsecase {
	return &CategoryUsecase{categoryRepo: categoryRepo}
}

// Createはslug=slugify(name)で新規作成。名前重複は作らない。
func (u *CategoryUsecase) Create(ctx context.Context, name string) (model.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Category{}, NewHTTPError(http.StatusUnauthorized, "Name is required")
	}

	_, err := u.categoryRepo.FindByName(ctx, name)
	if err == nil {
		return model.Category{}, ErrCategoryExists
	}
	if err != repo.ErrNotFound {
		return model.Category{}, NewHTTPError(http.StatusInternalServerError, "Error in Category")
	}

	c, err := u.categoryRepo.Create(ctx, model.Category{
		Name: name,
		Slug: slug.Make(name),
	})
	if err != nil {
		return model.Category{}, NewHTTPError(http.StatusInternalServerError, "Error in Category")
	}
	return c, nil
}

// Updateは名前を差し替え、slugも必ず再導出する（何度更新しても不変条件を保つ）。
func (u *CategoryUsecase) Update(ctx context.Context, id int64, name string) (model.Category, error) {
	name = strings.TrimSpace(name)
	if id <= 0 || name == "" {
		return model.Category{}, NewHTTPError(http.StatusBadRequest, "invalid input")
	}

	c := model.Category{
		ID:   id,
		Name: name,
		Slug: slug.Make(name),
	}
	err := u.categoryRepo.Update(ctx, c)
	if err == repo.ErrNotFound {
		return model.Category{}, NewHTTPError(http.StatusNotFound, "category not found")
	}
	if err != nil {
		return model.Category{}, NewHTTPError(http.StatusInternalServerError, "Error while updating category")
	}
	return c, nil
}

func (u *CategoryUsecase) ListAll(ctx context.Context) ([]model.Category, error) {
	categories, err := u.categoryRepo.ListAll(ctx)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "Error while getting all categories")
	}
	return categories, nil
}

func (u *CategoryUsecase) GetBySlug(ctx context.Context, s string) (model.Category, error) {
	c, err := u.categoryRepo.FindBySlug(ctx, s)
	if err == repo.ErrNotFound {
		return model.Category{}, NewHTTPError(http.StatusNotFound, "category not found")
	}
	if err != nil {
		return model.Category{}, NewHTTPError(http.StatusInternalServerError, "Error While getting Single Category")
	}
	return c, nil
}

func (u *CategoryUsecase) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	err := u.categoryRepo.Delete(ctx, id)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "category not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "error while deleting category")
	}
	return nil
}
