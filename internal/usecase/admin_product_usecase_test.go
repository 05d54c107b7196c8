package usecase_test

import (
	"bytes"
	"context"
	"net/http"
	"testing"

	"shopapi/internal/domain/model"
	repo "shopapi/internal/repository"
	"shopapi/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAdminProductUsecase_Create_SlugIsDerivedFromName(t *testing.T) {
	ctx := context.Background()

	pRepo := new(ProductRepoMock)
	uc := usecase.NewAdminProductUsecase(pRepo)

	pRepo.On("Create", mock.Anything, mock.MatchedBy(func(p model.Product) bool {
		return p.Name == "NUS Tee" && p.Slug == "nus-tee" && p.Price == 19.99
	})).Return(model.Product{ID: 1, Name: "NUS Tee", Slug: "nus-tee"}, nil)

	p, err := uc.Create(ctx, usecase.ProductInput{
		Name:       " NUS Tee ",
		Price:      19.99,
		Quantity:   10,
		CategoryID: 2,
	})
	assert.NoError(t, err)
	assert.Equal(t, "nus-tee", p.Slug)

	pRepo.AssertExpectations(t)
}

func TestAdminProductUsecase_Create_PhotoTooLarge(t *testing.T) {
	pRepo := new(ProductRepoMock)
	uc := usecase.NewAdminProductUsecase(pRepo)

	_, err := uc.Create(context.Background(), usecase.ProductInput{
		Name:      "Big",
		PhotoData: bytes.Repeat([]byte{0xff}, usecase.MaxPhotoBytes+1),
	})
	assertHTTPStatus(t, err, http.StatusBadRequest)
	assertErrContains(t, err, "less then 1mb")
	pRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAdminProductUsecase_Create_NegativePrice(t *testing.T) {
	uc := usecase.NewAdminProductUsecase(new(ProductRepoMock))

	_, err := uc.Create(context.Background(), usecase.ProductInput{Name: "X", Price: -1})
	assertHTTPStatus(t, err, http.StatusBadRequest)
}

// 更新のたびにslugが名前から再導出される
func TestAdminProductUsecase_Update_RederivesSlug(t *testing.T) {
	ctx := context.Background()

	pRepo := new(ProductRepoMock)
	uc := usecase.NewAdminProductUsecase(pRepo)

	pRepo.On("Update", mock.Anything, mock.MatchedBy(func(p model.Product) bool {
		return p.ID == 5 && p.Slug == "renamed-tee"
	})).Return(nil)

	p, err := uc.Update(ctx, 5, usecase.ProductInput{Name: "Renamed Tee", Price: 10})
	assert.NoError(t, err)
	assert.Equal(t, "renamed-tee", p.Slug)
}

func TestAdminProductUsecase_Update_NotFound(t *testing.T) {
	ctx := context.Background()

	pRepo := new(ProductRepoMock)
	uc := usecase.NewAdminProductUsecase(pRepo)

	pRepo.On("Update", mock.Anything, mock.Anything).Return(repo.ErrNotFound)

	_, err := uc.Update(ctx, 99, usecase.ProductInput{Name: "Ghost"})
	assertHTTPStatus(t, err, http.StatusNotFound)
}

func TestAdminProductUsecase_Delete_Success(t *testing.T) {
	ctx := context.Background()

	pRepo := new(ProductRepoMock)
	uc := usecase.NewAdminProductUsecase(pRepo)

	pRepo.On("Delete", mock.Anything, int64(3)).Return(nil)

	assert.NoError(t, uc.Delete(ctx, 3))
	pRepo.AssertExpectations(t)
}

func TestAdminProductUsecase_Delete_InvalidID(t *testing.T) {
	uc := usecase.NewAdminProductUsecase(new(ProductRepoMock))

	err := uc.Delete(context.Background(), 0)
	assertHTTPStatus(t, err, http.StatusBadRequest)
}
