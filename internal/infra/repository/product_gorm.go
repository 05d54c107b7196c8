package repository

import (
	"context"
	"errors"
	"strings"

	"shopapi/internal/domain/model"
	repo "shopapi/internal/repository"

	"gorm.io/gorm"
)

// photoを除いた列。mongooseのselect("-photo")相当。
const productColumnsNoPhoto = "id, name, slug, description, price, quantity, category_id, shipping, created_at, updated_at"

type ProductGormRepository struct {
	db *gorm.DB
}

// DI
func NewProductGormRepository(db *gorm.DB) *ProductGormRepository {
	return &ProductGormRepository{db: db}
}

// created_at降順のページ窓。offsetは呼び出し側で計算済み。
func (r *ProductGormRepository) ListPage(ctx context.Context, offset int, limit int) ([]model.Product, error) {
	products := []model.Product{}
	err := r.db.WithContext(ctx).
		Select(productColumnsNoPhoto).
		Order("created_at desc").
		Offset(offset).
		Limit(limit).
		Find(&products).Error
	if err != nil {
		return []model.Product{}, err
	}
	return products, nil
}

// 絞り込み前の総件数（概算契約）。
func (r *ProductGormRepository) CountAll(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.Product{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// 指定された述語だけをANDで積む。未指定の述語は結果を狭めない。
func (r *ProductGormRepository) Filter(ctx context.Context, f repo.ProductFilter) ([]model.Product, error) {
	tx := r.db.WithContext(ctx).Model(&model.Product{})

	if len(f.CategoryIDs) > 0 {
		tx = tx.Where("category_id IN ?", f.CategoryIDs)
	}
	if f.MinPrice != nil && f.MaxPrice != nil {
		// 両端含む
		tx = tx.Where("price >= ? AND price <= ?", *f.MinPrice, *f.MaxPrice)
	}

	products := []model.Product{}
	if err := tx.Find(&products).Error; err != nil {
		return []model.Product{}, err
	}
	return products, nil
}

// 同カテゴリ・自分以外。並び順はストア任せ。
func (r *ProductGormRepository) Related(ctx context.Context, productID int64, categoryID int64, limit int) ([]model.Product, error) {
	products := []model.Product{}
	err := r.db.WithContext(ctx).
		Select(productColumnsNoPhoto).
		Where("category_id = ? AND id <> ?", categoryID, productID).
		Limit(limit).
		Preload("Category").
		Find(&products).Error
	if err != nil {
		return []model.Product{}, err
	}
	return products, nil
}

// name OR description の部分一致（ILIKEで大文字小文字無視）。
func (r *ProductGormRepository) Search(ctx context.Context, keyword string) ([]model.Product, error) {
	like := "%" + strings.TrimSpace(keyword) + "%"

	// 0件でもJSONでは[]になるよう空スライスで初期化
	products := []model.Product{}
	err := r.db.WithContext(ctx).
		Select(productColumnsNoPhoto).
		Where("name ILIKE ? OR description ILIKE ?", like, like).
		Find(&products).Error
	if err != nil {
		return []model.Product{}, err
	}
	return products, nil
}

// 全商品（管理画面・トップ用）。photo除外、category解決込み。
func (r *ProductGormRepository) ListCatalog(ctx context.Context, limit int) ([]model.Product, error) {
	products := []model.Product{}
	err := r.db.WithContext(ctx).
		Select(productColumnsNoPhoto).
		Order("created_at desc").
		Limit(limit).
		Preload("Category").
		Find(&products).Error
	if err != nil {
		return []model.Product{}, err
	}
	return products, nil
}

func (r *ProductGormRepository) FindBySlug(ctx context.Context, slug string) (model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).
		Select(productColumnsNoPhoto).
		Preload("Category").
		Where("slug = ?", slug).
		First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Product{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Product{}, err
	}
	return p, nil
}

func (r *ProductGormRepository) FindByID(ctx context.Context, id int64) (model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).
		Select(productColumnsNoPhoto).
		First(&p, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Product{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Product{}, err
	}
	return p, nil
}

// 写真配信用。blob込みで取る。
func (r *ProductGormRepository) FindByIDWithPhoto(ctx context.Context, id int64) (model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).First(&p, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Product{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Product{}, err
	}
	return p, nil
}

func (r *ProductGormRepository) Create(ctx context.Context, p model.Product) (model.Product, error) {
	if err := r.db.WithContext(ctx).Create(&p).Error; err != nil {
		return model.Product{}, err
	}
	return p, nil
}

func (r *ProductGormRepository) Update(ctx context.Context, p model.Product) error {
	res := r.db.WithContext(ctx).Model(&model.Product{}).Where("id = ?", p.ID).Updates(map[string]interface{}{
		"name":        p.Name,
		"slug":        p.Slug,
		"description": p.Description,
		"price":       p.Price,
		"quantity":    p.Quantity,
		"category_id": p.CategoryID,
		"shipping":    p.Shipping,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}

	// 写真は差し替えがあった時だけ更新
	if len(p.PhotoData) > 0 {
		res = r.db.WithContext(ctx).Model(&model.Product{}).Where("id = ?", p.ID).Updates(map[string]interface{}{
			"photo_data":         p.PhotoData,
			"photo_content_type": p.PhotoContentType,
		})
		if res.Error != nil {
			return res.Error
		}
	}
	return nil
}

func (r *ProductGormRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.Product{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
