package repositories

import (
	"context"
	"fmt"

	"github.com/adrinata/go-catalog/app/models"
	"gorm.io/gorm"
)

type SKURepositoryImpl interface {
	Create(ctx context.Context, sku *models.SKU) error
	GetByID(ctx context.Context, id string) (*models.SKU, error)
	GetByCode(ctx context.Context, code string) (*models.SKU, error)
	Update(ctx context.Context, sku *models.SKU) error
	SetActive(ctx context.Context, id string, active bool, actorID string) error
}

type skuRepository struct {
	db *gorm.DB
}

func NewSKURepository(db *gorm.DB) SKURepositoryImpl {
	return &skuRepository{db: db}
}

func (r *skuRepository) Create(ctx context.Context, sku *models.SKU) error {
	err := r.db.WithContext(ctx).Create(sku).Error
	return translateError(err, fmt.Sprintf("sku %q", sku.Code))
}

func (r *skuRepository) GetByID(ctx context.Context, id string) (*models.SKU, error) {
	var sku models.SKU
	err := r.db.WithContext(ctx).
		Preload("Product").
		Preload("Supplier").
		First(&sku, "id = ?", id).Error
	if err != nil {
		return nil, translateError(err, fmt.Sprintf("sku %s", id))
	}
	return &sku, nil
}

func (r *skuRepository) GetByCode(ctx context.Context, code string) (*models.SKU, error) {
	var sku models.SKU
	err := r.db.WithContext(ctx).
		Preload("Product").
		First(&sku, "code = ?", code).Error
	if err != nil {
		return nil, translateError(err, fmt.Sprintf("sku %q", code))
	}
	return &sku, nil
}

func (r *skuRepository) Update(ctx context.Context, sku *models.SKU) error {
	err := r.db.WithContext(ctx).Save(sku).Error
	return translateError(err, fmt.Sprintf("sku %q", sku.Code))
}

func (r *skuRepository) SetActive(ctx context.Context, id string, active bool, actorID string) error {
	result := r.db.WithContext(ctx).Model(&models.SKU{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"is_active": active, "updated_by": actorID})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return translateError(gorm.ErrRecordNotFound, fmt.Sprintf("sku %s", id))
	}
	return nil
}
