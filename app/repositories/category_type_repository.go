package repositories

import (
	"context"
	"fmt"

	"github.com/adrinata/go-catalog/app/models"
	"gorm.io/gorm"
)

type CategoryTypeRepositoryImpl interface {
	Create(ctx context.Context, categoryType *models.CategoryType) error
	GetByID(ctx context.Context, id string) (*models.CategoryType, error)
	Update(ctx context.Context, categoryType *models.CategoryType) error
	SetActive(ctx context.Context, id string, active bool, actorID string) error
}

type categoryTypeRepository struct {
	db *gorm.DB
}

func NewCategoryTypeRepository(db *gorm.DB) CategoryTypeRepositoryImpl {
	return &categoryTypeRepository{db: db}
}

func (r *categoryTypeRepository) Create(ctx context.Context, categoryType *models.CategoryType) error {
	err := r.db.WithContext(ctx).Create(categoryType).Error
	return translateError(err, fmt.Sprintf("category type %q", categoryType.Name))
}

func (r *categoryTypeRepository) GetByID(ctx context.Context, id string) (*models.CategoryType, error) {
	var categoryType models.CategoryType
	if err := r.db.WithContext(ctx).First(&categoryType, "id = ?", id).Error; err != nil {
		return nil, translateError(err, fmt.Sprintf("category type %s", id))
	}
	return &categoryType, nil
}

func (r *categoryTypeRepository) Update(ctx context.Context, categoryType *models.CategoryType) error {
	err := r.db.WithContext(ctx).Save(categoryType).Error
	return translateError(err, fmt.Sprintf("category type %q", categoryType.Name))
}

func (r *categoryTypeRepository) SetActive(ctx context.Context, id string, active bool, actorID string) error {
	result := r.db.WithContext(ctx).Model(&models.CategoryType{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"is_active": active, "updated_by": actorID})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return translateError(gorm.ErrRecordNotFound, fmt.Sprintf("category type %s", id))
	}
	return nil
}
