package repositories

import (
	"context"
	"fmt"

	"github.com/adrinata/go-catalog/app/models"
	"gorm.io/gorm"
)

type AttributeRepositoryImpl interface {
	Create(ctx context.Context, attribute *models.Attribute) error
	GetByID(ctx context.Context, id string) (*models.Attribute, error)
	GetByCode(ctx context.Context, code string) (*models.Attribute, error)
	Update(ctx context.Context, attribute *models.Attribute) error
	SetActive(ctx context.Context, id string, active bool, actorID string) error
	CountValues(ctx context.Context, attributeID string) (int64, error)
}

type attributeRepository struct {
	db *gorm.DB
}

func NewAttributeRepository(db *gorm.DB) AttributeRepositoryImpl {
	return &attributeRepository{db: db}
}

func (r *attributeRepository) Create(ctx context.Context, attribute *models.Attribute) error {
	err := r.db.WithContext(ctx).Create(attribute).Error
	return translateError(err, fmt.Sprintf("attribute %q", attribute.Code))
}

func (r *attributeRepository) GetByID(ctx context.Context, id string) (*models.Attribute, error) {
	var attribute models.Attribute
	if err := r.db.WithContext(ctx).First(&attribute, "id = ?", id).Error; err != nil {
		return nil, translateError(err, fmt.Sprintf("attribute %s", id))
	}
	return &attribute, nil
}

func (r *attributeRepository) GetByCode(ctx context.Context, code string) (*models.Attribute, error) {
	var attribute models.Attribute
	if err := r.db.WithContext(ctx).First(&attribute, "code = ?", code).Error; err != nil {
		return nil, translateError(err, fmt.Sprintf("attribute %q", code))
	}
	return &attribute, nil
}

func (r *attributeRepository) Update(ctx context.Context, attribute *models.Attribute) error {
	err := r.db.WithContext(ctx).Save(attribute).Error
	return translateError(err, fmt.Sprintf("attribute %q", attribute.Code))
}

func (r *attributeRepository) SetActive(ctx context.Context, id string, active bool, actorID string) error {
	result := r.db.WithContext(ctx).Model(&models.Attribute{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"is_active": active, "updated_by": actorID})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return translateError(gorm.ErrRecordNotFound, fmt.Sprintf("attribute %s", id))
	}
	return nil
}

func (r *attributeRepository) CountValues(ctx context.Context, attributeID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.AttributeValue{}).
		Where("attribute_id = ?", attributeID).
		Count(&count).Error
	return count, err
}
