package repositories

import (
	"context"
	"fmt"

	"github.com/adrinata/go-catalog/app/models"
	"gorm.io/gorm"
)

type AttributeValueRepositoryImpl interface {
	Get(ctx context.Context, entityType, entityID, attributeID string) (*models.AttributeValue, error)
	ListForEntity(ctx context.Context, entityType, entityID string) ([]models.AttributeValue, error)
	Create(ctx context.Context, value *models.AttributeValue) error
	Update(ctx context.Context, value *models.AttributeValue) error
	Delete(ctx context.Context, entityType, entityID, attributeID string) error
	WithTx(tx *gorm.DB) AttributeValueRepositoryImpl
}

type attributeValueRepository struct {
	db *gorm.DB
}

func NewAttributeValueRepository(db *gorm.DB) AttributeValueRepositoryImpl {
	return &attributeValueRepository{db: db}
}

func (r *attributeValueRepository) WithTx(tx *gorm.DB) AttributeValueRepositoryImpl {
	return &attributeValueRepository{db: tx}
}

func (r *attributeValueRepository) Get(ctx context.Context, entityType, entityID, attributeID string) (*models.AttributeValue, error) {
	var value models.AttributeValue
	err := r.db.WithContext(ctx).
		Where("entity_type = ? AND entity_id = ? AND attribute_id = ?", entityType, entityID, attributeID).
		First(&value).Error
	if err != nil {
		return nil, translateError(err, fmt.Sprintf("attribute value for %s/%s", entityType, entityID))
	}
	return &value, nil
}

func (r *attributeValueRepository) ListForEntity(ctx context.Context, entityType, entityID string) ([]models.AttributeValue, error) {
	var values []models.AttributeValue
	err := r.db.WithContext(ctx).
		Preload("Attribute").
		Where("entity_type = ? AND entity_id = ? AND is_active = ?", entityType, entityID, true).
		Order("created_at ASC").
		Find(&values).Error
	return values, err
}

func (r *attributeValueRepository) Create(ctx context.Context, value *models.AttributeValue) error {
	err := r.db.WithContext(ctx).Create(value).Error
	return translateError(err, fmt.Sprintf("attribute value for %s/%s", value.EntityType, value.EntityID))
}

func (r *attributeValueRepository) Update(ctx context.Context, value *models.AttributeValue) error {
	err := r.db.WithContext(ctx).Save(value).Error
	return translateError(err, fmt.Sprintf("attribute value for %s/%s", value.EntityType, value.EntityID))
}

func (r *attributeValueRepository) Delete(ctx context.Context, entityType, entityID, attributeID string) error {
	result := r.db.WithContext(ctx).
		Where("entity_type = ? AND entity_id = ? AND attribute_id = ?", entityType, entityID, attributeID).
		Delete(&models.AttributeValue{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return translateError(gorm.ErrRecordNotFound, fmt.Sprintf("attribute value for %s/%s", entityType, entityID))
	}
	return nil
}
