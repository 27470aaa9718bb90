package repositories

import (
	"context"
	"fmt"

	"github.com/adrinata/go-catalog/app/models"
	"gorm.io/gorm"
)

type AttributeSetRepositoryImpl interface {
	Create(ctx context.Context, set *models.AttributeSet) error
	GetByID(ctx context.Context, id string) (*models.AttributeSet, error)
	Update(ctx context.Context, set *models.AttributeSet) error
	SetActive(ctx context.Context, id string, active bool, actorID string) error
	AddAttribute(ctx context.Context, set *models.AttributeSet, attribute *models.Attribute) error
	RemoveAttribute(ctx context.Context, set *models.AttributeSet, attribute *models.Attribute) error
	BindCategory(ctx context.Context, set *models.AttributeSet, category *models.Category) error
	UnbindCategory(ctx context.Context, set *models.AttributeSet, category *models.Category) error
	GetByCategoryIDs(ctx context.Context, categoryIDs []string) ([]models.AttributeSet, error)
}

type attributeSetRepository struct {
	db *gorm.DB
}

func NewAttributeSetRepository(db *gorm.DB) AttributeSetRepositoryImpl {
	return &attributeSetRepository{db: db}
}

func (r *attributeSetRepository) Create(ctx context.Context, set *models.AttributeSet) error {
	err := r.db.WithContext(ctx).Create(set).Error
	return translateError(err, fmt.Sprintf("attribute set %q", set.Name))
}

func (r *attributeSetRepository) GetByID(ctx context.Context, id string) (*models.AttributeSet, error) {
	var set models.AttributeSet
	err := r.db.WithContext(ctx).Preload("Attributes").First(&set, "id = ?", id).Error
	if err != nil {
		return nil, translateError(err, fmt.Sprintf("attribute set %s", id))
	}
	return &set, nil
}

func (r *attributeSetRepository) Update(ctx context.Context, set *models.AttributeSet) error {
	err := r.db.WithContext(ctx).Save(set).Error
	return translateError(err, fmt.Sprintf("attribute set %q", set.Name))
}

func (r *attributeSetRepository) SetActive(ctx context.Context, id string, active bool, actorID string) error {
	result := r.db.WithContext(ctx).Model(&models.AttributeSet{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"is_active": active, "updated_by": actorID})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return translateError(gorm.ErrRecordNotFound, fmt.Sprintf("attribute set %s", id))
	}
	return nil
}

func (r *attributeSetRepository) AddAttribute(ctx context.Context, set *models.AttributeSet, attribute *models.Attribute) error {
	return r.db.WithContext(ctx).Model(set).Association("Attributes").Append(attribute)
}

func (r *attributeSetRepository) RemoveAttribute(ctx context.Context, set *models.AttributeSet, attribute *models.Attribute) error {
	return r.db.WithContext(ctx).Model(set).Association("Attributes").Delete(attribute)
}

func (r *attributeSetRepository) BindCategory(ctx context.Context, set *models.AttributeSet, category *models.Category) error {
	return r.db.WithContext(ctx).Model(set).Association("Categories").Append(category)
}

func (r *attributeSetRepository) UnbindCategory(ctx context.Context, set *models.AttributeSet, category *models.Category) error {
	return r.db.WithContext(ctx).Model(set).Association("Categories").Delete(category)
}

// GetByCategoryIDs loads every active set bound to any of the categories,
// attributes included. Used to compute effective attribute schemas.
func (r *attributeSetRepository) GetByCategoryIDs(ctx context.Context, categoryIDs []string) ([]models.AttributeSet, error) {
	if len(categoryIDs) == 0 {
		return nil, nil
	}
	var sets []models.AttributeSet
	err := r.db.WithContext(ctx).
		Preload("Attributes").
		Joins("JOIN category_attribute_sets cas ON cas.attribute_set_id = attribute_sets.id").
		Where("cas.category_id IN ?", categoryIDs).
		Where("attribute_sets.is_active = ?", true).
		Distinct("attribute_sets.*").
		Find(&sets).Error
	return sets, err
}
