package repositories

import (
	"context"
	"fmt"

	"github.com/adrinata/go-catalog/app/models"
	"gorm.io/gorm"
)

type CategoryRepositoryImpl interface {
	Create(ctx context.Context, category *models.Category) error
	GetByID(ctx context.Context, id string) (*models.Category, error)
	GetBySlug(ctx context.Context, parentID *string, slug string) (*models.Category, error)
	GetChildren(ctx context.Context, parentID string) ([]models.Category, error)
	GetRoots(ctx context.Context) ([]models.Category, error)
	Update(ctx context.Context, category *models.Category) error
	UpdateParent(ctx context.Context, id string, parentID *string, categoryTypeID *string, actorID string) error
	SetActive(ctx context.Context, id string, active bool, actorID string) error
	SlugExists(ctx context.Context, parentID *string, slug string, excludeID string) (bool, error)
	CountChildren(ctx context.Context, id string) (int64, error)
	WithTx(tx *gorm.DB) CategoryRepositoryImpl
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepositoryImpl {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) WithTx(tx *gorm.DB) CategoryRepositoryImpl {
	return &categoryRepository{db: tx}
}

func (r *categoryRepository) Create(ctx context.Context, category *models.Category) error {
	err := r.db.WithContext(ctx).Create(category).Error
	return translateError(err, fmt.Sprintf("category %q", category.Slug))
}

func (r *categoryRepository) GetByID(ctx context.Context, id string) (*models.Category, error) {
	var category models.Category
	err := r.db.WithContext(ctx).
		Preload("CategoryType").
		Preload("AttributeSets.Attributes").
		First(&category, "id = ?", id).Error
	if err != nil {
		return nil, translateError(err, fmt.Sprintf("category %s", id))
	}
	return &category, nil
}

func (r *categoryRepository) GetBySlug(ctx context.Context, parentID *string, slug string) (*models.Category, error) {
	var category models.Category
	q := r.db.WithContext(ctx).Where("slug = ?", slug)
	if parentID == nil {
		q = q.Where("parent_id IS NULL")
	} else {
		q = q.Where("parent_id = ?", *parentID)
	}
	if err := q.First(&category).Error; err != nil {
		return nil, translateError(err, fmt.Sprintf("category %q", slug))
	}
	return &category, nil
}

func (r *categoryRepository) GetChildren(ctx context.Context, parentID string) ([]models.Category, error) {
	var children []models.Category
	err := r.db.WithContext(ctx).
		Where("parent_id = ?", parentID).
		Order("sequence ASC, name ASC").
		Find(&children).Error
	return children, err
}

func (r *categoryRepository) GetRoots(ctx context.Context) ([]models.Category, error) {
	var roots []models.Category
	err := r.db.WithContext(ctx).
		Where("parent_id IS NULL").
		Order("sequence ASC, name ASC").
		Find(&roots).Error
	return roots, err
}

func (r *categoryRepository) Update(ctx context.Context, category *models.Category) error {
	err := r.db.WithContext(ctx).Save(category).Error
	return translateError(err, fmt.Sprintf("category %q", category.Slug))
}

// UpdateParent moves the node and keeps the hierarchy rule columns in sync
// in a single UPDATE. Cycle and depth checks belong to the service, inside
// the same transaction.
func (r *categoryRepository) UpdateParent(ctx context.Context, id string, parentID *string, categoryTypeID *string, actorID string) error {
	result := r.db.WithContext(ctx).Model(&models.Category{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"parent_id":        parentID,
			"category_type_id": categoryTypeID,
			"updated_by":       actorID,
		})
	if result.Error != nil {
		return translateError(result.Error, fmt.Sprintf("category %s", id))
	}
	if result.RowsAffected == 0 {
		return translateError(gorm.ErrRecordNotFound, fmt.Sprintf("category %s", id))
	}
	return nil
}

func (r *categoryRepository) SetActive(ctx context.Context, id string, active bool, actorID string) error {
	result := r.db.WithContext(ctx).Model(&models.Category{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"is_active": active, "updated_by": actorID})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return translateError(gorm.ErrRecordNotFound, fmt.Sprintf("category %s", id))
	}
	return nil
}

func (r *categoryRepository) SlugExists(ctx context.Context, parentID *string, slug string, excludeID string) (bool, error) {
	var count int64
	q := r.db.WithContext(ctx).Model(&models.Category{}).Where("slug = ?", slug)
	if parentID == nil {
		q = q.Where("parent_id IS NULL")
	} else {
		q = q.Where("parent_id = ?", *parentID)
	}
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *categoryRepository) CountChildren(ctx context.Context, id string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Category{}).
		Where("parent_id = ?", id).
		Count(&count).Error
	return count, err
}
