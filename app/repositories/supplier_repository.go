package repositories

import (
	"context"
	"fmt"

	"github.com/adrinata/go-catalog/app/models"
	"gorm.io/gorm"
)

type SupplierRepositoryImpl interface {
	Create(ctx context.Context, supplier *models.Supplier) error
	GetByID(ctx context.Context, id string) (*models.Supplier, error)
	Update(ctx context.Context, supplier *models.Supplier) error
	SetActive(ctx context.Context, id string, active bool, actorID string) error
}

type supplierRepository struct {
	db *gorm.DB
}

func NewSupplierRepository(db *gorm.DB) SupplierRepositoryImpl {
	return &supplierRepository{db: db}
}

func (r *supplierRepository) Create(ctx context.Context, supplier *models.Supplier) error {
	err := r.db.WithContext(ctx).Create(supplier).Error
	return translateError(err, fmt.Sprintf("supplier %q", supplier.Name))
}

func (r *supplierRepository) GetByID(ctx context.Context, id string) (*models.Supplier, error) {
	var supplier models.Supplier
	if err := r.db.WithContext(ctx).First(&supplier, "id = ?", id).Error; err != nil {
		return nil, translateError(err, fmt.Sprintf("supplier %s", id))
	}
	return &supplier, nil
}

func (r *supplierRepository) Update(ctx context.Context, supplier *models.Supplier) error {
	err := r.db.WithContext(ctx).Save(supplier).Error
	return translateError(err, fmt.Sprintf("supplier %q", supplier.Name))
}

func (r *supplierRepository) SetActive(ctx context.Context, id string, active bool, actorID string) error {
	result := r.db.WithContext(ctx).Model(&models.Supplier{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"is_active": active, "updated_by": actorID})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return translateError(gorm.ErrRecordNotFound, fmt.Sprintf("supplier %s", id))
	}
	return nil
}
