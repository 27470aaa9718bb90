package repositories

import (
	"context"
	"fmt"

	"github.com/adrinata/go-catalog/app/models"
	"gorm.io/gorm"
)

type PricelistRepositoryImpl interface {
	Create(ctx context.Context, pricelist *models.Pricelist) error
	GetByID(ctx context.Context, id string) (*models.Pricelist, error)
	GetByCode(ctx context.Context, code string) (*models.Pricelist, error)
	Update(ctx context.Context, pricelist *models.Pricelist) error
	SetActive(ctx context.Context, id string, active bool, actorID string) error
	CreateDetail(ctx context.Context, detail *models.PriceDetail) error
	UpdateDetail(ctx context.Context, detail *models.PriceDetail) error
	GetDetail(ctx context.Context, id string) (*models.PriceDetail, error)
	DetailExists(ctx context.Context, pricelistID, skuID string, minimumQuantity int, excludeID string) (bool, error)
	ListDetails(ctx context.Context, pricelistID, skuID string) ([]models.PriceDetail, error)
	ResolveDetail(ctx context.Context, skuID, pricelistID string, quantity int) (*models.PriceDetail, error)
	SetDetailActive(ctx context.Context, id string, active bool, actorID string) error
}

type pricelistRepository struct {
	db *gorm.DB
}

func NewPricelistRepository(db *gorm.DB) PricelistRepositoryImpl {
	return &pricelistRepository{db: db}
}

func (r *pricelistRepository) Create(ctx context.Context, pricelist *models.Pricelist) error {
	err := r.db.WithContext(ctx).Create(pricelist).Error
	return translateError(err, fmt.Sprintf("pricelist %q", pricelist.Code))
}

func (r *pricelistRepository) GetByID(ctx context.Context, id string) (*models.Pricelist, error) {
	var pricelist models.Pricelist
	if err := r.db.WithContext(ctx).First(&pricelist, "id = ?", id).Error; err != nil {
		return nil, translateError(err, fmt.Sprintf("pricelist %s", id))
	}
	return &pricelist, nil
}

func (r *pricelistRepository) GetByCode(ctx context.Context, code string) (*models.Pricelist, error) {
	var pricelist models.Pricelist
	if err := r.db.WithContext(ctx).First(&pricelist, "code = ?", code).Error; err != nil {
		return nil, translateError(err, fmt.Sprintf("pricelist %q", code))
	}
	return &pricelist, nil
}

func (r *pricelistRepository) Update(ctx context.Context, pricelist *models.Pricelist) error {
	err := r.db.WithContext(ctx).Save(pricelist).Error
	return translateError(err, fmt.Sprintf("pricelist %q", pricelist.Code))
}

func (r *pricelistRepository) SetActive(ctx context.Context, id string, active bool, actorID string) error {
	result := r.db.WithContext(ctx).Model(&models.Pricelist{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"is_active": active, "updated_by": actorID})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return translateError(gorm.ErrRecordNotFound, fmt.Sprintf("pricelist %s", id))
	}
	return nil
}

func (r *pricelistRepository) CreateDetail(ctx context.Context, detail *models.PriceDetail) error {
	err := r.db.WithContext(ctx).Create(detail).Error
	return translateError(err, fmt.Sprintf("price detail for sku %s", detail.SKUID))
}

func (r *pricelistRepository) UpdateDetail(ctx context.Context, detail *models.PriceDetail) error {
	err := r.db.WithContext(ctx).Save(detail).Error
	return translateError(err, fmt.Sprintf("price detail %s", detail.ID))
}

func (r *pricelistRepository) GetDetail(ctx context.Context, id string) (*models.PriceDetail, error) {
	var detail models.PriceDetail
	if err := r.db.WithContext(ctx).First(&detail, "id = ?", id).Error; err != nil {
		return nil, translateError(err, fmt.Sprintf("price detail %s", id))
	}
	return &detail, nil
}

func (r *pricelistRepository) DetailExists(ctx context.Context, pricelistID, skuID string, minimumQuantity int, excludeID string) (bool, error) {
	var count int64
	q := r.db.WithContext(ctx).Model(&models.PriceDetail{}).
		Where("pricelist_id = ? AND sku_id = ? AND minimum_quantity = ?", pricelistID, skuID, minimumQuantity)
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *pricelistRepository) ListDetails(ctx context.Context, pricelistID, skuID string) ([]models.PriceDetail, error) {
	var details []models.PriceDetail
	q := r.db.WithContext(ctx).Where("is_active = ?", true)
	if pricelistID != "" {
		q = q.Where("pricelist_id = ?", pricelistID)
	}
	if skuID != "" {
		q = q.Where("sku_id = ?", skuID)
	}
	err := q.Order("minimum_quantity ASC").Find(&details).Error
	return details, err
}

// ResolveDetail picks the tier with the largest minimum quantity that the
// requested quantity still satisfies.
func (r *pricelistRepository) ResolveDetail(ctx context.Context, skuID, pricelistID string, quantity int) (*models.PriceDetail, error) {
	var detail models.PriceDetail
	err := r.db.WithContext(ctx).
		Where("sku_id = ? AND pricelist_id = ? AND is_active = ?", skuID, pricelistID, true).
		Where("minimum_quantity <= ?", quantity).
		Order("minimum_quantity DESC").
		First(&detail).Error
	if err != nil {
		return nil, translateError(err, fmt.Sprintf("price for sku %s at quantity %d", skuID, quantity))
	}
	return &detail, nil
}

func (r *pricelistRepository) SetDetailActive(ctx context.Context, id string, active bool, actorID string) error {
	result := r.db.WithContext(ctx).Model(&models.PriceDetail{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"is_active": active, "updated_by": actorID})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return translateError(gorm.ErrRecordNotFound, fmt.Sprintf("price detail %s", id))
	}
	return nil
}
