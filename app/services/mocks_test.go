package services

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/adrinata/go-catalog/app/models"
	"github.com/adrinata/go-catalog/app/repositories"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)
	return db, mock
}

type categoryRepoMock struct{ mock.Mock }

func (m *categoryRepoMock) Create(ctx context.Context, category *models.Category) error {
	return m.Called(ctx, category).Error(0)
}

func (m *categoryRepoMock) GetByID(ctx context.Context, id string) (*models.Category, error) {
	args := m.Called(ctx, id)
	if c, ok := args.Get(0).(*models.Category); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *categoryRepoMock) GetBySlug(ctx context.Context, parentID *string, slug string) (*models.Category, error) {
	args := m.Called(ctx, parentID, slug)
	if c, ok := args.Get(0).(*models.Category); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *categoryRepoMock) GetChildren(ctx context.Context, parentID string) ([]models.Category, error) {
	args := m.Called(ctx, parentID)
	if cs, ok := args.Get(0).([]models.Category); ok {
		return cs, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *categoryRepoMock) GetRoots(ctx context.Context) ([]models.Category, error) {
	args := m.Called(ctx)
	if cs, ok := args.Get(0).([]models.Category); ok {
		return cs, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *categoryRepoMock) Update(ctx context.Context, category *models.Category) error {
	return m.Called(ctx, category).Error(0)
}

func (m *categoryRepoMock) UpdateParent(ctx context.Context, id string, parentID *string, categoryTypeID *string, actorID string) error {
	return m.Called(ctx, id, parentID, categoryTypeID, actorID).Error(0)
}

func (m *categoryRepoMock) SetActive(ctx context.Context, id string, active bool, actorID string) error {
	return m.Called(ctx, id, active, actorID).Error(0)
}

func (m *categoryRepoMock) SlugExists(ctx context.Context, parentID *string, slug string, excludeID string) (bool, error) {
	args := m.Called(ctx, parentID, slug, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *categoryRepoMock) CountChildren(ctx context.Context, id string) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *categoryRepoMock) WithTx(tx *gorm.DB) repositories.CategoryRepositoryImpl { return m }

type attributeRepoMock struct{ mock.Mock }

func (m *attributeRepoMock) Create(ctx context.Context, attribute *models.Attribute) error {
	return m.Called(ctx, attribute).Error(0)
}

func (m *attributeRepoMock) GetByID(ctx context.Context, id string) (*models.Attribute, error) {
	args := m.Called(ctx, id)
	if a, ok := args.Get(0).(*models.Attribute); ok {
		return a, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *attributeRepoMock) GetByCode(ctx context.Context, code string) (*models.Attribute, error) {
	args := m.Called(ctx, code)
	if a, ok := args.Get(0).(*models.Attribute); ok {
		return a, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *attributeRepoMock) Update(ctx context.Context, attribute *models.Attribute) error {
	return m.Called(ctx, attribute).Error(0)
}

func (m *attributeRepoMock) SetActive(ctx context.Context, id string, active bool, actorID string) error {
	return m.Called(ctx, id, active, actorID).Error(0)
}

func (m *attributeRepoMock) CountValues(ctx context.Context, attributeID string) (int64, error) {
	args := m.Called(ctx, attributeID)
	return args.Get(0).(int64), args.Error(1)
}

type attributeSetRepoMock struct{ mock.Mock }

func (m *attributeSetRepoMock) Create(ctx context.Context, set *models.AttributeSet) error {
	return m.Called(ctx, set).Error(0)
}

func (m *attributeSetRepoMock) GetByID(ctx context.Context, id string) (*models.AttributeSet, error) {
	args := m.Called(ctx, id)
	if s, ok := args.Get(0).(*models.AttributeSet); ok {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *attributeSetRepoMock) Update(ctx context.Context, set *models.AttributeSet) error {
	return m.Called(ctx, set).Error(0)
}

func (m *attributeSetRepoMock) SetActive(ctx context.Context, id string, active bool, actorID string) error {
	return m.Called(ctx, id, active, actorID).Error(0)
}

func (m *attributeSetRepoMock) AddAttribute(ctx context.Context, set *models.AttributeSet, attribute *models.Attribute) error {
	return m.Called(ctx, set, attribute).Error(0)
}

func (m *attributeSetRepoMock) RemoveAttribute(ctx context.Context, set *models.AttributeSet, attribute *models.Attribute) error {
	return m.Called(ctx, set, attribute).Error(0)
}

func (m *attributeSetRepoMock) BindCategory(ctx context.Context, set *models.AttributeSet, category *models.Category) error {
	return m.Called(ctx, set, category).Error(0)
}

func (m *attributeSetRepoMock) UnbindCategory(ctx context.Context, set *models.AttributeSet, category *models.Category) error {
	return m.Called(ctx, set, category).Error(0)
}

func (m *attributeSetRepoMock) GetByCategoryIDs(ctx context.Context, categoryIDs []string) ([]models.AttributeSet, error) {
	args := m.Called(ctx, categoryIDs)
	if s, ok := args.Get(0).([]models.AttributeSet); ok {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

type attributeValueRepoMock struct{ mock.Mock }

func (m *attributeValueRepoMock) Get(ctx context.Context, entityType, entityID, attributeID string) (*models.AttributeValue, error) {
	args := m.Called(ctx, entityType, entityID, attributeID)
	if v, ok := args.Get(0).(*models.AttributeValue); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *attributeValueRepoMock) ListForEntity(ctx context.Context, entityType, entityID string) ([]models.AttributeValue, error) {
	args := m.Called(ctx, entityType, entityID)
	if vs, ok := args.Get(0).([]models.AttributeValue); ok {
		return vs, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *attributeValueRepoMock) Create(ctx context.Context, value *models.AttributeValue) error {
	return m.Called(ctx, value).Error(0)
}

func (m *attributeValueRepoMock) Update(ctx context.Context, value *models.AttributeValue) error {
	return m.Called(ctx, value).Error(0)
}

func (m *attributeValueRepoMock) Delete(ctx context.Context, entityType, entityID, attributeID string) error {
	return m.Called(ctx, entityType, entityID, attributeID).Error(0)
}

func (m *attributeValueRepoMock) WithTx(tx *gorm.DB) repositories.AttributeValueRepositoryImpl {
	return m
}

type productRepoMock struct{ mock.Mock }

func (m *productRepoMock) Create(ctx context.Context, product *models.Product) error {
	return m.Called(ctx, product).Error(0)
}

func (m *productRepoMock) GetByID(ctx context.Context, id string) (*models.Product, error) {
	args := m.Called(ctx, id)
	if p, ok := args.Get(0).(*models.Product); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *productRepoMock) GetBySlug(ctx context.Context, slug string) (*models.Product, error) {
	args := m.Called(ctx, slug)
	if p, ok := args.Get(0).(*models.Product); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *productRepoMock) Update(ctx context.Context, product *models.Product) error {
	return m.Called(ctx, product).Error(0)
}

func (m *productRepoMock) SetActive(ctx context.Context, id string, active bool, actorID string) error {
	return m.Called(ctx, id, active, actorID).Error(0)
}

func (m *productRepoMock) SlugExists(ctx context.Context, slug string, excludeID string) (bool, error) {
	args := m.Called(ctx, slug, excludeID)
	return args.Bool(0), args.Error(1)
}

type skuRepoMock struct{ mock.Mock }

func (m *skuRepoMock) Create(ctx context.Context, sku *models.SKU) error {
	return m.Called(ctx, sku).Error(0)
}

func (m *skuRepoMock) GetByID(ctx context.Context, id string) (*models.SKU, error) {
	args := m.Called(ctx, id)
	if s, ok := args.Get(0).(*models.SKU); ok {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *skuRepoMock) GetByCode(ctx context.Context, code string) (*models.SKU, error) {
	args := m.Called(ctx, code)
	if s, ok := args.Get(0).(*models.SKU); ok {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *skuRepoMock) Update(ctx context.Context, sku *models.SKU) error {
	return m.Called(ctx, sku).Error(0)
}

func (m *skuRepoMock) SetActive(ctx context.Context, id string, active bool, actorID string) error {
	return m.Called(ctx, id, active, actorID).Error(0)
}

type pricelistRepoMock struct{ mock.Mock }

func (m *pricelistRepoMock) Create(ctx context.Context, pricelist *models.Pricelist) error {
	return m.Called(ctx, pricelist).Error(0)
}

func (m *pricelistRepoMock) GetByID(ctx context.Context, id string) (*models.Pricelist, error) {
	args := m.Called(ctx, id)
	if p, ok := args.Get(0).(*models.Pricelist); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *pricelistRepoMock) GetByCode(ctx context.Context, code string) (*models.Pricelist, error) {
	args := m.Called(ctx, code)
	if p, ok := args.Get(0).(*models.Pricelist); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *pricelistRepoMock) Update(ctx context.Context, pricelist *models.Pricelist) error {
	return m.Called(ctx, pricelist).Error(0)
}

func (m *pricelistRepoMock) SetActive(ctx context.Context, id string, active bool, actorID string) error {
	return m.Called(ctx, id, active, actorID).Error(0)
}

func (m *pricelistRepoMock) CreateDetail(ctx context.Context, detail *models.PriceDetail) error {
	return m.Called(ctx, detail).Error(0)
}

func (m *pricelistRepoMock) UpdateDetail(ctx context.Context, detail *models.PriceDetail) error {
	return m.Called(ctx, detail).Error(0)
}

func (m *pricelistRepoMock) GetDetail(ctx context.Context, id string) (*models.PriceDetail, error) {
	args := m.Called(ctx, id)
	if d, ok := args.Get(0).(*models.PriceDetail); ok {
		return d, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *pricelistRepoMock) DetailExists(ctx context.Context, pricelistID, skuID string, minimumQuantity int, excludeID string) (bool, error) {
	args := m.Called(ctx, pricelistID, skuID, minimumQuantity, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *pricelistRepoMock) ListDetails(ctx context.Context, pricelistID, skuID string) ([]models.PriceDetail, error) {
	args := m.Called(ctx, pricelistID, skuID)
	if ds, ok := args.Get(0).([]models.PriceDetail); ok {
		return ds, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *pricelistRepoMock) ResolveDetail(ctx context.Context, skuID, pricelistID string, quantity int) (*models.PriceDetail, error) {
	args := m.Called(ctx, skuID, pricelistID, quantity)
	if d, ok := args.Get(0).(*models.PriceDetail); ok {
		return d, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *pricelistRepoMock) SetDetailActive(ctx context.Context, id string, active bool, actorID string) error {
	return m.Called(ctx, id, active, actorID).Error(0)
}
