package services

import (
	"context"
	"testing"

	"github.com/adrinata/go-catalog/app/apperrors"
	"github.com/adrinata/go-catalog/app/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestResolveQuantityBelowLowestTierIsNotFound(t *testing.T) {
	repo := &pricelistRepoMock{}
	svc := NewPricelistService(repo, &skuRepoMock{}, nil, testConfig())

	repo.On("GetByID", mock.Anything, "pl1").Return(&models.Pricelist{
		Base: models.Base{ID: "pl1", IsActive: true}, Currency: "IDR",
	}, nil)
	repo.On("ResolveDetail", mock.Anything, "s1", "pl1", 0).
		Return(nil, apperrors.NotFound("no price tier for sku s1 at quantity 0"))

	_, err := svc.Resolve(context.Background(), "s1", "pl1", 0)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeNotFound))
}

func TestResolveInactivePricelistIsNotFound(t *testing.T) {
	repo := &pricelistRepoMock{}
	svc := NewPricelistService(repo, &skuRepoMock{}, nil, testConfig())

	repo.On("GetByID", mock.Anything, "pl1").Return(&models.Pricelist{
		Base: models.Base{ID: "pl1", IsActive: false}, Currency: "IDR",
	}, nil)

	_, err := svc.Resolve(context.Background(), "s1", "pl1", 5)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeNotFound))
	repo.AssertNotCalled(t, "ResolveDetail", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestResolveNoQualifyingTier(t *testing.T) {
	repo := &pricelistRepoMock{}
	svc := NewPricelistService(repo, &skuRepoMock{}, nil, testConfig())

	repo.On("GetByID", mock.Anything, "pl1").Return(&models.Pricelist{
		Base: models.Base{ID: "pl1", IsActive: true}, Currency: "IDR",
	}, nil)
	repo.On("ResolveDetail", mock.Anything, "s1", "pl1", 3).
		Return(nil, apperrors.NotFound("no price tier for sku s1 at quantity 3"))

	_, err := svc.Resolve(context.Background(), "s1", "pl1", 3)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeNotFound))
}

func TestResolvePicksTierAndFormats(t *testing.T) {
	repo := &pricelistRepoMock{}
	svc := NewPricelistService(repo, &skuRepoMock{}, nil, testConfig())

	repo.On("GetByID", mock.Anything, "pl1").Return(&models.Pricelist{
		Base: models.Base{ID: "pl1", IsActive: true}, Currency: "IDR",
	}, nil)
	repo.On("ResolveDetail", mock.Anything, "s1", "pl1", 15).Return(&models.PriceDetail{
		Base:            models.Base{ID: "d1", IsActive: true},
		MinimumQuantity: 10,
		Price:           decimal.NewFromInt(15000),
	}, nil)

	resolved, err := svc.Resolve(context.Background(), "s1", "pl1", 15)
	require.NoError(t, err)
	assert.Equal(t, 15, resolved.Quantity)
	assert.Equal(t, 10, resolved.MinimumQuantity)
	assert.True(t, resolved.Price.Equal(decimal.NewFromInt(15000)))
	assert.Equal(t, "IDR", resolved.Currency)
	assert.Equal(t, "Rp 15.000", resolved.Formatted)
}

func TestAddDetailRejectsDuplicateTier(t *testing.T) {
	repo := &pricelistRepoMock{}
	skus := &skuRepoMock{}
	svc := NewPricelistService(repo, skus, nil, testConfig())

	repo.On("GetByID", mock.Anything, "pl1").Return(&models.Pricelist{
		Base: models.Base{ID: "pl1", IsActive: true}, Currency: "IDR",
	}, nil)
	skus.On("GetByID", mock.Anything, "s1").Return(&models.SKU{
		Base: models.Base{ID: "s1", IsActive: true},
	}, nil)
	repo.On("DetailExists", mock.Anything, "pl1", "s1", 10, "").Return(true, nil)

	_, err := svc.AddDetail(context.Background(), PriceDetailInput{
		PricelistID:     "pl1",
		SKUID:           "s1",
		MinimumQuantity: 10,
		Price:           decimal.NewFromInt(15000),
	})
	assert.True(t, apperrors.HasCode(err, apperrors.CodeConflict))
	repo.AssertNotCalled(t, "CreateDetail", mock.Anything, mock.Anything)
}

func TestAddDetailValidatesInput(t *testing.T) {
	svc := NewPricelistService(&pricelistRepoMock{}, &skuRepoMock{}, nil, testConfig())

	_, err := svc.AddDetail(context.Background(), PriceDetailInput{
		PricelistID: "pl1", SKUID: "s1", MinimumQuantity: 0, Price: decimal.NewFromInt(100),
	})
	assert.True(t, apperrors.HasCode(err, apperrors.CodeValidation), "zero minimum quantity")

	_, err = svc.AddDetail(context.Background(), PriceDetailInput{
		PricelistID: "pl1", SKUID: "s1", MinimumQuantity: 1, Price: decimal.NewFromInt(-5),
	})
	assert.True(t, apperrors.HasCode(err, apperrors.CodeValidation), "negative price")
}

func TestUpdateDetailKeepsTierUnique(t *testing.T) {
	repo := &pricelistRepoMock{}
	svc := NewPricelistService(repo, &skuRepoMock{}, nil, testConfig())

	repo.On("GetDetail", mock.Anything, "d1").Return(&models.PriceDetail{
		Base:            models.Base{ID: "d1", IsActive: true},
		PricelistID:     "pl1",
		SKUID:           "s1",
		MinimumQuantity: 10,
		Price:           decimal.NewFromInt(15000),
	}, nil)
	repo.On("DetailExists", mock.Anything, "pl1", "s1", 25, "d1").Return(false, nil)

	var saved *models.PriceDetail
	repo.On("UpdateDetail", mock.Anything, mock.AnythingOfType("*models.PriceDetail")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(*models.PriceDetail) }).
		Return(nil)

	detail, err := svc.UpdateDetail(context.Background(), "d1", PriceDetailInput{
		SKUID:           "s1",
		MinimumQuantity: 25,
		Price:           decimal.NewFromInt(13500),
	})
	require.NoError(t, err)
	assert.Equal(t, 25, saved.MinimumQuantity)
	assert.True(t, detail.Price.Equal(decimal.NewFromInt(13500)))
	assert.Equal(t, models.SystemUserID, saved.UpdatedBy)
}
