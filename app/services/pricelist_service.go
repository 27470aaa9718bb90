package services

import (
	"context"

	"github.com/adrinata/go-catalog/app/apperrors"
	"github.com/adrinata/go-catalog/app/configs"
	"github.com/adrinata/go-catalog/app/filters"
	"github.com/adrinata/go-catalog/app/helpers"
	"github.com/adrinata/go-catalog/app/models"
	"github.com/adrinata/go-catalog/app/repositories"
	"github.com/adrinata/go-catalog/app/utils/format"
	"github.com/shopspring/decimal"
)

type PricelistInput struct {
	Name     string `json:"name" validate:"required,max=100"`
	Code     string `json:"code" validate:"required,max=50"`
	Currency string `json:"currency" validate:"omitempty,len=3"`
	Sequence int    `json:"sequence"`
}

type PriceDetailInput struct {
	PricelistID     string          `json:"pricelist_id" validate:"omitempty,uuid4"`
	SKUID           string          `json:"sku_id" validate:"required,uuid4"`
	MinimumQuantity int             `json:"minimum_quantity" validate:"required,min=1"`
	Price           decimal.Decimal `json:"price" validate:"required"`
	Sequence        int             `json:"sequence"`
}

// ResolvedPrice is the outcome of a tier lookup for one SKU and quantity.
type ResolvedPrice struct {
	SKUID           string          `json:"sku_id"`
	PricelistID     string          `json:"pricelist_id"`
	Quantity        int             `json:"quantity"`
	MinimumQuantity int             `json:"minimum_quantity"`
	Price           decimal.Decimal `json:"price"`
	Currency        string          `json:"currency"`
	Formatted       string          `json:"formatted"`
}

type PricelistServiceImpl interface {
	Create(ctx context.Context, input PricelistInput) (*models.Pricelist, error)
	Get(ctx context.Context, id string) (*models.Pricelist, error)
	Update(ctx context.Context, id string, input PricelistInput) (*models.Pricelist, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, q filters.ListQuery) ([]models.Pricelist, *filters.Meta, error)

	AddDetail(ctx context.Context, input PriceDetailInput) (*models.PriceDetail, error)
	UpdateDetail(ctx context.Context, id string, input PriceDetailInput) (*models.PriceDetail, error)
	RemoveDetail(ctx context.Context, id string) error
	ListDetails(ctx context.Context, pricelistID, skuID string) ([]models.PriceDetail, error)
	Resolve(ctx context.Context, skuID, pricelistID string, quantity int) (*ResolvedPrice, error)
}

type pricelistService struct {
	repo   repositories.PricelistRepositoryImpl
	skus   repositories.SKURepositoryImpl
	engine *filters.Engine
	cfg    configs.ENV
}

func NewPricelistService(repo repositories.PricelistRepositoryImpl, skus repositories.SKURepositoryImpl, engine *filters.Engine, cfg configs.ENV) PricelistServiceImpl {
	return &pricelistService{repo: repo, skus: skus, engine: engine, cfg: cfg}
}

func (s *pricelistService) Create(ctx context.Context, input PricelistInput) (*models.Pricelist, error) {
	pricelist := &models.Pricelist{
		Base: models.NewBase(helpers.ActorID(ctx)),
		Name: input.Name,
		Code: input.Code,
	}
	pricelist.Sequence = input.Sequence
	if input.Currency != "" {
		pricelist.Currency = input.Currency
	} else {
		pricelist.Currency = "IDR"
	}
	if err := s.repo.Create(ctx, pricelist); err != nil {
		return nil, err
	}
	return pricelist, nil
}

func (s *pricelistService) Get(ctx context.Context, id string) (*models.Pricelist, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *pricelistService) Update(ctx context.Context, id string, input PricelistInput) (*models.Pricelist, error) {
	pricelist, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	pricelist.Name = input.Name
	pricelist.Code = input.Code
	if input.Currency != "" {
		pricelist.Currency = input.Currency
	}
	pricelist.Sequence = input.Sequence
	pricelist.Stamp(helpers.ActorID(ctx))
	if err := s.repo.Update(ctx, pricelist); err != nil {
		return nil, err
	}
	return pricelist, nil
}

func (s *pricelistService) Delete(ctx context.Context, id string) error {
	return s.repo.SetActive(ctx, id, false, helpers.ActorID(ctx))
}

func (s *pricelistService) List(ctx context.Context, q filters.ListQuery) ([]models.Pricelist, *filters.Meta, error) {
	plan, err := filters.Parse(q, s.cfg.MaxPageSize)
	if err != nil {
		return nil, nil, err
	}
	var pricelists []models.Pricelist
	meta, err := s.engine.List(ctx, filters.PricelistDescriptor(), plan, &pricelists)
	if err != nil {
		return nil, nil, err
	}
	return pricelists, meta, nil
}

func (s *pricelistService) AddDetail(ctx context.Context, input PriceDetailInput) (*models.PriceDetail, error) {
	if input.MinimumQuantity < 1 {
		return nil, apperrors.Validation("minimum quantity must be at least 1")
	}
	if input.Price.IsNegative() {
		return nil, apperrors.Validation("price cannot be negative")
	}
	if _, err := s.repo.GetByID(ctx, input.PricelistID); err != nil {
		return nil, err
	}
	if _, err := s.skus.GetByID(ctx, input.SKUID); err != nil {
		return nil, err
	}

	taken, err := s.repo.DetailExists(ctx, input.PricelistID, input.SKUID, input.MinimumQuantity, "")
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperrors.Conflict("a tier at quantity %d already exists for this sku and pricelist", input.MinimumQuantity)
	}

	detail := &models.PriceDetail{
		Base:            models.NewBase(helpers.ActorID(ctx)),
		PricelistID:     input.PricelistID,
		SKUID:           input.SKUID,
		MinimumQuantity: input.MinimumQuantity,
		Price:           input.Price,
	}
	detail.Sequence = input.Sequence
	if err := s.repo.CreateDetail(ctx, detail); err != nil {
		return nil, err
	}
	return detail, nil
}

func (s *pricelistService) UpdateDetail(ctx context.Context, id string, input PriceDetailInput) (*models.PriceDetail, error) {
	if input.MinimumQuantity < 1 {
		return nil, apperrors.Validation("minimum quantity must be at least 1")
	}
	if input.Price.IsNegative() {
		return nil, apperrors.Validation("price cannot be negative")
	}

	detail, err := s.repo.GetDetail(ctx, id)
	if err != nil {
		return nil, err
	}

	taken, err := s.repo.DetailExists(ctx, detail.PricelistID, detail.SKUID, input.MinimumQuantity, id)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperrors.Conflict("a tier at quantity %d already exists for this sku and pricelist", input.MinimumQuantity)
	}

	detail.MinimumQuantity = input.MinimumQuantity
	detail.Price = input.Price
	detail.Sequence = input.Sequence
	detail.Stamp(helpers.ActorID(ctx))
	if err := s.repo.UpdateDetail(ctx, detail); err != nil {
		return nil, err
	}
	return detail, nil
}

func (s *pricelistService) RemoveDetail(ctx context.Context, id string) error {
	return s.repo.SetDetailActive(ctx, id, false, helpers.ActorID(ctx))
}

func (s *pricelistService) ListDetails(ctx context.Context, pricelistID, skuID string) ([]models.PriceDetail, error) {
	return s.repo.ListDetails(ctx, pricelistID, skuID)
}

// Resolve finds the applicable tier for a quantity. No qualifying tier means
// the SKU has no price at that quantity, which is a not-found, not a zero.
// A quantity below the lowest threshold (zero included) falls out the same
// way; the caller decides its fallback policy.
func (s *pricelistService) Resolve(ctx context.Context, skuID, pricelistID string, quantity int) (*ResolvedPrice, error) {
	pricelist, err := s.repo.GetByID(ctx, pricelistID)
	if err != nil {
		return nil, err
	}
	if !pricelist.IsActive {
		return nil, apperrors.NotFound("pricelist %s not found", pricelistID)
	}

	detail, err := s.repo.ResolveDetail(ctx, skuID, pricelistID, quantity)
	if err != nil {
		return nil, err
	}

	return &ResolvedPrice{
		SKUID:           skuID,
		PricelistID:     pricelistID,
		Quantity:        quantity,
		MinimumQuantity: detail.MinimumQuantity,
		Price:           detail.Price,
		Currency:        pricelist.Currency,
		Formatted:       format.Money(detail.Price, pricelist.Currency),
	}, nil
}
