package services

import (
	"context"

	"github.com/adrinata/go-catalog/app/apperrors"
	"github.com/adrinata/go-catalog/app/configs"
	"github.com/adrinata/go-catalog/app/filters"
	"github.com/adrinata/go-catalog/app/helpers"
	"github.com/adrinata/go-catalog/app/models"
	"github.com/adrinata/go-catalog/app/repositories"
)

type SKUInput struct {
	ProductID  string  `json:"product_id" validate:"required,uuid4"`
	SupplierID *string `json:"supplier_id" validate:"omitempty,uuid4"`
	Code       string  `json:"code" validate:"required,max=100"`
	Barcode    string  `json:"barcode" validate:"max=100"`
	Name       string  `json:"name" validate:"required,max=255"`
	Sequence   int     `json:"sequence"`
}

type SKUServiceImpl interface {
	Create(ctx context.Context, input SKUInput) (*models.SKU, error)
	Get(ctx context.Context, id string) (*models.SKU, error)
	GetByCode(ctx context.Context, code string) (*models.SKU, error)
	Update(ctx context.Context, id string, input SKUInput) (*models.SKU, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, q filters.ListQuery) ([]models.SKU, *filters.Meta, error)
}

type skuService struct {
	repo       repositories.SKURepositoryImpl
	products   repositories.ProductRepositoryImpl
	suppliers  repositories.SupplierRepositoryImpl
	categories CategoryServiceImpl
	engine     *filters.Engine
	cfg        configs.ENV
}

func NewSKUService(
	repo repositories.SKURepositoryImpl,
	products repositories.ProductRepositoryImpl,
	suppliers repositories.SupplierRepositoryImpl,
	categories CategoryServiceImpl,
	engine *filters.Engine,
	cfg configs.ENV,
) SKUServiceImpl {
	return &skuService{
		repo:       repo,
		products:   products,
		suppliers:  suppliers,
		categories: categories,
		engine:     engine,
		cfg:        cfg,
	}
}

func (s *skuService) Create(ctx context.Context, input SKUInput) (*models.SKU, error) {
	product, err := s.products.GetByID(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}
	if !product.IsActive {
		return nil, apperrors.Validation("product %s is inactive", product.ID)
	}
	if input.SupplierID != nil {
		if _, err := s.suppliers.GetByID(ctx, *input.SupplierID); err != nil {
			return nil, err
		}
	}

	sku := &models.SKU{
		Base:       models.NewBase(helpers.ActorID(ctx)),
		ProductID:  input.ProductID,
		SupplierID: input.SupplierID,
		Code:       input.Code,
		Barcode:    input.Barcode,
		Name:       input.Name,
	}
	sku.Sequence = input.Sequence

	if err := s.repo.Create(ctx, sku); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, sku.ID)
}

func (s *skuService) Get(ctx context.Context, id string) (*models.SKU, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *skuService) GetByCode(ctx context.Context, code string) (*models.SKU, error) {
	return s.repo.GetByCode(ctx, code)
}

func (s *skuService) Update(ctx context.Context, id string, input SKUInput) (*models.SKU, error) {
	sku, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if input.ProductID != sku.ProductID {
		product, err := s.products.GetByID(ctx, input.ProductID)
		if err != nil {
			return nil, err
		}
		if !product.IsActive {
			return nil, apperrors.Validation("product %s is inactive", product.ID)
		}
	}
	if input.SupplierID != nil {
		if _, err := s.suppliers.GetByID(ctx, *input.SupplierID); err != nil {
			return nil, err
		}
	}

	sku.ProductID = input.ProductID
	sku.SupplierID = input.SupplierID
	sku.Code = input.Code
	sku.Barcode = input.Barcode
	sku.Name = input.Name
	sku.Sequence = input.Sequence
	sku.Stamp(helpers.ActorID(ctx))

	if err := s.repo.Update(ctx, sku); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *skuService) Delete(ctx context.Context, id string) error {
	return s.repo.SetActive(ctx, id, false, helpers.ActorID(ctx))
}

// List pages SKUs. Like products, an equality filter on product.category_id
// expands to the category's active subtree.
func (s *skuService) List(ctx context.Context, q filters.ListQuery) ([]models.SKU, *filters.Meta, error) {
	plan, err := filters.Parse(q, s.cfg.MaxPageSize)
	if err != nil {
		return nil, nil, err
	}

	if cond, ok := plan.FindCondition("product.category_id"); ok && cond.Op == filters.OpEq {
		categoryID, isString := cond.Value.(string)
		if !isString {
			return nil, nil, apperrors.InvalidFilter("product.category_id must be a string")
		}
		ids, err := s.categories.SubtreeIDs(ctx, categoryID)
		if err != nil {
			return nil, nil, err
		}
		plan.ReplaceCondition("product.category_id", filters.Condition{
			Path:  "product.category_id",
			Op:    filters.OpIn,
			Value: ids,
		})
	}

	var skus []models.SKU
	meta, err := s.engine.List(ctx, filters.SKUDescriptor(), plan, &skus)
	if err != nil {
		return nil, nil, err
	}
	return skus, meta, nil
}
