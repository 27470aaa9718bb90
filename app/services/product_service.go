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

type CreateProductInput struct {
	Name        string `json:"name" validate:"required,max=255"`
	Slug        string `json:"slug" validate:"omitempty,max=255"`
	Description string `json:"description"`
	CategoryID  string `json:"category_id" validate:"required,uuid4"`
	Sequence    int    `json:"sequence"`
}

type UpdateProductInput struct {
	Name        string `json:"name" validate:"required,max=255"`
	Slug        string `json:"slug" validate:"omitempty,max=255"`
	Description string `json:"description"`
	CategoryID  string `json:"category_id" validate:"required,uuid4"`
	Sequence    int    `json:"sequence"`
}

type ProductServiceImpl interface {
	Create(ctx context.Context, input CreateProductInput) (*models.Product, error)
	Get(ctx context.Context, id string) (*models.Product, error)
	GetBySlug(ctx context.Context, slug string) (*models.Product, error)
	Update(ctx context.Context, id string, input UpdateProductInput) (*models.Product, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, q filters.ListQuery) ([]models.Product, *filters.Meta, error)
}

type productService struct {
	repo       repositories.ProductRepositoryImpl
	categories CategoryServiceImpl
	engine     *filters.Engine
	cfg        configs.ENV
}

func NewProductService(repo repositories.ProductRepositoryImpl, categories CategoryServiceImpl, engine *filters.Engine, cfg configs.ENV) ProductServiceImpl {
	return &productService{repo: repo, categories: categories, engine: engine, cfg: cfg}
}

func (s *productService) Create(ctx context.Context, input CreateProductInput) (*models.Product, error) {
	category, err := s.categories.Get(ctx, input.CategoryID)
	if err != nil {
		return nil, err
	}
	if !category.IsActive {
		return nil, apperrors.Validation("category %s is inactive", category.ID)
	}

	product := &models.Product{
		Base:        models.NewBase(helpers.ActorID(ctx)),
		Name:        input.Name,
		Description: input.Description,
		CategoryID:  input.CategoryID,
	}
	product.Sequence = input.Sequence

	slug, err := s.resolveSlug(ctx, input.Slug, input.Name, "")
	if err != nil {
		return nil, err
	}
	product.Slug = slug

	if err := s.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, product.ID)
}

func (s *productService) resolveSlug(ctx context.Context, explicit, name, excludeID string) (string, error) {
	if explicit != "" {
		slug := helpers.MakeSlug(explicit)
		if slug == "" {
			return "", apperrors.Validation("slug %q normalizes to nothing", explicit)
		}
		taken, err := s.repo.SlugExists(ctx, slug, excludeID)
		if err != nil {
			return "", err
		}
		if taken {
			return "", apperrors.Conflict("slug %q already in use", slug)
		}
		return slug, nil
	}
	return helpers.UniqueSlug(name, func(candidate string) (bool, error) {
		return s.repo.SlugExists(ctx, candidate, excludeID)
	})
}

func (s *productService) Get(ctx context.Context, id string) (*models.Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *productService) GetBySlug(ctx context.Context, slug string) (*models.Product, error) {
	return s.repo.GetBySlug(ctx, slug)
}

func (s *productService) Update(ctx context.Context, id string, input UpdateProductInput) (*models.Product, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if input.CategoryID != product.CategoryID {
		category, err := s.categories.Get(ctx, input.CategoryID)
		if err != nil {
			return nil, err
		}
		if !category.IsActive {
			return nil, apperrors.Validation("category %s is inactive", category.ID)
		}
	}

	renamed := product.Name != input.Name
	product.Name = input.Name
	product.Description = input.Description
	product.CategoryID = input.CategoryID
	product.Sequence = input.Sequence

	switch {
	case input.Slug != "":
		slug, err := s.resolveSlug(ctx, input.Slug, input.Name, id)
		if err != nil {
			return nil, err
		}
		product.Slug = slug
	case renamed:
		slug, err := s.resolveSlug(ctx, "", input.Name, id)
		if err != nil {
			return nil, err
		}
		product.Slug = slug
	}

	product.Stamp(helpers.ActorID(ctx))
	if err := s.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *productService) Delete(ctx context.Context, id string) error {
	return s.repo.SetActive(ctx, id, false, helpers.ActorID(ctx))
}

// List pages products. An equality filter on category_id is widened to the
// category's active subtree so a parent category lists its descendants'
// products too.
func (s *productService) List(ctx context.Context, q filters.ListQuery) ([]models.Product, *filters.Meta, error) {
	plan, err := filters.Parse(q, s.cfg.MaxPageSize)
	if err != nil {
		return nil, nil, err
	}

	if cond, ok := plan.FindCondition("category_id"); ok && cond.Op == filters.OpEq {
		categoryID, isString := cond.Value.(string)
		if !isString {
			return nil, nil, apperrors.InvalidFilter("category_id must be a string")
		}
		ids, err := s.categories.SubtreeIDs(ctx, categoryID)
		if err != nil {
			return nil, nil, err
		}
		plan.ReplaceCondition("category_id", filters.Condition{
			Path:  "category_id",
			Op:    filters.OpIn,
			Value: ids,
		})
	}

	var products []models.Product
	meta, err := s.engine.List(ctx, filters.ProductDescriptor(), plan, &products)
	if err != nil {
		return nil, nil, err
	}
	return products, meta, nil
}
