package services

import (
	"context"

	"github.com/adrinata/go-catalog/app/apperrors"
	"github.com/adrinata/go-catalog/app/configs"
	"github.com/adrinata/go-catalog/app/filters"
	"github.com/adrinata/go-catalog/app/helpers"
	"github.com/adrinata/go-catalog/app/models"
	"github.com/adrinata/go-catalog/app/repositories"
	"gorm.io/gorm"
)

type CreateCategoryInput struct {
	Name           string  `json:"name" validate:"required,max=100"`
	Slug           string  `json:"slug" validate:"omitempty,max=110"`
	Description    string  `json:"description"`
	CategoryTypeID *string `json:"category_type_id"`
	ParentID       *string `json:"parent_id"`
	Sequence       int     `json:"sequence"`
}

type UpdateCategoryInput struct {
	Name        string `json:"name" validate:"required,max=100"`
	Slug        string `json:"slug" validate:"omitempty,max=110"`
	Description string `json:"description"`
	Sequence    int    `json:"sequence"`
}

type MoveCategoryInput struct {
	ParentID       *string `json:"parent_id"`
	CategoryTypeID *string `json:"category_type_id"`
}

type CategoryServiceImpl interface {
	Create(ctx context.Context, input CreateCategoryInput) (*models.Category, error)
	Get(ctx context.Context, id string) (*models.Category, error)
	Update(ctx context.Context, id string, input UpdateCategoryInput) (*models.Category, error)
	Move(ctx context.Context, id string, input MoveCategoryInput) (*models.Category, error)
	Delete(ctx context.Context, id string) error
	Roots(ctx context.Context) ([]models.Category, error)
	Children(ctx context.Context, id string) ([]models.Category, error)
	Ancestors(ctx context.Context, id string) ([]models.Category, error)
	Descendants(ctx context.Context, id string, activeOnly bool) ([]models.Category, error)
	SubtreeIDs(ctx context.Context, id string) ([]string, error)
	List(ctx context.Context, q filters.ListQuery) ([]models.Category, *filters.Meta, error)
}

type categoryService struct {
	db     *gorm.DB
	repo   repositories.CategoryRepositoryImpl
	engine *filters.Engine
	cfg    configs.ENV
}

func NewCategoryService(db *gorm.DB, repo repositories.CategoryRepositoryImpl, engine *filters.Engine, cfg configs.ENV) CategoryServiceImpl {
	return &categoryService{db: db, repo: repo, engine: engine, cfg: cfg}
}

// checkTypeRule enforces the legacy hierarchy invariant: roots carry a
// category type, children inherit it through their root and must not.
func checkTypeRule(parentID, categoryTypeID *string) error {
	if parentID == nil && categoryTypeID == nil {
		return apperrors.Validation("a top-level category requires a category type")
	}
	if parentID != nil && categoryTypeID != nil {
		return apperrors.Validation("a child category must not carry its own category type")
	}
	return nil
}

func (s *categoryService) Create(ctx context.Context, input CreateCategoryInput) (*models.Category, error) {
	if err := checkTypeRule(input.ParentID, input.CategoryTypeID); err != nil {
		return nil, err
	}

	if input.ParentID != nil {
		parent, err := s.repo.GetByID(ctx, *input.ParentID)
		if err != nil {
			return nil, err
		}
		if !parent.IsActive {
			return nil, apperrors.Validation("parent category %s is inactive", parent.ID)
		}
		depth, err := s.depth(ctx, parent.ID)
		if err != nil {
			return nil, err
		}
		if depth+1 > s.cfg.MaxCategoryDepth {
			return nil, apperrors.DepthExceeded("category depth limit of %d reached", s.cfg.MaxCategoryDepth)
		}
	}

	actor := helpers.ActorID(ctx)
	category := &models.Category{
		Base:           models.NewBase(actor),
		Name:           input.Name,
		Description:    input.Description,
		CategoryTypeID: input.CategoryTypeID,
		ParentID:       input.ParentID,
	}
	category.Sequence = input.Sequence

	slug, pinned, err := s.resolveSlug(ctx, input.Slug, input.Name, input.ParentID, "")
	if err != nil {
		return nil, err
	}
	category.Slug = slug
	category.SlugPinned = pinned

	if err := s.repo.Create(ctx, category); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, category.ID)
}

// resolveSlug picks the final sibling-scoped slug. An explicit slug pins the
// value and conflicts hard, a derived one gets a numeric suffix instead.
func (s *categoryService) resolveSlug(ctx context.Context, explicit, name string, parentID *string, excludeID string) (string, bool, error) {
	if explicit != "" {
		slug := helpers.MakeSlug(explicit)
		if slug == "" {
			return "", false, apperrors.Validation("slug %q normalizes to nothing", explicit)
		}
		taken, err := s.repo.SlugExists(ctx, parentID, slug, excludeID)
		if err != nil {
			return "", false, err
		}
		if taken {
			return "", false, apperrors.Conflict("slug %q already used among these siblings", slug)
		}
		return slug, true, nil
	}

	slug, err := helpers.UniqueSlug(name, func(candidate string) (bool, error) {
		return s.repo.SlugExists(ctx, parentID, candidate, excludeID)
	})
	if err != nil {
		return "", false, err
	}
	return slug, false, nil
}

func (s *categoryService) Get(ctx context.Context, id string) (*models.Category, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *categoryService) Update(ctx context.Context, id string, input UpdateCategoryInput) (*models.Category, error) {
	category, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	renamed := category.Name != input.Name
	category.Name = input.Name
	category.Description = input.Description
	category.Sequence = input.Sequence

	switch {
	case input.Slug != "":
		slug, _, err := s.resolveSlug(ctx, input.Slug, input.Name, category.ParentID, category.ID)
		if err != nil {
			return nil, err
		}
		category.Slug = slug
		category.SlugPinned = true
	case renamed && !category.SlugPinned:
		slug, _, err := s.resolveSlug(ctx, "", input.Name, category.ParentID, category.ID)
		if err != nil {
			return nil, err
		}
		category.Slug = slug
	}

	category.Stamp(helpers.ActorID(ctx))
	if err := s.repo.Update(ctx, category); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

// Move reparents a category. Cycle, depth and type-rule checks run inside the
// same transaction as the update so a concurrent move cannot slip a loop in.
func (s *categoryService) Move(ctx context.Context, id string, input MoveCategoryInput) (*models.Category, error) {
	if err := checkTypeRule(input.ParentID, input.CategoryTypeID); err != nil {
		return nil, err
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		category, err := repo.GetByID(ctx, id)
		if err != nil {
			return err
		}

		if input.ParentID != nil {
			newParentID := *input.ParentID
			if newParentID == id {
				return apperrors.Cycle("category %s cannot be its own parent", id)
			}
			parent, err := repo.GetByID(ctx, newParentID)
			if err != nil {
				return err
			}
			chain, err := ancestorChain(ctx, repo, parent)
			if err != nil {
				return err
			}
			for _, node := range chain {
				if node.ID == id {
					return apperrors.Cycle("category %s is a descendant of %s", newParentID, id)
				}
			}

			height, err := subtreeHeight(ctx, repo, id)
			if err != nil {
				return err
			}
			// parent depth = len(chain)+1, moved node lands one below
			if len(chain)+1+height > s.cfg.MaxCategoryDepth {
				return apperrors.DepthExceeded("move would exceed the depth limit of %d", s.cfg.MaxCategoryDepth)
			}
		}

		// the slug scope changes with the parent, re-derive on collision
		taken, err := repo.SlugExists(ctx, input.ParentID, category.Slug, id)
		if err != nil {
			return err
		}
		if taken {
			if category.SlugPinned {
				return apperrors.Conflict("slug %q already used among the new siblings", category.Slug)
			}
			slug, err := helpers.UniqueSlug(category.Name, func(candidate string) (bool, error) {
				return repo.SlugExists(ctx, input.ParentID, candidate, id)
			})
			if err != nil {
				return err
			}
			category.Slug = slug
			category.Stamp(helpers.ActorID(ctx))
			if err := repo.Update(ctx, category); err != nil {
				return err
			}
		}

		return repo.UpdateParent(ctx, id, input.ParentID, input.CategoryTypeID, helpers.ActorID(ctx))
	})
	if err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

// Delete soft-deletes the category row itself. Descendant rows keep their
// own is_active state: active-only traversal stops at the inactive node, so
// reactivating the category restores the subtree exactly as it was.
func (s *categoryService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.SetActive(ctx, id, false, helpers.ActorID(ctx))
}

func (s *categoryService) Roots(ctx context.Context) ([]models.Category, error) {
	return s.repo.GetRoots(ctx)
}

func (s *categoryService) Children(ctx context.Context, id string) ([]models.Category, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, err
	}
	return s.repo.GetChildren(ctx, id)
}

// Ancestors returns the chain from the root down to the direct parent.
func (s *categoryService) Ancestors(ctx context.Context, id string) ([]models.Category, error) {
	category, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ancestorChain(ctx, s.repo, category)
}

func ancestorChain(ctx context.Context, repo repositories.CategoryRepositoryImpl, category *models.Category) ([]models.Category, error) {
	var chain []models.Category
	visited := map[string]bool{category.ID: true}
	current := category
	for current.ParentID != nil {
		if visited[*current.ParentID] {
			return nil, apperrors.Cycle("category hierarchy contains a loop at %s", *current.ParentID)
		}
		parent, err := repo.GetByID(ctx, *current.ParentID)
		if err != nil {
			return nil, err
		}
		visited[parent.ID] = true
		chain = append([]models.Category{*parent}, chain...)
		current = parent
	}
	return chain, nil
}

// depth of a node, roots counting as 1.
func (s *categoryService) depth(ctx context.Context, id string) (int, error) {
	category, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return 0, err
	}
	chain, err := ancestorChain(ctx, s.repo, category)
	if err != nil {
		return 0, err
	}
	return len(chain) + 1, nil
}

// subtreeHeight counts levels including the node itself.
func subtreeHeight(ctx context.Context, repo repositories.CategoryRepositoryImpl, id string) (int, error) {
	height := 0
	level := []string{id}
	for len(level) > 0 {
		height++
		var next []string
		for _, nodeID := range level {
			children, err := repo.GetChildren(ctx, nodeID)
			if err != nil {
				return 0, err
			}
			for _, child := range children {
				next = append(next, child.ID)
			}
		}
		level = next
	}
	return height, nil
}

// Descendants walks the subtree breadth-first. With activeOnly an inactive
// node hides its entire branch, matching how listings treat the tree.
func (s *categoryService) Descendants(ctx context.Context, id string, activeOnly bool) ([]models.Category, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, err
	}
	var out []models.Category
	queue := []string{id}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		children, err := s.repo.GetChildren(ctx, current)
		if err != nil {
			return nil, err
		}
		for _, child := range children {
			if activeOnly && !child.IsActive {
				continue
			}
			out = append(out, child)
			queue = append(queue, child.ID)
		}
	}
	return out, nil
}

// SubtreeIDs returns the category plus every active descendant, the id set a
// category-scoped listing expands to.
func (s *categoryService) SubtreeIDs(ctx context.Context, id string) ([]string, error) {
	descendants, err := s.Descendants(ctx, id, true)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(descendants)+1)
	ids = append(ids, id)
	for _, d := range descendants {
		ids = append(ids, d.ID)
	}
	return ids, nil
}

func (s *categoryService) List(ctx context.Context, q filters.ListQuery) ([]models.Category, *filters.Meta, error) {
	plan, err := filters.Parse(q, s.cfg.MaxPageSize)
	if err != nil {
		return nil, nil, err
	}
	var categories []models.Category
	meta, err := s.engine.List(ctx, filters.CategoryDescriptor(), plan, &categories)
	if err != nil {
		return nil, nil, err
	}
	return categories, meta, nil
}
