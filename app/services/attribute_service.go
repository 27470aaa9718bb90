package services

import (
	"context"
	"sort"

	"github.com/adrinata/go-catalog/app/apperrors"
	"github.com/adrinata/go-catalog/app/configs"
	"github.com/adrinata/go-catalog/app/filters"
	"github.com/adrinata/go-catalog/app/helpers"
	"github.com/adrinata/go-catalog/app/models"
	"github.com/adrinata/go-catalog/app/repositories"
	"gorm.io/gorm"
)

type CreateAttributeInput struct {
	Name     string `json:"name" validate:"required,max=100"`
	Code     string `json:"code" validate:"required,max=50"`
	DataType string `json:"data_type" validate:"required"`
	UOM      string `json:"uom" validate:"max=15"`
	Options  string `json:"options" validate:"max=500"`
	Sequence int    `json:"sequence"`
}

type UpdateAttributeInput struct {
	Name     string `json:"name" validate:"required,max=100"`
	DataType string `json:"data_type" validate:"required"`
	UOM      string `json:"uom" validate:"max=15"`
	Options  string `json:"options" validate:"max=500"`
	Sequence int    `json:"sequence"`
}

type AttributeSetInput struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description"`
	Sequence    int    `json:"sequence"`
}

// TypedValue pairs an attribute with its stored value decoded into the
// declared type.
type TypedValue struct {
	Code     string      `json:"code"`
	Name     string      `json:"name"`
	DataType string      `json:"data_type"`
	UOM      string      `json:"uom,omitempty"`
	Value    interface{} `json:"value"`
}

type AttributeServiceImpl interface {
	CreateAttribute(ctx context.Context, input CreateAttributeInput) (*models.Attribute, error)
	GetAttribute(ctx context.Context, id string) (*models.Attribute, error)
	UpdateAttribute(ctx context.Context, id string, input UpdateAttributeInput) (*models.Attribute, error)
	DeleteAttribute(ctx context.Context, id string) error
	ListAttributes(ctx context.Context, q filters.ListQuery) ([]models.Attribute, *filters.Meta, error)

	CreateSet(ctx context.Context, input AttributeSetInput) (*models.AttributeSet, error)
	GetSet(ctx context.Context, id string) (*models.AttributeSet, error)
	UpdateSet(ctx context.Context, id string, input AttributeSetInput) (*models.AttributeSet, error)
	DeleteSet(ctx context.Context, id string) error
	ListSets(ctx context.Context, q filters.ListQuery) ([]models.AttributeSet, *filters.Meta, error)
	AddToSet(ctx context.Context, setID, attributeID string) error
	RemoveFromSet(ctx context.Context, setID, attributeID string) error
	BindSet(ctx context.Context, setID, categoryID string) error
	UnbindSet(ctx context.Context, setID, categoryID string) error

	EffectiveAttributes(ctx context.Context, categoryID string) ([]models.Attribute, error)
	SetValue(ctx context.Context, entityType, entityID, code, raw string) (*models.AttributeValue, error)
	GetValues(ctx context.Context, entityType, entityID string) ([]TypedValue, error)
	DeleteValue(ctx context.Context, entityType, entityID, code string) error
}

type attributeService struct {
	db         *gorm.DB
	attrs      repositories.AttributeRepositoryImpl
	sets       repositories.AttributeSetRepositoryImpl
	values     repositories.AttributeValueRepositoryImpl
	categories CategoryServiceImpl
	products   repositories.ProductRepositoryImpl
	skus       repositories.SKURepositoryImpl
	engine     *filters.Engine
	cfg        configs.ENV
}

func NewAttributeService(
	db *gorm.DB,
	attrs repositories.AttributeRepositoryImpl,
	sets repositories.AttributeSetRepositoryImpl,
	values repositories.AttributeValueRepositoryImpl,
	categories CategoryServiceImpl,
	products repositories.ProductRepositoryImpl,
	skus repositories.SKURepositoryImpl,
	engine *filters.Engine,
	cfg configs.ENV,
) AttributeServiceImpl {
	return &attributeService{
		db:         db,
		attrs:      attrs,
		sets:       sets,
		values:     values,
		categories: categories,
		products:   products,
		skus:       skus,
		engine:     engine,
		cfg:        cfg,
	}
}

func (s *attributeService) CreateAttribute(ctx context.Context, input CreateAttributeInput) (*models.Attribute, error) {
	dataType := models.DataType(input.DataType)
	if !dataType.Valid() {
		return nil, apperrors.Validation("unknown data type %q", input.DataType)
	}
	if dataType == models.DataTypeEnum && input.Options == "" {
		return nil, apperrors.Validation("enum attribute %q needs at least one option", input.Code)
	}

	attribute := &models.Attribute{
		Base:     models.NewBase(helpers.ActorID(ctx)),
		Name:     input.Name,
		Code:     helpers.MakeSlug(input.Code),
		DataType: dataType,
		UOM:      input.UOM,
		Options:  input.Options,
	}
	attribute.Sequence = input.Sequence
	if attribute.Code == "" {
		return nil, apperrors.Validation("code %q normalizes to nothing", input.Code)
	}

	if err := s.attrs.Create(ctx, attribute); err != nil {
		return nil, err
	}
	return attribute, nil
}

func (s *attributeService) GetAttribute(ctx context.Context, id string) (*models.Attribute, error) {
	return s.attrs.GetByID(ctx, id)
}

func (s *attributeService) UpdateAttribute(ctx context.Context, id string, input UpdateAttributeInput) (*models.Attribute, error) {
	attribute, err := s.attrs.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	dataType := models.DataType(input.DataType)
	if !dataType.Valid() {
		return nil, apperrors.Validation("unknown data type %q", input.DataType)
	}
	if dataType != attribute.DataType {
		count, err := s.attrs.CountValues(ctx, id)
		if err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, apperrors.Conflict("data type of %q is frozen, %d stored values depend on it", attribute.Code, count)
		}
	}
	if dataType == models.DataTypeEnum && input.Options == "" {
		return nil, apperrors.Validation("enum attribute %q needs at least one option", attribute.Code)
	}

	attribute.Name = input.Name
	attribute.DataType = dataType
	attribute.UOM = input.UOM
	attribute.Options = input.Options
	attribute.Sequence = input.Sequence
	attribute.Stamp(helpers.ActorID(ctx))

	if err := s.attrs.Update(ctx, attribute); err != nil {
		return nil, err
	}
	return attribute, nil
}

func (s *attributeService) DeleteAttribute(ctx context.Context, id string) error {
	return s.attrs.SetActive(ctx, id, false, helpers.ActorID(ctx))
}

func (s *attributeService) ListAttributes(ctx context.Context, q filters.ListQuery) ([]models.Attribute, *filters.Meta, error) {
	plan, err := filters.Parse(q, s.cfg.MaxPageSize)
	if err != nil {
		return nil, nil, err
	}
	var attributes []models.Attribute
	meta, err := s.engine.List(ctx, filters.AttributeDescriptor(), plan, &attributes)
	if err != nil {
		return nil, nil, err
	}
	return attributes, meta, nil
}

func (s *attributeService) CreateSet(ctx context.Context, input AttributeSetInput) (*models.AttributeSet, error) {
	set := &models.AttributeSet{
		Base:        models.NewBase(helpers.ActorID(ctx)),
		Name:        input.Name,
		Description: input.Description,
	}
	set.Sequence = input.Sequence
	if err := s.sets.Create(ctx, set); err != nil {
		return nil, err
	}
	return set, nil
}

func (s *attributeService) GetSet(ctx context.Context, id string) (*models.AttributeSet, error) {
	return s.sets.GetByID(ctx, id)
}

func (s *attributeService) UpdateSet(ctx context.Context, id string, input AttributeSetInput) (*models.AttributeSet, error) {
	set, err := s.sets.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	set.Name = input.Name
	set.Description = input.Description
	set.Sequence = input.Sequence
	set.Stamp(helpers.ActorID(ctx))
	if err := s.sets.Update(ctx, set); err != nil {
		return nil, err
	}
	return set, nil
}

func (s *attributeService) DeleteSet(ctx context.Context, id string) error {
	return s.sets.SetActive(ctx, id, false, helpers.ActorID(ctx))
}

func (s *attributeService) ListSets(ctx context.Context, q filters.ListQuery) ([]models.AttributeSet, *filters.Meta, error) {
	plan, err := filters.Parse(q, s.cfg.MaxPageSize)
	if err != nil {
		return nil, nil, err
	}
	var sets []models.AttributeSet
	meta, err := s.engine.List(ctx, filters.AttributeSetDescriptor(), plan, &sets)
	if err != nil {
		return nil, nil, err
	}
	return sets, meta, nil
}

func (s *attributeService) AddToSet(ctx context.Context, setID, attributeID string) error {
	set, err := s.sets.GetByID(ctx, setID)
	if err != nil {
		return err
	}
	attribute, err := s.attrs.GetByID(ctx, attributeID)
	if err != nil {
		return err
	}
	return s.sets.AddAttribute(ctx, set, attribute)
}

func (s *attributeService) RemoveFromSet(ctx context.Context, setID, attributeID string) error {
	set, err := s.sets.GetByID(ctx, setID)
	if err != nil {
		return err
	}
	attribute, err := s.attrs.GetByID(ctx, attributeID)
	if err != nil {
		return err
	}
	return s.sets.RemoveAttribute(ctx, set, attribute)
}

func (s *attributeService) BindSet(ctx context.Context, setID, categoryID string) error {
	set, err := s.sets.GetByID(ctx, setID)
	if err != nil {
		return err
	}
	category, err := s.categories.Get(ctx, categoryID)
	if err != nil {
		return err
	}
	return s.sets.BindCategory(ctx, set, category)
}

func (s *attributeService) UnbindSet(ctx context.Context, setID, categoryID string) error {
	set, err := s.sets.GetByID(ctx, setID)
	if err != nil {
		return err
	}
	category, err := s.categories.Get(ctx, categoryID)
	if err != nil {
		return err
	}
	return s.sets.UnbindCategory(ctx, set, category)
}

// EffectiveAttributes unions the attributes of every set bound to the
// category and, when inheritance is on, its ancestors. Deduped by code,
// ordered by sequence then code.
func (s *attributeService) EffectiveAttributes(ctx context.Context, categoryID string) ([]models.Attribute, error) {
	ids := []string{categoryID}
	if s.cfg.AttributeInheritance {
		ancestors, err := s.categories.Ancestors(ctx, categoryID)
		if err != nil {
			return nil, err
		}
		for _, a := range ancestors {
			ids = append(ids, a.ID)
		}
	} else if _, err := s.categories.Get(ctx, categoryID); err != nil {
		return nil, err
	}

	sets, err := s.sets.GetByCategoryIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	byCode := map[string]models.Attribute{}
	for _, set := range sets {
		for _, attribute := range set.Attributes {
			if !attribute.IsActive {
				continue
			}
			if _, seen := byCode[attribute.Code]; !seen {
				byCode[attribute.Code] = attribute
			}
		}
	}

	out := make([]models.Attribute, 0, len(byCode))
	for _, attribute := range byCode {
		out = append(out, attribute)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Sequence != out[j].Sequence {
			return out[i].Sequence < out[j].Sequence
		}
		return out[i].Code < out[j].Code
	})
	return out, nil
}

// entityCategoryID resolves the category that governs an entity's attribute
// schema.
func (s *attributeService) entityCategoryID(ctx context.Context, entityType, entityID string) (string, error) {
	switch entityType {
	case models.EntityTypeProduct:
		product, err := s.products.GetByID(ctx, entityID)
		if err != nil {
			return "", err
		}
		return product.CategoryID, nil
	case models.EntityTypeSKU:
		sku, err := s.skus.GetByID(ctx, entityID)
		if err != nil {
			return "", err
		}
		if sku.Product == nil {
			return "", apperrors.Internal(gorm.ErrRecordNotFound)
		}
		return sku.Product.CategoryID, nil
	}
	return "", apperrors.Validation("unknown entity type %q", entityType)
}

// SetValue writes one attribute value for an entity, idempotently. The raw
// input is validated against the declared data type and, unless ad hoc
// attributes are allowed, against the entity's effective schema.
func (s *attributeService) SetValue(ctx context.Context, entityType, entityID, code, raw string) (*models.AttributeValue, error) {
	if !models.ValidEntityType(entityType) {
		return nil, apperrors.Validation("unknown entity type %q", entityType)
	}

	attribute, err := s.attrs.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	canonical, err := attribute.CanonicalValue(raw)
	if err != nil {
		return nil, apperrors.TypeMismatch("value for attribute %q: %v", code, err)
	}

	categoryID, err := s.entityCategoryID(ctx, entityType, entityID)
	if err != nil {
		return nil, err
	}
	if !s.cfg.AllowAdhocAttributes {
		effective, err := s.EffectiveAttributes(ctx, categoryID)
		if err != nil {
			return nil, err
		}
		allowed := false
		for _, a := range effective {
			if a.Code == code {
				allowed = true
				break
			}
		}
		if !allowed {
			return nil, apperrors.SchemaViolation("attribute %q is not part of the schema for this entity's category", code)
		}
	}

	actor := helpers.ActorID(ctx)
	var value *models.AttributeValue
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		values := s.values.WithTx(tx)
		existing, err := values.Get(ctx, entityType, entityID, attribute.ID)
		switch {
		case err == nil:
			existing.Value = canonical
			existing.IsActive = true
			existing.Stamp(actor)
			if err := values.Update(ctx, existing); err != nil {
				return err
			}
			value = existing
			return nil
		case apperrors.HasCode(err, apperrors.CodeNotFound):
			created := &models.AttributeValue{
				Base:        models.NewBase(actor),
				EntityType:  entityType,
				EntityID:    entityID,
				AttributeID: attribute.ID,
				Value:       canonical,
			}
			if err := values.Create(ctx, created); err != nil {
				return err
			}
			value = created
			return nil
		default:
			return err
		}
	})
	if err != nil {
		return nil, err
	}
	value.Attribute = attribute
	return value, nil
}

func (s *attributeService) GetValues(ctx context.Context, entityType, entityID string) ([]TypedValue, error) {
	if !models.ValidEntityType(entityType) {
		return nil, apperrors.Validation("unknown entity type %q", entityType)
	}
	if _, err := s.entityCategoryID(ctx, entityType, entityID); err != nil {
		return nil, err
	}

	values, err := s.values.ListForEntity(ctx, entityType, entityID)
	if err != nil {
		return nil, err
	}

	out := make([]TypedValue, 0, len(values))
	for _, v := range values {
		if v.Attribute == nil || !v.Attribute.IsActive {
			continue
		}
		typed, err := v.TypedValue()
		if err != nil {
			return nil, apperrors.Internal(err)
		}
		out = append(out, TypedValue{
			Code:     v.Attribute.Code,
			Name:     v.Attribute.Name,
			DataType: string(v.Attribute.DataType),
			UOM:      v.Attribute.UOM,
			Value:    typed,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out, nil
}

func (s *attributeService) DeleteValue(ctx context.Context, entityType, entityID, code string) error {
	if !models.ValidEntityType(entityType) {
		return apperrors.Validation("unknown entity type %q", entityType)
	}
	attribute, err := s.attrs.GetByCode(ctx, code)
	if err != nil {
		return err
	}
	return s.values.Delete(ctx, entityType, entityID, attribute.ID)
}
