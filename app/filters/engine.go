package filters

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/adrinata/go-catalog/app/apperrors"
	"github.com/adrinata/go-catalog/app/models"
	"gorm.io/gorm"
)

// AttributeSource resolves a dynamic field path to its attribute declaration.
// Satisfied by the attribute repository.
type AttributeSource interface {
	GetByCode(ctx context.Context, code string) (*models.Attribute, error)
}

// Engine turns a Plan into SQL against any described entity collection.
type Engine struct {
	db    *gorm.DB
	attrs AttributeSource
}

func NewEngine(db *gorm.DB, attrs AttributeSource) *Engine {
	return &Engine{db: db, attrs: attrs}
}

type sqlClause struct {
	sql  string
	args []interface{}
}

type compiledPlan struct {
	joins     []sqlClause
	wheres    []sqlClause
	order     string
	orderJoin *sqlClause
}

// List runs the plan: one transaction, count over the filtered set, then the
// requested page, so total and page never drift apart.
func (e *Engine) List(ctx context.Context, desc Descriptor, plan *Plan, dest interface{}) (*Meta, error) {
	cp, err := e.compile(ctx, desc, plan)
	if err != nil {
		return nil, err
	}

	var total int64
	err = e.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		countQ := cp.apply(tx, desc, false)
		if err := countQ.Distinct(desc.Table + ".id").Count(&total).Error; err != nil {
			return err
		}

		pageQ := cp.apply(tx, desc, true)
		for _, preload := range desc.Preloads {
			pageQ = pageQ.Preload(preload)
		}
		offset := (plan.Page - 1) * plan.Limit
		return pageQ.
			Select(desc.Table + ".*").
			Order(cp.order).
			Limit(plan.Limit).
			Offset(offset).
			Find(dest).Error
	})
	if err != nil {
		return nil, err
	}

	return NewMeta(plan.Page, plan.Limit, total), nil
}

func (cp *compiledPlan) apply(tx *gorm.DB, desc Descriptor, withSort bool) *gorm.DB {
	q := tx.Model(desc.Model)
	for _, j := range cp.joins {
		q = q.Joins(j.sql, j.args...)
	}
	if withSort && cp.orderJoin != nil {
		q = q.Joins(cp.orderJoin.sql, cp.orderJoin.args...)
	}
	for _, w := range cp.wheres {
		q = q.Where(w.sql, w.args...)
	}
	return q
}

func (e *Engine) compile(ctx context.Context, desc Descriptor, plan *Plan) (*compiledPlan, error) {
	cp := &compiledPlan{}
	relJoined := map[string]bool{}

	for i, c := range plan.Conditions {
		// native column
		if col, ok := desc.Fields[c.Path]; ok {
			w, err := buildWhere(desc.Table+"."+col, c.Op, c.Value)
			if err != nil {
				return nil, err
			}
			cp.wheres = append(cp.wheres, w)
			continue
		}

		// dotted path into a relation
		if head, rest, found := strings.Cut(c.Path, "."); found {
			rel, ok := desc.Relations[head]
			if !ok {
				return nil, apperrors.InvalidFilter("unknown field %q", c.Path)
			}
			col, ok := rel.Fields[rest]
			if !ok {
				return nil, apperrors.InvalidFilter("unknown field %q", c.Path)
			}
			if !relJoined[head] {
				cp.joins = append(cp.joins, sqlClause{sql: rel.JoinSQL})
				relJoined[head] = true
			}
			w, err := buildWhere(col, c.Op, c.Value)
			if err != nil {
				return nil, err
			}
			cp.wheres = append(cp.wheres, w)
			continue
		}

		// dynamic attribute, routed through the EAV store
		if desc.EntityType != "" {
			attr, err := e.lookupAttribute(ctx, c.Path)
			if err != nil {
				return nil, err
			}
			join, where, err := buildAttributeClause(desc, attr, fmt.Sprintf("av%d", i), c)
			if err != nil {
				return nil, err
			}
			cp.joins = append(cp.joins, join)
			cp.wheres = append(cp.wheres, where)
			continue
		}

		return nil, apperrors.InvalidFilter("unknown field %q", c.Path)
	}

	// implicit visibility gate, ANDed in after everything else
	if !plan.IncludeInactive {
		cp.wheres = append(cp.wheres, sqlClause{sql: desc.Table + ".is_active = ?", args: []interface{}{true}})
	}

	return cp, e.compileSort(ctx, desc, plan, cp, relJoined)
}

func (e *Engine) compileSort(ctx context.Context, desc Descriptor, plan *Plan, cp *compiledPlan, relJoined map[string]bool) error {
	dir := strings.ToUpper(plan.OrderRule)

	if plan.SortField == "" {
		cp.order = fmt.Sprintf("%s.sequence ASC, %s.created_at ASC", desc.Table, desc.Table)
		return nil
	}

	if col, ok := desc.Fields[plan.SortField]; ok {
		cp.order = fmt.Sprintf("%s.%s %s", desc.Table, col, dir)
		return nil
	}

	if head, rest, found := strings.Cut(plan.SortField, "."); found {
		rel, ok := desc.Relations[head]
		if !ok {
			return apperrors.InvalidFilter("unknown sort field %q", plan.SortField)
		}
		col, ok := rel.Fields[rest]
		if !ok {
			return apperrors.InvalidFilter("unknown sort field %q", plan.SortField)
		}
		if !relJoined[head] {
			cp.orderJoin = &sqlClause{sql: rel.JoinSQL}
		}
		cp.order = fmt.Sprintf("%s %s", col, dir)
		return nil
	}

	if desc.EntityType != "" {
		attr, err := e.lookupAttribute(ctx, plan.SortField)
		if err != nil {
			return err
		}
		cp.orderJoin = &sqlClause{
			sql: fmt.Sprintf(
				"LEFT JOIN attribute_values avsort ON avsort.entity_type = ? AND avsort.entity_id = %s.id AND avsort.attribute_id = ? AND avsort.is_active = ?",
				desc.Table,
			),
			args: []interface{}{desc.EntityType, attr.ID, true},
		}
		// entities missing the value sort last whatever the direction
		cp.order = fmt.Sprintf("avsort.value IS NULL, %s %s", typedValueExpr("avsort", attr.DataType), dir)
		return nil
	}

	return apperrors.InvalidFilter("unknown sort field %q", plan.SortField)
}

func (e *Engine) lookupAttribute(ctx context.Context, code string) (*models.Attribute, error) {
	attr, err := e.attrs.GetByCode(ctx, code)
	if err != nil {
		if apperrors.HasCode(err, apperrors.CodeNotFound) || errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.InvalidFilter("unknown field %q", code)
		}
		return nil, err
	}
	return attr, nil
}

// typedValueExpr compares the stored canonical string in its declared type.
func typedValueExpr(alias string, dt models.DataType) string {
	switch dt {
	case models.DataTypeInteger, models.DataTypeDecimal:
		return fmt.Sprintf("CAST(%s.value AS DECIMAL(24,6))", alias)
	case models.DataTypeDate:
		return fmt.Sprintf("CAST(%s.value AS DATE)", alias)
	default:
		return alias + ".value"
	}
}

func buildAttributeClause(desc Descriptor, attr *models.Attribute, alias string, c Condition) (sqlClause, sqlClause, error) {
	join := sqlClause{
		sql: fmt.Sprintf(
			"JOIN attribute_values %s ON %s.entity_type = ? AND %s.entity_id = %s.id AND %s.attribute_id = ? AND %s.is_active = ?",
			alias, alias, alias, desc.Table, alias, alias,
		),
		args: []interface{}{desc.EntityType, attr.ID, true},
	}

	if c.Op == OpLike {
		// substring match works on the raw stored form for any type
		where, err := buildWhere(alias+".value", OpLike, c.Value)
		return join, where, err
	}

	coerce := func(v interface{}) (interface{}, error) {
		typed, err := attr.CoerceValue(fmt.Sprint(v))
		if err != nil {
			return nil, apperrors.TypeMismatch("value for attribute %q: %v", attr.Code, err)
		}
		return typed, nil
	}

	expr := typedValueExpr(alias, attr.DataType)

	if c.Op == OpIn {
		items, ok := c.Value.([]interface{})
		if !ok {
			strs, okStr := c.Value.([]string)
			if !okStr {
				return join, sqlClause{}, apperrors.InvalidFilter("operator %q on %q needs a list", OpIn, attr.Code)
			}
			items = make([]interface{}, len(strs))
			for i, s := range strs {
				items[i] = s
			}
		}
		typedItems := make([]interface{}, len(items))
		for i, item := range items {
			typed, err := coerce(item)
			if err != nil {
				return join, sqlClause{}, err
			}
			typedItems[i] = typed
		}
		return join, sqlClause{sql: expr + " IN ?", args: []interface{}{typedItems}}, nil
	}

	// booleans and enums compare on the canonical string, not a cast
	if attr.DataType == models.DataTypeBoolean {
		canonical, err := attr.CanonicalValue(fmt.Sprint(c.Value))
		if err != nil {
			return join, sqlClause{}, apperrors.TypeMismatch("value for attribute %q: %v", attr.Code, err)
		}
		where, err := buildWhere(alias+".value", c.Op, canonical)
		return join, where, err
	}

	typed, err := coerce(c.Value)
	if err != nil {
		return join, sqlClause{}, err
	}
	where, err := buildWhere(expr, c.Op, typed)
	return join, where, err
}

func buildWhere(expr, op string, value interface{}) (sqlClause, error) {
	switch op {
	case OpEq:
		return sqlClause{sql: expr + " = ?", args: []interface{}{value}}, nil
	case OpNe:
		return sqlClause{sql: expr + " <> ?", args: []interface{}{value}}, nil
	case OpGt:
		return sqlClause{sql: expr + " > ?", args: []interface{}{value}}, nil
	case OpGte:
		return sqlClause{sql: expr + " >= ?", args: []interface{}{value}}, nil
	case OpLt:
		return sqlClause{sql: expr + " < ?", args: []interface{}{value}}, nil
	case OpLte:
		return sqlClause{sql: expr + " <= ?", args: []interface{}{value}}, nil
	case OpLike:
		return sqlClause{
			sql:  "LOWER(" + expr + ") LIKE ?",
			args: []interface{}{"%" + strings.ToLower(fmt.Sprint(value)) + "%"},
		}, nil
	case OpIn:
		return sqlClause{sql: expr + " IN ?", args: []interface{}{value}}, nil
	}
	return sqlClause{}, apperrors.InvalidFilter("unsupported operator %q", op)
}
