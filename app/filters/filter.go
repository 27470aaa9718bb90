package filters

import (
	"math"

	"github.com/adrinata/go-catalog/app/apperrors"
)

// Comparison operators accepted in a filter expression. A bare literal means
// OpEq.
const (
	OpEq   = "eq"
	OpNe   = "ne"
	OpGt   = "gt"
	OpGte  = "gte"
	OpLt   = "lt"
	OpLte  = "lte"
	OpLike = "like" // case-insensitive substring
	OpIn   = "in"
)

const DefaultLimit = 20

// ListQuery is the inbound filter/sort/pagination request. Filter maps a
// field path to a literal (implicit equality) or an operator-to-value map,
// e.g. {"price": {"gte": 100}, "category.name": "Coffee", "color": "red"}.
type ListQuery struct {
	Filter    map[string]interface{} `json:"filter"`
	SortField string                 `json:"sort_field"`
	OrderRule string                 `json:"order_rule"`
	Page      int                    `json:"page"`
	Limit     int                    `json:"limit"`

	// IncludeInactive lifts the implicit is_active gate. Set from the
	// administrative context, never from the raw filter expression.
	IncludeInactive bool `json:"-"`
}

type Condition struct {
	Path  string
	Op    string
	Value interface{}
}

// Plan is the normalized form of a ListQuery, ready to be applied to a
// collection by the engine.
type Plan struct {
	Conditions      []Condition
	SortField       string
	OrderRule       string
	Page            int
	Limit           int
	IncludeInactive bool
}

// Meta is the pagination envelope returned alongside every page.
type Meta struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

func NewMeta(page, limit int, total int64) *Meta {
	pages := 0
	if limit > 0 {
		pages = int(math.Ceil(float64(total) / float64(limit)))
	}
	return &Meta{Page: page, Limit: limit, Total: total, Pages: pages}
}

func validOp(op string) bool {
	switch op {
	case OpEq, OpNe, OpGt, OpGte, OpLt, OpLte, OpLike, OpIn:
		return true
	}
	return false
}

// Parse normalizes a raw query into a Plan: operator validation, sort
// direction defaulting, 1-indexed page and limit clamped to maxLimit.
// Field paths are resolved later, against the target entity's descriptor.
func Parse(q ListQuery, maxLimit int) (*Plan, error) {
	if q.Page < 0 || q.Limit < 0 {
		return nil, apperrors.InvalidFilter("page and limit must be positive")
	}
	page := q.Page
	if page == 0 {
		page = 1
	}
	limit := q.Limit
	if limit == 0 {
		limit = DefaultLimit
	}
	if maxLimit > 0 && limit > maxLimit {
		limit = maxLimit
	}

	order := q.OrderRule
	switch order {
	case "":
		order = "asc"
	case "asc", "desc":
	default:
		return nil, apperrors.InvalidFilter("order_rule must be asc or desc, got %q", q.OrderRule)
	}

	plan := &Plan{
		SortField:       q.SortField,
		OrderRule:       order,
		Page:            page,
		Limit:           limit,
		IncludeInactive: q.IncludeInactive,
	}

	for path, raw := range q.Filter {
		if path == "" {
			return nil, apperrors.InvalidFilter("empty field path in filter")
		}
		switch v := raw.(type) {
		case map[string]interface{}:
			if len(v) == 0 {
				return nil, apperrors.InvalidFilter("no operator given for field %q", path)
			}
			for op, val := range v {
				if !validOp(op) {
					return nil, apperrors.InvalidFilter("unsupported operator %q on field %q", op, path)
				}
				plan.Conditions = append(plan.Conditions, Condition{Path: path, Op: op, Value: val})
			}
		default:
			plan.Conditions = append(plan.Conditions, Condition{Path: path, Op: OpEq, Value: raw})
		}
	}

	return plan, nil
}

// ReplaceCondition swaps every condition on path for the given one. Used by
// services that expand a filter value, e.g. a category id into its active
// descendant set.
func (p *Plan) ReplaceCondition(path string, c Condition) {
	out := p.Conditions[:0]
	for _, existing := range p.Conditions {
		if existing.Path != path {
			out = append(out, existing)
		}
	}
	p.Conditions = append(out, c)
}

// FindCondition returns the first condition on path, if any.
func (p *Plan) FindCondition(path string) (Condition, bool) {
	for _, c := range p.Conditions {
		if c.Path == path {
			return c, true
		}
	}
	return Condition{}, false
}
