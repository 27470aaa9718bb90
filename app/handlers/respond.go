package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/adrinata/go-catalog/app/apperrors"
	"github.com/adrinata/go-catalog/app/filters"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	"github.com/unrolled/render"
)

// Envelope is the uniform response body: exactly one of Data or Error is set,
// Meta only on paged listings.
type Envelope struct {
	Success bool               `json:"success"`
	Data    interface{}        `json:"data,omitempty"`
	Meta    *filters.Meta      `json:"meta,omitempty"`
	Error   *apperrors.AppError `json:"error,omitempty"`
}

type BaseHandler struct {
	render   *render.Render
	validate *validator.Validate
}

func NewBaseHandler(r *render.Render) BaseHandler {
	return BaseHandler{render: r, validate: validator.New()}
}

func (h *BaseHandler) ok(w http.ResponseWriter, status int, data interface{}, meta *filters.Meta) {
	_ = h.render.JSON(w, status, Envelope{Success: true, Data: data, Meta: meta})
}

func (h *BaseHandler) fail(w http.ResponseWriter, err error) {
	appErr := apperrors.From(err)
	if appErr.Code == apperrors.CodeInternal {
		log.Error().Err(err).Msg("request failed")
	}
	_ = h.render.JSON(w, appErr.Status, Envelope{Success: false, Error: appErr})
}

// decode reads the JSON body into dst and runs struct validation, turning
// tag failures into a per-field details map.
func (h *BaseHandler) decode(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apperrors.Validation("malformed request body: %v", err)
	}
	if err := h.validate.Struct(dst); err != nil {
		var fieldErrs validator.ValidationErrors
		details := map[string]string{}
		if errors.As(err, &fieldErrs) {
			for _, fe := range fieldErrs {
				details[fe.Field()] = fe.Tag()
			}
		}
		appErr := apperrors.Validation("request body failed validation")
		appErr.Details = details
		return appErr
	}
	return nil
}

// Query parameters reserved for paging and sorting. Everything else is a
// filter entry, optionally suffixed with an operator: price__gte=100,
// color__in=red,blue, name__like=arabica. A bare key means equality.
var reservedParams = map[string]bool{
	"page":             true,
	"limit":            true,
	"sort_field":       true,
	"order_rule":       true,
	"include_inactive": true,
}

func ParseListQuery(r *http.Request) (filters.ListQuery, error) {
	q := filters.ListQuery{Filter: map[string]interface{}{}}
	values := r.URL.Query()

	var err error
	if raw := values.Get("page"); raw != "" {
		if q.Page, err = strconv.Atoi(raw); err != nil {
			return q, apperrors.InvalidFilter("page must be an integer, got %q", raw)
		}
	}
	if raw := values.Get("limit"); raw != "" {
		if q.Limit, err = strconv.Atoi(raw); err != nil {
			return q, apperrors.InvalidFilter("limit must be an integer, got %q", raw)
		}
	}
	q.SortField = values.Get("sort_field")
	q.OrderRule = values.Get("order_rule")
	q.IncludeInactive = values.Get("include_inactive") == "true"

	for key, vals := range values {
		if reservedParams[key] || len(vals) == 0 {
			continue
		}
		field, op, found := strings.Cut(key, "__")
		if !found {
			q.Filter[key] = vals[0]
			continue
		}
		var value interface{}
		if op == filters.OpIn {
			parts := strings.Split(vals[0], ",")
			items := make([]interface{}, len(parts))
			for i, p := range parts {
				items[i] = strings.TrimSpace(p)
			}
			value = items
		} else {
			value = vals[0]
		}
		existing, ok := q.Filter[field].(map[string]interface{})
		if !ok {
			existing = map[string]interface{}{}
		}
		existing[op] = value
		q.Filter[field] = existing
	}

	return q, nil
}
