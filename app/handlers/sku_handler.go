package handlers

import (
	"net/http"
	"strconv"

	"github.com/adrinata/go-catalog/app/apperrors"
	"github.com/adrinata/go-catalog/app/models"
	"github.com/adrinata/go-catalog/app/services"
	"github.com/gorilla/mux"
	"github.com/unrolled/render"
)

type SKUHandler struct {
	BaseHandler
	skus       services.SKUServiceImpl
	attributes services.AttributeServiceImpl
	pricelists services.PricelistServiceImpl
}

func NewSKUHandler(r *render.Render, skus services.SKUServiceImpl, attributes services.AttributeServiceImpl, pricelists services.PricelistServiceImpl) *SKUHandler {
	return &SKUHandler{BaseHandler: NewBaseHandler(r), skus: skus, attributes: attributes, pricelists: pricelists}
}

func (h *SKUHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input services.SKUInput
	if err := h.decode(r, &input); err != nil {
		h.fail(w, err)
		return
	}
	sku, err := h.skus.Create(r.Context(), input)
	if err != nil {
		h.fail(w, err)
		return
	}
	h.ok(w, http.StatusCreated, sku, nil)
}

func (h *SKUHandler) Get(w http.ResponseWriter, r *http.Request) {
	sku, err := h.skus.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.fail(w, err)
		return
	}
	h.ok(w, http.StatusOK, sku, nil)
}

func (h *SKUHandler) GetByCode(w http.ResponseWriter, r *http.Request) {
	sku, err := h.skus.GetByCode(r.Context(), mux.Vars(r)["code"])
	if err != nil {
		h.fail(w, err)
		return
	}
	h.ok(w, http.StatusOK, sku, nil)
}

func (h *SKUHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input services.SKUInput
	if err := h.decode(r, &input); err != nil {
		h.fail(w, err)
		return
	}
	sku, err := h.skus.Update(r.Context(), mux.Vars(r)["id"], input)
	if err != nil {
		h.fail(w, err)
		return
	}
	h.ok(w, http.StatusOK, sku, nil)
}

func (h *SKUHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.skus.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		h.fail(w, err)
		return
	}
	h.ok(w, http.StatusOK, nil, nil)
}

func (h *SKUHandler) List(w http.ResponseWriter, r *http.Request) {
	q, err := ParseListQuery(r)
	if err != nil {
		h.fail(w, err)
		return
	}
	skus, meta, err := h.skus.List(r.Context(), q)
	if err != nil {
		h.fail(w, err)
		return
	}
	h.ok(w, http.StatusOK, skus, meta)
}

func (h *SKUHandler) SetValue(w http.ResponseWriter, r *http.Request) {
	var input setValueInput
	if err := h.decode(r, &input); err != nil {
		h.fail(w, err)
		return
	}
	vars := mux.Vars(r)
	value, err := h.attributes.SetValue(r.Context(), models.EntityTypeSKU, vars["id"], vars["code"], input.Value)
	if err != nil {
		h.fail(w, err)
		return
	}
	h.ok(w, http.StatusOK, value, nil)
}

func (h *SKUHandler) GetValues(w http.ResponseWriter, r *http.Request) {
	values, err := h.attributes.GetValues(r.Context(), models.EntityTypeSKU, mux.Vars(r)["id"])
	if err != nil {
		h.fail(w, err)
		return
	}
	h.ok(w, http.StatusOK, values, nil)
}

func (h *SKUHandler) DeleteValue(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	if err := h.attributes.DeleteValue(r.Context(), models.EntityTypeSKU, vars["id"], vars["code"]); err != nil {
		h.fail(w, err)
		return
	}
	h.ok(w, http.StatusOK, nil, nil)
}

// ResolvePrice answers "what does this SKU cost at this quantity" against a
// pricelist's tiers.
func (h *SKUHandler) ResolvePrice(w http.ResponseWriter, r *http.Request) {
	pricelistID := r.URL.Query().Get("pricelist_id")
	if pricelistID == "" {
		h.fail(w, apperrors.Validation("pricelist_id is required"))
		return
	}
	quantity := 1
	if raw := r.URL.Query().Get("quantity"); raw != "" {
		var err error
		if quantity, err = strconv.Atoi(raw); err != nil {
			h.fail(w, apperrors.Validation("quantity must be an integer, got %q", raw))
			return
		}
	}
	price, err := h.pricelists.Resolve(r.Context(), mux.Vars(r)["id"], pricelistID, quantity)
	if err != nil {
		h.fail(w, err)
		return
	}
	h.ok(w, http.StatusOK, price, nil)
}
