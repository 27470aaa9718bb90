package handlers

import (
	"net/http"

	"github.com/adrinata/go-catalog/app/models"
	"github.com/adrinata/go-catalog/app/services"
	"github.com/gorilla/mux"
	"github.com/unrolled/render"
)

type ProductHandler struct {
	BaseHandler
	products   services.ProductServiceImpl
	attributes services.AttributeServiceImpl
}

func NewProductHandler(r *render.Render, products services.ProductServiceImpl, attributes services.AttributeServiceImpl) *ProductHandler {
	return &ProductHandler{BaseHandler: NewBaseHandler(r), products: products, attributes: attributes}
}

func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input services.CreateProductInput
	if err := h.decode(r, &input); err != nil {
		h.fail(w, err)
		return
	}
	product, err := h.products.Create(r.Context(), input)
	if err != nil {
		h.fail(w, err)
		return
	}
	h.ok(w, http.StatusCreated, product, nil)
}

func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	product, err := h.products.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.fail(w, err)
		return
	}
	h.ok(w, http.StatusOK, product, nil)
}

func (h *ProductHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	product, err := h.products.GetBySlug(r.Context(), mux.Vars(r)["slug"])
	if err != nil {
		h.fail(w, err)
		return
	}
	h.ok(w, http.StatusOK, product, nil)
}

func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input services.UpdateProductInput
	if err := h.decode(r, &input); err != nil {
		h.fail(w, err)
		return
	}
	product, err := h.products.Update(r.Context(), mux.Vars(r)["id"], input)
	if err != nil {
		h.fail(w, err)
		return
	}
	h.ok(w, http.StatusOK, product, nil)
}

func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.products.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		h.fail(w, err)
		return
	}
	h.ok(w, http.StatusOK, nil, nil)
}

func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	q, err := ParseListQuery(r)
	if err != nil {
		h.fail(w, err)
		return
	}
	products, meta, err := h.products.List(r.Context(), q)
	if err != nil {
		h.fail(w, err)
		return
	}
	h.ok(w, http.StatusOK, products, meta)
}

type setValueInput struct {
	Value string `json:"value" validate:"required"`
}

func (h *ProductHandler) SetValue(w http.ResponseWriter, r *http.Request) {
	var input setValueInput
	if err := h.decode(r, &input); err != nil {
		h.fail(w, err)
		return
	}
	vars := mux.Vars(r)
	value, err := h.attributes.SetValue(r.Context(), models.EntityTypeProduct, vars["id"], vars["code"], input.Value)
	if err != nil {
		h.fail(w, err)
		return
	}
	h.ok(w, http.StatusOK, value, nil)
}

func (h *ProductHandler) GetValues(w http.ResponseWriter, r *http.Request) {
	values, err := h.attributes.GetValues(r.Context(), models.EntityTypeProduct, mux.Vars(r)["id"])
	if err != nil {
		h.fail(w, err)
		return
	}
	h.ok(w, http.StatusOK, values, nil)
}

func (h *ProductHandler) DeleteValue(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	if err := h.attributes.DeleteValue(r.Context(), models.EntityTypeProduct, vars["id"], vars["code"]); err != nil {
		h.fail(w, err)
		return
	}
	h.ok(w, http.StatusOK, nil, nil)
}
