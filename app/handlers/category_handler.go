package handlers

import (
	"net/http"

	"github.com/adrinata/go-catalog/app/services"
	"github.com/gorilla/mux"
	"github.com/unrolled/render"
)

type CategoryHandler struct {
	BaseHandler
	categories services.CategoryServiceImpl
	attributes services.AttributeServiceImpl
}

func NewCategoryHandler(r *render.Render, categories services.CategoryServiceImpl, attributes services.AttributeServiceImpl) *CategoryHandler {
	return &CategoryHandler{BaseHandler: NewBaseHandler(r), categories: categories, attributes: attributes}
}

func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input services.CreateCategoryInput
	if err := h.decode(r, &input); err != nil {
		h.fail(w, err)
		return
	}
	category, err := h.categories.Create(r.Context(), input)
	if err != nil {
		h.fail(w, err)
		return
	}
	h.ok(w, http.StatusCreated, category, nil)
}

func (h *CategoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	category, err := h.categories.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.fail(w, err)
		return
	}
	h.ok(w, http.StatusOK, category, nil)
}

func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input services.UpdateCategoryInput
	if err := h.decode(r, &input); err != nil {
		h.fail(w, err)
		return
	}
	category, err := h.categories.Update(r.Context(), mux.Vars(r)["id"], input)
	if err != nil {
		h.fail(w, err)
		return
	}
	h.ok(w, http.StatusOK, category, nil)
}

func (h *CategoryHandler) Move(w http.ResponseWriter, r *http.Request) {
	var input services.MoveCategoryInput
	if err := h.decode(r, &input); err != nil {
		h.fail(w, err)
		return
	}
	category, err := h.categories.Move(r.Context(), mux.Vars(r)["id"], input)
	if err != nil {
		h.fail(w, err)
		return
	}
	h.ok(w, http.StatusOK, category, nil)
}

func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.categories.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		h.fail(w, err)
		return
	}
	h.ok(w, http.StatusOK, nil, nil)
}

func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	q, err := ParseListQuery(r)
	if err != nil {
		h.fail(w, err)
		return
	}
	categories, meta, err := h.categories.List(r.Context(), q)
	if err != nil {
		h.fail(w, err)
		return
	}
	h.ok(w, http.StatusOK, categories, meta)
}

func (h *CategoryHandler) Roots(w http.ResponseWriter, r *http.Request) {
	roots, err := h.categories.Roots(r.Context())
	if err != nil {
		h.fail(w, err)
		return
	}
	h.ok(w, http.StatusOK, roots, nil)
}

func (h *CategoryHandler) Children(w http.ResponseWriter, r *http.Request) {
	children, err := h.categories.Children(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.fail(w, err)
		return
	}
	h.ok(w, http.StatusOK, children, nil)
}

func (h *CategoryHandler) Ancestors(w http.ResponseWriter, r *http.Request) {
	ancestors, err := h.categories.Ancestors(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.fail(w, err)
		return
	}
	h.ok(w, http.StatusOK, ancestors, nil)
}

func (h *CategoryHandler) Descendants(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("include_inactive") != "true"
	descendants, err := h.categories.Descendants(r.Context(), mux.Vars(r)["id"], activeOnly)
	if err != nil {
		h.fail(w, err)
		return
	}
	h.ok(w, http.StatusOK, descendants, nil)
}

// EffectiveAttributes exposes the resolved attribute schema of a category,
// inheritance included.
func (h *CategoryHandler) EffectiveAttributes(w http.ResponseWriter, r *http.Request) {
	attrs, err := h.attributes.EffectiveAttributes(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.fail(w, err)
		return
	}
	h.ok(w, http.StatusOK, attrs, nil)
}
