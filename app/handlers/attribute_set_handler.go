package handlers

import (
	"net/http"

	"github.com/adrinata/go-catalog/app/services"
	"github.com/gorilla/mux"
	"github.com/unrolled/render"
)

type AttributeSetHandler struct {
	BaseHandler
	attributes services.AttributeServiceImpl
}

func NewAttributeSetHandler(r *render.Render, attributes services.AttributeServiceImpl) *AttributeSetHandler {
	return &AttributeSetHandler{BaseHandler: NewBaseHandler(r), attributes: attributes}
}

func (h *AttributeSetHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input services.AttributeSetInput
	if err := h.decode(r, &input); err != nil {
		h.fail(w, err)
		return
	}
	set, err := h.attributes.CreateSet(r.Context(), input)
	if err != nil {
		h.fail(w, err)
		return
	}
	h.ok(w, http.StatusCreated, set, nil)
}

func (h *AttributeSetHandler) Get(w http.ResponseWriter, r *http.Request) {
	set, err := h.attributes.GetSet(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.fail(w, err)
		return
	}
	h.ok(w, http.StatusOK, set, nil)
}

func (h *AttributeSetHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input services.AttributeSetInput
	if err := h.decode(r, &input); err != nil {
		h.fail(w, err)
		return
	}
	set, err := h.attributes.UpdateSet(r.Context(), mux.Vars(r)["id"], input)
	if err != nil {
		h.fail(w, err)
		return
	}
	h.ok(w, http.StatusOK, set, nil)
}

func (h *AttributeSetHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.attributes.DeleteSet(r.Context(), mux.Vars(r)["id"]); err != nil {
		h.fail(w, err)
		return
	}
	h.ok(w, http.StatusOK, nil, nil)
}

func (h *AttributeSetHandler) List(w http.ResponseWriter, r *http.Request) {
	q, err := ParseListQuery(r)
	if err != nil {
		h.fail(w, err)
		return
	}
	sets, meta, err := h.attributes.ListSets(r.Context(), q)
	if err != nil {
		h.fail(w, err)
		return
	}
	h.ok(w, http.StatusOK, sets, meta)
}

func (h *AttributeSetHandler) AddAttribute(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	if err := h.attributes.AddToSet(r.Context(), vars["id"], vars["attributeID"]); err != nil {
		h.fail(w, err)
		return
	}
	h.ok(w, http.StatusOK, nil, nil)
}

func (h *AttributeSetHandler) RemoveAttribute(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	if err := h.attributes.RemoveFromSet(r.Context(), vars["id"], vars["attributeID"]); err != nil {
		h.fail(w, err)
		return
	}
	h.ok(w, http.StatusOK, nil, nil)
}

func (h *AttributeSetHandler) BindCategory(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	if err := h.attributes.BindSet(r.Context(), vars["id"], vars["categoryID"]); err != nil {
		h.fail(w, err)
		return
	}
	h.ok(w, http.StatusOK, nil, nil)
}

func (h *AttributeSetHandler) UnbindCategory(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	if err := h.attributes.UnbindSet(r.Context(), vars["id"], vars["categoryID"]); err != nil {
		h.fail(w, err)
		return
	}
	h.ok(w, http.StatusOK, nil, nil)
}
