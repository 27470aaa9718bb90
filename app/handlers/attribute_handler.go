package handlers

import (
	"net/http"

	"github.com/adrinata/go-catalog/app/services"
	"github.com/gorilla/mux"
	"github.com/unrolled/render"
)

type AttributeHandler struct {
	BaseHandler
	attributes services.AttributeServiceImpl
}

func NewAttributeHandler(r *render.Render, attributes services.AttributeServiceImpl) *AttributeHandler {
	return &AttributeHandler{BaseHandler: NewBaseHandler(r), attributes: attributes}
}

func (h *AttributeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input services.CreateAttributeInput
	if err := h.decode(r, &input); err != nil {
		h.fail(w, err)
		return
	}
	attribute, err := h.attributes.CreateAttribute(r.Context(), input)
	if err != nil {
		h.fail(w, err)
		return
	}
	h.ok(w, http.StatusCreated, attribute, nil)
}

func (h *AttributeHandler) Get(w http.ResponseWriter, r *http.Request) {
	attribute, err := h.attributes.GetAttribute(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.fail(w, err)
		return
	}
	h.ok(w, http.StatusOK, attribute, nil)
}

func (h *AttributeHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input services.UpdateAttributeInput
	if err := h.decode(r, &input); err != nil {
		h.fail(w, err)
		return
	}
	attribute, err := h.attributes.UpdateAttribute(r.Context(), mux.Vars(r)["id"], input)
	if err != nil {
		h.fail(w, err)
		return
	}
	h.ok(w, http.StatusOK, attribute, nil)
}

func (h *AttributeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.attributes.DeleteAttribute(r.Context(), mux.Vars(r)["id"]); err != nil {
		h.fail(w, err)
		return
	}
	h.ok(w, http.StatusOK, nil, nil)
}

func (h *AttributeHandler) List(w http.ResponseWriter, r *http.Request) {
	q, err := ParseListQuery(r)
	if err != nil {
		h.fail(w, err)
		return
	}
	attributes, meta, err := h.attributes.ListAttributes(r.Context(), q)
	if err != nil {
		h.fail(w, err)
		return
	}
	h.ok(w, http.StatusOK, attributes, meta)
}
