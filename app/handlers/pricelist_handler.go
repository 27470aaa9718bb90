package handlers

import (
	"net/http"

	"github.com/adrinata/go-catalog/app/services"
	"github.com/gorilla/mux"
	"github.com/unrolled/render"
)

type PricelistHandler struct {
	BaseHandler
	pricelists services.PricelistServiceImpl
}

func NewPricelistHandler(r *render.Render, pricelists services.PricelistServiceImpl) *PricelistHandler {
	return &PricelistHandler{BaseHandler: NewBaseHandler(r), pricelists: pricelists}
}

func (h *PricelistHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input services.PricelistInput
	if err := h.decode(r, &input); err != nil {
		h.fail(w, err)
		return
	}
	pricelist, err := h.pricelists.Create(r.Context(), input)
	if err != nil {
		h.fail(w, err)
		return
	}
	h.ok(w, http.StatusCreated, pricelist, nil)
}

func (h *PricelistHandler) Get(w http.ResponseWriter, r *http.Request) {
	pricelist, err := h.pricelists.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.fail(w, err)
		return
	}
	h.ok(w, http.StatusOK, pricelist, nil)
}

func (h *PricelistHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input services.PricelistInput
	if err := h.decode(r, &input); err != nil {
		h.fail(w, err)
		return
	}
	pricelist, err := h.pricelists.Update(r.Context(), mux.Vars(r)["id"], input)
	if err != nil {
		h.fail(w, err)
		return
	}
	h.ok(w, http.StatusOK, pricelist, nil)
}

func (h *PricelistHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.pricelists.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		h.fail(w, err)
		return
	}
	h.ok(w, http.StatusOK, nil, nil)
}

func (h *PricelistHandler) List(w http.ResponseWriter, r *http.Request) {
	q, err := ParseListQuery(r)
	if err != nil {
		h.fail(w, err)
		return
	}
	pricelists, meta, err := h.pricelists.List(r.Context(), q)
	if err != nil {
		h.fail(w, err)
		return
	}
	h.ok(w, http.StatusOK, pricelists, meta)
}

func (h *PricelistHandler) AddDetail(w http.ResponseWriter, r *http.Request) {
	var input services.PriceDetailInput
	if err := h.decode(r, &input); err != nil {
		h.fail(w, err)
		return
	}
	input.PricelistID = mux.Vars(r)["id"]
	detail, err := h.pricelists.AddDetail(r.Context(), input)
	if err != nil {
		h.fail(w, err)
		return
	}
	h.ok(w, http.StatusCreated, detail, nil)
}

func (h *PricelistHandler) UpdateDetail(w http.ResponseWriter, r *http.Request) {
	var input services.PriceDetailInput
	if err := h.decode(r, &input); err != nil {
		h.fail(w, err)
		return
	}
	detail, err := h.pricelists.UpdateDetail(r.Context(), mux.Vars(r)["detailID"], input)
	if err != nil {
		h.fail(w, err)
		return
	}
	h.ok(w, http.StatusOK, detail, nil)
}

func (h *PricelistHandler) RemoveDetail(w http.ResponseWriter, r *http.Request) {
	if err := h.pricelists.RemoveDetail(r.Context(), mux.Vars(r)["detailID"]); err != nil {
		h.fail(w, err)
		return
	}
	h.ok(w, http.StatusOK, nil, nil)
}

func (h *PricelistHandler) ListDetails(w http.ResponseWriter, r *http.Request) {
	details, err := h.pricelists.ListDetails(r.Context(), mux.Vars(r)["id"], r.URL.Query().Get("sku_id"))
	if err != nil {
		h.fail(w, err)
		return
	}
	h.ok(w, http.StatusOK, details, nil)
}
