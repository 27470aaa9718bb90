package handlers

import (
	"net/http"

	"github.com/adrinata/go-catalog/app/filters"
	"github.com/adrinata/go-catalog/app/helpers"
	"github.com/adrinata/go-catalog/app/models"
	"github.com/adrinata/go-catalog/app/repositories"
	"github.com/gorilla/mux"
	"github.com/unrolled/render"
)

type supplierInput struct {
	Name     string `json:"name" validate:"required,max=255"`
	Code     string `json:"code" validate:"required,max=50"`
	Email    string `json:"email" validate:"omitempty,email"`
	Phone    string `json:"phone" validate:"max=20"`
	Address  string `json:"address"`
	Sequence int    `json:"sequence"`
}

type SupplierHandler struct {
	BaseHandler
	repo        repositories.SupplierRepositoryImpl
	engine      *filters.Engine
	maxPageSize int
}

func NewSupplierHandler(r *render.Render, repo repositories.SupplierRepositoryImpl, engine *filters.Engine, maxPageSize int) *SupplierHandler {
	return &SupplierHandler{BaseHandler: NewBaseHandler(r), repo: repo, engine: engine, maxPageSize: maxPageSize}
}

func (h *SupplierHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input supplierInput
	if err := h.decode(r, &input); err != nil {
		h.fail(w, err)
		return
	}
	supplier := &models.Supplier{
		Base:    models.NewBase(helpers.ActorID(r.Context())),
		Name:    input.Name,
		Code:    input.Code,
		Email:   input.Email,
		Phone:   input.Phone,
		Address: input.Address,
	}
	supplier.Sequence = input.Sequence
	if err := h.repo.Create(r.Context(), supplier); err != nil {
		h.fail(w, err)
		return
	}
	h.ok(w, http.StatusCreated, supplier, nil)
}

func (h *SupplierHandler) Get(w http.ResponseWriter, r *http.Request) {
	supplier, err := h.repo.GetByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.fail(w, err)
		return
	}
	h.ok(w, http.StatusOK, supplier, nil)
}

func (h *SupplierHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input supplierInput
	if err := h.decode(r, &input); err != nil {
		h.fail(w, err)
		return
	}
	supplier, err := h.repo.GetByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.fail(w, err)
		return
	}
	supplier.Name = input.Name
	supplier.Code = input.Code
	supplier.Email = input.Email
	supplier.Phone = input.Phone
	supplier.Address = input.Address
	supplier.Sequence = input.Sequence
	supplier.Stamp(helpers.ActorID(r.Context()))
	if err := h.repo.Update(r.Context(), supplier); err != nil {
		h.fail(w, err)
		return
	}
	h.ok(w, http.StatusOK, supplier, nil)
}

func (h *SupplierHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.repo.SetActive(r.Context(), mux.Vars(r)["id"], false, helpers.ActorID(r.Context())); err != nil {
		h.fail(w, err)
		return
	}
	h.ok(w, http.StatusOK, nil, nil)
}

func (h *SupplierHandler) List(w http.ResponseWriter, r *http.Request) {
	q, err := ParseListQuery(r)
	if err != nil {
		h.fail(w, err)
		return
	}
	plan, err := filters.Parse(q, h.maxPageSize)
	if err != nil {
		h.fail(w, err)
		return
	}
	var suppliers []models.Supplier
	meta, err := h.engine.List(r.Context(), filters.SupplierDescriptor(), plan, &suppliers)
	if err != nil {
		h.fail(w, err)
		return
	}
	h.ok(w, http.StatusOK, suppliers, meta)
}
