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

type categoryTypeInput struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description"`
	Sequence    int    `json:"sequence"`
}

// CategoryTypeHandler is thin enough to sit straight on the repository.
type CategoryTypeHandler struct {
	BaseHandler
	repo        repositories.CategoryTypeRepositoryImpl
	engine      *filters.Engine
	maxPageSize int
}

func NewCategoryTypeHandler(r *render.Render, repo repositories.CategoryTypeRepositoryImpl, engine *filters.Engine, maxPageSize int) *CategoryTypeHandler {
	return &CategoryTypeHandler{BaseHandler: NewBaseHandler(r), repo: repo, engine: engine, maxPageSize: maxPageSize}
}

func (h *CategoryTypeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input categoryTypeInput
	if err := h.decode(r, &input); err != nil {
		h.fail(w, err)
		return
	}
	categoryType := &models.CategoryType{
		Base:        models.NewBase(helpers.ActorID(r.Context())),
		Name:        input.Name,
		Description: input.Description,
	}
	categoryType.Sequence = input.Sequence
	if err := h.repo.Create(r.Context(), categoryType); err != nil {
		h.fail(w, err)
		return
	}
	h.ok(w, http.StatusCreated, categoryType, nil)
}

func (h *CategoryTypeHandler) Get(w http.ResponseWriter, r *http.Request) {
	categoryType, err := h.repo.GetByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.fail(w, err)
		return
	}
	h.ok(w, http.StatusOK, categoryType, nil)
}

func (h *CategoryTypeHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input categoryTypeInput
	if err := h.decode(r, &input); err != nil {
		h.fail(w, err)
		return
	}
	categoryType, err := h.repo.GetByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.fail(w, err)
		return
	}
	categoryType.Name = input.Name
	categoryType.Description = input.Description
	categoryType.Sequence = input.Sequence
	categoryType.Stamp(helpers.ActorID(r.Context()))
	if err := h.repo.Update(r.Context(), categoryType); err != nil {
		h.fail(w, err)
		return
	}
	h.ok(w, http.StatusOK, categoryType, nil)
}

func (h *CategoryTypeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.repo.SetActive(r.Context(), mux.Vars(r)["id"], false, helpers.ActorID(r.Context())); err != nil {
		h.fail(w, err)
		return
	}
	h.ok(w, http.StatusOK, nil, nil)
}

func (h *CategoryTypeHandler) List(w http.ResponseWriter, r *http.Request) {
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
	var categoryTypes []models.CategoryType
	meta, err := h.engine.List(r.Context(), filters.CategoryTypeDescriptor(), plan, &categoryTypes)
	if err != nil {
		h.fail(w, err)
		return
	}
	h.ok(w, http.StatusOK, categoryTypes, meta)
}
