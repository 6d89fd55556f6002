package entities

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/marketplace/internal/dto"
	"github.com/GlebRadaev/marketplace/internal/entity"
	"github.com/GlebRadaev/marketplace/internal/handlers/httperr"
	"github.com/GlebRadaev/marketplace/internal/service/entityservice"
	"github.com/GlebRadaev/marketplace/pkg/auth"
	"github.com/GlebRadaev/marketplace/pkg/utils"
)

type Service interface {
	List(ctx context.Context, userID, name string, req entity.ListRequest, all bool) (*entity.Page, error)
	Get(ctx context.Context, userID, name string, id int64) (entity.Record, error)
	Create(ctx context.Context, userID, name string, raw map[string]json.RawMessage) (entity.Record, error)
	CreateBatch(ctx context.Context, userID, name string, raws []map[string]json.RawMessage) ([]entity.Record, error)
	Update(ctx context.Context, userID, name string, id int64, raw map[string]json.RawMessage) (entity.Record, error)
	UpdateBatch(ctx context.Context, userID, name string, patches []entityservice.Patch) ([]entity.Record, error)
	Delete(ctx context.Context, userID, name string, id int64) error
	DeleteBatch(ctx context.Context, userID, name string, ids []int64) (int64, error)
}

type EntitiesHandler struct {
	service Service
}

func New(service Service) *EntitiesHandler {
	return &EntitiesHandler{
		service: service,
	}
}

// List godoc
//
//	@Summary		List entities
//	@Description	Lists the caller's rows of an entity.
//	@Tags			Entities
//	@Produce		json
//	@Param			name	path	string	true	"Entity name"	example(cart_items)
//	@Param			skip	query	int		false	"Rows to skip"
//	@Param			limit	query	int		false	"Page size (1..2000)"
//	@Param			sort	query	string	false	"Sort field, leading - for descending"
//	@Param			query	query	string	false	"JSON object of equality filters"
//	@Security		BearerAuth
//	@Success		200	{object}	entity.Page
//	@Failure		400	{object}	utils.Response	"Invalid list parameters"
//	@Failure		404	{object}	utils.Response	"Unknown entity"
//	@Router			/api/v1/entities/{name} [get]
func (h *EntitiesHandler) List(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, false)
}

// ListAll godoc
//
//	@Summary		List all entities
//	@Description	Lists every row of an entity regardless of owner.
//	@Tags			Entities
//	@Produce		json
//	@Param			name	path	string	true	"Entity name"
//	@Param			skip	query	int		false	"Rows to skip"
//	@Param			limit	query	int		false	"Page size (1..2000)"
//	@Param			sort	query	string	false	"Sort field, leading - for descending"
//	@Param			query	query	string	false	"JSON object of equality filters"
//	@Security		BearerAuth
//	@Success		200	{object}	entity.Page
//	@Failure		400	{object}	utils.Response	"Invalid list parameters"
//	@Failure		404	{object}	utils.Response	"Unknown entity"
//	@Router			/api/v1/entities/{name}/all [get]
func (h *EntitiesHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, true)
}

func (h *EntitiesHandler) list(w http.ResponseWriter, r *http.Request, all bool) {
	q := r.URL.Query()
	req := entity.ListRequest{
		Skip:  q.Get("skip"),
		Limit: q.Get("limit"),
		Sort:  q.Get("sort"),
		Query: q.Get("query"),
	}
	page, err := h.service.List(r.Context(), auth.UserIDFromContext(r.Context()), chi.URLParam(r, "name"), req, all)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, page)
}

// Get godoc
//
//	@Summary	Get an entity
//	@Tags		Entities
//	@Produce	json
//	@Param		name	path	string	true	"Entity name"
//	@Param		id		path	int		true	"Row ID"
//	@Security	BearerAuth
//	@Success	200	{object}	map[string]any
//	@Failure	404	{object}	utils.Response	"Not found"
//	@Router		/api/v1/entities/{name}/{id} [get]
func (h *EntitiesHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	rec, err := h.service.Get(r.Context(), auth.UserIDFromContext(r.Context()), chi.URLParam(r, "name"), id)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, rec)
}

// Create godoc
//
//	@Summary	Create an entity
//	@Tags		Entities
//	@Accept		json
//	@Produce	json
//	@Param		name	path	string			true	"Entity name"
//	@Param		body	body	map[string]any	true	"Field values"
//	@Security	BearerAuth
//	@Success	201	{object}	map[string]any
//	@Failure	400	{object}	utils.Response	"Invalid fields"
//	@Failure	403	{object}	utils.Response	"Entity is read-only"
//	@Router		/api/v1/entities/{name} [post]
func (h *EntitiesHandler) Create(w http.ResponseWriter, r *http.Request) {
	var raw map[string]json.RawMessage
	if !utils.DecodeJSON(w, r, &raw) {
		return
	}
	rec, err := h.service.Create(r.Context(), auth.UserIDFromContext(r.Context()), chi.URLParam(r, "name"), raw)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, rec)
}

// CreateBatch godoc
//
//	@Summary		Create entities in bulk
//	@Description	Inserts all items in one transaction. Nothing is stored if any item is invalid.
//	@Tags			Entities
//	@Accept			json
//	@Produce		json
//	@Param			name	path	string						true	"Entity name"
//	@Param			body	body	dto.BatchCreateRequestDTO	true	"Items"
//	@Security		BearerAuth
//	@Success		201	{array}		map[string]any
//	@Failure		400	{object}	utils.Response	"Invalid item"
//	@Router			/api/v1/entities/{name}/batch [post]
func (h *EntitiesHandler) CreateBatch(w http.ResponseWriter, r *http.Request) {
	var req dto.BatchCreateRequestDTO
	if !utils.DecodeJSON(w, r, &req) {
		return
	}
	recs, err := h.service.CreateBatch(r.Context(), auth.UserIDFromContext(r.Context()), chi.URLParam(r, "name"), req.Items)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, recs)
}

// Update godoc
//
//	@Summary	Update an entity
//	@Tags		Entities
//	@Accept		json
//	@Produce	json
//	@Param		name	path	string			true	"Entity name"
//	@Param		id		path	int				true	"Row ID"
//	@Param		body	body	map[string]any	true	"Changed fields"
//	@Security	BearerAuth
//	@Success	200	{object}	map[string]any
//	@Failure	400	{object}	utils.Response	"Invalid fields"
//	@Failure	404	{object}	utils.Response	"Not found"
//	@Router		/api/v1/entities/{name}/{id} [put]
func (h *EntitiesHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var raw map[string]json.RawMessage
	if !utils.DecodeJSON(w, r, &raw) {
		return
	}
	rec, err := h.service.Update(r.Context(), auth.UserIDFromContext(r.Context()), chi.URLParam(r, "name"), id, raw)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, rec)
}

// UpdateBatch godoc
//
//	@Summary		Update entities in bulk
//	@Description	Applies all updates in one transaction. Rows the caller cannot see are skipped.
//	@Tags			Entities
//	@Accept			json
//	@Produce		json
//	@Param			name	path	string						true	"Entity name"
//	@Param			body	body	dto.BatchUpdateRequestDTO	true	"Updates"
//	@Security		BearerAuth
//	@Success		200	{array}		map[string]any
//	@Failure		400	{object}	utils.Response	"Invalid item"
//	@Router			/api/v1/entities/{name}/batch [put]
func (h *EntitiesHandler) UpdateBatch(w http.ResponseWriter, r *http.Request) {
	var req dto.BatchUpdateRequestDTO
	if !utils.DecodeJSON(w, r, &req) {
		return
	}
	patches := make([]entityservice.Patch, 0, len(req.Items))
	for _, item := range req.Items {
		patches = append(patches, entityservice.Patch{ID: item.ID, Updates: item.Updates})
	}
	recs, err := h.service.UpdateBatch(r.Context(), auth.UserIDFromContext(r.Context()), chi.URLParam(r, "name"), patches)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, recs)
}

// Delete godoc
//
//	@Summary	Delete an entity
//	@Tags		Entities
//	@Produce	json
//	@Param		name	path	string	true	"Entity name"
//	@Param		id		path	int		true	"Row ID"
//	@Security	BearerAuth
//	@Success	200	{object}	dto.DeleteResponseDTO
//	@Failure	404	{object}	utils.Response	"Not found"
//	@Router		/api/v1/entities/{name}/{id} [delete]
func (h *EntitiesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.service.Delete(r.Context(), auth.UserIDFromContext(r.Context()), chi.URLParam(r, "name"), id); err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.DeleteResponseDTO{Message: "Deleted successfully", ID: id})
}

// DeleteBatch godoc
//
//	@Summary	Delete entities in bulk
//	@Tags		Entities
//	@Accept		json
//	@Produce	json
//	@Param		name	path	string						true	"Entity name"
//	@Param		body	body	dto.BatchDeleteRequestDTO	true	"IDs"
//	@Security	BearerAuth
//	@Success	200	{object}	dto.BatchDeleteResponseDTO
//	@Failure	400	{object}	utils.Response	"Invalid batch"
//	@Router		/api/v1/entities/{name}/batch [delete]
func (h *EntitiesHandler) DeleteBatch(w http.ResponseWriter, r *http.Request) {
	var req dto.BatchDeleteRequestDTO
	if !utils.DecodeJSON(w, r, &req) {
		return
	}
	name := chi.URLParam(r, "name")
	n, err := h.service.DeleteBatch(r.Context(), auth.UserIDFromContext(r.Context()), name, req.IDs)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BatchDeleteResponseDTO{
		Message:      fmt.Sprintf("Successfully deleted %d %s", n, name),
		DeletedCount: n,
	})
}

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return id, true
}
