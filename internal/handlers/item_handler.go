package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"qsplan-backend/internal/middleware"
	"qsplan-backend/internal/models"
	"qsplan-backend/internal/services"
	"qsplan-backend/pkg/utils"

	"github.com/gorilla/mux"
)

type ItemHandler struct {
	Service *services.ItemService
}

func NewItemHandler(s *services.ItemService) *ItemHandler {
	return &ItemHandler{Service: s}
}

func itemScope(w http.ResponseWriter, r *http.Request) (actor *models.User, projectID, key int, ok bool) {
	actor, authed := middleware.GetUserFromContext(r.Context())
	if !authed {
		utils.Error(w, http.StatusUnauthorized, "not authenticated")
		return nil, 0, 0, false
	}

	vars := mux.Vars(r)
	projectID, err := strconv.Atoi(vars["id"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid project id")
		return nil, 0, 0, false
	}

	if raw, present := vars["key"]; present {
		key, err = strconv.Atoi(raw)
		if err != nil {
			utils.Error(w, http.StatusBadRequest, "invalid item key")
			return nil, 0, 0, false
		}
	}
	return actor, projectID, key, true
}

// List handles GET /api/projects/{id}/items with optional sort_by, order,
// reviewer, and status query parameters.
func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request) {
	actor, projectID, _, ok := itemScope(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	opts := services.ItemListOptions{
		SortBy:   q.Get("sort_by"),
		Order:    q.Get("order"),
		Reviewer: q.Get("reviewer"),
		Status:   models.ItemStatus(q.Get("status")),
	}
	if opts.Status != "" && !models.ValidStatus(opts.Status) {
		utils.Error(w, http.StatusBadRequest, "unknown status filter")
		return
	}

	items, err := h.Service.List(r.Context(), actor, projectID, opts)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if items == nil {
		items = []*models.InspectionItem{}
	}
	utils.JSON(w, http.StatusOK, items)
}

// Add handles POST /api/projects/{id}/items
func (h *ItemHandler) Add(w http.ResponseWriter, r *http.Request) {
	actor, projectID, _, ok := itemScope(w, r)
	if !ok {
		return
	}

	var req models.CreateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := h.Service.Add(r.Context(), actor, projectID, &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.JSON(w, http.StatusCreated, item)
}

// UpdateMeasure handles PUT /api/projects/{id}/items/{key}/measure
func (h *ItemHandler) UpdateMeasure(w http.ResponseWriter, r *http.Request) {
	actor, projectID, key, ok := itemScope(w, r)
	if !ok {
		return
	}

	var req models.UpdateMeasureRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := h.Service.UpdateMeasure(r.Context(), actor, projectID, key, &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, item)
}

// UpdateDocuments handles PUT /api/projects/{id}/items/{key}/documents
func (h *ItemHandler) UpdateDocuments(w http.ResponseWriter, r *http.Request) {
	actor, projectID, key, ok := itemScope(w, r)
	if !ok {
		return
	}

	var req models.UpdateDocumentsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := h.Service.ReplaceDocuments(r.Context(), actor, projectID, key, req.Documents)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, item)
}

// UpdateRemarks handles PUT /api/projects/{id}/items/{key}/remarks
func (h *ItemHandler) UpdateRemarks(w http.ResponseWriter, r *http.Request) {
	actor, projectID, key, ok := itemScope(w, r)
	if !ok {
		return
	}

	var req models.UpdateRemarksRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := h.Service.UpdateRemarks(r.Context(), actor, projectID, key, &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, item)
}

// ChangeStatus handles PUT /api/projects/{id}/items/{key}/status
func (h *ItemHandler) ChangeStatus(w http.ResponseWriter, r *http.Request) {
	actor, projectID, key, ok := itemScope(w, r)
	if !ok {
		return
	}

	var req models.ChangeStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if !models.ValidStatus(req.Status) {
		utils.Error(w, http.StatusBadRequest, "unknown status")
		return
	}

	item, err := h.Service.ChangeStatus(r.Context(), actor, projectID, key, req.Status)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, item)
}

// Delete handles DELETE /api/projects/{id}/items/{key}
func (h *ItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor, projectID, key, ok := itemScope(w, r)
	if !ok {
		return
	}

	if err := h.Service.Delete(r.Context(), actor, projectID, key); err != nil {
		writeServiceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, map[string]string{"message": "item deleted"})
}
