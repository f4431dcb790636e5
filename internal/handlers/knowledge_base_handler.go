package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"qsplan-backend/internal/models"
	"qsplan-backend/internal/services"
	"qsplan-backend/pkg/utils"

	"github.com/gorilla/mux"
)

type KnowledgeBaseHandler struct {
	Service *services.KnowledgeBaseService
}

func NewKnowledgeBaseHandler(s *services.KnowledgeBaseService) *KnowledgeBaseHandler {
	return &KnowledgeBaseHandler{Service: s}
}

// List handles GET /api/knowledge-base
func (h *KnowledgeBaseHandler) List(w http.ResponseWriter, r *http.Request) {
	entries, err := h.Service.List(r.Context())
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "failed to retrieve knowledge base")
		return
	}
	if entries == nil {
		entries = []*models.KnowledgeBaseEntry{}
	}
	utils.JSON(w, http.StatusOK, entries)
}

// Get handles GET /api/knowledge-base/item/{id}
func (h *KnowledgeBaseHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid entry id")
		return
	}

	entry, err := h.Service.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, entry)
}

// Create handles POST /api/knowledge-base
func (h *KnowledgeBaseHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.KnowledgeBaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	entry, err := h.Service.Create(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.JSON(w, http.StatusCreated, entry)
}

// Update handles PUT /api/knowledge-base/item/{id}
func (h *KnowledgeBaseHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid entry id")
		return
	}

	var req models.KnowledgeBaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	entry, err := h.Service.Update(r.Context(), id, &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, entry)
}

// Delete handles DELETE /api/knowledge-base/item/{id}
func (h *KnowledgeBaseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid entry id")
		return
	}

	if err := h.Service.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, map[string]string{"message": "entry deleted"})
}
