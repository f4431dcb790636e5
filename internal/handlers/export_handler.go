package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"qsplan-backend/internal/middleware"
	"qsplan-backend/internal/services"
	"qsplan-backend/pkg/utils"

	"github.com/gorilla/mux"
)

type ExportHandler struct {
	Export   *services.ExportService
	Projects *services.ProjectService
	Items    *services.ItemService
}

func NewExportHandler(export *services.ExportService, projects *services.ProjectService, items *services.ItemService) *ExportHandler {
	return &ExportHandler{Export: export, Projects: projects, Items: items}
}

// ChecklistPDF handles GET /api/projects/{id}/export. The download reflects
// the current list order, newest first.
func (h *ExportHandler) ChecklistPDF(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		utils.Error(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid project id")
		return
	}

	project, err := h.Projects.GetFor(r.Context(), actor, id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	items, err := h.Items.List(r.Context(), actor, id, services.ItemListOptions{})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	data, err := h.Export.GenerateChecklistPDF(project, items)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "failed to generate PDF")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", h.Export.Filename(project)))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Write(data)
}
