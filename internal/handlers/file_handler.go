package handlers

import (
	"fmt"
	"net/http"
	"path/filepath"

	"qsplan-backend/internal/middleware"
	"qsplan-backend/internal/models"
	"qsplan-backend/internal/storage"
	"qsplan-backend/pkg/utils"

	"github.com/google/uuid"
)

// 10 MB per upload
const maxUploadSize = 10 << 20

type FileHandler struct {
	Store storage.ObjectStore
}

func NewFileHandler(store storage.ObjectStore) *FileHandler {
	return &FileHandler{Store: store}
}

// Upload handles POST /api/files. Staged uploads get a random object key and
// come back as a file reference the client attaches to an item.
func (h *FileHandler) Upload(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		utils.Error(w, http.StatusUnauthorized, "not authenticated")
		return
	}
	if !models.PermissionsFor(actor.Role).CanUploadDocuments && !models.PermissionsFor(actor.Role).CanEditRemarks {
		utils.Error(w, http.StatusForbidden, "forbidden")
		return
	}

	if h.Store == nil {
		utils.Error(w, http.StatusServiceUnavailable, "file storage is not configured")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		utils.Error(w, http.StatusBadRequest, "file too large or malformed upload")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "missing file field")
		return
	}
	defer file.Close()

	id := uuid.New().String()
	key := fmt.Sprintf("uploads/%s%s", id, filepath.Ext(header.Filename))
	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	url, err := h.Store.Put(r.Context(), key, contentType, file)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "failed to store file")
		return
	}

	utils.JSON(w, http.StatusCreated, models.FileRef{
		ID:   id,
		Name: header.Filename,
		URL:  url,
	})
}
