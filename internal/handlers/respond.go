package handlers

import (
	"errors"
	"net/http"

	"qsplan-backend/internal/models"
	"qsplan-backend/pkg/utils"
)

// writeServiceError maps the service sentinel errors onto HTTP statuses.
// Anything unrecognized is treated as a caller mistake, not a server fault.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrForbidden):
		utils.Error(w, http.StatusForbidden, "forbidden")
	case errors.Is(err, models.ErrNotFound):
		utils.Error(w, http.StatusNotFound, "not found")
	case errors.Is(err, models.ErrInvalidTransition):
		utils.Error(w, http.StatusConflict, err.Error())
	default:
		utils.Error(w, http.StatusBadRequest, err.Error())
	}
}
